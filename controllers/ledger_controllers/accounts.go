package ledger_controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/controllers/auth"
	"github.com/venueops/cashbook/controllers/helpers"
	"github.com/venueops/cashbook/models"
)

func GetAccounts(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	accounts, err := models.GetAccounts()
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	accounts_json := make([]models.AccountJSON, 0)
	for i := range accounts {
		accounts_json = append(accounts_json, accounts[i].ToJSON(config.DataBase))
	}

	return c.Status(200).JSON(accounts_json)
}

func AppendTransaction(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	err_src := new(helpers.Errors)
	payload := new(helpers.AppendTransactionParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	helpers.Vaildate(payload, err_src)

	if !payload.VaildateAmount() {
		err_src.Errors = append(err_src.Errors, "ledger.transaction.non_positive_amount")
	}

	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	if _, account_type := models.ParseAccountID(c.Params("account")); !models.ValidAccountType(account_type) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"ledger.account.invalid_type"},
		})
	}

	var txn *models.AccountTransaction

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		account, err := models.FindOrCreateAccount(tx, c.Params("account"))
		if err != nil {
			return err
		}

		txn = payload.BuildTransaction(account, CurrentUser)

		return account.Append(tx, txn)
	})

	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(txn.ToJSON())
}

func ApproveTransaction(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	txn_id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"ledger.transaction.invalid_id"},
		})
	}

	txn, err := models.ApproveTransaction(c.Params("account"), uint(txn_id), CurrentUser)

	switch {
	case err == nil:
		return c.Status(200).JSON(txn.ToJSON())
	case errors.Is(err, models.ErrAuthorization):
		return c.Status(403).JSON(helpers.Errors{
			Errors: []string{"ledger.approve.not_owner"},
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"ledger.transaction.doesnt_exist"},
		})
	default:
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}
}
