package admin_controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/controllers/helpers"
	"github.com/venueops/cashbook/models"
)

// CreateAccount registers an account in the assignment roster ahead of its
// first distribution: owner email and the auto-approve policy are fixed
// here, never derived from the display name.
func CreateAccount(c *fiber.Ctx) error {
	err_src := new(helpers.Errors)
	payload := new(helpers.CreateAccountParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	helpers.Vaildate(payload, err_src)

	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	account := payload.BuildAccount()

	if err := config.DataBase.Where(models.Account{ID: account.ID}).Assign(models.Account{
		OwnerEmail:  account.OwnerEmail,
		AutoApprove: account.AutoApprove,
	}).FirstOrCreate(account).Error; err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(account)
}

func GetPendingAccounts(c *fiber.Ctx) error {
	accounts, err := models.GetAccounts()
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	pending := make([]models.AccountJSON, 0)
	for i := range accounts {
		if accounts[i].HasPending(config.DataBase) {
			pending = append(pending, accounts[i].ToJSON(config.DataBase))
		}
	}

	return c.Status(200).JSON(pending)
}
