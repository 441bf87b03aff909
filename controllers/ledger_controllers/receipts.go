package ledger_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/controllers/auth"
	"github.com/venueops/cashbook/controllers/helpers"
	"github.com/venueops/cashbook/controllers/queries"
	"github.com/venueops/cashbook/models"
	"github.com/venueops/cashbook/types"
)

func CreateReceipt(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	err_src := new(helpers.Errors)
	payload := new(helpers.CreateReceiptParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	helpers.Vaildate(payload, err_src)

	if !payload.VaildateAmount() {
		err_src.Errors = append(err_src.Errors, "ledger.receipt.non_positive_amount")
	}

	if !payload.VaildateCashTo() {
		err_src.Errors = append(err_src.Errors, "ledger.receipt.invalid_cash_to")
	}

	if err_src.Size() > 0 {
		return c.Status(422).JSON(err_src)
	}

	receipt := payload.BuildReceipt()

	if err := models.SubmitReceipt(CurrentUser, receipt); err != nil {
		status, code := helpers.ReceiptErrorStatus(err)

		if errors.Is(err, models.ErrMirrorFailed) {
			// the receipt is already on the ledger; hand it back with the error
			return c.Status(status).JSON(fiber.Map{
				"errors":  []string{code},
				"receipt": receipt,
			})
		}

		return c.Status(status).JSON(helpers.Errors{
			Errors: []string{code},
		})
	}

	return c.Status(201).JSON(receipt)
}

func GetReceipts(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	var receipts []models.MoneyReceipt

	params := new(queries.ReceiptFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	if len(params.OrderBy) == 0 {
		params.OrderBy = types.OrderByDesc
	}

	if !params.VaildateOrderBy() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"ledger.receipt.invalid_order_by"},
		})
	}

	tx := config.DataBase.Order("serial_num " + params.OrderBy)

	if len(params.Bucket) > 0 {
		tx = tx.Where("bucket = ?", params.Bucket)
	}

	if len(params.Mode) > 0 {
		tx = tx.Where("mode = ?", params.Mode)
	}

	if len(params.Direction) > 0 {
		tx = tx.Where("direction = ?", params.Direction)
	}

	if from, ok := params.FromDate(); ok {
		tx = tx.Where("receipt_date >= ?", from)
	}

	if to, ok := params.ToDate(); ok {
		tx = tx.Where("receipt_date <= ?", to)
	}

	if params.Limit > 0 {
		tx = tx.Limit(params.Limit)

		if params.Page > 1 {
			tx = tx.Offset((params.Page - 1) * params.Limit)
		}
	}

	tx.Find(&receipts)

	return c.Status(200).JSON(receipts)
}

func AcceptReceipt(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	receipt, err := models.AcceptReceipt(c.Params("id"))

	if err != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"ledger.receipt.doesnt_exist"},
		})
	}

	return c.Status(200).JSON(receipt)
}
