package ledger_controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/venueops/cashbook/controllers/auth"
	"github.com/venueops/cashbook/controllers/helpers"
	"github.com/venueops/cashbook/controllers/queries"
	"github.com/venueops/cashbook/recon"
	"github.com/venueops/cashbook/services/totals_service"
)

func GetTotals(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params := new(queries.TotalsFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	var window recon.Window
	if from, ok := params.FromDate(); ok {
		window.From = from
	}
	if to, ok := params.ToDate(); ok {
		window.To = to
	}

	totals, err := totals_service.Fetch(window)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(totals)
}
