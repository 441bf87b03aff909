package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venueops/cashbook/controllers"
	"github.com/venueops/cashbook/controllers/admin_controllers"
	"github.com/venueops/cashbook/controllers/ledger_controllers"
	"github.com/venueops/cashbook/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v1/public/timestamp", controllers.GetTimestamp)

	app.Post("/api/v1/ledger/receipts", ledger_controllers.CreateReceipt)
	app.Get("/api/v1/ledger/receipts", ledger_controllers.GetReceipts)
	app.Post("/api/v1/ledger/receipts/:id/accept", ledger_controllers.AcceptReceipt)

	app.Get("/api/v1/ledger/accounts", ledger_controllers.GetAccounts)
	app.Post("/api/v1/ledger/accounts/:account/transactions", ledger_controllers.AppendTransaction)
	app.Post("/api/v1/ledger/accounts/:account/transactions/:id/approve", ledger_controllers.ApproveTransaction)

	app.Get("/api/v1/ledger/totals", ledger_controllers.GetTotals)

	admin := app.Group("/api/v1/admin", middlewares.Authenticate, middlewares.AdminVaildator)
	admin.Post("/accounts", admin_controllers.CreateAccount)
	admin.Get("/accounts/pending", admin_controllers.GetPendingAccounts)

	return app
}
