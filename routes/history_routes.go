package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupHistoryRoutes(app *fiber.App, db *gorm.DB) {

	historyController := controllers.NewHistoryController(db)

	api := app.Group(config.MAIN_ROUTES)
	api.Post("/purchase-requests", historyController.AddPurchaseRequest)
	api.Put("/purchase-requests", historyController.EditPurchaseRequest)
	api.Post("/deliveries", historyController.AddRequestDelivered)
	api.Get("/history", historyController.FetchHistory)
	api.Get("/pulled-items", historyController.GetPullItems)
}
