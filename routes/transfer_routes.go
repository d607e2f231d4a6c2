package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTransferRoutes(app *fiber.App, db *gorm.DB) {

	transferController := controllers.NewTransferController(db)

	api := app.Group(config.MAIN_ROUTES + "/transfer")
	api.Post("/import-items", transferController.ImportItems)
	api.Post("/import-pulled-items", transferController.ImportPulledItems)
	api.Post("/export-items", transferController.ExportItems)
	api.Post("/export-table", transferController.ExportTable)
}
