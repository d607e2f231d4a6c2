package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTableRoutes(app *fiber.App, db *gorm.DB) {

	tableController := controllers.NewTableController(db)

	api := app.Group(config.MAIN_ROUTES + "/tables")
	api.Post("/delete-one", tableController.DeleteItem)
	api.Post("/delete-selected", tableController.DeleteSelectedItems)
	api.Get("/unique-field", tableController.GetUniqueField)
}
