package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupItemRoutes(app *fiber.App, db *gorm.DB) {

	itemController := controllers.NewItemController(db)

	api := app.Group(config.MAIN_ROUTES + "/items")
	api.Post("/", itemController.AddItem)
	api.Get("/", itemController.GetItems)
	api.Get("/:id/totals", itemController.GetItemTotals)
	api.Put("/", itemController.EditItem)
	api.Post("/pull", itemController.PullItem)
	api.Post("/quantity", itemController.UpdateItemQuantity)
}
