package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLogRoutes(app *fiber.App, db *gorm.DB) {

	logController := controllers.NewLogController(db)

	api := app.Group(config.MAIN_ROUTES + "/logs")
	api.Post("/", logController.AddLog)
	api.Get("/", logController.GetLogs)
	api.Delete("/", logController.DeleteAllLogs)
}
