package main

import (
	"fmt"
	"log"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/database"
	"inventory-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	app := fiber.New()

	config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()

	config.SetupCORS(app)

	routes.SetupItemRoutes(app, db)
	routes.SetupHistoryRoutes(app, db)
	routes.SetupTableRoutes(app, db)
	routes.SetupLogRoutes(app, db)
	routes.SetupTransferRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
