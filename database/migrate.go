package database

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Item{},
		&models.PurchaseRequest{},
		&models.RequestDelivered{},
		&models.PulledItem{},
		&models.Log{},
	)
}
