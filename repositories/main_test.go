package repositories

import (
	"strconv"
	"testing"
	"time"

	"inventory-app/database"
	"inventory-app/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedItem(t *testing.T, db *gorm.DB, code string, quantity int) *models.Item {
	t.Helper()

	repo := NewItemRepository(db)
	item, err := repo.AddItem(AddItemInput{
		ItemCode: code,
		ItemName: "Item " + code,
		Quantity: quantity,
		Unit:     "pcs",
		AddedBy:  "Ann",
		Date:     time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return item
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
