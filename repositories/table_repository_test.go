package repositories

import (
	"testing"
	"time"

	"inventory-app/models"

	"github.com/stretchr/testify/require"
)

func TestParseEntity(t *testing.T) {
	for name, want := range map[string]Entity{
		"item":             EntityItem,
		"pulledItem":       EntityPulledItem,
		"purchaseRequest":  EntityPurchaseRequest,
		"PurchaseRequest":  EntityPurchaseRequest,
		"requestDelivered": EntityRequestDelivered,
		"RequestDelivered": EntityRequestDelivered,
		"log":              EntityLog,
	} {
		entity, err := ParseEntity(name)
		require.NoError(t, err)
		require.Equal(t, want, entity)
	}

	_, err := ParseEntity("users")
	var unknown *models.UnknownEntityError
	require.ErrorAs(t, err, &unknown)
}

func TestDeleteSelectedItemsIsSoft(t *testing.T) {
	db := newTestDB(t)
	a := seedItem(t, db, "S-1", 1)
	b := seedItem(t, db, "S-2", 1)
	keep := seedItem(t, db, "S-3", 1)

	repo := NewTableRepository(db)
	count, err := repo.DeleteSelected("item", []string{itoa(a.ID), itoa(b.ID)})
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	items, err := NewItemRepository(db).GetItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, keep.ID, items[0].ID)

	// rows are still there, archived
	var stored []models.Item
	require.NoError(t, db.Where("id IN ?", []uint{a.ID, b.ID}).Find(&stored).Error)
	require.Len(t, stored, 2)
	for _, it := range stored {
		require.True(t, it.IsDeleted)
	}
}

func TestDeleteSelectedHistoryIsHard(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "H-1", 10)
	items := NewItemRepository(db)

	_, err := items.PullItem(item.ID, 2, "A", "B", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var pulled models.PulledItem
	require.NoError(t, db.First(&pulled).Error)

	repo := NewTableRepository(db)
	count, err := repo.DeleteSelected("pulledItem", []string{pulled.ID.String()})
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	var remaining int64
	require.NoError(t, db.Model(&models.PulledItem{}).Count(&remaining).Error)
	require.Zero(t, remaining, "history rows are physically removed")
}

func TestDeleteSelectedNoMatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewTableRepository(db)

	_, err := repo.DeleteSelected("item", []string{"424242"})
	require.ErrorIs(t, err, models.ErrNoMatch)
}

func TestDeleteSelectedRejectsBadItemID(t *testing.T) {
	db := newTestDB(t)
	repo := NewTableRepository(db)

	_, err := repo.DeleteSelected("item", []string{"not-a-number"})
	var val *models.ValidationError
	require.ErrorAs(t, err, &val)
}

func TestDeleteByID(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "D-1", 1)

	repo := NewTableRepository(db)
	require.NoError(t, repo.DeleteByID("item", itoa(item.ID)))

	var remaining int64
	require.NoError(t, db.Model(&models.Item{}).Count(&remaining).Error)
	require.Zero(t, remaining, "single-row delete is hard even for items")

	require.ErrorIs(t, repo.DeleteByID("item", itoa(item.ID)), models.ErrNoMatch)

	var unknown *models.UnknownEntityError
	require.ErrorAs(t, repo.DeleteByID("log", "1"), &unknown)
}

func TestUniqueField(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemRepository(db)

	mk := func(code, addedBy string) {
		_, err := repo.AddItem(AddItemInput{
			ItemCode: code, ItemName: "Item " + code, Quantity: 1, Unit: "pcs",
			AddedBy: addedBy, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}
	mk("U-1", "Cleo")
	mk("U-2", "Ann")
	mk("U-3", "Ann")

	tables := NewTableRepository(db)
	values, err := tables.UniqueField("item", "addedBy", "", "")
	require.NoError(t, err)
	require.Equal(t, []string{"Ann", "Cleo"}, values, "distinct and sorted")

	// soft-deleted rows drop out of the suggestions
	var gone models.Item
	require.NoError(t, db.Where("item_code = ?", "U-1").First(&gone).Error)
	_, err = tables.DeleteSelected("item", []string{itoa(gone.ID)})
	require.NoError(t, err)

	values, err = tables.UniqueField("item", "addedBy", "", "")
	require.NoError(t, err)
	require.Equal(t, []string{"Ann"}, values)
}

func TestUniqueFieldThroughRelation(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "R-1", 10)
	items := NewItemRepository(db)

	_, err := items.PullItem(item.ID, 1, "A", "B", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = items.PullItem(item.ID, 1, "C", "D", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	tables := NewTableRepository(db)
	values, err := tables.UniqueField("pulledItem", "", "item", "itemName")
	require.NoError(t, err)
	require.Equal(t, []string{"Item R-1"}, values)
}

func TestUniqueFieldRejectsUnknownField(t *testing.T) {
	db := newTestDB(t)
	tables := NewTableRepository(db)

	_, err := tables.UniqueField("item", "quantity; drop table items", "", "")
	var val *models.ValidationError
	require.ErrorAs(t, err, &val)

	_, err = tables.UniqueField("nope", "unit", "", "")
	var unknown *models.UnknownEntityError
	require.ErrorAs(t, err, &unknown)
}
