package repositories

import (
	"testing"
	"time"

	"inventory-app/models"

	"github.com/stretchr/testify/require"
)

func TestAddPurchaseRequest(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "PR-1", 5)
	repo := NewHistoryRepository(db)

	pr, err := repo.AddPurchaseRequest("pr-1", 7, "Ann", date(2024, time.April, 2))
	require.NoError(t, err)
	require.Equal(t, item.ID, pr.ItemID, "code resolves case-insensitively")
	require.NotZero(t, pr.ID, "history rows get snowflake ids")
	require.Equal(t, "PR-1", pr.Item.ItemCode)

	// a request is not a receipt
	var after models.Item
	require.NoError(t, db.First(&after, item.ID).Error)
	require.Equal(t, 5, after.Quantity)
}

func TestAddPurchaseRequestUnknownCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	_, err := repo.AddPurchaseRequest("NOPE", 7, "Ann", date(2024, time.April, 2))
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddRequestDeliveredIsHistoryOnly(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "DR-1", 5)
	repo := NewHistoryRepository(db)

	dr, err := repo.AddRequestDelivered("DR-1", 9, "Bob", "Ann", date(2024, time.May, 3))
	require.NoError(t, err)
	require.Equal(t, item.ID, dr.ItemID)
	require.Equal(t, 9, dr.DeliveredQuantity)

	var after models.Item
	require.NoError(t, db.First(&after, item.ID).Error)
	require.Equal(t, 5, after.Quantity, "recording a delivery does not restock")
}

func TestEditPurchaseRequest(t *testing.T) {
	db := newTestDB(t)
	seedItem(t, db, "PR-2", 5)
	repo := NewHistoryRepository(db)

	pr, err := repo.AddPurchaseRequest("PR-2", 7, "Ann", date(2024, time.April, 2))
	require.NoError(t, err)

	snapshot, err := repo.EditPurchaseRequest(pr.ID, 11, "Ann")
	require.NoError(t, err)
	require.Equal(t, 7, snapshot.RequestedQuantity)

	var after models.PurchaseRequest
	require.NoError(t, db.First(&after, "id = ?", int64(pr.ID)).Error)
	require.Equal(t, 11, after.RequestedQuantity)

	_, err = repo.EditPurchaseRequest(pr.ID, 11, "Ann")
	require.ErrorIs(t, err, models.ErrNoChange)
}

func TestFetchHistory(t *testing.T) {
	db := newTestDB(t)
	seedItem(t, db, "FH-1", 5)
	repo := NewHistoryRepository(db)

	_, err := repo.AddPurchaseRequest("FH-1", 5, "Ann", date(2023, time.March, 1))
	require.NoError(t, err)
	_, err = repo.AddPurchaseRequest("FH-1", 7, "Bob", date(2024, time.March, 1))
	require.NoError(t, err)

	rows, err := repo.FetchHistory("purchaseRequest", "requestedDate", "desc")
	require.NoError(t, err)
	prs, ok := rows.([]models.PurchaseRequest)
	require.True(t, ok)
	require.Len(t, prs, 2)
	require.Equal(t, 7, prs[0].RequestedQuantity, "newest first")
	require.Equal(t, "FH-1", prs[0].Item.ItemCode, "items come preloaded")

	rows, err = repo.FetchHistory("purchaseRequest", "requestedDate", "asc")
	require.NoError(t, err)
	prs = rows.([]models.PurchaseRequest)
	require.Equal(t, 5, prs[0].RequestedQuantity)
}

func TestFetchHistoryRejectsUnknownTableAndColumn(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	_, err := repo.FetchHistory("item", "", "desc")
	var unknown *models.UnknownEntityError
	require.ErrorAs(t, err, &unknown)

	_, err = repo.FetchHistory("purchaseRequest", "evil; drop table items", "desc")
	var val *models.ValidationError
	require.ErrorAs(t, err, &val)
}

func TestGetPulledItemsOrder(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db, "PU-1", 20)
	items := NewItemRepository(db)

	_, err := items.PullItem(item.ID, 1, "A", "B", date(2024, time.January, 1))
	require.NoError(t, err)
	_, err = items.PullItem(item.ID, 2, "C", "D", date(2024, time.June, 1))
	require.NoError(t, err)

	repo := NewHistoryRepository(db)
	pulled, err := repo.GetPulledItems()
	require.NoError(t, err)
	require.Len(t, pulled, 2)
	require.Equal(t, 2, pulled[0].ReleasedQuantity, "newest release first")
	require.Equal(t, "PU-1", pulled[0].Item.ItemCode)
}
