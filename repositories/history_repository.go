package repositories

import (
	"errors"
	"strings"
	"time"

	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

// HistoryRepository covers the purchase-request and delivery records: pure
// history rows that reference an item but never move its stock.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db}
}

// AddPurchaseRequest records that more stock was asked for. The item is
// resolved by code; a request is not a receipt, so quantity stays untouched.
func (r *HistoryRepository) AddPurchaseRequest(itemCode string, requestedQuantity int, requestedBy string, requestedDate time.Time) (*models.PurchaseRequest, error) {
	item, err := r.findActiveByCode(itemCode)
	if err != nil {
		return nil, err
	}

	pr := models.PurchaseRequest{
		ItemID:            item.ID,
		RequestedQuantity: requestedQuantity,
		RequestedBy:       requestedBy,
		RequestedDate:     requestedDate,
	}
	if err := r.db.Create(&pr).Error; err != nil {
		return nil, err
	}
	pr.Item = *item
	return &pr, nil
}

// AddRequestDelivered records a delivery as history only. Restocking through
// ItemRepository.UpdateQuantity is the path that also raises the quantity.
func (r *HistoryRepository) AddRequestDelivered(itemCode string, deliveredQuantity int, deliveredBy, receivedBy string, deliveredDate time.Time) (*models.RequestDelivered, error) {
	item, err := r.findActiveByCode(itemCode)
	if err != nil {
		return nil, err
	}

	rd := models.RequestDelivered{
		ItemID:            item.ID,
		DeliveredQuantity: deliveredQuantity,
		DeliveredBy:       deliveredBy,
		ReceivedBy:        receivedBy,
		DeliveredDate:     deliveredDate,
	}
	if err := r.db.Create(&rd).Error; err != nil {
		return nil, err
	}
	rd.Item = *item
	return &rd, nil
}

// EditPurchaseRequest updates quantity and requester in place, reporting
// ErrNoChange when the payload matches the stored row.
func (r *HistoryRepository) EditPurchaseRequest(id types.SnowflakeID, requestedQuantity int, requestedBy string) (*models.PurchaseRequest, error) {
	var snapshot models.PurchaseRequest
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&snapshot, "id = ?", int64(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		if snapshot.RequestedQuantity == requestedQuantity && snapshot.RequestedBy == requestedBy {
			return models.ErrNoChange
		}

		return tx.Model(&models.PurchaseRequest{}).Where("id = ?", int64(id)).Updates(map[string]interface{}{
			"requested_quantity": requestedQuantity,
			"requested_by":       requestedBy,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Sort columns the PR/DR views may ask for, keyed by their payload names.
// ORDER BY identifiers cannot be bound parameters, so anything outside this
// map is refused.
var historySortColumns = map[string]map[string]string{
	"purchaseRequest": {
		"requestedDate":     "requested_date",
		"requestedQuantity": "requested_quantity",
		"requestedBy":       "requested_by",
	},
	"requestDelivered": {
		"deliveredDate":     "delivered_date",
		"deliveredQuantity": "delivered_quantity",
		"deliveredBy":       "delivered_by",
		"receivedBy":        "received_by",
	},
}

// FetchHistory lists one of the two history tables with its items preloaded,
// sorted by a whitelisted column.
func (r *HistoryRepository) FetchHistory(tableName, orderBy, order string) (interface{}, error) {
	columns, ok := historySortColumns[tableName]
	if !ok {
		return nil, &models.UnknownEntityError{Name: tableName}
	}

	if orderBy == "" {
		orderBy = "requestedDate"
		if tableName == "requestDelivered" {
			orderBy = "deliveredDate"
		}
	}
	column, ok := columns[orderBy]
	if !ok {
		return nil, &models.ValidationError{Message: "Invalid sort column: " + orderBy}
	}

	direction := "desc"
	if strings.EqualFold(order, "asc") {
		direction = "asc"
	}

	query := r.db.Where("is_deleted = ?", false).
		Preload("Item").
		Order(column + " " + direction)

	switch tableName {
	case "purchaseRequest":
		var rows []models.PurchaseRequest
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	default:
		var rows []models.RequestDelivered
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	}
}

// GetPulledItems lists withdrawals newest first for the pulled-items view.
func (r *HistoryRepository) GetPulledItems() ([]models.PulledItem, error) {
	var pulled []models.PulledItem
	err := r.db.Where("is_deleted = ?", false).
		Order("released_date desc").
		Preload("Item").
		Find(&pulled).Error
	if err != nil {
		return nil, err
	}
	return pulled, nil
}

func (r *HistoryRepository) findActiveByCode(itemCode string) (*models.Item, error) {
	code := strings.ToUpper(strings.TrimSpace(itemCode))
	var item models.Item
	err := r.db.Where("item_code = ? AND is_deleted = ?", code, false).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}
