package repositories

import (
	"errors"
	"strings"
	"sync"
	"time"

	"inventory-app/models"

	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db}
}

type AddItemInput struct {
	ItemCode    string
	ItemName    string
	Quantity    int
	Unit        string
	Withdrawn   int
	AddedBy     string
	Date        time.Time
	DeliveredBy string
	IsDelivered bool
	ReleasedBy  string
}

// AddItem creates a stock item, or resurrects a soft-deleted one that carries
// the same code. An active item with the same code is a hard failure. When the
// new stock arrives with part of it already withdrawn, the stored quantity is
// the received amount minus the withdrawn amount, and a PulledItem row records
// the withdrawal.
func (r *ItemRepository) AddItem(input AddItemInput) (*models.Item, error) {
	if err := validateAddItem(&input); err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(input.ItemCode))
	quantity := input.Quantity
	if input.Withdrawn > 0 {
		quantity = input.Quantity - input.Withdrawn
	}

	var existing models.Item
	err := r.db.Where("item_code = ?", code).First(&existing).Error
	switch {
	case err == nil:
		if !existing.IsDeleted {
			return nil, &models.DuplicateCodeError{Code: code}
		}
		// Re-adding a deleted code reuses the original row so its history
		// keeps pointing at the same item id.
		updates := map[string]interface{}{
			"item_name":  input.ItemName,
			"quantity":   quantity,
			"unit":       input.Unit,
			"withdrawn":  input.Withdrawn,
			"added_by":   input.AddedBy,
			"date":       input.Date,
			"is_deleted": false,
		}
		if err := r.db.Model(&models.Item{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
			return nil, err
		}
		var item models.Item
		if err := r.db.First(&item, existing.ID).Error; err != nil {
			return nil, err
		}
		return &item, r.createRelatedRecords(existing.ID, input)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to create
	default:
		return nil, err
	}

	item := models.Item{
		ItemCode:  code,
		ItemName:  input.ItemName,
		Quantity:  quantity,
		Unit:      input.Unit,
		Withdrawn: input.Withdrawn,
		AddedBy:   input.AddedBy,
		Date:      input.Date,
	}
	if err := r.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, r.createRelatedRecords(item.ID, input)
}

// createRelatedRecords writes the optional delivery and withdrawal rows that
// accompany a new item. Both run independently; one failing must not stop the
// other, and the item row is already committed either way.
func (r *ItemRepository) createRelatedRecords(itemID uint, input AddItemInput) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	if input.IsDelivered {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rd := models.RequestDelivered{
				ItemID:            itemID,
				DeliveredQuantity: input.Quantity,
				DeliveredBy:       input.DeliveredBy,
				ReceivedBy:        input.AddedBy,
				DeliveredDate:     input.Date,
			}
			if err := r.db.Create(&rd).Error; err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	if input.Withdrawn > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pi := models.PulledItem{
				ItemID:           itemID,
				ReleasedQuantity: input.Withdrawn,
				ReleasedBy:       input.ReleasedBy,
				ReceivedBy:       input.AddedBy,
				ReleasedDate:     input.Date,
			}
			if err := r.db.Create(&pi).Error; err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}

func validateAddItem(input *AddItemInput) error {
	switch {
	case strings.TrimSpace(input.ItemCode) == "":
		return &models.ValidationError{Message: "Item code is required."}
	case strings.TrimSpace(input.ItemName) == "":
		return &models.ValidationError{Message: "Item name is required."}
	case strings.TrimSpace(input.Unit) == "":
		return &models.ValidationError{Message: "Unit is required."}
	case input.Date.IsZero():
		return &models.ValidationError{Message: "Date is required."}
	case input.Quantity < 0:
		return &models.ValidationError{Message: "Quantity cannot be negative."}
	case input.Withdrawn < 0:
		return &models.ValidationError{Message: "Withdrawn cannot be negative."}
	}
	return nil
}

// EditItem changes code, name and unit in place. It returns the item as it
// was before the update, which the caller uses to word the audit entry.
// A payload identical to the current row reports ErrNoChange and writes
// nothing.
func (r *ItemRepository) EditItem(id uint, itemCode, itemName, unit string) (*models.Item, error) {
	var snapshot models.Item
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&snapshot, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		if snapshot.ItemCode == itemCode && snapshot.ItemName == itemName && snapshot.Unit == unit {
			return models.ErrNoChange
		}

		return tx.Model(&models.Item{}).Where("id = ?", id).Updates(map[string]interface{}{
			"item_code": itemCode,
			"item_name": itemName,
			"unit":      unit,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// PullItem withdraws stock: it records the PulledItem row, decrements the
// quantity and grows the running withdrawn total, all in one transaction.
// The returned item is the pre-pull snapshot.
func (r *ItemRepository) PullItem(itemID uint, releasedQuantity int, releasedBy, receivedBy string, releasedDate time.Time) (*models.Item, error) {
	if releasedQuantity <= 0 {
		return nil, &models.ValidationError{Message: "Release quantity must be positive."}
	}

	var snapshot models.Item
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&snapshot, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		if snapshot.Quantity < releasedQuantity {
			return models.ErrInsufficientStock
		}

		pulled := models.PulledItem{
			ItemID:           itemID,
			ReleasedQuantity: releasedQuantity,
			ReleasedBy:       releasedBy,
			ReceivedBy:       receivedBy,
			ReleasedDate:     releasedDate,
		}
		if err := tx.Create(&pulled).Error; err != nil {
			return err
		}

		return tx.Model(&models.Item{}).Where("id = ?", itemID).Updates(map[string]interface{}{
			"quantity":  gorm.Expr("quantity - ?", releasedQuantity),
			"withdrawn": gorm.Expr("withdrawn + ?", releasedQuantity),
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// UpdateQuantity restocks an item. newQuantity is the amount to add, not the
// new absolute value; every restock is also recorded as a delivery event.
func (r *ItemRepository) UpdateQuantity(itemID uint, newQuantity int, updatedBy string, date time.Time, deliveredBy string) (*models.Item, error) {
	var snapshot models.Item
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&snapshot, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		if newQuantity < 0 {
			return models.ErrNegativeQuantity
		}

		if err := tx.Model(&models.Item{}).Where("id = ?", itemID).Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", newQuantity),
			"updated_by": updatedBy,
			"updated_on": date,
		}).Error; err != nil {
			return err
		}

		delivered := models.RequestDelivered{
			ItemID:            itemID,
			DeliveredQuantity: newQuantity,
			DeliveredBy:       deliveredBy,
			ReceivedBy:        updatedBy,
			DeliveredDate:     date,
		}
		return tx.Create(&delivered).Error
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetItems returns every active item with its full history preloaded,
// ordered the way the stock table shows them.
func (r *ItemRepository) GetItems() ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("is_deleted = ?", false).
		Order("item_name asc").
		Preload("PurchaseRequests").
		Preload("RequestsDelivered").
		Preload("PulledItems").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) GetItemByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.
		Preload("PurchaseRequests").
		Preload("RequestsDelivered").
		Preload("PulledItems").
		First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}
