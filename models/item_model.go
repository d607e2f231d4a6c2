package models

import "time"

type Item struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	ItemCode  string     `json:"itemCode" gorm:"uniqueIndex;not null"`
	ItemName  string     `json:"itemName" gorm:"not null"`
	Quantity  int        `json:"quantity" gorm:"default:0"`
	Unit      string     `json:"unit"`
	Withdrawn int        `json:"withdrawn" gorm:"default:0"`
	AddedBy   string     `json:"addedBy"`
	Date      time.Time  `json:"date"`
	UpdatedBy *string    `json:"updatedBy"`
	UpdatedOn *time.Time `json:"updatedOn"`
	IsDeleted bool       `json:"isDeleted" gorm:"default:false;index"`

	PurchaseRequests  []PurchaseRequest  `json:"PurchaseRequest" gorm:"foreignKey:ItemID"`
	RequestsDelivered []RequestDelivered `json:"RequestDelivered" gorm:"foreignKey:ItemID"`
	PulledItems       []PulledItem       `json:"PulledItem" gorm:"foreignKey:ItemID"`
}

// ItemTotals carries the derived per-year quantities shown next to an item.
type ItemTotals struct {
	Requested int `json:"requested"`
	Delivered int `json:"delivered"`
	Withdrawn int `json:"withdrawn"`
}

// Totals sums the child records whose own date falls in the given year.
// year 0 means no filter: sum across all time. The children must already be
// loaded; this is a pure computation, no query runs here.
func (i *Item) Totals(year int) ItemTotals {
	var t ItemTotals
	for _, pr := range i.PurchaseRequests {
		if year == 0 || pr.RequestedDate.Year() == year {
			t.Requested += pr.RequestedQuantity
		}
	}
	for _, rd := range i.RequestsDelivered {
		if year == 0 || rd.DeliveredDate.Year() == year {
			t.Delivered += rd.DeliveredQuantity
		}
	}
	for _, pi := range i.PulledItems {
		if year == 0 || pi.ReleasedDate.Year() == year {
			t.Withdrawn += pi.ReleasedQuantity
		}
	}
	return t
}
