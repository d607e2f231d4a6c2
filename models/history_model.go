package models

import (
	"time"

	"inventory-app/controllers/idgen"
	"inventory-app/types"

	"gorm.io/gorm"
)

// The three history tables are keyed by snowflake ids so their rows can be
// addressed as opaque strings by the table views, unlike Item and Log which
// keep plain integer keys.

type PurchaseRequest struct {
	ID                types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	ItemID            uint              `json:"itemId" gorm:"index;not null"`
	Item              Item              `json:"item" gorm:"foreignKey:ItemID"`
	RequestedQuantity int               `json:"requestedQuantity"`
	RequestedBy       string            `json:"requestedBy"`
	RequestedDate     time.Time         `json:"requestedDate"`
	IsDeleted         bool              `json:"isDeleted" gorm:"default:false;index"`
}

func (p *PurchaseRequest) BeforeCreate(tx *gorm.DB) error {
	if p.ID == 0 {
		p.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}

type RequestDelivered struct {
	ID                types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	ItemID            uint              `json:"itemId" gorm:"index;not null"`
	Item              Item              `json:"item" gorm:"foreignKey:ItemID"`
	DeliveredQuantity int               `json:"deliveredQuantity"`
	DeliveredBy       string            `json:"deliveredBy"`
	ReceivedBy        string            `json:"receivedBy"`
	DeliveredDate     time.Time         `json:"deliveredDate"`
	IsDeleted         bool              `json:"isDeleted" gorm:"default:false;index"`
}

func (r *RequestDelivered) BeforeCreate(tx *gorm.DB) error {
	if r.ID == 0 {
		r.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}

type PulledItem struct {
	ID               types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	ItemID           uint              `json:"itemId" gorm:"index;not null"`
	Item             Item              `json:"item" gorm:"foreignKey:ItemID"`
	ReleasedQuantity int               `json:"releasedQuantity"`
	ReleasedBy       string            `json:"releasedBy"`
	ReceivedBy       string            `json:"receivedBy"`
	ReleasedDate     time.Time         `json:"releasedDate"`
	IsDeleted        bool              `json:"isDeleted" gorm:"default:false;index"`
}

func (p *PulledItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == 0 {
		p.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
