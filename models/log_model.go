package models

import "time"

// Log is the audit trail. Rows are written best-effort after stock mutations
// and never block the mutation that triggered them.
type Log struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ItemID    uint      `json:"itemId" gorm:"index"`
	Item      Item      `json:"item" gorm:"foreignKey:ItemID"`
	User      string    `json:"user"`
	Log       string    `json:"log"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
