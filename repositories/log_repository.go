package repositories

import (
	"log"

	"inventory-app/models"

	"gorm.io/gorm"
)

type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db}
}

// AddLog writes one audit entry.
func (r *LogRepository) AddLog(itemID uint, user, message string) error {
	entry := models.Log{
		ItemID: itemID,
		User:   user,
		Log:    message,
	}
	return r.db.Create(&entry).Error
}

// LogAction is the fire-and-forget variant used after stock mutations. The
// mutation has already committed; a failed audit write is reported to the
// console and nowhere else.
func (r *LogRepository) LogAction(itemID uint, user, message string) {
	if err := r.AddLog(itemID, user, message); err != nil {
		log.Printf("audit log write failed for item %d: %v", itemID, err)
	}
}

func (r *LogRepository) GetLogs() ([]models.Log, error) {
	var logs []models.Log
	err := r.db.Preload("Item").Order("created_at desc").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteAllLogs clears the audit trail. An empty trail is reported as
// ErrNoLogs so the UI can say so instead of claiming success.
func (r *LogRepository) DeleteAllLogs() (int64, error) {
	res := r.db.Where("1 = 1").Delete(&models.Log{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, models.ErrNoLogs
	}
	return res.RowsAffected, nil
}
