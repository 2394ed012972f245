package db

import (
	"github.com/cyra-app/cyra/internal/models"
	"gorm.io/gorm"
)

type CycleRecordRepository struct {
	database *gorm.DB
}

func NewCycleRecordRepository(database *gorm.DB) *CycleRecordRepository {
	return &CycleRecordRepository{database: database}
}

// ListByUser returns the user's full cycle history, newest start first, so the
// first element is the current open cycle.
func (repo *CycleRecordRepository) ListByUser(userID uint) ([]models.CycleRecord, error) {
	records := make([]models.CycleRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CycleRecordRepository) FindByID(userID uint, cycleID uint) (models.CycleRecord, bool, error) {
	record := models.CycleRecord{}
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, cycleID).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.CycleRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *CycleRecordRepository) Create(record *models.CycleRecord) error {
	return repo.database.Create(record).Error
}

func (repo *CycleRecordRepository) UpdatePeriodLength(record *models.CycleRecord) error {
	return repo.database.Model(record).Select("period_length").Updates(record).Error
}

func (repo *CycleRecordRepository) UpdateCycleLength(record *models.CycleRecord) error {
	return repo.database.Model(record).Select("cycle_length").Updates(record).Error
}

func (repo *CycleRecordRepository) ListUserIDs() ([]uint, error) {
	userIDs := make([]uint, 0)
	if err := repo.database.
		Model(&models.CycleRecord{}).
		Distinct("user_id").
		Order("user_id ASC").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}
