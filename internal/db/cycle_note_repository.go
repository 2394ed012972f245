package db

import (
	"github.com/cyra-app/cyra/internal/models"
	"gorm.io/gorm"
)

type CycleNoteRepository struct {
	database *gorm.DB
}

func NewCycleNoteRepository(database *gorm.DB) *CycleNoteRepository {
	return &CycleNoteRepository{database: database}
}

func (repo *CycleNoteRepository) Append(note *models.CycleNote) error {
	return repo.database.Create(note).Error
}

// ListByUser returns the newest notes first. Notes from different sources about
// the same day are all kept; they represent distinct user actions.
func (repo *CycleNoteRepository) ListByUser(userID uint, limit int) ([]models.CycleNote, error) {
	notes := make([]models.CycleNote, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (repo *CycleNoteRepository) ListByUserAndCycle(userID uint, cycleID uint, limit int) ([]models.CycleNote, error) {
	notes := make([]models.CycleNote, 0)
	if err := repo.database.
		Where("user_id = ? AND cycle_id = ?", userID, cycleID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
