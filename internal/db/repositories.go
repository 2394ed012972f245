package db

import "gorm.io/gorm"

type Repositories struct {
	CycleRecords *CycleRecordRepository
	CycleNotes   *CycleNoteRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		CycleRecords: NewCycleRecordRepository(database),
		CycleNotes:   NewCycleNoteRepository(database),
	}
}
