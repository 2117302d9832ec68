package database

import (
	"errors"

	"gorm.io/gorm"
)

// ErrVersionConflict is returned when a versioned save finds the record was
// modified (or deleted) since it was read.
var ErrVersionConflict = errors.New("record version changed since read")

// SaveVersioned persists a full-record update guarded by the version column.
// The caller increments the record's Version field before calling; the update
// only applies if the stored row still carries the previous version. Every
// read-modify-write in the merge engines goes through this guard so two
// concurrent merges against the same record cannot silently race: the loser
// gets ErrVersionConflict and must re-read.
func SaveVersioned(db *gorm.DB, record any, id string, newVersion int) error {
	res := db.Model(record).
		Where("id = ? AND version = ?", id, newVersion-1).
		Select("*").
		Omit("id", "created_at").
		Updates(record)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}
