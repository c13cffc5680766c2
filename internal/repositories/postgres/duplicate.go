package postgres

import (
	"errors"

	"gorm.io/gorm"
)

// insertIgnoreDuplicate is the one place the duplicate-key error class is
// swallowed. The uniqueness key comes from the row's table definition; every
// other failure is re-raised unchanged. Requires gorm.Config.TranslateError.
func insertIgnoreDuplicate(db *gorm.DB, value any) error {
	err := db.Create(value).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}
