package database

import (
	"errors"

	reasoncodes "ecertify/pkg/reason_codes"

	"gorm.io/gorm"
)

// TranslateNotFound turns gorm.ErrRecordNotFound into a NotFound reason code. Other errors pass through.
func TranslateNotFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return reasoncodes.Wrap(reasoncodes.ErrNotFound, err, format, args...)
	}
	return err
}
