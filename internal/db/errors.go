package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/habitual/internal/models"
	"gorm.io/gorm"
)

// translateError maps driver and gorm failures onto the repository errors in models.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrRecordNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %v", models.ErrDuplicateRecord, err)
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(strings.ToUpper(err.Error()), "UNIQUE CONSTRAINT FAILED")
}
