package repositories

import (
	"errors"
	"fmt"

	"foodgram-api/models"

	"gorm.io/gorm"
)

// wrapErrorWithDetails turns gorm errors into the typed errors of the models package.
func wrapErrorWithDetails(err error, operation, details string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ErrorNotFound{Message: fmt.Sprintf("%s: not found (%s)", operation, details)}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &models.ErrorConflict{Message: fmt.Sprintf("%s: already exists (%s)", operation, details)}
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &models.ErrorNotFound{Message: fmt.Sprintf("%s: referenced row missing (%s)", operation, details)}
	}

	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return &models.ErrorValidation{Fields: map[string][]string{
			"non_field_errors": {fmt.Sprintf("%s: constraint violated (%s)", operation, details)},
		}}
	}

	return &models.ErrorInternalServer{Inner: fmt.Errorf("%s: %w", operation, err)}
}

func offsetFor(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
