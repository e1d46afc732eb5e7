package repository

import (
	"errors"

	"github.com/windoze95/pantrychef-api/internal/apperrors"
	"gorm.io/gorm"
)

// translateError maps gorm errors onto coded application errors. It relies
// on the connection being opened with TranslateError enabled.
func translateError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.Wrap(apperrors.CodeNotFound, what+" not found", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Wrap(apperrors.CodeConflict, what+" already exists", err)
	default:
		return apperrors.Wrap(apperrors.CodeInternal, what+" query failed", err)
	}
}
