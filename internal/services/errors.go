package services

import (
	"promoadmin/pkg/apperrors"

	"gorm.io/gorm"
)

// notFoundOr maps gorm's record-not-found to a domain 404, everything else
// to an internal error.
func notFoundOr(err error, domain, message string) error {
	if apperrors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(domain, message)
	}
	return apperrors.InternalError(err)
}
