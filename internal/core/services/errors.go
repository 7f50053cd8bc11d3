package services

import (
	"errors"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
)

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
