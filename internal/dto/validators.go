package dto

import (
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the booking specific tags to v:
//
//	isodate  - YYYY-MM-DD calendar date
//	timeslot - HH:MM or hh:MM AM/PM wall-clock time
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTimeOfDay(fl.Field().String())
		return err == nil
	})
}
