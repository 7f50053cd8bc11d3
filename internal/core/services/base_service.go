package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/SscSPs/desk_booking_app/internal/dto"
	"github.com/SscSPs/desk_booking_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	name string
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if s.name != "" {
		logger = logger.With(slog.String("service", s.name))
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireElevated fails with ErrForbidden unless the actor holds an elevated role.
func (s *BaseService) RequireElevated(ctx context.Context, actor domain.Actor, action string) error {
	if actor.IsElevated() {
		return nil
	}
	s.LogInfo(ctx, "Elevated role required",
		slog.String("user_id", actor.UserID),
		slog.String("role", string(actor.Role)),
		slog.String("action", action))
	return apperrors.NewForbiddenError(action + " requires an admin, company or executive role")
}

// bookingFilter turns list parameters into a repository filter for the actor.
func (s *BaseService) bookingFilter(ctx context.Context, actor domain.Actor, params dto.ListBookingsParams) (domain.BookingFilter, error) {
	filter := domain.BookingFilter{
		DeskID: params.DeskID,
		Status: domain.BookingStatus(params.Status),
	}
	if params.Scope == "all" {
		if err := s.RequireElevated(ctx, actor, "listing all bookings"); err != nil {
			return filter, err
		}
		filter.UserID = params.UserID
	} else {
		filter.UserID = actor.UserID
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return filter, apperrors.NewValidationFailedError("unknown booking status " + params.Status)
	}
	if params.Date != "" {
		date, err := domain.ParseDate(params.Date)
		if err != nil {
			return filter, apperrors.NewValidationFailedError(err.Error())
		}
		filter.FromDate = &date
		filter.ToDate = &date
	}
	return filter, nil
}
