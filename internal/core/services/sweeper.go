package services

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
)

// CompletionSweeper periodically completes checked-in bookings whose window has ended.
type CompletionSweeper struct {
	BaseService
	bookings portssvc.BookingLifecycleSvc
	interval time.Duration
}

func NewCompletionSweeper(bookings portssvc.BookingLifecycleSvc, interval time.Duration) *CompletionSweeper {
	return &CompletionSweeper{
		BaseService: BaseService{name: "completion_sweeper"},
		bookings:    bookings,
		interval:    interval,
	}
}

// SweepOnce runs a single completion pass.
func (s *CompletionSweeper) SweepOnce(ctx context.Context) int {
	n, err := s.bookings.CompleteElapsedBookings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Completion sweep failed", slog.Int("completed", n))
		return n
	}
	if n > 0 {
		s.LogInfo(ctx, "Completion sweep finished", slog.Int("completed", n))
	}
	return n
}

// Run sweeps on every tick until ctx is cancelled. A non-positive interval disables it.
func (s *CompletionSweeper) Run(ctx context.Context) error {
	if s.interval <= 0 {
		s.LogInfo(ctx, "Completion sweeper disabled")
		return nil
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.SweepOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}
