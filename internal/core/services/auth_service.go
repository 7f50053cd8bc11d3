package services

import (
	"time"

	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/platform/config"
	"github.com/SscSPs/desk_booking_app/internal/utils"
)

// tokenService signs access tokens using the configured secret and expiry.
type tokenService struct {
	cfg *config.Config
	now func() time.Time
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, now func() time.Time) portssvc.TokenSvc {
	if now == nil {
		now = time.Now
	}
	return &tokenService{cfg: cfg, now: now}
}

func (s *tokenService) IssueToken(user domain.User) (string, time.Time, error) {
	return utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.now(), s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}
