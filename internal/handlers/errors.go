package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	"github.com/SscSPs/desk_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found"},
	{apperrors.ErrConflict, http.StatusConflict, "conflict"},
	{apperrors.ErrDuplicate, http.StatusConflict, "conflict"},
	{apperrors.ErrPolicyViolation, http.StatusUnprocessableEntity, "policy_violation"},
	{apperrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{apperrors.ErrInvalidState, http.StatusConflict, "invalid_state"},
	{apperrors.ErrValidation, http.StatusBadRequest, "invalid_input"},
	{apperrors.ErrNotAuthorized, http.StatusForbidden, "not_authorized"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
}

// respondWithError translates a service error into its HTTP status and code.
// Unknown errors are logged and reported as 500 without leaking details.
func respondWithError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			logger.Warn("Request rejected", slog.String("code", m.code), slog.String("error", err.Error()))
			c.JSON(m.status, ErrorResponse{Error: apperrors.Message(err), Code: m.code})
			return
		}
	}
	logger.Error("Request failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// respondBindError reports a malformed body or query string.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error(), Code: "invalid_input"})
}

// actorOrAbort returns the authenticated actor, or writes 401 and reports false.
func actorOrAbort(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized", Code: "unauthorized"})
		return domain.Actor{}, false
	}
	return actor, true
}

// evidenceFrom prefers the address the client reports and falls back to the
// address the request came from.
func evidenceFrom(c *gin.Context, claimed *string) domain.NetworkEvidence {
	if claimed != nil && strings.TrimSpace(*claimed) != "" {
		return domain.NetworkEvidence{Address: strings.TrimSpace(*claimed), Source: domain.EvidenceClaimed}
	}
	return domain.NetworkEvidence{Address: c.ClientIP(), Source: domain.EvidenceObserved}
}
