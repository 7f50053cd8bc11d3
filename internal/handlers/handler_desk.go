package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/desk_booking_app/internal/apperrors"
	"github.com/SscSPs/desk_booking_app/internal/core/domain"
	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/dto"
	"github.com/SscSPs/desk_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// deskHandler serves the floor map and desk administration.
type deskHandler struct {
	deskService         portssvc.DeskSvcFacade
	availabilityService portssvc.AvailabilitySvc
	policy              portssvc.BookingPolicySvc
}

func newDeskHandler(ds portssvc.DeskSvcFacade, as portssvc.AvailabilitySvc, policy portssvc.BookingPolicySvc) *deskHandler {
	return &deskHandler{deskService: ds, availabilityService: as, policy: policy}
}

func registerDeskRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newDeskHandler(services.Desk, services.Availability, services.Policy)
	elevated := middleware.RequireRole(middleware.ElevatedRoles...)

	desks := rg.Group("/desks")
	{
		desks.GET("", h.listDesks)
		desks.GET("/:id", h.getDesk)
		desks.POST("", elevated, h.createDesk)
		desks.PATCH("/:id/status", elevated, h.updateDeskStatus)
	}
}

// dateOrToday parses an optional query date, defaulting to today at the office.
func (h *deskHandler) dateOrToday(raw string) (time.Time, error) {
	if raw == "" {
		return h.policy.Today(), nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationFailedError(err.Error())
	}
	return d, nil
}

// listDesks godoc
// @Summary Desk map
// @Description Lists desks with their display status for a date (default today). Inactive desks are only listed for elevated roles.
// @Tags desks
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param type query string false "Desk type" Enums(regular_desk, executive_office, meeting_room, board_room)
// @Param floor query string false "Floor"
// @Param section query string false "Section"
// @Param status query string false "Display status" Enums(available, reserved, checked-in, unavailable, inactive)
// @Success 200 {object} dto.ListDesksResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /desks [get]
func (h *deskHandler) listDesks(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListDesksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	date, err := h.dateOrToday(params.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := domain.DeskFilter{
		Type:            domain.DeskType(params.Type),
		Floor:           params.Floor,
		Section:         params.Section,
		IncludeInactive: actor.IsElevated(),
	}
	items, err := h.availabilityService.ResolveDesks(c.Request.Context(), actor, date, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if params.Status != "" {
		kept := items[:0]
		for _, a := range items {
			if string(a.Status) == params.Status {
				kept = append(kept, a)
			}
		}
		items = kept
	}

	c.JSON(http.StatusOK, dto.ToListDesksResponse(date, items, actor.IsElevated()))
}

// getDesk godoc
// @Summary Get a desk
// @Tags desks
// @Produce json
// @Param id path string true "Desk ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DeskResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /desks/{id} [get]
func (h *deskHandler) getDesk(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var params dto.GetDeskParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	date, err := h.dateOrToday(params.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	a, err := h.availabilityService.ResolveDesk(c.Request.Context(), actor, c.Param("id"), date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDeskAvailabilityResponse(a, actor.IsElevated()))
}

// createDesk godoc
// @Summary Register a desk
// @Tags desks
// @Accept json
// @Produce json
// @Param desk body dto.CreateDeskRequest true "Desk"
// @Success 201 {object} dto.DeskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code already in use"
// @Security BearerAuth
// @Router /desks [post]
func (h *deskHandler) createDesk(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateDeskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	desk, err := h.deskService.CreateDesk(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Desk created", slog.String("desk_id", desk.DeskID), slog.String("code", desk.Code))
	c.JSON(http.StatusCreated, dto.ToDeskResponse(desk))
}

// updateDeskStatus godoc
// @Summary Change desk status
// @Description inactive/active toggle the desk's service flag; unavailable/available toggle the maintenance block. Rejected while the desk holds live bookings from today on.
// @Tags desks
// @Accept json
// @Produce json
// @Param id path string true "Desk ID"
// @Param status body dto.UpdateDeskStatusRequest true "Status command"
// @Success 200 {object} dto.DeskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Desk has live bookings"
// @Security BearerAuth
// @Router /desks/{id}/status [patch]
func (h *deskHandler) updateDeskStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateDeskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	desk, err := h.deskService.UpdateDeskStatus(c.Request.Context(), actor, c.Param("id"), domain.DeskStatusChange(req.Status))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDeskResponse(desk))
}
