package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// presenceHandler answers the client's office network polling and exposes the booking rules.
type presenceHandler struct {
	gate           portssvc.CheckInGateSvc
	bookingService portssvc.BookingLifecycleSvc
	policy         portssvc.BookingPolicySvc
}

func registerPresenceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &presenceHandler{gate: services.Gate, bookingService: services.Booking, policy: services.Policy}

	rg.POST("/presence", h.probe)
	rg.POST("/presence/check-in", h.checkInToday)
	rg.GET("/policy", h.describePolicy)
}

// probe godoc
// @Summary Office network probe
// @Description Reports whether the reported address, or the request address when none is given, is on the office network.
// @Tags presence
// @Accept json
// @Produce json
// @Param evidence body dto.PresenceRequest false "Network evidence"
// @Success 200 {object} dto.PresenceResponse
// @Security BearerAuth
// @Router /presence [post]
func (h *presenceHandler) probe(c *gin.Context) {
	var req dto.PresenceRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}
	p := h.gate.Probe(c.Request.Context(), evidenceFrom(c, req.NetworkEvidence))
	c.JSON(http.StatusOK, dto.PresenceResponse{OnOfficeNetwork: p.OnOfficeNetwork, ObservedAddress: p.ObservedAddress})
}

// checkInToday godoc
// @Summary Check in to today's booking
// @Description Checks in the caller's reserved booking for today. A booking already checked in is returned unchanged.
// @Tags presence
// @Accept json
// @Produce json
// @Param evidence body dto.PresenceRequest false "Network evidence"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} ErrorResponse "Not on the office network"
// @Failure 404 {object} ErrorResponse "No booking for today"
// @Failure 422 {object} ErrorResponse "Outside the check-in window"
// @Security BearerAuth
// @Router /presence/check-in [post]
func (h *presenceHandler) checkInToday(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.PresenceRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	booking, err := h.bookingService.CheckInToday(c.Request.Context(), actor, evidenceFrom(c, req.NetworkEvidence))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// describePolicy godoc
// @Summary Booking rules
// @Description Office hours, slot grid, lead time and per desk type rules.
// @Tags presence
// @Produce json
// @Success 200 {object} dto.PolicyResponse
// @Security BearerAuth
// @Router /policy [get]
func (h *presenceHandler) describePolicy(c *gin.Context) {
	c.JSON(http.StatusOK, h.policy.Describe())
}
