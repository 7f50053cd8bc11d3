package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/desk_booking_app/internal/core/ports/services"
	"github.com/SscSPs/desk_booking_app/internal/dto"
	"github.com/SscSPs/desk_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bookingHandler serves the booking ledger.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
	exportService  portssvc.ExportSvc
}

func newBookingHandler(bs portssvc.BookingSvcFacade, es portssvc.ExportSvc) *bookingHandler {
	return &bookingHandler{bookingService: bs, exportService: es}
}

func registerBookingRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newBookingHandler(services.Booking, services.Export)
	elevated := middleware.RequireRole(middleware.ElevatedRoles...)

	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.listBookings)
		bookings.POST("", h.createBooking)
		bookings.GET("/export.csv", elevated, h.exportBookings)
		bookings.GET("/:id", h.getBooking)
		bookings.PATCH("/:id", h.rescheduleBooking)
		bookings.POST("/:id/cancel", h.cancelBooking)
		bookings.POST("/:id/check-in", h.checkIn)
		bookings.POST("/:id/complete", elevated, h.completeBooking)
	}
}

// bindOptionalJSON binds the body when one was sent. An empty body leaves obj untouched.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// createBooking godoc
// @Summary Book a desk
// @Description Reserves a desk for a date and start time. Fails with 409 when the desk or the caller already holds a live booking that day.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Role may not book this desk type"
// @Failure 404 {object} ErrorResponse "Desk missing or inactive"
// @Failure 409 {object} ErrorResponse "Desk already booked"
// @Failure 422 {object} ErrorResponse "Outside the booking window"
// @Security BearerAuth
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Booking created",
		slog.String("booking_id", booking.BookingID), slog.String("desk_id", booking.DeskID), slog.String("date", booking.DateString()))
	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// listBookings godoc
// @Summary List bookings
// @Description Lists the caller's bookings, newest date first. scope=all lists everyone's and requires an elevated role.
// @Tags bookings
// @Produce json
// @Param scope query string false "me or all" default(me)
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param status query string false "Booking status"
// @Param deskID query string false "Desk ID"
// @Param userID query string false "User ID (scope=all only)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListBookingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.bookingService.ListBookings(c.Request.Context(), actor, params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getBooking godoc
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	booking, err := h.bookingService.GetBooking(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// rescheduleBooking godoc
// @Summary Reschedule a booking
// @Description Moves a reserved booking to another date, time or desk. Omitted fields are kept.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param changes body dto.RescheduleBookingRequest true "Changes"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Target taken or booking not reserved"
// @Failure 422 {object} ErrorResponse "Inside the lead time or outside the booking window"
// @Security BearerAuth
// @Router /bookings/{id} [patch]
func (h *bookingHandler) rescheduleBooking(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	booking, err := h.bookingService.RescheduleBooking(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// cancelBooking godoc
// @Summary Cancel a booking
// @Description Cancels a reserved or checked-in booking and frees the desk.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Booking already completed or cancelled"
// @Failure 422 {object} ErrorResponse "Inside the lead time"
// @Security BearerAuth
// @Router /bookings/{id}/cancel [post]
func (h *bookingHandler) cancelBooking(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	booking, err := h.bookingService.CancelBooking(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// checkIn godoc
// @Summary Check in
// @Description Checks a reserved booking in when the network evidence (or the request address) is on the office network.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param evidence body dto.CheckInRequest false "Network evidence"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} ErrorResponse "Not the owner, or not on the office network"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Booking not reserved"
// @Failure 422 {object} ErrorResponse "Outside the check-in window"
// @Security BearerAuth
// @Router /bookings/{id}/check-in [post]
func (h *bookingHandler) checkIn(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.CheckInRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	booking, err := h.bookingService.CheckIn(c.Request.Context(), actor, c.Param("id"), evidenceFrom(c, req.NetworkEvidence))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// completeBooking godoc
// @Summary Complete a booking
// @Description Completes a checked-in booking whose window has ended.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Window not over yet"
// @Security BearerAuth
// @Router /bookings/{id}/complete [post]
func (h *bookingHandler) completeBooking(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	booking, err := h.bookingService.CompleteBooking(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// exportBookings godoc
// @Summary Export bookings
// @Description Booking history as CSV. Elevated roles only.
// @Tags bookings
// @Produce text/csv
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param status query string false "Booking status"
// @Success 200 {string} string "CSV"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/export.csv [get]
func (h *bookingHandler) exportBookings(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListBookingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="bookings.csv"`)
	c.Status(http.StatusOK)
	if err := h.exportService.ExportBookingsCSV(c.Request.Context(), actor, params, c.Writer); err != nil {
		if c.Writer.Written() {
			// Headers are gone; all that is left is to log.
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Export aborted mid-stream", slog.String("error", err.Error()))
			return
		}
		c.Writer.Header().Del("Content-Type")
		c.Writer.Header().Del("Content-Disposition")
		respondWithError(c, err)
	}
}
