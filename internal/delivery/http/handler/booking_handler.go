package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lesson-booking-admin/internal/delivery/dto"
	"lesson-booking-admin/internal/usecase"
	"lesson-booking-admin/pkg/response"
	"lesson-booking-admin/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// ListBookings handles the bookings table
// @Summary List bookings
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param view query string false "active, archived or all" default(active)
// @Param payment_status query string false "Payment status filter"
// @Param attendance_status query string false "Attendance status filter"
// @Param athlete_id query int false "Athlete filter"
// @Param from query string false "Start date inclusive (YYYY-MM-DD)"
// @Param to query string false "Start date exclusive (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	athleteID, err := queryIntPtr(r, "athlete_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid athlete ID", nil)
		return
	}

	q := r.URL.Query()
	query := &dto.BookingQuery{
		View:             q.Get("view"),
		PaymentStatus:    q.Get("payment_status"),
		AttendanceStatus: q.Get("attendance_status"),
		AthleteID:        athleteID,
		From:             q.Get("from"),
		To:               q.Get("to"),
		Page:             queryInt(r, "page"),
		Limit:            queryInt(r, "limit"),
	}

	result, err := h.bookingUsecase.ListBookings(r.Context(), query)
	if err != nil {
		writeBookingError(w, err, "Failed to get bookings")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Bookings retrieved successfully", result.Bookings,
		response.NewMeta(result.Page, result.Limit, result.Total))
}

// GetBooking handles booking detail
// @Summary Get a booking
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), id)
	if err != nil {
		writeBookingError(w, err, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

// CreateBooking handles booking creation
// @Summary Create a booking
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/bookings [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		writeBookingError(w, err, "Failed to create booking")
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

// UpdatePaymentStatus handles the payment status selector
// @Summary Set payment status
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.UpdatePaymentStatusRequest true "Payment status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/bookings/{id}/payment-status [patch]
func (h *BookingHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.UpdatePaymentStatus(r.Context(), id, &req)
	if err != nil {
		writeBookingError(w, err, "Failed to update payment status")
		return
	}

	response.Success(w, http.StatusOK, "Payment status updated successfully", booking)
}

// MarkPaid handles the "mark paid" quick action
// @Summary Advance payment status
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/bookings/{id}/mark-paid [post]
func (h *BookingHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.MarkPaid(r.Context(), id)
	if err != nil {
		writeBookingError(w, err, "Failed to mark booking paid")
		return
	}

	response.Success(w, http.StatusOK, "Booking marked paid", booking)
}

// UpdateAttendance handles the attendance selector
// @Summary Set attendance status
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.UpdateAttendanceRequest true "Attendance status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/bookings/{id}/attendance [patch]
func (h *BookingHandler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.UpdateAttendance(r.Context(), id, &req)
	if err != nil {
		writeBookingError(w, err, "Failed to update attendance")
		return
	}

	response.Success(w, http.StatusOK, "Attendance updated successfully", booking)
}

// DeleteBooking handles booking deletion
// @Summary Delete a booking
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	if err := h.bookingUsecase.DeleteBooking(r.Context(), id); err != nil {
		writeBookingError(w, err, "Failed to delete booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking deleted successfully", nil)
}

// GetCalendar feeds the scheduling calendar
// @Summary Bookings in a date range
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end, exclusive (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/calendar [get]
func (h *BookingHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.Error(w, http.StatusBadRequest, "start and end query parameters are required", nil)
		return
	}

	calendar, err := h.bookingUsecase.GetCalendar(r.Context(), start, end)
	if err != nil {
		writeBookingError(w, err, "Failed to get calendar")
		return
	}

	response.Success(w, http.StatusOK, "Calendar retrieved successfully", calendar)
}

// GetAthleteBookings handles the athlete booking history
// @Summary Bookings of one athlete
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/athletes/{id}/bookings [get]
func (h *BookingHandler) GetAthleteBookings(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid athlete ID", nil)
		return
	}

	result, err := h.bookingUsecase.GetAthleteBookings(r.Context(), id)
	if err != nil {
		writeBookingError(w, err, "Failed to get athlete bookings")
		return
	}

	response.Success(w, http.StatusOK, "Athlete bookings retrieved successfully", result)
}

func writeBookingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, usecase.ErrAthleteNotFound):
		response.NotFound(w, "Athlete not found")
	case errors.Is(err, usecase.ErrParentNotFound):
		response.NotFound(w, "Parent not found")
	case errors.Is(err, usecase.ErrLessonTypeNotFound):
		response.NotFound(w, "Lesson type not found")
	case errors.Is(err, usecase.ErrInvalidPaymentStatus),
		errors.Is(err, usecase.ErrInvalidAttendanceStatus),
		errors.Is(err, usecase.ErrInvalidBookingView),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrPaidAmountNotApplicable),
		errors.Is(err, usecase.ErrInvalidDateFormat),
		errors.Is(err, usecase.ErrInvalidDateRange):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrPaymentStatusConflict):
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
