package handler

import (
	"errors"
	"net/http"

	"lesson-booking-admin/internal/usecase"
	"lesson-booking-admin/pkg/response"
)

type PaymentSummaryHandler struct {
	summaryUsecase usecase.PaymentSummaryUsecase
}

func NewPaymentSummaryHandler(summaryUsecase usecase.PaymentSummaryUsecase) *PaymentSummaryHandler {
	return &PaymentSummaryHandler{summaryUsecase: summaryUsecase}
}

// GetSummary handles the payments tab totals
// @Summary Payments summary
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param view query string false "active, archived or all" default(active)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/payments/summary [get]
func (h *PaymentSummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summaryUsecase.GetSummary(r.Context(), r.URL.Query().Get("view"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidBookingView) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to get payments summary")
		return
	}

	response.Success(w, http.StatusOK, "Payments summary retrieved successfully", summary)
}
