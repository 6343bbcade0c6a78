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

type AthleteHandler struct {
	athleteUsecase usecase.AthleteUsecase
	validator      *validator.CustomValidator
}

func NewAthleteHandler(athleteUsecase usecase.AthleteUsecase, validator *validator.CustomValidator) *AthleteHandler {
	return &AthleteHandler{
		athleteUsecase: athleteUsecase,
		validator:      validator,
	}
}

func (h *AthleteHandler) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	athlete, err := h.athleteUsecase.CreateAthlete(r.Context(), &req)
	if err != nil {
		writeAthleteError(w, err, "Failed to create athlete")
		return
	}

	response.Success(w, http.StatusCreated, "Athlete created successfully", athlete)
}

func (h *AthleteHandler) GetAllAthletes(w http.ResponseWriter, r *http.Request) {
	parentID, err := queryIntPtr(r, "parent_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid parent ID", nil)
		return
	}

	result, err := h.athleteUsecase.GetAllAthletes(r.Context(), parentID, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		response.InternalServerError(w, "Failed to get athletes")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Athletes retrieved successfully", result.Athletes,
		response.NewMeta(result.Page, result.Limit, result.Total))
}

func (h *AthleteHandler) GetAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid athlete ID", nil)
		return
	}

	athlete, err := h.athleteUsecase.GetAthlete(r.Context(), id)
	if err != nil {
		writeAthleteError(w, err, "Failed to get athlete")
		return
	}

	response.Success(w, http.StatusOK, "Athlete retrieved successfully", athlete)
}

func (h *AthleteHandler) UpdateAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid athlete ID", nil)
		return
	}

	var req dto.UpdateAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	athlete, err := h.athleteUsecase.UpdateAthlete(r.Context(), id, &req)
	if err != nil {
		writeAthleteError(w, err, "Failed to update athlete")
		return
	}

	response.Success(w, http.StatusOK, "Athlete updated successfully", athlete)
}

func (h *AthleteHandler) DeleteAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid athlete ID", nil)
		return
	}

	if err := h.athleteUsecase.DeleteAthlete(r.Context(), id); err != nil {
		writeAthleteError(w, err, "Failed to delete athlete")
		return
	}

	response.Success(w, http.StatusOK, "Athlete deleted successfully", nil)
}

func writeAthleteError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrAthleteNotFound):
		response.NotFound(w, "Athlete not found")
	case errors.Is(err, usecase.ErrParentNotFound):
		response.NotFound(w, "Parent not found")
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.Error(w, http.StatusBadRequest, "Invalid date of birth, use YYYY-MM-DD", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
