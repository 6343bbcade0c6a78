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

type ParentHandler struct {
	parentUsecase usecase.ParentUsecase
	validator     *validator.CustomValidator
}

func NewParentHandler(parentUsecase usecase.ParentUsecase, validator *validator.CustomValidator) *ParentHandler {
	return &ParentHandler{
		parentUsecase: parentUsecase,
		validator:     validator,
	}
}

func (h *ParentHandler) CreateParent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateParentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	parent, err := h.parentUsecase.CreateParent(r.Context(), &req)
	if err != nil {
		writeParentError(w, err, "Failed to create parent")
		return
	}

	response.Success(w, http.StatusCreated, "Parent created successfully", parent)
}

func (h *ParentHandler) GetAllParents(w http.ResponseWriter, r *http.Request) {
	result, err := h.parentUsecase.GetAllParents(r.Context(), queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		response.InternalServerError(w, "Failed to get parents")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Parents retrieved successfully", result.Parents,
		response.NewMeta(result.Page, result.Limit, result.Total))
}

func (h *ParentHandler) GetParent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid parent ID", nil)
		return
	}

	parent, err := h.parentUsecase.GetParent(r.Context(), id)
	if err != nil {
		writeParentError(w, err, "Failed to get parent")
		return
	}

	response.Success(w, http.StatusOK, "Parent retrieved successfully", parent)
}

func (h *ParentHandler) UpdateParent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid parent ID", nil)
		return
	}

	var req dto.UpdateParentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	parent, err := h.parentUsecase.UpdateParent(r.Context(), id, &req)
	if err != nil {
		writeParentError(w, err, "Failed to update parent")
		return
	}

	response.Success(w, http.StatusOK, "Parent updated successfully", parent)
}

func (h *ParentHandler) DeleteParent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid parent ID", nil)
		return
	}

	if err := h.parentUsecase.DeleteParent(r.Context(), id); err != nil {
		writeParentError(w, err, "Failed to delete parent")
		return
	}

	response.Success(w, http.StatusOK, "Parent deleted successfully", nil)
}

func writeParentError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrParentNotFound):
		response.NotFound(w, "Parent not found")
	case errors.Is(err, usecase.ErrParentEmailExists):
		response.Conflict(w, "Parent with this email already exists")
	case errors.Is(err, usecase.ErrParentHasAthletes):
		response.Conflict(w, "Parent still has athletes")
	default:
		response.InternalServerError(w, fallback)
	}
}
