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

type LessonTypeHandler struct {
	lessonTypeUsecase usecase.LessonTypeUsecase
	validator         *validator.CustomValidator
}

func NewLessonTypeHandler(lessonTypeUsecase usecase.LessonTypeUsecase, validator *validator.CustomValidator) *LessonTypeHandler {
	return &LessonTypeHandler{
		lessonTypeUsecase: lessonTypeUsecase,
		validator:         validator,
	}
}

func (h *LessonTypeHandler) CreateLessonType(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLessonTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	lessonType, err := h.lessonTypeUsecase.CreateLessonType(r.Context(), &req)
	if err != nil {
		writeLessonTypeError(w, err, "Failed to create lesson type")
		return
	}

	response.Success(w, http.StatusCreated, "Lesson type created successfully", lessonType)
}

func (h *LessonTypeHandler) GetAllLessonTypes(w http.ResponseWriter, r *http.Request) {
	lessonTypes, err := h.lessonTypeUsecase.GetAllLessonTypes(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get lesson types")
		return
	}

	response.Success(w, http.StatusOK, "Lesson types retrieved successfully", lessonTypes)
}

func (h *LessonTypeHandler) GetLessonType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lesson type ID", nil)
		return
	}

	lessonType, err := h.lessonTypeUsecase.GetLessonType(r.Context(), id)
	if err != nil {
		writeLessonTypeError(w, err, "Failed to get lesson type")
		return
	}

	response.Success(w, http.StatusOK, "Lesson type retrieved successfully", lessonType)
}

func (h *LessonTypeHandler) UpdateLessonType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lesson type ID", nil)
		return
	}

	var req dto.UpdateLessonTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	lessonType, err := h.lessonTypeUsecase.UpdateLessonType(r.Context(), id, &req)
	if err != nil {
		writeLessonTypeError(w, err, "Failed to update lesson type")
		return
	}

	response.Success(w, http.StatusOK, "Lesson type updated successfully", lessonType)
}

func (h *LessonTypeHandler) DeleteLessonType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lesson type ID", nil)
		return
	}

	if err := h.lessonTypeUsecase.DeleteLessonType(r.Context(), id); err != nil {
		writeLessonTypeError(w, err, "Failed to delete lesson type")
		return
	}

	response.Success(w, http.StatusOK, "Lesson type deleted successfully", nil)
}

func writeLessonTypeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrLessonTypeNotFound):
		response.NotFound(w, "Lesson type not found")
	case errors.Is(err, usecase.ErrLessonTypeExists):
		response.Conflict(w, "Lesson type with this name or key already exists")
	case errors.Is(err, usecase.ErrLessonTypeInUse):
		response.Conflict(w, "Lesson type is used by existing bookings")
	case errors.Is(err, usecase.ErrInvalidPrice):
		response.Error(w, http.StatusBadRequest, "Price must not be negative", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
