package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateLessonTypeRequest struct {
	Key             string          `json:"key" validate:"omitempty,max=100"`
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	DurationMinutes int             `json:"duration_minutes" validate:"omitempty,min=1"`
	IsActive        *bool           `json:"is_active"`
}

type UpdateLessonTypeRequest struct {
	Key             string          `json:"key" validate:"omitempty,max=100"`
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	DurationMinutes int             `json:"duration_minutes" validate:"omitempty,min=1"`
	IsActive        *bool           `json:"is_active"`
}

// Response DTOs

type LessonTypeResponse struct {
	ID              int             `json:"id"`
	Key             string          `json:"key"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	PriceDisplay    string          `json:"price_display"`
	DurationMinutes int             `json:"duration_minutes"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type LessonTypeListResponse struct {
	LessonTypes []LessonTypeResponse `json:"lesson_types"`
	Total       int                  `json:"total"`
}
