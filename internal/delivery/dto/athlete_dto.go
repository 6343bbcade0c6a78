package dto

import "time"

// Request DTOs

type CreateAthleteRequest struct {
	ParentID    *int   `json:"parent_id" validate:"omitempty,min=1"`
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Sport       string `json:"sport" validate:"max=100"`
	Notes       string `json:"notes"`
}

type UpdateAthleteRequest struct {
	ParentID    *int   `json:"parent_id" validate:"omitempty,min=1"`
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Sport       string `json:"sport" validate:"max=100"`
	Notes       string `json:"notes"`
}

// Response DTOs

type AthleteResponse struct {
	ID          int             `json:"id"`
	ParentID    *int            `json:"parent_id,omitempty"`
	Parent      *ParentResponse `json:"parent,omitempty"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	FullName    string          `json:"full_name"`
	DateOfBirth string          `json:"date_of_birth,omitempty"`
	Sport       string          `json:"sport,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type AthleteListResponse struct {
	Athletes []AthleteResponse `json:"athletes"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
