package dto

import "time"

// Request DTOs

type CreateParentRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=50"`
}

type UpdateParentRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=50"`
}

// Response DTOs

type ParentResponse struct {
	ID        int               `json:"id"`
	FullName  string            `json:"full_name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Athletes  []AthleteResponse `json:"athletes,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type ParentListResponse struct {
	Parents []ParentResponse `json:"parents"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}
