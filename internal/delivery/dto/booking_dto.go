package dto

import (
	"time"

	"lesson-booking-admin/internal/domain/billing"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	AthleteID        *int                    `json:"athlete_id" validate:"omitempty,min=1"`
	ParentID         *int                    `json:"parent_id" validate:"omitempty,min=1"`
	LessonTypeID     *int                    `json:"lesson_type_id" validate:"omitempty,min=1"`
	LessonType       billing.LessonTypeField `json:"lesson_type"`
	Amount           *string                 `json:"amount"`
	PaymentStatus    *billing.PaymentStatus  `json:"payment_status"`
	PaidAmount       *string                 `json:"paid_amount"`
	AttendanceStatus string                  `json:"attendance_status"`
	StartTime        time.Time               `json:"start_time" validate:"required"`
	EndTime          time.Time               `json:"end_time" validate:"required,gtfield=StartTime"`
	Notes            string                  `json:"notes" validate:"max=2000"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus billing.PaymentStatus `json:"payment_status" validate:"required"`
	PaidAmount    *string               `json:"paid_amount"`
}

type UpdateAttendanceRequest struct {
	AttendanceStatus string `json:"attendance_status" validate:"required"`
}

// BookingQuery holds list filters parsed from the query string
type BookingQuery struct {
	View             string
	PaymentStatus    string
	AttendanceStatus string
	AthleteID        *int
	From             string // YYYY-MM-DD
	To               string // YYYY-MM-DD, exclusive
	Page             int
	Limit            int
}

// Response DTOs

type BookingAthleteResponse struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
}

type BookingResponse struct {
	ID                int                     `json:"id"`
	AthleteID         *int                    `json:"athlete_id,omitempty"`
	Athlete           *BookingAthleteResponse `json:"athlete,omitempty"`
	ParentID          *int                    `json:"parent_id,omitempty"`
	LessonTypeID      *int                    `json:"lesson_type_id,omitempty"`
	LessonType        billing.LessonTypeField `json:"lesson_type"`
	LessonTypeName    string                  `json:"lesson_type_name,omitempty"`
	Amount            *string                 `json:"amount,omitempty"`
	PaymentStatus     billing.PaymentStatus   `json:"payment_status"`
	AttendanceStatus  string                  `json:"attendance_status"`
	Archived          bool                    `json:"archived"`
	StartTime         time.Time               `json:"start_time"`
	EndTime           time.Time               `json:"end_time"`
	Notes             string                  `json:"notes,omitempty"`
	TotalPrice        decimal.Decimal         `json:"total_price"`
	PaidAmount        decimal.Decimal         `json:"paid_amount"`
	BalanceDue        decimal.Decimal         `json:"balance_due"`
	TotalPriceDisplay string                  `json:"total_price_display"`
	PaidAmountDisplay string                  `json:"paid_amount_display"`
	BalanceDueDisplay string                  `json:"balance_due_display"`
	NextPaymentStatus billing.PaymentStatus   `json:"next_payment_status"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page,omitempty"`
	Limit    int               `json:"limit,omitempty"`
}

type CalendarResponse struct {
	Start    string            `json:"start"`
	End      string            `json:"end"`
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
