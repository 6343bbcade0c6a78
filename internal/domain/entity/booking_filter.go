package entity

import (
	"time"

	"lesson-booking-admin/internal/domain/billing"
)

// BookingView selects active, archived or all bookings
type BookingView string

const (
	BookingViewActive   BookingView = "active"
	BookingViewArchived BookingView = "archived"
	BookingViewAll      BookingView = "all"
)

func (v BookingView) IsValid() bool {
	switch v {
	case BookingViewActive, BookingViewArchived, BookingViewAll:
		return true
	}
	return false
}

// BookingFilter is a domain-level filter for querying bookings.
// Used by repository layer to avoid coupling with delivery DTOs.
type BookingFilter struct {
	View             BookingView
	PaymentStatus    billing.PaymentStatus // "unpaid" also matches bookings with no status
	AttendanceStatus AttendanceStatus
	AthleteID        *int
	StartFrom        *time.Time // inclusive
	StartTo          *time.Time // exclusive
	Limit            int        // 0 means no limit
	Offset           int
}
