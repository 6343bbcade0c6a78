package repository

import (
	"context"
	"time"

	"lesson-booking-admin/internal/domain/billing"
	"lesson-booking-admin/internal/domain/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int) (*entity.Booking, error)
	FindAll(ctx context.Context, filter *entity.BookingFilter) ([]entity.Booking, int64, error)
	FindByStartRange(ctx context.Context, start, end time.Time) ([]entity.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id int, from *billing.PaymentStatus, to billing.PaymentStatus, paidAmount *string) (int64, error)
	UpdateAttendance(ctx context.Context, id int, status entity.AttendanceStatus) (int64, error)
	Delete(ctx context.Context, id int) error
}
