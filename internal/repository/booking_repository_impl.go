package repository

import (
	"context"
	"errors"
	"time"

	"lesson-booking-admin/internal/domain/billing"
	"lesson-booking-admin/internal/domain/entity"
	domainRepo "lesson-booking-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) domainRepo.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return conn(ctx, r.db).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id int) (*entity.Booking, error) {
	var booking entity.Booking
	err := conn(ctx, r.db).
		Preload("Athlete").
		Preload("Parent").
		Preload("CatalogLessonType").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filter *entity.BookingFilter) ([]entity.Booking, int64, error) {
	var bookings []entity.Booking
	var total int64

	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.filtered(ctx, filter).
		Preload("Athlete").
		Preload("CatalogLessonType").
		Order("start_time DESC, id DESC")
	if filter != nil && filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	if err := query.Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// filtered builds a fresh query for every call so Count and Find do not share state.
func (r *bookingRepository) filtered(ctx context.Context, filter *entity.BookingFilter) *gorm.DB {
	query := conn(ctx, r.db).Model(&entity.Booking{})
	if filter == nil {
		return query
	}

	switch filter.View {
	case entity.BookingViewActive:
		query = query.Where("attendance_status NOT IN ?", entity.ArchivedAttendanceStatuses())
	case entity.BookingViewArchived:
		query = query.Where("attendance_status IN ?", entity.ArchivedAttendanceStatuses())
	}

	if filter.PaymentStatus != "" {
		if filter.PaymentStatus == billing.PaymentUnpaid {
			query = query.Where("(payment_status = ? OR payment_status IS NULL)", filter.PaymentStatus)
		} else {
			query = query.Where("payment_status = ?", filter.PaymentStatus)
		}
	}
	if filter.AttendanceStatus != "" {
		query = query.Where("attendance_status = ?", filter.AttendanceStatus)
	}
	if filter.AthleteID != nil {
		query = query.Where("athlete_id = ?", *filter.AthleteID)
	}
	if filter.StartFrom != nil {
		query = query.Where("start_time >= ?", *filter.StartFrom)
	}
	if filter.StartTo != nil {
		query = query.Where("start_time < ?", *filter.StartTo)
	}

	return query
}

func (r *bookingRepository) FindByStartRange(ctx context.Context, start, end time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := conn(ctx, r.db).
		Preload("Athlete").
		Preload("CatalogLessonType").
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time ASC, id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdatePaymentStatus moves the booking from status `from` (nil: never set) to `to`.
// paidAmount is written only when non-nil. Returns affected rows: 0 means the booking
// does not exist or its status is no longer `from`.
func (r *bookingRepository) UpdatePaymentStatus(ctx context.Context, id int, from *billing.PaymentStatus, to billing.PaymentStatus, paidAmount *string) (int64, error) {
	updates := map[string]interface{}{"payment_status": to}
	if paidAmount != nil {
		updates["paid_amount"] = *paidAmount
	}

	var current interface{}
	if from != nil {
		current = string(*from)
	}

	result := conn(ctx, r.db).Model(&entity.Booking{}).
		Where("id = ? AND payment_status IS NOT DISTINCT FROM ?", id, current).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) UpdateAttendance(ctx context.Context, id int, status entity.AttendanceStatus) (int64, error) {
	result := conn(ctx, r.db).Model(&entity.Booking{}).
		Where("id = ?", id).
		Update("attendance_status", status)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) Delete(ctx context.Context, id int) error {
	return conn(ctx, r.db).Where("id = ?", id).Delete(&entity.Booking{}).Error
}
