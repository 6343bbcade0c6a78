package entity

import (
	"time"

	"lesson-booking-admin/internal/domain/billing"
)

// AttendanceStatus tracks whether the lesson took place
type AttendanceStatus string

const (
	AttendancePending   AttendanceStatus = "pending"
	AttendanceConfirmed AttendanceStatus = "confirmed"
	AttendanceCompleted AttendanceStatus = "completed"
	AttendanceNoShow    AttendanceStatus = "no-show"
	AttendanceCancelled AttendanceStatus = "cancelled"
)

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePending, AttendanceConfirmed, AttendanceCompleted, AttendanceNoShow, AttendanceCancelled:
		return true
	}
	return false
}

// IsArchived reports whether a booking with this attendance belongs to the archive
func (s AttendanceStatus) IsArchived() bool {
	return s == AttendanceCompleted || s == AttendanceNoShow || s == AttendanceCancelled
}

// ArchivedAttendanceStatuses returns the attendance values that move a booking to the archive
func ArchivedAttendanceStatuses() []AttendanceStatus {
	return []AttendanceStatus{AttendanceCompleted, AttendanceNoShow, AttendanceCancelled}
}

// Booking represents a scheduled lesson session
type Booking struct {
	ID               int                     `gorm:"primaryKey;autoIncrement" json:"id"`
	AthleteID        *int                    `gorm:"index" json:"athlete_id,omitempty"`
	ParentID         *int                    `gorm:"index" json:"parent_id,omitempty"`
	LessonTypeID     *int                    `gorm:"index" json:"lesson_type_id,omitempty"`
	LessonType       billing.LessonTypeField `gorm:"column:lesson_type;type:jsonb" json:"lesson_type"`
	Amount           *string                 `gorm:"type:varchar(32)" json:"amount,omitempty"`
	PaymentStatus    *billing.PaymentStatus  `gorm:"type:varchar(32);index" json:"payment_status,omitempty"`
	PaidAmount       *string                 `gorm:"type:varchar(32)" json:"paid_amount,omitempty"`
	AttendanceStatus AttendanceStatus        `gorm:"type:varchar(20);not null;default:'pending';index" json:"attendance_status"`
	StartTime        time.Time               `gorm:"not null;index" json:"start_time"`
	EndTime          time.Time               `gorm:"not null" json:"end_time"`
	Notes            string                  `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time               `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time               `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Athlete           *Athlete    `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
	Parent            *Parent     `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	CatalogLessonType *LessonType `gorm:"foreignKey:LessonTypeID" json:"catalog_lesson_type,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// CurrentPaymentStatus returns the stored status, empty when the booking never had one
func (b *Booking) CurrentPaymentStatus() billing.PaymentStatus {
	if b.PaymentStatus == nil {
		return ""
	}
	return *b.PaymentStatus
}

// PriceInput extracts the fields the price resolver reads
func (b *Booking) PriceInput() billing.PriceInput {
	return billing.PriceInput{
		LessonTypeID: b.LessonTypeID,
		LessonType:   b.LessonType,
		Amount:       b.Amount,
	}
}

// Figures derives total price, paid amount and balance due against the catalog
func (b *Booking) Figures(catalog *billing.Catalog) billing.Figures {
	return billing.Assess(b.PriceInput(), b.CurrentPaymentStatus(), b.PaidAmount, catalog)
}

// IsArchived checks if the booking is out of the active list
func (b *Booking) IsArchived() bool {
	return b.AttendanceStatus.IsArchived()
}
