package entity

import (
	"time"

	"lesson-booking-admin/internal/domain/billing"

	"github.com/shopspring/decimal"
)

// LessonType is a catalog entry defining a session's name and base price
type LessonType struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Key             string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Name            string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int             `gorm:"not null;default:60" json:"duration_minutes"`
	IsActive        *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LessonType) TableName() string {
	return "lesson_types"
}

// CatalogEntry returns the pricing view of the lesson type
func (l *LessonType) CatalogEntry() billing.CatalogEntry {
	price := l.Price
	return billing.CatalogEntry{
		ID:    l.ID,
		Key:   l.Key,
		Name:  l.Name,
		Price: &price,
	}
}

// CatalogEntries converts lesson types to pricing catalog entries
func CatalogEntries(lessonTypes []LessonType) []billing.CatalogEntry {
	entries := make([]billing.CatalogEntry, len(lessonTypes))
	for i := range lessonTypes {
		entries[i] = lessonTypes[i].CatalogEntry()
	}
	return entries
}
