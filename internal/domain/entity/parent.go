package entity

import "time"

// Parent is the guardian responsible for one or more athletes
type Parent struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Athletes []Athlete `gorm:"foreignKey:ParentID" json:"athletes,omitempty"`
}

func (Parent) TableName() string {
	return "parents"
}
