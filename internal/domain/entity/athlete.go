package entity

import "time"

// Athlete is a student who takes lessons
type Athlete struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	ParentID    *int       `gorm:"index" json:"parent_id,omitempty"`
	FirstName   string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string     `gorm:"type:varchar(100);not null" json:"last_name"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Sport       string     `gorm:"type:varchar(100)" json:"sport,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Parent *Parent `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
}

func (Athlete) TableName() string {
	return "athletes"
}

func (a *Athlete) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
