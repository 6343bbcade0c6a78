package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Actor     string    `gorm:"type:varchar(255);index" json:"actor,omitempty"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionBookingCreate        = "booking.create"
	AuditActionBookingDelete        = "booking.delete"
	AuditActionBookingPaymentStatus = "booking.payment_status"
	AuditActionBookingAttendance    = "booking.attendance"
	AuditActionLessonTypeCreate     = "lesson_type.create"
	AuditActionLessonTypeUpdate     = "lesson_type.update"
	AuditActionLessonTypeDelete     = "lesson_type.delete"
	AuditActionAthleteCreate        = "athlete.create"
	AuditActionAthleteUpdate        = "athlete.update"
	AuditActionAthleteDelete        = "athlete.delete"
	AuditActionParentCreate         = "parent.create"
	AuditActionParentUpdate         = "parent.update"
	AuditActionParentDelete         = "parent.delete"
)
