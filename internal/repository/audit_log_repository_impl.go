package repository

import (
	"context"
	"errors"

	"lesson-booking-admin/internal/domain/entity"
	domainRepo "lesson-booking-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) domainRepo.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Create runs in its own savepoint so a failed insert leaves a surrounding transaction usable
func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Create(log).Error
	})
}

func (r *auditLogRepository) FindAll(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	query := conn(ctx, r.db).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := conn(ctx, r.db).Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
