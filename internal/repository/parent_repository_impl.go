package repository

import (
	"context"
	"errors"

	"lesson-booking-admin/internal/domain/entity"
	domainRepo "lesson-booking-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type parentRepository struct {
	db *gorm.DB
}

func NewParentRepository(db *gorm.DB) domainRepo.ParentRepository {
	return &parentRepository{db: db}
}

func (r *parentRepository) Create(ctx context.Context, parent *entity.Parent) error {
	return conn(ctx, r.db).Create(parent).Error
}

func (r *parentRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Parent, int64, error) {
	var parents []entity.Parent
	var total int64

	if err := conn(ctx, r.db).Model(&entity.Parent{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := conn(ctx, r.db).Limit(limit).Offset(offset).Order("full_name ASC").Find(&parents).Error; err != nil {
		return nil, 0, err
	}

	return parents, total, nil
}

func (r *parentRepository) FindByID(ctx context.Context, id int) (*entity.Parent, error) {
	var parent entity.Parent
	err := conn(ctx, r.db).Preload("Athletes").Where("id = ?", id).First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parent, nil
}

func (r *parentRepository) Update(ctx context.Context, parent *entity.Parent) error {
	return conn(ctx, r.db).Omit("Athletes").Save(parent).Error
}

func (r *parentRepository) Delete(ctx context.Context, id int) error {
	return conn(ctx, r.db).Where("id = ?", id).Delete(&entity.Parent{}).Error
}
