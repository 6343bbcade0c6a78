package repository

import (
	"context"
	"errors"

	"lesson-booking-admin/internal/domain/entity"
	domainRepo "lesson-booking-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type athleteRepository struct {
	db *gorm.DB
}

func NewAthleteRepository(db *gorm.DB) domainRepo.AthleteRepository {
	return &athleteRepository{db: db}
}

func (r *athleteRepository) Create(ctx context.Context, athlete *entity.Athlete) error {
	return conn(ctx, r.db).Create(athlete).Error
}

func (r *athleteRepository) FindAll(ctx context.Context, parentID *int, limit, offset int) ([]entity.Athlete, int64, error) {
	var athletes []entity.Athlete
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		if parentID != nil {
			return db.Where("parent_id = ?", *parentID)
		}
		return db
	}

	if err := conn(ctx, r.db).Model(&entity.Athlete{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := conn(ctx, r.db).
		Scopes(scope).
		Preload("Parent").
		Order("last_name ASC, first_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&athletes).Error
	if err != nil {
		return nil, 0, err
	}

	return athletes, total, nil
}

func (r *athleteRepository) FindByID(ctx context.Context, id int) (*entity.Athlete, error) {
	var athlete entity.Athlete
	err := conn(ctx, r.db).Preload("Parent").Where("id = ?", id).First(&athlete).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &athlete, nil
}

func (r *athleteRepository) Update(ctx context.Context, athlete *entity.Athlete) error {
	return conn(ctx, r.db).Omit("Parent").Save(athlete).Error
}

func (r *athleteRepository) Delete(ctx context.Context, id int) error {
	return conn(ctx, r.db).Where("id = ?", id).Delete(&entity.Athlete{}).Error
}
