package repository

import (
	"context"
	"errors"

	"lesson-booking-admin/internal/domain/entity"
	domainRepo "lesson-booking-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type lessonTypeRepository struct {
	db *gorm.DB
}

func NewLessonTypeRepository(db *gorm.DB) domainRepo.LessonTypeRepository {
	return &lessonTypeRepository{db: db}
}

func (r *lessonTypeRepository) Create(ctx context.Context, lessonType *entity.LessonType) error {
	return conn(ctx, r.db).Create(lessonType).Error
}

func (r *lessonTypeRepository) FindAll(ctx context.Context) ([]entity.LessonType, error) {
	var lessonTypes []entity.LessonType
	if err := conn(ctx, r.db).Order("id ASC").Find(&lessonTypes).Error; err != nil {
		return nil, err
	}
	return lessonTypes, nil
}

func (r *lessonTypeRepository) FindByID(ctx context.Context, id int) (*entity.LessonType, error) {
	var lessonType entity.LessonType
	err := conn(ctx, r.db).Where("id = ?", id).First(&lessonType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lessonType, nil
}

func (r *lessonTypeRepository) Update(ctx context.Context, lessonType *entity.LessonType) error {
	return conn(ctx, r.db).Save(lessonType).Error
}

func (r *lessonTypeRepository) Delete(ctx context.Context, id int) error {
	return conn(ctx, r.db).Where("id = ?", id).Delete(&entity.LessonType{}).Error
}
