package repository

import (
	"context"

	"lesson-booking-admin/internal/domain/entity"
)

type LessonTypeRepository interface {
	Create(ctx context.Context, lessonType *entity.LessonType) error
	FindAll(ctx context.Context) ([]entity.LessonType, error)
	FindByID(ctx context.Context, id int) (*entity.LessonType, error)
	Update(ctx context.Context, lessonType *entity.LessonType) error
	Delete(ctx context.Context, id int) error
}
