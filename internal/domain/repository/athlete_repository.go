package repository

import (
	"context"

	"lesson-booking-admin/internal/domain/entity"
)

type AthleteRepository interface {
	Create(ctx context.Context, athlete *entity.Athlete) error
	FindAll(ctx context.Context, parentID *int, limit, offset int) ([]entity.Athlete, int64, error)
	FindByID(ctx context.Context, id int) (*entity.Athlete, error)
	Update(ctx context.Context, athlete *entity.Athlete) error
	Delete(ctx context.Context, id int) error
}
