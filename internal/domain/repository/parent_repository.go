package repository

import (
	"context"

	"lesson-booking-admin/internal/domain/entity"
)

type ParentRepository interface {
	Create(ctx context.Context, parent *entity.Parent) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.Parent, int64, error)
	FindByID(ctx context.Context, id int) (*entity.Parent, error)
	Update(ctx context.Context, parent *entity.Parent) error
	Delete(ctx context.Context, id int) error
}
