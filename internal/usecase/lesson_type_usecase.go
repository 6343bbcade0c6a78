package usecase

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"lesson-booking-admin/internal/converter"
	"lesson-booking-admin/internal/delivery/dto"
	"lesson-booking-admin/internal/domain/entity"
	"lesson-booking-admin/internal/domain/repository"
	"lesson-booking-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrLessonTypeNotFound = errors.New("lesson type not found")
	ErrLessonTypeExists   = errors.New("lesson type with this name or key already exists")
	ErrLessonTypeInUse    = errors.New("lesson type is referenced by bookings")
	ErrInvalidPrice       = errors.New("price must not be negative")
)

const defaultLessonDuration = 60

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

type LessonTypeUsecase interface {
	CreateLessonType(ctx context.Context, req *dto.CreateLessonTypeRequest) (*dto.LessonTypeResponse, error)
	GetAllLessonTypes(ctx context.Context) (*dto.LessonTypeListResponse, error)
	GetLessonType(ctx context.Context, id int) (*dto.LessonTypeResponse, error)
	UpdateLessonType(ctx context.Context, id int, req *dto.UpdateLessonTypeRequest) (*dto.LessonTypeResponse, error)
	DeleteLessonType(ctx context.Context, id int) error
}

type lessonTypeUsecase struct {
	log            *logrus.Logger
	lessonTypeRepo repository.LessonTypeRepository
	catalogService service.CatalogService
	auditService   service.AuditService
}

func NewLessonTypeUsecase(
	log *logrus.Logger,
	lessonTypeRepo repository.LessonTypeRepository,
	catalogService service.CatalogService,
	auditService service.AuditService,
) LessonTypeUsecase {
	return &lessonTypeUsecase{
		log:            log,
		lessonTypeRepo: lessonTypeRepo,
		catalogService: catalogService,
		auditService:   auditService,
	}
}

func (u *lessonTypeUsecase) CreateLessonType(ctx context.Context, req *dto.CreateLessonTypeRequest) (*dto.LessonTypeResponse, error) {
	if req.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	lessonType := &entity.LessonType{
		Key:             lessonTypeKey(req.Key, req.Name),
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           req.Price.Round(2),
		DurationMinutes: req.DurationMinutes,
		IsActive:        req.IsActive,
	}
	if lessonType.DurationMinutes == 0 {
		lessonType.DurationMinutes = defaultLessonDuration
	}

	if err := u.lessonTypeRepo.Create(ctx, lessonType); err != nil {
		if isDuplicateKeyError(err, "lesson_types_") {
			return nil, ErrLessonTypeExists
		}
		u.log.Warnf("Failed to create lesson type: %+v", err)
		return nil, err
	}

	u.catalogService.Invalidate(ctx)
	u.auditService.LogCreate(ctx, entity.AuditActionLessonTypeCreate, "lesson_type", strconv.Itoa(lessonType.ID), lessonType)

	u.log.Infof("Lesson type created: id=%d, key=%s", lessonType.ID, lessonType.Key)
	return converter.LessonTypeToResponse(lessonType), nil
}

func (u *lessonTypeUsecase) GetAllLessonTypes(ctx context.Context) (*dto.LessonTypeListResponse, error) {
	lessonTypes, err := u.lessonTypeRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all lesson types: %+v", err)
		return nil, err
	}

	return &dto.LessonTypeListResponse{
		LessonTypes: converter.LessonTypesToResponses(lessonTypes),
		Total:       len(lessonTypes),
	}, nil
}

func (u *lessonTypeUsecase) GetLessonType(ctx context.Context, id int) (*dto.LessonTypeResponse, error) {
	lessonType, err := u.findLessonType(ctx, id)
	if err != nil {
		return nil, err
	}

	return converter.LessonTypeToResponse(lessonType), nil
}

// UpdateLessonType edits a catalog entry. Bookings referencing it by id or name pick up
// the new price on their next read.
func (u *lessonTypeUsecase) UpdateLessonType(ctx context.Context, id int, req *dto.UpdateLessonTypeRequest) (*dto.LessonTypeResponse, error) {
	if req.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	lessonType, err := u.findLessonType(ctx, id)
	if err != nil {
		return nil, err
	}
	oldValue := *lessonType

	if req.Key != "" {
		lessonType.Key = lessonTypeKey(req.Key, req.Name)
	}
	lessonType.Name = strings.TrimSpace(req.Name)
	lessonType.Description = req.Description
	lessonType.Price = req.Price.Round(2)
	if req.DurationMinutes > 0 {
		lessonType.DurationMinutes = req.DurationMinutes
	}
	if req.IsActive != nil {
		lessonType.IsActive = req.IsActive
	}

	if err := u.lessonTypeRepo.Update(ctx, lessonType); err != nil {
		if isDuplicateKeyError(err, "lesson_types_") {
			return nil, ErrLessonTypeExists
		}
		u.log.Warnf("Failed to update lesson type %d: %+v", id, err)
		return nil, err
	}

	u.catalogService.Invalidate(ctx)
	u.auditService.LogUpdate(ctx, entity.AuditActionLessonTypeUpdate, "lesson_type", strconv.Itoa(id), oldValue, lessonType)

	return converter.LessonTypeToResponse(lessonType), nil
}

func (u *lessonTypeUsecase) DeleteLessonType(ctx context.Context, id int) error {
	lessonType, err := u.findLessonType(ctx, id)
	if err != nil {
		return err
	}

	if err := u.lessonTypeRepo.Delete(ctx, id); err != nil {
		if isForeignKeyError(err, "fk_bookings_lesson_type") {
			return ErrLessonTypeInUse
		}
		u.log.Warnf("Failed to delete lesson type %d: %+v", id, err)
		return err
	}

	u.catalogService.Invalidate(ctx)
	u.auditService.LogDelete(ctx, entity.AuditActionLessonTypeDelete, "lesson_type", strconv.Itoa(id), lessonType)

	u.log.Infof("Lesson type deleted: id=%d", id)
	return nil
}

func (u *lessonTypeUsecase) findLessonType(ctx context.Context, id int) (*entity.LessonType, error) {
	lessonType, err := u.lessonTypeRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find lesson type %d: %+v", id, err)
		return nil, err
	}
	if lessonType == nil {
		return nil, ErrLessonTypeNotFound
	}
	return lessonType, nil
}

// lessonTypeKey slugifies the explicit key, or the name when no key was given
func lessonTypeKey(key, name string) string {
	source := key
	if strings.TrimSpace(source) == "" {
		source = name
	}
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(source), "-")
	return strings.Trim(slug, "-")
}
