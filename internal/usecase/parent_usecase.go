package usecase

import (
	"context"
	"errors"
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
	ErrParentNotFound    = errors.New("parent not found")
	ErrParentEmailExists = errors.New("parent with this email already exists")
	ErrParentHasAthletes = errors.New("parent still has athletes")
)

type ParentUsecase interface {
	CreateParent(ctx context.Context, req *dto.CreateParentRequest) (*dto.ParentResponse, error)
	GetAllParents(ctx context.Context, page, limit int) (*dto.ParentListResponse, error)
	GetParent(ctx context.Context, id int) (*dto.ParentResponse, error)
	UpdateParent(ctx context.Context, id int, req *dto.UpdateParentRequest) (*dto.ParentResponse, error)
	DeleteParent(ctx context.Context, id int) error
}

type parentUsecase struct {
	log          *logrus.Logger
	parentRepo   repository.ParentRepository
	auditService service.AuditService
}

func NewParentUsecase(log *logrus.Logger, parentRepo repository.ParentRepository, auditService service.AuditService) ParentUsecase {
	return &parentUsecase{
		log:          log,
		parentRepo:   parentRepo,
		auditService: auditService,
	}
}

func (u *parentUsecase) CreateParent(ctx context.Context, req *dto.CreateParentRequest) (*dto.ParentResponse, error) {
	parent := &entity.Parent{
		FullName: req.FullName,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    req.Phone,
	}

	if err := u.parentRepo.Create(ctx, parent); err != nil {
		if isDuplicateKeyError(err, "uni_parents_email") {
			return nil, ErrParentEmailExists
		}
		u.log.Warnf("Failed to create parent: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, entity.AuditActionParentCreate, "parent", strconv.Itoa(parent.ID), parent)

	return converter.ParentToResponse(parent), nil
}

func (u *parentUsecase) GetAllParents(ctx context.Context, page, limit int) (*dto.ParentListResponse, error) {
	page, limit, offset := normalizePage(page, limit)

	parents, total, err := u.parentRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find all parents: %+v", err)
		return nil, err
	}

	return &dto.ParentListResponse{
		Parents: converter.ParentsToResponses(parents),
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// GetParent returns the parent together with their athletes
func (u *parentUsecase) GetParent(ctx context.Context, id int) (*dto.ParentResponse, error) {
	parent, err := u.findParent(ctx, id)
	if err != nil {
		return nil, err
	}

	return converter.ParentToResponse(parent), nil
}

func (u *parentUsecase) UpdateParent(ctx context.Context, id int, req *dto.UpdateParentRequest) (*dto.ParentResponse, error) {
	parent, err := u.findParent(ctx, id)
	if err != nil {
		return nil, err
	}
	oldValue := *parent
	oldValue.Athletes = nil

	parent.FullName = req.FullName
	parent.Email = strings.ToLower(strings.TrimSpace(req.Email))
	parent.Phone = req.Phone

	if err := u.parentRepo.Update(ctx, parent); err != nil {
		if isDuplicateKeyError(err, "uni_parents_email") {
			return nil, ErrParentEmailExists
		}
		u.log.Warnf("Failed to update parent %d: %+v", id, err)
		return nil, err
	}

	newValue := *parent
	newValue.Athletes = nil
	u.auditService.LogUpdate(ctx, entity.AuditActionParentUpdate, "parent", strconv.Itoa(id), oldValue, newValue)

	return converter.ParentToResponse(parent), nil
}

func (u *parentUsecase) DeleteParent(ctx context.Context, id int) error {
	parent, err := u.findParent(ctx, id)
	if err != nil {
		return err
	}
	if len(parent.Athletes) > 0 {
		return ErrParentHasAthletes
	}

	if err := u.parentRepo.Delete(ctx, id); err != nil {
		if isForeignKeyError(err, "fk_athletes_parent") {
			return ErrParentHasAthletes
		}
		u.log.Warnf("Failed to delete parent %d: %+v", id, err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditActionParentDelete, "parent", strconv.Itoa(id), parent)

	return nil
}

func (u *parentUsecase) findParent(ctx context.Context, id int) (*entity.Parent, error) {
	parent, err := u.parentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find parent %d: %+v", id, err)
		return nil, err
	}
	if parent == nil {
		return nil, ErrParentNotFound
	}
	return parent, nil
}
