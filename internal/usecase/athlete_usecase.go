package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"lesson-booking-admin/internal/converter"
	"lesson-booking-admin/internal/delivery/dto"
	"lesson-booking-admin/internal/domain/entity"
	"lesson-booking-admin/internal/domain/repository"
	"lesson-booking-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrAthleteNotFound = errors.New("athlete not found")
)

type AthleteUsecase interface {
	CreateAthlete(ctx context.Context, req *dto.CreateAthleteRequest) (*dto.AthleteResponse, error)
	GetAllAthletes(ctx context.Context, parentID *int, page, limit int) (*dto.AthleteListResponse, error)
	GetAthlete(ctx context.Context, id int) (*dto.AthleteResponse, error)
	UpdateAthlete(ctx context.Context, id int, req *dto.UpdateAthleteRequest) (*dto.AthleteResponse, error)
	DeleteAthlete(ctx context.Context, id int) error
}

type athleteUsecase struct {
	log          *logrus.Logger
	athleteRepo  repository.AthleteRepository
	parentRepo   repository.ParentRepository
	auditService service.AuditService
}

func NewAthleteUsecase(
	log *logrus.Logger,
	athleteRepo repository.AthleteRepository,
	parentRepo repository.ParentRepository,
	auditService service.AuditService,
) AthleteUsecase {
	return &athleteUsecase{
		log:          log,
		athleteRepo:  athleteRepo,
		parentRepo:   parentRepo,
		auditService: auditService,
	}
}

func (u *athleteUsecase) CreateAthlete(ctx context.Context, req *dto.CreateAthleteRequest) (*dto.AthleteResponse, error) {
	dateOfBirth, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	if err := u.checkParent(ctx, req.ParentID); err != nil {
		return nil, err
	}

	athlete := &entity.Athlete{
		ParentID:    req.ParentID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dateOfBirth,
		Sport:       req.Sport,
		Notes:       req.Notes,
	}

	if err := u.athleteRepo.Create(ctx, athlete); err != nil {
		if isForeignKeyError(err, "fk_athletes_parent") {
			return nil, ErrParentNotFound
		}
		u.log.Warnf("Failed to create athlete: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, entity.AuditActionAthleteCreate, "athlete", strconv.Itoa(athlete.ID), athlete)

	return u.GetAthlete(ctx, athlete.ID)
}

func (u *athleteUsecase) GetAllAthletes(ctx context.Context, parentID *int, page, limit int) (*dto.AthleteListResponse, error) {
	page, limit, offset := normalizePage(page, limit)

	athletes, total, err := u.athleteRepo.FindAll(ctx, parentID, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find all athletes: %+v", err)
		return nil, err
	}

	return &dto.AthleteListResponse{
		Athletes: converter.AthletesToResponses(athletes),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

func (u *athleteUsecase) GetAthlete(ctx context.Context, id int) (*dto.AthleteResponse, error) {
	athlete, err := u.findAthlete(ctx, id)
	if err != nil {
		return nil, err
	}

	return converter.AthleteToResponse(athlete), nil
}

func (u *athleteUsecase) UpdateAthlete(ctx context.Context, id int, req *dto.UpdateAthleteRequest) (*dto.AthleteResponse, error) {
	dateOfBirth, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	athlete, err := u.findAthlete(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkParent(ctx, req.ParentID); err != nil {
		return nil, err
	}
	oldValue := *athlete
	oldValue.Parent = nil

	athlete.ParentID = req.ParentID
	athlete.Parent = nil
	athlete.FirstName = req.FirstName
	athlete.LastName = req.LastName
	athlete.DateOfBirth = dateOfBirth
	athlete.Sport = req.Sport
	athlete.Notes = req.Notes

	if err := u.athleteRepo.Update(ctx, athlete); err != nil {
		if isForeignKeyError(err, "fk_athletes_parent") {
			return nil, ErrParentNotFound
		}
		u.log.Warnf("Failed to update athlete %d: %+v", id, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, entity.AuditActionAthleteUpdate, "athlete", strconv.Itoa(id), oldValue, athlete)

	return u.GetAthlete(ctx, id)
}

// DeleteAthlete removes the athlete. Their bookings stay and lose the athlete link.
func (u *athleteUsecase) DeleteAthlete(ctx context.Context, id int) error {
	athlete, err := u.findAthlete(ctx, id)
	if err != nil {
		return err
	}

	if err := u.athleteRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete athlete %d: %+v", id, err)
		return err
	}

	athlete.Parent = nil
	u.auditService.LogDelete(ctx, entity.AuditActionAthleteDelete, "athlete", strconv.Itoa(id), athlete)

	return nil
}

func (u *athleteUsecase) findAthlete(ctx context.Context, id int) (*entity.Athlete, error) {
	athlete, err := u.athleteRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find athlete %d: %+v", id, err)
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}
	return athlete, nil
}

func (u *athleteUsecase) checkParent(ctx context.Context, parentID *int) error {
	if parentID == nil {
		return nil
	}
	parent, err := u.parentRepo.FindByID(ctx, *parentID)
	if err != nil {
		u.log.Warnf("Failed to find parent %d: %+v", *parentID, err)
		return err
	}
	if parent == nil {
		return ErrParentNotFound
	}
	return nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &date, nil
}
