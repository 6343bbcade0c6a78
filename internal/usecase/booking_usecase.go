package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"lesson-booking-admin/internal/converter"
	"lesson-booking-admin/internal/delivery/dto"
	"lesson-booking-admin/internal/domain/billing"
	"lesson-booking-admin/internal/domain/entity"
	"lesson-booking-admin/internal/domain/repository"
	"lesson-booking-admin/internal/infrastructure/cache"
	"lesson-booking-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrPaymentStatusConflict   = errors.New("payment status was changed by someone else, reload and retry")
	ErrInvalidPaymentStatus    = errors.New("invalid payment status")
	ErrInvalidAttendanceStatus = errors.New("invalid attendance status")
	ErrInvalidBookingView      = errors.New("invalid booking view, use active, archived or all")
	ErrInvalidAmount           = errors.New("amount must be a non-negative decimal")
	ErrPaidAmountNotApplicable = errors.New("paid amount can only be set together with reservation-paid")
	ErrInvalidDateFormat       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange        = errors.New("end date must be after start date")
)

const dateLayout = "2006-01-02"

type BookingUsecase interface {
	ListBookings(ctx context.Context, query *dto.BookingQuery) (*dto.BookingListResponse, error)
	GetBooking(ctx context.Context, id int) (*dto.BookingResponse, error)
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	UpdatePaymentStatus(ctx context.Context, id int, req *dto.UpdatePaymentStatusRequest) (*dto.BookingResponse, error)
	MarkPaid(ctx context.Context, id int) (*dto.BookingResponse, error)
	UpdateAttendance(ctx context.Context, id int, req *dto.UpdateAttendanceRequest) (*dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, id int) error
	GetCalendar(ctx context.Context, start, end string) (*dto.CalendarResponse, error)
	GetAthleteBookings(ctx context.Context, athleteID int) (*dto.BookingListResponse, error)
}

type bookingUsecase struct {
	log            *logrus.Logger
	transactor     repository.Transactor
	bookingRepo    repository.BookingRepository
	athleteRepo    repository.AthleteRepository
	parentRepo     repository.ParentRepository
	lessonTypeRepo repository.LessonTypeRepository
	catalogService service.CatalogService
	auditService   service.AuditService
	cache          cache.Service
}

func NewBookingUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	bookingRepo repository.BookingRepository,
	athleteRepo repository.AthleteRepository,
	parentRepo repository.ParentRepository,
	lessonTypeRepo repository.LessonTypeRepository,
	catalogService service.CatalogService,
	auditService service.AuditService,
	cacheService cache.Service,
) BookingUsecase {
	return &bookingUsecase{
		log:            log,
		transactor:     transactor,
		bookingRepo:    bookingRepo,
		athleteRepo:    athleteRepo,
		parentRepo:     parentRepo,
		lessonTypeRepo: lessonTypeRepo,
		catalogService: catalogService,
		auditService:   auditService,
		cache:          cacheService,
	}
}

// ListBookings returns a page of bookings with derived price and payment figures
func (u *bookingUsecase) ListBookings(ctx context.Context, query *dto.BookingQuery) (*dto.BookingListResponse, error) {
	filter, err := bookingFilterFromQuery(query)
	if err != nil {
		return nil, err
	}

	page, limit, offset := normalizePage(query.Page, query.Limit)
	filter.Limit = limit
	filter.Offset = offset

	bookings, total, err := u.bookingRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings, u.catalog(ctx)),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

func bookingFilterFromQuery(query *dto.BookingQuery) (*entity.BookingFilter, error) {
	filter := &entity.BookingFilter{View: entity.BookingViewActive}

	if query.View != "" {
		filter.View = entity.BookingView(query.View)
		if !filter.View.IsValid() {
			return nil, ErrInvalidBookingView
		}
	}

	if query.PaymentStatus != "" {
		filter.PaymentStatus = billing.PaymentStatus(query.PaymentStatus)
		if !filter.PaymentStatus.IsValid() {
			return nil, ErrInvalidPaymentStatus
		}
	}

	if query.AttendanceStatus != "" {
		filter.AttendanceStatus = entity.AttendanceStatus(query.AttendanceStatus)
		if !filter.AttendanceStatus.IsValid() {
			return nil, ErrInvalidAttendanceStatus
		}
	}

	filter.AthleteID = query.AthleteID

	if query.From != "" {
		from, err := time.Parse(dateLayout, query.From)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter.StartFrom = &from
	}
	if query.To != "" {
		to, err := time.Parse(dateLayout, query.To)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter.StartTo = &to
	}
	if filter.StartFrom != nil && filter.StartTo != nil && !filter.StartTo.After(*filter.StartFrom) {
		return nil, ErrInvalidDateRange
	}

	return filter, nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, id int) (*dto.BookingResponse, error) {
	booking, err := u.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	return converter.BookingToResponse(booking, u.catalog(ctx)), nil
}

// CreateBooking records a booking entered by an admin
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	booking := &entity.Booking{
		AthleteID:        req.AthleteID,
		ParentID:         req.ParentID,
		LessonTypeID:     req.LessonTypeID,
		LessonType:       req.LessonType,
		AttendanceStatus: entity.AttendancePending,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Notes:            req.Notes,
	}

	if req.AttendanceStatus != "" {
		booking.AttendanceStatus = entity.AttendanceStatus(req.AttendanceStatus)
		if !booking.AttendanceStatus.IsValid() {
			return nil, ErrInvalidAttendanceStatus
		}
	}

	status := billing.PaymentUnpaid
	if req.PaymentStatus != nil {
		status = *req.PaymentStatus
		if !status.IsValid() {
			return nil, ErrInvalidPaymentStatus
		}
	}
	booking.PaymentStatus = &status

	paidAmount, err := normalizePaidAmount(status, req.PaidAmount)
	if err != nil {
		return nil, err
	}
	booking.PaidAmount = paidAmount

	if req.Amount != nil {
		amount, err := normalizeAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		booking.Amount = &amount
	}

	if err := u.checkReferences(ctx, booking); err != nil {
		return nil, err
	}

	err = u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.bookingRepo.Create(ctx, booking); err != nil {
			u.log.Warnf("Failed to create booking: %+v", err)
			return err
		}

		u.auditService.LogCreate(ctx, entity.AuditActionBookingCreate, "booking", strconv.Itoa(booking.ID), booking)
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.InvalidatePaymentSummaries(ctx, u.cache, u.log)

	u.log.Infof("Booking created: id=%d, lesson_type_id=%v, start=%s", booking.ID, booking.LessonTypeID, booking.StartTime.Format(time.RFC3339))
	return u.reload(ctx, booking.ID)
}

// checkReferences verifies the linked athlete, parent and lesson type exist. A booking
// without a parent inherits the athlete's parent.
func (u *bookingUsecase) checkReferences(ctx context.Context, booking *entity.Booking) error {
	if booking.LessonTypeID != nil {
		lessonType, err := u.lessonTypeRepo.FindByID(ctx, *booking.LessonTypeID)
		if err != nil {
			u.log.Warnf("Failed to find lesson type %d: %+v", *booking.LessonTypeID, err)
			return err
		}
		if lessonType == nil {
			return ErrLessonTypeNotFound
		}
	}

	if booking.AthleteID != nil {
		athlete, err := u.athleteRepo.FindByID(ctx, *booking.AthleteID)
		if err != nil {
			u.log.Warnf("Failed to find athlete %d: %+v", *booking.AthleteID, err)
			return err
		}
		if athlete == nil {
			return ErrAthleteNotFound
		}
		if booking.ParentID == nil {
			booking.ParentID = athlete.ParentID
		}
	}

	if booking.ParentID != nil {
		parent, err := u.parentRepo.FindByID(ctx, *booking.ParentID)
		if err != nil {
			u.log.Warnf("Failed to find parent %d: %+v", *booking.ParentID, err)
			return err
		}
		if parent == nil {
			return ErrParentNotFound
		}
	}

	return nil
}

// UpdatePaymentStatus applies a status chosen explicitly by the operator
func (u *bookingUsecase) UpdatePaymentStatus(ctx context.Context, id int, req *dto.UpdatePaymentStatusRequest) (*dto.BookingResponse, error) {
	if !req.PaymentStatus.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	paidAmount, err := normalizePaidAmount(req.PaymentStatus, req.PaidAmount)
	if err != nil {
		return nil, err
	}

	booking, err := u.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	return u.changePaymentStatus(ctx, booking, req.PaymentStatus, paidAmount)
}

// MarkPaid nudges the booking one step forward: a pending or failed reservation becomes
// reservation-paid, anything else becomes session-paid
func (u *bookingUsecase) MarkPaid(ctx context.Context, id int) (*dto.BookingResponse, error) {
	booking, err := u.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	next := billing.NextPaymentStatus(booking.CurrentPaymentStatus())
	return u.changePaymentStatus(ctx, booking, next, nil)
}

// changePaymentStatus writes the new status only if the stored one is still the one read,
// so a concurrent change is reported instead of overwritten
func (u *bookingUsecase) changePaymentStatus(ctx context.Context, booking *entity.Booking, status billing.PaymentStatus, paidAmount *string) (*dto.BookingResponse, error) {
	err := u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		affected, err := u.bookingRepo.UpdatePaymentStatus(ctx, booking.ID, booking.PaymentStatus, status, paidAmount)
		if err != nil {
			u.log.Warnf("Failed to update payment status of booking %d: %+v", booking.ID, err)
			return err
		}
		if affected == 0 {
			if _, err := u.findBooking(ctx, booking.ID); err != nil {
				return err
			}
			return ErrPaymentStatusConflict
		}

		oldValue := map[string]interface{}{
			"payment_status": booking.CurrentPaymentStatus().OrUnpaid(),
			"paid_amount":    booking.PaidAmount,
		}
		newValue := map[string]interface{}{
			"payment_status": status,
			"paid_amount":    booking.PaidAmount,
		}
		if paidAmount != nil {
			newValue["paid_amount"] = *paidAmount
		}
		u.auditService.LogUpdate(ctx, entity.AuditActionBookingPaymentStatus, "booking", strconv.Itoa(booking.ID), oldValue, newValue)
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.InvalidatePaymentSummaries(ctx, u.cache, u.log)

	u.log.Infof("Booking payment status changed: id=%d, %s -> %s", booking.ID, booking.CurrentPaymentStatus().OrUnpaid(), status)
	return u.reload(ctx, booking.ID)
}

func (u *bookingUsecase) UpdateAttendance(ctx context.Context, id int, req *dto.UpdateAttendanceRequest) (*dto.BookingResponse, error) {
	status := entity.AttendanceStatus(req.AttendanceStatus)
	if !status.IsValid() {
		return nil, ErrInvalidAttendanceStatus
	}

	booking, err := u.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	err = u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		affected, err := u.bookingRepo.UpdateAttendance(ctx, id, status)
		if err != nil {
			u.log.Warnf("Failed to update attendance of booking %d: %+v", id, err)
			return err
		}
		if affected == 0 {
			return ErrBookingNotFound
		}

		u.auditService.LogUpdate(ctx, entity.AuditActionBookingAttendance, "booking", strconv.Itoa(id),
			map[string]interface{}{"attendance_status": booking.AttendanceStatus},
			map[string]interface{}{"attendance_status": status},
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.InvalidatePaymentSummaries(ctx, u.cache, u.log)

	return u.reload(ctx, id)
}

func (u *bookingUsecase) DeleteBooking(ctx context.Context, id int) error {
	booking, err := u.findBooking(ctx, id)
	if err != nil {
		return err
	}

	err = u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := u.bookingRepo.Delete(ctx, id); err != nil {
			u.log.Warnf("Failed to delete booking %d: %+v", id, err)
			return err
		}

		u.auditService.LogDelete(ctx, entity.AuditActionBookingDelete, "booking", strconv.Itoa(id), booking)
		return nil
	})
	if err != nil {
		return err
	}

	service.InvalidatePaymentSummaries(ctx, u.cache, u.log)

	u.log.Infof("Booking deleted: id=%d", id)
	return nil
}

// GetCalendar returns bookings starting in [start, end) for the scheduling calendar
func (u *bookingUsecase) GetCalendar(ctx context.Context, start, end string) (*dto.CalendarResponse, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if !endDate.After(startDate) {
		return nil, ErrInvalidDateRange
	}

	bookings, err := u.bookingRepo.FindByStartRange(ctx, startDate, endDate)
	if err != nil {
		u.log.Warnf("Failed to load calendar %s..%s: %+v", start, end, err)
		return nil, err
	}

	return &dto.CalendarResponse{
		Start:    start,
		End:      end,
		Bookings: converter.BookingsToResponses(bookings, u.catalog(ctx)),
		Total:    len(bookings),
	}, nil
}

// GetAthleteBookings returns every booking of an athlete, active and archived
func (u *bookingUsecase) GetAthleteBookings(ctx context.Context, athleteID int) (*dto.BookingListResponse, error) {
	athlete, err := u.athleteRepo.FindByID(ctx, athleteID)
	if err != nil {
		u.log.Warnf("Failed to find athlete %d: %+v", athleteID, err)
		return nil, err
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}

	bookings, total, err := u.bookingRepo.FindAll(ctx, &entity.BookingFilter{
		View:      entity.BookingViewAll,
		AthleteID: &athleteID,
	})
	if err != nil {
		u.log.Warnf("Failed to find bookings for athlete %d: %+v", athleteID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings, u.catalog(ctx)),
		Total:    total,
	}, nil
}

func (u *bookingUsecase) findBooking(ctx context.Context, id int) (*entity.Booking, error) {
	booking, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find booking %d: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (u *bookingUsecase) reload(ctx context.Context, id int) (*dto.BookingResponse, error) {
	return u.GetBooking(ctx, id)
}

// catalog never fails: without a catalog, prices fall back to embedded and legacy fields
func (u *bookingUsecase) catalog(ctx context.Context) *billing.Catalog {
	catalog, err := u.catalogService.Catalog(ctx)
	if err != nil {
		u.log.Warnf("Pricing without lesson type catalog: %+v", err)
		return nil
	}
	return catalog
}

func normalizeAmount(raw string) (string, error) {
	amount, ok := billing.ParseDecimal(raw)
	if !ok || amount.IsNegative() {
		return "", ErrInvalidAmount
	}
	return amount.StringFixed(2), nil
}

// normalizePaidAmount validates a paid amount sent with a payment status. It is only
// meaningful for reservation-paid.
func normalizePaidAmount(status billing.PaymentStatus, raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	if status != billing.PaymentReservationPaid {
		return nil, ErrPaidAmountNotApplicable
	}
	amount, err := normalizeAmount(*raw)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}
