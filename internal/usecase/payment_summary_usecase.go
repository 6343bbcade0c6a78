package usecase

import (
	"context"
	"errors"
	"time"

	"lesson-booking-admin/internal/delivery/dto"
	"lesson-booking-admin/internal/domain/billing"
	"lesson-booking-admin/internal/domain/entity"
	"lesson-booking-admin/internal/domain/repository"
	"lesson-booking-admin/internal/infrastructure/cache"
	"lesson-booking-admin/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type PaymentSummaryUsecase interface {
	GetSummary(ctx context.Context, view string) (*dto.PaymentSummaryResponse, error)
}

type paymentSummaryUsecase struct {
	log            *logrus.Logger
	bookingRepo    repository.BookingRepository
	catalogService service.CatalogService
	cache          cache.Service
	ttl            time.Duration
}

func NewPaymentSummaryUsecase(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	catalogService service.CatalogService,
	cacheService cache.Service,
	ttl time.Duration,
) PaymentSummaryUsecase {
	return &paymentSummaryUsecase{
		log:            log,
		bookingRepo:    bookingRepo,
		catalogService: catalogService,
		cache:          cacheService,
		ttl:            ttl,
	}
}

// GetSummary totals the derived payment figures of every booking in the view
func (u *paymentSummaryUsecase) GetSummary(ctx context.Context, view string) (*dto.PaymentSummaryResponse, error) {
	bookingView := entity.BookingViewActive
	if view != "" {
		bookingView = entity.BookingView(view)
		if !bookingView.IsValid() {
			return nil, ErrInvalidBookingView
		}
	}

	key := cache.KeyPaymentSummaryPrefix + string(bookingView)
	if u.cache != nil {
		var cached dto.PaymentSummaryResponse
		err := u.cache.Get(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			u.log.Warnf("Failed to read payment summary from cache: %+v", err)
		}
	}

	bookings, _, err := u.bookingRepo.FindAll(ctx, &entity.BookingFilter{View: bookingView})
	if err != nil {
		u.log.Warnf("Failed to load bookings for payment summary: %+v", err)
		return nil, err
	}

	catalog, catalogErr := u.catalogService.Catalog(ctx)
	if catalogErr != nil {
		u.log.Warnf("Summarizing payments without lesson type catalog: %+v", catalogErr)
		catalog = nil
	}

	summary := summarizePayments(bookingView, bookings, catalog)

	// a degraded summary is served but not cached
	if u.cache != nil && catalogErr == nil {
		if err := u.cache.Set(ctx, key, summary, u.ttl); err != nil {
			u.log.Warnf("Failed to cache payment summary: %+v", err)
		}
	}

	return summary, nil
}

func summarizePayments(view entity.BookingView, bookings []entity.Booking, catalog *billing.Catalog) *dto.PaymentSummaryResponse {
	total, paid, due := decimal.Zero, decimal.Zero, decimal.Zero
	byStatus := make(map[string]int, len(billing.PaymentStatuses()))
	for _, status := range billing.PaymentStatuses() {
		byStatus[status.String()] = 0
	}

	for i := range bookings {
		figures := bookings[i].Figures(catalog)
		total = total.Add(figures.TotalPrice)
		paid = paid.Add(figures.PaidAmount)
		due = due.Add(figures.BalanceDue)
		byStatus[bookings[i].CurrentPaymentStatus().OrUnpaid().String()]++
	}

	return &dto.PaymentSummaryResponse{
		View:              string(view),
		BookingCount:      len(bookings),
		TotalPrice:        total,
		PaidAmount:        paid,
		BalanceDue:        due,
		TotalPriceDisplay: billing.FormatUSD(total),
		PaidAmountDisplay: billing.FormatUSD(paid),
		BalanceDueDisplay: billing.FormatUSD(due),
		ByPaymentStatus:   byStatus,
	}
}
