package service

import (
	"context"
	"errors"
	"time"

	"lesson-booking-admin/internal/domain/billing"
	"lesson-booking-admin/internal/domain/entity"
	"lesson-booking-admin/internal/domain/repository"
	"lesson-booking-admin/internal/infrastructure/cache"

	"github.com/sirupsen/logrus"
)

// CatalogService serves the lesson-type pricing catalog, cache-aside in Redis.
type CatalogService interface {
	Catalog(ctx context.Context) (*billing.Catalog, error)
	// Invalidate drops the cached catalog and every payment summary derived from it.
	Invalidate(ctx context.Context)
}

type catalogService struct {
	lessonTypeRepo repository.LessonTypeRepository
	cache          cache.Service
	ttl            time.Duration
	log            *logrus.Logger
}

// NewCatalogService creates a catalog service. cacheService may be nil, in which case
// every call reads the database.
func NewCatalogService(lessonTypeRepo repository.LessonTypeRepository, cacheService cache.Service, ttl time.Duration, log *logrus.Logger) CatalogService {
	return &catalogService{
		lessonTypeRepo: lessonTypeRepo,
		cache:          cacheService,
		ttl:            ttl,
		log:            log,
	}
}

func (s *catalogService) Catalog(ctx context.Context) (*billing.Catalog, error) {
	if s.cache != nil {
		var entries []billing.CatalogEntry
		err := s.cache.Get(ctx, cache.KeyLessonTypeCatalog, &entries)
		if err == nil {
			return billing.NewCatalog(entries), nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warnf("Failed to read lesson type catalog from cache: %+v", err)
		}
	}

	lessonTypes, err := s.lessonTypeRepo.FindAll(ctx)
	if err != nil {
		s.log.Warnf("Failed to load lesson types: %+v", err)
		return nil, err
	}
	entries := entity.CatalogEntries(lessonTypes)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.KeyLessonTypeCatalog, entries, s.ttl); err != nil {
			s.log.Warnf("Failed to cache lesson type catalog: %+v", err)
		}
	}

	return billing.NewCatalog(entries), nil
}

func (s *catalogService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.KeyLessonTypeCatalog); err != nil {
		s.log.Warnf("Failed to invalidate lesson type catalog: %+v", err)
	}
	InvalidatePaymentSummaries(ctx, s.cache, s.log)
}

// InvalidatePaymentSummaries drops every cached payment summary view.
func InvalidatePaymentSummaries(ctx context.Context, cacheService cache.Service, log *logrus.Logger) {
	if cacheService == nil {
		return
	}
	if err := cacheService.DeletePattern(ctx, cache.KeyPaymentSummaryPrefix+"*"); err != nil {
		log.Warnf("Failed to invalidate payment summaries: %+v", err)
	}
}
