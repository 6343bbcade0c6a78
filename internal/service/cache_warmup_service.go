package service

import (
	"context"
	"fmt"
	"time"

	"lesson-booking-admin/internal/infrastructure/cache"

	"github.com/sirupsen/logrus"
)

// Timeout for the whole startup warm-up
const warmupTimeout = 5 * time.Second

// CacheWarmupService rebuilds the Redis read caches from PostgreSQL before the
// server accepts traffic. Summaries cached by a previous process may predate a
// migration, so they are dropped rather than trusted.
type CacheWarmupService struct {
	cache          cache.Service
	catalogService CatalogService
	log            *logrus.Logger
}

func NewCacheWarmupService(cacheService cache.Service, catalogService CatalogService, log *logrus.Logger) *CacheWarmupService {
	return &CacheWarmupService{
		cache:          cacheService,
		catalogService: catalogService,
		log:            log,
	}
}

// WarmOnStartup drops stale derived entries and loads the lesson type catalog.
// A missing or unreachable Redis is not fatal; callers log and continue.
func (s *CacheWarmupService) WarmOnStartup(ctx context.Context) error {
	if s.cache == nil {
		s.log.Info("Cache disabled, skipping warm-up")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()

	startTime := time.Now()
	if err := s.cache.Ping(ctx); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	if err := s.cache.Delete(ctx, cache.KeyLessonTypeCatalog); err != nil {
		return fmt.Errorf("drop cached catalog: %w", err)
	}
	if err := s.cache.DeletePattern(ctx, cache.KeyPaymentSummaryPrefix+"*"); err != nil {
		return fmt.Errorf("drop cached payment summaries: %w", err)
	}

	catalog, err := s.catalogService.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("load lesson type catalog: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"lesson_types": catalog.Len(),
		"duration":     time.Since(startTime).String(),
	}).Info("Cache warm-up completed")

	return nil
}
