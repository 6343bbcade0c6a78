package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"lesson-booking-admin/internal/domain/billing"
	"lesson-booking-admin/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func newTestLogger(t *testing.T) *logrus.Logger {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// inlineTransactor runs fn directly and records whether the transaction committed
type inlineTransactor struct {
	calls     int
	committed int
}

func (t *inlineTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	t.committed++
	return nil
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id int) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	booking, _ := args.Get(0).(*entity.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepo) FindAll(ctx context.Context, filter *entity.BookingFilter) ([]entity.Booking, int64, error) {
	args := m.Called(ctx, filter)
	bookings, _ := args.Get(0).([]entity.Booking)
	return bookings, args.Get(1).(int64), args.Error(2)
}

func (m *mockBookingRepo) FindByStartRange(ctx context.Context, start, end time.Time) ([]entity.Booking, error) {
	args := m.Called(ctx, start, end)
	bookings, _ := args.Get(0).([]entity.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepo) UpdatePaymentStatus(ctx context.Context, id int, from *billing.PaymentStatus, to billing.PaymentStatus, paidAmount *string) (int64, error) {
	args := m.Called(ctx, id, from, to, paidAmount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) UpdateAttendance(ctx context.Context, id int, status entity.AttendanceStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockLessonTypeRepo struct{ mock.Mock }

func (m *mockLessonTypeRepo) Create(ctx context.Context, lessonType *entity.LessonType) error {
	args := m.Called(ctx, lessonType)
	return args.Error(0)
}

func (m *mockLessonTypeRepo) FindAll(ctx context.Context) ([]entity.LessonType, error) {
	args := m.Called(ctx)
	lessonTypes, _ := args.Get(0).([]entity.LessonType)
	return lessonTypes, args.Error(1)
}

func (m *mockLessonTypeRepo) FindByID(ctx context.Context, id int) (*entity.LessonType, error) {
	args := m.Called(ctx, id)
	lessonType, _ := args.Get(0).(*entity.LessonType)
	return lessonType, args.Error(1)
}

func (m *mockLessonTypeRepo) Update(ctx context.Context, lessonType *entity.LessonType) error {
	args := m.Called(ctx, lessonType)
	return args.Error(0)
}

func (m *mockLessonTypeRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAthleteRepo struct{ mock.Mock }

func (m *mockAthleteRepo) Create(ctx context.Context, athlete *entity.Athlete) error {
	args := m.Called(ctx, athlete)
	return args.Error(0)
}

func (m *mockAthleteRepo) FindAll(ctx context.Context, parentID *int, limit, offset int) ([]entity.Athlete, int64, error) {
	args := m.Called(ctx, parentID, limit, offset)
	athletes, _ := args.Get(0).([]entity.Athlete)
	return athletes, args.Get(1).(int64), args.Error(2)
}

func (m *mockAthleteRepo) FindByID(ctx context.Context, id int) (*entity.Athlete, error) {
	args := m.Called(ctx, id)
	athlete, _ := args.Get(0).(*entity.Athlete)
	return athlete, args.Error(1)
}

func (m *mockAthleteRepo) Update(ctx context.Context, athlete *entity.Athlete) error {
	args := m.Called(ctx, athlete)
	return args.Error(0)
}

func (m *mockAthleteRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockParentRepo struct{ mock.Mock }

func (m *mockParentRepo) Create(ctx context.Context, parent *entity.Parent) error {
	args := m.Called(ctx, parent)
	return args.Error(0)
}

func (m *mockParentRepo) FindAll(ctx context.Context, limit, offset int) ([]entity.Parent, int64, error) {
	args := m.Called(ctx, limit, offset)
	parents, _ := args.Get(0).([]entity.Parent)
	return parents, args.Get(1).(int64), args.Error(2)
}

func (m *mockParentRepo) FindByID(ctx context.Context, id int) (*entity.Parent, error) {
	args := m.Called(ctx, id)
	parent, _ := args.Get(0).(*entity.Parent)
	return parent, args.Error(1)
}

func (m *mockParentRepo) Update(ctx context.Context, parent *entity.Parent) error {
	args := m.Called(ctx, parent)
	return args.Error(0)
}

func (m *mockParentRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAuditLogRepo struct{ mock.Mock }

func (m *mockAuditLogRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockAuditLogRepo) FindAll(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	args := m.Called(ctx, limit)
	logs, _ := args.Get(0).([]entity.AuditLog)
	return logs, args.Error(1)
}

func (m *mockAuditLogRepo) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	args := m.Called(ctx, id)
	log, _ := args.Get(0).(*entity.AuditLog)
	return log, args.Error(1)
}

// stubCatalogService serves a fixed catalog and counts invalidations
type stubCatalogService struct {
	catalog     *billing.Catalog
	err         error
	invalidated int
}

func (s *stubCatalogService) Catalog(ctx context.Context) (*billing.Catalog, error) {
	return s.catalog, s.err
}

func (s *stubCatalogService) Invalidate(ctx context.Context) {
	s.invalidated++
}

// recordingAuditService keeps every recorded action
type recordingAuditService struct {
	actions []string
}

func (s *recordingAuditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *recordingAuditService) LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *recordingAuditService) LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *mockCache) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *mockCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func statusPtr(s billing.PaymentStatus) *billing.PaymentStatus { return &s }
