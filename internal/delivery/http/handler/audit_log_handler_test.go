package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lesson-booking-admin/internal/delivery/dto"
	"lesson-booking-admin/internal/domain/entity"
	"lesson-booking-admin/internal/usecase"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuditLogUsecase struct{ mock.Mock }

func (m *mockAuditLogUsecase) GetAllAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	args := m.Called(ctx, limit)
	resp, _ := args.Get(0).(*dto.AuditLogListResponse)
	return resp, args.Error(1)
}

func (m *mockAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*dto.AuditLogResponse)
	return resp, args.Error(1)
}

func setupAuditLogRouter(t *testing.T) (*mockAuditLogUsecase, http.Handler) {
	t.Helper()
	uc := new(mockAuditLogUsecase)
	h := NewAuditLogHandler(uc)

	r := mux.NewRouter()
	r.HandleFunc("/audit-logs", h.GetAllAuditLogs).Methods(http.MethodGet)
	r.HandleFunc("/audit-logs/{id}", h.GetAuditLog).Methods(http.MethodGet)
	return uc, r
}

func TestAuditLogHandler(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		setup  func(uc *mockAuditLogUsecase)
		status int
	}{
		{
			name: "list with limit",
			path: "/audit-logs?limit=25",
			setup: func(uc *mockAuditLogUsecase) {
				uc.On("GetAllAuditLogs", mock.Anything, 25).Return(&dto.AuditLogListResponse{
					Logs:  []dto.AuditLogResponse{{ID: 1, Action: entity.AuditActionBookingPaymentStatus}},
					Total: 1,
				}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "list failure",
			path: "/audit-logs",
			setup: func(uc *mockAuditLogUsecase) {
				uc.On("GetAllAuditLogs", mock.Anything, 0).Return(nil, errors.New("db down"))
			},
			status: http.StatusInternalServerError,
		},
		{
			name: "get",
			path: "/audit-logs/12",
			setup: func(uc *mockAuditLogUsecase) {
				uc.On("GetAuditLog", mock.Anything, int64(12)).Return(&dto.AuditLogResponse{ID: 12}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "get not found",
			path: "/audit-logs/404",
			setup: func(uc *mockAuditLogUsecase) {
				uc.On("GetAuditLog", mock.Anything, int64(404)).Return(nil, usecase.ErrAuditLogNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name: "get failure",
			path: "/audit-logs/3",
			setup: func(uc *mockAuditLogUsecase) {
				uc.On("GetAuditLog", mock.Anything, int64(3)).Return(nil, errors.New("db down"))
			},
			status: http.StatusInternalServerError,
		},
		{
			name:   "get bad id",
			path:   "/audit-logs/latest",
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, r := setupAuditLogRouter(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}

func TestAuditLogHandler_GetAllAuditLogs_Body(t *testing.T) {
	uc, r := setupAuditLogRouter(t)

	uc.On("GetAllAuditLogs", mock.Anything, 2).Return(&dto.AuditLogListResponse{
		Logs: []dto.AuditLogResponse{
			{ID: 2, Actor: "coach@example.com", Action: entity.AuditActionBookingDelete},
			{ID: 1, Actor: "coach@example.com", Action: entity.AuditActionBookingPaymentStatus},
		},
		Total: 2,
	}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/audit-logs?limit=2", nil))

	var list dto.AuditLogListResponse
	env := decodeEnvelope(t, rec, &list)
	assert.True(t, env.Success)
	require.Len(t, list.Logs, 2)
	assert.Equal(t, int64(2), list.Logs[0].ID)
	assert.Equal(t, "coach@example.com", list.Logs[0].Actor)
}
