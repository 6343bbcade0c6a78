package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lesson-booking-admin/internal/delivery/dto"
	"lesson-booking-admin/internal/usecase"
	"lesson-booking-admin/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockParentUsecase struct{ mock.Mock }

func (m *mockParentUsecase) CreateParent(ctx context.Context, req *dto.CreateParentRequest) (*dto.ParentResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.ParentResponse)
	return resp, args.Error(1)
}

func (m *mockParentUsecase) GetAllParents(ctx context.Context, page, limit int) (*dto.ParentListResponse, error) {
	args := m.Called(ctx, page, limit)
	resp, _ := args.Get(0).(*dto.ParentListResponse)
	return resp, args.Error(1)
}

func (m *mockParentUsecase) GetParent(ctx context.Context, id int) (*dto.ParentResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*dto.ParentResponse)
	return resp, args.Error(1)
}

func (m *mockParentUsecase) UpdateParent(ctx context.Context, id int, req *dto.UpdateParentRequest) (*dto.ParentResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*dto.ParentResponse)
	return resp, args.Error(1)
}

func (m *mockParentUsecase) DeleteParent(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func setupParentRouter(t *testing.T) (*mockParentUsecase, http.Handler) {
	t.Helper()
	uc := new(mockParentUsecase)
	h := NewParentHandler(uc, validator.NewValidator())

	r := mux.NewRouter()
	r.HandleFunc("/parents", h.CreateParent).Methods(http.MethodPost)
	r.HandleFunc("/parents", h.GetAllParents).Methods(http.MethodGet)
	r.HandleFunc("/parents/{id}", h.GetParent).Methods(http.MethodGet)
	r.HandleFunc("/parents/{id}", h.UpdateParent).Methods(http.MethodPut)
	r.HandleFunc("/parents/{id}", h.DeleteParent).Methods(http.MethodDelete)
	return uc, r
}

func TestParentHandler(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		setup  func(uc *mockParentUsecase)
		status int
	}{
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/parents",
			body:   `{"full_name":"Ana Lopez","email":"ana@example.com"}`,
			setup: func(uc *mockParentUsecase) {
				uc.On("CreateParent", mock.Anything, mock.MatchedBy(func(req *dto.CreateParentRequest) bool {
					return req.Email == "ana@example.com"
				})).Return(&dto.ParentResponse{ID: 1, FullName: "Ana Lopez"}, nil)
			},
			status: http.StatusCreated,
		},
		{
			name:   "create invalid email",
			method: http.MethodPost,
			path:   "/parents",
			body:   `{"full_name":"Ana Lopez","email":"not-an-email"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "create duplicate email",
			method: http.MethodPost,
			path:   "/parents",
			body:   `{"full_name":"Ana Lopez","email":"ana@example.com"}`,
			setup: func(uc *mockParentUsecase) {
				uc.On("CreateParent", mock.Anything, mock.Anything).Return(nil, usecase.ErrParentEmailExists)
			},
			status: http.StatusConflict,
		},
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/parents?page=1&limit=20",
			setup: func(uc *mockParentUsecase) {
				uc.On("GetAllParents", mock.Anything, 1, 20).
					Return(&dto.ParentListResponse{Parents: []dto.ParentResponse{{ID: 1}}, Total: 1, Page: 1, Limit: 20}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "list failure",
			method: http.MethodGet,
			path:   "/parents",
			setup: func(uc *mockParentUsecase) {
				uc.On("GetAllParents", mock.Anything, 0, 0).Return(nil, errors.New("db down"))
			},
			status: http.StatusInternalServerError,
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/parents/1",
			setup: func(uc *mockParentUsecase) {
				uc.On("GetParent", mock.Anything, 1).
					Return(&dto.ParentResponse{ID: 1, Athletes: []dto.AthleteResponse{{ID: 4}}}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "get not found",
			method: http.MethodGet,
			path:   "/parents/9",
			setup: func(uc *mockParentUsecase) {
				uc.On("GetParent", mock.Anything, 9).Return(nil, usecase.ErrParentNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name:   "update email taken",
			method: http.MethodPut,
			path:   "/parents/1",
			body:   `{"full_name":"Ana Lopez","email":"taken@example.com"}`,
			setup: func(uc *mockParentUsecase) {
				uc.On("UpdateParent", mock.Anything, 1, mock.Anything).Return(nil, usecase.ErrParentEmailExists)
			},
			status: http.StatusConflict,
		},
		{
			name:   "update bad id",
			method: http.MethodPut,
			path:   "/parents/x",
			body:   `{"full_name":"Ana Lopez","email":"ana@example.com"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "delete with athletes",
			method: http.MethodDelete,
			path:   "/parents/1",
			setup: func(uc *mockParentUsecase) {
				uc.On("DeleteParent", mock.Anything, 1).Return(usecase.ErrParentHasAthletes)
			},
			status: http.StatusConflict,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/parents/2",
			setup: func(uc *mockParentUsecase) {
				uc.On("DeleteParent", mock.Anything, 2).Return(nil)
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, r := setupParentRouter(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.status, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}
