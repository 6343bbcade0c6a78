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
	"github.com/stretchr/testify/require"
)

type mockAthleteUsecase struct{ mock.Mock }

func (m *mockAthleteUsecase) CreateAthlete(ctx context.Context, req *dto.CreateAthleteRequest) (*dto.AthleteResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AthleteResponse)
	return resp, args.Error(1)
}

func (m *mockAthleteUsecase) GetAllAthletes(ctx context.Context, parentID *int, page, limit int) (*dto.AthleteListResponse, error) {
	args := m.Called(ctx, parentID, page, limit)
	resp, _ := args.Get(0).(*dto.AthleteListResponse)
	return resp, args.Error(1)
}

func (m *mockAthleteUsecase) GetAthlete(ctx context.Context, id int) (*dto.AthleteResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*dto.AthleteResponse)
	return resp, args.Error(1)
}

func (m *mockAthleteUsecase) UpdateAthlete(ctx context.Context, id int, req *dto.UpdateAthleteRequest) (*dto.AthleteResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*dto.AthleteResponse)
	return resp, args.Error(1)
}

func (m *mockAthleteUsecase) DeleteAthlete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func setupAthleteRouter(t *testing.T) (*mockAthleteUsecase, http.Handler) {
	t.Helper()
	uc := new(mockAthleteUsecase)
	h := NewAthleteHandler(uc, validator.NewValidator())

	r := mux.NewRouter()
	r.HandleFunc("/athletes", h.CreateAthlete).Methods(http.MethodPost)
	r.HandleFunc("/athletes", h.GetAllAthletes).Methods(http.MethodGet)
	r.HandleFunc("/athletes/{id}", h.GetAthlete).Methods(http.MethodGet)
	r.HandleFunc("/athletes/{id}", h.UpdateAthlete).Methods(http.MethodPut)
	r.HandleFunc("/athletes/{id}", h.DeleteAthlete).Methods(http.MethodDelete)
	return uc, r
}

func TestAthleteHandler(t *testing.T) {
	parentID := 3

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		setup  func(uc *mockAthleteUsecase)
		status int
	}{
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/athletes",
			body:   `{"first_name":"Mia","last_name":"Lopez","parent_id":3}`,
			setup: func(uc *mockAthleteUsecase) {
				uc.On("CreateAthlete", mock.Anything, mock.MatchedBy(func(req *dto.CreateAthleteRequest) bool {
					return req.FirstName == "Mia" && req.ParentID != nil && *req.ParentID == 3
				})).Return(&dto.AthleteResponse{ID: 1, FullName: "Mia Lopez"}, nil)
			},
			status: http.StatusCreated,
		},
		{
			name:   "create missing name",
			method: http.MethodPost,
			path:   "/athletes",
			body:   `{"last_name":"Lopez"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "create malformed body",
			method: http.MethodPost,
			path:   "/athletes",
			body:   `{`,
			status: http.StatusBadRequest,
		},
		{
			name:   "create unknown parent",
			method: http.MethodPost,
			path:   "/athletes",
			body:   `{"first_name":"Mia","last_name":"Lopez","parent_id":99}`,
			setup: func(uc *mockAthleteUsecase) {
				uc.On("CreateAthlete", mock.Anything, mock.Anything).Return(nil, usecase.ErrParentNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name:   "create bad birth date",
			method: http.MethodPost,
			path:   "/athletes",
			body:   `{"first_name":"Mia","last_name":"Lopez","date_of_birth":"05/01/2012"}`,
			setup: func(uc *mockAthleteUsecase) {
				uc.On("CreateAthlete", mock.Anything, mock.Anything).Return(nil, usecase.ErrInvalidDateFormat)
			},
			status: http.StatusBadRequest,
		},
		{
			name:   "list by parent",
			method: http.MethodGet,
			path:   "/athletes?parent_id=3&page=1&limit=10",
			setup: func(uc *mockAthleteUsecase) {
				uc.On("GetAllAthletes", mock.Anything, &parentID, 1, 10).
					Return(&dto.AthleteListResponse{Athletes: []dto.AthleteResponse{{ID: 1}}, Total: 1, Page: 1, Limit: 10}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "list bad parent filter",
			method: http.MethodGet,
			path:   "/athletes?parent_id=x",
			status: http.StatusBadRequest,
		},
		{
			name:   "list failure",
			method: http.MethodGet,
			path:   "/athletes",
			setup: func(uc *mockAthleteUsecase) {
				uc.On("GetAllAthletes", mock.Anything, (*int)(nil), 0, 0).Return(nil, errors.New("db down"))
			},
			status: http.StatusInternalServerError,
		},
		{
			name:   "get not found",
			method: http.MethodGet,
			path:   "/athletes/8",
			setup: func(uc *mockAthleteUsecase) {
				uc.On("GetAthlete", mock.Anything, 8).Return(nil, usecase.ErrAthleteNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name:   "get bad id",
			method: http.MethodGet,
			path:   "/athletes/abc",
			status: http.StatusBadRequest,
		},
		{
			name:   "update",
			method: http.MethodPut,
			path:   "/athletes/2",
			body:   `{"first_name":"Mia","last_name":"Ortiz","sport":"swimming"}`,
			setup: func(uc *mockAthleteUsecase) {
				uc.On("UpdateAthlete", mock.Anything, 2, mock.MatchedBy(func(req *dto.UpdateAthleteRequest) bool {
					return req.LastName == "Ortiz" && req.Sport == "swimming"
				})).Return(&dto.AthleteResponse{ID: 2, FullName: "Mia Ortiz"}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/athletes/2",
			setup: func(uc *mockAthleteUsecase) {
				uc.On("DeleteAthlete", mock.Anything, 2).Return(nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "delete failure",
			method: http.MethodDelete,
			path:   "/athletes/5",
			setup: func(uc *mockAthleteUsecase) {
				uc.On("DeleteAthlete", mock.Anything, 5).Return(errors.New("db down"))
			},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, r := setupAthleteRouter(t)
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

func TestAthleteHandler_GetAllAthletes_Meta(t *testing.T) {
	uc, r := setupAthleteRouter(t)

	uc.On("GetAllAthletes", mock.Anything, (*int)(nil), 2, 5).
		Return(&dto.AthleteListResponse{Athletes: []dto.AthleteResponse{{ID: 6}}, Total: 6, Page: 2, Limit: 5}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/athletes?page=2&limit=5", nil))

	var athletes []dto.AthleteResponse
	env := decodeEnvelope(t, rec, &athletes)
	assert.True(t, env.Success)
	require.Len(t, athletes, 1)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.TotalPages)
	assert.Equal(t, int64(6), env.Meta.Total)
}
