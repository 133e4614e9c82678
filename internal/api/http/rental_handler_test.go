package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apihttp "carrental-backend/internal/api/http"
	"carrental-backend/internal/catalog"
	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRentalService lets each test script the service outcome.
type stubRentalService struct {
	create func(ctx context.Context, ownerID, carID int32, startDate, endDate string) (*domain.Rental, error)
	update func(ctx context.Context, requesterID, rentalID int32, startDate, endDate string) (*domain.Rental, error)
	cancel func(ctx context.Context, requesterID, rentalID int32) (*domain.Rental, error)
	get    func(ctx context.Context, requesterID, rentalID int32) (*domain.Rental, error)
	list   func(ctx context.Context, requesterID int32) ([]domain.Rental, error)
}

func (s *stubRentalService) CreateRental(ctx context.Context, ownerID, carID int32, startDate, endDate string) (*domain.Rental, error) {
	return s.create(ctx, ownerID, carID, startDate, endDate)
}
func (s *stubRentalService) UpdateRental(ctx context.Context, requesterID, rentalID int32, startDate, endDate string) (*domain.Rental, error) {
	return s.update(ctx, requesterID, rentalID, startDate, endDate)
}
func (s *stubRentalService) CancelRental(ctx context.Context, requesterID, rentalID int32) (*domain.Rental, error) {
	return s.cancel(ctx, requesterID, rentalID)
}
func (s *stubRentalService) GetRental(ctx context.Context, requesterID, rentalID int32) (*domain.Rental, error) {
	return s.get(ctx, requesterID, rentalID)
}
func (s *stubRentalService) ListRentals(ctx context.Context, requesterID int32) ([]domain.Rental, error) {
	return s.list(ctx, requesterID)
}

type stubAuthService struct{ service.AuthService }
type stubUserService struct{ service.UserService }
type stubComplaintService struct{ service.ComplaintService }

const testSecret = "handler-test-secret-key-long-enough-0001"

func newTestRouter(rentalSvc service.RentalService) (http.Handler, security.TokenManager) {
	tm := security.NewTokenManager(testSecret, time.Hour, 24*time.Hour)
	router := apihttp.NewRouter(apihttp.RouterDeps{
		AuthSvc:      &stubAuthService{},
		UserSvc:      &stubUserService{},
		RentalSvc:    rentalSvc,
		ComplaintSvc: &stubComplaintService{},
		Catalog:      catalog.NewDefault(),
		TokenManager: tm,
		CORSOrigins:  []string{"*"},
	})
	return router, tm
}

func authedRequest(t *testing.T, tm security.TokenManager, method, target, body string) *http.Request {
	t.Helper()
	token, err := tm.GenerateAccessToken(7, "jane@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestCreateRentalHandler(t *testing.T) {
	svc := &stubRentalService{
		create: func(ctx context.Context, ownerID, carID int32, startDate, endDate string) (*domain.Rental, error) {
			assert.Equal(t, int32(7), ownerID, "owner must come from the token, not the body")
			return &domain.Rental{ID: 42, OwnerID: ownerID, CarID: carID, Status: domain.RentalStatusActive, TotalCostCents: 15000}, nil
		},
	}
	router, tm := newTestRouter(svc)

	req := authedRequest(t, tm, http.MethodPost, "/api/v1/rentals",
		`{"car_id":1,"start_date":"2026-02-01","end_date":"2026-02-04"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var rental domain.Rental
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rental))
	assert.Equal(t, int32(42), rental.ID)
	assert.Equal(t, int32(15000), rental.TotalCostCents)
}

func TestCreateRentalHandlerRequiresToken(t *testing.T) {
	router, _ := newTestRouter(&stubRentalService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals",
		strings.NewReader(`{"car_id":1,"start_date":"2026-02-01","end_date":"2026-02-04"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRentalHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"window expired", domain.ErrWindowExpired, http.StatusConflict, "WINDOW_EXPIRED"},
		{"invalid state", domain.ErrInvalidState, http.StatusConflict, "INVALID_STATE"},
		{"invalid range", domain.ErrInvalidRange, http.StatusBadRequest, "INVALID_RANGE"},
		{"unknown car", domain.ErrUnknownCar, http.StatusBadRequest, "UNKNOWN_CAR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubRentalService{
				update: func(ctx context.Context, requesterID, rentalID int32, startDate, endDate string) (*domain.Rental, error) {
					return nil, tt.err
				},
			}
			router, tm := newTestRouter(svc)

			req := authedRequest(t, tm, http.MethodPut, "/api/v1/rentals/42",
				`{"start_date":"2026-02-10","end_date":"2026-02-15"}`)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec))
		})
	}
}

func TestCancelRentalHandler(t *testing.T) {
	svc := &stubRentalService{
		cancel: func(ctx context.Context, requesterID, rentalID int32) (*domain.Rental, error) {
			assert.Equal(t, int32(42), rentalID)
			return &domain.Rental{ID: rentalID, OwnerID: requesterID, Status: domain.RentalStatusCancelled}, nil
		},
	}
	router, tm := newTestRouter(svc)

	req := authedRequest(t, tm, http.MethodPut, "/api/v1/rentals/42/cancel", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rental domain.Rental
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rental))
	assert.Equal(t, domain.RentalStatusCancelled, rental.Status)
}

func TestListCarsHandlerIsPublic(t *testing.T) {
	router, _ := newTestRouter(&stubRentalService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cars?kind=electric", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var cars []domain.Car
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cars))
	assert.Len(t, cars, 7)
	for _, car := range cars {
		assert.Equal(t, domain.CarKindElectric, car.Kind)
	}
}

func TestWelcomeBanner(t *testing.T) {
	router, _ := newTestRouter(&stubRentalService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to the Car Rental API")
}
