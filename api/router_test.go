package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ira5334/backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(health func(context.Context) error) (*gin.Engine, *MockRoomUseCase, *MockBookingUseCase, *MockCustomerUseCase) {
	gin.SetMode(gin.TestMode)
	roomsMock := &MockRoomUseCase{}
	bookingsMock := &MockBookingUseCase{}
	customersMock := &MockCustomerUseCase{}
	r := NewRouter(RouterDeps{
		Rooms:          roomsMock,
		Bookings:       bookingsMock,
		Customers:      customersMock,
		Health:         health,
		AllowedOrigins: []string{"*"},
	})
	return r, roomsMock, bookingsMock, customersMock
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_RoomsIsIdempotent(t *testing.T) {
	r, roomsMock, _, _ := newTestRouter(nil)
	catalog := []domain.Room{
		{ID: 1, Number: "101", Type: "Standard", Price: 80},
		{ID: 2, Number: "201", Type: "Deluxe", Price: 120},
	}
	roomsMock.On("List", mock.Anything).Return(catalog, nil).Twice()

	first := serve(r, "GET", "/rooms", "")
	second := serve(r, "GET", "/rooms", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.NotEmpty(t, first.Header().Get(requestIDHeader))
	roomsMock.AssertExpectations(t)
}

func TestRouter_Routes(t *testing.T) {
	r, _, bookingsMock, customersMock := newTestRouter(nil)

	bookingsMock.On("CheckAvailability", mock.Anything, "2024-01-10", "2024-01-15").Return([]domain.Room{}, nil)
	bookingsMock.On("History", mock.Anything, "guest@example.com").Return([]domain.ReservationView{}, nil)
	customersMock.On("GetProfile", mock.Anything, "guest@example.com").Return(&domain.Customer{ID: 1}, nil)
	customersMock.On("UpdateProfile", mock.Anything, "ghost@example.com", mock.Anything).Return(domain.ErrNotFound)

	testCases := []struct {
		method, path, body string
		want               int
	}{
		{"POST", "/check-availability", `{"check_in_date":"2024-01-10","check_out_date":"2024-01-15"}`, http.StatusOK},
		{"POST", "/check-availability", `{"check_in_date":"2024-01-10"}`, http.StatusBadRequest},
		{"GET", "/api/reservations/email/guest@example.com", "", http.StatusOK},
		{"GET", "/api/user/email/guest@example.com", "", http.StatusOK},
		{"PUT", "/api/user/email/ghost@example.com", `{"first_name":"A"}`, http.StatusNotFound},
		{"POST", "/api/login", `{}`, http.StatusBadRequest},
		{"GET", "/nope", "", http.StatusNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := serve(r, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRouter_Health(t *testing.T) {
	r, _, _, _ := newTestRouter(func(context.Context) error { return nil })
	assert.Equal(t, http.StatusOK, serve(r, "GET", "/healthz", "").Code)

	r, _, _, _ = newTestRouter(func(context.Context) error { return errors.New("db down") })
	w := serve(r, "GET", "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestRouter_CORSPreflight(t *testing.T) {
	r, _, _, _ := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/book", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RequestIDPropagates(t *testing.T) {
	r, roomsMock, _, _ := newTestRouter(nil)
	roomsMock.On("List", mock.Anything).Return([]domain.Room{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/rooms", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestRouter_SwaggerDocs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "swagger.json"), []byte(`{"swagger":"2.0"}`), 0o600))

	r := NewRouter(RouterDeps{
		Rooms:      &MockRoomUseCase{},
		Bookings:   &MockBookingUseCase{},
		Customers:  &MockCustomerUseCase{},
		SwaggerDir: dir,
	})

	doc := serve(r, "GET", "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, doc.Code)
	assert.Contains(t, doc.Body.String(), `"swagger":"2.0"`)

	assert.Equal(t, http.StatusOK, serve(r, "GET", "/docs/index.html", "").Code)
}
