package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptstay/apartment-booking-backend/internal/booking"
)

const (
	testApartmentID = "11111111-1111-1111-1111-111111111111"
	testBookingID   = "44444444-4444-4444-4444-444444444444"
)

// stubService returns canned results per method.
type stubService struct {
	available    bool
	checkErr     error
	created      *booking.Booking
	createErr    error
	lastCreate   booking.CreateRequest
	cancelErr    error
	ranges       []booking.DateRange
	listErr      error
	userBookings []*booking.Booking
}

func (s *stubService) CheckAvailability(ctx context.Context, apartmentID string, start, end time.Time) (bool, error) {
	return s.available, s.checkErr
}

func (s *stubService) Create(ctx context.Context, req booking.CreateRequest) (*booking.Booking, error) {
	s.lastCreate = req
	return s.created, s.createErr
}

func (s *stubService) Cancel(ctx context.Context, bookingID, callerUserID string) error {
	return s.cancelErr
}

func (s *stubService) ListByApartment(ctx context.Context, apartmentID string) ([]booking.DateRange, error) {
	return s.ranges, s.listErr
}

func (s *stubService) ListByUser(ctx context.Context, userID string) ([]*booking.Booking, error) {
	return s.userBookings, s.listErr
}

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(&r.RouterGroup, NewHandler(svc), authAs("user-1"))
	return r
}

func perform(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckAvailabilityEndpoint(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		r := newRouter(&stubService{available: true})
		w := perform(r, http.MethodGet, "/apartments/"+testApartmentID+"/availability?start=2026-03-01&end=2026-03-05", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Available)
	})

	t.Run("missing query params", func(t *testing.T) {
		r := newRouter(&stubService{})
		w := perform(r, http.MethodGet, "/apartments/"+testApartmentID+"/availability", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid uuid in path", func(t *testing.T) {
		r := newRouter(&stubService{})
		w := perform(r, http.MethodGet, "/apartments/nope/availability?start=2026-03-01&end=2026-03-05", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid range maps to 400", func(t *testing.T) {
		r := newRouter(&stubService{checkErr: booking.ErrInvalidRange})
		w := perform(r, http.MethodGet, "/apartments/"+testApartmentID+"/availability?start=2026-03-05&end=2026-03-01", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown apartment maps to 404", func(t *testing.T) {
		r := newRouter(&stubService{checkErr: booking.ErrApartmentNotFound})
		w := perform(r, http.MethodGet, "/apartments/"+testApartmentID+"/availability?start=2026-03-01&end=2026-03-05", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateBookingEndpoint(t *testing.T) {
	validBody := `{"apartment_id":"` + testApartmentID + `","start_date":"2026-03-01","end_date":"2026-03-05"}`

	t.Run("created", func(t *testing.T) {
		created := &booking.Booking{
			ID:             testBookingID,
			ApartmentID:    testApartmentID,
			UserID:         "user-1",
			StartDate:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			Status:         booking.StatusActive,
			ApartmentTitle: "Seaside Loft",
		}
		svc := &stubService{created: created}
		r := newRouter(svc)
		w := perform(r, http.MethodPost, "/bookings", validBody)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, testBookingID, resp.ID)
		assert.Equal(t, "2026-03-01", resp.StartDate)
		assert.Equal(t, "2026-03-05", resp.EndDate)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, "Seaside Loft", resp.Apartment.Title)

		// The plain YYYY-MM-DD payload must reach the service as parsed dates.
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), svc.lastCreate.Start)
		assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), svc.lastCreate.End)
	})

	t.Run("rejects RFC3339 dates", func(t *testing.T) {
		r := newRouter(&stubService{})
		body := `{"apartment_id":"` + testApartmentID + `","start_date":"2026-03-01T00:00:00Z","end_date":"2026-03-05T00:00:00Z"}`
		w := perform(r, http.MethodPost, "/bookings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects garbage dates", func(t *testing.T) {
		r := newRouter(&stubService{})
		body := `{"apartment_id":"` + testApartmentID + `","start_date":"first of march","end_date":"2026-03-05"}`
		w := perform(r, http.MethodPost, "/bookings", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		r := newRouter(&stubService{createErr: booking.ErrDateConflict})
		w := perform(r, http.MethodPost, "/bookings", validBody)

		require.Equal(t, http.StatusConflict, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "dates are not available", resp["error"])
	})

	t.Run("store outage maps to 503", func(t *testing.T) {
		r := newRouter(&stubService{createErr: booking.ErrStoreUnavailable})
		w := perform(r, http.MethodPost, "/bookings", validBody)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		r := newRouter(&stubService{})
		w := perform(r, http.MethodPost, "/bookings", `{"apartment_id":"not-a-uuid"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCancelBookingEndpoint(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r := newRouter(&stubService{})
		w := perform(r, http.MethodPost, "/bookings/"+testBookingID+"/cancel", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign booking maps to 403", func(t *testing.T) {
		r := newRouter(&stubService{cancelErr: booking.ErrForbidden})
		w := perform(r, http.MethodPost, "/bookings/"+testBookingID+"/cancel", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown booking maps to 404", func(t *testing.T) {
		r := newRouter(&stubService{cancelErr: booking.ErrNotFound})
		w := perform(r, http.MethodPost, "/bookings/"+testBookingID+"/cancel", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListByApartmentEndpoint(t *testing.T) {
	ranges := []booking.DateRange{
		{Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
		{Start: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), End: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)},
	}
	r := newRouter(&stubService{ranges: ranges})
	w := perform(r, http.MethodGet, "/apartments/"+testApartmentID+"/bookings", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []DateRangeResponse `json:"items"`
		Total int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "2026-03-01", resp.Items[0].StartDate)
	assert.Equal(t, "2026-03-05", resp.Items[0].EndDate)
}
