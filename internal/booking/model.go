package booking

import (
	"net/http"
	"time"

	"github.com/aptstay/apartment-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(apperror.KindNotFound, http.StatusNotFound, "booking not found")
	ErrApartmentNotFound = apperror.New(apperror.KindNotFound, http.StatusNotFound, "apartment not found")
	ErrInvalidRange      = apperror.New(apperror.KindInvalidRange, http.StatusBadRequest, "end date must be after start date")
	ErrForbidden         = apperror.New(apperror.KindForbidden, http.StatusForbidden, "permission denied")
	ErrDateConflict      = apperror.New(apperror.KindConflict, http.StatusConflict, "dates are not available")
	ErrStoreUnavailable  = apperror.New(apperror.KindStoreUnavailable, http.StatusServiceUnavailable, "booking store unavailable, retry later")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Booking occupies the nights [StartDate, EndDate) of one apartment.
// EndDate is the checkout day and is never occupied itself.
// Cancelled bookings are kept for history and do not constrain availability.
type Booking struct {
	ID                string
	ApartmentID       string
	ApartmentTitle    string
	ApartmentImageURL *string
	UserID            string
	StartDate         time.Time
	EndDate           time.Time
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Range returns the booking's occupied date range.
func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}
