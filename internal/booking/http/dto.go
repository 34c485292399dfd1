package http

import (
	"time"

	aptHttp "github.com/aptstay/apartment-booking-backend/internal/apartment/http"
	"github.com/aptstay/apartment-booking-backend/internal/booking"
)

const dateLayout = "2006-01-02"

// AvailabilityQuery holds the requested date range for an availability check.
type AvailabilityQuery struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// CreateBookingRequest carries the dates as plain strings: the JSON binder
// only understands RFC3339 for time.Time, so YYYY-MM-DD is parsed by hand.
type CreateBookingRequest struct {
	ApartmentID string `json:"apartment_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

// Dates parses the payload's YYYY-MM-DD date strings.
func (r CreateBookingRequest) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type BookingResponse struct {
	ID        string               `json:"id"`
	Apartment aptHttp.ApartmentTag `json:"apartment"`
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID: b.ID,
		Apartment: aptHttp.ApartmentTag{
			ID:       b.ApartmentID,
			Title:    b.ApartmentTitle,
			ImageURL: b.ApartmentImageURL,
		},
		StartDate: b.StartDate.Format(dateLayout),
		EndDate:   b.EndDate.Format(dateLayout),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}

// DateRangeResponse is the public per-apartment view: dates only, no booker identity.
type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func NewDateRangeResponse(r booking.DateRange) DateRangeResponse {
	return DateRangeResponse{
		StartDate: r.Start.Format(dateLayout),
		EndDate:   r.End.Format(dateLayout),
	}
}

type CancelResponse struct {
	OK bool `json:"ok"`
}
