package booking

import (
	"context"
	"errors"
	"time"

	"github.com/aptstay/apartment-booking-backend/internal/apartment"
)

type CreateRequest struct {
	UserID      string
	ApartmentID string
	Start       time.Time
	End         time.Time
}

type Service interface {
	// CheckAvailability reports whether [start, end) is free of active
	// bookings for the apartment. Pure read, no side effects.
	CheckAvailability(ctx context.Context, apartmentID string, start, end time.Time) (bool, error)

	// Create books the range for the user. The overlap re-check and the
	// insert run as one atomic unit against the store, so of two concurrent
	// calls with overlapping ranges exactly one succeeds.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)

	// Cancel transitions the booking to cancelled. Only the owning user may
	// cancel; cancelling an already-cancelled booking is a no-op.
	Cancel(ctx context.Context, bookingID, callerUserID string) error

	// ListByApartment returns the active booked ranges of an apartment,
	// ordered by start date ascending. Used to render disabled calendar dates.
	ListByApartment(ctx context.Context, apartmentID string) ([]DateRange, error)

	// ListByUser returns the user's active bookings, newest stay first.
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
}

type service struct {
	repo       Repository
	aptService apartment.Service
}

func NewService(repo Repository, aptService apartment.Service) Service {
	return &service{
		repo:       repo,
		aptService: aptService,
	}
}

func (s *service) CheckAvailability(ctx context.Context, apartmentID string, start, end time.Time) (bool, error) {
	if !(DateRange{Start: start, End: end}).IsValid() {
		return false, ErrInvalidRange
	}

	// The apartment must exist, but need not be published for a read-only check.
	if _, err := s.aptService.GetByID(ctx, apartmentID); err != nil {
		if errors.Is(err, apartment.ErrNotFound) {
			return false, ErrApartmentNotFound
		}
		return false, err
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, apartmentID, start, end)
	if err != nil {
		return false, err
	}
	return !hasOverlap, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if !(DateRange{Start: req.Start, End: req.End}).IsValid() {
		return nil, ErrInvalidRange
	}

	// An unpublished apartment is indistinguishable from a missing one,
	// so unpublished listings cannot be enumerated through booking attempts.
	apt, err := s.aptService.GetPublished(ctx, req.ApartmentID)
	if err != nil {
		if errors.Is(err, apartment.ErrNotFound) {
			return nil, ErrApartmentNotFound
		}
		return nil, err
	}

	b := &Booking{
		ApartmentID: req.ApartmentID,
		UserID:      req.UserID,
		StartDate:   req.Start,
		EndDate:     req.End,
		Status:      StatusActive,
	}

	if err := s.repo.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	b.ApartmentTitle = apt.Title
	b.ApartmentImageURL = apt.ImageURL

	return b, nil
}

func (s *service) Cancel(ctx context.Context, bookingID, callerUserID string) error {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if b.UserID != callerUserID {
		return ErrForbidden
	}

	if b.Status == StatusCancelled {
		return nil
	}

	return s.repo.UpdateStatus(ctx, bookingID, StatusCancelled)
}

func (s *service) ListByApartment(ctx context.Context, apartmentID string) ([]DateRange, error) {
	return s.repo.ListRangesByApartment(ctx, apartmentID)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}
