package apartment

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("apartment not found")
	ErrInvalidTitle  = errors.New("title must be between 2 and 120 characters")
	ErrInvalidDesc   = errors.New("description must be between 2 and 2000 characters")
	ErrInvalidPrice  = errors.New("price must be positive")
	ErrInvalidGuests = errors.New("max guests must be positive")
)

// Apartment represents a rentable listing.
// Unpublished apartments are visible to admins only and cannot be booked.
type Apartment struct {
	ID          string
	Title       string
	Description string
	Price       float64
	MaxGuests   int
	ImageURL    *string
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
