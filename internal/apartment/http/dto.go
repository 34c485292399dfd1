package http

import (
	"time"

	"github.com/aptstay/apartment-booking-backend/internal/apartment"
)

type CreateApartmentRequest struct {
	Title       string  `json:"title" binding:"required,min=2,max=120"`
	Description string  `json:"description" binding:"required,min=2,max=2000"`
	Price       float64 `json:"price" binding:"required,gte=1"`
	MaxGuests   int     `json:"max_guests" binding:"required,gte=1"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
}

type UpdateApartmentRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=2,max=120"`
	Description *string  `json:"description" binding:"omitempty,min=2,max=2000"`
	Price       *float64 `json:"price" binding:"omitempty,gte=1"`
	MaxGuests   *int     `json:"max_guests" binding:"omitempty,gte=1"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`
}

type ApartmentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	MaxGuests   int       `json:"max_guests"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewApartmentResponse(apt *apartment.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID:          apt.ID,
		Title:       apt.Title,
		Description: apt.Description,
		Price:       apt.Price,
		MaxGuests:   apt.MaxGuests,
		ImageURL:    apt.ImageURL,
		IsPublished: apt.IsPublished,
		CreatedAt:   apt.CreatedAt,
		UpdatedAt:   apt.UpdatedAt,
	}
}

// ApartmentTag is the minimal apartment reference embedded in other responses.
type ApartmentTag struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL *string `json:"image_url,omitempty"`
}
