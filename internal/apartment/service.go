package apartment

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Title       string
	Description string
	Price       float64
	MaxGuests   int
	ImageURL    *string
}

type UpdateRequest struct {
	Title       *string
	Description *string
	Price       *float64
	MaxGuests   *int
	ImageURL    *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Apartment, error)
	GetByID(ctx context.Context, id string) (*Apartment, error)
	ListAll(ctx context.Context) ([]*Apartment, error)
	ListPublished(ctx context.Context) ([]*Apartment, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Apartment, error)
	Publish(ctx context.Context, id string) (*Apartment, error)
	Unpublish(ctx context.Context, id string) (*Apartment, error)

	// GetPublished resolves an apartment only if it is published.
	// A missing and an unpublished apartment are indistinguishable to the caller.
	GetPublished(ctx context.Context, id string) (*Apartment, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateTitle(title string) error {
	n := len(strings.TrimSpace(title))
	if n < 2 || n > 120 {
		return ErrInvalidTitle
	}
	return nil
}

func validateDescription(desc string) error {
	n := len(strings.TrimSpace(desc))
	if n < 2 || n > 2000 {
		return ErrInvalidDesc
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Apartment, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}
	if req.Price < 1 {
		return nil, ErrInvalidPrice
	}
	if req.MaxGuests < 1 {
		return nil, ErrInvalidGuests
	}

	apt := &Apartment{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		MaxGuests:   req.MaxGuests,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, err
	}
	return apt, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Apartment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetPublished(ctx context.Context, id string) (*Apartment, error) {
	apt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !apt.IsPublished {
		return nil, ErrNotFound
	}
	return apt, nil
}

func (s *service) ListAll(ctx context.Context) ([]*Apartment, error) {
	return s.repo.List(ctx, false)
}

func (s *service) ListPublished(ctx context.Context) ([]*Apartment, error) {
	return s.repo.List(ctx, true)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Apartment, error) {
	apt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return nil, err
		}
		apt.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		if err := validateDescription(*req.Description); err != nil {
			return nil, err
		}
		apt.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		if *req.Price < 1 {
			return nil, ErrInvalidPrice
		}
		apt.Price = *req.Price
	}
	if req.MaxGuests != nil {
		if *req.MaxGuests < 1 {
			return nil, ErrInvalidGuests
		}
		apt.MaxGuests = *req.MaxGuests
	}
	if req.ImageURL != nil {
		apt.ImageURL = req.ImageURL
	}

	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, err
	}
	return apt, nil
}

func (s *service) Publish(ctx context.Context, id string) (*Apartment, error) {
	return s.setPublished(ctx, id, true)
}

func (s *service) Unpublish(ctx context.Context, id string) (*Apartment, error) {
	return s.setPublished(ctx, id, false)
}

func (s *service) setPublished(ctx context.Context, id string, published bool) (*Apartment, error) {
	if err := s.repo.SetPublished(ctx, id, published); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
