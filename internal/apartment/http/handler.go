package http

import (
	"errors"
	"net/http"

	"github.com/aptstay/apartment-booking-backend/internal/apartment"
	"github.com/aptstay/apartment-booking-backend/internal/auth"
	"github.com/aptstay/apartment-booking-backend/internal/pkg/request"
	"github.com/aptstay/apartment-booking-backend/internal/pkg/response"
	"github.com/aptstay/apartment-booking-backend/internal/user"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service apartment.Service
}

func NewHandler(service apartment.Service) *Handler {
	return &Handler{service: service}
}

// List returns published apartments for regular users, or the full catalog
// when ?all=true is requested by an admin.
func (h *Handler) List(c *gin.Context) {
	all := c.Query("all") == "true" && auth.GetUserRole(c) == string(user.RoleAdmin)

	var (
		apartments []*apartment.Apartment
		err        error
	)
	if all {
		apartments, err = h.service.ListAll(c.Request.Context())
	} else {
		apartments, err = h.service.ListPublished(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list apartments"})
		return
	}

	items := make([]ApartmentResponse, len(apartments))
	for i, apt := range apartments {
		items[i] = NewApartmentResponse(apt)
	}

	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	apt, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, apartment.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "apartment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get apartment"})
		return
	}

	// Unpublished listings are visible to admins only.
	if !apt.IsPublished && auth.GetUserRole(c) != string(user.RoleAdmin) {
		c.JSON(http.StatusNotFound, gin.H{"error": "apartment not found"})
		return
	}

	c.JSON(http.StatusOK, NewApartmentResponse(apt))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateApartmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	apt, err := h.service.Create(c.Request.Context(), apartment.CreateRequest{
		Title:       body.Title,
		Description: body.Description,
		Price:       body.Price,
		MaxGuests:   body.MaxGuests,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewApartmentResponse(apt))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateApartmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	apt, err := h.service.Update(c.Request.Context(), uri.ID, apartment.UpdateRequest{
		Title:       body.Title,
		Description: body.Description,
		Price:       body.Price,
		MaxGuests:   body.MaxGuests,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewApartmentResponse(apt))
}

func (h *Handler) Publish(c *gin.Context) {
	h.setPublished(c, true)
}

func (h *Handler) Unpublish(c *gin.Context) {
	h.setPublished(c, false)
}

func (h *Handler) setPublished(c *gin.Context, published bool) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var (
		apt *apartment.Apartment
		err error
	)
	if published {
		apt, err = h.service.Publish(c.Request.Context(), uri.ID)
	} else {
		apt, err = h.service.Unpublish(c.Request.Context(), uri.ID)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewApartmentResponse(apt))
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apartment.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apartment.ErrInvalidTitle),
		errors.Is(err, apartment.ErrInvalidDesc),
		errors.Is(err, apartment.ErrInvalidPrice),
		errors.Is(err, apartment.ErrInvalidGuests):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process apartment"})
	}
}
