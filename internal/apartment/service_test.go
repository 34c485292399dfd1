package apartment

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepository struct {
	apartments map[string]*Apartment
	nextID     int
}

func newMemRepository() *memRepository {
	return &memRepository{apartments: make(map[string]*Apartment)}
}

func (r *memRepository) Create(ctx context.Context, apt *Apartment) error {
	r.nextID++
	apt.ID = fmt.Sprintf("apt-%d", r.nextID)
	stored := *apt
	r.apartments[apt.ID] = &stored
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Apartment, error) {
	apt, ok := r.apartments[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *apt
	return &copied, nil
}

func (r *memRepository) List(ctx context.Context, publishedOnly bool) ([]*Apartment, error) {
	var out []*Apartment
	for _, apt := range r.apartments {
		if publishedOnly && !apt.IsPublished {
			continue
		}
		copied := *apt
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memRepository) Update(ctx context.Context, apt *Apartment) error {
	if _, ok := r.apartments[apt.ID]; !ok {
		return ErrNotFound
	}
	stored := *apt
	r.apartments[apt.ID] = &stored
	return nil
}

func (r *memRepository) SetPublished(ctx context.Context, id string, published bool) error {
	apt, ok := r.apartments[id]
	if !ok {
		return ErrNotFound
	}
	apt.IsPublished = published
	return nil
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func validCreate() CreateRequest {
	return CreateRequest{
		Title:       "Seaside Loft",
		Description: "Bright loft two minutes from the beach.",
		Price:       120,
		MaxGuests:   4,
	}
}

func TestCreateApartment(t *testing.T) {
	ctx := context.Background()

	t.Run("valid request", func(t *testing.T) {
		svc := NewService(newMemRepository())
		apt, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)

		assert.NotEmpty(t, apt.ID)
		assert.Equal(t, "Seaside Loft", apt.Title)
		assert.False(t, apt.IsPublished, "listings start unpublished")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		svc := NewService(newMemRepository())
		req := validCreate()
		req.Title = "  Seaside Loft  "
		apt, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Seaside Loft", apt.Title)
	})

	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"title too short", func(r *CreateRequest) { r.Title = "x" }, ErrInvalidTitle},
		{"title too long", func(r *CreateRequest) { r.Title = strings.Repeat("a", 121) }, ErrInvalidTitle},
		{"blank title", func(r *CreateRequest) { r.Title = "   " }, ErrInvalidTitle},
		{"description too short", func(r *CreateRequest) { r.Description = "x" }, ErrInvalidDesc},
		{"zero price", func(r *CreateRequest) { r.Price = 0 }, ErrInvalidPrice},
		{"negative price", func(r *CreateRequest) { r.Price = -5 }, ErrInvalidPrice},
		{"zero guests", func(r *CreateRequest) { r.MaxGuests = 0 }, ErrInvalidGuests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newMemRepository())
			req := validCreate()
			tt.mutate(&req)
			_, err := svc.Create(ctx, req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateApartment(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, string) {
		t.Helper()
		svc := NewService(newMemRepository())
		apt, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		return svc, apt.ID
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		svc, id := setup(t)
		apt, err := svc.Update(ctx, id, UpdateRequest{Price: floatPtr(150)})
		require.NoError(t, err)

		assert.Equal(t, 150.0, apt.Price)
		assert.Equal(t, "Seaside Loft", apt.Title)
		assert.Equal(t, 4, apt.MaxGuests)
	})

	t.Run("invalid field rejects whole update", func(t *testing.T) {
		svc, id := setup(t)
		_, err := svc.Update(ctx, id, UpdateRequest{Title: strPtr("x"), MaxGuests: intPtr(6)})
		require.ErrorIs(t, err, ErrInvalidTitle)

		apt, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 4, apt.MaxGuests, "state must be unchanged")
	})

	t.Run("unknown apartment", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Update(ctx, "missing", UpdateRequest{Price: floatPtr(99)})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPublishLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepository())

	apt, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	// Unpublished: hidden from GetPublished and public listing.
	_, err = svc.GetPublished(ctx, apt.ID)
	require.ErrorIs(t, err, ErrNotFound)

	published, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Empty(t, published)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "admin listing includes unpublished")

	// Publish makes it visible.
	apt, err = svc.Publish(ctx, apt.ID)
	require.NoError(t, err)
	assert.True(t, apt.IsPublished)

	got, err := svc.GetPublished(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, apt.ID, got.ID)

	published, err = svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Len(t, published, 1)

	// Unpublish hides it again.
	apt, err = svc.Unpublish(ctx, apt.ID)
	require.NoError(t, err)
	assert.False(t, apt.IsPublished)

	_, err = svc.GetPublished(ctx, apt.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
