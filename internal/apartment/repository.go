package apartment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, apt *Apartment) error
	GetByID(ctx context.Context, id string) (*Apartment, error)
	List(ctx context.Context, publishedOnly bool) ([]*Apartment, error)
	Update(ctx context.Context, apt *Apartment) error
	SetPublished(ctx context.Context, id string, published bool) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, apt *Apartment) error {
	const query = `
		INSERT INTO public.apartments (title, description, price, max_guests, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_published, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, apt.Title, apt.Description, apt.Price, apt.MaxGuests, apt.ImageURL).
		Scan(&apt.ID, &apt.IsPublished, &apt.CreatedAt, &apt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create apartment failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Apartment, error) {
	const query = `
		SELECT id, title, description, price, max_guests, image_url, is_published, created_at, updated_at
		FROM public.apartments
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var apt Apartment
	if err := row.Scan(
		&apt.ID, &apt.Title, &apt.Description, &apt.Price, &apt.MaxGuests,
		&apt.ImageURL, &apt.IsPublished, &apt.CreatedAt, &apt.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get apartment failed: %w", err)
	}
	return &apt, nil
}

func (r *pgxRepository) List(ctx context.Context, publishedOnly bool) ([]*Apartment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "title", "description", "price", "max_guests",
		"image_url", "is_published", "created_at", "updated_at",
	).
		From("public.apartments").
		OrderBy("created_at DESC")

	if publishedOnly {
		query = query.Where(squirrel.Eq{"is_published": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list apartments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list apartments failed: %w", err)
	}
	defer rows.Close()

	var apartments []*Apartment
	for rows.Next() {
		var apt Apartment
		if err := rows.Scan(
			&apt.ID, &apt.Title, &apt.Description, &apt.Price, &apt.MaxGuests,
			&apt.ImageURL, &apt.IsPublished, &apt.CreatedAt, &apt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan apartment failed: %w", err)
		}
		apartments = append(apartments, &apt)
	}

	return apartments, nil
}

func (r *pgxRepository) Update(ctx context.Context, apt *Apartment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.apartments").
		Set("title", apt.Title).
		Set("description", apt.Description).
		Set("price", apt.Price).
		Set("max_guests", apt.MaxGuests).
		Set("image_url", apt.ImageURL).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": apt.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update apartment query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update apartment failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetPublished(ctx context.Context, id string, published bool) error {
	const query = `
		UPDATE public.apartments
		SET is_published = $1, updated_at = now()
		WHERE id = $2
	`
	ct, err := r.pool.Exec(ctx, query, published, id)
	if err != nil {
		return fmt.Errorf("set apartment published failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
