// Package repository provides data persistence implementations for catalog entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/artfolio/gallery/internal/catalog/domain"
	"github.com/artfolio/gallery/internal/database"
	apperrors "github.com/artfolio/gallery/internal/errors"
)

const designColumns = `id, title, short_description, long_description, category, style, colour,
	fabric, occasion, sizes_available, price_range, tags, designer_name, collection_name,
	season, object_key, image_url, featured, status, view_count, like_count, created_at, updated_at`

// PostgreSQLDesignRepository handles design persistence for PostgreSQL
type PostgreSQLDesignRepository struct {
	db *sql.DB
}

// NewPostgreSQLDesignRepository creates a new PostgreSQLDesignRepository
func NewPostgreSQLDesignRepository(db *sql.DB) *PostgreSQLDesignRepository {
	return &PostgreSQLDesignRepository{
		db: db,
	}
}

// Create inserts a new design
func (r *PostgreSQLDesignRepository) Create(ctx context.Context, design *domain.Design) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO designs (id, title, short_description, long_description, category, style,
			  colour, fabric, occasion, sizes_available, price_range, tags, designer_name,
			  collection_name, season, object_key, image_url, featured, status, view_count,
			  like_count, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			  $18, $19, $20, $21, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		design.ID, design.Title, design.ShortDescription, design.LongDescription,
		design.Category, design.Style, design.Colour, design.Fabric, design.Occasion,
		design.SizesAvailable, design.PriceRange, design.Tags, design.DesignerName,
		design.CollectionName, design.Season, design.ObjectKey, design.ImageURL,
		design.Featured, design.Status, design.ViewCount, design.LikeCount,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create design")
	}
	return nil
}

// GetByID retrieves a design by ID
func (r *PostgreSQLDesignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Design, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + designColumns + ` FROM designs WHERE id = $1`

	design, err := scanDesign(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDesignNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get design by id")
	}
	return design, nil
}

// List retrieves designs matching the filter, newest first
func (r *PostgreSQLDesignRepository) List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Design, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildPostgreSQLFilter(filter)
	args = append(args, offset, limit)
	query := fmt.Sprintf(`SELECT %s FROM designs %s ORDER BY created_at DESC OFFSET $%d LIMIT $%d`,
		designColumns, where, len(args)-1, len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list designs")
	}
	defer rows.Close()

	return scanDesigns(rows)
}

// Count returns the number of designs matching the filter
func (r *PostgreSQLDesignRepository) Count(ctx context.Context, filter domain.Filter) (int, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildPostgreSQLFilter(filter)
	query := `SELECT COUNT(*) FROM designs ` + where

	var count int
	if err := querier.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count designs")
	}
	return count, nil
}

// ListFeatured retrieves active featured designs, newest first
func (r *PostgreSQLDesignRepository) ListFeatured(ctx context.Context, limit int) ([]*domain.Design, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + designColumns + ` FROM designs
			  WHERE featured = TRUE AND status = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, domain.DesignStatusActive, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list featured designs")
	}
	defer rows.Close()

	return scanDesigns(rows)
}

// Update persists changes to a design
func (r *PostgreSQLDesignRepository) Update(ctx context.Context, design *domain.Design) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE designs SET title = $1, short_description = $2, long_description = $3,
			  category = $4, style = $5, colour = $6, fabric = $7, occasion = $8,
			  sizes_available = $9, price_range = $10, tags = $11, designer_name = $12,
			  collection_name = $13, season = $14, object_key = $15, image_url = $16,
			  featured = $17, status = $18, updated_at = NOW()
			  WHERE id = $19`

	result, err := querier.ExecContext(ctx, query,
		design.Title, design.ShortDescription, design.LongDescription, design.Category,
		design.Style, design.Colour, design.Fabric, design.Occasion, design.SizesAvailable,
		design.PriceRange, design.Tags, design.DesignerName, design.CollectionName,
		design.Season, design.ObjectKey, design.ImageURL, design.Featured, design.Status,
		design.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update design")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrDesignNotFound
	}
	return nil
}

// Delete removes a design by ID
func (r *PostgreSQLDesignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM designs WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete design")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrDesignNotFound
	}
	return nil
}

// IncrementViewCount bumps the view counter for a design.
// The increment happens in SQL so concurrent reads never lose updates.
func (r *PostgreSQLDesignRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `UPDATE designs SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to increment view count")
	}
	return nil
}

// AdjustLikeCount changes the like counter by delta, clamped at zero.
func (r *PostgreSQLDesignRepository) AdjustLikeCount(ctx context.Context, id uuid.UUID, delta int) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE designs SET like_count = GREATEST(like_count + $1, 0) WHERE id = $2`

	_, err := querier.ExecContext(ctx, query, delta, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to adjust like count")
	}
	return nil
}

// buildPostgreSQLFilter translates a filter into a WHERE clause with
// positional arguments.
func buildPostgreSQLFilter(filter domain.Filter) (string, []any) {
	var clauses []string
	var args []any

	add := func(column string, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(title ILIKE $%d OR short_description ILIKE $%d OR long_description ILIKE $%d OR tags ILIKE $%d OR designer_name ILIKE $%d)",
			n, n, n, n, n))
	}
	add("category", filter.Category)
	add("style", filter.Style)
	add("colour", filter.Colour)
	add("fabric", filter.Fabric)
	add("occasion", filter.Occasion)
	add("designer_name", filter.Designer)
	add("collection_name", filter.Collection)
	add("season", filter.Season)
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		clauses = append(clauses, fmt.Sprintf("featured = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanDesign reads a single design row
func scanDesign(row rowScanner) (*domain.Design, error) {
	var d domain.Design
	err := row.Scan(
		&d.ID, &d.Title, &d.ShortDescription, &d.LongDescription, &d.Category, &d.Style,
		&d.Colour, &d.Fabric, &d.Occasion, &d.SizesAvailable, &d.PriceRange, &d.Tags,
		&d.DesignerName, &d.CollectionName, &d.Season, &d.ObjectKey, &d.ImageURL,
		&d.Featured, &d.Status, &d.ViewCount, &d.LikeCount, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// scanDesigns reads all rows into design entities
func scanDesigns(rows *sql.Rows) ([]*domain.Design, error) {
	var designs []*domain.Design
	for rows.Next() {
		design, err := scanDesign(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan design row")
		}
		designs = append(designs, design)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate design rows")
	}
	return designs, nil
}
