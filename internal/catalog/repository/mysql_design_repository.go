package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/artfolio/gallery/internal/catalog/domain"
	"github.com/artfolio/gallery/internal/database"
	apperrors "github.com/artfolio/gallery/internal/errors"
)

// MySQLDesignRepository handles design persistence for MySQL
type MySQLDesignRepository struct {
	db *sql.DB
}

// NewMySQLDesignRepository creates a new MySQLDesignRepository
func NewMySQLDesignRepository(db *sql.DB) *MySQLDesignRepository {
	return &MySQLDesignRepository{
		db: db,
	}
}

// Create inserts a new design
func (r *MySQLDesignRepository) Create(ctx context.Context, design *domain.Design) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO designs (id, title, short_description, long_description, category, style,
			  colour, fabric, occasion, sizes_available, price_range, tags, designer_name,
			  collection_name, season, object_key, image_url, featured, status, view_count,
			  like_count, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := design.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		uuidBytes, design.Title, design.ShortDescription, design.LongDescription,
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
func (r *MySQLDesignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Design, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + designColumns + ` FROM designs WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	design, err := scanMySQLDesign(querier.QueryRowContext(ctx, query, uuidBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDesignNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get design by id")
	}
	return design, nil
}

// List retrieves designs matching the filter, newest first
func (r *MySQLDesignRepository) List(ctx context.Context, filter domain.Filter, offset, limit int) ([]*domain.Design, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildMySQLFilter(filter)
	args = append(args, limit, offset)
	query := `SELECT ` + designColumns + ` FROM designs ` + where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list designs")
	}
	defer rows.Close()

	return scanMySQLDesigns(rows)
}

// Count returns the number of designs matching the filter
func (r *MySQLDesignRepository) Count(ctx context.Context, filter domain.Filter) (int, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := buildMySQLFilter(filter)
	query := `SELECT COUNT(*) FROM designs ` + where

	var count int
	if err := querier.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count designs")
	}
	return count, nil
}

// ListFeatured retrieves active featured designs, newest first
func (r *MySQLDesignRepository) ListFeatured(ctx context.Context, limit int) ([]*domain.Design, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + designColumns + ` FROM designs
			  WHERE featured = TRUE AND status = ? ORDER BY created_at DESC LIMIT ?`

	rows, err := querier.QueryContext(ctx, query, domain.DesignStatusActive, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list featured designs")
	}
	defer rows.Close()

	return scanMySQLDesigns(rows)
}

// Update persists changes to a design
func (r *MySQLDesignRepository) Update(ctx context.Context, design *domain.Design) error {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := design.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE designs SET title = ?, short_description = ?, long_description = ?,
			  category = ?, style = ?, colour = ?, fabric = ?, occasion = ?,
			  sizes_available = ?, price_range = ?, tags = ?, designer_name = ?,
			  collection_name = ?, season = ?, object_key = ?, image_url = ?,
			  featured = ?, status = ?, updated_at = NOW()
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		design.Title, design.ShortDescription, design.LongDescription, design.Category,
		design.Style, design.Colour, design.Fabric, design.Occasion, design.SizesAvailable,
		design.PriceRange, design.Tags, design.DesignerName, design.CollectionName,
		design.Season, design.ObjectKey, design.ImageURL, design.Featured, design.Status,
		uuidBytes,
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
func (r *MySQLDesignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, uuidBytes)
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
func (r *MySQLDesignRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, `UPDATE designs SET view_count = view_count + 1 WHERE id = ?`, uuidBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to increment view count")
	}
	return nil
}

// AdjustLikeCount changes the like counter by delta, clamped at zero.
func (r *MySQLDesignRepository) AdjustLikeCount(ctx context.Context, id uuid.UUID, delta int) error {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE designs SET like_count = GREATEST(like_count + ?, 0) WHERE id = ?`

	_, err = querier.ExecContext(ctx, query, delta, uuidBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to adjust like count")
	}
	return nil
}

// buildMySQLFilter translates a filter into a WHERE clause with ? placeholders.
func buildMySQLFilter(filter domain.Filter) (string, []any) {
	var clauses []string
	var args []any

	add := func(column string, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		clauses = append(clauses, column+" = ?")
	}

	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, "status = ?")
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern, pattern, pattern, pattern)
		clauses = append(clauses,
			"(title LIKE ? OR short_description LIKE ? OR long_description LIKE ? OR tags LIKE ? OR designer_name LIKE ?)")
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
		clauses = append(clauses, "featured = ?")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// scanMySQLDesign reads a single design row, converting the BINARY(16) id.
func scanMySQLDesign(row rowScanner) (*domain.Design, error) {
	var d domain.Design
	var idBytes []byte

	err := row.Scan(
		&idBytes, &d.Title, &d.ShortDescription, &d.LongDescription, &d.Category, &d.Style,
		&d.Colour, &d.Fabric, &d.Occasion, &d.SizesAvailable, &d.PriceRange, &d.Tags,
		&d.DesignerName, &d.CollectionName, &d.Season, &d.ObjectKey, &d.ImageURL,
		&d.Featured, &d.Status, &d.ViewCount, &d.LikeCount, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := d.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return &d, nil
}

// scanMySQLDesigns reads all rows into design entities
func scanMySQLDesigns(rows *sql.Rows) ([]*domain.Design, error) {
	var designs []*domain.Design
	for rows.Next() {
		design, err := scanMySQLDesign(rows)
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
