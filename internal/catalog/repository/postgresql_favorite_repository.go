package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/artfolio/gallery/internal/catalog/domain"
	"github.com/artfolio/gallery/internal/database"
	apperrors "github.com/artfolio/gallery/internal/errors"
)

// PostgreSQLFavoriteRepository handles favorite persistence for PostgreSQL
type PostgreSQLFavoriteRepository struct {
	db *sql.DB
}

// NewPostgreSQLFavoriteRepository creates a new PostgreSQLFavoriteRepository
func NewPostgreSQLFavoriteRepository(db *sql.DB) *PostgreSQLFavoriteRepository {
	return &PostgreSQLFavoriteRepository{
		db: db,
	}
}

// Create inserts a favorite link
func (r *PostgreSQLFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO favorites (user_id, design_id, created_at) VALUES ($1, $2, NOW())`

	_, err := querier.ExecContext(ctx, query, favorite.UserID, favorite.DesignID)
	if err != nil {
		if isPostgreSQLFavoriteUniqueViolation(err) {
			return domain.ErrFavoriteAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create favorite")
	}
	return nil
}

// Delete removes a favorite link. Returns true when a row was removed so
// callers can treat a missing favorite as an idempotent no-op.
func (r *PostgreSQLFavoriteRepository) Delete(ctx context.Context, userID, designID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND design_id = $2`, userID, designID)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to delete favorite")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to get rows affected")
	}
	return rowsAffected > 0, nil
}

// Exists reports whether the user favorited the design
func (r *PostgreSQLFavoriteRepository) Exists(ctx context.Context, userID, designID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	var exists bool
	err := querier.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND design_id = $2)`,
		userID, designID,
	).Scan(&exists)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check favorite existence")
	}
	return exists, nil
}

// ListDesignsByUser retrieves the designs a user favorited, most recently
// favorited first.
func (r *PostgreSQLFavoriteRepository) ListDesignsByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Design, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + prefixColumns("d", designColumns) + `
			  FROM favorites f JOIN designs d ON d.id = f.design_id
			  WHERE f.user_id = $1 ORDER BY f.created_at DESC OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list favorite designs")
	}
	defer rows.Close()

	return scanDesigns(rows)
}

// CountByUser returns the number of designs a user favorited
func (r *PostgreSQLFavoriteRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, r.db)

	var count int
	err := querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count favorites")
	}
	return count, nil
}

// DeleteByDesign removes all favorite links for a design. Used when a
// design is deleted so no dangling links remain.
func (r *PostgreSQLFavoriteRepository) DeleteByDesign(ctx context.Context, designID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	_, err := querier.ExecContext(ctx, `DELETE FROM favorites WHERE design_id = $1`, designID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete favorites by design")
	}
	return nil
}

// DeleteOrphans removes favorite links whose design or user no longer
// exists. Returns the number of removed rows.
func (r *PostgreSQLFavoriteRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM favorites f
			  WHERE NOT EXISTS (SELECT 1 FROM designs d WHERE d.id = f.design_id)
			  OR NOT EXISTS (SELECT 1 FROM users u WHERE u.id = f.user_id)`

	result, err := querier.ExecContext(ctx, query)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete orphaned favorites")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get rows affected")
	}
	return rowsAffected, nil
}

// prefixColumns qualifies each column in a comma-separated list with a
// table alias for use in joins.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}

// isPostgreSQLFavoriteUniqueViolation checks for a duplicate favorite insert
func isPostgreSQLFavoriteUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
