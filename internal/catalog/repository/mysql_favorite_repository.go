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

// MySQLFavoriteRepository handles favorite persistence for MySQL
type MySQLFavoriteRepository struct {
	db *sql.DB
}

// NewMySQLFavoriteRepository creates a new MySQLFavoriteRepository
func NewMySQLFavoriteRepository(db *sql.DB) *MySQLFavoriteRepository {
	return &MySQLFavoriteRepository{
		db: db,
	}
}

// Create inserts a favorite link
func (r *MySQLFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	querier := database.GetTx(ctx, r.db)

	userBytes, err := favorite.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user UUID")
	}
	designBytes, err := favorite.DesignID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal design UUID")
	}

	query := `INSERT INTO favorites (user_id, design_id, created_at) VALUES (?, ?, NOW())`

	_, err = querier.ExecContext(ctx, query, userBytes, designBytes)
	if err != nil {
		if isMySQLFavoriteUniqueViolation(err) {
			return domain.ErrFavoriteAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create favorite")
	}
	return nil
}

// Delete removes a favorite link. Returns true when a row was removed.
func (r *MySQLFavoriteRepository) Delete(ctx context.Context, userID, designID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	userBytes, err := userID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal user UUID")
	}
	designBytes, err := designID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal design UUID")
	}

	result, err := querier.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND design_id = ?`, userBytes, designBytes)
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
func (r *MySQLFavoriteRepository) Exists(ctx context.Context, userID, designID uuid.UUID) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	userBytes, err := userID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal user UUID")
	}
	designBytes, err := designID.MarshalBinary()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to marshal design UUID")
	}

	var exists bool
	err = querier.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = ? AND design_id = ?)`,
		userBytes, designBytes,
	).Scan(&exists)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check favorite existence")
	}
	return exists, nil
}

// ListDesignsByUser retrieves the designs a user favorited, most recently
// favorited first.
func (r *MySQLFavoriteRepository) ListDesignsByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.Design, error) {
	querier := database.GetTx(ctx, r.db)

	userBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user UUID")
	}

	query := `SELECT ` + prefixColumns("d", designColumns) + `
			  FROM favorites f JOIN designs d ON d.id = f.design_id
			  WHERE f.user_id = ? ORDER BY f.created_at DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, userBytes, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list favorite designs")
	}
	defer rows.Close()

	return scanMySQLDesigns(rows)
}

// CountByUser returns the number of designs a user favorited
func (r *MySQLFavoriteRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := database.GetTx(ctx, r.db)

	userBytes, err := userID.MarshalBinary()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to marshal user UUID")
	}

	var count int
	err = querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = ?`, userBytes).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count favorites")
	}
	return count, nil
}

// DeleteByDesign removes all favorite links for a design.
func (r *MySQLFavoriteRepository) DeleteByDesign(ctx context.Context, designID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	designBytes, err := designID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal design UUID")
	}

	_, err = querier.ExecContext(ctx, `DELETE FROM favorites WHERE design_id = ?`, designBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete favorites by design")
	}
	return nil
}

// DeleteOrphans removes favorite links whose design or user no longer exists.
func (r *MySQLFavoriteRepository) DeleteOrphans(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE f FROM favorites f
			  LEFT JOIN designs d ON d.id = f.design_id
			  LEFT JOIN users u ON u.id = f.user_id
			  WHERE d.id IS NULL OR u.id IS NULL`

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

// isMySQLFavoriteUniqueViolation checks for a duplicate favorite insert
func isMySQLFavoriteUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
