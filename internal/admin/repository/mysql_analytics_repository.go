package repository

import (
	"context"
	"database/sql"

	"github.com/artfolio/gallery/internal/admin/domain"
	"github.com/artfolio/gallery/internal/database"
	apperrors "github.com/artfolio/gallery/internal/errors"
)

// MySQLAnalyticsRepository handles analytics aggregation for MySQL
type MySQLAnalyticsRepository struct {
	db *sql.DB
}

// NewMySQLAnalyticsRepository creates a new MySQLAnalyticsRepository
func NewMySQLAnalyticsRepository(db *sql.DB) *MySQLAnalyticsRepository {
	return &MySQLAnalyticsRepository{
		db: db,
	}
}

// DesignTotals aggregates the catalog counters in a single scan.
func (r *MySQLAnalyticsRepository) DesignTotals(ctx context.Context) (domain.DesignTotals, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT COUNT(*),
			  COALESCE(SUM(featured = TRUE), 0),
			  COALESCE(SUM(view_count), 0),
			  COALESCE(SUM(like_count), 0)
			  FROM designs`

	var totals domain.DesignTotals
	err := querier.QueryRowContext(ctx, query).Scan(
		&totals.Total, &totals.Featured, &totals.TotalViews, &totals.TotalLikes,
	)
	if err != nil {
		return domain.DesignTotals{}, apperrors.Wrap(err, "failed to aggregate design totals")
	}
	return totals, nil
}

// TopCategories returns the categories with the most designs.
func (r *MySQLAnalyticsRepository) TopCategories(ctx context.Context, limit int) ([]domain.CategoryCount, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT category, COUNT(*) AS design_count FROM designs
			  GROUP BY category ORDER BY design_count DESC, category ASC LIMIT ?`

	rows, err := querier.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query top categories")
	}
	defer rows.Close()

	var counts []domain.CategoryCount
	for rows.Next() {
		var cc domain.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category count")
		}
		counts = append(counts, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate category counts")
	}
	return counts, nil
}
