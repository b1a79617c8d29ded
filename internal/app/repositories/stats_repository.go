package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/contractors/internal/app/models"
	"github.com/yigit/contractors/internal/pkg/logger"
)

// StatsRepository computes aggregate figures over the contractors table.
type StatsRepository struct {
	db Database
	sb squirrel.StatementBuilderType
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(database Database) *StatsRepository {
	return &StatsRepository{
		db: database,
		sb: newStatementBuilder(),
	}
}

// Stats returns head counts overall, currently active, per department and per band.
// Grouped rows come back in database order and exclude NULL groups.
func (r *StatsRepository) Stats(ctx context.Context) (*models.ContractorStats, error) {
	stats := &models.ContractorStats{}

	total, err := r.count(ctx, nil)
	if err != nil {
		return nil, err
	}
	stats.Total = total

	active, err := r.count(ctx, squirrel.Eq{"status": models.StatusActive})
	if err != nil {
		return nil, err
	}
	stats.Active = active

	byDepartmentSQL, byDepartmentArgs, err := r.groupCount("department").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build department stats query: %w", err)
	}
	stats.ByDepartment, err = collect(ctx, r.db, byDepartmentSQL, byDepartmentArgs, func(d *models.DepartmentCount) []any {
		return []any{&d.Department, &d.Count}
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying department stats")
		return nil, fmt.Errorf("error querying department stats: %w", err)
	}

	byBandSQL, byBandArgs, err := r.groupCount("band").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build band stats query: %w", err)
	}
	stats.ByBand, err = collect(ctx, r.db, byBandSQL, byBandArgs, func(b *models.BandCount) []any {
		return []any{&b.Band, &b.Count}
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying band stats")
		return nil, fmt.Errorf("error querying band stats: %w", err)
	}

	return stats, nil
}

// count returns COUNT(*) of contractors, optionally restricted by where.
func (r *StatsRepository) count(ctx context.Context, where squirrel.Sqlizer) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From(contractorsTable)
	if where != nil {
		builder = builder.Where(where)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Msg("Error executing count query")
		return 0, fmt.Errorf("error counting contractors: %w", err)
	}
	return n, nil
}

func (r *StatsRepository) groupCount(column string) squirrel.SelectBuilder {
	return r.sb.Select(column, "COUNT(*) AS count").
		From(contractorsTable).
		Where(squirrel.NotEq{column: nil}).
		GroupBy(column)
}
