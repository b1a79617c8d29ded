package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/contractors/internal/db"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Database is what repositories need from the connection pool.
type Database interface {
	db.Querier
	// WithConn runs fn on a single connection that is released afterwards.
	WithConn(ctx context.Context, fn func(q db.Querier) error) error
}

// Repositories groups every repository of the application.
type Repositories struct {
	ContractorRepository *ContractorRepository
	StatsRepository      *StatsRepository
}

// NewRepositories wires all repositories onto one database handle.
func NewRepositories(database Database) *Repositories {
	return &Repositories{
		ContractorRepository: NewContractorRepository(database),
		StatsRepository:      NewStatsRepository(database),
	}
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// collect scans every row of a query into a slice. The result is never nil.
func collect[T any](ctx context.Context, q db.Querier, query string, args []interface{}, targets func(*T) []any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		var item T
		err := row.Scan(targets(&item)...)
		return item, err
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
