package repositories

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/contractors/internal/db"
)

type recordedQuery struct {
	sql  string
	args []any
}

// fakeResult is consumed by the next Query or QueryRow call.
type fakeResult struct {
	rows [][]any
	err  error
}

type fakeDB struct {
	results   []fakeResult
	queries   []recordedQuery
	opened    []*fakeRows
	connCalls int
}

func (f *fakeDB) next(sql string, args []any) fakeResult {
	f.queries = append(f.queries, recordedQuery{sql: sql, args: args})
	if len(f.results) == 0 {
		return fakeResult{}
	}
	res := f.results[0]
	f.results = f.results[1:]
	return res
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	res := f.next(sql, args)
	if res.err != nil {
		return nil, res.err
	}
	rows := &fakeRows{rows: res.rows, pos: -1}
	f.opened = append(f.opened, rows)
	return rows, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	res := f.next(sql, args)
	return &fakeRow{rows: res.rows, err: res.err}
}

func (f *fakeDB) WithConn(_ context.Context, fn func(q db.Querier) error) error {
	f.connCalls++
	return fn(f)
}

type fakeRow struct {
	rows [][]any
	err  error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(r.rows) == 0 {
		return pgx.ErrNoRows
	}
	return scanInto(r.rows[0], dest)
}

type fakeRows struct {
	rows   [][]any
	pos    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(r.rows[r.pos], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos], nil
}

// scanInto copies values into scan targets, allocating pointer targets as pgx does.
func scanInto(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("fake row has %d values, scan wants %d", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		src := reflect.ValueOf(values[i])
		switch {
		case src.Type().AssignableTo(target.Type()):
			target.Set(src)
		case target.Kind() == reflect.Ptr && src.Type().AssignableTo(target.Type().Elem()):
			p := reflect.New(target.Type().Elem())
			p.Elem().Set(src)
			target.Set(p)
		default:
			return fmt.Errorf("column %d: cannot scan %T into %s", i, values[i], target.Type())
		}
	}
	return nil
}
