package repositories

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/yigit/contractors/internal/app/models"
)

func TestContractorFilterPredicate(t *testing.T) {
	tests := []struct {
		name     string
		filter   ContractorFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no filters matches everything",
			filter:   ContractorFilter{},
			wantSQL:  "(1=1)",
			wantArgs: []any{},
		},
		{
			name:     "keyword searches three columns",
			filter:   ContractorFilter{Keyword: "Zhang"},
			wantSQL:  "((name LIKE ? OR position LIKE ? OR department LIKE ?))",
			wantArgs: []any{"%Zhang%", "%Zhang%", "%Zhang%"},
		},
		{
			name:     "case insensitive keyword",
			filter:   ContractorFilter{Keyword: "zhang", CaseInsensitive: true},
			wantSQL:  "((name ILIKE ? OR position ILIKE ? OR department ILIKE ?))",
			wantArgs: []any{"%zhang%", "%zhang%", "%zhang%"},
		},
		{
			name:     "exact department and status",
			filter:   ContractorFilter{Department: "研发部", Status: "在职"},
			wantSQL:  "(department = ? AND status = ?)",
			wantArgs: []any{"研发部", "在职"},
		},
		{
			name:     "all filters",
			filter:   ContractorFilter{Keyword: "QA", Department: "测试部", Status: "休假"},
			wantSQL:  "((name LIKE ? OR position LIKE ? OR department LIKE ?) AND department = ? AND status = ?)",
			wantArgs: []any{"%QA%", "%QA%", "%QA%", "测试部", "休假"},
		},
		{
			name:     "keyword is bound, never interpolated",
			filter:   ContractorFilter{Keyword: "'; DROP TABLE contractors; --"},
			wantSQL:  "((name LIKE ? OR position LIKE ? OR department LIKE ?))",
			wantArgs: []any{"%'; DROP TABLE contractors; --%", "%'; DROP TABLE contractors; --%", "%'; DROP TABLE contractors; --%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.filter.Predicate().ToSql()
			if err != nil {
				t.Fatalf("ToSql() failed: %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func summaryRow(id int64, name string) []any {
	row := make([]any, len(summaryColumns))
	row[0] = id
	row[1] = name
	row[3] = models.NewDate(1990, time.April, 1)
	row[4] = int32(34)
	row[13] = "研发部"
	return row
}

func TestListRunsCountThenPage(t *testing.T) {
	fake := &fakeDB{results: []fakeResult{
		{rows: [][]any{{int64(3)}}},
		{rows: [][]any{summaryRow(9, "Zhang San"), summaryRow(8, "Zhang Wei")}},
	}}
	repo := NewContractorRepository(fake)

	list, total, err := repo.List(context.Background(), ContractorFilter{Keyword: "Zhang"}, Page{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}

	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].ID != 9 || *list[0].Name != "Zhang San" || list[0].BirthDate.String() != "1990-04-01" || *list[0].Age != 34 {
		t.Errorf("first row scanned as %+v", list[0])
	}
	if list[0].Gender != nil {
		t.Errorf("NULL gender scanned as %v", *list[0].Gender)
	}

	if len(fake.queries) != 2 {
		t.Fatalf("issued %d queries, want 2", len(fake.queries))
	}
	count, page := fake.queries[0], fake.queries[1]
	if !strings.HasPrefix(count.sql, "SELECT COUNT(*) FROM contractors WHERE") {
		t.Errorf("count sql = %q", count.sql)
	}
	if !strings.Contains(count.sql, "name LIKE $1 OR position LIKE $2 OR department LIKE $3") {
		t.Errorf("count sql lacks dollar placeholders: %q", count.sql)
	}
	if strings.Contains(page.sql, "created_at,") || strings.Contains(page.sql, ", created_at FROM") {
		t.Errorf("list projection selects created_at: %q", page.sql)
	}
	if !strings.HasSuffix(page.sql, "ORDER BY created_at DESC, id DESC LIMIT 2 OFFSET 0") {
		t.Errorf("page sql = %q", page.sql)
	}
	if !reflect.DeepEqual(count.args, page.args) || len(page.args) != 3 {
		t.Errorf("count args %v and page args %v should match", count.args, page.args)
	}
}

func TestListEmptyPageIsNotNil(t *testing.T) {
	fake := &fakeDB{results: []fakeResult{{rows: [][]any{{int64(4)}}}, {}}}
	repo := NewContractorRepository(fake)

	list, total, err := repo.List(context.Background(), ContractorFilter{}, Page{Limit: 0, Offset: 10})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if list == nil || len(list) != 0 || total != 4 {
		t.Errorf("List() = %v, %d; want empty non-nil list and total 4", list, total)
	}
	if !strings.Contains(fake.queries[1].sql, "LIMIT 0 OFFSET 10") {
		t.Errorf("page sql = %q", fake.queries[1].sql)
	}
}

func TestListClosesRows(t *testing.T) {
	fake := &fakeDB{results: []fakeResult{
		{rows: [][]any{{int64(1)}}},
		{rows: [][]any{summaryRow(1, "A")}},
	}}
	if _, _, err := NewContractorRepository(fake).List(context.Background(), ContractorFilter{}, Page{Limit: 10}); err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(fake.opened) != 1 || !fake.opened[0].closed {
		t.Errorf("page rows were not closed")
	}
}

func TestListScanFailureClosesRows(t *testing.T) {
	bad := summaryRow(1, "A")
	bad[0] = "not an id"
	fake := &fakeDB{results: []fakeResult{
		{rows: [][]any{{int64(1)}}},
		{rows: [][]any{bad}},
	}}

	_, _, err := NewContractorRepository(fake).List(context.Background(), ContractorFilter{}, Page{Limit: 10})
	if err == nil {
		t.Fatal("List() succeeded with an unscannable row")
	}
	if !strings.Contains(err.Error(), "cannot scan") {
		t.Errorf("error %q should carry the scan failure", err)
	}
	if !fake.opened[0].closed {
		t.Error("rows stay open after a scan failure")
	}
}

func TestListCountFailure(t *testing.T) {
	boom := errors.New("connection refused")
	fake := &fakeDB{results: []fakeResult{{err: boom}}}

	_, _, err := NewContractorRepository(fake).List(context.Background(), ContractorFilter{}, Page{Limit: 10})
	if !errors.Is(err, boom) {
		t.Fatalf("List() error = %v, want wrapped %v", err, boom)
	}
	if len(fake.queries) != 1 {
		t.Errorf("issued %d queries after count failure, want 1", len(fake.queries))
	}
}

func TestGetDetailNotFound(t *testing.T) {
	fake := &fakeDB{}

	_, err := NewContractorRepository(fake).GetDetail(context.Background(), 999999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetDetail() error = %v, want ErrNotFound", err)
	}
	if len(fake.queries) != 1 {
		t.Errorf("issued %d queries for a missing contractor, want 1", len(fake.queries))
	}
	if fake.connCalls != 1 {
		t.Errorf("WithConn called %d times, want 1", fake.connCalls)
	}
}

func TestGetDetailLoadsEveryChildTable(t *testing.T) {
	const id = int64(7)
	contractorRow := append(summaryRow(id, "Li Si"), models.NewDate(2024, time.January, 2))
	start := models.NewDate(2020, time.March, 1)

	fake := &fakeDB{results: []fakeResult{
		{rows: [][]any{contractorRow}},
		{rows: [][]any{{int64(1), id, "Acme", "Engineer", start, nil, nil}}},
		{rows: [][]any{{int64(2), id, "Billing", "Lead", start, start, "rewrite"}}},
		{rows: [][]any{{int64(3), id, "Go", "expert"}, {int64(4), id, "SQL", nil}}},
		{},
		{rows: [][]any{{int64(5), id, start, "Wang", "A", nil}}},
		{rows: [][]any{{int64(6), id, "fixed-term", start, nil, "active"}}},
	}}

	detail, err := NewContractorRepository(fake).GetDetail(context.Background(), id)
	if err != nil {
		t.Fatalf("GetDetail() failed: %v", err)
	}

	if detail.Contractor.ID != id || detail.Contractor.CreatedAt.String() != "2024-01-02" {
		t.Errorf("basic info = %+v", detail.Contractor)
	}
	if len(detail.WorkExperience) != 1 || len(detail.ProjectExperience) != 1 || len(detail.Skills) != 2 ||
		len(detail.TrainingRecords) != 0 || len(detail.PerformanceReviews) != 1 || len(detail.Contracts) != 1 {
		t.Errorf("unexpected child counts: %+v", detail)
	}
	if detail.TrainingRecords == nil {
		t.Error("empty child table should be an empty slice")
	}
	for _, s := range detail.Skills {
		if s.ContractorID != id {
			t.Errorf("skill %d has contractor_id %d", s.ID, s.ContractorID)
		}
	}

	wantTables := []string{"contractors", "work_experience", "project_experience", "skills", "training_records", "performance_reviews", "contracts"}
	wantOrder := []string{"", "ORDER BY start_date DESC", "ORDER BY start_date DESC", "", "ORDER BY training_date DESC", "ORDER BY review_date DESC", "ORDER BY start_date DESC"}
	if len(fake.queries) != len(wantTables) {
		t.Fatalf("issued %d queries, want %d", len(fake.queries), len(wantTables))
	}
	for i, q := range fake.queries {
		if !strings.Contains(q.sql, "FROM "+wantTables[i]+" WHERE") {
			t.Errorf("query %d = %q, want table %s", i, q.sql, wantTables[i])
		}
		if wantOrder[i] == "" && strings.Contains(q.sql, "ORDER BY") {
			t.Errorf("query %d = %q should be unordered", i, q.sql)
		}
		if wantOrder[i] != "" && !strings.HasSuffix(q.sql, wantOrder[i]) {
			t.Errorf("query %d = %q, want suffix %q", i, q.sql, wantOrder[i])
		}
		if len(q.args) != 1 || q.args[0] != id {
			t.Errorf("query %d args = %v, want [%d]", i, q.args, id)
		}
	}
	if fake.connCalls != 1 {
		t.Errorf("WithConn called %d times, want 1", fake.connCalls)
	}
}

func TestGetDetailChildFailureAbortsRequest(t *testing.T) {
	boom := errors.New("relation \"skills\" does not exist")
	fake := &fakeDB{results: []fakeResult{
		{rows: [][]any{append(summaryRow(1, "A"), nil)}},
		{}, {},
		{err: boom},
	}}

	detail, err := NewContractorRepository(fake).GetDetail(context.Background(), 1)
	if !errors.Is(err, boom) || detail != nil {
		t.Fatalf("GetDetail() = %v, %v; want nil and wrapped %v", detail, err, boom)
	}
	if len(fake.queries) != 4 {
		t.Errorf("issued %d queries, want 4", len(fake.queries))
	}
}

func TestDepartments(t *testing.T) {
	fake := &fakeDB{results: []fakeResult{{rows: [][]any{{"研发部"}, {"测试部"}}}}}

	departments, err := NewContractorRepository(fake).Departments(context.Background())
	if err != nil {
		t.Fatalf("Departments() failed: %v", err)
	}
	if !reflect.DeepEqual(departments, []string{"研发部", "测试部"}) {
		t.Errorf("Departments() = %v", departments)
	}

	sql := fake.queries[0].sql
	if sql != "SELECT DISTINCT department FROM contractors WHERE department IS NOT NULL" {
		t.Errorf("sql = %q", sql)
	}
}
