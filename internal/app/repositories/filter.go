package repositories

import (
	"github.com/Masterminds/squirrel"
)

// keywordColumns are searched by ContractorFilter.Keyword.
var keywordColumns = []string{"name", "position", "department"}

// ContractorFilter narrows the contractor list. Zero-valued fields are ignored.
type ContractorFilter struct {
	// Keyword is matched as a substring of name, position or department.
	Keyword string
	// Department and Status require exact equality.
	Department string
	Status     string
	// CaseInsensitive uses ILIKE instead of LIKE for Keyword.
	CaseInsensitive bool
}

// Predicate combines every active filter with AND.
// With no active filter it renders as (1=1) and matches all rows.
func (f ContractorFilter) Predicate() squirrel.Sqlizer {
	where := squirrel.And{}

	if f.Keyword != "" {
		pattern := "%" + f.Keyword + "%"
		anyColumn := squirrel.Or{}
		for _, col := range keywordColumns {
			anyColumn = append(anyColumn, f.like(col, pattern))
		}
		where = append(where, anyColumn)
	}
	if f.Department != "" {
		where = append(where, squirrel.Eq{"department": f.Department})
	}
	if f.Status != "" {
		where = append(where, squirrel.Eq{"status": f.Status})
	}

	return where
}

func (f ContractorFilter) like(column, pattern string) squirrel.Sqlizer {
	if f.CaseInsensitive {
		return squirrel.ILike{column: pattern}
	}
	return squirrel.Like{column: pattern}
}

// Page is a resolved LIMIT/OFFSET pair.
type Page struct {
	Limit  uint64
	Offset uint64
}
