package database

import (
	"fmt"
	"strings"
)

// FilterQuery collects optional WHERE conditions together with their values.
// A condition is written with a single "?" marker; positional placeholders
// are only assigned when the query is rendered, from the final order of the
// list, so a condition and its value can never drift apart.
type FilterQuery struct {
	table   string
	clauses []string
	args    []any
}

func NewFilterQuery(table string) *FilterQuery {
	return &FilterQuery{table: table}
}

// Where appends clause (e.g. "pressure >= ?") bound to value.
func (q *FilterQuery) Where(clause string, value any) *FilterQuery {
	q.clauses = append(q.clauses, clause)
	q.args = append(q.args, value)
	return q
}

// WhereIf appends the clause only when value is non-nil.
func (q *FilterQuery) WhereIf(clause string, value *float64) *FilterQuery {
	if value == nil {
		return q
	}
	return q.Where(clause, *value)
}

// Build renders the statement ordered by timestamp descending. The limit is
// always the last parameter.
func (q *FilterQuery) Build(limit int) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(q.table)

	for i, clause := range q.clauses {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(strings.Replace(clause, "?", fmt.Sprintf("$%d", i+1), 1))
	}

	args := make([]any, 0, len(q.args)+1)
	args = append(args, q.args...)
	args = append(args, limit)

	fmt.Fprintf(&sb, " ORDER BY timestamp DESC LIMIT $%d", len(args))
	return sb.String(), args
}
