package queries

import (
	"fmt"
	"strings"
)

// whereBuilder accumulates predicate/argument pairs in the order they are
// added and renders them as one numbered WHERE clause. Predicates use ?
// markers, rewritten to $n placeholders as their arguments are bound, so
// filters can be composed conditionally without always-true placeholder
// tricks.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (b *whereBuilder) add(clause string, args ...any) {
	for _, arg := range args {
		b.args = append(b.args, arg)
		clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", len(b.args)), 1)
	}
	b.clauses = append(b.clauses, clause)
}

// bind appends a bare argument outside any predicate (LIMIT, OFFSET) and
// returns its placeholder.
func (b *whereBuilder) bind(arg any) string {
	b.args = append(b.args, arg)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.clauses, "\n\t\tAND ")
}

// Season the dashboard treats as current; joined stat lines come from here.
const currentSeason = 2025

// maxBudget is the effectively-unbounded upper budget sentinel.
const maxBudget = 99999999

const (
	defaultLimit = 50
	maxLimit     = 200
)

// clampLimit folds absent or out-of-domain limits onto a safe default
// instead of failing the request.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
