// Package query builds parameterized WHERE clauses from an ordered
// predicate list. Every user-supplied value is carried as a bound
// argument; the rendered SQL text never contains caller input.
package query

import (
	"strconv"
	"strings"
)

type predicate struct {
	expr string
	args []any
}

type Builder struct {
	preds   []predicate
	orderBy string
	limit   int
}

func New() *Builder {
	return &Builder{}
}

// Where appends one predicate joined by AND. expr must use ? placeholders
// matching args.
func (b *Builder) Where(expr string, args ...any) *Builder {
	b.preds = append(b.preds, predicate{expr: expr, args: args})
	return b
}

// WhereEq appends an equality predicate on a single column.
func (b *Builder) WhereEq(column string, value any) *Builder {
	return b.Where(column+" = ?", value)
}

// WhereLike appends a substring match; wildcards wrap the trimmed value
// here, never arriving from the caller's SQL text.
func (b *Builder) WhereLike(column, value string) *Builder {
	return b.Where(column+" LIKE ?", likeArg(value))
}

// WhereAnyEq appends a parenthesized OR group of equality matches over
// several columns against the same value, so it composes with the
// surrounding AND chain.
func (b *Builder) WhereAnyEq(columns []string, value any) *Builder {
	exprs := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		exprs = append(exprs, col+" = ?")
		args = append(args, value)
	}
	return b.Where("("+strings.Join(exprs, " OR ")+")", args...)
}

// WhereAnyLike is the substring-match counterpart of WhereAnyEq.
func (b *Builder) WhereAnyLike(columns []string, value string) *Builder {
	exprs := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		exprs = append(exprs, col+" LIKE ?")
		args = append(args, likeArg(value))
	}
	return b.Where("("+strings.Join(exprs, " OR ")+")", args...)
}

func (b *Builder) OrderBy(clause string) *Builder {
	b.orderBy = clause
	return b
}

func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// HasPredicates reports whether any filter was applied.
func (b *Builder) HasPredicates() bool {
	return len(b.preds) > 0
}

// Clause renders the WHERE/ORDER BY/LIMIT tail. With no predicates the
// WHERE keyword is omitted entirely (all rows).
func (b *Builder) Clause() string {
	var sb strings.Builder
	if len(b.preds) > 0 {
		sb.WriteString(" WHERE ")
		for i, p := range b.preds {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			sb.WriteString(p.expr)
		}
	}
	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
	}
	if b.limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(b.limit))
	}
	return sb.String()
}

// Args returns bound arguments in predicate order.
func (b *Builder) Args() []any {
	out := []any{}
	for _, p := range b.preds {
		out = append(out, p.args...)
	}
	return out
}

func likeArg(value string) string {
	return "%" + strings.TrimSpace(value) + "%"
}
