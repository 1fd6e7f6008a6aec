package query

import (
	"fmt"
	"strings"

	"library-api/internal/shared/utils"
)

// Predicate is one WHERE fragment written with ? placeholders.
type Predicate struct {
	SQL  string
	Args []any
}

func Where(sql string, args ...any) Predicate {
	return Predicate{SQL: sql, Args: args}
}

func Eq(column string, value any) Predicate {
	return Where(column+" = ?", value)
}

func Gte(column string, value any) Predicate {
	return Where(column+" >= ?", value)
}

func Lte(column string, value any) Predicate {
	return Where(column+" <= ?", value)
}

// ILike matches term as a case-insensitive substring of column.
func ILike(column, term string) Predicate {
	return Where(column+" ILIKE ?", "%"+utils.EscapeLike(term)+"%")
}

// AnyOf ORs predicates together inside parentheses.
func AnyOf(preds ...Predicate) Predicate {
	clauses := make([]string, 0, len(preds))
	var args []any
	for _, p := range preds {
		clauses = append(clauses, p.SQL)
		args = append(args, p.Args...)
	}
	return Predicate{SQL: "(" + utils.JoinWithOr(clauses) + ")", Args: args}
}

// Builder composes a SELECT over one collection. Predicates are ANDed in the
// order they were added and ordering terms are applied in order.
type Builder struct {
	columns    []string
	from       string
	predicates []Predicate
	orders     []string
	page       *Pagination
}

func Select(columns ...string) *Builder {
	return &Builder{columns: columns}
}

func (b *Builder) From(from string) *Builder {
	b.from = from
	return b
}

func (b *Builder) Where(preds ...Predicate) *Builder {
	b.predicates = append(b.predicates, preds...)
	return b
}

func (b *Builder) OrderBy(column string, dir Direction) *Builder {
	if dir != Desc {
		dir = Asc
	}
	b.orders = append(b.orders, column+" "+string(dir))
	return b
}

func (b *Builder) Paginate(p Pagination) *Builder {
	p = p.Normalize()
	b.page = &p
	return b
}

// SQL renders the paginated select and its positional arguments.
func (b *Builder) SQL() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.from)

	where, args, next := b.where(1)
	sb.WriteString(where)

	if len(b.orders) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orders, ", "))
	}

	if b.page != nil {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", next, next+1))
		args = append(args, b.page.PerPage, b.page.Offset())
	}
	return sb.String(), args
}

// CountSQL renders a COUNT(*) over the same FROM and predicates.
func (b *Builder) CountSQL() (string, []any) {
	where, args, _ := b.where(1)
	return "SELECT COUNT(*) FROM " + b.from + where, args
}

func (b *Builder) where(start int) (string, []any, int) {
	if len(b.predicates) == 0 {
		return "", nil, start
	}

	clauses := make([]string, 0, len(b.predicates))
	var args []any
	next := start
	for _, p := range b.predicates {
		var clause string
		clause, next = utils.Rebind(p.SQL, next)
		clauses = append(clauses, clause)
		args = append(args, p.Args...)
	}
	return " WHERE " + utils.JoinWithAnd(clauses), args, next
}
