package utils

import (
	"strconv"
	"strings"
)

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins a slice of strings with OR operator
func JoinWithOr(clauses []string) string {
	return strings.Join(clauses, " OR ")
}

// EscapeLike escapes the LIKE/ILIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// Rebind replaces each ? placeholder with a positional $n parameter,
// numbering from start. It returns the rewritten SQL and the next free position.
func Rebind(sql string, start int) (string, int) {
	var b strings.Builder
	b.Grow(len(sql) + 8)

	pos := start
	for _, r := range sql {
		if r == '?' {
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(pos))
			pos++
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), pos
}
