package request

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Query wraps url.Values with legacy parameter aliases. Canonical
// parameters take precedence over their aliases.
type Query struct {
	values  url.Values
	aliases map[string][]string
}

// NewQuery builds a Query from an alias→canonical map.
func NewQuery(values url.Values, aliases map[string]string) Query {
	byCanonical := make(map[string][]string, len(aliases))
	for alias, canonical := range aliases {
		byCanonical[canonical] = append(byCanonical[canonical], alias)
	}
	return Query{values: values, aliases: byCanonical}
}

// lookup treats values that are not valid UTF-8 or contain NUL as absent;
// PostgreSQL rejects both in text parameters.
func (q Query) lookup(key string) (string, bool) {
	for _, name := range append([]string{key}, q.aliases[key]...) {
		v, ok := q.values[name]
		if !ok || len(v) == 0 {
			continue
		}
		if !utf8.ValidString(v[0]) || strings.ContainsRune(v[0], 0) {
			return "", false
		}
		return strings.TrimSpace(v[0]), true
	}
	return "", false
}

func (q Query) Get(key string) string {
	v, _ := q.lookup(key)
	return v
}

// Int64 returns false when the parameter is missing or not an integer.
func (q Query) Int64(key string) (int64, bool) {
	v, ok := q.lookup(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Int is limited to the int4 range of the columns it filters on.
func (q Query) Int(key string) (int, bool) {
	n, ok := q.Int64(key)
	if !ok || n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}

// Bool understands true/false, 1/0, yes/no and on/off. Anything else counts as absent.
func (q Query) Bool(key string) (bool, bool) {
	v, ok := q.lookup(key)
	if !ok {
		return false, false
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}
