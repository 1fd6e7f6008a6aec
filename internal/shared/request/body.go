package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var ErrNotObject = errors.New("request body must be a JSON object")

// Fields is a decoded JSON object keyed by canonical field name.
type Fields map[string]json.RawMessage

// ParseFields decodes a JSON object and renames legacy keys through aliases.
// When a canonical key and its alias are both present the canonical one wins.
func ParseFields(data []byte, aliases map[string]string) (Fields, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Fields{}, nil
	}
	if trimmed[0] != '{' {
		return nil, ErrNotObject
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, ErrNotObject
	}

	fields := make(Fields, len(raw))
	for key, value := range raw {
		if _, isAlias := aliases[key]; isAlias {
			continue
		}
		fields[key] = value
	}
	for alias, canonical := range aliases {
		value, ok := raw[alias]
		if !ok {
			continue
		}
		if _, taken := fields[canonical]; !taken {
			fields[canonical] = value
		}
	}
	return fields, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// String decodes a trimmed string. An empty string is treated as null.
func (f Fields) String(key string) Optional[string] {
	raw, ok := f[key]
	if !ok {
		return Optional[string]{}
	}
	if isNull(raw) {
		return Null[string]()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return Optional[string]{Set: true, Invalid: true}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return Null[string]()
	}
	return Some(s)
}

// Int64 accepts JSON integers, integral floats and numeric strings.
func (f Fields) Int64(key string) Optional[int64] {
	raw, ok := f[key]
	if !ok {
		return Optional[int64]{}
	}
	if isNull(raw) {
		return Null[int64]()
	}

	if n, ok := parseInt(raw); ok {
		return Some(n)
	}
	return Optional[int64]{Set: true, Invalid: true}
}

func (f Fields) Int(key string) Optional[int] {
	n := f.Int64(key)
	if n.Present() && (n.Val > math.MaxInt32 || n.Val < math.MinInt32) {
		return Optional[int]{Set: true, Invalid: true}
	}
	return Optional[int]{Set: n.Set, Null: n.Null, Invalid: n.Invalid, Val: int(n.Val)}
}

// Bool accepts true/false plus the 0/1 forms, quoted or not.
func (f Fields) Bool(key string) Optional[bool] {
	raw, ok := f[key]
	if !ok {
		return Optional[bool]{}
	}
	if isNull(raw) {
		return Null[bool]()
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return Some(b)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = json.RawMessage(strings.TrimSpace(s))
	}
	switch string(bytes.TrimSpace(raw)) {
	case "1", "true":
		return Some(true)
	case "0", "false":
		return Some(false)
	}
	return Optional[bool]{Set: true, Invalid: true}
}

func parseInt(raw json.RawMessage) (int64, bool) {
	text := string(bytes.TrimSpace(raw))

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		text = strings.TrimSpace(s)
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, true
	}
	fl, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(fl, 0) || fl != math.Trunc(fl) || math.Abs(fl) > 1<<53 {
		return 0, false
	}
	return int64(fl), true
}

// Bind reads the raw request body into dst. An empty body decodes as {}.
func Bind(c *gin.Context, dst json.Unmarshaler) error {
	data, err := c.GetRawData()
	if err != nil {
		return ErrNotObject
	}
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	return dst.UnmarshalJSON(data)
}
