package normalizer

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
)

// Path addresses a value inside a decoded JSON object, one key per level.
type Path []string

func P(keys ...string) Path {
	return Path(keys)
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Lookup walks body along p. Missing keys and non-object intermediates
// report ok=false; a JSON null reports ok=false too.
func (p Path) Lookup(body map[string]any) (any, bool) {
	if len(p) == 0 || body == nil {
		return nil, false
	}
	cur := body
	for i, key := range p {
		v, ok := cur[key]
		if !ok || v == nil {
			return nil, false
		}
		if i == len(p)-1 {
			return v, true
		}
		next, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// DecodeBody parses a gateway body. Anything that is not exactly one JSON
// object decodes to an empty map; numbers are kept as json.Number so large ids
// survive.
func DecodeBody(raw []byte) map[string]any {
	out := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var parsed map[string]any
	if err := dec.Decode(&parsed); err != nil || parsed == nil {
		return out
	}
	if _, err := dec.Token(); err != io.EOF {
		return out
	}
	return parsed
}

// FirstString returns the first probe that resolves to a non-empty string.
// Numeric ids are rendered as text.
func FirstString(body map[string]any, paths []Path) string {
	for _, p := range paths {
		v, ok := p.Lookup(body)
		if !ok {
			continue
		}
		if s := asString(v); s != "" {
			return s
		}
	}
	return ""
}

// FirstInt returns the first probe that resolves to an integral number.
func FirstInt(body map[string]any, paths []Path) (int64, bool) {
	for _, p := range paths {
		v, ok := p.Lookup(body)
		if !ok {
			continue
		}
		if n, ok := asInt(v); ok {
			return n, true
		}
	}
	return 0, false
}

// SuccessFlag reads the top-level boolean `success` field.
func SuccessFlag(body map[string]any) (value bool, present bool) {
	v, ok := body["success"]
	if !ok {
		return false, false
	}
	b, isBool := v.(bool)
	return isBool && b, true
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	return ""
}

func asInt(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
		f, err := t.Float64()
		if err != nil || f != math.Trunc(f) {
			return 0, false
		}
		return int64(f), true
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int64(t), true
	case int:
		return int64(t), true
	case int64:
		return t, true
	}
	return 0, false
}
