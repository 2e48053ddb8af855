package value

import (
	"strconv"
	"strings"
)

// AsInt coerces a primitive value to int. Floats are truncated toward zero.
func AsInt(v Value) int {
	switch v := v.(type) {
	case ValueInt:
		return int(v)
	case ValueFloat:
		return int(v)
	case ValueBool:
		if v {
			return 1
		}
		return 0
	case ValueString:
		s := strings.TrimSpace(Unquote(string(v)))
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
	}
	return 0
}

// AsFloat coerces a primitive value to float64.
func AsFloat(v Value) float64 {
	switch v := v.(type) {
	case ValueInt:
		return float64(v)
	case ValueFloat:
		return float64(v)
	case ValueBool:
		if v {
			return 1
		}
		return 0
	case ValueString:
		if f, err := strconv.ParseFloat(strings.TrimSpace(Unquote(string(v))), 64); err == nil {
			return f
		}
	}
	return 0
}

// AsString coerces a value to its textual form.
func AsString(v Value) string {
	if v == nil {
		return NullValue.String()
	}
	return v.String()
}

// Unquote strips one pair of surrounding double quotes, resolving escapes
// when the literal is well formed.
func Unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}
	return s[1 : len(s)-1]
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
