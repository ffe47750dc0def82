package shape

import (
	"math"
	"regexp"
	"slices"
	"strings"
	"time"
)

// String accepts JSON strings.
func String() Shape[string] {
	return Func[string](func(raw any) (string, error) {
		s, ok := raw.(string)
		if !ok {
			return "", fail(CodeInvalidType, "expected string, received %s", describe(raw))
		}
		return s, nil
	})
}

// Number accepts any JSON number.
func Number() Shape[float64] {
	return Func[float64](func(raw any) (float64, error) {
		f, ok := toFloat(raw)
		if !ok {
			return 0, fail(CodeInvalidType, "expected number, received %s", describe(raw))
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fail(CodeInvalidType, "expected finite number")
		}
		return f, nil
	})
}

// Int accepts JSON numbers without a fractional part.
func Int() Shape[int] {
	return Func[int](func(raw any) (int, error) {
		f, err := Number().Validate(raw)
		if err != nil {
			return 0, err
		}
		if f != math.Trunc(f) {
			return 0, fail(CodeInvalidType, "expected integer, received %v", f)
		}
		if !fitsInt64(f) {
			return 0, fail(CodeTooBig, "integer %v out of range", f)
		}
		return int(f), nil
	})
}

// fitsInt64 reports whether f converts to int64 without wrapping. The bounds
// are exact powers of two; math.MaxInt64 rounds up to 2^63 as a float64.
func fitsInt64(f float64) bool {
	return f >= -(1<<63) && f < 1<<63
}

// Bool accepts JSON booleans.
func Bool() Shape[bool] {
	return Func[bool](func(raw any) (bool, error) {
		b, ok := raw.(bool)
		if !ok {
			return false, fail(CodeInvalidType, "expected boolean, received %s", describe(raw))
		}
		return b, nil
	})
}

// Any accepts every value as-is, including null.
func Any() Shape[any] {
	return Func[any](func(raw any) (any, error) { return raw, nil })
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Date coerces RFC3339-like strings and epoch milliseconds into time.Time.
func Date() Shape[time.Time] {
	return Func[time.Time](func(raw any) (time.Time, error) {
		switch v := raw.(type) {
		case time.Time:
			return v, nil
		case string:
			s := strings.TrimSpace(v)
			for _, layout := range dateLayouts {
				if t, err := time.Parse(layout, s); err == nil {
					return t, nil
				}
			}
			return time.Time{}, fail(CodeInvalidFormat, "invalid date %q", v)
		}
		if ms, ok := toFloat(raw); ok && !math.IsNaN(ms) && !math.IsInf(ms, 0) {
			if !fitsInt64(ms) {
				return time.Time{}, fail(CodeTooBig, "epoch milliseconds %v out of range", ms)
			}
			return time.UnixMilli(int64(ms)).UTC(), nil
		}
		return time.Time{}, fail(CodeInvalidType, "expected date, received %s", describe(raw))
	})
}

// Enum accepts one of the listed string values.
func Enum[T ~string](values ...T) Shape[T] {
	allowed := slices.Clone(values)
	return Func[T](func(raw any) (T, error) {
		s, ok := raw.(string)
		if !ok {
			return "", fail(CodeInvalidType, "expected string, received %s", describe(raw))
		}
		if !slices.Contains(allowed, T(s)) {
			return "", fail(CodeInvalidEnum, "invalid enum value %q", s)
		}
		return T(s), nil
	})
}

var symbolPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]*$`)

// Symbol accepts upper-case identifiers such as "IRON_ORE" or "X1-DF55-20250Z".
// It is used for open-ended vocabularies the server may extend at any time.
func Symbol[T ~string]() Shape[T] {
	return Func[T](func(raw any) (T, error) {
		s, ok := raw.(string)
		if !ok {
			return "", fail(CodeInvalidType, "expected string, received %s", describe(raw))
		}
		if !symbolPattern.MatchString(s) {
			return "", fail(CodeInvalidFormat, "invalid symbol %q", s)
		}
		return T(s), nil
	})
}

type float64er interface {
	Float64() (float64, error)
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float64er:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
