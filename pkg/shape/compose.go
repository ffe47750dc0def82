package shape

import "cmp"

// Array accepts a JSON array whose elements all satisfy elem.
func Array[T any](elem Shape[T]) Shape[[]T] {
	return Func[[]T](func(raw any) ([]T, error) {
		items, ok := raw.([]any)
		if !ok {
			return nil, fail(CodeInvalidType, "expected array, received %s", describe(raw))
		}
		out := make([]T, 0, len(items))
		var issues []Issue
		for i, item := range items {
			v, err := elem.Validate(item)
			if err != nil {
				issues = append(issues, rebase(issuesOf(err), indexToken(i))...)
				continue
			}
			out = append(out, v)
		}
		if len(issues) > 0 {
			return nil, &ValidationError{Issues: issues}
		}
		return out, nil
	})
}

// Optional turns a missing (or null) value into a nil pointer.
func Optional[T any](s Shape[T]) Shape[*T] {
	return Func[*T](func(raw any) (*T, error) {
		if raw == nil {
			return nil, nil
		}
		v, err := s.Validate(raw)
		if err != nil {
			return nil, err
		}
		return &v, nil
	})
}

// Default substitutes def when the value is missing.
func Default[T any](s Shape[T], def T) Shape[T] {
	return Func[T](func(raw any) (T, error) {
		if raw == nil {
			return def, nil
		}
		return s.Validate(raw)
	})
}

// Between constrains the decoded value to the closed range [lo, hi].
func Between[T cmp.Ordered](s Shape[T], lo, hi T) Shape[T] {
	return AtMost(AtLeast(s, lo), hi)
}

// AtLeast rejects values smaller than lo.
func AtLeast[T cmp.Ordered](s Shape[T], lo T) Shape[T] {
	return Func[T](func(raw any) (T, error) {
		v, err := s.Validate(raw)
		if err != nil {
			return v, err
		}
		if v < lo {
			var zero T
			return zero, fail(CodeTooSmall, "value %v is smaller than %v", v, lo)
		}
		return v, nil
	})
}

// AtMost rejects values greater than hi.
func AtMost[T cmp.Ordered](s Shape[T], hi T) Shape[T] {
	return Func[T](func(raw any) (T, error) {
		v, err := s.Validate(raw)
		if err != nil {
			return v, err
		}
		if v > hi {
			var zero T
			return zero, fail(CodeTooBig, "value %v is greater than %v", v, hi)
		}
		return v, nil
	})
}

// Union returns the result of the first alternative that accepts the value.
func Union[T any](alternatives ...Shape[T]) Shape[T] {
	return Func[T](func(raw any) (T, error) {
		var zero T
		for _, alt := range alternatives {
			if v, err := alt.Validate(raw); err == nil {
				return v, nil
			}
		}
		return zero, fail(CodeInvalidUnion, "value matched none of %d alternatives", len(alternatives))
	})
}

// Map converts the output of s with fn. Errors returned by fn are reported as
// custom issues at the current path.
func Map[A, B any](s Shape[A], fn func(A) (B, error)) Shape[B] {
	return Func[B](func(raw any) (B, error) {
		var zero B
		a, err := s.Validate(raw)
		if err != nil {
			return zero, err
		}
		b, err := fn(a)
		if err != nil {
			return zero, &ValidationError{Issues: []Issue{{Code: CodeCustom, Message: err.Error()}}}
		}
		return b, nil
	})
}
