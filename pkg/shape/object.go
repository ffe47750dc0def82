package shape

// Field binds one object key to a destination field of T.
type Field[T any] struct {
	key    string
	decode func(raw any, dst *T) error
}

// Prop declares that key is decoded with s and stored into T using set.
func Prop[T, V any](key string, s Shape[V], set func(*T, V)) Field[T] {
	return Field[T]{
		key: key,
		decode: func(raw any, dst *T) error {
			v, err := s.Validate(raw)
			if err != nil {
				return err
			}
			set(dst, v)
			return nil
		},
	}
}

// Object accepts a JSON object and assembles a T from the declared fields.
// Keys that are not declared are ignored. A missing key is passed to its field
// shape as nil, so Optional and Default fields accept it; any other field
// reports a required issue.
func Object[T any](fields ...Field[T]) Shape[T] {
	return Func[T](func(raw any) (T, error) {
		var out T
		obj, ok := raw.(map[string]any)
		if !ok {
			return out, fail(CodeInvalidType, "expected object, received %s", describe(raw))
		}

		var issues []Issue
		for _, f := range fields {
			v, present := obj[f.key]
			if err := f.decode(v, &out); err != nil {
				if !present {
					issues = append(issues, Issue{Path: "/" + escapeToken(f.key), Code: CodeRequired, Message: "required"})
					continue
				}
				issues = append(issues, rebase(issuesOf(err), f.key)...)
			}
		}
		if len(issues) > 0 {
			var zero T
			return zero, &ValidationError{Issues: issues}
		}
		return out, nil
	})
}
