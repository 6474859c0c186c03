package jsondec

import (
	"strconv"
	"strings"
)

// Field requires an object with the named key and decodes its value,
// prepending ".name" to any failure from the inner decoder. A missing key
// fails with bad_field; an explicit null is handed to the inner decoder.
func Field[T any](name string, d Decoder[T]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		obj, ok := asObject(v)
		if !ok {
			return zero, badType("an object", v)
		}
		fv, exists := obj[name]
		if !exists {
			return zero, badField("an object with a field named `"+name+"`", v)
		}
		out, err := d(fv)
		if err != nil {
			return zero, err.prefix("." + name)
		}
		return out, nil
	}
}

// At walks the given segments left to right and decodes the value at the end.
// Hitting null or a missing key mid-walk fails with bad_path naming the
// offending segment; a non-object intermediate fails with bad_type. Failures
// of the final decoder are prefixed with the full traversed path.
func At[T any](segments []string, d Decoder[T]) Decoder[T] {
	if len(segments) == 0 {
		return d
	}
	full := "." + strings.Join(segments, ".")
	return func(v any) (T, *Error) {
		var zero T
		cur := v
		for i, seg := range segments {
			if isNull(cur) {
				return zero, badPath("an object with path `"+strings.Join(segments, ".")+"`", v, seg)
			}
			obj, ok := asObject(cur)
			if !ok {
				e := badType("an object", cur)
				if i > 0 {
					e.prefix("." + strings.Join(segments[:i], "."))
				}
				return zero, e
			}
			next, exists := obj[seg]
			if !exists {
				return zero, badPath("an object with path `"+strings.Join(segments, ".")+"`", v, seg)
			}
			cur = next
		}
		out, err := d(cur)
		if err != nil {
			return zero, err.prefix(full)
		}
		return out, nil
	}
}

// Index requires an array long enough to hold index i and decodes element i,
// prepending ".[i]" to inner failures.
func Index[T any](i int, d Decoder[T]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		arr, ok := asArray(v)
		if !ok {
			return zero, badType("an array", v)
		}
		if i < 0 || i >= len(arr) {
			return zero, tooSmallArray(
				"a longer array. Need index `"+strconv.Itoa(i)+"` but there are only `"+strconv.Itoa(len(arr))+"` entries", v)
		}
		out, err := d(arr[i])
		if err != nil {
			return zero, err.prefix(".[" + strconv.Itoa(i) + "]")
		}
		return out, nil
	}
}

// Option maps JSON null to nil without invoking the inner decoder; any other
// value must satisfy it.
func Option[T any](d Decoder[T]) Decoder[*T] {
	return func(v any) (*T, *Error) {
		if isNull(v) {
			return nil, nil
		}
		out, err := d(v)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

// Optional decodes a field that may be absent or null. Missing-or-null is
// success-with-nil; a present non-null value that fails the inner decoder is
// still a failure.
func Optional[T any](name string, d Decoder[T]) Decoder[*T] {
	return func(v any) (*T, *Error) {
		obj, ok := asObject(v)
		if !ok {
			return nil, badType("an object", v)
		}
		fv, exists := obj[name]
		if !exists {
			return nil, nil
		}
		out, err := Option(d)(fv)
		if err != nil {
			return nil, err.prefix("." + name)
		}
		return out, nil
	}
}

// OptionalAt composes At with Option: an unreachable path or a null leaf is
// success-with-nil, while intermediate values of the wrong shape and leaf
// values that fail the inner decoder remain failures.
func OptionalAt[T any](segments []string, d Decoder[T]) Decoder[*T] {
	if len(segments) == 0 {
		return Option(d)
	}
	return func(v any) (*T, *Error) {
		cur := v
		for i, seg := range segments {
			if isNull(cur) {
				return nil, nil
			}
			obj, ok := asObject(cur)
			if !ok {
				e := badType("an object", cur)
				if i > 0 {
					e.prefix("." + strings.Join(segments[:i], "."))
				}
				return nil, e
			}
			next, exists := obj[seg]
			if !exists {
				return nil, nil
			}
			cur = next
		}
		out, err := Option(d)(cur)
		if err != nil {
			return nil, err.prefix("." + strings.Join(segments, "."))
		}
		return out, nil
	}
}
