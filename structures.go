package jsondec

import (
	"sort"
	"strconv"
)

// List requires an array and decodes every element in input order,
// short-circuiting on the first failing element with ".[i]" prefixed.
// Elements past the failure are never evaluated.
func List[T any](d Decoder[T]) Decoder[[]T] {
	return func(v any) ([]T, *Error) {
		arr, ok := asArray(v)
		if !ok {
			return nil, badType("a list", v)
		}
		out := make([]T, 0, len(arr))
		for i := range arr {
			ev, err := d(arr[i])
			if err != nil {
				return nil, err.prefix(".[" + strconv.Itoa(i) + "]")
			}
			out = append(out, ev)
		}
		return out, nil
	}
}

// Array is List under the array error wording. Both produce a slice with
// input order preserved; they exist as a matched pair for call sites that
// distinguish list-like from array-like payloads.
func Array[T any](d Decoder[T]) Decoder[[]T] {
	return func(v any) ([]T, *Error) {
		arr, ok := asArray(v)
		if !ok {
			return nil, badType("an array", v)
		}
		out := make([]T, 0, len(arr))
		for i := range arr {
			ev, err := d(arr[i])
			if err != nil {
				return nil, err.prefix(".[" + strconv.Itoa(i) + "]")
			}
			out = append(out, ev)
		}
		return out, nil
	}
}

// Entry is one decoded object property.
type Entry[T any] struct {
	Key   string
	Value T
}

// KeyValuePairs requires an object and decodes every property value,
// short-circuiting on the first failure with ".key" prefixed. The generic
// value tree does not retain source key order, so entries are emitted in
// sorted key order for deterministic results.
func KeyValuePairs[T any](d Decoder[T]) Decoder[[]Entry[T]] {
	return func(v any) ([]Entry[T], *Error) {
		obj, ok := asObject(v)
		if !ok {
			return nil, badType("an object", v)
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Entry[T], 0, len(keys))
		for _, k := range keys {
			ev, err := d(obj[k])
			if err != nil {
				return nil, err.prefix("." + k)
			}
			out = append(out, Entry[T]{Key: k, Value: ev})
		}
		return out, nil
	}
}

// Dict decodes an object into a map, validating every property value with d.
func Dict[T any](d Decoder[T]) Decoder[map[string]T] {
	return Map(func(entries []Entry[T]) map[string]T {
		out := make(map[string]T, len(entries))
		for _, e := range entries {
			out[e.Key] = e.Value
		}
		return out
	}, KeyValuePairs(d))
}

// Keys decodes an object's property names in sorted order.
func Keys() Decoder[[]string] {
	return func(v any) ([]string, *Error) {
		obj, ok := asObject(v)
		if !ok {
			return nil, badType("an object", v)
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys, nil
	}
}

// Values decodes an object's property values, emitted in sorted key order to
// match Keys and KeyValuePairs.
func Values[T any](d Decoder[T]) Decoder[[]T] {
	return Map(func(entries []Entry[T]) []T {
		out := make([]T, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Value)
		}
		return out
	}, KeyValuePairs(d))
}

// Combine runs every decoder against the same input value in order and
// collects the results; the first failure wins and later decoders are not
// attempted.
func Combine[T any](decoders []Decoder[T]) Decoder[[]T] {
	return func(v any) ([]T, *Error) {
		out := make([]T, 0, len(decoders))
		for _, d := range decoders {
			ev, err := d(v)
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil
	}
}

// OneOf tries each decoder against the unmodified input in order; the first
// success wins. When all fail, every alternative's fully rendered message is
// aggregated into a single bad_oneof failure, order preserved.
func OneOf[T any](decoders []Decoder[T]) Decoder[T] {
	return func(v any) (T, *Error) {
		msgs := make([]string, 0, len(decoders))
		for _, d := range decoders {
			out, err := d(v)
			if err == nil {
				return out, nil
			}
			msgs = append(msgs, Render(err))
		}
		var zero T
		return zero, badOneOf(msgs)
	}
}

// Tuple2 decodes positions 0 and 1 of an array sequentially; the first
// positional failure wins and later positions are not attempted.
func Tuple2[A, B, T any](f func(A, B) T, da Decoder[A], db Decoder[B]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := Index(0, da)(v)
		if err != nil {
			return zero, err
		}
		b, err := Index(1, db)(v)
		if err != nil {
			return zero, err
		}
		return f(a, b), nil
	}
}

// Tuple3 decodes positions 0..2 of an array sequentially, fail-fast.
func Tuple3[A, B, C, T any](f func(A, B, C) T, da Decoder[A], db Decoder[B], dc Decoder[C]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := Index(0, da)(v)
		if err != nil {
			return zero, err
		}
		b, err := Index(1, db)(v)
		if err != nil {
			return zero, err
		}
		c, err := Index(2, dc)(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c), nil
	}
}

// Tuple4 decodes positions 0..3 of an array sequentially, fail-fast.
func Tuple4[A, B, C, D, T any](f func(A, B, C, D) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := Index(0, da)(v)
		if err != nil {
			return zero, err
		}
		b, err := Index(1, db)(v)
		if err != nil {
			return zero, err
		}
		c, err := Index(2, dc)(v)
		if err != nil {
			return zero, err
		}
		d, err := Index(3, dd)(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d), nil
	}
}

// Tuple5 decodes positions 0..4 of an array sequentially, fail-fast.
func Tuple5[A, B, C, D, E, T any](f func(A, B, C, D, E) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := Index(0, da)(v)
		if err != nil {
			return zero, err
		}
		b, err := Index(1, db)(v)
		if err != nil {
			return zero, err
		}
		c, err := Index(2, dc)(v)
		if err != nil {
			return zero, err
		}
		d, err := Index(3, dd)(v)
		if err != nil {
			return zero, err
		}
		e, err := Index(4, de)(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e), nil
	}
}

// Tuple6 decodes positions 0..5 of an array sequentially, fail-fast.
func Tuple6[A, B, C, D, E, F, T any](f func(A, B, C, D, E, F) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := Index(0, da)(v)
		if err != nil {
			return zero, err
		}
		b, err := Index(1, db)(v)
		if err != nil {
			return zero, err
		}
		c, err := Index(2, dc)(v)
		if err != nil {
			return zero, err
		}
		d, err := Index(3, dd)(v)
		if err != nil {
			return zero, err
		}
		e, err := Index(4, de)(v)
		if err != nil {
			return zero, err
		}
		g, err := Index(5, df)(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, g), nil
	}
}

// Tuple7 decodes positions 0..6 of an array sequentially, fail-fast.
func Tuple7[A, B, C, D, E, F, G, T any](f func(A, B, C, D, E, F, G) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := Index(0, da)(v)
		if err != nil {
			return zero, err
		}
		b, err := Index(1, db)(v)
		if err != nil {
			return zero, err
		}
		c, err := Index(2, dc)(v)
		if err != nil {
			return zero, err
		}
		d, err := Index(3, dd)(v)
		if err != nil {
			return zero, err
		}
		e, err := Index(4, de)(v)
		if err != nil {
			return zero, err
		}
		g, err := Index(5, df)(v)
		if err != nil {
			return zero, err
		}
		h, err := Index(6, dg)(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, g, h), nil
	}
}

// Tuple8 decodes positions 0..7 of an array sequentially, fail-fast.
func Tuple8[A, B, C, D, E, F, G, H, T any](f func(A, B, C, D, E, F, G, H) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G], dh Decoder[H]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := Index(0, da)(v)
		if err != nil {
			return zero, err
		}
		b, err := Index(1, db)(v)
		if err != nil {
			return zero, err
		}
		c, err := Index(2, dc)(v)
		if err != nil {
			return zero, err
		}
		d, err := Index(3, dd)(v)
		if err != nil {
			return zero, err
		}
		e, err := Index(4, de)(v)
		if err != nil {
			return zero, err
		}
		g, err := Index(5, df)(v)
		if err != nil {
			return zero, err
		}
		h, err := Index(6, dg)(v)
		if err != nil {
			return zero, err
		}
		i, err := Index(7, dh)(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, g, h, i), nil
	}
}
