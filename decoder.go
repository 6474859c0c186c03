package jsondec

import "errors"

// Decoder turns one JSON value into a T or a decode failure. Decoders are
// stateless pure functions; a decoder built once may be shared across
// goroutines as long as the value tree itself is not mutated.
type Decoder[T any] func(v any) (T, *Error)

// Run applies a decoder to an already-parsed JSON value. On failure the
// returned error carries only the rendered human-readable message; callers
// never see the raw tagged error.
func Run[T any](d Decoder[T], v any) (T, error) {
	out, derr := d(v)
	if derr != nil {
		var zero T
		return zero, errors.New(Render(derr))
	}
	return out, nil
}

// Succeed ignores its input and always produces out. Useful for defaulting
// inside OneOf and for the terminal step of AndThen chains.
func Succeed[T any](out T) Decoder[T] {
	return func(any) (T, *Error) { return out, nil }
}

// Fail ignores its input and always fails with the given message.
func Fail[T any](msg string) Decoder[T] {
	return func(any) (T, *Error) {
		var zero T
		return zero, failMessage(msg)
	}
}

// Null succeeds with out when the input is JSON null and fails otherwise.
func Null[T any](out T) Decoder[T] {
	return func(v any) (T, *Error) {
		if isNull(v) {
			return out, nil
		}
		var zero T
		return zero, badPrimitive("null", v)
	}
}

// Value captures the raw JSON value unchanged. It never fails.
func Value() Decoder[any] {
	return func(v any) (any, *Error) { return v, nil }
}

// AndThen runs d and, on success, asks f for a follow-up decoder which is
// applied to the original input value. This is the dependent-decoding hook:
// decode a tag field first, then pick a variant decoder based on it.
func AndThen[A, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return func(v any) (B, *Error) {
		a, err := d(v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)(v)
	}
}

// Map transforms a decoder's result.
func Map[A, T any](f func(A) T, d Decoder[A]) Decoder[T] {
	return func(v any) (T, *Error) {
		a, err := d(v)
		if err != nil {
			var zero T
			return zero, err
		}
		return f(a), nil
	}
}

// Map2 applies both decoders to the same input value and combines the results.
// Failures are reported in declared decoder order: the first decoder's failure
// wins even when later ones would also fail.
func Map2[A, B, T any](f func(A, B) T, da Decoder[A], db Decoder[B]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		return f(a, b), nil
	}
}

// Map3 combines three independent decoders over the same input.
func Map3[A, B, C, T any](f func(A, B, C) T, da Decoder[A], db Decoder[B], dc Decoder[C]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c), nil
	}
}

// Map4 combines four independent decoders over the same input.
func Map4[A, B, C, D, T any](f func(A, B, C, D) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		d, err := dd(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d), nil
	}
}

// Map5 combines five independent decoders over the same input.
func Map5[A, B, C, D, E, T any](f func(A, B, C, D, E) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		d, err := dd(v)
		if err != nil {
			return zero, err
		}
		e, err := de(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e), nil
	}
}

// Map6 combines six independent decoders over the same input.
func Map6[A, B, C, D, E, F, T any](f func(A, B, C, D, E, F) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		d, err := dd(v)
		if err != nil {
			return zero, err
		}
		e, err := de(v)
		if err != nil {
			return zero, err
		}
		g, err := df(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, g), nil
	}
}

// Map7 combines seven independent decoders over the same input.
func Map7[A, B, C, D, E, F, G, T any](f func(A, B, C, D, E, F, G) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		d, err := dd(v)
		if err != nil {
			return zero, err
		}
		e, err := de(v)
		if err != nil {
			return zero, err
		}
		g, err := df(v)
		if err != nil {
			return zero, err
		}
		h, err := dg(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, g, h), nil
	}
}

// Map8 combines eight independent decoders over the same input.
func Map8[A, B, C, D, E, F, G, H, T any](f func(A, B, C, D, E, F, G, H) T, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G], dh Decoder[H]) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		a, err := da(v)
		if err != nil {
			return zero, err
		}
		b, err := db(v)
		if err != nil {
			return zero, err
		}
		c, err := dc(v)
		if err != nil {
			return zero, err
		}
		d, err := dd(v)
		if err != nil {
			return zero, err
		}
		e, err := de(v)
		if err != nil {
			return zero, err
		}
		g, err := df(v)
		if err != nil {
			return zero, err
		}
		h, err := dg(v)
		if err != nil {
			return zero, err
		}
		i, err := dh(v)
		if err != nil {
			return zero, err
		}
		return f(a, b, c, d, e, g, h, i), nil
	}
}
