package jsondec

// Getters is the access context handed to an Object build callback. It
// latches the first failure: once an accessor fails, later accessors return
// zero values without decoding, so the callback needs no manual
// short-circuit plumbing.
type Getters struct {
	value any
	err   *Error
}

// Err reports the first failure recorded so far, nil when none.
func (g *Getters) Err() *Error { return g.err }

// Object builds a decoder from a callback that pulls fields out of the input
// object through the getter functions (Req, Opt and friends). The callback
// runs once per decode; its return value is the decoded result unless a
// getter failed.
func Object[T any](build func(g *Getters) T) Decoder[T] {
	return func(v any) (T, *Error) {
		var zero T
		if _, ok := asObject(v); !ok {
			return zero, badType("an object", v)
		}
		g := &Getters{value: v}
		out := build(g)
		if g.err != nil {
			return zero, g.err
		}
		return out, nil
	}
}

// Req decodes a required field. A missing key or a failing value decode
// aborts the enclosing Object.
func Req[T any](g *Getters, name string, d Decoder[T]) T {
	var zero T
	if g.err != nil {
		return zero
	}
	out, err := Field(name, d)(g.value)
	if err != nil {
		g.err = err
		return zero
	}
	return out
}

// ReqAt decodes a required nested path.
func ReqAt[T any](g *Getters, segments []string, d Decoder[T]) T {
	var zero T
	if g.err != nil {
		return zero
	}
	out, err := At(segments, d)(g.value)
	if err != nil {
		g.err = err
		return zero
	}
	return out
}

// ReqRaw decodes the whole input object with d.
func ReqRaw[T any](g *Getters, d Decoder[T]) T {
	var zero T
	if g.err != nil {
		return zero
	}
	out, err := d(g.value)
	if err != nil {
		g.err = err
		return zero
	}
	return out
}

// Opt decodes an optional field: a missing key or a null value yields nil,
// while a present non-null value that fails the decoder still aborts. "This
// key doesn't exist" is swallowed; "this key exists and is garbage" is not.
func Opt[T any](g *Getters, name string, d Decoder[T]) *T {
	if g.err != nil {
		return nil
	}
	out, err := Optional(name, d)(g.value)
	if err != nil {
		g.err = err
		return nil
	}
	return out
}

// OptAt decodes an optional nested path; an unreachable path yields nil.
func OptAt[T any](g *Getters, segments []string, d Decoder[T]) *T {
	if g.err != nil {
		return nil
	}
	out, err := OptionalAt(segments, d)(g.value)
	if err != nil {
		g.err = err
		return nil
	}
	return out
}

// OptRaw applies d to the whole input object, treating absence-shaped
// failures (bad_field, bad_path, or any mismatch against a null value) as
// nil. Structural failures such as fail, bad_oneof or too_small_array abort.
func OptRaw[T any](g *Getters, d Decoder[T]) *T {
	if g.err != nil {
		return nil
	}
	out, err := d(g.value)
	if err == nil {
		return &out
	}
	switch err.Reason.Code {
	case CodeBadField, CodeBadPath:
		return nil
	case CodeBadType, CodeBadPrimitive, CodeBadPrimitiveExtra:
		if isNull(err.Reason.Value) {
			return nil
		}
	}
	g.err = err
	return nil
}
