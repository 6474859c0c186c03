package jsondec

import "strconv"

// UnionCase is one named alternative of a Union decoder. Build instances with
// Case0..Case4.
type UnionCase[T any] struct {
	name  string
	arity int
	apply func(args []any) (T, *Error)
}

// Case0 matches a zero-argument case encoded as the bare string name.
func Case0[T any](name string, out T) UnionCase[T] {
	return UnionCase[T]{
		name:  name,
		arity: 0,
		apply: func([]any) (T, *Error) { return out, nil },
	}
}

// Case1 matches ["name", a] with one decoded payload slot.
func Case1[T, A any](name string, da Decoder[A], f func(A) T) UnionCase[T] {
	return UnionCase[T]{
		name:  name,
		arity: 1,
		apply: func(args []any) (T, *Error) {
			var zero T
			a, err := da(args[0])
			if err != nil {
				return zero, err.prefix(".[1]")
			}
			return f(a), nil
		},
	}
}

// Case2 matches ["name", a, b] with two decoded payload slots, fail-fast.
func Case2[T, A, B any](name string, da Decoder[A], db Decoder[B], f func(A, B) T) UnionCase[T] {
	return UnionCase[T]{
		name:  name,
		arity: 2,
		apply: func(args []any) (T, *Error) {
			var zero T
			a, err := da(args[0])
			if err != nil {
				return zero, err.prefix(".[1]")
			}
			b, err := db(args[1])
			if err != nil {
				return zero, err.prefix(".[2]")
			}
			return f(a, b), nil
		},
	}
}

// Case3 matches ["name", a, b, c] with three decoded payload slots, fail-fast.
func Case3[T, A, B, C any](name string, da Decoder[A], db Decoder[B], dc Decoder[C], f func(A, B, C) T) UnionCase[T] {
	return UnionCase[T]{
		name:  name,
		arity: 3,
		apply: func(args []any) (T, *Error) {
			var zero T
			a, err := da(args[0])
			if err != nil {
				return zero, err.prefix(".[1]")
			}
			b, err := db(args[1])
			if err != nil {
				return zero, err.prefix(".[2]")
			}
			c, err := dc(args[2])
			if err != nil {
				return zero, err.prefix(".[3]")
			}
			return f(a, b, c), nil
		},
	}
}

// Case4 matches ["name", a, b, c, d] with four decoded payload slots, fail-fast.
func Case4[T, A, B, C, D any](name string, da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], f func(A, B, C, D) T) UnionCase[T] {
	return UnionCase[T]{
		name:  name,
		arity: 4,
		apply: func(args []any) (T, *Error) {
			var zero T
			a, err := da(args[0])
			if err != nil {
				return zero, err.prefix(".[1]")
			}
			b, err := db(args[1])
			if err != nil {
				return zero, err.prefix(".[2]")
			}
			c, err := dc(args[2])
			if err != nil {
				return zero, err.prefix(".[3]")
			}
			d, err := dd(args[3])
			if err != nil {
				return zero, err.prefix(".[4]")
			}
			return f(a, b, c, d), nil
		},
	}
}

// Union decodes a tagged union from either a bare string (zero-argument case
// matched by name) or an array ["CaseName", args...] with positional payload
// slots; the array form always carries at least one argument. An unknown case
// name is a hard failure, never a silent default.
func Union[T any](cases ...UnionCase[T]) Decoder[T] {
	byName := make(map[string]UnionCase[T], len(cases))
	for _, c := range cases {
		byName[c.name] = c
	}
	return func(v any) (T, *Error) {
		var zero T
		if s, ok := asString(v); ok {
			c, found := byName[s]
			if !found {
				return zero, failMessage("unknown union case `" + s + "`")
			}
			if c.arity != 0 {
				return zero, failMessage("union case `" + s + "` expects " + strconv.Itoa(c.arity) + " argument(s)")
			}
			return c.apply(nil)
		}
		if arr, ok := asArray(v); ok {
			if len(arr) == 0 {
				return zero, tooSmallArray("an array starting with a union case name", v)
			}
			tag, ok := asString(arr[0])
			if !ok {
				e := badPrimitive("a string", arr[0])
				return zero, e.prefix(".[0]")
			}
			c, found := byName[tag]
			if !found {
				return zero, failMessage("unknown union case `" + tag + "`")
			}
			if c.arity == 0 {
				return zero, failMessage("union case `" + tag + "` takes no arguments and is encoded as a bare string")
			}
			if len(arr)-1 != c.arity {
				return zero, failMessage("union case `" + tag + "` expects " + strconv.Itoa(c.arity) +
					" argument(s) but got " + strconv.Itoa(len(arr)-1))
			}
			return c.apply(arr[1:])
		}
		return zero, badPrimitive("a string or an array", v)
	}
}
