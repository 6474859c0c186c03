package jsondec

import (
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// String accepts a JSON string and nothing else.
func String() Decoder[string] {
	return func(v any) (string, *Error) {
		if s, ok := asString(v); ok {
			return s, nil
		}
		return "", badPrimitive("a string", v)
	}
}

// Bool accepts a JSON boolean and nothing else.
func Bool() Decoder[bool] {
	return func(v any) (bool, *Error) {
		if b, ok := asBool(v); ok {
			return b, nil
		}
		return false, badPrimitive("a boolean", v)
	}
}

// Float64 accepts any JSON number.
func Float64() Decoder[float64] {
	return func(v any) (float64, *Error) {
		s, ok := numberText(v)
		if !ok {
			return 0, badPrimitive("a float", v)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, badPrimitive("a float", v)
		}
		return f, nil
	}
}

// Int accepts a JSON number or numeric string. JSON numbers are IEEE-754
// doubles on the wire, so integrality and 32-bit range are re-validated here
// rather than trusted: fractional numbers fail with bad_primitive, integral
// numbers outside the int32 range fail with bad_primitive_extra.
func Int() Decoder[int] {
	return func(v any) (int, *Error) {
		if s, ok := asString(v); ok {
			i, err := strconv.ParseInt(s, 10, 32)
			if err != nil {
				return 0, badPrimitive("an int", v)
			}
			return int(i), nil
		}
		s, ok := numberText(v)
		if !ok {
			return 0, badPrimitive("an int", v)
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			if i < math.MinInt32 || i > math.MaxInt32 {
				return 0, badPrimitiveExtra("an int", v, "value was either too large or too small for an int")
			}
			return int(i), nil
		}
		// integer parse rejects float spellings such as "3.0" or "1e3";
		// those are still valid ints when integral and in range
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f != math.Trunc(f) {
			return 0, badPrimitive("an int", v)
		}
		if f < math.MinInt32 || f > math.MaxInt32 {
			return 0, badPrimitiveExtra("an int", v, "value was either too large or too small for an int")
		}
		return int(f), nil
	}
}

// Int64 accepts a JSON number or numeric string, widening integral doubles.
func Int64() Decoder[int64] {
	return func(v any) (int64, *Error) {
		if s, ok := asString(v); ok {
			i, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return 0, badPrimitive("an int64", v)
			}
			return i, nil
		}
		s, ok := numberText(v)
		if !ok {
			return 0, badPrimitive("an int64", v)
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f != math.Trunc(f) {
			return 0, badPrimitive("an int64", v)
		}
		return int64(f), nil
	}
}

// UInt32 accepts a JSON number or numeric string within [0, math.MaxUint32].
func UInt32() Decoder[uint32] {
	return func(v any) (uint32, *Error) {
		if s, ok := asString(v); ok {
			u, err := strconv.ParseUint(s, 10, 32)
			if err != nil {
				return 0, badPrimitive("an uint32", v)
			}
			return uint32(u), nil
		}
		s, ok := numberText(v)
		if !ok {
			return 0, badPrimitive("an uint32", v)
		}
		if u, err := strconv.ParseUint(s, 10, 32); err == nil {
			return uint32(u), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f != math.Trunc(f) {
			return 0, badPrimitive("an uint32", v)
		}
		if f < 0 || f > math.MaxUint32 {
			return 0, badPrimitiveExtra("an uint32", v, "value was either too large or too small for an uint32")
		}
		return uint32(f), nil
	}
}

// UInt64 accepts a JSON number or numeric string within [0, math.MaxUint64].
func UInt64() Decoder[uint64] {
	return func(v any) (uint64, *Error) {
		if s, ok := asString(v); ok {
			u, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return 0, badPrimitive("an uint64", v)
			}
			return u, nil
		}
		s, ok := numberText(v)
		if !ok {
			return 0, badPrimitive("an uint64", v)
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return u, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f != math.Trunc(f) {
			return 0, badPrimitive("an uint64", v)
		}
		if f < 0 || f >= 1<<64 {
			return 0, badPrimitiveExtra("an uint64", v, "value was either too large or too small for an uint64")
		}
		return uint64(f), nil
	}
}

// BigInt accepts a JSON number or numeric string of arbitrary magnitude.
func BigInt() Decoder[*big.Int] {
	return func(v any) (*big.Int, *Error) {
		s, ok := asString(v)
		if !ok {
			s, ok = numberText(v)
		}
		if !ok {
			return nil, badPrimitive("a bigint", v)
		}
		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, badPrimitive("a bigint", v)
		}
		return i, nil
	}
}

// Decimal accepts a JSON number or numeric string without binary rounding of
// the textual form beyond big.Float precision.
func Decimal() Decoder[*big.Float] {
	return func(v any) (*big.Float, *Error) {
		s, ok := asString(v)
		if !ok {
			s, ok = numberText(v)
		}
		if !ok {
			return nil, badPrimitive("a decimal", v)
		}
		f, _, err := big.ParseFloat(s, 10, 256, big.ToNearestEven)
		if err != nil {
			return nil, badPrimitive("a decimal", v)
		}
		return f, nil
	}
}

// Guid accepts a string holding an RFC 4122 UUID.
func Guid() Decoder[uuid.UUID] {
	return func(v any) (uuid.UUID, *Error) {
		s, ok := asString(v)
		if !ok {
			return uuid.UUID{}, badPrimitive("a guid", v)
		}
		u, err := uuid.Parse(s)
		if err != nil {
			return uuid.UUID{}, badPrimitive("a guid", v)
		}
		return u, nil
	}
}

// Datetime accepts an RFC3339 string and normalizes the result to UTC.
func Datetime() Decoder[time.Time] {
	return func(v any) (time.Time, *Error) {
		s, ok := asString(v)
		if !ok {
			return time.Time{}, badPrimitive("a datetime", v)
		}
		t, err := parseRFC3339(s)
		if err != nil {
			return time.Time{}, badPrimitive("a datetime", v)
		}
		return t.UTC(), nil
	}
}

// DatetimeOffset accepts an RFC3339 string and preserves its zone offset.
func DatetimeOffset() Decoder[time.Time] {
	return func(v any) (time.Time, *Error) {
		s, ok := asString(v)
		if !ok {
			return time.Time{}, badPrimitive("a datetimeoffset", v)
		}
		t, err := parseRFC3339(s)
		if err != nil {
			return time.Time{}, badPrimitive("a datetimeoffset", v)
		}
		return t, nil
	}
}

// Timespan accepts a Go duration string such as "1h30m".
func Timespan() Decoder[time.Duration] {
	return func(v any) (time.Duration, *Error) {
		s, ok := asString(v)
		if !ok {
			return 0, badPrimitive("a timespan", v)
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, badPrimitive("a timespan", v)
		}
		return d, nil
	}
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
