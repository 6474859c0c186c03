// Package auto derives jsondec decoders for arbitrary Go types at runtime by
// walking their reflect descriptors. Synthesis happens once per type (see
// Cache); the resulting decoder is an ordinary jsondec.Decoder and carries no
// reflection cost beyond value construction.
package auto

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	jsondec "github.com/fumidai/jsondec"
)

// anyDecoder is the untyped decoder shape used internally; it is exactly a
// jsondec.Decoder[any], so the core combinators compose over it directly.
type anyDecoder = jsondec.Decoder[any]

func wrap[T any](d jsondec.Decoder[T]) anyDecoder {
	return func(v any) (any, *jsondec.Error) {
		out, err := d(v)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// typeName renders the fully-qualified name used to key extras, unions and
// the cache.
func typeName(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// For synthesizes a decoder for T. An unresolvable type is a configuration
// error, not a data error, so For panics at construction time; use ForType
// when the error should flow instead.
func For[T any](opts ...Option) jsondec.Decoder[T] {
	d, err := ForType[T](opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// ForType synthesizes a decoder for T, reporting an error when some reachable
// type has no decoding rule and no registered override.
func ForType[T any](opts ...Option) (jsondec.Decoder[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	s := &synthesizer{opts: buildOptions(opts), building: map[string]*anyDecoder{}}
	ad, err := s.decoderFor(t, false)
	if err != nil {
		return nil, err
	}
	return func(v any) (T, *jsondec.Error) {
		out, derr := ad(v)
		if derr != nil {
			var zero T
			return zero, derr
		}
		tv, _ := out.(T)
		return tv, nil
	}, nil
}

// DecodeString synthesizes a decoder for T and runs it over a string of JSON.
func DecodeString[T any](s string, opts ...Option) (T, error) {
	d, err := ForType[T](opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return jsondec.DecodeString(d, s)
}

// ---- synthesis ----

type synthesizer struct {
	opts Options
	// building tracks types whose decoders are under construction so
	// self-referential types resolve through a late-bound cell instead of
	// recursing forever.
	building map[string]*anyDecoder
}

func (s *synthesizer) cacheKey(name string) string {
	if s.opts.CamelCase {
		return name + "|camelCase"
	}
	return name
}

// decoderFor resolves a decoder for t. Dispatch order: user extras, registered
// unions, well-known leaf types, in-progress cells, the cache, and finally
// rule synthesis. In an optional context (inside a pointer) an unresolvable
// type degrades to a decoder that fails only when a non-null value actually
// arrives; otherwise synthesis fails loudly.
func (s *synthesizer) decoderFor(t reflect.Type, optional bool) (anyDecoder, error) {
	name := typeName(t)
	if s.opts.Extra != nil {
		if d, ok := s.opts.Extra.lookup(name); ok {
			return d, nil
		}
	}
	if d, ok := lookupUnion(name); ok {
		return d, nil
	}
	if d, ok := leafTypes[t]; ok {
		return d, nil
	}
	key := s.cacheKey(name)
	if cell, ok := s.building[key]; ok {
		return func(v any) (any, *jsondec.Error) { return (*cell)(v) }, nil
	}
	if d, ok := s.opts.Cache.lookup(key); ok {
		return d, nil
	}
	cell := new(anyDecoder)
	s.building[key] = cell
	d, err := s.synthesize(t)
	delete(s.building, key)
	if err != nil {
		if optional {
			return deferredFailure(name), nil
		}
		return nil, err
	}
	*cell = d
	s.opts.Cache.store(key, d)
	return d, nil
}

func (s *synthesizer) synthesize(t reflect.Type) (anyDecoder, error) {
	switch t.Kind() {
	case reflect.Slice:
		elem, err := s.decoderFor(t.Elem(), false)
		if err != nil {
			return nil, err
		}
		return sliceDecoder(t, elem), nil
	case reflect.Array:
		elem, err := s.decoderFor(t.Elem(), false)
		if err != nil {
			return nil, err
		}
		return fixedArrayDecoder(t, elem), nil
	case reflect.Pointer:
		inner, err := s.decoderFor(t.Elem(), true)
		if err != nil {
			return nil, err
		}
		return pointerDecoder(t, inner), nil
	case reflect.Map:
		if t.Elem() == reflect.TypeOf(struct{}{}) {
			key, err := s.decoderFor(t.Key(), false)
			if err != nil {
				return nil, err
			}
			return setDecoder(t, key), nil
		}
		if t.Key().Kind() == reflect.String {
			val, err := s.decoderFor(t.Elem(), false)
			if err != nil {
				return nil, err
			}
			return stringMapDecoder(t, val), nil
		}
		return nil, fmt.Errorf("auto: cannot derive a decoder for map type %s: keys must be strings", typeName(t))
	case reflect.Struct:
		return s.structDecoder(t)
	case reflect.Interface:
		if t.NumMethod() == 0 {
			// opaque passthrough: the raw value, unchanged
			return wrap(jsondec.Value()), nil
		}
	case reflect.Bool:
		return convertTo(t, wrap(jsondec.Bool())), nil
	case reflect.String:
		return convertTo(t, wrap(jsondec.String())), nil
	case reflect.Int, reflect.Int32:
		return convertTo(t, wrap(jsondec.Int())), nil
	case reflect.Int64:
		return convertTo(t, wrap(jsondec.Int64())), nil
	case reflect.Uint32:
		return convertTo(t, wrap(jsondec.UInt32())), nil
	case reflect.Uint, reflect.Uint64:
		return convertTo(t, wrap(jsondec.UInt64())), nil
	case reflect.Float32, reflect.Float64:
		return convertTo(t, wrap(jsondec.Float64())), nil
	}
	return nil, fmt.Errorf("auto: cannot derive a decoder for type %s: register an extra decoder or a union", typeName(t))
}

// leafTypes short-circuits dispatch for well-known concrete types before any
// kind-based rule sees them (time.Duration is a named int64, time.Time and
// uuid.UUID are structs).
var leafTypes = map[reflect.Type]anyDecoder{
	reflect.TypeOf(time.Time{}):       wrap(jsondec.Datetime()),
	reflect.TypeOf(time.Duration(0)):  wrap(jsondec.Timespan()),
	reflect.TypeOf(uuid.UUID{}):       wrap(jsondec.Guid()),
	reflect.TypeOf((*big.Int)(nil)):   wrap(jsondec.BigInt()),
	reflect.TypeOf((*big.Float)(nil)): wrap(jsondec.Decimal()),
	reflect.TypeOf(json.Number("")):   wrap(jsonNumber()),
}

// jsonNumber keeps the textual numeric form the drivers emit.
func jsonNumber() jsondec.Decoder[json.Number] {
	return func(v any) (json.Number, *jsondec.Error) {
		switch n := v.(type) {
		case json.Number:
			return n, nil
		case float64:
			return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), nil
		case int:
			return json.Number(strconv.Itoa(n)), nil
		case int64:
			return json.Number(strconv.FormatInt(n, 10)), nil
		}
		return "", &jsondec.Error{Reason: jsondec.Reason{
			Code: jsondec.CodeBadPrimitive, Expected: "a number", Value: v,
		}}
	}
}

// deferredFailure defers the "no decoder available" error until a non-null
// value is actually encountered.
func deferredFailure(name string) anyDecoder {
	return func(v any) (any, *jsondec.Error) {
		if v == nil {
			return nil, nil
		}
		return nil, &jsondec.Error{Reason: jsondec.Reason{
			Code:    jsondec.CodeFail,
			Message: "auto: no decoder available for type `" + name + "`",
		}}
	}
}

func convertTo(t reflect.Type, d anyDecoder) anyDecoder {
	return func(v any) (any, *jsondec.Error) {
		out, err := d(v)
		if err != nil {
			return nil, err
		}
		rv := reflect.ValueOf(out)
		if rv.Type() != t {
			rv = rv.Convert(t)
		}
		return rv.Interface(), nil
	}
}

// setValue assigns a decoded any into a reflect destination, leaving the zero
// value in place for nil (decoded JSON null).
func setValue(dst reflect.Value, x any) {
	if x == nil {
		return
	}
	dst.Set(reflect.ValueOf(x))
}

func sliceDecoder(t reflect.Type, elem anyDecoder) anyDecoder {
	ad := jsondec.Array(elem)
	return func(v any) (any, *jsondec.Error) {
		vals, err := ad(v)
		if err != nil {
			return nil, err
		}
		out := reflect.MakeSlice(t, len(vals), len(vals))
		for i := range vals {
			setValue(out.Index(i), vals[i])
		}
		return out.Interface(), nil
	}
}

// fixedArrayDecoder decodes [N]E positionally through Index, fail-fast, the
// same contract as the TupleN combinators.
func fixedArrayDecoder(t reflect.Type, elem anyDecoder) anyDecoder {
	n := t.Len()
	return func(v any) (any, *jsondec.Error) {
		out := reflect.New(t).Elem()
		for i := 0; i < n; i++ {
			ev, err := jsondec.Index(i, elem)(v)
			if err != nil {
				return nil, err
			}
			setValue(out.Index(i), ev)
		}
		return out.Interface(), nil
	}
}

func pointerDecoder(t reflect.Type, inner anyDecoder) anyDecoder {
	return func(v any) (any, *jsondec.Error) {
		if v == nil {
			return reflect.Zero(t).Interface(), nil
		}
		iv, err := inner(v)
		if err != nil {
			return nil, err
		}
		p := reflect.New(t.Elem())
		setValue(p.Elem(), iv)
		return p.Interface(), nil
	}
}

func setDecoder(t reflect.Type, key anyDecoder) anyDecoder {
	ad := jsondec.Array(key)
	empty := reflect.ValueOf(struct{}{})
	return func(v any) (any, *jsondec.Error) {
		vals, err := ad(v)
		if err != nil {
			return nil, err
		}
		out := reflect.MakeMapWithSize(t, len(vals))
		for _, kv := range vals {
			k := reflect.ValueOf(kv)
			if k.Type() != t.Key() {
				k = k.Convert(t.Key())
			}
			out.SetMapIndex(k, empty)
		}
		return out.Interface(), nil
	}
}

// stringMapDecoder accepts either an object (keys become map keys) or an
// array of 2-element [key, value] tuples, object form tried first.
func stringMapDecoder(t reflect.Type, val anyDecoder) anyDecoder {
	pairForm := jsondec.Map(func(entries []jsondec.Entry[any]) map[string]any {
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			out[e.Key] = e.Value
		}
		return out
	}, jsondec.Array(jsondec.Tuple2(func(k string, v any) jsondec.Entry[any] {
		return jsondec.Entry[any]{Key: k, Value: v}
	}, jsondec.String(), val)))
	combined := jsondec.OneOf([]jsondec.Decoder[map[string]any]{jsondec.Dict(val), pairForm})
	return func(v any) (any, *jsondec.Error) {
		m, err := combined(v)
		if err != nil {
			return nil, err
		}
		out := reflect.MakeMapWithSize(t, len(m))
		for k, mv := range m {
			kv := reflect.ValueOf(k)
			if kv.Type() != t.Key() {
				kv = kv.Convert(t.Key())
			}
			slot := reflect.New(t.Elem()).Elem()
			setValue(slot, mv)
			out.SetMapIndex(kv, slot)
		}
		return out.Interface(), nil
	}
}

type fieldPlan struct {
	index    []int
	key      string
	dec      anyDecoder
	optional bool // pointer-typed fields tolerate a missing key
}

func (s *synthesizer) structDecoder(t reflect.Type) (anyDecoder, error) {
	plans := make([]fieldPlan, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		key := s.resolveStructKey(sf)
		if key == "-" {
			continue
		}
		fd, err := s.decoderFor(sf.Type, false)
		if err != nil {
			return nil, err
		}
		plans = append(plans, fieldPlan{
			index:    sf.Index,
			key:      key,
			dec:      fd,
			optional: sf.Type.Kind() == reflect.Pointer,
		})
	}
	return func(v any) (any, *jsondec.Error) {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, &jsondec.Error{Reason: jsondec.Reason{
				Code: jsondec.CodeBadType, Expected: "an object", Value: v,
			}}
		}
		out := reflect.New(t).Elem()
		for _, fp := range plans {
			if _, exists := obj[fp.key]; !exists && fp.optional {
				continue // leave the nil pointer
			}
			fv, err := jsondec.Field(fp.key, fp.dec)(v)
			if err != nil {
				return nil, err
			}
			setValue(out.FieldByIndex(fp.index), fv)
		}
		return out.Interface(), nil
	}, nil
}

// resolveStructKey applies the repository-wide rule to resolve a struct
// field's JSON key. Priority: json tag name > camelCase mode > field name;
// "-" disables the field.
func (s *synthesizer) resolveStructKey(sf reflect.StructField) string {
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		name := jt
		if i := strings.IndexByte(jt, ','); i >= 0 {
			name = jt[:i]
		}
		if name != "" {
			return name
		}
	}
	if s.opts.CamelCase {
		r, size := utf8.DecodeRuneInString(sf.Name)
		return string(unicode.ToLower(r)) + sf.Name[size:]
	}
	return sf.Name
}
