package auto

import (
	"reflect"

	jsondec "github.com/fumidai/jsondec"
)

// Options bundle synthesis configuration. The zero value means identity field
// names, no overrides, and the process-wide decoder cache.
type Options struct {
	// CamelCase lower-camel-cases the first letter of struct field names when
	// computing JSON keys. A json struct tag always wins over this.
	CamelCase bool
	// Extra maps fully-qualified type names to user-supplied decoders,
	// consulted before every built-in rule.
	Extra *Extra
	// Cache receives synthesized decoders; nil selects the shared default.
	Cache *Cache
}

// Option mutates Options in the functional style.
type Option func(*Options)

// WithCamelCase enables camelCase JSON key derivation.
func WithCamelCase() Option {
	return func(o *Options) { o.CamelCase = true }
}

// WithExtra supplies user decoder overrides for one synthesis pass.
func WithExtra(e *Extra) Option {
	return func(o *Options) { o.Extra = e }
}

// WithCache routes synthesized decoders into a caller-owned cache, keeping
// lifecycle explicit for tests.
func WithCache(c *Cache) Option {
	return func(o *Options) { o.Cache = c }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if o.Cache == nil {
		o.Cache = defaultCache
	}
	return o
}

// Extra holds user-supplied decoders keyed by fully-qualified type name. It is
// constructed once by the caller and read immutably during synthesis.
type Extra struct {
	m map[string]anyDecoder
}

// NewExtra returns an empty override set.
func NewExtra() *Extra { return &Extra{m: map[string]anyDecoder{}} }

// AddExtra registers d as the decoder for T, replacing any previous entry.
func AddExtra[T any](e *Extra, d jsondec.Decoder[T]) *Extra {
	t := reflect.TypeOf((*T)(nil)).Elem()
	e.m[typeName(t)] = wrap(d)
	return e
}

func (e *Extra) lookup(name string) (anyDecoder, bool) {
	d, ok := e.m[name]
	return d, ok
}
