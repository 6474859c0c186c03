package auto

import (
	"reflect"
	"sync"

	jsondec "github.com/fumidai/jsondec"
)

// Go has no sum types, so tagged unions reach the synthesizer through
// explicit registration: build the wire decoder with jsondec.Union and
// publish it here keyed by the union's Go type (usually an interface).

var (
	unionsMu sync.RWMutex
	unions   = map[string]anyDecoder{}
)

// RegisterUnion publishes d as the decoder for the union type T. Typically d
// is built with jsondec.Union and T is the interface all case values satisfy.
func RegisterUnion[T any](d jsondec.Decoder[T]) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	unionsMu.Lock()
	unions[typeName(t)] = wrap(d)
	unionsMu.Unlock()
}

func lookupUnion(name string) (anyDecoder, bool) {
	unionsMu.RLock()
	d, ok := unions[name]
	unionsMu.RUnlock()
	return d, ok
}
