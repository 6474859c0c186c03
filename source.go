package jsondec

import (
	"bytes"
	"errors"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"
)

// Driver converts raw input into the generic value tree via a pluggable SPI.
// The default implementation is based on goccy/go-json and may be swapped
// with SetDriver (for example with the YAML driver under source/yaml).
type Driver interface {
	Parse(data []byte) (any, error)
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = gojsonDriver{}
)

// SetDriver replaces the global parse driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the default goccy/go-json-backed driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = gojsonDriver{}
	driverMu.Unlock()
}

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// gojsonDriver parses JSON with goccy/go-json, keeping numbers as
// json.Number so integer range checks see the exact textual form.
type gojsonDriver struct{}

func (gojsonDriver) Parse(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	// a single document and nothing else
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected content after top-level value")
	}
	return v, nil
}

func (gojsonDriver) Name() string { return "go-json" }
