// Package yaml provides a jsondec.Driver that parses YAML documents into the
// same generic value tree the JSON driver produces, so every decoder works
// unchanged over YAML input.
package yaml

import (
	"fmt"

	goyaml "gopkg.in/yaml.v3"

	jsondec "github.com/fumidai/jsondec"
)

// Driver returns a jsondec.Driver backed by gopkg.in/yaml.v3.
func Driver() jsondec.Driver { return driver{} }

type driver struct{}

func (driver) Parse(data []byte) (any, error) {
	var v any
	if err := goyaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalize(v), nil
}

func (driver) Name() string { return "yaml" }

// normalize rewrites the yaml.v3 output into the tree shape the decoders
// expect: map[string]any objects and []any arrays. yaml.v3 already emits
// map[string]any for string-keyed mappings; non-string keys are stringified.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = normalize(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalize(t[i])
		}
		return out
	default:
		return v
	}
}
