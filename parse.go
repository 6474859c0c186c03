package jsondec

import (
	"errors"
	"io"
)

// DecodeBytes parses raw input with the current driver and runs the decoder
// against the resulting value. A parse failure is reported as
// "Given an invalid JSON: <parser message>"; a decode failure as the fully
// rendered path-annotated message.
func DecodeBytes[T any](d Decoder[T], data []byte) (T, error) {
	v, err := getDriver().Parse(data)
	if err != nil {
		var zero T
		return zero, errors.New("Given an invalid JSON: " + err.Error())
	}
	return Run(d, v)
}

// DecodeString parses a string of JSON and runs the decoder against it.
func DecodeString[T any](d Decoder[T], s string) (T, error) {
	return DecodeBytes(d, []byte(s))
}

// DecodeReader drains r and decodes its contents.
func DecodeReader[T any](d Decoder[T], r io.Reader) (T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		var zero T
		return zero, errors.New("Given an invalid JSON: " + err.Error())
	}
	return DecodeBytes(d, data)
}
