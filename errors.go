package jsondec

import (
	"errors"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/fumidai/jsondec/i18n"
)

// Reason codes (exported consts for IDE completion and type safety by convention)
const (
	CodeBadPrimitive      = "bad_primitive"
	CodeBadPrimitiveExtra = "bad_primitive_extra"
	CodeBadType           = "bad_type"
	CodeBadField          = "bad_field"
	CodeBadPath           = "bad_path"
	CodeTooSmallArray     = "too_small_array"
	CodeBadOneOf          = "bad_oneof"
	CodeFail              = "fail"
)

// Reason describes why a decode failed. It is fixed at creation; combinators
// only ever touch the enclosing Error's Path.
type Reason struct {
	Code     string
	Expected string   // Expected kind or shape, e.g. "a string".
	Value    any      // Offending value (the root value for bad_path).
	Extra    string   // Range detail for bad_primitive_extra.
	Segment  string   // Unreachable path segment for bad_path.
	Messages []string // Fully rendered alternatives for bad_oneof.
	Message  string   // Free text for fail.
}

// Error is a single decode failure: where it happened and why. Path grows
// right-to-left as the failure bubbles up through enclosing combinators.
type Error struct {
	Path   string
	Reason Reason
}

func (e *Error) Error() string { return Render(e) }

// AsError extracts a decode *Error from an error using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// prefix prepends a path segment to the error and returns it for chaining.
// Each enclosing combinator contributes exactly one segment.
func (e *Error) prefix(seg string) *Error {
	e.Path = seg + e.Path
	return e
}

// ---- constructors (Path always starts empty at the point of origin) ----

func badPrimitive(expected string, v any) *Error {
	return &Error{Reason: Reason{Code: CodeBadPrimitive, Expected: expected, Value: v}}
}

func badPrimitiveExtra(expected string, v any, extra string) *Error {
	return &Error{Reason: Reason{Code: CodeBadPrimitiveExtra, Expected: expected, Value: v, Extra: extra}}
}

func badType(expected string, v any) *Error {
	return &Error{Reason: Reason{Code: CodeBadType, Expected: expected, Value: v}}
}

func badField(expected string, v any) *Error {
	return &Error{Reason: Reason{Code: CodeBadField, Expected: expected, Value: v}}
}

func badPath(expected string, root any, segment string) *Error {
	return &Error{Reason: Reason{Code: CodeBadPath, Expected: expected, Value: root, Segment: segment}}
}

func tooSmallArray(expected string, v any) *Error {
	return &Error{Reason: Reason{Code: CodeTooSmallArray, Expected: expected, Value: v}}
}

func badOneOf(messages []string) *Error {
	return &Error{Reason: Reason{Code: CodeBadOneOf, Messages: messages}}
}

func failMessage(msg string) *Error {
	return &Error{Reason: Reason{Code: CodeFail, Message: msg}}
}

// ---- rendering ----

const unrenderableValue = "<value not representable>"

// stringify renders the offending value for error messages. Rendering must not
// fail even for values a marshaler rejects (hand-built cycles, channels); those
// fall back to a fixed placeholder.
func stringify(v any, indent bool) string {
	var (
		b   []byte
		err error
	)
	if indent {
		b, err = gojson.MarshalIndent(v, "", "    ")
	} else {
		b, err = gojson.Marshal(v)
	}
	if err != nil {
		return unrenderableValue
	}
	return string(b)
}

// Render formats a decode error into the human-readable form returned by Run.
// The reason phrase is looked up through the i18n catalog; bad_oneof omits the
// "Error at:" header because every alternative carries its own.
func Render(e *Error) string {
	data := map[string]string{}
	switch e.Reason.Code {
	case CodeBadPrimitive:
		data["expected"] = e.Reason.Expected
		data["got"] = stringify(e.Reason.Value, false)
	case CodeBadPrimitiveExtra:
		data["expected"] = e.Reason.Expected
		data["got"] = stringify(e.Reason.Value, false)
		data["reason"] = e.Reason.Extra
	case CodeBadType, CodeBadField, CodeTooSmallArray:
		data["expected"] = e.Reason.Expected
		data["got"] = stringify(e.Reason.Value, true)
	case CodeBadPath:
		data["expected"] = e.Reason.Expected
		data["got"] = stringify(e.Reason.Value, true)
		data["node"] = e.Reason.Segment
	case CodeBadOneOf:
		data["errors"] = strings.Join(e.Reason.Messages, "\n\n")
	case CodeFail:
		data["message"] = e.Reason.Message
	}
	msg := i18n.T(e.Reason.Code, data)
	if e.Reason.Code == CodeBadOneOf {
		return msg
	}
	return "Error at: $" + e.Path + "\n" + msg
}
