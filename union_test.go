package jsondec_test

import (
	"strings"
	"testing"

	jsondec "github.com/fumidai/jsondec"
)

type shape interface{ isShape() }

type circle struct{ radius float64 }
type rect struct{ w, h float64 }
type point struct{}

func (circle) isShape() {}
func (rect) isShape()   {}
func (point) isShape()  {}

func shapeDecoder() jsondec.Decoder[shape] {
	return jsondec.Union(
		jsondec.Case0[shape]("Point", point{}),
		jsondec.Case1("Circle", jsondec.Float64(), func(r float64) shape { return circle{radius: r} }),
		jsondec.Case2("Rect", jsondec.Float64(), jsondec.Float64(), func(w, h float64) shape { return rect{w: w, h: h} }),
	)
}

func TestUnion_BareStringMatchesZeroArgCase(t *testing.T) {
	v, err := jsondec.Run(shapeDecoder(), "Point")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(point); !ok {
		t.Fatalf("expected point, got %T", v)
	}
}

func TestUnion_ArrayFormDecodesArguments(t *testing.T) {
	v, err := jsondec.Run(shapeDecoder(), []any{"Circle", 2.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := v.(circle)
	if !ok || c.radius != 2.5 {
		t.Fatalf("expected circle{2.5}, got %#v", v)
	}

	v, err = jsondec.Run(shapeDecoder(), []any{"Rect", 1.0, 2.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r, ok := v.(rect); !ok || r.w != 1 || r.h != 2 {
		t.Fatalf("expected rect{1,2}, got %#v", v)
	}
}

func TestUnion_UnknownCaseIsHardFailure(t *testing.T) {
	_, err := jsondec.Run(shapeDecoder(), "Triangle")
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(err.Error(), "unknown union case `Triangle`") {
		t.Fatalf("expected unknown case named, got %q", err.Error())
	}
}

func TestUnion_ZeroArgCaseRejectsArrayForm(t *testing.T) {
	_, err := jsondec.Run(shapeDecoder(), []any{"Point"})
	if err == nil {
		t.Fatalf("expected failure for array-encoded zero-argument case")
	}
	if !strings.Contains(err.Error(), "bare string") {
		t.Fatalf("expected the bare-string requirement named, got %q", err.Error())
	}
}

func TestUnion_ArityMismatchFails(t *testing.T) {
	if _, err := jsondec.Run(shapeDecoder(), []any{"Circle", 1.0, 2.0}); err == nil {
		t.Fatalf("expected failure for extra argument")
	}
	if _, err := jsondec.Run(shapeDecoder(), "Circle"); err == nil {
		t.Fatalf("expected failure for missing arguments")
	}
}

func TestUnion_ArgumentFailureCarriesPosition(t *testing.T) {
	_, err := jsondec.Run(shapeDecoder(), []any{"Rect", 1.0, "x"})
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(err.Error(), "$.[2]") {
		t.Fatalf("expected the failing slot position, got %q", err.Error())
	}
}

func TestUnion_RejectsOtherShapes(t *testing.T) {
	if _, err := jsondec.Run(shapeDecoder(), 12); err == nil {
		t.Fatalf("expected failure for a number")
	}
	if _, err := jsondec.Run(shapeDecoder(), []any{}); err == nil {
		t.Fatalf("expected failure for an empty array")
	}
	if _, err := jsondec.Run(shapeDecoder(), []any{1, 2}); err == nil {
		t.Fatalf("expected failure for a non-string tag")
	}
}
