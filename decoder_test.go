package jsondec_test

import (
	"strings"
	"testing"

	jsondec "github.com/fumidai/jsondec"
)

func TestSucceedAndFail(t *testing.T) {
	if v, err := jsondec.Run(jsondec.Succeed(42), "anything"); err != nil || v != 42 {
		t.Fatalf("expected 42, got %v / %v", v, err)
	}
	_, err := jsondec.Run(jsondec.Fail[int]("boom"), 1)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected fail message, got %v", err)
	}
}

func TestNull_MatchesOnlyNull(t *testing.T) {
	if v, err := jsondec.Run(jsondec.Null(9), nil); err != nil || v != 9 {
		t.Fatalf("expected replacement 9, got %v / %v", v, err)
	}
	if _, err := jsondec.Run(jsondec.Null(9), 1); err == nil {
		t.Fatalf("expected failure for non-null")
	}
}

func TestValue_CapturesRawInput(t *testing.T) {
	in := obj("a", 1)
	v, err := jsondec.Run(jsondec.Value(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m, ok := v.(map[string]any); !ok || m["a"] != 1 {
		t.Fatalf("raw value not passed through: %v", v)
	}
}

func TestAndThen_DependentDecodingSeesOriginalInput(t *testing.T) {
	// decode a tag field, then pick a decoder that reads the same object
	d := jsondec.AndThen(jsondec.Field("kind", jsondec.String()), func(kind string) jsondec.Decoder[int] {
		switch kind {
		case "inline":
			return jsondec.Field("value", jsondec.Int())
		default:
			return jsondec.Fail[int]("unknown kind `" + kind + "`")
		}
	})

	v, err := jsondec.Run(d, obj("kind", "inline", "value", 7))
	if err != nil || v != 7 {
		t.Fatalf("expected 7, got %v / %v", v, err)
	}
	if _, err := jsondec.Run(d, obj("kind", "nope")); err == nil {
		t.Fatalf("expected failure for unknown kind")
	}
}

func TestAndThen_ShortCircuitsOnFirstFailure(t *testing.T) {
	ran := false
	d := jsondec.AndThen(jsondec.Int(), func(int) jsondec.Decoder[int] {
		ran = true
		return jsondec.Succeed(0)
	})
	if _, err := jsondec.Run(d, "x"); err == nil {
		t.Fatalf("expected failure")
	}
	if ran {
		t.Fatalf("callback must not run when the first decoder fails")
	}
}

func TestMap2_FirstFailureMasksLater(t *testing.T) {
	type user struct {
		name string
		age  int
	}
	d := jsondec.Map2(func(n string, a int) user { return user{n, a} },
		jsondec.Field("name", jsondec.String()),
		jsondec.Field("age", jsondec.Int()))

	v, err := jsondec.Run(d, obj("name", "ann", "age", 42))
	if err != nil || v.name != "ann" || v.age != 42 {
		t.Fatalf("unexpected result: %v / %v", v, err)
	}

	// both fields are wrong; the first decoder's failure must win
	_, err = jsondec.Run(d, obj("name", 1, "age", "x"))
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(err.Error(), "$.name") {
		t.Fatalf("expected the name failure first, got %q", err.Error())
	}
}

func TestMap3_AllDecodersSeeTheSameInput(t *testing.T) {
	d := jsondec.Map3(func(a, b, c int) int { return a + b + c },
		jsondec.Field("a", jsondec.Int()),
		jsondec.Field("b", jsondec.Int()),
		jsondec.Field("c", jsondec.Int()))
	v, err := jsondec.Run(d, obj("a", 1, "b", 2, "c", 3))
	if err != nil || v != 6 {
		t.Fatalf("expected 6, got %v / %v", v, err)
	}
}
