package jsondec_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	jsondec "github.com/fumidai/jsondec"
)

func TestString_AcceptsOnlyStrings(t *testing.T) {
	d := jsondec.String()
	if v, err := jsondec.Run(d, "hello"); err != nil || v != "hello" {
		t.Fatalf("expected success, got %v / %v", v, err)
	}
	if _, err := jsondec.Run(d, 12); err == nil {
		t.Fatalf("expected failure for a number")
	}
	if _, err := jsondec.Run(d, nil); err == nil {
		t.Fatalf("expected failure for null")
	}
}

func TestBool_AcceptsOnlyBooleans(t *testing.T) {
	if v, err := jsondec.Run(jsondec.Bool(), true); err != nil || !v {
		t.Fatalf("expected true, got %v / %v", v, err)
	}
	if _, err := jsondec.Run(jsondec.Bool(), "true"); err == nil {
		t.Fatalf("expected failure for a string")
	}
}

func TestFloat64_RoundTripsNumbers(t *testing.T) {
	if v, err := jsondec.Run(jsondec.Float64(), json.Number("42")); err != nil || v != 42.0 {
		t.Fatalf("expected 42.0, got %v / %v", v, err)
	}
	if v, err := jsondec.Run(jsondec.Float64(), 1.25); err != nil || v != 1.25 {
		t.Fatalf("expected 1.25, got %v / %v", v, err)
	}
	if _, err := jsondec.Run(jsondec.Float64(), "1.25"); err == nil {
		t.Fatalf("float must not accept strings")
	}
}

func TestInt_RangeAndIntegrality(t *testing.T) {
	d := jsondec.Int()

	if v, err := jsondec.Run(d, json.Number("42")); err != nil || v != 42 {
		t.Fatalf("expected 42, got %v / %v", v, err)
	}
	// numeric string is parsed
	if v, err := jsondec.Run(d, "123"); err != nil || v != 123 {
		t.Fatalf("expected 123 from string, got %v / %v", v, err)
	}
	// fractional numbers are not ints
	if _, err := jsondec.Run(d, json.Number("1.5")); err == nil {
		t.Fatalf("expected failure for fractional value")
	}
	// out of int32 range reports the range reason, not a plain mismatch
	_, err := jsondec.Run(d, json.Number("2147483648"))
	if err == nil {
		t.Fatalf("expected failure for out-of-range value")
	}
	if got := err.Error(); !strings.Contains(got, "too large or too small") {
		t.Fatalf("expected range reason in message, got %q", got)
	}
}

func TestInt_AcceptsIntegralFloatForms(t *testing.T) {
	d := jsondec.Int()

	// "3.0" and "1e3" are integral and in range despite the float spelling
	if v, err := jsondec.Run(d, json.Number("3.0")); err != nil || v != 3 {
		t.Fatalf("expected 3, got %v / %v", v, err)
	}
	if v, err := jsondec.Run(d, json.Number("1e3")); err != nil || v != 1000 {
		t.Fatalf("expected 1000, got %v / %v", v, err)
	}
	if v, err := jsondec.DecodeString(d, "3.0"); err != nil || v != 3 {
		t.Fatalf("expected 3 from raw text, got %v / %v", v, err)
	}
	if v, err := jsondec.Run(jsondec.UInt32(), json.Number("3.0")); err != nil || v != 3 {
		t.Fatalf("expected uint32 3, got %v / %v", v, err)
	}
	if v, err := jsondec.Run(jsondec.UInt64(), json.Number("4.0")); err != nil || v != 4 {
		t.Fatalf("expected uint64 4, got %v / %v", v, err)
	}

	// an integral float spelling out of range still reports the range reason
	_, err := jsondec.Run(d, json.Number("3e10"))
	if err == nil || !strings.Contains(err.Error(), "too large or too small") {
		t.Fatalf("expected range reason for 3e10, got %v", err)
	}
	if _, err := jsondec.Run(jsondec.UInt32(), json.Number("-1.0")); err == nil {
		t.Fatalf("expected failure for negative float spelling")
	}
}

func TestUInt32_RejectsNegative(t *testing.T) {
	if _, err := jsondec.Run(jsondec.UInt32(), json.Number("-1")); err == nil {
		t.Fatalf("expected failure for negative value")
	}
	if v, err := jsondec.Run(jsondec.UInt32(), json.Number("4294967295")); err != nil || v != 4294967295 {
		t.Fatalf("expected max uint32, got %v / %v", v, err)
	}
}

func TestInt64_WidensAndParses(t *testing.T) {
	if v, err := jsondec.Run(jsondec.Int64(), json.Number("9007199254740993")); err != nil || v != 9007199254740993 {
		t.Fatalf("expected exact int64, got %v / %v", v, err)
	}
	if v, err := jsondec.Run(jsondec.Int64(), "-7"); err != nil || v != -7 {
		t.Fatalf("expected -7 from string, got %v / %v", v, err)
	}
}

func TestBigInt_ArbitraryMagnitude(t *testing.T) {
	v, err := jsondec.Run(jsondec.BigInt(), "123456789012345678901234567890")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "123456789012345678901234567890" {
		t.Fatalf("value mangled: %s", v.String())
	}
}

func TestGuid_ParsesUUIDStrings(t *testing.T) {
	v, err := jsondec.Run(jsondec.Guid(), "6f9619ff-8b86-d011-b42d-00c04fc964ff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "6f9619ff-8b86-d011-b42d-00c04fc964ff" {
		t.Fatalf("uuid mangled: %s", v)
	}
	if _, err := jsondec.Run(jsondec.Guid(), "not-a-guid"); err == nil {
		t.Fatalf("expected failure for malformed uuid")
	}
}

func TestDatetime_NormalizesToUTC(t *testing.T) {
	v, err := jsondec.Run(jsondec.Datetime(), "2024-05-01T10:00:00+02:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", v.Location())
	}
	if v.Hour() != 8 {
		t.Fatalf("expected 08:00 UTC, got %v", v)
	}
}

func TestDatetimeOffset_PreservesOffset(t *testing.T) {
	v, err := jsondec.Run(jsondec.DatetimeOffset(), "2024-05-01T10:00:00+02:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, offset := v.Zone()
	if offset != 2*60*60 {
		t.Fatalf("expected +02:00 preserved, got offset %d", offset)
	}
}

func TestTimespan_ParsesDurations(t *testing.T) {
	v, err := jsondec.Run(jsondec.Timespan(), "1h30m")
	if err != nil || v != 90*time.Minute {
		t.Fatalf("expected 1h30m, got %v / %v", v, err)
	}
	if _, err := jsondec.Run(jsondec.Timespan(), 90); err == nil {
		t.Fatalf("expected failure for a number")
	}
}
