package commands

import (
	"testing"

	"github.com/xconnio/wampproto-go/wampproto"
)

func TestParseJSONArgs(t *testing.T) {
	t.Parallel()

	vals, err := parseJSONArgs(`[1, "two", true, null, [3], {"k": "v"}]`)
	if err != nil {
		t.Fatalf("parseJSONArgs: %v", err)
	}
	if len(vals) != 6 {
		t.Fatalf("len(vals) = %d, want 6", len(vals))
	}

	n, ok := vals[0].Int()
	if !ok || n != 1 {
		t.Errorf("vals[0] = %v, ok=%v, want 1", n, ok)
	}
	s, ok := vals[1].Str()
	if !ok || s != "two" {
		t.Errorf("vals[1] = %q, ok=%v, want \"two\"", s, ok)
	}
	b, ok := vals[2].Bool()
	if !ok || !b {
		t.Errorf("vals[2] = %v, ok=%v, want true", b, ok)
	}
	if vals[3].Kind() != wampproto.KindNull {
		t.Errorf("vals[3].Kind() = %v, want KindNull", vals[3].Kind())
	}
	l, ok := vals[4].List()
	if !ok || len(l) != 1 {
		t.Errorf("vals[4] = %v, ok=%v, want one-element list", l, ok)
	}
	d, ok := vals[5].Dict()
	if !ok || d["k"].String() != "v" {
		t.Errorf("vals[5] = %v, ok=%v", d, ok)
	}
}

func TestParseJSONArgsRejectsNonArray(t *testing.T) {
	t.Parallel()

	if _, err := parseJSONArgs(`{"not": "an array"}`); err == nil {
		t.Fatal("expected error for non-array JSON input")
	}
}

func TestAnyToValueIntVsFloat(t *testing.T) {
	t.Parallel()

	if anyToValue(float64(3)).Kind() != wampproto.KindInt {
		t.Error("whole-number float64 should become KindInt")
	}
	if anyToValue(3.5).Kind() != wampproto.KindFloat {
		t.Error("fractional float64 should become KindFloat")
	}
}
