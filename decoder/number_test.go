package decoder

import (
	"errors"
	"testing"

	"github.com/cxykevin/mizar0/jsonval"
)

func decodeSoleNumber(t *testing.T, literal string) *jsonval.Value {
	t.Helper()
	v, err := Decode("[" + literal + "]")
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", literal, err)
	}
	arr := v.ArrayVal()
	if len(arr) != 1 {
		t.Fatalf("expected 1 element, got %d", len(arr))
	}
	return arr[0]
}

func TestParseNumber_Integers(t *testing.T) {
	cases := map[string]int64{
		"0":       0,
		"1":       1,
		"-1":      -1,
		"42":      42,
		"-129245": -129245,
	}
	for literal, expected := range cases {
		v := decodeSoleNumber(t, literal)
		if !v.IsInt() {
			t.Errorf("%q should stay integral", literal)
		}
		if v.Int64() != expected {
			t.Errorf("%q expected %d, got %d", literal, expected, v.Int64())
		}
	}
}

func TestParseNumber_Fractional(t *testing.T) {
	cases := map[string]float64{
		"0.5":     0.5,
		"-2.25":   -2.25,
		"1e3":     1000,
		"1E3":     1000,
		"2e-2":    0.02,
		"2e+2":    200,
		"-1.5e2":  -150,
		"0.125e1": 1.25,
	}
	for literal, expected := range cases {
		v := decodeSoleNumber(t, literal)
		if v.IsInt() {
			t.Errorf("%q should be fractional", literal)
		}
		if v.Float64() != expected {
			t.Errorf("%q expected %v, got %v", literal, expected, v.Float64())
		}
	}
}

func TestParseNumber_IntegerPromotion(t *testing.T) {
	v := decodeSoleNumber(t, "7")
	if v.Float64() != 7.0 {
		t.Fatalf("integer should promote to 7.0, got %v", v.Float64())
	}
}

func TestParseNumber_LeadingZero(t *testing.T) {
	// 前导 0 后的数字不属于该数字字面量，随后的分隔符检查报错
	_, err := Decode("[0123]")
	var tokenErr *UnexpectedTokenError
	if !errors.As(err, &tokenErr) {
		t.Fatalf("expected UnexpectedTokenError for 0123, got %v", err)
	}

	// 单独的 0 与 0.x 合法
	if v := decodeSoleNumber(t, "0"); v.Int64() != 0 {
		t.Fatalf("0 should decode to 0")
	}
	if v := decodeSoleNumber(t, "0.5"); v.Float64() != 0.5 {
		t.Fatalf("0.5 should decode to 0.5")
	}
}

func TestParseNumber_MissingDigits(t *testing.T) {
	for _, input := range []string{"[-]", "[-x]", "[1.]", "[1.e3]", "[1e]", "[1e+]", "[2.5ex]"} {
		_, err := Decode(input)
		var tokenErr *UnexpectedTokenError
		if !errors.As(err, &tokenErr) {
			t.Errorf("Decode(%q) expected UnexpectedTokenError, got %v", input, err)
		}
	}
}

func TestParseNumber_TruncatedAtEOF(t *testing.T) {
	for _, input := range []string{"[-", "[1.", "[1e", "[1e+"} {
		_, err := Decode(input)
		if !errors.Is(err, ErrUnexpectedEndOfBuffer) {
			t.Errorf("Decode(%q) expected ErrUnexpectedEndOfBuffer, got %v", input, err)
		}
	}
}

func TestParseNumber_Direct(t *testing.T) {
	v, tail, err := parseNumber("12.5,rest")
	if err != nil {
		t.Fatalf("parseNumber error: %v", err)
	}
	if v.Float64() != 12.5 {
		t.Fatalf("expected 12.5, got %v", v.Float64())
	}
	if tail != ",rest" {
		t.Fatalf("expected tail ',rest', got %q", tail)
	}
}

func TestParseNumber_Int64Overflow(t *testing.T) {
	v := decodeSoleNumber(t, "99999999999999999999")
	if v.Type() != jsonval.TypeNumber {
		t.Fatalf("overflow literal should still decode as number")
	}
	if v.Float64() != 1e20 {
		t.Fatalf("expected 1e20, got %v", v.Float64())
	}
}
