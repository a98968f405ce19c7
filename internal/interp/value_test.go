package interp

import "testing"

func TestNumberValueString(t *testing.T) {
	cases := []struct {
		in   NumberValue
		want string
	}{
		{0, "0"},
		{-0, "0"},
		{1, "1"},
		{-1, "-1"},
		{1.5, "1.5"},
		{3.14159, "3.14159"},
		{100, "100"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("NumberValue(%v).String() = %q, want %q", float64(c.in), got, c.want)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		in   Value
		want bool
	}{
		{NilValue{}, false},
		{BooleanValue(false), false},
		{BooleanValue(true), true},
		{NumberValue(0), true},
		{StringValue(""), true},
	}
	for _, c := range cases {
		if got := isTruthy(c.in); got != c.want {
			t.Errorf("isTruthy(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValuesEqualAcrossVariants(t *testing.T) {
	if valuesEqual(NumberValue(1), StringValue("1")) {
		t.Error("a number and a string with the same text should not be equal")
	}
	if !valuesEqual(NilValue{}, NilValue{}) {
		t.Error("nil should equal nil")
	}
	if !valuesEqual(StringValue("a"), StringValue("a")) {
		t.Error("equal strings should be equal")
	}
}

func TestValuesEqualNaN(t *testing.T) {
	nan := NumberValue(0)
	nan = nan / 0 * 0 // construct NaN without importing math
	if valuesEqual(nan, nan) {
		t.Error("NaN should not equal itself, per IEEE-754")
	}
}
