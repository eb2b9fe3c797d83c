package asset

import (
	"testing"
	"time"

	"github.com/c360studio/roxmodel/vocabulary"
)

func TestValueConstructors(t *testing.T) {
	if v := StringValue("ABB"); v.Kind != vocabulary.KindString || v.Str != "ABB" {
		t.Errorf("StringValue = %+v", v)
	}
	if v := NumberValue(12.5); v.Kind != vocabulary.KindNumber || v.Num != 12.5 {
		t.Errorf("NumberValue = %+v", v)
	}
	if v := RefValue("n1"); v.Kind != vocabulary.KindReference || v.Ref != "n1" {
		t.Errorf("RefValue = %+v", v)
	}
}

func TestDateValueNormalization(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*3600)
	v := DateValue(time.Date(2026, 3, 1, 15, 30, 45, 123, tokyo))

	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !v.Time.Equal(want) {
		t.Errorf("DateValue time = %v, want %v", v.Time, want)
	}

	// Same calendar date in different zones normalizes to one value.
	other := DateValue(time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC))
	if !v.Equal(other) {
		t.Errorf("dates %v and %v not equal after normalization", v.Time, other.Time)
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "equal strings", a: StringValue("x"), b: StringValue("x"), want: true},
		{name: "different strings", a: StringValue("x"), b: StringValue("y"), want: false},
		{name: "equal numbers", a: NumberValue(1), b: NumberValue(1), want: true},
		{name: "different numbers", a: NumberValue(1), b: NumberValue(2), want: false},
		{name: "equal refs", a: RefValue("a"), b: RefValue("a"), want: true},
		{name: "different refs", a: RefValue("a"), b: RefValue("b"), want: false},
		{
			name: "equal dates",
			a:    DateValue(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)),
			b:    DateValue(time.Date(2026, 1, 2, 23, 0, 0, 0, time.UTC)),
			want: true,
		},
		{
			name: "different dates",
			a:    DateValue(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)),
			b:    DateValue(time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)),
			want: false,
		},
		{name: "kind mismatch", a: StringValue("1"), b: NumberValue(1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal (flipped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "string", v: StringValue("kuka kr6"), want: "kuka kr6"},
		{name: "integer number", v: NumberValue(10), want: "10"},
		{name: "fractional number", v: NumberValue(4.5), want: "4.5"},
		{name: "date", v: DateValue(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)), want: "2026-03-01"},
		{name: "ref", v: RefValue("node-7"), want: "node-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
