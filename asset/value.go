package asset

import (
	"strconv"
	"time"

	"github.com/c360studio/roxmodel/vocabulary"
)

// DateLayout is the wire and display form of date values.
const DateLayout = "2006-01-02"

// Value is one property value: a string, a number, a date, or a
// reference to another node. Kind selects which payload field is live;
// the others stay zero.
type Value struct {
	Kind vocabulary.ValueKind
	Str  string
	Num  float64
	Time time.Time
	Ref  NodeID
}

// StringValue builds a string value.
func StringValue(s string) Value {
	return Value{Kind: vocabulary.KindString, Str: s}
}

// NumberValue builds a number value.
func NumberValue(f float64) Value {
	return Value{Kind: vocabulary.KindNumber, Num: f}
}

// DateValue builds a date value. Dates carry day precision: the time
// is normalized to midnight UTC.
func DateValue(t time.Time) Value {
	y, m, d := t.UTC().Date()
	return Value{Kind: vocabulary.KindDate, Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// RefValue builds a reference value pointing at another node.
func RefValue(id NodeID) Value {
	return Value{Kind: vocabulary.KindReference, Ref: id}
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case vocabulary.KindString:
		return v.Str == o.Str
	case vocabulary.KindNumber:
		return v.Num == o.Num
	case vocabulary.KindDate:
		return v.Time.Equal(o.Time)
	case vocabulary.KindReference:
		return v.Ref == o.Ref
	}
	return false
}

// String renders the value for display.
func (v Value) String() string {
	switch v.Kind {
	case vocabulary.KindString:
		return v.Str
	case vocabulary.KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case vocabulary.KindDate:
		return v.Time.Format(DateLayout)
	case vocabulary.KindReference:
		return string(v.Ref)
	}
	return ""
}
