package rawtext

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind discriminates the dynamic kinds an attribute value can take. Source
// records are duck typed; an adapter maps each raw value onto exactly one
// Kind so the collector can switch on it explicitly instead of inspecting
// runtime types.
type Kind int

const (
	// KindScalar is a plain displayable value such as a string or number.
	KindScalar Kind = iota

	// KindBytes is a raw byte sequence that must be decoded before display.
	KindBytes

	// KindSequence is an ordered collection of values.
	KindSequence

	// KindTimestamp is a date and time value. Never displayed as a field.
	KindTimestamp

	// KindIdentifier is an attribute container identifier. Never displayed.
	KindIdentifier

	// KindPathSpec is a path specification object.
	KindPathSpec
)

// Value is a sealed tagged value; exactly one payload field is meaningful
// for a given Kind.
type Value struct {
	Kind     Kind
	Scalar   interface{}
	Bytes    []byte
	Sequence []Value
	PathSpec PathSpec
}

func ScalarValue(v interface{}) Value {
	return Value{Kind: KindScalar, Scalar: v}
}

func StringValue(s string) Value {
	return ScalarValue(s)
}

func BytesValue(b []byte) Value {
	return Value{Kind: KindBytes, Bytes: b}
}

func SequenceValue(vs ...Value) Value {
	return Value{Kind: KindSequence, Sequence: vs}
}

func TimestampValue() Value {
	return Value{Kind: KindTimestamp}
}

func IdentifierValue() Value {
	return Value{Kind: KindIdentifier}
}

func PathSpecValue(ps PathSpec) Value {
	return Value{Kind: KindPathSpec, PathSpec: ps}
}

// timestampLike reports whether the value is a date and time value, or a
// non-empty sequence whose first element is one.
func (v Value) timestampLike() bool {
	if v.Kind == KindTimestamp {
		return true
	}
	return v.Kind == KindSequence && len(v.Sequence) > 0 &&
		v.Sequence[0].Kind == KindTimestamp
}

// String returns the display form of the value. Sequences render bracketed
// and comma separated with string elements single quoted, matching the tag
// label list form.
func (v Value) String() string {
	switch v.Kind {
	case KindScalar:
		return fmt.Sprintf("%v", v.Scalar)
	case KindBytes:
		return decodeBytes(v.Bytes)
	case KindSequence:
		elems := make([]string, 0, len(v.Sequence))
		for _, e := range v.Sequence {
			if s, ok := e.Scalar.(string); ok && e.Kind == KindScalar {
				elems = append(elems, "'"+s+"'")
				continue
			}
			elems = append(elems, e.String())
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case KindPathSpec:
		if v.PathSpec == nil {
			return ""
		}
		return strings.TrimRight(v.PathSpec.Comparable(), "\n")
	default:
		return ""
	}
}

// decodeBytes converts a raw bytes value to a UTF-8 string, substituting
// the Unicode replacement character for every invalid byte.
func decodeBytes(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}
