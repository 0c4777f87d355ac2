package dsv

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a single field. Its only state is the canonical text; typed views
// are parsed from the text on demand and may fail.
//
// The zero Value is the empty field.
type Value struct {
	text string
}

// FromString returns a Value holding s verbatim.
func FromString(s string) Value {
	return Value{text: s}
}

// FromInt returns a Value holding the base-10 text of n.
func FromInt(n int) Value {
	return Value{text: strconv.Itoa(n)}
}

// FromInt64 returns a Value holding the base-10 text of n.
func FromInt64(n int64) Value {
	return Value{text: strconv.FormatInt(n, 10)}
}

// FromUint returns a Value holding the base-10 text of n.
func FromUint(n uint) Value {
	return Value{text: strconv.FormatUint(uint64(n), 10)}
}

// FromUint64 returns a Value holding the base-10 text of n.
func FromUint64(n uint64) Value {
	return Value{text: strconv.FormatUint(n, 10)}
}

// FromFloat32 returns a Value holding the shortest decimal text that parses
// back to f as a float32. Whole numbers carry no fraction: 1.0 becomes "1".
func FromFloat32(f float32) Value {
	return Value{text: strconv.FormatFloat(float64(f), 'g', -1, 32)}
}

// FromFloat64 returns a Value holding the shortest decimal text that parses
// back to f. Whole numbers carry no fraction: 1.0 becomes "1".
func FromFloat64(f float64) Value {
	return Value{text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// FromBool returns a Value holding "true" or "false".
func FromBool(b bool) Value {
	return Value{text: strconv.FormatBool(b)}
}

// ValueOf converts a Go primitive to a Value using the From constructors.
// Supported: Value, string, []byte, bool, all integer and float kinds, and
// fmt.Stringer.
func ValueOf(v interface{}) (Value, error) {
	switch val := v.(type) {
	case Value:
		return val, nil
	case string:
		return FromString(val), nil
	case []byte:
		return FromString(string(val)), nil
	case bool:
		return FromBool(val), nil
	case int:
		return FromInt(val), nil
	case int8:
		return FromInt64(int64(val)), nil
	case int16:
		return FromInt64(int64(val)), nil
	case int32:
		return FromInt64(int64(val)), nil
	case int64:
		return FromInt64(val), nil
	case uint:
		return FromUint(val), nil
	case uint8:
		return FromUint64(uint64(val)), nil
	case uint16:
		return FromUint64(uint64(val)), nil
	case uint32:
		return FromUint64(uint64(val)), nil
	case uint64:
		return FromUint64(val), nil
	case float32:
		return FromFloat32(val), nil
	case float64:
		return FromFloat64(val), nil
	case fmt.Stringer:
		return FromString(val.String()), nil
	default:
		return Value{}, fmt.Errorf("dsv: unsupported value type %T", v)
	}
}

// String returns the stored text verbatim.
func (v Value) String() string {
	return v.text
}

// IsEmpty reports whether the field is empty.
func (v Value) IsEmpty() bool {
	return v.text == ""
}

// integerBases is the order in which integer text is interpreted.
// The first base that consumes the whole text wins, so "10" is ten and
// "0x1A" is only reached under base 16.
var integerBases = [...]int{10, 8, 16}

// integerDigits strips the sign and, for base 16, an optional 0x prefix.
// It returns the sign and the digits to hand to strconv.
func integerDigits(s string, base int) (neg bool, digits string) {
	switch {
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if base == 16 && len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return neg, s
}

func (v Value) parseInt(bitSize int, typ string) (int64, error) {
	for _, base := range integerBases {
		neg, digits := integerDigits(v.text, base)
		if digits == "" || digits[0] == '+' || digits[0] == '-' {
			continue
		}
		if neg {
			digits = "-" + digits
		}
		if n, err := strconv.ParseInt(digits, base, bitSize); err == nil {
			return n, nil
		}
	}
	return 0, &ConversionError{Value: v.text, Type: typ, Err: ErrNotAnInteger}
}

func (v Value) parseUint(bitSize int, typ string) (uint64, error) {
	for _, base := range integerBases {
		neg, digits := integerDigits(v.text, base)
		if neg || digits == "" || digits[0] == '+' || digits[0] == '-' {
			continue
		}
		if n, err := strconv.ParseUint(digits, base, bitSize); err == nil {
			return n, nil
		}
	}
	return 0, &ConversionError{Value: v.text, Type: typ, Err: ErrNotAnInteger}
}

// Int parses the text as an int, trying base 10, then base 8, then base 16.
func (v Value) Int() (int, error) {
	n, err := v.parseInt(strconv.IntSize, "int")
	return int(n), err
}

// Int64 parses the text as an int64, trying base 10, then base 8, then base 16.
func (v Value) Int64() (int64, error) {
	return v.parseInt(64, "int64")
}

// Uint parses the text as a uint, trying base 10, then base 8, then base 16.
// A minus sign is rejected.
func (v Value) Uint() (uint, error) {
	n, err := v.parseUint(strconv.IntSize, "uint")
	return uint(n), err
}

// Uint64 parses the text as a uint64, trying base 10, then base 8, then base 16.
func (v Value) Uint64() (uint64, error) {
	return v.parseUint(64, "uint64")
}

// Float32 parses the text as a float32 literal.
func (v Value) Float32() (float32, error) {
	f, err := strconv.ParseFloat(v.text, 32)
	if err != nil {
		return 0, &ConversionError{Value: v.text, Type: "float32", Err: ErrNotANumber}
	}
	return float32(f), nil
}

// Float64 parses the text as a float64 literal.
func (v Value) Float64() (float64, error) {
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, &ConversionError{Value: v.text, Type: "float64", Err: ErrNotANumber}
	}
	return f, nil
}

// Bool matches the text against "true" and "false", ignoring ASCII case.
func (v Value) Bool() (bool, error) {
	switch {
	case equalFoldASCII(v.text, "true"):
		return true, nil
	case equalFoldASCII(v.text, "false"):
		return false, nil
	default:
		return false, &ConversionError{Value: v.text, Type: "bool", Err: ErrNotABoolean}
	}
}

// equalFoldASCII is strings.EqualFold restricted to ASCII letters: a byte
// length mismatch rules out multi-byte runes that fold onto ASCII.
func equalFoldASCII(s, lower string) bool {
	return len(s) == len(lower) && strings.EqualFold(s, lower)
}
