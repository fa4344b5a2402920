package dataset

import (
	"strconv"
	"strings"
)

// Kind identifies the type carried by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "null"
	}
}

// Value is a tagged variant for a single cell. Columns prefer a homogeneous
// kind but nothing enforces it; consumers check per cell.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

func Null() Value             { return Value{kind: KindNull} }
func Number(f float64) Value  { return Value{kind: KindNumber, num: f} }
func Text(s string) Value     { return Value{kind: KindText, str: s} }
func Bool(b bool) Value       { return Value{kind: KindBool, b: b} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Float returns the numeric payload. The second result is false for
// non-number values.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the string payload. The second result is false for
// non-text values.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.str, true
}

// Bool returns the boolean payload. The second result is false for
// non-bool values.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// String renders a display form: empty string for null, shortest float
// form for numbers.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// missingSentinels are raw tokens that load as null. The set mirrors what
// spreadsheet exports commonly leave behind for absent cells.
var missingSentinels = map[string]struct{}{
	"":     {},
	"nan":  {},
	"none": {},
	"null": {},
	"na":   {},
	"n/a":  {},
}

// ParseValue converts a raw cell string into a typed Value: missing
// sentinels become null, then bool, then number, else text. The raw text is
// preserved verbatim for text values (no trimming beyond sentinel matching).
func ParseValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if _, ok := missingSentinels[strings.ToLower(trimmed)]; ok {
		return Null()
	}
	switch strings.ToLower(trimmed) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if f, ok := parseNumeric(trimmed); ok {
		return Number(f)
	}
	return Text(raw)
}

// parseNumeric parses a cell as a float, tolerating thousands separators
// and a trailing percent sign. Percentages keep their face value (50% -> 50).
func parseNumeric(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	// Common thousands grouping like "1,234.5".
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
