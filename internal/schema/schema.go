package schema

import (
	"fmt"
	"strings"
)

// Kind identifies the structural category of a Schema node.
type Kind int

// Schema node kinds.
const (
	KindString Kind = iota + 1
	KindNumber
	KindBool
	KindObject
	KindArray
	KindUnion
)

// String returns the JSON type name used in violation messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Transform rewrites a string value after it has passed every constraint of
// its node. Transforms only affect the validated output.
type Transform struct {
	name string
	fn   func(string) string
}

// Name returns the transform identifier.
func (t Transform) Name() string { return t.name }

// Built-in string transforms.
var (
	TrimSpace = Transform{name: "trim", fn: strings.TrimSpace}
	ToLower   = Transform{name: "lowercase", fn: strings.ToLower}
	ToUpper   = Transform{name: "uppercase", fn: strings.ToUpper}
)

// Schema is an immutable description of an expected data shape. Builder
// methods never modify the receiver; they return a new Schema.
type Schema struct {
	kind Kind

	// string constraints
	minLen     *int
	maxLen     *int
	format     Format
	transforms []Transform

	// number constraints
	min     *float64
	max     *float64
	integer bool

	// structural
	fields []Field
	elem   *Schema
	alts   []*Schema

	// misuse records builder calls that do not apply to this kind; it is
	// reported by Check.
	misuse []string
}

// Field declares one property of an object Schema.
type Field struct {
	Name     string
	Schema   *Schema
	Optional bool

	// Default is substituted when the field is absent. It is only honoured
	// when HasDefault is set, so that nil can be a meaningful default.
	Default    any
	HasDefault bool
}

// Required declares a field that must be present.
func Required(name string, s *Schema) Field {
	return Field{Name: name, Schema: s}
}

// Optional declares a field that may be absent. Absent optional fields are
// omitted from the validated value.
func Optional(name string, s *Schema) Field {
	return Field{Name: name, Schema: s, Optional: true}
}

// OptionalDefault declares an optional field whose absence is replaced by
// def in the validated value. Defaults are trusted and not re-validated at
// runtime; Check verifies them once against s.
func OptionalDefault(name string, s *Schema, def any) Field {
	return Field{Name: name, Schema: s, Optional: true, Default: def, HasDefault: true}
}

// String returns a Schema accepting any string.
func String() *Schema { return &Schema{kind: KindString} }

// Number returns a Schema accepting any finite number.
func Number() *Schema { return &Schema{kind: KindNumber} }

// Bool returns a Schema accepting true or false.
func Bool() *Schema { return &Schema{kind: KindBool} }

// Object returns a Schema accepting a JSON object with the given fields.
// Keys not declared in fields are ignored and dropped from the validated value.
func Object(fields ...Field) *Schema {
	return &Schema{kind: KindObject, fields: append([]Field(nil), fields...)}
}

// Array returns a Schema accepting a JSON array whose elements all satisfy elem.
func Array(elem *Schema) *Schema {
	return &Schema{kind: KindArray, elem: elem}
}

// Union returns a Schema that validates input against the first alternative
// whose structural shape matches it. A matched alternative that then fails
// its constraints fails the union; later alternatives are not tried.
func Union(alts ...*Schema) *Schema {
	return &Schema{kind: KindUnion, alts: append([]*Schema(nil), alts...)}
}

// Kind reports the node kind.
func (s *Schema) Kind() Kind { return s.kind }

// Fields returns a copy of the declared object fields.
func (s *Schema) Fields() []Field { return append([]Field(nil), s.fields...) }

// Elem returns the array element Schema, or nil for other kinds.
func (s *Schema) Elem() *Schema { return s.elem }

// Alternatives returns a copy of the union alternatives.
func (s *Schema) Alternatives() []*Schema { return append([]*Schema(nil), s.alts...) }

// MinLen requires a string of at least n characters.
func (s *Schema) MinLen(n int) *Schema {
	c := s.clone()
	if c.expect(KindString, "min length") {
		c.minLen = &n
	}
	return c
}

// MaxLen requires a string of at most n characters.
func (s *Schema) MaxLen(n int) *Schema {
	c := s.clone()
	if c.expect(KindString, "max length") {
		c.maxLen = &n
	}
	return c
}

// Len requires a string length within [lo, hi].
func (s *Schema) Len(lo, hi int) *Schema {
	return s.MinLen(lo).MaxLen(hi)
}

// Format requires a string to conform to f.
func (s *Schema) Format(f Format) *Schema {
	c := s.clone()
	if c.expect(KindString, "format") {
		c.format = f
	}
	return c
}

// Email is shorthand for Format(FormatEmail).
func (s *Schema) Email() *Schema { return s.Format(FormatEmail) }

// Transform appends t to the transforms applied to a valid string.
func (s *Schema) Transform(t Transform) *Schema {
	c := s.clone()
	if c.expect(KindString, "transform "+t.name) {
		c.transforms = append(c.transforms, t)
	}
	return c
}

// Trim is shorthand for Transform(TrimSpace).
func (s *Schema) Trim() *Schema { return s.Transform(TrimSpace) }

// Lower is shorthand for Transform(ToLower).
func (s *Schema) Lower() *Schema { return s.Transform(ToLower) }

// Upper is shorthand for Transform(ToUpper).
func (s *Schema) Upper() *Schema { return s.Transform(ToUpper) }

// Min requires a number greater than or equal to v.
func (s *Schema) Min(v float64) *Schema {
	c := s.clone()
	if c.expect(KindNumber, "minimum") {
		c.min = &v
	}
	return c
}

// Max requires a number less than or equal to v.
func (s *Schema) Max(v float64) *Schema {
	c := s.clone()
	if c.expect(KindNumber, "maximum") {
		c.max = &v
	}
	return c
}

// Range requires a number within [lo, hi].
func (s *Schema) Range(lo, hi float64) *Schema {
	return s.Min(lo).Max(hi)
}

// Int requires a number without a fractional part.
func (s *Schema) Int() *Schema {
	c := s.clone()
	if c.expect(KindNumber, "integer") {
		c.integer = true
	}
	return c
}

func (s *Schema) expect(k Kind, rule string) bool {
	if s.kind == k {
		return true
	}
	s.misuse = append(s.misuse, fmt.Sprintf("%s applies to %s, not %s", rule, k, s.kind))
	return false
}

func (s *Schema) clone() *Schema {
	c := *s
	c.transforms = append([]Transform(nil), s.transforms...)
	c.fields = append([]Field(nil), s.fields...)
	c.alts = append([]*Schema(nil), s.alts...)
	c.misuse = append([]string(nil), s.misuse...)
	return &c
}
