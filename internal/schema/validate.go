package schema

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Outcome is the result of one validation: valid with a value, or invalid
// with at least one Violation.
type Outcome struct {
	value      any
	violations Violations
}

// OK reports whether the input satisfied the Schema.
func (o Outcome) OK() bool { return len(o.violations) == 0 }

// Value returns the validated value with defaults and transforms applied.
// It is nil when the outcome is invalid.
func (o Outcome) Value() any { return o.value }

// Violations returns every failure found, or nil when the outcome is valid.
func (o Outcome) Violations() Violations { return o.violations }

// Err returns the violations as an error, or nil when the outcome is valid.
func (o Outcome) Err() error {
	if o.OK() {
		return nil
	}
	return o.violations
}

// Validator validates input against a Schema that has passed Check. It holds
// no mutable state and is safe for concurrent use.
type Validator struct {
	root *Schema
}

// New checks s and returns a Validator for it. A non-nil error means the
// Schema contradicts itself and must be fixed in code.
func New(s *Schema) (*Validator, error) {
	if err := Check(s); err != nil {
		return nil, err
	}
	return &Validator{root: s}, nil
}

// MustNew is like New but panics on an invalid Schema. It is intended for
// package-level and startup initialisation.
func MustNew(s *Schema) *Validator {
	v, err := New(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate is shorthand for MustNew(s).Validate(input).
func Validate(s *Schema, input any) Outcome {
	return MustNew(s).Validate(input)
}

// Schema returns the Schema the Validator enforces.
func (v *Validator) Schema() *Schema { return v.root }

// Validate checks input, which is expected to be the result of decoding JSON
// into an empty interface. It never panics on malformed input.
func (v *Validator) Validate(input any) Outcome {
	var vs Violations
	out, ok := walk(v.root, input, nil, &vs)
	if !ok {
		return Outcome{violations: vs}
	}
	return Outcome{value: out}
}

// walk validates in against s, appending violations to vs. It reports
// whether this node and all of its children were valid.
func walk(s *Schema, in any, path Path, vs *Violations) (any, bool) {
	switch s.kind {
	case KindString:
		return walkString(s, in, path, vs)
	case KindNumber:
		return walkNumber(s, in, path, vs)
	case KindBool:
		if _, ok := in.(bool); !ok {
			typeMismatch(KindBool.String(), in, path, vs)
			return nil, false
		}
		return in, true
	case KindObject:
		return walkObject(s, in, path, vs)
	case KindArray:
		return walkArray(s, in, path, vs)
	case KindUnion:
		return walkUnion(s, in, path, vs)
	default:
		panic(fmt.Sprintf("schema: unchecked schema kind %d at %s", s.kind, path))
	}
}

func walkString(s *Schema, in any, path Path, vs *Violations) (any, bool) {
	str, ok := in.(string)
	if !ok {
		typeMismatch(KindString.String(), in, path, vs)
		return nil, false
	}

	before := len(*vs)
	n := utf8.RuneCountInString(str)
	if s.minLen != nil && n < *s.minLen {
		add(vs, path, "length must be at least %d", *s.minLen)
	}
	if s.maxLen != nil && n > *s.maxLen {
		add(vs, path, "length must be at most %d", *s.maxLen)
	}
	if !s.format.matches(str) {
		add(vs, path, "invalid %s format", s.format)
	}
	if len(*vs) > before {
		return nil, false
	}

	for _, t := range s.transforms {
		str = t.fn(str)
	}
	return str, true
}

func walkNumber(s *Schema, in any, path Path, vs *Violations) (any, bool) {
	f, ok := toFloat(in)
	if !ok {
		typeMismatch(KindNumber.String(), in, path, vs)
		return nil, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		add(vs, path, "must be a finite number")
		return nil, false
	}

	before := len(*vs)
	if s.integer && f != math.Trunc(f) {
		add(vs, path, "must be an integer")
	}
	if s.min != nil && f < *s.min {
		add(vs, path, "must be at least %v", *s.min)
	}
	if s.max != nil && f > *s.max {
		add(vs, path, "must be at most %v", *s.max)
	}
	if len(*vs) > before {
		return nil, false
	}
	return in, true
}

func walkObject(s *Schema, in any, path Path, vs *Violations) (any, bool) {
	m, ok := in.(map[string]any)
	if !ok {
		typeMismatch(KindObject.String(), in, path, vs)
		return nil, false
	}

	out := make(map[string]any, len(s.fields))
	valid := true
	for _, f := range s.fields {
		raw, present := m[f.Name]
		if !present {
			switch {
			case f.HasDefault:
				out[f.Name] = f.Default
			case f.Optional:
			default:
				add(vs, path.Append(Key(f.Name)), "required field missing")
				valid = false
			}
			continue
		}

		v, ok := walk(f.Schema, raw, path.Append(Key(f.Name)), vs)
		if !ok {
			valid = false
			continue
		}
		out[f.Name] = v
	}
	if !valid {
		return nil, false
	}
	return out, true
}

func walkArray(s *Schema, in any, path Path, vs *Violations) (any, bool) {
	items, ok := in.([]any)
	if !ok {
		typeMismatch(KindArray.String(), in, path, vs)
		return nil, false
	}

	out := make([]any, len(items))
	valid := true
	for i, item := range items {
		v, ok := walk(s.elem, item, path.Append(Index(i)), vs)
		if !ok {
			valid = false
			continue
		}
		out[i] = v
	}
	if !valid {
		return nil, false
	}
	return out, true
}

func walkUnion(s *Schema, in any, path Path, vs *Violations) (any, bool) {
	for _, alt := range s.alts {
		if shapeMatches(alt, in) {
			return walk(alt, in, path, vs)
		}
	}

	names := make([]string, len(s.alts))
	for i, alt := range s.alts {
		names[i] = shapeName(alt)
	}
	typeMismatch(strings.Join(names, " | "), in, path, vs)
	return nil, false
}

// shapeMatches reports whether in has the structure of s, ignoring content
// constraints: the primitive type, array-ness, or for objects the presence
// of every required key.
func shapeMatches(s *Schema, in any) bool {
	switch s.kind {
	case KindString:
		_, ok := in.(string)
		return ok
	case KindNumber:
		_, ok := toFloat(in)
		return ok
	case KindBool:
		_, ok := in.(bool)
		return ok
	case KindArray:
		_, ok := in.([]any)
		return ok
	case KindObject:
		m, ok := in.(map[string]any)
		if !ok {
			return false
		}
		for _, f := range s.fields {
			if f.Optional {
				continue
			}
			if _, present := m[f.Name]; !present {
				return false
			}
		}
		return true
	case KindUnion:
		for _, alt := range s.alts {
			if shapeMatches(alt, in) {
				return true
			}
		}
	}
	return false
}

func shapeName(s *Schema) string {
	if s.kind != KindUnion {
		return s.kind.String()
	}
	names := make([]string, len(s.alts))
	for i, alt := range s.alts {
		names[i] = shapeName(alt)
	}
	return strings.Join(names, " | ")
}

func toFloat(in any) (float64, bool) {
	switch n := in.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// typeName names the JSON type of a decoded value.
func typeName(in any) string {
	switch in.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if _, ok := toFloat(in); ok {
		return "number"
	}
	return fmt.Sprintf("%T", in)
}

func typeMismatch(want string, in any, path Path, vs *Violations) {
	add(vs, path, "expected type %s, got %s", want, typeName(in))
}

func add(vs *Violations, path Path, format string, args ...any) {
	if path == nil {
		path = Path{}
	}
	*vs = append(*vs, Violation{Path: path, Message: fmt.Sprintf(format, args...)})
}
