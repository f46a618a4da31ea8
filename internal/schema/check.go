package schema

import (
	"errors"
	"fmt"
)

// ErrInvalidSchema is wrapped by every DefinitionError.
var ErrInvalidSchema = errors.New("invalid schema")

// DefinitionError reports a Schema that contradicts itself. It is a
// programming error, found once when a Validator is built.
type DefinitionError struct {
	Path   Path
	Reason string
}

// Error implements error.
func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrInvalidSchema, e.Path, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidSchema).
func (e *DefinitionError) Unwrap() error { return ErrInvalidSchema }

// Check walks s and returns every contradiction it finds, joined with
// errors.Join, or nil when s is well formed.
func Check(s *Schema) error {
	var errs []error
	check(s, nil, &errs)
	return errors.Join(errs...)
}

func check(s *Schema, path Path, errs *[]error) {
	fail := func(format string, args ...any) {
		*errs = append(*errs, &DefinitionError{Path: path, Reason: fmt.Sprintf(format, args...)})
	}

	if s == nil {
		fail("schema is nil")
		return
	}
	for _, m := range s.misuse {
		fail("%s", m)
	}

	switch s.kind {
	case KindString:
		if s.minLen != nil && *s.minLen < 0 {
			fail("min length %d is negative", *s.minLen)
		}
		if s.minLen != nil && s.maxLen != nil && *s.minLen > *s.maxLen {
			fail("min length %d exceeds max length %d", *s.minLen, *s.maxLen)
		}
		if !s.format.known() && s.format != FormatNone {
			fail("unknown format %q", s.format)
		}

	case KindNumber:
		if s.min != nil && s.max != nil && *s.min > *s.max {
			fail("minimum %v exceeds maximum %v", *s.min, *s.max)
		}

	case KindBool:

	case KindObject:
		seen := make(map[string]bool, len(s.fields))
		for _, f := range s.fields {
			fieldPath := path.Append(Key(f.Name))
			if f.Name == "" {
				fail("field name is empty")
				continue
			}
			if seen[f.Name] {
				fail("field %q declared twice", f.Name)
				continue
			}
			seen[f.Name] = true
			if f.HasDefault && !f.Optional {
				fail("field %q has a default but is required", f.Name)
			}
			before := len(*errs)
			check(f.Schema, fieldPath, errs)
			if f.HasDefault && len(*errs) == before {
				var vs Violations
				if _, ok := walk(f.Schema, f.Default, fieldPath, &vs); !ok {
					fail("default for field %q does not satisfy its schema: %s", f.Name, vs.Error())
				}
			}
		}

	case KindArray:
		check(s.elem, path.Append(Key("[]")), errs)

	case KindUnion:
		if len(s.alts) == 0 {
			fail("union has no alternatives")
		}
		for i, alt := range s.alts {
			check(alt, path.Append(Index(i)), errs)
		}

	default:
		fail("schema has no kind")
	}
}
