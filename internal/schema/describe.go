package schema

// Description is a plain, serialisable rendering of a Schema, used to
// publish request and response contracts.
type Description struct {
	Kind       string             `yaml:"kind"                 json:"kind"`
	MinLength  *int               `yaml:"minLength,omitempty"  json:"minLength,omitempty"`
	MaxLength  *int               `yaml:"maxLength,omitempty"  json:"maxLength,omitempty"`
	Format     string             `yaml:"format,omitempty"     json:"format,omitempty"`
	Transforms []string           `yaml:"transforms,omitempty" json:"transforms,omitempty"`
	Minimum    *float64           `yaml:"minimum,omitempty"    json:"minimum,omitempty"`
	Maximum    *float64           `yaml:"maximum,omitempty"    json:"maximum,omitempty"`
	Integer    bool               `yaml:"integer,omitempty"    json:"integer,omitempty"`
	Fields     []FieldDescription `yaml:"fields,omitempty"     json:"fields,omitempty"`
	Items      *Description       `yaml:"items,omitempty"      json:"items,omitempty"`
	AnyOf      []Description      `yaml:"anyOf,omitempty"      json:"anyOf,omitempty"`
}

// FieldDescription describes one object field.
type FieldDescription struct {
	Name     string      `yaml:"name"              json:"name"`
	Required bool        `yaml:"required"          json:"required"`
	Default  any         `yaml:"default,omitempty" json:"default,omitempty"`
	Schema   Description `yaml:"schema"            json:"schema"`
}

// Describe renders s. A nil Schema renders with kind "unknown".
func Describe(s *Schema) Description {
	if s == nil {
		return Description{Kind: Kind(0).String()}
	}
	d := Description{
		Kind:      s.kind.String(),
		MinLength: s.minLen,
		MaxLength: s.maxLen,
		Format:    string(s.format),
		Minimum:   s.min,
		Maximum:   s.max,
		Integer:   s.integer,
	}
	for _, t := range s.transforms {
		d.Transforms = append(d.Transforms, t.name)
	}
	for _, f := range s.fields {
		fd := FieldDescription{
			Name:     f.Name,
			Required: !f.Optional,
			Schema:   Describe(f.Schema),
		}
		if f.HasDefault {
			fd.Default = f.Default
		}
		d.Fields = append(d.Fields, fd)
	}
	if s.kind == KindArray {
		items := Describe(s.elem)
		d.Items = &items
	}
	for _, alt := range s.alts {
		d.AnyOf = append(d.AnyOf, Describe(alt))
	}
	return d
}
