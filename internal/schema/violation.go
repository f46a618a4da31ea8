package schema

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a Segment addressing an object property.
func Key(k string) Segment { return Segment{key: k} }

// Index returns a Segment addressing an array element.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

// IsIndex reports whether the segment addresses an array element.
func (s Segment) IsIndex() bool { return s.isIndex }

// String renders the key, or the index in decimal.
func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// MarshalJSON encodes keys as JSON strings and indices as JSON numbers.
func (s Segment) MarshalJSON() ([]byte, error) {
	if s.isIndex {
		return []byte(strconv.Itoa(s.index)), nil
	}
	return json.Marshal(s.key)
}

// Path locates a value from the root of the validated input.
type Path []Segment

// Append returns a new Path extended by seg. The receiver is not modified.
func (p Path) Append(seg Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// String renders the path in dotted form, e.g. "results[0].name.first".
// The root path renders as "$".
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	for i, seg := range p {
		switch {
		case seg.isIndex:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.index))
			b.WriteByte(']')
		case i > 0:
			b.WriteByte('.')
			b.WriteString(seg.key)
		default:
			b.WriteString(seg.key)
		}
	}
	return b.String()
}

// MarshalJSON encodes the path as an array; the root path is [].
func (p Path) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]Segment(p))
}

// Violation is one constraint failure at a specific location.
type Violation struct {
	Path    Path   `json:"path"`
	Message string `json:"message"`
}

// String renders "path: message".
func (v Violation) String() string {
	return v.Path.String() + ": " + v.Message
}

// Violations is the complete list of failures from one validation. It
// implements error so it can travel through error wrapping.
type Violations []Violation

// Error summarizes the first few violations.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return ""
	}
	const maxShown = 3
	var b strings.Builder
	for i, v := range vs {
		if i == maxShown {
			b.WriteString("; ... (total ")
			b.WriteString(strconv.Itoa(len(vs)))
			b.WriteString(")")
			break
		}
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(v.String())
	}
	return b.String()
}

// Paths returns the path of every violation in order.
func (vs Violations) Paths() []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Path.String()
	}
	return out
}
