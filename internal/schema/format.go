package schema

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Format names a textual format a string Schema can require.
type Format string

// Supported formats.
const (
	FormatNone     Format = ""
	FormatEmail    Format = "email"
	FormatURL      Format = "url"
	FormatDateTime Format = "date-time"
)

// formatTags maps each format to the validator tag that checks it.
var formatTags = map[Format]string{
	FormatEmail:    "email",
	FormatURL:      "url",
	FormatDateTime: "datetime=" + time.RFC3339,
}

// validator.Validate caches tag parsing and is safe for concurrent use.
var formatValidator = validator.New()

func (f Format) known() bool {
	_, ok := formatTags[f]
	return ok
}

// matches reports whether s conforms to f. FormatNone matches everything.
func (f Format) matches(s string) bool {
	if f == FormatNone {
		return true
	}
	tag, ok := formatTags[f]
	if !ok {
		return false
	}
	return formatValidator.Var(s, tag) == nil
}
