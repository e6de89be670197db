package symbol

import (
	"strings"
	"unicode"
)

// Type is a lightweight representation of a Java type as it appears in source.
// It is kept as the original string; comparisons ignore whitespace so that
// `Map<String,Integer>` and `Map<String, Integer>` are the same type
type Type struct {
	Original string
}

// NewType creates a type from its source text
func NewType(original string) Type {
	return Type{Original: strings.TrimSpace(original)}
}

// Equal reports whether two types are written the same, ignoring whitespace
func (t Type) Equal(other Type) bool {
	return compact(t.Original) == compact(other.Original)
}

// IsZero reports whether the type is unknown
func (t Type) IsZero() bool {
	return t.Original == ""
}

func (t Type) String() string {
	return t.Original
}

func compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
