// Package textutil holds the text heuristics used when comparing names and
// statements across the two versions of a method.
package textutil

import (
	"strings"
	"unicode"
)

// Normalize reduces a variable name to the part that survives the usual
// cosmetic renames: a `this.` qualifier, leading or trailing underscores,
// trailing digits, and letter case are dropped. `x`, `x2`, `_x` and `this.x`
// all normalize to `x`
func Normalize(name string) string {
	name = strings.TrimPrefix(name, "this.")
	name = strings.TrimLeft(name, "_")
	name = strings.TrimRightFunc(name, func(r rune) bool {
		return unicode.IsDigit(r) || r == '_'
	})
	return strings.ToLower(name)
}

// SameNormalized reports whether two names only differ cosmetically
func SameNormalized(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// ContainsToken reports whether token occurs in s as a whole identifier, not
// as part of a longer one: `a` occurs in `f(a)` but not in `f(ab)`
func ContainsToken(s, token string) bool {
	if token == "" {
		return false
	}
	for offset := 0; offset <= len(s)-len(token); {
		ind := strings.Index(s[offset:], token)
		if ind < 0 {
			return false
		}
		start := offset + ind
		end := start + len(token)
		if !identByteAt(s, start-1) && !identByteAt(s, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

func identByteAt(s string, ind int) bool {
	if ind < 0 || ind >= len(s) {
		return false
	}
	c := s[ind]
	return c == '_' || c == '$' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
