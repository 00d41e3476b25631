// Package boolean classifies the string tokens used in stowd.cfg values.
//
// A value is either a boolean token (one of the synonyms below, any case)
// or it is not. Surrounding whitespace is not stripped. Callers check IsBool
// before IsTrue: a value that is not a token is never the same as false.
package boolean

import "strings"

var (
	trueTokens  = []string{"stow", "true", "yes", "on", "1"}
	falseTokens = []string{"unstow", "false", "no", "off", "0"}
)

// IsBool reports whether s is a recognized boolean token
func IsBool(s string) bool {
	return IsTrue(s) || isFalse(s)
}

// IsTrue reports whether s is a true-like token
func IsTrue(s string) bool {
	return matches(s, trueTokens)
}

func isFalse(s string) bool {
	return matches(s, falseTokens)
}

func matches(s string, tokens []string) bool {
	s = strings.ToLower(s)
	for _, tok := range tokens {
		if s == tok {
			return true
		}
	}
	return false
}

// Tokens returns every recognized token, true-like first
func Tokens() []string {
	all := make([]string, 0, len(trueTokens)+len(falseTokens))
	all = append(all, trueTokens...)
	return append(all, falseTokens...)
}
