// Package normalizer produces the comparison keys used to match free-text
// product names across differently formatted feeds.
//
// A StripSet lists the punctuation to drop before comparison. Two historical
// dialects exist, one folding hyphens away and one keeping them, so the set
// is configuration rather than a constant.
package normalizer

import (
	"fmt"
	"strings"
)

// Dialect names accepted by ForDialect.
const (
	DialectStripHyphens = "strip-hyphens"
	DialectKeepHyphens  = "keep-hyphens"
)

// StripSet is the set of runes removed during normalization.
type StripSet map[rune]bool

// NewStripSet builds a StripSet from the characters of chars.
func NewStripSet(chars string) StripSet {
	set := make(StripSet, len(chars))
	for _, r := range chars {
		set[r] = true
	}
	return set
}

// ForDialect returns the strip set for a named dialect.
func ForDialect(name string) (StripSet, error) {
	switch name {
	case DialectStripHyphens:
		return NewStripSet(" -_$!."), nil
	case DialectKeepHyphens:
		return NewStripSet(" _$!."), nil
	default:
		return nil, fmt.Errorf("unknown normalizer dialect %q", name)
	}
}

// Normalize lowercases text and removes every rune in the set, producing a
// key suitable for substring comparison. Normalizing an already normalized
// string returns it unchanged.
func (s StripSet) Normalize(text string) string {
	lowered := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if s[r] {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
