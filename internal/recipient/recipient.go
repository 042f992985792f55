// Package recipient classifies the identifier a user replied with.
package recipient

import (
	"regexp"
	"strings"
)

// Type is the kind of identifier found in a message
type Type string

const (
	TypeNone    Type = "none"
	TypeEmail   Type = "email"
	TypeAddress Type = "address"
	TypeENS     Type = "ens"
)

// Valid reports whether t names a deliverable identifier kind.
func (t Type) Valid() bool {
	switch t {
	case TypeEmail, TypeAddress, TypeENS:
		return true
	}
	return false
}

// Recipient is a classified identifier. Value is lower-cased.
type Recipient struct {
	Type  Type
	Value string
}

// None reports whether no identifier was found.
func (r Recipient) None() bool {
	return r.Type == TypeNone
}

// Patterns are tried in declaration order; the first one that matches wins.
var (
	emailPattern   = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	addressPattern = regexp.MustCompile(`(?i)\b0x[a-f0-9]{40}\b`)
	ensPattern     = regexp.MustCompile(`(?i)\b[a-z0-9\-]+(?:\.[a-z0-9\-]+)*\.eth\b`)
)

var patterns = []struct {
	kind Type
	re   *regexp.Regexp
}{
	{TypeEmail, emailPattern},
	{TypeAddress, addressPattern},
	{TypeENS, ensPattern},
}

// Extract returns the first identifier found in text. Only one identifier is
// returned even when the text holds several.
func Extract(text string) Recipient {
	for _, p := range patterns {
		if match := p.re.FindString(text); match != "" {
			return Recipient{Type: p.kind, Value: strings.ToLower(match)}
		}
	}
	return Recipient{Type: TypeNone}
}

// ParseFormats normalises a drop's accepted formats, dropping unknown entries.
func ParseFormats(formats []string) []Type {
	types := make([]Type, 0, len(formats))
	for _, f := range formats {
		t := Type(strings.ToLower(strings.TrimSpace(f)))
		if t.Valid() {
			types = append(types, t)
		}
	}
	return types
}

// Accepts reports whether t is one of formats.
func Accepts(formats []string, t Type) bool {
	for _, f := range ParseFormats(formats) {
		if f == t {
			return true
		}
	}
	return false
}
