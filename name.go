package caseapp

import (
	"strings"
	"unicode/utf8"
)

// Tag is a free-form classification label attached to an Arg. Tags only
// feed filter predicates; they have no effect on rendering.
type Tag string

// Name identifies an option or command by a canonical identifier plus zero
// or more aliases. Each alias receives its dash prefix when the Name is
// constructed: single-rune aliases get "-", longer ones get "--", and an
// alias which already starts with "-" keeps the prefix it declares. The
// prefixing never changes after construction.
//
// Equality for deduplication purposes is by Primary only; all aliases
// render together in the option line.
type Name struct {
	canonical string
	primary   string
	aliases   []string
}

// NewName builds a Name from a canonical identifier and optional aliases,
// all given without dashes unless an explicit prefix is intended.
func NewName(canonical string, aliases ...string) Name {
	n := Name{
		canonical: strings.TrimLeft(canonical, "-"),
		primary:   withPrefix(canonical),
	}
	for _, alias := range aliases {
		n.aliases = append(n.aliases, withPrefix(alias))
	}
	return n
}

func withPrefix(alias string) string {
	if strings.HasPrefix(alias, "-") {
		return alias
	}
	if utf8.RuneCountInString(alias) == 1 {
		return "-" + alias
	}
	return "--" + alias
}

// Canonical returns the canonical identifier without its dash prefix.
func (n Name) Canonical() string { return n.canonical }

// Primary returns the prefixed canonical name, e.g. "--foo-bar". Duplicate
// detection keys on this value.
func (n Name) Primary() string { return n.primary }

// All returns every prefixed alias. With primaryFirst the canonical name
// leads; otherwise aliases come in declaration order (short flags before
// long flags) and the canonical name last.
func (n Name) All(primaryFirst bool) []string {
	parts := make([]string, 0, len(n.aliases)+1)
	if primaryFirst {
		parts = append(parts, n.primary)
		return append(parts, n.aliases...)
	}
	parts = append(parts, n.aliases...)
	return append(parts, n.primary)
}

// Render joins every alias with ", ", e.g. "-h, -help, --help".
func (n Name) Render(primaryFirst bool) string {
	return strings.Join(n.All(primaryFirst), ", ")
}
