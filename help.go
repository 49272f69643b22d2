package caseapp

import (
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Help aggregates the Arg descriptors of one command or options bundle.
// Args keep declaration order and may contain duplicate names; duplicates
// are surfaced by Duplicates, never raised. A Help is built once, by
// NewHelpFromStruct or by hand, and outlives individual render calls.
type Help struct {
	ProgName string
	Args     []*Arg
	Summary  string // one-line description shown in default help
	Details  string // longer description preferred when hidden items are shown
}

// DuplicateOrigin names one field bound to a colliding option name.
type DuplicateOrigin struct {
	FieldID string
	Name    Name
}

// Duplicates groups args by their primary rendered name (e.g. "--foo-bar")
// and reports every name bound to two or more distinct source fields. Each
// value sequence preserves declaration order. Duplicates never fails; the
// caller decides whether a collision is fatal.
func (h *Help) Duplicates() *orderedmap.OrderedMap[string, []DuplicateOrigin] {
	byName := orderedmap.New[string, []DuplicateOrigin]()
	for _, a := range h.Args {
		origins, _ := byName.Get(a.Name.Primary())
		byName.Set(a.Name.Primary(), append(origins, DuplicateOrigin{FieldID: a.FieldID, Name: a.Name}))
	}

	dups := orderedmap.New[string, []DuplicateOrigin]()
	for pair := byName.Oldest(); pair != nil; pair = pair.Next() {
		if distinctFields(pair.Value) >= 2 {
			dups.Set(pair.Key, pair.Value)
		}
	}
	return dups
}

func distinctFields(origins []DuplicateOrigin) int {
	seen := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		seen[o.FieldID] = struct{}{}
	}
	return len(seen)
}

// Usage renders the help text for this document under the given format.
// Rendering is a pure read; concurrent calls over the same Help need no
// coordination.
func (h *Help) Usage(format HelpFormat, showHidden bool) string {
	return renderHelp(h, format, showHidden)
}

// DefaultUsage renders with the format's configured show-hidden default.
func (h *Help) DefaultUsage(format HelpFormat) string {
	return h.Usage(format, format.defaultShowHidden)
}

// PrintUsage writes the rendered help text to writer, newline-terminated.
func (h *Help) PrintUsage(writer io.Writer, format HelpFormat, showHidden bool) {
	_, _ = io.WriteString(writer, h.Usage(format, showHidden)+"\n")
}
