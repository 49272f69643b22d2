package caseapp

import (
	"fmt"
	"os"
	"slices"

	"github.com/MaciejG604/case-app/internal/util"
)

// HelpFormat captures every rendering knob: group ordering, hidden-group
// lists, argument filters, the show-hidden default and the optional wrap
// width. The zero value renders with defaults everywhere.
//
// HelpFormat is a value object: every With* method returns a modified copy
// and never touches its receiver, so a format may be shared freely between
// concurrent render calls.
type HelpFormat struct {
	sortGroups                 SortGroupsFunc
	sortedGroups               []string
	hiddenGroups               []string
	hiddenGroupsWhenShowHidden []string
	filterArgs                 FilterArgFunc
	filterArgsWhenShowHidden   FilterArgFunc
	defaultShowHidden          bool
	terminalWidth              int
}

// NewHelpFormat returns the default format.
func NewHelpFormat() HelpFormat {
	return HelpFormat{}
}

// WithSortGroups sets a function deciding the order of group sections. It
// receives every present group name in first-seen order and its result is
// used verbatim; omitting a present group is a configuration error and
// fails the render.
func (f HelpFormat) WithSortGroups(sort SortGroupsFunc) HelpFormat {
	f.sortGroups = sort
	return f
}

// WithSortedGroups lists group names to render first, in the given order.
// Groups not listed keep their first-seen order after the listed ones.
// When both WithSortedGroups and WithSortGroups are configured, the
// explicit list wins.
func (f HelpFormat) WithSortedGroups(groups ...string) HelpFormat {
	f.sortedGroups = slices.Clone(groups)
	return f
}

// WithHiddenGroups lists groups suppressed when help is rendered without
// showHidden.
func (f HelpFormat) WithHiddenGroups(groups ...string) HelpFormat {
	f.hiddenGroups = slices.Clone(groups)
	return f
}

// WithHiddenGroupsWhenShowHidden lists groups suppressed when help is
// rendered with showHidden. Together with WithHiddenGroups this lets a
// group appear in exactly one visibility mode; the two lists are
// independent per-mode masks.
func (f HelpFormat) WithHiddenGroupsWhenShowHidden(groups ...string) HelpFormat {
	f.hiddenGroupsWhenShowHidden = slices.Clone(groups)
	return f
}

// WithFilterArgs sets a predicate selecting the args rendered when
// showHidden is false. An arg rejected by the predicate is excluded
// entirely, independent of its hidden flag.
func (f HelpFormat) WithFilterArgs(filter FilterArgFunc) HelpFormat {
	f.filterArgs = filter
	return f
}

// WithFilterArgsWhenShowHidden sets the predicate applied when showHidden
// is true.
func (f HelpFormat) WithFilterArgsWhenShowHidden(filter FilterArgFunc) HelpFormat {
	f.filterArgsWhenShowHidden = filter
	return f
}

// WithDefaultShowHidden sets the show-hidden value used by DefaultUsage.
func (f HelpFormat) WithDefaultShowHidden(showHidden bool) HelpFormat {
	f.defaultShowHidden = showHidden
	return f
}

// WithTerminalWidth sets the column count descriptions wrap at. Zero, the
// default, disables wrapping.
func (f HelpFormat) WithTerminalWidth(width int) HelpFormat {
	f.terminalWidth = width
	return f
}

// WithAutoTerminalWidth sets the wrap width from the terminal attached to
// stdout. When stdout is not a terminal the width stays 0 and no wrapping
// occurs.
func (f HelpFormat) WithAutoTerminalWidth() HelpFormat {
	return f.WithTerminalWidth(util.TerminalWidth(os.Stdout))
}

// DefaultShowHidden reports the show-hidden value used by DefaultUsage.
func (f HelpFormat) DefaultShowHidden() bool { return f.defaultShowHidden }

// TerminalWidth reports the configured wrap width, 0 when wrapping is off.
func (f HelpFormat) TerminalWidth() int { return f.terminalWidth }

func (f HelpFormat) groupHidden(group string, showHidden bool) bool {
	if showHidden {
		return slices.Contains(f.hiddenGroupsWhenShowHidden, group)
	}
	return slices.Contains(f.hiddenGroups, group)
}

// argVisible applies the three visibility axes in precedence order: the
// item-level hidden flag, the per-mode hidden-group lists, then the
// per-mode predicate filter. Filter-exempt args skip only the predicate.
func (f HelpFormat) argVisible(a *Arg, showHidden, exemptFromFilters bool) bool {
	if a.Hidden && !showHidden {
		return false
	}
	if f.groupHidden(a.Group, showHidden) {
		return false
	}
	if exemptFromFilters {
		return true
	}
	filter := f.filterArgs
	if showHidden {
		filter = f.filterArgsWhenShowHidden
	}
	if filter != nil && !filter(a) {
		return false
	}
	return true
}

// commandVisible mirrors argVisible for commands; predicate filters apply
// to args only.
func (f HelpFormat) commandVisible(c *Command, showHidden bool) bool {
	if c.Hidden && !showHidden {
		return false
	}
	return !f.groupHidden(c.Group, showHidden)
}

// orderGroups resolves the rendering order of group names per the
// configured policy. defaultOrder holds the groups in first-seen order.
func (f HelpFormat) orderGroups(defaultOrder []string) []string {
	switch {
	case len(f.sortedGroups) > 0:
		listed := make(map[string]bool, len(f.sortedGroups))
		ordered := make([]string, 0, len(defaultOrder))
		for _, g := range f.sortedGroups {
			if listed[g] {
				continue
			}
			listed[g] = true
			if slices.Contains(defaultOrder, g) {
				ordered = append(ordered, g)
			}
		}
		for _, g := range defaultOrder {
			if !listed[g] {
				ordered = append(ordered, g)
			}
		}
		return ordered
	case f.sortGroups != nil:
		ordered := f.sortGroups(slices.Clone(defaultOrder))
		for _, g := range defaultOrder {
			if !slices.Contains(ordered, g) {
				panic(fmt.Sprintf("caseapp: sort groups function omitted group %q", g))
			}
		}
		return ordered
	default:
		return defaultOrder
	}
}
