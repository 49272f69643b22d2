package caseapp

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/MaciejG604/case-app/internal/util"
)

// Headers of the ungrouped buckets.
const (
	ungroupedOptionsHeader  = "Options:"
	otherOptionsHeader      = "Other options:"
	ungroupedCommandsHeader = "Commands:"
)

const hiddenMarker = "(hidden)"

type usageLine struct {
	left string // names plus value label, without indentation
	desc string
}

type usageSection struct {
	header string
	lines  []usageLine
}

// renderHelp lays out single-command help: the usage line, an optional
// description, then one section per resolved group. Rendering is a single
// stateless pass; nothing is mutated.
func renderHelp(h *Help, format HelpFormat, showHidden bool) string {
	visible := visibleArgs(h.Args, format, showHidden, false)

	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(h.ProgName)
	if len(visible) > 0 {
		b.WriteString(" [options]")
	}
	if desc := helpDescription(h, showHidden); desc != "" {
		b.WriteString("\n")
		b.WriteString(desc)
	}

	sections := argSections(visible, format, singleCommandHeader, "")
	writeSections(&b, sections, sectionsWidth(sections), format)
	return b.String()
}

// renderCommandsHelp lays out multi-command help: usage, description, the
// shared option sections (help options first), the command list, then the
// trailing summary block.
func renderCommandsHelp(ch *CommandsHelp, format HelpFormat, showHidden bool) string {
	var baseVisible []*Arg
	if ch.Base != nil {
		baseVisible = visibleArgs(ch.Base.Args, format, showHidden, true)
	}

	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(ch.ProgName)
	b.WriteString(" <COMMAND>")
	if len(baseVisible) > 0 {
		b.WriteString(" [options]")
	}
	desc := ch.Description
	if desc == "" && ch.Base != nil {
		desc = helpDescription(ch.Base, showHidden)
	}
	if desc != "" {
		b.WriteString("\n")
		b.WriteString(desc)
	}

	optSections := argSections(baseVisible, format, baseOptionsHeader, HelpGroup)
	writeSections(&b, optSections, sectionsWidth(optSections), format)

	cmdSections := commandSections(ch.Commands, format, showHidden)
	writeSections(&b, cmdSections, sectionsWidth(cmdSections), format)

	if ch.Summary != "" {
		b.WriteString("\n\n")
		b.WriteString(ch.Summary)
	}
	return b.String()
}

// helpDescription picks the description line: the detailed text when hidden
// items are shown, falling back to the summary when absent.
func helpDescription(h *Help, showHidden bool) string {
	if showHidden && h.Details != "" {
		return h.Details
	}
	return h.Summary
}

// visibleArgs filters args per the format and visibility mode. With
// exemptHelpGroup, args in HelpGroup bypass the predicate filters so the
// built-in help options never disappear from commands help.
func visibleArgs(args []*Arg, format HelpFormat, showHidden, exemptHelpGroup bool) []*Arg {
	visible := make([]*Arg, 0, len(args))
	for _, a := range args {
		exempt := exemptHelpGroup && a.Group == HelpGroup
		if format.argVisible(a, showHidden, exempt) {
			visible = append(visible, a)
		}
	}
	return visible
}

func singleCommandHeader(group string) string {
	if group == "" {
		return ungroupedOptionsHeader
	}
	return group + " options:"
}

func baseOptionsHeader(group string) string {
	if group == "" {
		return otherOptionsHeader
	}
	return group + " options:"
}

// argSections buckets the already-filtered args by group in first-seen
// order, resolves the group order per the format, and lays out one section
// per non-empty group. pinFirst names a group always rendered first when
// present, regardless of the configured order.
func argSections(args []*Arg, format HelpFormat, headerFor func(string) string, pinFirst string) []usageSection {
	if len(args) == 0 {
		return nil
	}

	buckets := orderedmap.New[string, []*Arg]()
	for _, a := range args {
		grouped, _ := buckets.Get(a.Group)
		buckets.Set(a.Group, append(grouped, a))
	}

	order := format.orderGroups(bucketOrder(buckets))
	if pinFirst != "" {
		order = moveToFront(order, pinFirst)
	}

	sections := make([]usageSection, 0, len(order))
	for _, group := range order {
		grouped, ok := buckets.Get(group)
		if !ok {
			continue
		}
		lines := make([]usageLine, 0, len(grouped))
		for _, a := range grouped {
			lines = append(lines, usageLine{left: a.usage(), desc: a.Description})
		}
		sections = append(sections, usageSection{header: headerFor(group), lines: lines})
	}
	return sections
}

// commandSections buckets the visible commands by group, resolving group
// order the same way as for options. A hidden command with no summary
// renders the hidden marker instead of a description.
func commandSections(cmds []*Command, format HelpFormat, showHidden bool) []usageSection {
	visible := make([]*Command, 0, len(cmds))
	for _, c := range cmds {
		if format.commandVisible(c, showHidden) {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		return nil
	}

	buckets := orderedmap.New[string, []*Command]()
	for _, c := range visible {
		grouped, _ := buckets.Get(c.Group)
		buckets.Set(c.Group, append(grouped, c))
	}

	order := format.orderGroups(bucketOrder(buckets))
	sections := make([]usageSection, 0, len(order))
	for _, group := range order {
		grouped, ok := buckets.Get(group)
		if !ok {
			continue
		}
		lines := make([]usageLine, 0, len(grouped))
		for _, c := range grouped {
			desc := c.summary()
			if desc == "" && c.Hidden {
				desc = hiddenMarker
			}
			lines = append(lines, usageLine{left: c.Name.Canonical(), desc: desc})
		}
		header := ungroupedCommandsHeader
		if group != "" {
			header = group + " commands:"
		}
		sections = append(sections, usageSection{header: header, lines: lines})
	}
	return sections
}

func bucketOrder[V any](buckets *orderedmap.OrderedMap[string, V]) []string {
	order := make([]string, 0, buckets.Len())
	for pair := buckets.Oldest(); pair != nil; pair = pair.Next() {
		order = append(order, pair.Key)
	}
	return order
}

func moveToFront(order []string, group string) []string {
	for i, g := range order {
		if g == group {
			front := make([]string, 0, len(order))
			front = append(front, group)
			front = append(front, order[:i]...)
			return append(front, order[i+1:]...)
		}
	}
	return order
}

// sectionsWidth is the width of the left column: the widest left part among
// every line of every section, so descriptions line up across section
// boundaries within one render call.
func sectionsWidth(sections []usageSection) int {
	width := 0
	for _, sec := range sections {
		for _, line := range sec.lines {
			if w := util.DisplayWidth(line.left); w > width {
				width = w
			}
		}
	}
	return width
}

// writeSections appends each section as a blank-line-separated block: the
// header line followed by one indented line per item, descriptions padded
// to the shared column.
func writeSections(b *strings.Builder, sections []usageSection, width int, format HelpFormat) {
	for _, sec := range sections {
		b.WriteString("\n\n")
		b.WriteString(sec.header)
		for _, line := range sec.lines {
			b.WriteString("\n  ")
			b.WriteString(line.left)
			if line.desc == "" {
				continue
			}
			b.WriteString(strings.Repeat(" ", width-util.DisplayWidth(line.left)+2))
			writeDescription(b, line.desc, width, format)
		}
	}
}

// writeDescription writes the description, wrapped at the configured
// terminal width with continuation lines indented to the description
// column. Width 0 writes the description as-is.
func writeDescription(b *strings.Builder, desc string, leftWidth int, format HelpFormat) {
	descColumn := 2 + leftWidth + 2
	avail := format.terminalWidth - descColumn
	if format.terminalWidth <= 0 || avail < 1 {
		b.WriteString(desc)
		return
	}
	for i, part := range util.WrapText(desc, avail) {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", descColumn))
		}
		b.WriteString(part)
	}
}
