package caseapp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRender_GroupSectionsKeepDeclarationOrder(t *testing.T) {
	h := &Help{
		ProgName: "example",
		Args: []*Arg{
			NewArg(WithName("aa"), WithValueLabel("string"), WithGroup("Bb")),
			NewArg(WithName("bb"), WithValueLabel("int"), WithGroup("Something")),
		},
	}

	want := "Usage: example [options]\n\nBb options:\n  --aa string\n\nSomething options:\n  --bb int"
	if diff := cmp.Diff(want, h.Usage(NewHelpFormat(), false)); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_SortedGroupsReorderSections(t *testing.T) {
	h := &Help{
		ProgName: "example",
		Args: []*Arg{
			NewArg(WithName("aa"), WithValueLabel("string"), WithGroup("Bb")),
			NewArg(WithName("bb"), WithValueLabel("int"), WithGroup("Something")),
		},
	}
	f := NewHelpFormat().WithSortedGroups("Something", "Bb")

	want := "Usage: example [options]\n\nSomething options:\n  --bb int\n\nBb options:\n  --aa string"
	if diff := cmp.Diff(want, h.Usage(f, false)); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_GroupingNeverReordersWithinAGroup(t *testing.T) {
	h := &Help{
		ProgName: "example",
		Args: []*Arg{
			NewArg(WithName("zz"), WithGroup("G")),
			NewArg(WithName("aa"), WithGroup("G")),
		},
	}

	want := "Usage: example [options]\n\nG options:\n  --zz\n  --aa"
	if diff := cmp.Diff(want, h.Usage(NewHelpFormat(), false)); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_UngroupedBucketAmongNamedGroups(t *testing.T) {
	h := &Help{
		ProgName: "example",
		Args: []*Arg{
			NewArg(WithName("plain")),
			NewArg(WithName("fancy"), WithGroup("Extra")),
		},
	}

	want := "Usage: example [options]\n\nOptions:\n  --plain\n\nExtra options:\n  --fancy"
	if diff := cmp.Diff(want, h.Usage(NewHelpFormat(), false)); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_DescriptionsAlignAcrossSections(t *testing.T) {
	h := &Help{
		ProgName: "example",
		Args: []*Arg{
			NewArg(WithName("verbose", "v"), WithDescription("Log more")),
			NewArg(WithName("out"), WithValueLabel("path"), WithGroup("Output"), WithDescription("Write here")),
		},
	}

	want := "Usage: example [options]\n\n" +
		"Options:\n" +
		"  -v, --verbose  Log more\n\n" +
		"Output options:\n" +
		"  --out path     Write here"
	if diff := cmp.Diff(want, h.Usage(NewHelpFormat(), false)); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_EmptyGroupOmittedEntirely(t *testing.T) {
	h := &Help{
		ProgName: "example",
		Args: []*Arg{
			NewArg(WithName("keep")),
			NewArg(WithName("gone"), WithGroup("Advanced"), SetHidden(true)),
		},
	}

	got := h.Usage(NewHelpFormat(), false)

	assert.NotContains(t, got, "Advanced", "a group emptied by filtering must leave no header behind")
	assert.Equal(t, "Usage: example [options]\n\nOptions:\n  --keep", got)
}

func TestRender_HiddenGroupsMaskPerMode(t *testing.T) {
	h := &Help{
		ProgName: "example",
		Args: []*Arg{
			NewArg(WithName("a"), WithGroup("ShortOnly")),
			NewArg(WithName("b"), WithGroup("FullOnly")),
		},
	}
	f := NewHelpFormat().
		WithHiddenGroups("ShortOnly").
		WithHiddenGroupsWhenShowHidden("FullOnly")

	short := h.Usage(f, false)
	full := h.Usage(f, true)

	assert.NotContains(t, short, "ShortOnly")
	assert.Contains(t, short, "FullOnly")
	assert.Contains(t, full, "ShortOnly")
	assert.NotContains(t, full, "FullOnly")
}

func TestRender_FilterArgsExcludesIndependentlyOfHiddenFlag(t *testing.T) {
	h := &Help{
		ProgName: "example",
		Args: []*Arg{
			NewArg(WithName("keep")),
			NewArg(WithName("drop"), WithTags("internal")),
		},
	}
	f := NewHelpFormat().WithFilterArgs(func(arg *Arg) bool {
		return !arg.HasTag("internal")
	})

	assert.Equal(t, "Usage: example [options]\n\nOptions:\n  --keep", h.Usage(f, false))
	assert.Contains(t, h.Usage(f, true), "--drop", "the short-help filter must not apply in full help")
}

func TestRender_PanickingFilterPropagates(t *testing.T) {
	h := &Help{ProgName: "example", Args: []*Arg{NewArg(WithName("foo"))}}
	f := NewHelpFormat().WithFilterArgs(func(*Arg) bool { panic("broken predicate") })

	assert.Panics(t, func() { h.Usage(f, false) })
}

func TestRender_DescriptionWrapsAtTerminalWidth(t *testing.T) {
	h := &Help{
		ProgName: "example",
		Args: []*Arg{
			NewArg(WithName("foo"), WithValueLabel("string"), WithDescription("one two three four five")),
		},
	}
	f := NewHelpFormat().WithTerminalWidth(30)

	want := "Usage: example [options]\n\n" +
		"Options:\n" +
		"  --foo string  one two three\n" +
		"                four five"
	if diff := cmp.Diff(want, h.Usage(f, false)); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ZeroTerminalWidthNeverWraps(t *testing.T) {
	long := "a very long description which would certainly wrap on any reasonably sized terminal"
	h := &Help{
		ProgName: "example",
		Args:     []*Arg{NewArg(WithName("foo"), WithDescription(long))},
	}

	assert.Contains(t, h.Usage(NewHelpFormat(), false), long)
}

func TestRender_ConcurrentCallsShareDocuments(t *testing.T) {
	h := &Help{
		ProgName: "example",
		Args:     []*Arg{NewArg(WithName("foo"), WithValueLabel("string"))},
	}
	f := NewHelpFormat()
	want := h.Usage(f, false)

	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- h.Usage(f, false) }()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}
