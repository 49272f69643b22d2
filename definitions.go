package caseapp

import "errors"

// HelpGroup is the group of the built-in --usage and --help options created
// by DefaultBaseHelp. Base args in this group render in the leading
// "Help options:" section of commands help and are never dropped by
// predicate filters (they remain subject to hidden flags and hidden-group
// lists).
const HelpGroup = "Help"

// SortGroupsFunc returns the rendering order for the given group names. The
// input holds every group present in the document in first-seen order; the
// returned slice is used verbatim and must contain every input name. The
// function must be pure.
type SortGroupsFunc func(groups []string) []string

// FilterArgFunc reports whether an Arg should appear in help output. The
// function must be pure.
type FilterArgFunc func(arg *Arg) bool

// ConfigureArgFunc is used when defining Arg descriptors - see NewArg.
type ConfigureArgFunc func(arg *Arg)

// ConfigureCommandFunc is used when defining Command descriptors - see NewCommand.
type ConfigureCommandFunc func(command *Command)

var (
	ErrNilOptions           = errors.New("options must not be nil")
	ErrNotAStruct           = errors.New("options must be a struct or a pointer to a struct")
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)

const FmtErrorWithString = "%w: %s"
