package caseapp

// Arg holds the full metadata of one declared command-line option. An Arg
// is constructed once, at program-definition time, and never mutated;
// rendering only reads it.
type Arg struct {
	Name        Name
	ValueLabel  string // rendered after the names, empty for flags taking no value
	Group       string // empty puts the arg in the ungrouped bucket
	Hidden      bool
	Repeated    bool
	Optional    bool
	Description string
	Tags        []Tag
	FieldID     string // originating field identifier, reported by Help.Duplicates
}

// NewArg is a convenience initialization method to fluently configure Args.
// When no field identifier is configured the canonical name is used, so
// hand-built descriptors still take part in duplicate reporting.
func NewArg(configs ...ConfigureArgFunc) *Arg {
	arg := &Arg{}
	for _, config := range configs {
		config(arg)
	}
	if arg.FieldID == "" {
		arg.FieldID = arg.Name.Canonical()
	}
	return arg
}

// HasTag reports whether the Arg carries the given classification tag.
func (a *Arg) HasTag(tag Tag) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// usage returns the left column of the option line: the rendered names
// followed by the value label and its suffix, e.g. "-f, --foo string*".
// A missing value label renders with no suffix at all.
func (a *Arg) usage() string {
	s := a.Name.Render(false)
	if a.ValueLabel == "" {
		return s
	}
	s += " " + a.ValueLabel
	if a.Repeated {
		s += "*"
	}
	if a.Optional {
		s += "?"
	}
	return s
}
