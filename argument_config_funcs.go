package caseapp

// WithName sets the canonical name and any aliases of the option. Aliases
// are given without dashes unless an explicit prefix is intended - see
// NewName.
func WithName(canonical string, aliases ...string) ConfigureArgFunc {
	return func(arg *Arg) {
		arg.Name = NewName(canonical, aliases...)
	}
}

// WithValueLabel sets the value type label rendered after the option names,
// e.g. "int" or "path". Leave unset for options which take no value.
func WithValueLabel(label string) ConfigureArgFunc {
	return func(arg *Arg) {
		arg.ValueLabel = label
	}
}

// WithGroup assigns the option to a named group. Grouped options render
// under a "<Group> options:" header.
func WithGroup(group string) ConfigureArgFunc {
	return func(arg *Arg) {
		arg.Group = group
	}
}

// SetHidden marks the option as hidden. Hidden options only render when
// help is requested with showHidden set.
func SetHidden(hidden bool) ConfigureArgFunc {
	return func(arg *Arg) {
		arg.Hidden = hidden
	}
}

// SetRepeated marks the option as accepting multiple values; its value
// label renders with a "*" suffix.
func SetRepeated(repeated bool) ConfigureArgFunc {
	return func(arg *Arg) {
		arg.Repeated = repeated
	}
}

// SetOptional marks the option value as optional; its value label renders
// with a "?" suffix. Options without a value label never render a suffix.
func SetOptional(optional bool) ConfigureArgFunc {
	return func(arg *Arg) {
		arg.Optional = optional
	}
}

// WithDescription sets the description shown next to the option line.
func WithDescription(description string) ConfigureArgFunc {
	return func(arg *Arg) {
		arg.Description = description
	}
}

// WithTags attaches classification tags used by filter predicates.
func WithTags(tags ...Tag) ConfigureArgFunc {
	return func(arg *Arg) {
		arg.Tags = append(arg.Tags, tags...)
	}
}

// WithFieldID records the identifier of the field the option was derived
// from, used when reporting name collisions.
func WithFieldID(fieldID string) ConfigureArgFunc {
	return func(arg *Arg) {
		arg.FieldID = fieldID
	}
}
