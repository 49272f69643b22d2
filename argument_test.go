package caseapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArg_UsageWithValueLabel(t *testing.T) {
	arg := NewArg(WithName("foo", "f"), WithValueLabel("string"))

	assert.Equal(t, "-f, --foo string", arg.usage())
}

func TestArg_UsageWithoutValueLabel(t *testing.T) {
	arg := NewArg(WithName("quiet"))

	assert.Equal(t, "--quiet", arg.usage())
}

func TestArg_RepeatedSuffix(t *testing.T) {
	arg := NewArg(WithName("list"), WithValueLabel("int"), SetRepeated(true))

	assert.Equal(t, "--list int*", arg.usage())
}

func TestArg_OptionalSuffix(t *testing.T) {
	arg := NewArg(WithName("num"), WithValueLabel("int"), SetOptional(true))

	assert.Equal(t, "--num int?", arg.usage())
}

func TestArg_RepeatedOptionalSuffixesCombine(t *testing.T) {
	arg := NewArg(WithName("at"), WithValueLabel("int"), SetRepeated(true), SetOptional(true))

	assert.Equal(t, "--at int*?", arg.usage())
}

func TestArg_NoSuffixWithoutLabel(t *testing.T) {
	// A flag without a value label never renders a suffix, even when
	// optional or repeated.
	arg := NewArg(WithName("opt"), SetOptional(true))

	assert.Equal(t, "--opt", arg.usage())
}

func TestArg_FieldIDDefaultsToCanonicalName(t *testing.T) {
	arg := NewArg(WithName("foo-bar"))

	assert.Equal(t, "foo-bar", arg.FieldID)
}

func TestArg_HasTag(t *testing.T) {
	arg := NewArg(WithName("foo"), WithTags("internal", "beta"))

	assert.True(t, arg.HasTag("internal"))
	assert.False(t, arg.HasTag("stable"))
}
