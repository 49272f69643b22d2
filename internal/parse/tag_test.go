package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_Empty(t *testing.T) {
	cfg, err := Tag("")
	require.NoError(t, err)
	assert.Equal(t, &TagConfig{}, cfg)
}

func TestTag_Skip(t *testing.T) {
	cfg, err := Tag("-")
	require.NoError(t, err)
	assert.True(t, cfg.Skip)
}

func TestTag_AllKeys(t *testing.T) {
	cfg, err := Tag("name:verbose v;group:Logging;hidden;desc:Log everything;label:level;tags:'log level' debug")
	require.NoError(t, err)

	assert.Equal(t, "verbose", cfg.Name)
	assert.Equal(t, []string{"v"}, cfg.Aliases)
	assert.Equal(t, "Logging", cfg.Group)
	assert.True(t, cfg.Hidden)
	assert.Equal(t, "Log everything", cfg.Description)
	assert.Equal(t, "level", cfg.Label)
	assert.Equal(t, []string{"log level", "debug"}, cfg.Tags)
}

func TestTag_NameWithoutAliases(t *testing.T) {
	cfg, err := Tag("name:out")
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Name)
	assert.Empty(t, cfg.Aliases)
}

func TestTag_IgnoresEmptyParts(t *testing.T) {
	cfg, err := Tag("group:G;;desc:text;")
	require.NoError(t, err)
	assert.Equal(t, "G", cfg.Group)
	assert.Equal(t, "text", cfg.Description)
}

func TestTag_Errors(t *testing.T) {
	for _, tag := range []string{
		"name:",
		"hidden:yes",
		"bogus:1",
		"name:'unterminated",
	} {
		_, err := Tag(tag)
		assert.ErrorIs(t, err, ErrMalformedTag, "tag %q", tag)
	}
}
