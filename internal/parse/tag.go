// Package parse contains the struct-tag lexer used by the descriptor
// builder.
package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
)

var ErrMalformedTag = errors.New("malformed caseapp tag")

// TagConfig is the parsed form of a single `caseapp:"..."` struct tag.
type TagConfig struct {
	Skip        bool
	Name        string
	Aliases     []string
	Group       string
	Hidden      bool
	Description string
	Label       string
	Tags        []string
}

// Tag parses the semicolon-separated key:value pairs of a caseapp struct
// tag. The name and tags values may hold several space-separated entries,
// with shell-style quoting for entries containing spaces:
//
//	`caseapp:"name:verbose v;group:Logging;hidden;desc:Log everything;tags:'log level' debug"`
func Tag(tag string) (*TagConfig, error) {
	cfg := &TagConfig{}
	if tag == "" {
		return cfg, nil
	}
	if tag == "-" {
		cfg.Skip = true
		return cfg, nil
	}

	for _, part := range strings.Split(tag, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, ":")
		switch key {
		case "hidden":
			if hasValue {
				return nil, fmt.Errorf("%w: hidden takes no value", ErrMalformedTag)
			}
			cfg.Hidden = true
		case "name":
			entries, err := splitList(value)
			if err != nil {
				return nil, err
			}
			if len(entries) == 0 {
				return nil, fmt.Errorf("%w: empty name", ErrMalformedTag)
			}
			cfg.Name = entries[0]
			cfg.Aliases = entries[1:]
		case "group":
			cfg.Group = strings.TrimSpace(value)
		case "desc":
			cfg.Description = strings.TrimSpace(value)
		case "label":
			cfg.Label = strings.TrimSpace(value)
		case "tags":
			entries, err := splitList(value)
			if err != nil {
				return nil, err
			}
			cfg.Tags = entries
		default:
			return nil, fmt.Errorf("%w: unknown key %q", ErrMalformedTag, key)
		}
	}
	return cfg, nil
}

func splitList(value string) ([]string, error) {
	entries, err := shlex.Split(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedTag, err)
	}
	return entries, nil
}
