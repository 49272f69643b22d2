package caseapp

import (
	"fmt"
	"reflect"
	"time"

	"github.com/iancoleman/strcase"

	"github.com/MaciejG604/case-app/internal/parse"
)

const tagName = "caseapp"

// NewHelpFromStruct builds a Help document from the exported fields of an
// options struct. Field names convert to kebab-case flag names (FooBar
// becomes --foo-bar) unless the field's caseapp tag overrides them; the
// field name itself becomes the arg's FieldID, so two fields resolving to
// the same flag name surface through Help.Duplicates.
//
// Supported tag keys: name (first entry plus aliases), group, hidden, desc,
// label (overrides the inferred value label), tags. A tag of "-" skips the
// field. Struct-typed fields, embedded or named, are flattened into the
// same option space and inherit the group set on their field.
func NewHelpFromStruct(progName string, options any) (*Help, error) {
	if options == nil {
		return nil, ErrNilOptions
	}
	v := reflect.ValueOf(options)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, ErrNilOptions
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf(FmtErrorWithString, ErrNotAStruct, v.Kind().String())
	}

	h := &Help{ProgName: progName}
	if err := appendStructArgs(h, v.Type(), ""); err != nil {
		return nil, err
	}
	return h, nil
}

func appendStructArgs(h *Help, st reflect.Type, inheritedGroup string) error {
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		cfg, err := parse.Tag(field.Tag.Get(tagName))
		if err != nil {
			return fmt.Errorf(FmtErrorWithString, err, field.Name)
		}
		if cfg.Skip {
			continue
		}

		if t := dereference(field.Type); t.Kind() == reflect.Struct && t != reflect.TypeOf(time.Time{}) {
			group := cfg.Group
			if group == "" {
				group = inheritedGroup
			}
			if err := appendStructArgs(h, t, group); err != nil {
				return err
			}
			continue
		}

		arg, err := argFromField(field, cfg, inheritedGroup)
		if err != nil {
			return err
		}
		h.Args = append(h.Args, arg)
	}
	return nil
}

func argFromField(field reflect.StructField, cfg *parse.TagConfig, inheritedGroup string) (*Arg, error) {
	name := cfg.Name
	if name == "" {
		name = strcase.ToKebab(field.Name)
	}

	label, repeated, optional, err := valueShape(field.Type)
	if err != nil {
		return nil, fmt.Errorf(FmtErrorWithString, err, field.Name)
	}
	if cfg.Label != "" {
		label = cfg.Label
	}

	group := cfg.Group
	if group == "" {
		group = inheritedGroup
	}
	tags := make([]Tag, 0, len(cfg.Tags))
	for _, t := range cfg.Tags {
		tags = append(tags, Tag(t))
	}

	return &Arg{
		Name:        NewName(name, cfg.Aliases...),
		ValueLabel:  label,
		Group:       group,
		Hidden:      cfg.Hidden,
		Repeated:    repeated,
		Optional:    optional,
		Description: cfg.Description,
		Tags:        tags,
		FieldID:     field.Name,
	}, nil
}

func dereference(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// valueShape maps a field type to its rendered value label and suffix
// flags. Pointer wrapping marks the value optional, slices mark it
// repeated; booleans have no value label, so a *bool field renders with no
// suffix at all.
func valueShape(t reflect.Type) (label string, repeated, optional bool, err error) {
	switch t.Kind() {
	case reflect.Pointer:
		label, _, _, err = valueShape(t.Elem())
		return label, false, true, err
	case reflect.Slice:
		label, _, _, err = valueShape(t.Elem())
		return label, true, false, err
	case reflect.Bool:
		return "", false, false, nil
	case reflect.String:
		return "string", false, false, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int", false, false, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "uint", false, false, nil
	case reflect.Float32, reflect.Float64:
		return "float", false, false, nil
	case reflect.Struct:
		if t == reflect.TypeOf(time.Time{}) {
			return "timestamp", false, false, nil
		}
		return "", false, false, ErrUnsupportedFieldType
	default:
		return "", false, false, ErrUnsupportedFieldType
	}
}
