package menu

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// definition is the YAML layout of a menu file.
type definition struct {
	Items []itemDefinition `yaml:"items"`
}

type itemDefinition struct {
	Title          string           `yaml:"title"`
	URL            string           `yaml:"url"`
	Attributes     Attributes       `yaml:"attributes"`
	LinkAttributes Attributes       `yaml:"link_attributes"`
	Items          []itemDefinition `yaml:"items"`
}

// LoadFile reads a YAML menu definition from path.
func LoadFile(path string) (*Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu file: %w", err)
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return b, nil
}

// Decode reads a YAML menu definition. Nested items are added depth first,
// so each parent receives its id before its children. Reserved keys in an
// item's attributes are dropped; hierarchy comes from nesting only.
func Decode(r io.Reader) (*Builder, error) {
	var def definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	b := New()
	if err := addDefinitions(b, def.Items, 0, "items"); err != nil {
		return nil, err
	}
	return b, nil
}

func addDefinitions(b *Builder, defs []itemDefinition, parentID int, path string) error {
	for i, d := range defs {
		at := fmt.Sprintf("%s[%d]", path, i)
		if strings.TrimSpace(d.Title) == "" {
			return fmt.Errorf("%w: %s: title is required", ErrInvalidDefinition, at)
		}

		it := NewItem(d.Title, d.URL, ExtractAttr(Map(d.Attributes)), parentID)
		if len(d.LinkAttributes) > 0 {
			it = it.WithLinkAttributes(d.LinkAttributes)
		}
		it = b.AddItem(it)

		if err := addDefinitions(b, d.Items, it.ID(), at+".items"); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalYAML decodes a mapping while keeping key order. A null value
// becomes a Null entry and an integer key becomes a Flag of its value.
// A sequence of names decodes to flags.
func (a *Attributes) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		out := make(Attributes, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: attribute %q must be a scalar", v.Line, k.Value)
			}
			switch {
			case v.Tag == "!!null":
				out = append(out, Null(k.Value))
			case isIndex(k):
				out = append(out, Flag(v.Value))
			default:
				out = append(out, A(k.Value, v.Value))
			}
		}
		*a = out
	case yaml.SequenceNode:
		out := make(Attributes, 0, len(value.Content))
		for _, v := range value.Content {
			if v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: attribute flag must be a scalar", v.Line)
			}
			out = append(out, Flag(v.Value))
		}
		*a = out
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			return fmt.Errorf("line %d: attributes must be a mapping or a list", value.Line)
		}
		*a = nil
	default:
		return fmt.Errorf("line %d: attributes must be a mapping or a list", value.Line)
	}
	return nil
}

func isIndex(k *yaml.Node) bool {
	if k.Tag != "!!int" {
		return false
	}
	_, err := strconv.Atoi(k.Value)
	return err == nil
}
