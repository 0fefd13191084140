package menu

import (
	"log/slog"
	"strings"

	"golang.org/x/net/html"
)

// Attr is a single HTML attribute entry.
type Attr struct {
	// Name is the attribute name. For positional entries it is unused.
	Name string `json:"name,omitempty"`

	// Value is the attribute value. For positional entries it is also the name.
	Value string `json:"value,omitempty"`

	// Null marks an entry without a value. Null entries are never rendered.
	Null bool `json:"null,omitempty"`

	// Positional marks an entry that was given by position rather than by key,
	// e.g. a bare "disabled". It renders as its value with no assignment.
	Positional bool `json:"positional,omitempty"`
}

// A returns a regular name="value" attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Null returns an attribute that is dropped on render.
func Null(name string) Attr {
	return Attr{Name: name, Null: true}
}

// Flag returns a positional attribute rendered bare, e.g. ` disabled`.
func Flag(name string) Attr {
	return Attr{Value: name, Positional: true}
}

// Key returns the name the entry is addressed by.
func (a Attr) Key() string {
	if a.Positional {
		return a.Value
	}
	return a.Name
}

// Attributes is an ordered list of attribute entries.
type Attributes []Attr

// Len returns the number of entries, including null ones.
func (a Attributes) Len() int {
	return len(a)
}

// Get returns the value for key and whether a non-null entry exists.
func (a Attributes) Get(key string) (string, bool) {
	for _, e := range a {
		if e.Key() == key && !e.Null {
			return e.Value, true
		}
	}
	return "", false
}

// Set replaces the first entry with the same key in place, or appends it.
func (a Attributes) Set(e Attr) Attributes {
	out := a.clone()
	for i := range out {
		if out[i].Key() == e.Key() {
			out[i] = e
			return out
		}
	}
	return append(out, e)
}

// Without returns a copy with every entry matching one of keys removed.
func (a Attributes) Without(keys ...string) Attributes {
	out := make(Attributes, 0, len(a))
	for _, e := range a {
		if containsKey(keys, e.Key()) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (a Attributes) clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

func containsKey(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

// ParseAttr serializes attributes into a space-leading ` key="value"` sequence.
// Null entries are omitted, positional entries render bare and values are
// HTML escaped. Entries with names that cannot be attribute names are dropped.
// Returns an empty string when nothing remains.
func ParseAttr(attrs Attributes) string {
	var sb strings.Builder
	for _, e := range attrs {
		if e.Null {
			continue
		}

		name := e.Key()
		if !validAttrName(name) {
			slog.Debug("dropping invalid attribute", "name", name)
			continue
		}

		sb.WriteByte(' ')
		sb.WriteString(name)
		if e.Positional {
			continue
		}
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(e.Value))
		sb.WriteByte('"')
	}
	return sb.String()
}

// validAttrName reports whether the name can be emitted without breaking
// out of the tag.
func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= ' ', r == 0x7f:
			return false
		case strings.ContainsRune(`"'<>/=`+"`", r):
			return false
		}
	}
	return true
}
