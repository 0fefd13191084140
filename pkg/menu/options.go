package menu

import (
	"strconv"
	"strings"
)

const (
	// KeyParent is the reserved options key holding the parent item id.
	KeyParent = "pid"

	// KeyURL is the reserved options key holding the link destination.
	KeyURL = "url"
)

// ReservedKeys are stripped from a Map before the rest is used as HTML attributes.
var ReservedKeys = []string{KeyParent, KeyURL}

// Options describes a new item. It is either a URL or a Map.
type Options interface {
	options()
}

// URL is a plain link destination.
type URL string

func (URL) options() {}

// Map is a raw options mapping. The reserved keys configure the item,
// everything else becomes the wrapping element's attributes.
type Map Attributes

func (Map) options() {}

// PID returns the reserved parent id entry.
func PID(id int) Attr {
	return A(KeyParent, strconv.Itoa(id))
}

// Href returns the reserved url entry.
func Href(url string) Attr {
	return A(KeyURL, url)
}

// GetURL returns the link destination described by opts.
// A URL is returned as is, a Map yields its url entry or an empty string.
func GetURL(opts Options) string {
	switch o := opts.(type) {
	case URL:
		return string(o)
	case Map:
		v, _ := o.reserved(KeyURL)
		return v
	default:
		return ""
	}
}

// ExtractAttr returns m without the reserved keys, preserving order.
// Positional entries are never reserved, even when named "pid" or "url".
func ExtractAttr(m Map) Attributes {
	out := make(Attributes, 0, len(m))
	for _, e := range m {
		if !e.Positional && containsKey(ReservedKeys, e.Name) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// reserved returns the value of a keyed (non-positional) entry.
func (m Map) reserved(key string) (string, bool) {
	for _, e := range m {
		if !e.Positional && !e.Null && e.Name == key {
			return e.Value, true
		}
	}
	return "", false
}

// parentOf returns the parent id in opts. Anything missing or unparsable
// is root level (0).
func parentOf(opts Options) int {
	m, ok := opts.(Map)
	if !ok {
		return 0
	}
	v, ok := m.reserved(KeyParent)
	if !ok {
		return 0
	}
	id, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return id
}

func attrsOf(opts Options) Attributes {
	if m, ok := opts.(Map); ok {
		return ExtractAttr(m)
	}
	return Attributes{}
}
