package menu

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Kind is the outer element type a menu renders as.
type Kind string

const (
	// UL renders an unordered list of li elements.
	UL Kind = "ul"

	// OL renders an ordered list of li elements.
	OL Kind = "ol"

	// Div renders nested div elements.
	Div Kind = "div"
)

var tagName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// Validate returns ErrInvalidKind unless k is usable as a tag name.
func (k Kind) Validate() error {
	if !tagName.MatchString(string(k)) {
		return fmt.Errorf("%w: %q", ErrInvalidKind, string(k))
	}
	return nil
}

// element is the tag each item is wrapped in.
func (k Kind) element() string {
	switch k {
	case UL, OL:
		return "li"
	default:
		return string(k)
	}
}

// Render serializes the items below parentID, without the outer kind element.
// Children are nested in a kind element inside their parent's wrapper.
// Returns an empty string when nothing sits below parentID.
func (b *Builder) Render(kind Kind, parentID int) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}

	b.mu.RLock()
	r := &renderer{
		kind:     kind,
		element:  kind.element(),
		children: b.childIndex(),
		visited:  map[int]bool{parentID: true},
	}
	b.mu.RUnlock()

	if err := r.write(parentID); err != nil {
		return "", err
	}
	return r.sb.String(), nil
}

// AsUl returns the whole menu wrapped in a ul element.
func (b *Builder) AsUl(attrs Attributes) (string, error) {
	return b.wrap(UL, attrs)
}

// AsOl returns the whole menu wrapped in an ol element.
func (b *Builder) AsOl(attrs Attributes) (string, error) {
	return b.wrap(OL, attrs)
}

// AsDiv returns the whole menu wrapped in a div element.
func (b *Builder) AsDiv(attrs Attributes) (string, error) {
	return b.wrap(Div, attrs)
}

// As returns the whole menu wrapped in an element of the given kind.
func (b *Builder) As(kind Kind, attrs Attributes) (string, error) {
	return b.wrap(kind, attrs)
}

func (b *Builder) wrap(kind Kind, attrs Attributes) (string, error) {
	inner, err := b.Render(kind, 0)
	if err != nil {
		return "", err
	}
	return "<" + string(kind) + ParseAttr(attrs) + ">" + inner + "</" + string(kind) + ">", nil
}

// childIndex maps each parent id to its children in insertion order.
// Caller must hold the read lock.
func (b *Builder) childIndex() map[int][]Item {
	idx := make(map[int][]Item, len(b.order))
	for _, id := range b.order {
		it := b.items[id]
		idx[it.parentID] = append(idx[it.parentID], it)
	}
	return idx
}

type renderer struct {
	kind     Kind
	element  string
	children map[int][]Item
	visited  map[int]bool
	sb       strings.Builder
}

func (r *renderer) write(parentID int) error {
	for _, it := range r.children[parentID] {
		if r.visited[it.id] {
			return &CycleError{ItemID: it.id}
		}
		r.visited[it.id] = true

		r.sb.WriteString("\n<" + r.element + ParseAttr(it.attributes) + ">")
		r.sb.WriteString(`<a href="` + html.EscapeString(it.link.URL) + `"` + ParseAttr(it.link.Attributes) + ">")
		r.sb.WriteString(html.EscapeString(it.link.Text))
		r.sb.WriteString("</a>")

		if len(r.children[it.id]) > 0 {
			r.sb.WriteString("<" + string(r.kind) + ">")
			if err := r.write(it.id); err != nil {
				return err
			}
			r.sb.WriteString("</" + string(r.kind) + ">")
		}

		r.sb.WriteString("</" + r.element + ">")
	}
	return nil
}

// Node is an item together with its resolved children.
type Node struct {
	ID         int        `json:"id"`
	ParentID   int        `json:"parent_id,omitempty"`
	Link       Link       `json:"link"`
	Attributes Attributes `json:"attributes,omitempty"`
	Items      []Node     `json:"items,omitempty"`
}

// Tree returns the menu as explicit nested nodes starting at the root level.
// Items that cannot be reached from the root are left out.
func (b *Builder) Tree() []Node {
	b.mu.RLock()
	idx := b.childIndex()
	b.mu.RUnlock()

	return buildNodes(idx, 0)
}

func buildNodes(idx map[int][]Item, parentID int) []Node {
	items := idx[parentID]
	if len(items) == 0 {
		return nil
	}

	nodes := make([]Node, 0, len(items))
	for _, it := range items {
		nodes = append(nodes, Node{
			ID:         it.id,
			ParentID:   it.parentID,
			Link:       it.Link(),
			Attributes: it.Attributes(),
			Items:      buildNodes(idx, it.id),
		})
	}
	return nodes
}
