package menu

// Link is the anchor rendered for a menu item.
type Link struct {
	// Text is the anchor content.
	Text string `json:"text"`

	// URL is the anchor href.
	URL string `json:"url"`

	// Attributes are applied to the anchor itself.
	Attributes Attributes `json:"attributes,omitempty"`
}

// Item represents one menu entry. The id is assigned by the Builder the item
// is added to; an Item is never modified after that.
type Item struct {
	id         int
	parentID   int
	link       Link
	attributes Attributes
}

// NewItem creates an item that has not been added to a menu yet.
// A parentID of 0 places it at the root level.
func NewItem(title, url string, attrs Attributes, parentID int) Item {
	return Item{
		parentID:   parentID,
		link:       Link{Text: title, URL: url, Attributes: Attributes{}},
		attributes: attrs.clone(),
	}
}

// WithLinkAttributes returns a copy of the item with the anchor attributes set.
func (i Item) WithLinkAttributes(attrs Attributes) Item {
	i.link.Attributes = attrs.clone()
	return i
}

// ID returns the id assigned by the owning builder, 0 if none.
func (i Item) ID() int { return i.id }

// ParentID returns the parent item id, 0 for root level items.
func (i Item) ParentID() int { return i.parentID }

// IsRoot reports whether the item sits at the root level.
func (i Item) IsRoot() bool { return i.parentID == 0 }

// Link returns a copy of the item's anchor.
func (i Item) Link() Link {
	l := i.link
	l.Attributes = l.Attributes.clone()
	return l
}

// Attributes returns a copy of the wrapping element attributes.
func (i Item) Attributes() Attributes {
	return i.attributes.clone()
}
