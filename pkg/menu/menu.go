package menu

import "sync"

// Builder owns a flat collection of menu items and renders it as a tree.
// Items reference their parent by id; the hierarchy is resolved at render time.
// A Builder is safe for concurrent use.
type Builder struct {
	mu       sync.RWMutex
	order    []int
	items    map[int]Item
	lastID   int
	filtered []Item
}

// New returns an empty menu builder.
func New() *Builder {
	return &Builder{
		items: map[int]Item{},
	}
}

// AddNewItem creates an item from title and opts and adds it to the menu.
func (b *Builder) AddNewItem(title string, opts Options) Item {
	return b.AddItem(NewItem(title, GetURL(opts), attrsOf(opts), parentOf(opts)))
}

// AddItem stores a copy of item under the next id and returns it.
// Any id the item already carried is replaced so the collection stays the
// only source of identity.
func (b *Builder) AddItem(item Item) Item {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ensure()
	item.id = b.nextID()
	b.items[item.id] = item
	b.order = append(b.order, item.id)

	return item
}

// NextID advances the id counter and returns the new value.
func (b *Builder) NextID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nextID()
}

func (b *Builder) nextID() int {
	b.lastID++
	return b.lastID
}

// LastID returns the most recently generated id without advancing it.
func (b *Builder) LastID() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastID
}

// Len returns the number of items in the menu.
func (b *Builder) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}

// Get returns the item stored under id.
func (b *Builder) Get(id int) (Item, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	it, ok := b.items[id]
	return it, ok
}

// Items returns all items in insertion order.
func (b *Builder) Items() []Item {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.all()
}

func (b *Builder) all() []Item {
	out := make([]Item, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.items[id])
	}
	return out
}

// Roots returns the root level items. Same as WhereParent(0).
func (b *Builder) Roots() []Item {
	return b.WhereParent(0)
}

// WhereParent returns the items whose parent is parentID, in insertion order.
// Root items (no parent) match parentID 0.
func (b *Builder) WhereParent(parentID int) []Item {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := []Item{}
	for _, id := range b.order {
		if it := b.items[id]; it.parentID == parentID {
			out = append(out, it)
		}
	}
	return out
}

// HasChildren reports whether any item names id as its parent.
func (b *Builder) HasChildren(id int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, it := range b.items {
		if it.parentID == id {
			return true
		}
	}
	return false
}

// ClearFilter resets the filtered view to every item in the menu.
func (b *Builder) ClearFilter() *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filtered = b.all()
	return b
}

// Filter replaces the filtered view with the items matching keep.
// A nil keep leaves the view untouched. Rendering is not affected.
func (b *Builder) Filter(keep func(Item) bool) *Builder {
	if keep == nil {
		return b
	}

	// keep runs unlocked so it may call back into the builder.
	b.mu.RLock()
	items := b.all()
	b.mu.RUnlock()

	out := []Item{}
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}

	b.mu.Lock()
	b.filtered = out
	b.mu.Unlock()
	return b
}

// Filtered returns a copy of the filtered view.
func (b *Builder) Filtered() []Item {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Item, len(b.filtered))
	copy(out, b.filtered)
	return out
}

// Reset drops every item, the filtered view and the id counter.
func (b *Builder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = map[int]Item{}
	b.order = nil
	b.filtered = nil
	b.lastID = 0
}

// ensure lazily initializes a zero value Builder.
func (b *Builder) ensure() {
	if b.items == nil {
		b.items = map[int]Item{}
	}
}
