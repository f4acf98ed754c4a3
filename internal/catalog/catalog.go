package catalog

import "github.com/shopspring/decimal"

// MenuItem is a single orderable item. Items are immutable; the store is
// seeded once at startup and only read afterwards.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Rating      float64
	Category    string
	IsPopular   bool
	Tags        []string
}

// HasTag reports whether the item carries the given dietary tag.
func (m MenuItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Category is a menu tab with its display name.
type Category struct {
	ID   string
	Name string
}

// Store holds the static catalog. Read-only after construction, so it is
// safe for concurrent use without locking.
type Store struct {
	items      []MenuItem
	byID       map[string]MenuItem
	categories []Category
}

func NewStore(items []MenuItem, categories []Category) *Store {
	byID := make(map[string]MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Store{items: items, byID: byID, categories: categories}
}

// List returns all items in catalog order.
func (s *Store) List() []MenuItem {
	out := make([]MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

// Get looks up an item by ID.
func (s *Store) Get(id string) (MenuItem, bool) {
	item, ok := s.byID[id]
	return item, ok
}

// Categories returns the menu tabs, "all" first.
func (s *Store) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Popular returns the items flagged as popular, in catalog order.
func (s *Store) Popular() []MenuItem {
	var out []MenuItem
	for _, item := range s.items {
		if item.IsPopular {
			out = append(out, item)
		}
	}
	return out
}
