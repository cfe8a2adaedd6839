package catalog

import "slices"

// Store holds the authoritative catalog and the derived view shown to the user.
// Every entry of the view points at an entry of the authoritative list; the
// store never copies or edits a Product after Load.
//
// Store is not safe for concurrent use. Callers serialize access the same way
// they serialize UI events.
type Store struct {
	all  []*Product
	view []*Product
}

func NewStore() *Store {
	return &Store{}
}

// Load replaces the catalog with items. The view starts as a copy of the new
// list in its original order.
func (s *Store) Load(items []Product) {
	owned := slices.Clone(items)
	all := make([]*Product, len(owned))
	for i := range owned {
		all[i] = &owned[i]
	}

	s.all = all
	s.view = slices.Clone(all)
}

func (s *Store) All() []*Product {
	return slices.Clone(s.all)
}

func (s *Store) CurrentView() []*Product {
	return slices.Clone(s.view)
}

func (s *Store) Count() int {
	return len(s.view)
}

func (s *Store) Loaded() bool {
	return s.all != nil
}

func (s *Store) Sort(key SortKey) {
	Sort(s.view, key)
}
