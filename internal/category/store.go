package category

import (
	"fmt"

	"imposter_server/internal/domain"
)

// Store resolves category ids to word lists. Built-in categories come from
// the in-process catalog; custom categories are supplied per request by the
// client and only fill ids the catalog does not know.
type Store struct {
	builtin map[string]domain.Category
	order   []string // catalog listing order
}

// NewStore creates a store with the built-in catalog.
func NewStore() *Store {
	s := &Store{builtin: make(map[string]domain.Category, len(builtinCatalog))}
	for _, c := range builtinCatalog {
		s.builtin[c.ID] = c
		s.order = append(s.order, c.ID)
	}
	return s
}

// List returns the built-in catalog as id/name pairs, in catalog order.
// Word lists are intentionally not exposed here.
func (s *Store) List() []domain.CategorySummary {
	out := make([]domain.CategorySummary, 0, len(s.order))
	for _, id := range s.order {
		c := s.builtin[id]
		out = append(out, domain.CategorySummary{ID: c.ID, Name: c.Name})
	}
	return out
}

// Resolve maps every requested id to a full category. Unknown ids are looked
// up in the custom categories sent with the request; an id found in neither
// place fails with ErrCategoryNotFound.
func (s *Store) Resolve(categoryIDs []string, custom []domain.Category) (map[string]domain.Category, error) {
	customByID := make(map[string]domain.Category, len(custom))
	for _, c := range custom {
		customByID[c.ID] = c
	}

	resolved := make(map[string]domain.Category, len(categoryIDs))
	for _, id := range categoryIDs {
		if c, ok := s.builtin[id]; ok {
			resolved[id] = c
			continue
		}
		if c, ok := customByID[id]; ok {
			resolved[id] = c
			continue
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, id)
	}
	return resolved, nil
}
