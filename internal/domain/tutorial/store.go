package tutorial

import (
	"errors"
	"fmt"
	"strings"
)

// categoryTable is one category's records in display order.
type categoryTable struct {
	meta    Category
	records []CommandRecord
}

// Store is an immutable, ordered lookup table of command tutorials.
type Store struct {
	tables []categoryTable
	index  map[CategoryID]map[string]int
}

// NewStore builds a store from ordered category tables and validates it.
func NewStore(tables ...categoryTable) (*Store, error) {
	s := &Store{
		tables: tables,
		index:  make(map[CategoryID]map[string]int, len(tables)),
	}
	for _, t := range tables {
		byName := make(map[string]int, len(t.records))
		for i, r := range t.records {
			byName[r.Name] = i
		}
		s.index[t.meta.ID] = byName
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// MustNewStore is like NewStore but panics on invalid content.
func MustNewStore(tables ...categoryTable) *Store {
	s, err := NewStore(tables...)
	if err != nil {
		panic(fmt.Sprintf("tutorial: invalid content: %v", err))
	}
	return s
}

// Default returns the store holding the built-in tutorials.
func Default() *Store {
	return MustNewStore(basicTable(), networkTable(), systemTable())
}

// Categories returns category metadata in menu order.
func (s *Store) Categories() []Category {
	out := make([]Category, len(s.tables))
	for i, t := range s.tables {
		out[i] = t.meta
	}
	return out
}

// Category returns the metadata for id.
func (s *Store) Category(id CategoryID) (Category, error) {
	t, ok := s.table(id)
	if !ok {
		return Category{}, &NotFoundError{Category: id}
	}
	return t.meta, nil
}

// ListCategory returns the records of a category in table order.
func (s *Store) ListCategory(id CategoryID) ([]CommandRecord, error) {
	t, ok := s.table(id)
	if !ok {
		return nil, &NotFoundError{Category: id}
	}
	out := make([]CommandRecord, len(t.records))
	for i, r := range t.records {
		out[i] = r.clone()
	}
	return out, nil
}

// Lookup returns the record for name within a category.
func (s *Store) Lookup(id CategoryID, name string) (CommandRecord, error) {
	t, ok := s.table(id)
	if !ok {
		return CommandRecord{}, &NotFoundError{Category: id, Command: name}
	}
	i, ok := s.index[id][name]
	if !ok {
		return CommandRecord{}, &NotFoundError{Category: id, Command: name}
	}
	return t.records[i].clone(), nil
}

// Validate checks that every record is complete and names are unique per category.
func (s *Store) Validate() error {
	var errs []error
	seenCategory := make(map[CategoryID]bool, len(s.tables))
	for _, t := range s.tables {
		if t.meta.ID == "" || t.meta.Title == "" {
			errs = append(errs, fmt.Errorf("category %q: missing id or title", t.meta.ID))
		}
		if seenCategory[t.meta.ID] {
			errs = append(errs, fmt.Errorf("category %q: duplicated", t.meta.ID))
		}
		seenCategory[t.meta.ID] = true
		if len(t.records) == 0 {
			errs = append(errs, fmt.Errorf("category %q: no commands", t.meta.ID))
		}

		seen := make(map[string]bool, len(t.records))
		for _, r := range t.records {
			if seen[r.Name] {
				errs = append(errs, fmt.Errorf("category %q: duplicate command %q", t.meta.ID, r.Name))
			}
			seen[r.Name] = true
			errs = append(errs, validateRecord(t.meta.ID, r)...)
		}
	}
	return errors.Join(errs...)
}

func validateRecord(id CategoryID, r CommandRecord) []error {
	var errs []error
	fields := []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"category", r.Category},
		{"description", r.Description},
		{"explanation", r.Explanation},
		{"tip", r.Tip},
		{"safety", r.Safety},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%s/%s: empty %s", id, r.Name, f.name))
		}
	}
	if len(r.Examples) == 0 {
		errs = append(errs, fmt.Errorf("%s/%s: no examples", id, r.Name))
	}
	for i, ex := range r.Examples {
		if ex.Command == "" {
			errs = append(errs, fmt.Errorf("%s/%s: example %d has no command", id, r.Name, i))
		}
	}
	return errs
}

func (s *Store) table(id CategoryID) (categoryTable, bool) {
	for _, t := range s.tables {
		if t.meta.ID == id {
			return t, true
		}
	}
	return categoryTable{}, false
}
