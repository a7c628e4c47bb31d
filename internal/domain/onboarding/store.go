package onboarding

import (
	"fmt"
	"slices"
	"sync"
)

type record struct {
	mu      sync.Mutex
	emp     Employee
	removed bool
}

// Store keeps employee records in memory in insertion order.
type Store struct {
	mu      sync.RWMutex
	records map[string]*record
	order   []string
}

func NewStore() *Store {
	return &Store{records: make(map[string]*record)}
}

func (s *Store) Insert(emp Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[emp.Name]; ok {
		return fmt.Errorf("employee %q: %w", emp.Name, ErrDuplicateName)
	}
	s.records[emp.Name] = &record{emp: emp.clone()}
	s.order = append(s.order, emp.Name)
	return nil
}

func (s *Store) Remove(name string) error {
	s.mu.Lock()
	rec, ok := s.records[name]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("employee %q: %w", name, ErrNotFound)
	}
	delete(s.records, name)
	if i := slices.Index(s.order, name); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	s.mu.Unlock()

	// Wait for any in-flight mutation before marking the record dead.
	rec.mu.Lock()
	rec.removed = true
	rec.mu.Unlock()
	return nil
}

func (s *Store) Get(name string) (Employee, error) {
	rec, err := s.lookup(name)
	if err != nil {
		return Employee{}, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.removed {
		return Employee{}, fmt.Errorf("employee %q: %w", name, ErrNotFound)
	}
	return rec.emp.clone(), nil
}

func (s *Store) List() []Employee {
	s.mu.RLock()
	recs := make([]*record, 0, len(s.order))
	for _, name := range s.order {
		recs = append(recs, s.records[name])
	}
	s.mu.RUnlock()

	out := make([]Employee, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		if !rec.removed {
			out = append(out, rec.emp.clone())
		}
		rec.mu.Unlock()
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Update runs fn against a copy of the record under the record lock. The copy
// replaces the stored record only when fn succeeds, so a failed operation
// leaves no trace.
func (s *Store) Update(name string, fn func(*Employee) error) (Employee, error) {
	rec, err := s.lookup(name)
	if err != nil {
		return Employee{}, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.removed {
		return Employee{}, fmt.Errorf("employee %q: %w", name, ErrNotFound)
	}

	next := rec.emp.clone()
	if err := fn(&next); err != nil {
		return Employee{}, err
	}
	next.Version = rec.emp.Version + 1
	rec.emp = next
	return next.clone(), nil
}

func (s *Store) lookup(name string) (*record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[name]
	if !ok {
		return nil, fmt.Errorf("employee %q: %w", name, ErrNotFound)
	}
	return rec, nil
}
