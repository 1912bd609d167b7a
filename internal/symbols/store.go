package symbols

import (
	"github.com/funvibe/boolang/internal/diagnostics"
)

// Store maps non-empty names to variables. Iteration follows insertion
// order so that display_all output is deterministic for the user.
type Store struct {
	variables map[string]*Variable
	order     []string
}

func NewStore() *Store {
	return &Store{
		variables: make(map[string]*Variable),
	}
}

// Insert transfers ownership of variable into the store. The name must
// be fresh.
func (s *Store) Insert(variable *Variable) error {
	if _, exists := s.variables[variable.Name]; exists {
		return diagnostics.NewSemanticError(diagnostics.ErrS001, variable.Name)
	}
	s.variables[variable.Name] = variable
	s.order = append(s.order, variable.Name)
	return nil
}

// Find returns the named variable, or nil.
func (s *Store) Find(name string) *Variable {
	return s.variables[name]
}

// Remove deletes the named variable; absence is an error.
func (s *Store) Remove(name string) error {
	if _, exists := s.variables[name]; !exists {
		return diagnostics.NewSemanticError(diagnostics.ErrS002, name)
	}
	delete(s.variables, name)
	for i, stored := range s.order {
		if stored == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) RemoveAll() {
	s.variables = make(map[string]*Variable)
	s.order = nil
}

func (s *Store) Len() int {
	return len(s.order)
}

// All yields the variables in insertion order.
func (s *Store) All() []*Variable {
	variables := make([]*Variable, 0, len(s.order))
	for _, name := range s.order {
		variables = append(variables, s.variables[name])
	}
	return variables
}
