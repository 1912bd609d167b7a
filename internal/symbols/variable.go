package symbols

import (
	"strings"

	"github.com/google/uuid"
	"github.com/funvibe/boolang/internal/ast"
)

// Declaration is a variable's header: a (possibly empty) name plus an
// ordered list of unique parameter names. An empty name marks the
// unnamed variable created for a bare expression line.
type Declaration struct {
	Name   string
	Params []string
}

// FindParam returns the zero-based index of the named parameter, or -1.
func (d *Declaration) FindParam(name string) int {
	for i, param := range d.Params {
		if param == name {
			return i
		}
	}
	return -1
}

func (d *Declaration) ParamCount() int {
	return len(d.Params)
}

func (d *Declaration) String() string {
	if d.Name == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(d.Name)
	if len(d.Params) > 0 {
		sb.WriteByte('(')
		sb.WriteString(strings.Join(d.Params, ", "))
		sb.WriteByte(')')
	}
	return sb.String()
}

// Variable is a declaration plus the expression tree it owns. The ID is
// a stable identity assigned at creation; copies get a fresh one.
type Variable struct {
	Declaration
	ID   uuid.UUID
	Body ast.Expression
}

// NewVariable creates a named variable without a body yet.
func NewVariable(name string) *Variable {
	return &Variable{
		Declaration: Declaration{Name: name},
		ID:          uuid.New(),
	}
}

// NewUnnamed creates the throwaway variable for a bare expression line.
func NewUnnamed() *Variable {
	return &Variable{ID: uuid.New()}
}

// Copy creates an independent variable under a new name: same parameter
// list, deep-cloned body, fresh identity.
func (v *Variable) Copy(name string) *Variable {
	copied := NewVariable(name)
	copied.Params = append([]string(nil), v.Params...)
	copied.Body = v.Body.Clone()
	return copied
}

func (v *Variable) String() string {
	if v.Name == "" {
		return v.Body.String()
	}
	return v.Declaration.String() + " := " + v.Body.String()
}
