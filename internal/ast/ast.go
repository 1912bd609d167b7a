package ast

import (
	"strings"

	"github.com/funvibe/boolang/internal/token"
)

// Kind discriminates the three expression variants.
type Kind int

const (
	KindLiteral Kind = iota
	KindParamRef
	KindOperation
)

// Expression is a node of a boolean expression tree. Subtrees are
// exclusively owned by their parent; Clone and CloneSubstituting always
// produce deep copies.
type Expression interface {
	Kind() Kind
	// Clone deep-copies the subtree as is.
	Clone() Expression
	// CloneSubstituting deep-copies the subtree, replacing every
	// ParamRef with a clone of actuals[ref.Index]. The caller
	// guarantees len(actuals) covers every index in the subtree.
	CloneSubstituting(actuals []Expression) Expression
	// Equal is structural equality. Commutative operations compare
	// children in order; canonical ordering is the normalizer's job,
	// not equality's.
	Equal(rhs Expression) bool
	String() string
}

// Literal is a boolean constant.
type Literal struct {
	Value bool
}

func NewLiteral(value bool) *Literal {
	return &Literal{Value: value}
}

func (l *Literal) Kind() Kind { return KindLiteral }

func (l *Literal) Clone() Expression {
	return &Literal{Value: l.Value}
}

func (l *Literal) CloneSubstituting([]Expression) Expression {
	return l.Clone()
}

func (l *Literal) Equal(rhs Expression) bool {
	other, ok := rhs.(*Literal)
	return ok && l.Value == other.Value
}

func (l *Literal) String() string {
	return token.LiteralString(l.Value)
}

// ParamRef refers to one parameter of the declaration whose body holds
// it. The index is the identity; the name is carried inline purely for
// printing.
type ParamRef struct {
	Name  string
	Index int
}

func NewParamRef(name string, index int) *ParamRef {
	return &ParamRef{Name: name, Index: index}
}

func (p *ParamRef) Kind() Kind { return KindParamRef }

func (p *ParamRef) Clone() Expression {
	return &ParamRef{Name: p.Name, Index: p.Index}
}

func (p *ParamRef) CloneSubstituting(actuals []Expression) Expression {
	return actuals[p.Index].Clone()
}

func (p *ParamRef) Equal(rhs Expression) bool {
	other, ok := rhs.(*ParamRef)
	return ok && p.Index == other.Index
}

func (p *ParamRef) String() string {
	return p.Name
}

// Operation is an operator applied to an ordered child list. Negation
// has exactly one child, every other operator two or more. Rewrites
// that would leave a single child promote that child in place of the
// node instead.
type Operation struct {
	Op       token.Op
	Children []Expression
}

// NewNegation wraps child in a Negation node.
func NewNegation(child Expression) *Operation {
	return &Operation{Op: token.OpNegation, Children: []Expression{child}}
}

func NewOperation(op token.Op, children []Expression) *Operation {
	return &Operation{Op: op, Children: children}
}

func (o *Operation) Kind() Kind { return KindOperation }

func (o *Operation) Clone() Expression {
	children := make([]Expression, len(o.Children))
	for i, child := range o.Children {
		children[i] = child.Clone()
	}
	return &Operation{Op: o.Op, Children: children}
}

func (o *Operation) CloneSubstituting(actuals []Expression) Expression {
	children := make([]Expression, len(o.Children))
	for i, child := range o.Children {
		children[i] = child.CloneSubstituting(actuals)
	}
	return &Operation{Op: o.Op, Children: children}
}

func (o *Operation) Equal(rhs Expression) bool {
	other, ok := rhs.(*Operation)
	if !ok || o.Op != other.Op || len(o.Children) != len(other.Children) {
		return false
	}
	for i, child := range o.Children {
		if !child.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

func (o *Operation) String() string {
	if o.Op == token.OpNegation {
		return "!(" + o.Children[0].String() + ")"
	}

	var sb strings.Builder
	sb.WriteByte('(')
	for i, child := range o.Children {
		if i > 0 {
			sb.WriteByte(' ')
			sb.WriteString(o.Op.Symbol())
			sb.WriteByte(' ')
		}
		sb.WriteString(child.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (o *Operation) ChildCount() int {
	return len(o.Children)
}

func (o *Operation) InsertChildren(index int, children []Expression) {
	o.Children = append(o.Children[:index], append(children, o.Children[index:]...)...)
}

func (o *Operation) RemoveChild(index int) {
	o.Children = append(o.Children[:index], o.Children[index+1:]...)
}

// RemoveChildren drops children in [from, to).
func (o *Operation) RemoveChildren(from, to int) {
	o.Children = append(o.Children[:from], o.Children[to:]...)
}

/////// Tag helpers ///////

// OpOf returns the node's operator, or OpNone for non-operations.
func OpOf(e Expression) token.Op {
	if op, ok := e.(*Operation); ok {
		return op.Op
	}
	return token.OpNone
}

// LiteralOf returns the literal value held by e, if any.
func LiteralOf(e Expression) (bool, bool) {
	if lit, ok := e.(*Literal); ok {
		return lit.Value, true
	}
	return false, false
}

// IsLiteral reports whether e is a literal with the given value.
func IsLiteral(e Expression, value bool) bool {
	v, ok := LiteralOf(e)
	return ok && v == value
}
