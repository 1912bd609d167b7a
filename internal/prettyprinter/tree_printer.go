package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/boolang/internal/ast"
	"github.com/funvibe/boolang/internal/symbols"
	"github.com/funvibe/boolang/internal/token"
)

// --- Tree Printer (Output looks like a tree structure) ---
//
// Debug view of an expression tree, used by tests and by embedders
// inspecting what the parser produced.

type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *TreePrinter) writeIndent() {
	p.write(strings.Repeat("  ", p.indent))
}

// PrintVariable dumps a variable's declaration, identity and body tree.
func (p *TreePrinter) PrintVariable(v *symbols.Variable) {
	p.writeIndent()
	if v.Name == "" {
		p.write(fmt.Sprintf("Variable: <unnamed> id=%s\n", v.ID))
	} else {
		p.write(fmt.Sprintf("Variable: %s id=%s\n", v.Declaration.String(), v.ID))
	}
	p.indent++
	p.PrintExpression(v.Body)
	p.indent--
}

func (p *TreePrinter) PrintExpression(expr ast.Expression) {
	switch node := expr.(type) {
	case *ast.Literal:
		p.writeIndent()
		p.write("Literal: " + token.LiteralString(node.Value) + "\n")

	case *ast.ParamRef:
		p.writeIndent()
		p.write(fmt.Sprintf("ParamRef: %s (index %d)\n", node.Name, node.Index))

	case *ast.Operation:
		p.writeIndent()
		p.write("Operation: " + node.Op.Symbol() + "\n")
		p.indent++
		for _, child := range node.Children {
			p.PrintExpression(child)
		}
		p.indent--
	}
}
