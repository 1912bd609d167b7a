package parser

import (
	"github.com/funvibe/boolang/internal/ast"
	"github.com/funvibe/boolang/internal/diagnostics"
	"github.com/funvibe/boolang/internal/lexer"
	"github.com/funvibe/boolang/internal/symbols"
	"github.com/funvibe/boolang/internal/token"
)

// Parser turns one input line into a variable with an expression body.
// References to stored variables are resolved immediately by cloning
// their bodies (substituting actual arguments), so a parsed body never
// contains unresolved names.
type Parser struct {
	store *symbols.Store

	// current is the declaration being parsed; its parameters are in
	// scope for the body.
	current *symbols.Variable
}

func New(store *symbols.Store) *Parser {
	return &Parser{store: store}
}

// Parse consumes a trimmed, comment-stripped line holding a declaration
// (NAME := BODY, NAME(p1, ...) := BODY) or an anonymous body.
func (p *Parser) Parse(cur lexer.Cursor) (*symbols.Variable, error) {
	if err := lexer.CheckBracketBalance(cur); err != nil {
		return nil, err
	}

	var variable *symbols.Variable
	if index := lexer.FindSubAtZeroDepth(cur, token.Assignment); index >= 0 {
		parsed, err := p.parseDeclaration(cur.Left(index))
		if err != nil {
			return nil, err
		}
		variable = parsed
		cur = cur.Right(index + len(token.Assignment))
	} else {
		variable = symbols.NewUnnamed()
	}

	p.current = variable
	body, err := p.parseExpression(cur)
	p.current = nil
	if err != nil {
		return nil, err
	}

	variable.Body = body
	return variable, nil
}

func (p *Parser) parseDeclaration(cur lexer.Cursor) (*symbols.Variable, error) {
	var content lexer.BracketsContent
	name, err := content.Parse(cur.TrimRight())
	if err != nil {
		return nil, err
	}

	name = name.Trim()
	if err := lexer.CheckQualifier(name, "Variable name"); err != nil {
		return nil, err
	}
	if p.store.Find(name.String()) != nil {
		return nil, diagnostics.NewSemanticError(diagnostics.ErrS001, name.String())
	}

	variable := symbols.NewVariable(name.String())
	for {
		param, ok := content.NextPart()
		if !ok {
			break
		}
		param = param.Trim()
		if err := lexer.CheckQualifier(param, "Parameter name"); err != nil {
			return nil, err
		}
		if variable.FindParam(param.String()) >= 0 {
			return nil, diagnostics.NewSemanticError(diagnostics.ErrS003, param.String(), variable.Name)
		}
		variable.Params = append(variable.Params, param.String())
	}

	return variable, nil
}

func (p *Parser) parseExpression(cur lexer.Cursor) (ast.Expression, error) {
	cur = lexer.TrimBrackets(cur)
	if cur.Len() == 0 {
		return nil, diagnostics.NewParserError(diagnostics.ErrP001)
	}

	if expr, matched, err := p.parseOperation(cur); matched {
		return expr, err
	}
	if expr := parseLiteral(cur); expr != nil {
		return expr, nil
	}
	if expr, matched, err := p.parseParameterizedVariable(cur); matched {
		return expr, err
	}

	if err := lexer.CheckQualifier(cur, "Parameter or not parameterized variable name"); err != nil {
		return nil, err
	}

	if expr := p.parseParamRef(cur); expr != nil {
		return expr, nil
	}
	if expr, matched, err := p.parseZeroParamVariable(cur); matched {
		return expr, err
	}

	return nil, diagnostics.NewParserError(diagnostics.ErrP006, cur.String())
}

// parseOperation splits the cursor on the loosest-binding operator
// found at bracket depth zero. Operators are enumerated so that a
// larger tag means lower priority, which makes the split a single scan
// for the maximum tag.
func (p *Parser) parseOperation(cur lexer.Cursor) (ast.Expression, bool, error) {
	maxOp := token.OpNone

	balancer := lexer.NewBalancer()
	for i := 0; i < cur.Len(); i++ {
		wasBracket, err := balancer.ProcessChar(cur.At(i))
		if err != nil {
			return nil, true, err
		}
		if !wasBracket && balancer.Balance() == 0 {
			if op := token.StartsWithOp(cur.Right(i).String()); op > maxOp {
				maxOp = op
			}
		}
	}

	if maxOp == token.OpNone {
		return nil, false, nil
	}

	symbol := maxOp.Symbol()

	if maxOp == token.OpNegation {
		if !cur.StartsWith(symbol) {
			return nil, true, diagnostics.NewParserError(diagnostics.ErrP005, symbol)
		}
		child, err := p.parseExpression(cur.RemoveLeft(len(symbol)))
		if err != nil {
			return nil, true, err
		}
		return ast.NewNegation(child), true, nil
	}

	var children []ast.Expression

	balancer = lexer.NewBalancer()
	start := 0
	for i := 0; i < cur.Len(); {
		wasBracket, _ := balancer.ProcessChar(cur.At(i))
		if !wasBracket && balancer.Balance() == 0 && cur.Right(i).StartsWith(symbol) {
			child, err := p.parseExpression(cur[start:i])
			if err != nil {
				return nil, true, err
			}
			children = append(children, child)
			i += len(symbol)
			start = i
			continue
		}
		i++
	}

	last, err := p.parseExpression(cur.Right(start))
	if err != nil {
		return nil, true, err
	}
	children = append(children, last)

	return ast.NewOperation(maxOp, children), true, nil
}

func parseLiteral(cur lexer.Cursor) ast.Expression {
	if value, ok := token.ParseLiteral(cur.String()); ok {
		return ast.NewLiteral(value)
	}
	return nil
}

// parseParameterizedVariable resolves NAME(actual1, ...) by cloning the
// referenced variable's body with the actuals substituted for its
// parameters.
func (p *Parser) parseParameterizedVariable(cur lexer.Cursor) (ast.Expression, bool, error) {
	var content lexer.BracketsContent
	name, err := content.Parse(cur)
	if err != nil {
		return nil, true, err
	}
	if name.Len() == cur.Len() {
		// No bracket: not this form.
		return nil, false, nil
	}

	name = name.Trim()
	if err := lexer.CheckQualifier(name, "Variable name"); err != nil {
		return nil, true, err
	}

	variable := p.store.Find(name.String())
	if variable == nil {
		return nil, true, diagnostics.NewSemanticError(diagnostics.ErrS002, name.String())
	}

	var actuals []ast.Expression
	for {
		part, ok := content.NextPart()
		if !ok {
			break
		}
		actual, err := p.parseExpression(part)
		if err != nil {
			return nil, true, err
		}
		actuals = append(actuals, actual)
	}

	if len(actuals) != variable.ParamCount() {
		return nil, true, diagnostics.NewSemanticError(
			diagnostics.ErrS004, variable.Name, variable.ParamCount(), len(actuals))
	}

	return variable.Body.CloneSubstituting(actuals), true, nil
}

func (p *Parser) parseParamRef(cur lexer.Cursor) ast.Expression {
	index := p.current.FindParam(cur.String())
	if index == -1 {
		return nil
	}
	return ast.NewParamRef(cur.String(), index)
}

func (p *Parser) parseZeroParamVariable(cur lexer.Cursor) (ast.Expression, bool, error) {
	variable := p.store.Find(cur.String())
	if variable == nil {
		return nil, false, nil
	}
	if variable.ParamCount() > 0 {
		return nil, true, diagnostics.NewSemanticError(diagnostics.ErrS005, variable.Name)
	}
	return variable.Body.Clone(), true, nil
}
