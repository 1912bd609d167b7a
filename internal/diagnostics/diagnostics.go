package diagnostics

import "fmt"

// Phase represents the processing phase where an error occurred.
type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseSemantic Phase = "semantic"
	PhaseRuntime  Phase = "runtime"
)

type ErrorCode string

const (
	// Lexical errors
	ErrL001 ErrorCode = "L001" // Closing bracket before an opening one
	ErrL002 ErrorCode = "L002" // Closing bracket is missing
	ErrL003 ErrorCode = "L003" // Extra characters after closing bracket

	// Parser errors
	ErrP001 ErrorCode = "P001" // Empty expression
	ErrP002 ErrorCode = "P002" // Empty qualifier
	ErrP003 ErrorCode = "P003" // Not a qualifier
	ErrP004 ErrorCode = "P004" // Reserved word used as qualifier
	ErrP005 ErrorCode = "P005" // Incorrect usage of unary operation
	ErrP006 ErrorCode = "P006" // Undefined parameter or variable name

	// Semantic errors
	ErrS001 ErrorCode = "S001" // Variable already declared
	ErrS002 ErrorCode = "S002" // Usage of undefined variable
	ErrS003 ErrorCode = "S003" // Duplicate parameter in declaration
	ErrS004 ErrorCode = "S004" // Wrong argument count for variable usage
	ErrS005 ErrorCode = "S005" // Parameters missing for parameterized variable
	ErrS006 ErrorCode = "S006" // Call of undefined function
	ErrS007 ErrorCode = "S007" // Wrong argument count for function call
	ErrS008 ErrorCode = "S008" // Function argument must name an existing variable
	ErrS009 ErrorCode = "S009" // Function argument must not name an existing variable
	ErrS010 ErrorCode = "S010" // Function requires at least one argument
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "Closing bracket can't be before an opening one.",
	ErrL002: "Closing bracket is missing.",
	ErrL003: "Extra characters are detected after closing bracket.",
	ErrP001: "Empty expression is not allowed.",
	ErrP002: "%s can't be empty.",
	ErrP003: "%s '%s' is not a qualifier.",
	ErrP004: "%s '%s' can't be reserved word.",
	ErrP005: "Incorrect usage of unary operation '%s'.",
	ErrP006: "Usage of undefined parameter or not parameterized variable name '%s'.",
	ErrS001: "Variable '%s' is already declared.",
	ErrS002: "Usage of undefined variable '%s'.",
	ErrS003: "Duplicate parameter '%s' occured in declaration of variable '%s'.",
	ErrS004: "Incorrect amount of parameters during usage of variable '%s'. Expected amount - %d, actual amount - %d.",
	ErrS005: "Parameters are missing during usage of variable '%s'.",
	ErrS006: "Call of undefined function '%s'.",
	ErrS007: "Incorrect amount of parameters during call of function '%s'. Expected amount - %d, actual amount - %d.",
	ErrS008: "Parameter '%s' of function '%s' must be an existing variable name.",
	ErrS009: "Parameter '%s' of function '%s' must not be an existing variable name.",
	ErrS010: "Function '%s' can't have empty list of parameters.",
}

// DiagnosticError is the single error type crossing package boundaries.
// The message alone is user-facing; code and phase feed logs and tests.
type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Args  []any
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}
	return fmt.Sprintf(template, e.Args...)
}

func NewError(phase Phase, code ErrorCode, args ...any) *DiagnosticError {
	return &DiagnosticError{
		Code:  code,
		Phase: phase,
		Args:  args,
	}
}

func NewLexerError(code ErrorCode, args ...any) *DiagnosticError {
	return NewError(PhaseLexer, code, args...)
}

func NewParserError(code ErrorCode, args ...any) *DiagnosticError {
	return NewError(PhaseParser, code, args...)
}

func NewSemanticError(code ErrorCode, args ...any) *DiagnosticError {
	return NewError(PhaseSemantic, code, args...)
}
