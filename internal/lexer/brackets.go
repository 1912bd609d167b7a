package lexer

import (
	"strings"

	"github.com/funvibe/boolang/internal/diagnostics"
)

const (
	charBracketOpened = '('
	charBracketClosed = ')'
	charComma         = ','
)

// BracketsBalancer is a stream machine fed one character at a time. It
// keeps the running bracket depth and the number of leading-'('
// trailing-')' pairs that wrap the whole scanned text and may be peeled
// off without changing grouping.
type BracketsBalancer struct {
	balance       int
	possibleTrims int
}

func NewBalancer() *BracketsBalancer {
	return &BracketsBalancer{possibleTrims: -1}
}

// ProcessChar reports whether ch was a bracket. The depth drops below
// zero only on malformed input, which is reported immediately.
func (b *BracketsBalancer) ProcessChar(ch byte) (bool, error) {
	switch ch {
	case charBracketOpened:
		// Leading opening brackets are skipped by the -1 guard; the
		// candidate count only shrinks once a closing bracket was seen.
		if b.possibleTrims >= 0 && b.balance < b.possibleTrims {
			b.possibleTrims = b.balance
		}
		b.balance++
	case charBracketClosed:
		if b.possibleTrims == -1 {
			b.possibleTrims = b.balance
		}
		b.balance--
		if b.balance < 0 {
			return true, diagnostics.NewLexerError(diagnostics.ErrL001)
		}
	default:
		return false, nil
	}
	return true, nil
}

// ProcessEnding verifies that every opened bracket was closed.
func (b *BracketsBalancer) ProcessEnding() error {
	if b.balance != 0 {
		return diagnostics.NewLexerError(diagnostics.ErrL002)
	}
	return nil
}

func (b *BracketsBalancer) Balance() int {
	return b.balance
}

func (b *BracketsBalancer) PossibleTrims() int {
	return b.possibleTrims
}

// CheckBracketBalance scans the whole cursor for balance.
func CheckBracketBalance(c Cursor) error {
	balancer := NewBalancer()
	for i := 0; i < c.Len(); i++ {
		if _, err := balancer.ProcessChar(c.At(i)); err != nil {
			return err
		}
	}
	return balancer.ProcessEnding()
}

func possibleTrims(c Cursor) int {
	balancer := NewBalancer()
	for i := 0; i < c.Len(); i++ {
		// Balance errors are caught by CheckBracketBalance up front.
		if _, err := balancer.ProcessChar(c.At(i)); err != nil {
			return 0
		}
	}
	return balancer.PossibleTrims()
}

// TrimBrackets peels the bracket pairs wrapping the whole expression
// and re-trims whitespace after each peel.
func TrimBrackets(c Cursor) Cursor {
	c = c.Trim()

	for trims := possibleTrims(c); trims > 0; trims-- {
		if c.Len() > 1 && c.At(0) == charBracketOpened && c.At(c.Len()-1) == charBracketClosed {
			c = c.RemoveLeft(1).RemoveRight(1).Trim()
		} else {
			break
		}
	}

	return c
}

// FindSubAtZeroDepth returns the index of the first occurrence of sub
// at bracket depth zero, or -1.
func FindSubAtZeroDepth(c Cursor, sub string) int {
	balancer := NewBalancer()
	for i := 0; i+len(sub) <= c.Len(); i++ {
		wasBracket, err := balancer.ProcessChar(c.At(i))
		if err != nil {
			return -1
		}
		if !wasBracket && balancer.Balance() == 0 && strings.HasPrefix(string(c[i:]), sub) {
			return i
		}
	}
	return -1
}

// FindCharAtZeroDepth returns the index of the first occurrence of ch
// at bracket depth zero, or -1. ch must not be a bracket.
func FindCharAtZeroDepth(c Cursor, ch byte) int {
	balancer := NewBalancer()
	for i := 0; i < c.Len(); i++ {
		wasBracket, err := balancer.ProcessChar(c.At(i))
		if err != nil {
			return -1
		}
		if !wasBracket && balancer.Balance() == 0 && c.At(i) == ch {
			return i
		}
	}
	return -1
}

// BracketsContent splits a cursor of the form NAME(arg1, arg2, ...)
// into the name and the comma-separated argument parts. Arguments may
// themselves contain commas inside nested brackets. Without an opening
// bracket the whole cursor is the name and there are no parts.
type BracketsContent struct {
	content Cursor
	hasData bool
}

// Parse consumes str and returns the name part.
func (bc *BracketsContent) Parse(str Cursor) (Cursor, error) {
	bc.content = ""
	bc.hasData = false

	opened := strings.IndexByte(string(str), charBracketOpened)
	if opened < 0 {
		return str, nil
	}

	if str.At(str.Len()-1) != charBracketClosed {
		return "", diagnostics.NewLexerError(diagnostics.ErrL003)
	}

	bc.content = str.Right(opened + 1).RemoveRight(1)
	// NAME() carries no arguments, not a single empty one.
	bc.hasData = !bc.content.IsBlank()

	return str.Left(opened), nil
}

// NextPart yields the next depth-zero comma-separated argument.
func (bc *BracketsContent) NextPart() (Cursor, bool) {
	if !bc.hasData {
		return "", false
	}

	if comma := FindCharAtZeroDepth(bc.content, charComma); comma >= 0 {
		part := bc.content.Left(comma)
		bc.content = bc.content.Right(comma + 1)
		return part, true
	}

	part := bc.content
	bc.content = ""
	bc.hasData = false
	return part, true
}
