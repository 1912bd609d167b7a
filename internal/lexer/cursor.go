package lexer

import (
	"strings"

	"github.com/funvibe/boolang/internal/token"
)

// Cursor is a view over a slice of the input line. All parsing works on
// cursors; substrings are produced by re-slicing, never by copying with
// modification.
type Cursor string

func New(line string) Cursor {
	return Cursor(line)
}

func (c Cursor) String() string {
	return string(c)
}

func (c Cursor) Len() int {
	return len(c)
}

func (c Cursor) At(index int) byte {
	return c[index]
}

// Left returns the part of c before index, Right the part from index on.
func (c Cursor) Left(index int) Cursor {
	return c[:index]
}

func (c Cursor) Right(index int) Cursor {
	return c[index:]
}

func (c Cursor) RemoveLeft(count int) Cursor {
	return c[count:]
}

func (c Cursor) RemoveRight(count int) Cursor {
	return c[:len(c)-count]
}

func (c Cursor) TrimLeft() Cursor {
	return Cursor(strings.TrimLeft(string(c), " \t\r\n\v\f"))
}

func (c Cursor) TrimRight() Cursor {
	return Cursor(strings.TrimRight(string(c), " \t\r\n\v\f"))
}

func (c Cursor) Trim() Cursor {
	return c.TrimLeft().TrimRight()
}

// StripComment drops everything from the comment character to the end
// of the line.
func (c Cursor) StripComment() Cursor {
	if i := strings.IndexByte(string(c), token.CommentChar); i >= 0 {
		return c[:i]
	}
	return c
}

// IsBlank reports whether the cursor holds only whitespace.
func (c Cursor) IsBlank() bool {
	return len(c.Trim()) == 0
}

func (c Cursor) StartsWith(prefix string) bool {
	return strings.HasPrefix(string(c), prefix)
}

func (c Cursor) Equals(s string) bool {
	return string(c) == s
}
