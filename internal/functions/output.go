package functions

import "strings"

// Output accumulates the lines a builtin produces for the user.
type Output struct {
	lines []string
}

func NewOutput(lines ...string) *Output {
	return &Output{lines: lines}
}

func (o *Output) AddLine(line string) {
	o.lines = append(o.lines, line)
}

func (o *Output) String() string {
	return strings.Join(o.lines, "\n")
}
