// Package diag collects span-carrying diagnostics produced while scanning
// or parsing a Motokigo program. The scanner and parser accumulate into an
// ErrorList instead of aborting on the first problem, the same
// collect-then-report idiom Go's own go/scanner package uses.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Nyrox/motokigo/lang/token"
)

// Error is a single positioned diagnostic.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.Unknown() {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorList is a list of *Error, sortable by position, that itself
// implements error so a caller can propagate "zero or more diagnostics" as a
// single value.
type ErrorList []*Error

// Add appends a diagnostic at pos.
func (p *ErrorList) Add(pos token.Pos, msg string) {
	*p = append(*p, &Error{Pos: pos, Msg: msg})
}

// Addf is like Add but formats msg.
func (p *ErrorList) Addf(pos token.Pos, format string, args ...any) {
	p.Add(pos, fmt.Sprintf(format, args...))
}

func (p ErrorList) Len() int      { return len(p) }
func (p ErrorList) Swap(i, j int) { p[i], p[j] = p[j], p[i] }
func (p ErrorList) Less(i, j int) bool {
	return p[i].Pos < p[j].Pos
}

// Sort orders the list by source position.
func (p ErrorList) Sort() { sort.Sort(p) }

func (p ErrorList) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	var sb strings.Builder
	for i, e := range p {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Err returns nil if p is empty, otherwise p itself as an error.
func (p ErrorList) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}
