package resolver

import (
	"fmt"

	"github.com/Nyrox/motokigo/lang/token"
)

// Kind discriminates the semantic error taxonomy of §7: UnknownType,
// UnknownSymbol, UnknownFunction, TypeError and AssignmentToImmutable.
type Kind int

const ( //nolint:revive
	UnknownType Kind = iota
	UnknownSymbol
	UnknownFunction
	TypeError
	AssignmentToImmutable
)

func (k Kind) String() string {
	switch k {
	case UnknownType:
		return "unknown type"
	case UnknownSymbol:
		return "unknown symbol"
	case UnknownFunction:
		return "unknown function"
	case TypeError:
		return "type error"
	case AssignmentToImmutable:
		return "assignment to immutable"
	default:
		return "semantic error"
	}
}

// Error is a single positioned semantic diagnostic, carrying its Kind so a
// host can branch on the taxonomy instead of parsing error text.
type Error struct {
	Kind Kind
	Pos  token.Pos
	Msg  string
}

func (e *Error) Error() string {
	if e.Pos.Unknown() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
}

// abort is a sentinel panic value used to unwind the recursive resolution
// once the first hard error is found (§7: "the compiler short-circuits on
// the first hard error"). Resolve recovers it at the top level.
type abort struct{ err *Error }

func fail(kind Kind, pos token.Pos, format string, args ...any) {
	panic(abort{&Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}})
}
