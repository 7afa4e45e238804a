package resolver

import (
	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/builtin"
	"github.com/Nyrox/motokigo/lang/sym"
	"github.com/Nyrox/motokigo/lang/types"
)

// resolveExpr implements §4.4 step 5 for expressions: it annotates e's
// resolved type (and any other per-variant annotation) in place and
// returns that type.
func (r *resolver) resolveExpr(e ast.Expr) types.Type {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		if n.IsFloat {
			n.Type = types.FloatType
		} else {
			n.Type = types.IntType
		}
		return n.Type

	case *ast.IdentExpr:
		if s, ok := r.scope[n.Name]; ok {
			n.Sym = s
			return s.Type
		}
		if s, ok := r.data.Globals[n.Name]; ok {
			n.Sym = s
			return s.Type
		}
		fail(UnknownSymbol, n.Pos, "undefined symbol %q", n.Name)
		panic("unreachable")

	case *ast.ParenExpr:
		return r.resolveExpr(n.Inner)

	case *ast.CallExpr:
		return r.resolveCall(n)

	case *ast.FieldExpr:
		return r.resolveField(n)

	case *ast.StructLitExpr:
		return r.resolveStructLit(n)

	default:
		fail(TypeError, e.Span().From, "unsupported expression")
		panic("unreachable")
	}
}

func (r *resolver) resolveCall(n *ast.CallExpr) types.Type {
	argTypes := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		argTypes[i] = r.resolveExpr(a)
	}

	if entry, _, ok := builtin.Lookup(n.Callee, argTypes); ok {
		n.Builtin = entry
		n.Type = entry.ReturnType
		return n.Type
	}

	if fn, ok := r.fnByName(n.Callee); ok {
		if !types.EqualSlice(fn.Meta.ParamTypes, argTypes) {
			fail(TypeError, n.CalleePos, "function %q called with wrong argument types", n.Callee)
		}
		n.Func = fn
		n.Type = fn.Meta.ReturnType
		return n.Type
	}

	fail(UnknownFunction, n.CalleePos, "undefined function %q", n.Callee)
	panic("unreachable")
}

func (r *resolver) fnByName(name string) (*ast.FuncDecl, bool) {
	fn := r.prog.FuncByName(name)
	return fn, fn != nil
}

// swizzleLetters maps a swizzle character to its 0-based component index;
// both the xyzw and rgba spellings are accepted (§4.4 FieldAccess coverage).
var swizzleLetters = map[byte]int{
	'x': 0, 'y': 1, 'z': 2, 'w': 3,
	'r': 0, 'g': 1, 'b': 2, 'a': 3,
}

// swizzleAlphabet reports which of the two accepted swizzle spellings ch
// belongs to, so parseSwizzle can reject a field that mixes them.
func swizzleAlphabet(ch byte) (byte, bool) {
	switch ch {
	case 'x', 'y', 'z', 'w':
		return 'x', true
	case 'r', 'g', 'b', 'a':
		return 'r', true
	default:
		return 0, false
	}
}

func (r *resolver) resolveField(n *ast.FieldExpr) types.Type {
	baseType := r.resolveExpr(n.Base)

	if baseType.Kind == types.Vector {
		idx, ok := parseSwizzle(n.Field, baseType.Rows)
		if !ok {
			fail(TypeError, n.Dot, "invalid swizzle %q on %s", n.Field, baseType)
		}
		n.IsSwizzle = true
		n.SwizzleIdx = idx
		if len(idx) == 1 {
			n.Type = types.FloatType
		} else {
			n.Type = types.MakeVector(types.FloatType, len(idx))
		}
		n.Offset = contiguousOffset(idx)
		return n.Type
	}

	if baseType.Kind == types.Struct {
		decl := r.data.Structs.Get(baseType.ID)
		m, ok := decl.MemberByName(n.Field)
		if !ok {
			fail(UnknownSymbol, n.Dot, "struct %q has no member %q", baseType.Name, n.Field)
		}
		n.Type = m.Type
		n.Offset = m.Offset
		return n.Type
	}

	fail(TypeError, n.Dot, "type %s has no field %q", baseType, n.Field)
	panic("unreachable")
}

// parseSwizzle decodes field (1-4 swizzle letters) against a vector of size
// n, returning each letter's component index. All letters must come from
// the same alphabet (xyzw or rgba, not mixed, §4.4).
func parseSwizzle(field string, n int) ([]int, bool) {
	if len(field) == 0 || len(field) > 4 {
		return nil, false
	}
	out := make([]int, len(field))
	var alphabet byte
	for i := 0; i < len(field); i++ {
		idx, ok := swizzleLetters[field[i]]
		if !ok || idx >= n {
			return nil, false
		}
		a, _ := swizzleAlphabet(field[i])
		if i == 0 {
			alphabet = a
		} else if a != alphabet {
			return nil, false
		}
		out[i] = idx
	}
	return out, true
}

// contiguousOffset returns the word offset of idx if it is a single
// ascending run (e.g. ".yz" on a Vec3+), or -1 otherwise (§9 open question
// 1). The compiler loads a swizzle from this offset and rejects one
// recorded as -1.
func contiguousOffset(idx []int) int {
	for i := 1; i < len(idx); i++ {
		if idx[i] != idx[i-1]+1 {
			return -1
		}
	}
	if len(idx) == 0 {
		return -1
	}
	return idx[0] * 4
}

func (r *resolver) resolveStructLit(n *ast.StructLitExpr) types.Type {
	id, ok := r.data.Structs.Lookup(n.TypeName)
	if !ok {
		fail(UnknownType, n.Lbrace, "unknown struct type %q", n.TypeName)
	}
	decl := r.data.Structs.Get(id)

	if len(n.Fields) != len(decl.Members) {
		fail(TypeError, n.Lbrace, "struct %q construction: expected %d fields, got %d",
			n.TypeName, len(decl.Members), len(n.Fields))
	}

	given := make(map[string]bool, len(n.Fields))
	for _, f := range n.Fields {
		if given[f.Name] {
			fail(TypeError, f.Pos, "struct %q: field %q set more than once", n.TypeName, f.Name)
		}
		given[f.Name] = true

		m, ok := decl.MemberByName(f.Name)
		if !ok {
			fail(UnknownSymbol, f.Pos, "struct %q has no member %q", n.TypeName, f.Name)
		}
		ft := r.resolveExpr(f.Expr)
		if !types.Equal(ft, m.Type) {
			fail(TypeError, f.Pos, "struct %q field %q: expected %s, got %s", n.TypeName, f.Name, m.Type, ft)
		}
	}

	n.Type = types.MakeStruct(n.TypeName, id)
	return n.Type
}

// newScope builds a fresh lexical scope seeded with fn's parameters.
func newScope(fn *sym.FuncMeta) map[string]*sym.Symbol {
	scope := make(map[string]*sym.Symbol, len(fn.Locals))
	for k, v := range fn.Locals {
		scope[k] = v
	}
	return scope
}
