// Package resolver implements the semantic analyzer (§4.4): it walks the
// parsed AST, resolves every identifier, typechecks every expression and
// statement, fixes struct member offsets, and selects overloads from the
// built-in registry. It annotates the AST in place and returns the
// resulting sym.Program.
package resolver

import (
	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/sym"
	"github.com/Nyrox/motokigo/lang/token"
	"github.com/Nyrox/motokigo/lang/types"
)

type resolver struct {
	prog  *ast.Program
	data  *sym.Program
	scope map[string]*sym.Symbol // current function's locals, including params
	fn    *sym.FuncMeta          // current function being resolved
}

// Resolve runs every step of §4.4 over prog, annotating its nodes in place,
// and returns the populated sym.Program. The returned error, if non-nil, is
// a *resolver.Error for the first semantic problem encountered.
func Resolve(prog *ast.Program) (data *sym.Program, err error) {
	r := &resolver{prog: prog, data: sym.NewProgram()}

	defer func() {
		if p := recover(); p != nil {
			a, ok := p.(abort)
			if !ok {
				panic(p)
			}
			err = a.err
		}
	}()

	r.resolveStructs()
	r.resolveInputs()
	r.prepassFuncs()
	for _, fn := range prog.Funcs {
		r.resolveFunc(fn)
	}
	return r.data, nil
}

// resolveType implements §4.4 step 4: TypeRef resolution inside any type
// position.
func (r *resolver) resolveType(te ast.TypeExpr) types.Type {
	switch {
	case te.Name == "Int":
		return types.IntType
	case te.Name == "Float":
		return types.FloatType
	case te.Name == "void" || te.Name == "":
		return types.VoidType
	}
	if n, ok := vecSize(te.Name); ok {
		return types.MakeVector(types.FloatType, n)
	}
	if rows, cols, ok := matDims(te.Name); ok {
		return types.MakeMatrix(types.FloatType, rows, cols)
	}
	if id, ok := r.data.Structs.Lookup(te.Name); ok {
		return types.MakeStruct(te.Name, id)
	}
	fail(UnknownType, te.Pos, "unknown type %q", te.Name)
	panic("unreachable")
}

// resolveStructs implements §4.4 step 1: declare every struct name first
// (so mutually-referencing member types resolve), then resolve member
// types and compute each struct's cached byte size.
func (r *resolver) resolveStructs() {
	for _, d := range r.prog.Structs {
		d.ID = r.data.Structs.Declare(d.Name)
	}

	for _, d := range r.prog.Structs {
		decl := r.data.Structs.Get(d.ID)
		seen := make(map[string]bool, len(d.Members))
		for _, m := range d.Members {
			if seen[m.Name] {
				fail(TypeError, m.Pos, "struct %q: duplicate member %q", d.Name, m.Name)
			}
			seen[m.Name] = true
			mt := r.resolveType(m.Type)
			decl.Members = append(decl.Members, types.Member{Name: m.Name, Type: mt})
		}
	}

	// Compute sizes in dependency order: a struct's size only needs the
	// sizes of the structs its members reference, so iterate to a fixed
	// point (§3 invariant: "size = sum(member.type.size)").
	remaining := len(r.prog.Structs)
	for pass := 0; pass < len(r.prog.Structs)+1 && remaining > 0; pass++ {
		remaining = 0
		for _, d := range r.prog.Structs {
			decl := r.data.Structs.Get(d.ID)
			if decl.Size > 0 || len(decl.Members) == 0 {
				continue
			}
			if !r.structDepsReady(decl) {
				remaining++
				continue
			}
			offset := 0
			for i := range decl.Members {
				decl.Members[i].Offset = offset
				offset += decl.Members[i].Type.Size(r.data.Structs)
			}
			decl.Size = offset
		}
	}
	if remaining > 0 {
		fail(TypeError, token.Pos(0), "cyclic struct layout detected")
	}
}

func (r *resolver) structDepsReady(decl *types.StructDecl) bool {
	for _, m := range decl.Members {
		if m.Type.Kind == types.Struct {
			dep := r.data.Structs.Get(m.Type.ID)
			if dep.Size == 0 && len(dep.Members) > 0 {
				return false
			}
		}
	}
	return true
}

// resolveInputs implements §4.4 step 2.
func (r *resolver) resolveInputs() {
	offset := 0
	for _, in := range r.prog.Inputs {
		t := r.resolveType(in.Type)
		s := &sym.Symbol{
			Name: in.Name, Type: t, Offset: offset,
			IsStatic: true, IsMutable: false, IsUniform: in.IsUniform,
		}
		r.data.Globals[in.Name] = s
		in.Resolved = s
		offset += t.Size(r.data.Structs)
	}
	r.data.StaticSize = offset
}

// prepassFuncs implements §4.4 step 3.
func (r *resolver) prepassFuncs() {
	for _, fn := range r.prog.Funcs {
		meta := sym.NewFuncMeta(fn.Name)
		meta.ReturnType = r.resolveType(fn.ReturnType)

		offset := 0
		for i := range fn.Params {
			p := &fn.Params[i]
			t := r.resolveType(p.Type)
			s := &sym.Symbol{Name: p.Name, Type: t, Offset: offset, IsMutable: false}
			meta.Declare(s)
			meta.ParamNames = append(meta.ParamNames, p.Name)
			meta.ParamTypes = append(meta.ParamTypes, t)
			p.Resolved = s
			offset += t.Size(r.data.Structs)
		}
		meta.FrameSize = offset
		fn.Meta = meta
		r.data.Funcs[fn.Name] = meta
	}
}

func vecSize(name string) (int, bool) {
	if len(name) != 4 || name[:3] != "Vec" {
		return 0, false
	}
	switch name[3] {
	case '2':
		return 2, true
	case '3':
		return 3, true
	case '4':
		return 4, true
	}
	return 0, false
}

// matDims parses "MatM" or "MatMxN" for M,N in 2..4.
func matDims(name string) (rows, cols int, ok bool) {
	if len(name) < 4 || name[:3] != "Mat" {
		return 0, 0, false
	}
	rest := name[3:]
	digit := func(b byte) (int, bool) {
		if b >= '2' && b <= '4' {
			return int(b - '0'), true
		}
		return 0, false
	}
	switch len(rest) {
	case 1:
		m, ok := digit(rest[0])
		if !ok {
			return 0, 0, false
		}
		return m, m, true
	case 3:
		if rest[1] != 'x' {
			return 0, 0, false
		}
		m, ok1 := digit(rest[0])
		n, ok2 := digit(rest[2])
		if !ok1 || !ok2 {
			return 0, 0, false
		}
		return m, n, true
	default:
		return 0, 0, false
	}
}
