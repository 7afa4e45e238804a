// Package sym holds the symbol and program metadata the resolver produces
// and the bytecode compiler and virtual machine consume: per-function local
// tables, global symbols, struct layouts and overall static-section size.
package sym

import "github.com/Nyrox/motokigo/lang/types"

// Symbol describes one binding: a global input or a function local.
type Symbol struct {
	Name string
	Type types.Type

	// Offset is the byte offset of this symbol's storage: into the static
	// section for a global (IsStatic), or relative to the current call
	// frame's stack_base for a local.
	Offset int

	// IsStatic is true for "in"/"uniform" program inputs, which live in the
	// VM's static section instead of a call frame.
	IsStatic bool

	// IsMutable is true for "let mut" locals; globals and "let" locals are
	// immutable and reject Assignment.
	IsMutable bool

	// IsUniform is true for a static symbol declared "uniform" rather than a
	// per-invocation "in" (§9 open question 4: both share the static section
	// in the VM; the flag is retained so a GLSL-targeting host can still tell
	// them apart).
	IsUniform bool
}

// FuncMeta is the per-function metadata the resolver builds and the
// compiler completes.
type FuncMeta struct {
	Name string

	// Locals maps a local name to its Symbol, including parameters.
	Locals map[string]*Symbol

	// ParamNames preserves declaration order for parameters, since Locals is
	// unordered and the resolver lays out the parameter area in that order.
	ParamNames []string

	ParamTypes []types.Type
	ReturnType types.Type

	// FrameSize is the running stack cursor: how many bytes of the frame are
	// used by parameters and locals declared so far. The resolver advances
	// it as it allocates each VariableDeclaration's and loop index's storage.
	FrameSize int

	// Address is the bytecode address of the function's first instruction,
	// filled in by the compiler.
	Address int
}

// NewFuncMeta returns an empty FuncMeta for the named function.
func NewFuncMeta(name string) *FuncMeta {
	return &FuncMeta{Name: name, Locals: make(map[string]*Symbol)}
}

// Declare adds a local symbol to f's table.
func (f *FuncMeta) Declare(s *Symbol) {
	f.Locals[s.Name] = s
}

// Program is the complete set of semantic metadata for one resolved
// Motokigo program.
type Program struct {
	Funcs   map[string]*FuncMeta
	Globals map[string]*Symbol
	Structs *types.Table

	// StaticSize is the total byte size of the static section, the sum of
	// every input parameter's type size, in declaration order.
	StaticSize int
}

// NewProgram returns an empty Program ready for the resolver to populate.
func NewProgram() *Program {
	return &Program{
		Funcs:   make(map[string]*FuncMeta),
		Globals: make(map[string]*Symbol),
		Structs: types.NewTable(),
	}
}
