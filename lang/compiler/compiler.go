package compiler

import (
	"fmt"

	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/sym"
)

// VMProgram is a fully lowered program ready for the stack machine: the
// instruction stream and the resolved symbol/function/struct metadata it
// addresses.
type VMProgram struct {
	Code []MemoryCell
	Data *sym.Program
}

// Error reports a bytecode-lowering failure: either a case the compiler
// cannot emit (a reordering/repeating vector swizzle, §4.5 "Field access",
// or a field access whose base is not a variable or field chain) or an
// internal invariant violation.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "internal compiler error: " + e.Msg }

type compiler struct {
	prog *ast.Program
	data *sym.Program
	code []MemoryCell

	fn *sym.FuncMeta
}

// Compile lowers prog (already resolved against data by the resolver
// package) into a VMProgram. Compile panics with *compiler.Error recovered
// internally into a returned error, mirroring the resolver's short-circuit
// convention (§7: "the compiler short-circuits on the first hard error").
func Compile(prog *ast.Program, data *sym.Program) (pg *VMProgram, err error) {
	c := &compiler{prog: prog, data: data}

	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(*Error)
			if !ok {
				panic(p)
			}
			err = e
		}
	}()

	// The first pass fixes every function's entry address, so that a call
	// to a function declared later in the source lowers to the right
	// target; the second pass emits the final code. Code size does not
	// depend on call targets, so the first pass's addresses hold.
	for _, fn := range prog.Funcs {
		c.compileFunc(fn)
	}
	c.code = nil
	for _, fn := range prog.Funcs {
		c.compileFunc(fn)
	}

	return &VMProgram{Code: c.code, Data: c.data}, nil
}

func fail(format string, args ...any) {
	panic(&Error{Msg: fmt.Sprintf(format, args...)})
}

// emit appends a one-word instruction and returns its code index.
func (c *compiler) emit(op Opcode, arg int32) int {
	c.code = append(c.code, MemoryCell{Op: op, Arg: arg})
	return len(c.code) - 1
}

// emitWide appends a two-word instruction (opcode cell + raw payload cell)
// and returns the index of the opcode cell.
func (c *compiler) emitWide(op Opcode, arg, raw int32) int {
	idx := c.emit(op, arg)
	c.code = append(c.code, MemoryCell{Op: rawData, Arg: raw})
	return idx
}

// patch rewrites a previously emitted jump's target to the current code
// position (used for forward-jump placeholders).
func (c *compiler) patch(idx int) {
	c.code[idx].Arg = int32(len(c.code))
}

// here returns the index the next emitted instruction will occupy.
func (c *compiler) here() int { return len(c.code) }

// compileFunc implements the "Function prologue" lowering rule: record the
// function's entry address, then lower its body. Parameters already
// occupy the base of the frame by construction (the resolver's pre-pass
// laid them out starting at offset 0), so no further prologue code is
// emitted.
func (c *compiler) compileFunc(fn *ast.FuncDecl) {
	fn.Meta.Address = c.here()
	c.fn = fn.Meta
	for _, s := range fn.Body {
		c.compileStmt(s)
	}
	// A function whose body does not end in an explicit Return (a Void
	// function falling off the end) still needs a Ret to restore the
	// caller; emit one unconditionally as a safety net matching the VM's
	// "no implicit control falls through" contract.
	if fn.Meta.ReturnType.IsVoid() {
		c.emit(StmtMarker, int32(fn.To.Line()))
		c.emit(Ret, 0)
	}
	c.fn = nil
}
