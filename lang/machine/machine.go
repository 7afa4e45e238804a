// Package machine implements the stack virtual machine that executes a
// compiled VMProgram (§4.6): a byte stack, call frames, and a
// fetch-dispatch loop over compiler.MemoryCell instructions.
package machine

import (
	"github.com/Nyrox/motokigo/lang/builtin"
	"github.com/Nyrox/motokigo/lang/compiler"
	"github.com/Nyrox/motokigo/lang/sym"
)

// RunState is the VM's coarse execution state (§4.6 state machine: Ready,
// Running, Suspended, Finished).
type RunState int

//nolint:revive
const (
	Ready RunState = iota
	Running
	Suspended
	Finished
)

func (s RunState) String() string {
	switch s {
	case Ready:
		return "Ready"
	case Running:
		return "Running"
	case Suspended:
		return "Suspended"
	case Finished:
		return "Finished"
	default:
		return "<invalid state>"
	}
}

type frame struct {
	returnAddr int
	stackBase  int
	funcName   string
}

// VM is a single, independently runnable instance of a compiled program.
// It holds no shared mutable state with the program it borrows (§5
// "Shared resource"), so it is cheap to copy: a host doing per-sample
// evaluation can snapshot one VM per sample or per worker by value-copying
// its byte stack.
type VM struct {
	Prog *compiler.VMProgram

	Stack     []byte
	StackBase int
	ISP       int
	frames    []frame

	breakpoints map[int]bool
	curFunc     string

	State RunState

	// StepCount/StepLimit implement the run-away guard (§4.6): StepLimit 0
	// disables the check.
	StepCount uint64
	StepLimit uint64

	// CallDepthLimit caps the number of nested Call frames (recursion
	// ceiling, SPEC_FULL.md §7 "Ambient configuration"); 0 disables the
	// check, the same convention StepLimit uses.
	CallDepthLimit uint64
}

// SetCallDepthLimit sets the VM's recursion ceiling. Must be called before
// RunFn; it has no effect on a VM already mid-run.
func (vm *VM) SetCallDepthLimit(limit uint64) {
	vm.CallDepthLimit = limit
}

// New returns a VM for prog with its static section preallocated and
// zeroed. The host must call SetGlobal for every input before RunFn.
func New(prog *compiler.VMProgram, stepLimit uint64) *VM {
	return &VM{
		Prog:      prog,
		Stack:     make([]byte, prog.Data.StaticSize),
		StackBase: prog.Data.StaticSize,
		State:     Ready,
		StepLimit: stepLimit,
	}
}

// SetGlobal copies value's bytes into the named input's static-section
// slot. value must be exactly the symbol's declared byte size.
func (vm *VM) SetGlobal(name string, value []byte) error {
	s, ok := vm.Prog.Data.Globals[name]
	if !ok {
		return internalError("unknown global %q", name)
	}
	size := s.Type.Size(vm.Prog.Data.Structs)
	if len(value) != size {
		return internalError("SetGlobal(%q): expected %d bytes, got %d", name, size, len(value))
	}
	copy(vm.Stack[s.Offset:s.Offset+size], value)
	return nil
}

// GetGlobal returns a copy of the named input's current static-section
// bytes.
func (vm *VM) GetGlobal(name string) ([]byte, error) {
	s, ok := vm.Prog.Data.Globals[name]
	if !ok {
		return nil, internalError("unknown global %q", name)
	}
	size := s.Type.Size(vm.Prog.Data.Structs)
	out := make([]byte, size)
	copy(out, vm.Stack[s.Offset:s.Offset+size])
	return out, nil
}

// symForFunc finds name's FuncMeta.
func (vm *VM) symForFunc(name string) (*sym.FuncMeta, bool) {
	m, ok := vm.Prog.Data.Funcs[name]
	return m, ok
}

// RunFn begins executing function name from its entry address, suspending
// at any StmtMarker whose line is in breakpoints. It runs to completion,
// to the first suspension, or to a runtime error.
func (vm *VM) RunFn(name string, breakpoints []int) (RunState, error) {
	meta, ok := vm.symForFunc(name)
	if !ok {
		return Ready, internalError("unknown function %q", name)
	}

	vm.ISP = meta.Address
	vm.StackBase = len(vm.Stack)
	vm.frames = nil
	vm.curFunc = name
	vm.breakpoints = make(map[int]bool, len(breakpoints))
	for _, l := range breakpoints {
		vm.breakpoints[l] = true
	}
	vm.State = Running
	return vm.loop()
}

// Resume continues a Suspended VM from exactly the instruction after the
// StmtMarker that suspended it.
func (vm *VM) Resume() (RunState, error) {
	if vm.State != Suspended {
		return vm.State, internalError("Resume called on a VM in state %s", vm.State)
	}
	vm.State = Running
	return vm.loop()
}

// loop is the fetch-dispatch cycle of §4.6.
func (vm *VM) loop() (RunState, error) {
	for vm.State == Running {
		if err := vm.step(); err != nil {
			vm.State = Finished
			return vm.State, err
		}
	}
	return vm.State, nil
}

func (vm *VM) step() error {
	if vm.StepLimit != 0 {
		vm.StepCount++
		if vm.StepCount > vm.StepLimit {
			return &StepLimitExceeded{Limit: vm.StepLimit}
		}
	}

	cell := vm.Prog.Code[vm.ISP]
	switch cell.Op {
	case compiler.Const4:
		lit := vm.Prog.Code[vm.ISP+1].Arg
		vm.PushWord(uint32(lit))
		vm.ISP += 2

	case compiler.Void:
		vm.PushWord(0)
		vm.ISP++

	case compiler.Load4:
		vm.PushWord(vm.readWord(vm.StackBase + int(cell.Arg)))
		vm.ISP++

	case compiler.Load4Global:
		vm.PushWord(vm.readWord(int(cell.Arg)))
		vm.ISP++

	case compiler.Mov4:
		vm.writeWord(vm.StackBase+int(cell.Arg), vm.PopWord())
		vm.ISP++

	case compiler.Mov4Global:
		vm.writeWord(int(cell.Arg), vm.PopWord())
		vm.ISP++

	case compiler.Call:
		if vm.CallDepthLimit != 0 && uint64(len(vm.frames)) >= vm.CallDepthLimit {
			return &CallDepthExceeded{Limit: vm.CallDepthLimit}
		}
		argBytes := int(vm.Prog.Code[vm.ISP+1].Arg)
		vm.frames = append(vm.frames, frame{
			returnAddr: vm.ISP + 2,
			stackBase:  vm.StackBase,
			funcName:   vm.curFunc,
		})
		vm.StackBase = len(vm.Stack) - argBytes
		vm.curFunc = funcNameAt(vm.Prog.Data, int(cell.Arg))
		vm.ISP = int(cell.Arg)

	case compiler.CallBuiltIn:
		entry := builtin.ByIndex(int(cell.Arg))
		if entry.VM == nil {
			return internalError("built-in %q has no runtime implementation", entry.Name)
		}
		entry.VM(vm)
		vm.ISP++

	case compiler.Ret:
		p := int(cell.Arg)
		top := len(vm.Stack)
		ret := make([]byte, p)
		copy(ret, vm.Stack[top-p:top])
		vm.Stack = vm.Stack[:vm.StackBase]
		vm.Stack = append(vm.Stack, ret...)

		if len(vm.frames) == 0 {
			vm.State = Finished
			return nil
		}
		f := vm.frames[len(vm.frames)-1]
		vm.frames = vm.frames[:len(vm.frames)-1]
		vm.ISP = f.returnAddr
		vm.StackBase = f.stackBase
		vm.curFunc = f.funcName

	case compiler.Jmp:
		vm.ISP = int(cell.Arg)

	case compiler.JmpZero:
		if vm.PopWord() == 0 {
			vm.ISP = int(cell.Arg)
		} else {
			vm.ISP++
		}

	case compiler.JmpNotZero:
		if vm.PopWord() != 0 {
			vm.ISP = int(cell.Arg)
		} else {
			vm.ISP++
		}

	case compiler.StmtMarker:
		line := int(cell.Arg)
		vm.ISP++
		if vm.breakpoints[line] {
			vm.State = Suspended
		}

	default:
		return internalError("unsupported opcode %s at isp=%d", cell.Op, vm.ISP)
	}
	return nil
}

// funcNameAt finds the function whose entry address equals addr, used to
// keep StackView reporting meaningful names across calls.
func funcNameAt(data *sym.Program, addr int) string {
	for name, meta := range data.Funcs {
		if meta.Address == addr {
			return name
		}
	}
	return ""
}
