package machine

import (
	"github.com/Nyrox/motokigo/lang/sym"
	"github.com/Nyrox/motokigo/lang/types"
)

// LocalView is one local's reported state inside a StackView.
type LocalView struct {
	Name  string
	Type  types.Type
	Bytes []byte
}

// StackView is a snapshot a host can inspect while the VM is Suspended: the
// current function and every one of its locals' live bytes (§4.6
// "Breakpoints").
type StackView struct {
	FuncName string
	Locals   []LocalView
}

// View returns a StackView for the currently suspended frame. It is only
// meaningful while vm.State == Suspended.
func (vm *VM) View() StackView {
	meta, ok := vm.symForFunc(vm.curFunc)
	if !ok {
		return StackView{FuncName: vm.curFunc}
	}

	view := StackView{FuncName: vm.curFunc}
	seen := make(map[string]bool, len(meta.Locals))
	for _, name := range meta.ParamNames {
		if s, ok := meta.Locals[name]; ok {
			view.Locals = append(view.Locals, vm.localView(s))
			seen[name] = true
		}
	}
	for name, s := range meta.Locals {
		if seen[name] {
			continue
		}
		view.Locals = append(view.Locals, vm.localView(s))
	}
	return view
}

func (vm *VM) localView(s *sym.Symbol) LocalView {
	size := s.Type.Size(vm.Prog.Data.Structs)
	base := vm.StackBase + s.Offset
	bytes := make([]byte, size)
	copy(bytes, vm.Stack[base:base+size])
	return LocalView{Name: s.Name, Type: s.Type, Bytes: bytes}
}
