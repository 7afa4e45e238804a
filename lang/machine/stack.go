package machine

import "encoding/binary"

// PushWord appends a 4-byte word to the top of the byte stack, implementing
// stackio.Stack so built-in registry entries can operate on vm directly.
func (vm *VM) PushWord(w uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], w)
	vm.Stack = append(vm.Stack, b[:]...)
}

// PopWord removes and returns the top 4-byte word.
func (vm *VM) PopWord() uint32 {
	n := len(vm.Stack)
	w := binary.LittleEndian.Uint32(vm.Stack[n-4 : n])
	vm.Stack = vm.Stack[:n-4]
	return w
}

// readWord returns the 4-byte word at absolute byte offset off without
// modifying the stack (used by Load4/Load4Global).
func (vm *VM) readWord(off int) uint32 {
	return binary.LittleEndian.Uint32(vm.Stack[off : off+4])
}

// writeWord overwrites the 4-byte word at absolute byte offset off (used by
// Mov4/Mov4Global).
func (vm *VM) writeWord(off int, w uint32) {
	binary.LittleEndian.PutUint32(vm.Stack[off:off+4], w)
}
