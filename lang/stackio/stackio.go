// Package stackio defines the minimal word-addressed stack surface shared
// by the virtual machine and the built-in registry's VM implementations, so
// that neither package needs to import the other: the machine package
// implements Stack and the builtin package only depends on the interface.
package stackio

// Stack is a LIFO sequence of 32-bit words backed by the VM's byte stack.
// Every Motokigo value is a whole number of 4-byte words (§3 invariant:
// "all scalar sizes are multiples of 4 bytes").
type Stack interface {
	// PushWord pushes one 4-byte word.
	PushWord(w uint32)
	// PopWord pops and returns one 4-byte word.
	PopWord() uint32
}

// PopWords pops n words and returns them in the order they were pushed
// (index 0 is the oldest / lowest word).
func PopWords(s Stack, n int) []uint32 {
	words := make([]uint32, n)
	for i := n - 1; i >= 0; i-- {
		words[i] = s.PopWord()
	}
	return words
}

// PushWords pushes words in order, so the last element ends on top.
func PushWords(s Stack, words []uint32) {
	for _, w := range words {
		s.PushWord(w)
	}
}
