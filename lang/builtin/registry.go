// Package builtin is the static, process-global table describing every
// primitive operator of the language: arithmetic on scalars/vectors/
// matrices, comparisons, intrinsic math, constructors and casts. Each
// Entry names (a) the source-level identifier the parser/resolver look up,
// (b) its argument-type signature, (c) its return type, (d) a VM
// implementation that pops operands off the byte stack and pushes a
// result, and (e) a GLSL text template (§4.3).
package builtin

import (
	"strconv"
	"strings"

	"github.com/dolthub/swiss"

	"github.com/Nyrox/motokigo/lang/stackio"
	"github.com/Nyrox/motokigo/lang/types"
)

// Entry is one registered built-in. VM is nil for an operator that is
// declared but intentionally has no runtime implementation (§9 open
// question 2, the integer xor entry); calling such an entry is an internal
// VM error, never a silent no-op.
type Entry struct {
	Name       string
	ArgTypes   []types.Type
	ReturnType types.Type
	VM         func(s stackio.Stack)

	// GLSLTemplate is a positional "{0}", "{1}", ... format string combined
	// with Generate to produce the GLSL text for a call to this entry.
	GLSLTemplate string
}

// Generate renders e's GLSL template with args substituted positionally.
func (e *Entry) Generate(args []string) string {
	out := e.GLSLTemplate
	for i, a := range args {
		out = strings.ReplaceAll(out, "{"+strconv.Itoa(i)+"}", a)
	}
	return out
}

// table is the append-only, ordered list of every registered Entry. Index
// in this slice is an Entry's stable CallBuiltIn operand (§9 design note:
// "keep the table append-only and indexed").
var table []*Entry

// byKey and byPtr mirror table for O(1) Lookup/IndexOf: every (name,
// argTypes) tuple registered in this package is unique by construction (two
// entries overloading the same name always differ in at least one operand
// type), so a name+argTypes string key never collides across entries and a
// hash map is a safe drop-in for the linear scan a growing registry would
// otherwise need on every resolved call site.
var byKey = swiss.NewMap[string, int](64)
var byPtr = swiss.NewMap[*Entry, int](64)

func register(e *Entry) *Entry {
	idx := len(table)
	table = append(table, e)
	byKey.Put(lookupKey(e.Name, e.ArgTypes), idx)
	byPtr.Put(e, idx)
	return e
}

// lookupKey renders a (name, argTypes) signature to a string unique enough
// to key the registry's every entry: built-in entries only ever take
// scalar, vector or matrix operands, whose Type.String() forms
// ("Int", "Float", "Vec3", "Mat2x3", ...) don't collide with each other.
func lookupKey(name string, argTypes []types.Type) string {
	var b strings.Builder
	b.WriteString(name)
	for _, t := range argTypes {
		b.WriteByte(0)
		b.WriteString(t.String())
	}
	return b.String()
}

// Table exposes the registry as a read-only slice, indexed by the same
// stable index CallBuiltIn uses.
func Table() []*Entry { return table }

// Lookup finds the entry named name whose ArgTypes matches argTypes exactly
// (§4.3: "no coercion... ties broken by registration order", trivially true
// here since the signature is unique per entry). It returns the entry and
// its stable index.
func Lookup(name string, argTypes []types.Type) (*Entry, int, bool) {
	idx, ok := byKey.Get(lookupKey(name, argTypes))
	if !ok {
		return nil, 0, false
	}
	return table[idx], idx, true
}

// ByIndex returns the entry registered at idx. Used by the compiler to
// resolve a CallExpr's builtin back to its CallBuiltIn operand and by the
// VM to dispatch CallBuiltIn.
func ByIndex(idx int) *Entry { return table[idx] }

// IndexOf returns e's stable registry index.
func IndexOf(e *Entry) int {
	idx, ok := byPtr.Get(e)
	if !ok {
		return -1
	}
	return idx
}
