package builtin

import (
	"math"

	"github.com/Nyrox/motokigo/lang/stackio"
	"github.com/Nyrox/motokigo/lang/types"
)

func popF32(s stackio.Stack) float32 { return math.Float32frombits(s.PopWord()) }
func pushF32(s stackio.Stack, f float32) { s.PushWord(math.Float32bits(f)) }
func popI32(s stackio.Stack) int32       { return int32(s.PopWord()) }
func pushI32(s stackio.Stack, i int32)   { s.PushWord(uint32(i)) }

func boolWord(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// Operands are popped right-to-left (§4.3), so for a binary op the right
// operand is popped first.

func init() {
	for _, t := range []types.Type{types.IntType, types.FloatType} {
		registerBinaryArith(t)
		registerComparisons(t)
	}
	registerEquality(types.IntType)
	registerEquality(types.FloatType)

	register(&Entry{
		Name:         "__op_unary_neg",
		ArgTypes:     []types.Type{types.IntType},
		ReturnType:   types.IntType,
		GLSLTemplate: "-{0}",
		VM: func(s stackio.Stack) {
			v := popI32(s)
			pushI32(s, -v)
		},
	})
	register(&Entry{
		Name:         "__op_unary_neg",
		ArgTypes:     []types.Type{types.FloatType},
		ReturnType:   types.FloatType,
		GLSLTemplate: "-{0}",
		VM: func(s stackio.Stack) {
			v := popF32(s)
			pushF32(s, -v)
		},
	})

	register(&Entry{
		Name:         "int",
		ArgTypes:     []types.Type{types.FloatType},
		ReturnType:   types.IntType,
		GLSLTemplate: "int({0})",
		VM: func(s stackio.Stack) {
			v := popF32(s)
			pushI32(s, int32(v))
		},
	})
	register(&Entry{
		Name:         "float",
		ArgTypes:     []types.Type{types.IntType},
		ReturnType:   types.FloatType,
		GLSLTemplate: "float({0})",
		VM: func(s stackio.Stack) {
			v := popI32(s)
			pushF32(s, float32(v))
		},
	})

	register(&Entry{
		Name:         "and",
		ArgTypes:     []types.Type{types.IntType, types.IntType},
		ReturnType:   types.IntType,
		GLSLTemplate: "bool({0}) && bool({1})",
		VM: func(s stackio.Stack) {
			b, a := popI32(s), popI32(s)
			pushI32(s, boolWord(a != 0 && b != 0))
		},
	})
	register(&Entry{
		Name:         "or",
		ArgTypes:     []types.Type{types.IntType, types.IntType},
		ReturnType:   types.IntType,
		GLSLTemplate: "bool({0}) || bool({1})",
		VM: func(s stackio.Stack) {
			b, a := popI32(s), popI32(s)
			pushI32(s, boolWord(a != 0 || b != 0))
		},
	})
	register(&Entry{
		Name:         "not",
		ArgTypes:     []types.Type{types.IntType},
		ReturnType:   types.IntType,
		GLSLTemplate: "!bool({0})",
		VM: func(s stackio.Stack) {
			a := popI32(s)
			pushI32(s, boolWord(a == 0))
		},
	})
	// xor (the integer XOR of §9 open question 2) is declared but has no VM
	// implementation: calling it at runtime is an internal VM error.
	register(&Entry{
		Name:         "xor",
		ArgTypes:     []types.Type{types.IntType, types.IntType},
		ReturnType:   types.IntType,
		GLSLTemplate: "bool({0}) != bool({1})",
		VM:           nil,
	})
}

func registerBinaryArith(t types.Type) {
	wrap := t.Kind == types.I32
	ops := []struct {
		name, tmpl string
		intFn      func(a, b int32) int32
		floatFn    func(a, b float32) float32
	}{
		{"__op_binary_add", "{0} + {1}", func(a, b int32) int32 { return a + b }, func(a, b float32) float32 { return a + b }},
		{"__op_binary_sub", "{0} - {1}", func(a, b int32) int32 { return a - b }, func(a, b float32) float32 { return a - b }},
		{"__op_binary_mul", "{0} * {1}", func(a, b int32) int32 { return a * b }, func(a, b float32) float32 { return a * b }},
		{"__op_binary_div", "{0} / {1}", divInt, func(a, b float32) float32 { return a / b }},
	}
	for _, op := range ops {
		op := op
		e := &Entry{
			Name:         op.name,
			ArgTypes:     []types.Type{t, t},
			ReturnType:   t,
			GLSLTemplate: op.tmpl,
		}
		if wrap {
			e.VM = func(s stackio.Stack) {
				b, a := popI32(s), popI32(s)
				pushI32(s, op.intFn(a, b))
			}
		} else {
			e.VM = func(s stackio.Stack) {
				b, a := popF32(s), popF32(s)
				pushF32(s, op.floatFn(a, b))
			}
		}
		register(e)
	}
}

// divInt implements Go's native (wrapping, truncating) integer division;
// per §7 a division by zero follows host-native behavior rather than a VM
// trap, so this deliberately panics exactly like Go's own "/" would.
func divInt(a, b int32) int32 { return a / b }

func registerComparisons(t types.Type) {
	wrap := t.Kind == types.I32
	ops := []struct {
		name string
		cmp  func(a, b float64) bool
	}{
		{"__op_binary_less", func(a, b float64) bool { return a < b }},
		{"__op_binary_less_equal", func(a, b float64) bool { return a <= b }},
		{"__op_binary_greater", func(a, b float64) bool { return a > b }},
		{"__op_binary_greater_equal", func(a, b float64) bool { return a >= b }},
	}
	tmpls := map[string]string{
		"__op_binary_less":          "{0} < {1}",
		"__op_binary_less_equal":    "{0} <= {1}",
		"__op_binary_greater":       "{0} > {1}",
		"__op_binary_greater_equal": "{0} >= {1}",
	}
	for _, op := range ops {
		op := op
		e := &Entry{
			Name:         op.name,
			ArgTypes:     []types.Type{t, t},
			ReturnType:   types.IntType,
			GLSLTemplate: tmpls[op.name],
		}
		if wrap {
			e.VM = func(s stackio.Stack) {
				b, a := popI32(s), popI32(s)
				pushI32(s, boolWord(op.cmp(float64(a), float64(b))))
			}
		} else {
			e.VM = func(s stackio.Stack) {
				b, a := popF32(s), popF32(s)
				pushI32(s, boolWord(op.cmp(float64(a), float64(b))))
			}
		}
		register(e)
	}
}

func registerEquality(t types.Type) {
	wrap := t.Kind == types.I32
	e := &Entry{
		Name:         "__op_binary_equality",
		ArgTypes:     []types.Type{t, t},
		ReturnType:   types.IntType,
		GLSLTemplate: "{0} == {1}",
	}
	if wrap {
		e.VM = func(s stackio.Stack) {
			b, a := popI32(s), popI32(s)
			pushI32(s, boolWord(a == b))
		}
	} else {
		e.VM = func(s stackio.Stack) {
			b, a := popF32(s), popF32(s)
			pushI32(s, boolWord(a == b))
		}
	}
	register(e)
}
