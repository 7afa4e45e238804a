package builtin

import (
	"fmt"
	"math"
	"strings"

	"github.com/Nyrox/motokigo/lang/stackio"
	"github.com/Nyrox/motokigo/lang/types"
)

func vecType(n int) types.Type { return types.MakeVector(types.FloatType, n) }

func popVec(s stackio.Stack, n int) []float32 {
	words := stackio.PopWords(s, n)
	out := make([]float32, n)
	for i, w := range words {
		out[i] = math.Float32frombits(w)
	}
	return out
}

func pushVec(s stackio.Stack, vs []float32) {
	words := make([]uint32, len(vs))
	for i, v := range vs {
		words[i] = math.Float32bits(v)
	}
	stackio.PushWords(s, words)
}

func commaList(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("{%d}", i)
	}
	return strings.Join(parts, ", ")
}

func init() {
	for n := 2; n <= 4; n++ {
		registerVectorConstructors(n)
		registerVectorArith(n)
		registerVectorIntrinsics(n)
		registerElementAccess(n)
	}
}

// registerVectorConstructors adds VecN(scalar, scalar, ...) from N floats
// and, for n >= 3, the widening forms VecN(Vec(n-1), Float) and (for n==4)
// Vec4(Vec2, Vec2) (§4.3 Coverage: "constructors ... from scalar lists and
// from vectors"). Every form's arguments are already laid out on the stack
// contiguously in the target vector's word order (left-to-right argument
// evaluation pushes components in ascending order, matching the VM's
// load/store convention), so the VM implementation is the identity: no
// bytes need to move, only the static type of the value changes.
func registerVectorConstructors(n int) {
	name := fmt.Sprintf("Vec%d", n)
	vt := vecType(n)

	scalarArgs := make([]types.Type, n)
	for i := range scalarArgs {
		scalarArgs[i] = types.FloatType
	}
	register(&Entry{
		Name: name, ArgTypes: scalarArgs, ReturnType: vt,
		GLSLTemplate: fmt.Sprintf("vec%d(%s)", n, commaList(n)),
		VM:           func(stackio.Stack) {},
	})

	if n >= 3 {
		register(&Entry{
			Name:         name,
			ArgTypes:     []types.Type{vecType(n - 1), types.FloatType},
			ReturnType:   vt,
			GLSLTemplate: fmt.Sprintf("vec%d({0}, {1})", n),
			VM:           func(stackio.Stack) {},
		})
	}
	if n == 4 {
		register(&Entry{
			Name:         name,
			ArgTypes:     []types.Type{vecType(2), vecType(2)},
			ReturnType:   vt,
			GLSLTemplate: "vec4({0}, {1})",
			VM:           func(stackio.Stack) {},
		})
	}
}

func registerVectorArith(n int) {
	vt := vecType(n)

	register(&Entry{
		Name: "__op_binary_add", ArgTypes: []types.Type{vt, vt}, ReturnType: vt,
		GLSLTemplate: "{0} + {1}",
		VM: func(s stackio.Stack) {
			b, a := popVec(s, n), popVec(s, n)
			out := make([]float32, n)
			for i := range out {
				out[i] = a[i] + b[i]
			}
			pushVec(s, out)
		},
	})
	register(&Entry{
		Name: "__op_binary_sub", ArgTypes: []types.Type{vt, vt}, ReturnType: vt,
		GLSLTemplate: "{0} - {1}",
		VM: func(s stackio.Stack) {
			b, a := popVec(s, n), popVec(s, n)
			out := make([]float32, n)
			for i := range out {
				out[i] = a[i] - b[i]
			}
			pushVec(s, out)
		},
	})
	register(&Entry{
		Name: "__op_binary_mul", ArgTypes: []types.Type{vt, types.FloatType}, ReturnType: vt,
		GLSLTemplate: "{0} * {1}",
		VM: func(s stackio.Stack) {
			scalar := popF32(s)
			v := popVec(s, n)
			out := make([]float32, n)
			for i := range out {
				out[i] = v[i] * scalar
			}
			pushVec(s, out)
		},
	})
	register(&Entry{
		Name: "__op_binary_mul", ArgTypes: []types.Type{types.FloatType, vt}, ReturnType: vt,
		GLSLTemplate: "{0} * {1}",
		VM: func(s stackio.Stack) {
			v := popVec(s, n)
			scalar := popF32(s)
			out := make([]float32, n)
			for i := range out {
				out[i] = scalar * v[i]
			}
			pushVec(s, out)
		},
	})
	register(&Entry{
		Name: "__op_binary_div", ArgTypes: []types.Type{vt, types.FloatType}, ReturnType: vt,
		GLSLTemplate: "{0} / {1}",
		VM: func(s stackio.Stack) {
			scalar := popF32(s)
			v := popVec(s, n)
			out := make([]float32, n)
			for i := range out {
				out[i] = v[i] / scalar
			}
			pushVec(s, out)
		},
	})
}

func registerVectorIntrinsics(n int) {
	vt := vecType(n)

	register(&Entry{
		Name: "length", ArgTypes: []types.Type{vt}, ReturnType: types.FloatType,
		GLSLTemplate: "length({0})",
		VM: func(s stackio.Stack) {
			v := popVec(s, n)
			pushF32(s, float32(math.Sqrt(float64(dot(v, v)))))
		},
	})
	register(&Entry{
		Name: "normalize", ArgTypes: []types.Type{vt}, ReturnType: vt,
		GLSLTemplate: "normalize({0})",
		VM: func(s stackio.Stack) {
			v := popVec(s, n)
			l := float32(math.Sqrt(float64(dot(v, v))))
			out := make([]float32, n)
			for i := range out {
				out[i] = v[i] / l
			}
			pushVec(s, out)
		},
	})
	register(&Entry{
		Name: "dot", ArgTypes: []types.Type{vt, vt}, ReturnType: types.FloatType,
		GLSLTemplate: "dot({0}, {1})",
		VM: func(s stackio.Stack) {
			b, a := popVec(s, n), popVec(s, n)
			pushF32(s, dot(a, b))
		},
	})
	register(&Entry{
		Name: "distance", ArgTypes: []types.Type{vt, vt}, ReturnType: types.FloatType,
		GLSLTemplate: "distance({0}, {1})",
		VM: func(s stackio.Stack) {
			b, a := popVec(s, n), popVec(s, n)
			d := make([]float32, n)
			for i := range d {
				d[i] = a[i] - b[i]
			}
			pushF32(s, float32(math.Sqrt(float64(dot(d, d)))))
		},
	})
}

// registerElementAccess adds "at(VecN, Int) -> Float", the integer-indexed
// element access of Coverage §4.3 ("element access via integer index on
// vectors"); the source grammar has no "[]" syntax, so this is expressed as
// an ordinary call.
func registerElementAccess(n int) {
	vt := vecType(n)
	register(&Entry{
		Name: "at", ArgTypes: []types.Type{vt, types.IntType}, ReturnType: types.FloatType,
		GLSLTemplate: "{0}[{1}]",
		VM: func(s stackio.Stack) {
			idx := popI32(s)
			v := popVec(s, n)
			pushF32(s, v[idx])
		},
	})
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
