package builtin

import (
	"math"

	"github.com/Nyrox/motokigo/lang/stackio"
	"github.com/Nyrox/motokigo/lang/types"
)

// unary1 registers a single-argument Float->Float intrinsic.
func unary1(name string, fn func(float32) float32) {
	register(&Entry{
		Name: name, ArgTypes: []types.Type{types.FloatType}, ReturnType: types.FloatType,
		GLSLTemplate: name + "({0})",
		VM: func(s stackio.Stack) {
			pushF32(s, fn(popF32(s)))
		},
	})
}

// binary2 registers a two-argument Float,Float->Float intrinsic.
func binary2(name string, fn func(a, b float32) float32) {
	register(&Entry{
		Name: name, ArgTypes: []types.Type{types.FloatType, types.FloatType}, ReturnType: types.FloatType,
		GLSLTemplate: name + "({0}, {1})",
		VM: func(s stackio.Stack) {
			b, a := popF32(s), popF32(s)
			pushF32(s, fn(a, b))
		},
	})
}

func init() {
	unary1("sin", func(x float32) float32 { return float32(math.Sin(float64(x))) })
	unary1("cos", func(x float32) float32 { return float32(math.Cos(float64(x))) })
	unary1("tan", func(x float32) float32 { return float32(math.Tan(float64(x))) })
	unary1("asin", func(x float32) float32 { return float32(math.Asin(float64(x))) })
	unary1("acos", func(x float32) float32 { return float32(math.Acos(float64(x))) })
	unary1("atan", func(x float32) float32 { return float32(math.Atan(float64(x))) })
	unary1("radians", func(x float32) float32 { return x * float32(math.Pi) / 180 })
	unary1("degrees", func(x float32) float32 { return x * 180 / float32(math.Pi) })
	unary1("exp", func(x float32) float32 { return float32(math.Exp(float64(x))) })
	unary1("log", func(x float32) float32 { return float32(math.Log(float64(x))) })
	unary1("exp2", func(x float32) float32 { return float32(math.Exp2(float64(x))) })
	unary1("log2", func(x float32) float32 { return float32(math.Log2(float64(x))) })
	unary1("sqrt", func(x float32) float32 { return float32(math.Sqrt(float64(x))) })
	unary1("floor", func(x float32) float32 { return float32(math.Floor(float64(x))) })
	unary1("ceil", func(x float32) float32 { return float32(math.Ceil(float64(x))) })
	unary1("fract", func(x float32) float32 { return x - float32(math.Floor(float64(x))) })

	binary2("atan2", func(a, b float32) float32 { return float32(math.Atan2(float64(a), float64(b))) })
	binary2("pow", func(a, b float32) float32 { return float32(math.Pow(float64(a), float64(b))) })
	binary2("min", func(a, b float32) float32 {
		if a < b {
			return a
		}
		return b
	})
	binary2("max", func(a, b float32) float32 {
		if a > b {
			return a
		}
		return b
	})

	register(&Entry{
		Name: "logn", ArgTypes: []types.Type{types.FloatType, types.FloatType}, ReturnType: types.FloatType,
		GLSLTemplate: "(log({1}) / log({0}))",
		VM: func(s stackio.Stack) {
			x, base := popF32(s), popF32(s)
			pushF32(s, float32(math.Log(float64(x))/math.Log(float64(base))))
		},
	})

	register(&Entry{
		Name: "min", ArgTypes: []types.Type{types.IntType, types.IntType}, ReturnType: types.IntType,
		GLSLTemplate: "min({0}, {1})",
		VM: func(s stackio.Stack) {
			b, a := popI32(s), popI32(s)
			if a < b {
				pushI32(s, a)
			} else {
				pushI32(s, b)
			}
		},
	})
	register(&Entry{
		Name: "max", ArgTypes: []types.Type{types.IntType, types.IntType}, ReturnType: types.IntType,
		GLSLTemplate: "max({0}, {1})",
		VM: func(s stackio.Stack) {
			b, a := popI32(s), popI32(s)
			if a > b {
				pushI32(s, a)
			} else {
				pushI32(s, b)
			}
		},
	})

	register(&Entry{
		Name: "abs", ArgTypes: []types.Type{types.FloatType}, ReturnType: types.FloatType,
		GLSLTemplate: "abs({0})",
		VM: func(s stackio.Stack) {
			v := popF32(s)
			if v < 0 {
				v = -v
			}
			pushF32(s, v)
		},
	})
	register(&Entry{
		Name: "abs", ArgTypes: []types.Type{types.IntType}, ReturnType: types.IntType,
		GLSLTemplate: "abs({0})",
		VM: func(s stackio.Stack) {
			v := popI32(s)
			if v < 0 {
				v = -v
			}
			pushI32(s, v)
		},
	})
	register(&Entry{
		Name: "sign", ArgTypes: []types.Type{types.FloatType}, ReturnType: types.FloatType,
		GLSLTemplate: "sign({0})",
		VM: func(s stackio.Stack) {
			v := popF32(s)
			switch {
			case v > 0:
				pushF32(s, 1)
			case v < 0:
				pushF32(s, -1)
			default:
				pushF32(s, 0)
			}
		},
	})
	register(&Entry{
		Name: "sign", ArgTypes: []types.Type{types.IntType}, ReturnType: types.IntType,
		GLSLTemplate: "sign({0})",
		VM: func(s stackio.Stack) {
			v := popI32(s)
			switch {
			case v > 0:
				pushI32(s, 1)
			case v < 0:
				pushI32(s, -1)
			default:
				pushI32(s, 0)
			}
		},
	})
}
