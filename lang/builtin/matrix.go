package builtin

import (
	"fmt"

	"github.com/Nyrox/motokigo/lang/stackio"
	"github.com/Nyrox/motokigo/lang/types"
)

var matrixShapes = [][2]int{
	{2, 2}, {3, 3}, {4, 4},
	{2, 3}, {2, 4}, {3, 2}, {3, 4}, {4, 2}, {4, 3},
}

func matType(rows, cols int) types.Type { return types.MakeMatrix(types.FloatType, rows, cols) }

func matName(rows, cols int) string {
	if rows == cols {
		return fmt.Sprintf("Mat%d", rows)
	}
	return fmt.Sprintf("Mat%dx%d", rows, cols)
}

func init() {
	for _, shape := range matrixShapes {
		registerMatrixConstructor(shape[0], shape[1])
		registerMatrixArith(shape[0], shape[1])
	}
	for n := 2; n <= 4; n++ {
		registerSquareMatrixVectorMul(n)
	}
}

// registerMatrixConstructor adds Mat{rows}x{cols}(scalar, ..., scalar) from
// rows*cols floats. Like vector constructors, the arguments already occupy
// the right contiguous stack region, so the VM side is the identity.
func registerMatrixConstructor(rows, cols int) {
	n := rows * cols
	args := make([]types.Type, n)
	for i := range args {
		args[i] = types.FloatType
	}
	register(&Entry{
		Name:         matName(rows, cols),
		ArgTypes:     args,
		ReturnType:   matType(rows, cols),
		GLSLTemplate: fmt.Sprintf("mat%s(%s)", matGLSLDims(rows, cols), commaList(n)),
		VM:           func(stackio.Stack) {},
	})
}

func matGLSLDims(rows, cols int) string {
	if rows == cols {
		return fmt.Sprintf("%d", rows)
	}
	return fmt.Sprintf("%dx%d", rows, cols)
}

func registerMatrixArith(rows, cols int) {
	n := rows * cols
	mt := matType(rows, cols)

	register(&Entry{
		Name: "__op_binary_add", ArgTypes: []types.Type{mt, mt}, ReturnType: mt,
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
		Name: "__op_binary_sub", ArgTypes: []types.Type{mt, mt}, ReturnType: mt,
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
		Name: "__op_binary_mul", ArgTypes: []types.Type{mt, types.FloatType}, ReturnType: mt,
		GLSLTemplate: "{0} * {1}",
		VM: func(s stackio.Stack) {
			scalar := popF32(s)
			m := popVec(s, n)
			out := make([]float32, n)
			for i := range out {
				out[i] = m[i] * scalar
			}
			pushVec(s, out)
		},
	})
}

// registerSquareMatrixVectorMul adds MatN * VecN -> VecN for the transform
// use case a shading language exists for, with matrices stored row-major
// (row r, column c at index r*n+c).
func registerSquareMatrixVectorMul(n int) {
	mt := matType(n, n)
	vt := vecType(n)
	register(&Entry{
		Name: "__op_binary_mul", ArgTypes: []types.Type{mt, vt}, ReturnType: vt,
		GLSLTemplate: "{0} * {1}",
		VM: func(s stackio.Stack) {
			v := popVec(s, n)
			m := popVec(s, n*n)
			out := make([]float32, n)
			for r := 0; r < n; r++ {
				var sum float32
				for c := 0; c < n; c++ {
					sum += m[r*n+c] * v[c]
				}
				out[r] = sum
			}
			pushVec(s, out)
		},
	})
}
