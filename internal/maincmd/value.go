package maincmd

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Nyrox/motokigo/lang/types"
)

// encodeValue parses raw (a scalar, or a comma-separated list for a vector
// or matrix) into t's wire bytes, little-endian per word, the same layout
// the VM's static section and SetGlobal/GetGlobal use (§6 "Static
// section"). Structs are not settable from the command line: the language
// has no literal syntax for passing one across the host boundary.
func encodeValue(t types.Type, raw string) ([]byte, error) {
	switch t.Kind {
	case types.I32:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("expected an Int, got %q: %w", raw, err)
		}
		return word(uint32(int32(n))), nil
	case types.F32:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
		if err != nil {
			return nil, fmt.Errorf("expected a Float, got %q: %w", raw, err)
		}
		return word(math.Float32bits(float32(f))), nil
	case types.Vector:
		return encodeComponents(*t.Elem, raw, t.Rows)
	case types.Matrix:
		return encodeComponents(*t.Elem, raw, t.Rows*t.Cols)
	default:
		return nil, fmt.Errorf("cannot set a value of type %s from the command line", t)
	}
}

func encodeComponents(elem types.Type, raw string, n int) ([]byte, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated components, got %d", n, len(parts))
	}
	out := make([]byte, 0, n*4)
	for _, p := range parts {
		b, err := encodeValue(elem, p)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func word(w uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, w)
	return b
}

// decodeValue renders t's bytes back to source-like text for CLI output.
func decodeValue(t types.Type, b []byte, structs *types.Table) string {
	switch t.Kind {
	case types.Void:
		return "void"
	case types.I32:
		return strconv.FormatInt(int64(int32(binary.LittleEndian.Uint32(b))), 10)
	case types.F32:
		f := math.Float32frombits(binary.LittleEndian.Uint32(b))
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case types.Vector:
		return decodeComponents(*t.Elem, b, t.Rows, structs)
	case types.Matrix:
		return decodeComponents(*t.Elem, b, t.Rows*t.Cols, structs)
	case types.Struct:
		decl := structs.Get(t.ID)
		parts := make([]string, len(decl.Members))
		for i, m := range decl.Members {
			size := m.Type.Size(structs)
			parts[i] = m.Name + ": " + decodeValue(m.Type, b[m.Offset:m.Offset+size], structs)
		}
		return fmt.Sprintf("%s { %s }", t.Name, strings.Join(parts, ", "))
	default:
		return "<unrepresentable>"
	}
}

func decodeComponents(elem types.Type, b []byte, n int, structs *types.Table) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = decodeValue(elem, b[i*4:i*4+4], structs)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
