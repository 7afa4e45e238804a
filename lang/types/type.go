// Package types defines the static type system shared by the resolver, the
// bytecode compiler, the virtual machine and the GLSL emitter: scalars,
// fixed-size vectors and matrices, and user-declared structs.
package types

import "fmt"

// Kind discriminates the variants of Type.
type Kind uint8

const ( //nolint:revive
	Void Kind = iota
	I32
	F32
	TypeRef // unresolved, holds the source identifier in Type.Name
	Vector
	Matrix
	Struct
)

// StructID identifies a StructDecl inside a Table. Struct declarations are
// kept in an arena and referenced by id rather than by pointer so that
// mutually-referencing struct fields don't require a cyclic pointer graph.
type StructID int

// Type is the sum type of every type a Motokigo expression can have. The
// zero value is Void.
type Type struct {
	Kind Kind

	// Name holds the unresolved identifier for TypeRef, or the declared name
	// for Struct (used for diagnostics and structural equality).
	Name string

	// Elem is the element type of a Vector or Matrix; always F32 in this
	// language but kept general so the type carries its own size logic.
	Elem *Type

	// Rows is a Vector's component count, or a Matrix's row count.
	Rows int
	// Cols is a Matrix's column count; 0 for every other Kind.
	Cols int

	// ID is valid only when Kind == Struct.
	ID StructID
}

// Void, Int and Float are the three types with no further parameters.
var (
	VoidType  = Type{Kind: Void}
	IntType   = Type{Kind: I32}
	FloatType = Type{Kind: F32}
)

// Ref builds an unresolved TypeRef for identifier name.
func Ref(name string) Type { return Type{Kind: TypeRef, Name: name} }

// MakeVector builds a Vector type of the given element type and size.
func MakeVector(elem Type, size int) Type {
	e := elem
	return Type{Kind: Vector, Elem: &e, Rows: size}
}

// MakeMatrix builds a Matrix type of the given element type, rows and cols.
func MakeMatrix(elem Type, rows, cols int) Type {
	e := elem
	return Type{Kind: Matrix, Elem: &e, Rows: rows, Cols: cols}
}

// MakeStruct builds a Struct type referencing id, named name.
func MakeStruct(name string, id StructID) Type {
	return Type{Kind: Struct, Name: name, ID: id}
}

// IsVoid reports whether t is the Void type.
func (t Type) IsVoid() bool { return t.Kind == Void }

// Equal reports whether t and o denote the same type. Two struct types are
// equal iff their declared identifiers match (structural equality elsewhere).
func Equal(t, o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Void, I32, F32:
		return true
	case TypeRef:
		return t.Name == o.Name
	case Vector:
		return t.Rows == o.Rows && Equal(*t.Elem, *o.Elem)
	case Matrix:
		return t.Rows == o.Rows && t.Cols == o.Cols && Equal(*t.Elem, *o.Elem)
	case Struct:
		return t.Name == o.Name
	default:
		return false
	}
}

// EqualSlice reports whether two argument-type tuples match exactly,
// element-wise, with no coercion.
func EqualSlice(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Size returns the byte size of t. structs resolves Struct sizes; it may be
// nil if t is known not to contain a Struct.
func (t Type) Size(structs *Table) int {
	switch t.Kind {
	case Void:
		return 0
	case I32, F32:
		return 4
	case Vector:
		return t.Elem.Size(structs) * t.Rows
	case Matrix:
		return t.Elem.Size(structs) * t.Rows * t.Cols
	case Struct:
		return structs.Get(t.ID).Size
	default:
		// TypeRef: unresolved, has no defined size.
		return 0
	}
}

// String renders t using the Motokigo source spelling (Int, Float, Vec3,
// Mat2x3, a struct's declared name, ...).
func (t Type) String() string {
	switch t.Kind {
	case Void:
		return "void"
	case I32:
		return "Int"
	case F32:
		return "Float"
	case TypeRef:
		return t.Name
	case Vector:
		return fmt.Sprintf("Vec%d", t.Rows)
	case Matrix:
		if t.Rows == t.Cols {
			return fmt.Sprintf("Mat%d", t.Rows)
		}
		return fmt.Sprintf("Mat%dx%d", t.Rows, t.Cols)
	case Struct:
		return t.Name
	default:
		return "<invalid type>"
	}
}

// Member is one field of a struct, in declaration order.
type Member struct {
	Name string
	Type Type
	// Offset is the byte offset from the start of the struct, filled by the
	// resolver once every member's size is known.
	Offset int
}

// StructDecl describes a user struct after resolution: members in
// declaration order and its cached total byte size.
type StructDecl struct {
	Name    string
	Members []Member
	Size    int // filled by the resolver: sum of member sizes
}

// MemberByName returns the member named n and true, or the zero Member and
// false if no such member exists.
func (d *StructDecl) MemberByName(n string) (Member, bool) {
	for _, m := range d.Members {
		if m.Name == n {
			return m, true
		}
	}
	return Member{}, false
}

// Table is the arena of struct declarations for one program, indexed by
// StructID so that Type values referencing structs need not hold pointers.
type Table struct {
	decls  []*StructDecl
	byName map[string]StructID
}

// NewTable returns an empty struct table.
func NewTable() *Table {
	return &Table{byName: make(map[string]StructID)}
}

// Declare reserves a new StructID for name and returns it. The caller fills
// in Members and Size afterwards via Get.
func (t *Table) Declare(name string) StructID {
	id := StructID(len(t.decls))
	t.decls = append(t.decls, &StructDecl{Name: name})
	t.byName[name] = id
	return id
}

// Lookup returns the StructID declared for name, or false if none exists.
func (t *Table) Lookup(name string) (StructID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// Get returns the declaration for id. id must have come from Declare on the
// same table.
func (t *Table) Get(id StructID) *StructDecl {
	return t.decls[id]
}

// Len returns the number of struct declarations in the table.
func (t *Table) Len() int { return len(t.decls) }
