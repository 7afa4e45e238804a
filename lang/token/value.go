package token

// Value carries the literal payload scanned alongside a Token: the raw
// source text, its position, and (for INT/FLOAT) the parsed numeric value.
type Value struct {
	Raw   string
	Pos   Pos
	Int   int64
	Float float64
}
