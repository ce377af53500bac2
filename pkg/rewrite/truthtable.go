package rewrite

import "fmt"

// TruthTable is a bit-packed boolean function of n inputs, represented
// as a bit vector of length 2^n. For an input assignment
// (b0, ..., b_{n-1}), the indexed bit sits at position
// sum(bi * 2^i), little-endian by argument position. TruthTable
// equality is used to identify operators structurally, as an
// alternative to comparing op IDs.
type TruthTable struct {
	arity int
	bits  []uint64
}

// NewTruthTable allocates a table for a function of the given arity,
// with every entry initially false.
func NewTruthTable(arity int) TruthTable {
	n := 1 << uint(arity)
	words := (n + 63) / 64
	return TruthTable{arity: arity, bits: make([]uint64, words)}
}

// Arity returns the number of boolean inputs the table describes.
func (t TruthTable) Arity() int {
	return t.arity
}

// index computes the little-endian bit position for an assignment.
func index(assignment []bool) int {
	k := 0
	for i, b := range assignment {
		if b {
			k |= 1 << uint(i)
		}
	}
	return k
}

// Set records the output of the function for the given input
// assignment. len(assignment) must equal t.Arity().
func (t TruthTable) Set(assignment []bool, value bool) {
	i := index(assignment)
	word, bit := i/64, uint(i%64)
	if value {
		t.bits[word] |= 1 << bit
	} else {
		t.bits[word] &^= 1 << bit
	}
}

// Get returns the recorded output for the given input assignment.
func (t TruthTable) Get(assignment []bool) bool {
	i := index(assignment)
	word, bit := i/64, uint(i%64)
	return t.bits[word]&(1<<bit) != 0
}

// Equal reports whether two tables describe the same function: same
// arity and identical bits.
func (t TruthTable) Equal(other TruthTable) bool {
	if t.arity != other.arity || len(t.bits) != len(other.bits) {
		return false
	}
	for i := range t.bits {
		if t.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

// String renders the table as the ordered sequence of output bits,
// useful for debugging small tables.
func (t TruthTable) String() string {
	n := 1 << uint(t.arity)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		word, bit := i/64, uint(i%64)
		if t.bits[word]&(1<<bit) != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return fmt.Sprintf("TT%d[%s]", t.arity, out)
}

// tableFromRows builds a TruthTable of the given arity whose true rows
// are exactly those listed, each row given as a little-endian bit
// assignment. It is the convenience constructor used to build the
// built-in operator tables in one expression.
func tableFromRows(arity int, trueRows ...[]bool) TruthTable {
	t := NewTruthTable(arity)
	for _, row := range trueRows {
		t.Set(row, true)
	}
	return t
}
