package rewrite

import "fmt"

// OpID is the dense small integer identifying a registered operator.
type OpID int32

// Well-known operator IDs, fixed at compile time per the operator
// registration order below.
const (
	AndID     OpID = 0
	OrID      OpID = 1
	NotID     OpID = 2
	ImpliesID OpID = 3
	EquivID   OpID = 4
)

// OpDesc fully identifies a registered operator: its dense id, arity,
// surface symbol, and semantic truth table. The truth table fixes the
// operator's meaning but is never consulted by the rewriter at search
// time — it exists for tooling that wants to identify an operator by
// its semantics (TruthTable.Equal) rather than its id.
type OpDesc struct {
	ID     OpID
	Arity  int
	Symbol string
	Table  TruthTable
}

// Registry maps operator ids and surface symbols to descriptors. It is
// populated once at startup with the built-in operators and is not
// extended during parsing (the surface language has no
// operator-definition form — only the five built-ins plus
// forall/exists exist); a Registry is otherwise a plain lookup table
// with two independent indices.
type Registry struct {
	byID     map[OpID]OpDesc
	bySymbol map[Name]OpDesc
	interner *Interner
}

// NewRegistry creates an empty registry bound to interner, which it
// uses to resolve operator symbols to Names for the symbol index.
func NewRegistry(interner *Interner) *Registry {
	return &Registry{
		byID:     make(map[OpID]OpDesc, 8),
		bySymbol: make(map[Name]OpDesc, 8),
		interner: interner,
	}
}

// Add inserts a descriptor by both its id and its interned symbol.
// Re-adding an id that is already present is a programming error and
// panics; re-adding an id is not supported.
func (r *Registry) Add(desc OpDesc) {
	if _, exists := r.byID[desc.ID]; exists {
		panic(fmt.Sprintf("rewrite: operator id %d already registered", desc.ID))
	}
	r.byID[desc.ID] = desc
	sym := r.interner.Intern(desc.Symbol)
	r.bySymbol[sym] = desc
}

// ByID looks up a descriptor by its dense id.
func (r *Registry) ByID(id OpID) (OpDesc, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// BySymbol looks up a descriptor by its interned surface symbol.
func (r *Registry) BySymbol(sym Name) (OpDesc, bool) {
	d, ok := r.bySymbol[sym]
	return d, ok
}

// BySymbolString is a convenience wrapper that interns s before
// looking it up; useful from the codec, which only ever has raw
// identifier text in hand.
func (r *Registry) BySymbolString(s string) (OpDesc, bool) {
	return r.BySymbol(r.interner.Intern(s))
}

// notTable, andTable, orTable, impliesTable, equivTable, and xorTable
// are the semantic tables for the five built-in binary/unary
// connectives, expressed as the rows of assignments that evaluate to
// true. xorTable is defined for completeness and for tests but is
// deliberately not registered as a built-in operator.
var (
	notTable = tableFromRows(1,
		[]bool{true},
	)
	andTable = tableFromRows(2,
		[]bool{true, true},
	)
	orTable = tableFromRows(2,
		[]bool{false, true},
		[]bool{true, false},
		[]bool{true, true},
	)
	impliesTable = tableFromRows(2,
		[]bool{false, false},
		[]bool{false, true},
		[]bool{true, true},
	)
	equivTable = tableFromRows(2,
		[]bool{false, false},
		[]bool{true, true},
	)
	xorTable = tableFromRows(2,
		[]bool{false, true},
		[]bool{true, false},
	)
)

// XORTable exposes the unregistered XOR truth table for callers (and
// tests) that want to reason about it without installing an "xor"
// operator into a Registry.
func XORTable() TruthTable {
	return xorTable
}

// RegisterBuiltins installs the five built-in propositional operators
// into r in their canonical registration order: and, or, implies,
// equiv, not. This order only matters for anything that iterates the
// registry positionally; lookups by id or symbol are unaffected by it.
func RegisterBuiltins(r *Registry) {
	r.Add(OpDesc{ID: AndID, Arity: 2, Symbol: "and", Table: andTable})
	r.Add(OpDesc{ID: OrID, Arity: 2, Symbol: "or", Table: orTable})
	r.Add(OpDesc{ID: ImpliesID, Arity: 2, Symbol: "=>", Table: impliesTable})
	r.Add(OpDesc{ID: EquivID, Arity: 2, Symbol: "equiv", Table: equivTable})
	r.Add(OpDesc{ID: NotID, Arity: 1, Symbol: "not", Table: notTable})
}

// NewBuiltinRegistry is a convenience that creates a registry bound to
// interner and immediately populates it with the built-in operators.
func NewBuiltinRegistry(interner *Interner) *Registry {
	r := NewRegistry(interner)
	RegisterBuiltins(r)
	return r
}
