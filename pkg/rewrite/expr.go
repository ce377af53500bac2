package rewrite

import (
	"sort"
	"strings"
)

// Kind tags the variant of an Expr node.
type Kind uint8

const (
	// KindRef marks a Ref node: a propositional variable, a quantified
	// bound symbol, or (inside a rule pattern) a unification variable.
	KindRef Kind = iota
	// KindPropOp marks the application of a registered operator.
	KindPropOp
	// KindForall marks a universal quantifier.
	KindForall
	// KindExists marks an existential quantifier.
	KindExists
)

// Expr is an immutable propositional expression tree. Values are
// hash-consed (see Table): two Exprs built from structurally equal
// shapes are the same handle, so Expr's == compares by identity in
// O(1) while still satisfying value-type structural equality.
//
// Expr deliberately exposes no public fields; construct and inspect
// nodes through the Table and the accessor methods below.
type Expr struct {
	node *node
}

// node is the hash-consed representation shared by every Expr handle
// with the same shape.
type node struct {
	kind Kind
	name Name    // KindRef, KindForall/KindExists (bound variable)
	op   OpID    // KindPropOp
	args []Expr  // KindPropOp
	body Expr    // KindForall, KindExists
	rank uint64  // insertion order within the Table; identifies the node in shape keys
}

// Table hash-conses Expr nodes for one proving session. All Expr
// values that will ever be compared to each other (rule patterns,
// replacements, the start and goal of a proof, every candidate the
// search engine produces) must be built through the same Table.
//
// Table is not safe for concurrent use; per the package's concurrency
// model, construction happens during parsing/rule installation, which
// does not interleave with Rewriter.Prove.
type Table struct {
	byShape map[string]Expr
	next    uint64
}

// NewTable creates an empty hash-consing table.
func NewTable() *Table {
	return &Table{byShape: make(map[string]Expr, 256)}
}

// intern returns the canonical Expr for n's shape, constructing a new
// handle on first sight and reusing the existing one otherwise.
func (t *Table) intern(n *node) Expr {
	key := shapeKey(n)
	if e, ok := t.byShape[key]; ok {
		return e
	}
	n.rank = t.next
	t.next++
	e := Expr{node: n}
	t.byShape[key] = e
	return e
}

// shapeKey builds a string uniquely identifying a node's shape. It is
// only used as a map key inside Table and is never exposed.
func shapeKey(n *node) string {
	var b strings.Builder
	writeShapeKey(&b, n)
	return b.String()
}

func writeShapeKey(b *strings.Builder, n *node) {
	switch n.kind {
	case KindRef:
		b.WriteByte('R')
		writeInt(b, int64(n.name))
	case KindPropOp:
		b.WriteByte('P')
		writeInt(b, int64(n.op))
		for _, a := range n.args {
			b.WriteByte(',')
			writeInt(b, int64(a.node.rank))
		}
	case KindForall:
		b.WriteByte('A')
		writeInt(b, int64(n.name))
		b.WriteByte(':')
		writeInt(b, int64(n.body.node.rank))
	case KindExists:
		b.WriteByte('E')
		writeInt(b, int64(n.name))
		b.WriteByte(':')
		writeInt(b, int64(n.body.node.rank))
	}
}

func writeInt(b *strings.Builder, v int64) {
	b.WriteString(itoa(v))
}

// itoa is a trivial base-10 integer formatter used to build shape
// keys.
func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Ref constructs (or reuses) a Ref node naming name.
func (t *Table) Ref(name Name) Expr {
	return t.intern(&node{kind: KindRef, name: name})
}

// PropOp constructs (or reuses) the application of op to args. The
// caller is responsible for ensuring len(args) matches the operator's
// registered arity; Table itself does not hold a Registry and cannot
// check this.
func (t *Table) PropOp(op OpID, args ...Expr) Expr {
	cp := make([]Expr, len(args))
	copy(cp, args)
	return t.intern(&node{kind: KindPropOp, op: op, args: cp})
}

// Forall constructs (or reuses) a universal quantifier binding name
// over body.
func (t *Table) Forall(name Name, body Expr) Expr {
	return t.intern(&node{kind: KindForall, name: name, body: body})
}

// Exists constructs (or reuses) an existential quantifier binding name
// over body.
func (t *Table) Exists(name Name, body Expr) Expr {
	return t.intern(&node{kind: KindExists, name: name, body: body})
}

// Kind returns e's variant tag.
func (e Expr) Kind() Kind { return e.node.kind }

// RefName returns the bound name of a KindRef node. It panics if e is
// not a Ref; callers should check Kind first.
func (e Expr) RefName() Name {
	if e.node.kind != KindRef {
		panic("rewrite: RefName on non-Ref Expr")
	}
	return e.node.name
}

// Op returns the operator id of a KindPropOp node.
func (e Expr) Op() OpID {
	if e.node.kind != KindPropOp {
		panic("rewrite: Op on non-PropOp Expr")
	}
	return e.node.op
}

// Args returns the argument list of a KindPropOp node. The returned
// slice must not be mutated by the caller.
func (e Expr) Args() []Expr {
	if e.node.kind != KindPropOp {
		panic("rewrite: Args on non-PropOp Expr")
	}
	return e.node.args
}

// QuantName returns the bound name of a KindForall/KindExists node.
func (e Expr) QuantName() Name {
	if e.node.kind != KindForall && e.node.kind != KindExists {
		panic("rewrite: QuantName on non-quantifier Expr")
	}
	return e.node.name
}

// QuantBody returns the body of a KindForall/KindExists node.
func (e Expr) QuantBody() Expr {
	if e.node.kind != KindForall && e.node.kind != KindExists {
		panic("rewrite: QuantBody on non-quantifier Expr")
	}
	return e.node.body
}

// Equal reports structural equality. Because every Expr in play is
// interned through the same Table, this degenerates to pointer
// identity; it remains correct (if slower) when comparing handles
// minted by two different Tables, which should not normally happen
// within one proving session.
func (e Expr) Equal(other Expr) bool {
	if e.node == other.node {
		return true
	}
	if e.node == nil || other.node == nil {
		return false
	}
	a, b := e.node, other.node
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindRef:
		return a.name == b.name
	case KindPropOp:
		if a.op != b.op || len(a.args) != len(b.args) {
			return false
		}
		for i := range a.args {
			if !a.args[i].Equal(b.args[i]) {
				return false
			}
		}
		return true
	case KindForall, KindExists:
		return a.name == b.name && a.body.Equal(b.body)
	}
	return false
}

// IsZero reports whether e is the zero Expr (no node at all), useful
// for "not found" / "absent" sentinel returns.
func (e Expr) IsZero() bool { return e.node == nil }

// Less defines a total, deterministic order over Exprs. Its only
// contract is determinism: it exists to break ties in the search
// engine's priority queue, not to carry any semantic meaning. Ordering
// is by kind first, then structurally: Refs by name handle, PropOps by
// operator id, then arity, then arguments left to right, and
// quantifiers by bound name, then body.
func (e Expr) Less(other Expr) bool {
	if e.node == other.node {
		return false
	}
	a, b := e.node, other.node
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	switch a.kind {
	case KindRef:
		return a.name < b.name
	case KindPropOp:
		if a.op != b.op {
			return a.op < b.op
		}
		if len(a.args) != len(b.args) {
			return len(a.args) < len(b.args)
		}
		for i := range a.args {
			if a.args[i].Equal(b.args[i]) {
				continue
			}
			return a.args[i].Less(b.args[i])
		}
		return false
	case KindForall, KindExists:
		if a.name != b.name {
			return a.name < b.name
		}
		return a.body.Less(b.body)
	}
	return a.rank < b.rank
}

// Size returns the postorder node count of e: 1 for a Ref, 1 plus the
// sum of argument sizes for a PropOp, 1 plus the body size for a
// quantifier.
func Size(e Expr) int {
	switch e.Kind() {
	case KindRef:
		return 1
	case KindPropOp:
		total := 1
		for _, a := range e.Args() {
			total += Size(a)
		}
		return total
	case KindForall, KindExists:
		return 1 + Size(e.QuantBody())
	}
	return 0
}

// SortExprs sorts a slice of Exprs in place using Less, useful for
// producing deterministic output in tests and diagnostics.
func SortExprs(es []Expr) {
	sort.Slice(es, func(i, j int) bool { return es[i].Less(es[j]) })
}
