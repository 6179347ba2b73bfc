package queryspec

import (
	"fmt"
	"strings"
)

// Op is the kind of a node in a Predicate tree.
type Op string

const (
	OpTrue      Op = "true"
	OpAnd       Op = "and"
	OpOr        Op = "or"
	OpNot       Op = "not"
	OpCondition Op = "condition"
)

// Expr is the entity-independent shape of a Predicate, used by translators such as the postgres repository.
// OpAnd and OpOr nodes have two children, OpNot has one, OpCondition and OpTrue have none.
type Expr struct {
	Op        Op
	Condition Condition
	Children  []Expr
}

/***** Predicate *****/

// Predicate is an immutable boolean function over one entity of type E.
//
// It is stored as a tree: combining predicates creates new parent nodes and never touches the operands,
// and every node is evaluated against the same entity argument.
// The zero value is the identity predicate which matches everything.
type Predicate[E any] struct {
	root *node[E]
}

type node[E any] struct {
	op        Op
	condition Condition
	test      func(E) bool
	children  []*node[E]
}

// True returns the identity predicate.
func True[E any]() Predicate[E] {
	return Predicate[E]{}
}

// Where builds a predicate from an arbitrary test function.
// Such predicates are evaluated in memory only, repositories that translate predicates reject them.
// It panics if test is nil.
func Where[E any](description string, test func(E) bool) Predicate[E] {
	if test == nil {
		panic(fmt.Sprintf("queryspec: Where(%q) needs a non-nil test function", description))
	}

	return leaf(Condition{Field: FieldCustom, Match: MatchCustom, Value: description}, test)
}

func leaf[E any](condition Condition, test func(E) bool) Predicate[E] {
	return Predicate[E]{root: &node[E]{op: OpCondition, condition: condition, test: test}}
}

// IsTrue reports whether p is the identity predicate.
func (p Predicate[E]) IsTrue() bool {
	return p.root == nil
}

// And returns p ∧ q.
func (p Predicate[E]) And(q Predicate[E]) Predicate[E] {
	return Predicate[E]{root: &node[E]{op: OpAnd, children: []*node[E]{p.root, q.root}}}
}

// Or returns p ∨ q.
func (p Predicate[E]) Or(q Predicate[E]) Predicate[E] {
	return Predicate[E]{root: &node[E]{op: OpOr, children: []*node[E]{p.root, q.root}}}
}

// Not returns ¬p.
func (p Predicate[E]) Not() Predicate[E] {
	return Predicate[E]{root: &node[E]{op: OpNot, children: []*node[E]{p.root}}}
}

// Eval reports whether entity satisfies p.
func (p Predicate[E]) Eval(entity E) bool {
	return p.root.eval(entity)
}

// Filter returns the entities satisfying p, preserving their order.
func (p Predicate[E]) Filter(entities []E) []E {
	matching := make([]E, 0, len(entities))

	for _, entity := range entities {
		if p.Eval(entity) {
			matching = append(matching, entity)
		}
	}

	return matching
}

// Expr returns the tree of p without the evaluation functions.
func (p Predicate[E]) Expr() Expr {
	return p.root.expr()
}

// String renders p in a compact infix form, e.g. "(name eq Alice AND NOT(is_read eq true))".
func (p Predicate[E]) String() string {
	var sb strings.Builder
	p.Expr().write(&sb)

	return sb.String()
}

// a nil node is the identity predicate
func (n *node[E]) eval(entity E) bool {
	if n == nil {
		return true
	}

	switch n.op {
	case OpAnd:
		return n.children[0].eval(entity) && n.children[1].eval(entity)
	case OpOr:
		return n.children[0].eval(entity) || n.children[1].eval(entity)
	case OpNot:
		return !n.children[0].eval(entity)
	default:
		return n.test(entity)
	}
}

func (n *node[E]) expr() Expr {
	if n == nil {
		return Expr{Op: OpTrue}
	}

	e := Expr{Op: n.op, Condition: n.condition}
	for _, child := range n.children {
		e.Children = append(e.Children, child.expr())
	}

	return e
}

func (e Expr) write(sb *strings.Builder) {
	switch e.Op {
	case OpTrue:
		sb.WriteString("TRUE")
	case OpAnd, OpOr:
		sb.WriteString("(")
		e.Children[0].write(sb)
		sb.WriteString(" " + strings.ToUpper(string(e.Op)) + " ")
		e.Children[1].write(sb)
		sb.WriteString(")")
	case OpNot:
		sb.WriteString("NOT(")
		e.Children[0].write(sb)
		sb.WriteString(")")
	default:
		sb.WriteString(e.Condition.String())
	}
}
