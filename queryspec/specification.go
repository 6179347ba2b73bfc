package queryspec

import (
	"slices"

	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// FoldOp selects how a new predicate is merged into a Specification's accumulator.
type FoldOp int

const (
	And FoldOp = iota
	Or
	Not
)

// String returns the name of op.
func (op FoldOp) String() string {
	switch op {
	case And:
		return "and"
	case Or:
		return "or"
	case Not:
		return "not"
	default:
		return "unknown"
	}
}

/***** Specification *****/

// Specification accumulates the filter and the eager-load paths for one query over E.
//
// Filters are merged by a left-to-right running fold over a single accumulator:
//
//   - And(p): empty → p, else acc ∧ p
//   - Or(p):  empty → p, else acc ∨ p
//   - Not(p): empty → ¬p, else acc ∧ ¬p
//
// There is no operator precedence. And(A).Or(B).And(C) is ((A ∨ B) ∧ C).
// To express A ∧ (B ∨ C), build (B ∨ C) as its own predicate first and fold it in with a single And.
//
// A Specification is mutable and must not be shared between goroutines or reused across requests.
type Specification[E any] struct {
	accumulator *Predicate[E]
	includes    []relations.Path[E]
}

// New returns an empty Specification.
func New[E any]() *Specification[E] {
	return &Specification[E]{}
}

// And folds p into the accumulator with a conjunction.
func (s *Specification[E]) And(p Predicate[E]) *Specification[E] {
	if s.accumulator == nil {
		s.accumulator = &p
		return s
	}

	merged := s.accumulator.And(p)
	s.accumulator = &merged

	return s
}

// Or folds p into the accumulator with a disjunction over the whole accumulated state.
func (s *Specification[E]) Or(p Predicate[E]) *Specification[E] {
	if s.accumulator == nil {
		s.accumulator = &p
		return s
	}

	merged := s.accumulator.Or(p)
	s.accumulator = &merged

	return s
}

// Not folds the negation of p into the accumulator with a conjunction.
func (s *Specification[E]) Not(p Predicate[E]) *Specification[E] {
	negated := p.Not()

	if s.accumulator == nil {
		s.accumulator = &negated
		return s
	}

	merged := s.accumulator.And(negated)
	s.accumulator = &merged

	return s
}

// Fold dispatches to And, Or or Not.
func (s *Specification[E]) Fold(op FoldOp, p Predicate[E]) *Specification[E] {
	switch op {
	case Or:
		return s.Or(p)
	case Not:
		return s.Not(p)
	default:
		return s.And(p)
	}
}

// ToPredicate returns the accumulated predicate, or the identity predicate if nothing was folded in.
func (s *Specification[E]) ToPredicate() Predicate[E] {
	if s.accumulator == nil {
		return True[E]()
	}

	return *s.accumulator
}

// IsEmpty reports whether no predicate was folded in yet.
func (s *Specification[E]) IsEmpty() bool {
	return s.accumulator == nil
}

// Clear drops the accumulated predicate. Include paths are kept.
func (s *Specification[E]) Clear() *Specification[E] {
	s.accumulator = nil

	return s
}

// Include adds the paths of completed include chains. A path that is already present is ignored.
func (s *Specification[E]) Include(chains ...relations.Completed[E]) *Specification[E] {
	for _, chain := range chains {
		path := chain.Path()

		if slices.ContainsFunc(s.includes, func(p relations.Path[E]) bool { return p.Equal(path) }) {
			continue
		}

		s.includes = append(s.includes, path)
	}

	return s
}

// IncludePaths returns the include paths in the order they were added.
func (s *Specification[E]) IncludePaths() []relations.Path[E] {
	return slices.Clone(s.includes)
}

// Includes returns the dotted tokens of all include paths, e.g. "GroupUsers", "GroupUsers.Group",
// de-duplicated and in the order they were first requested.
func (s *Specification[E]) Includes() []string {
	tokens := make([]string, 0)

	for _, path := range s.includes {
		for _, token := range path.Tokens() {
			if !slices.Contains(tokens, token) {
				tokens = append(tokens, token)
			}
		}
	}

	return tokens
}
