package queryspec

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
)

// WithAmount folds in an exact amount match. Amounts are minor currency units.
func WithAmount[E domain.HasAmount](s *Specification[E], op FoldOp, amount int64) *Specification[E] {
	return s.Fold(op, amountLeaf(MatchEqual, amount, func(e E) int64 { return e.GetAmount() }))
}

// WithAmountGreaterThan folds in a strict lower bound on the amount.
func WithAmountGreaterThan[E domain.HasAmount](s *Specification[E], op FoldOp, amount int64) *Specification[E] {
	return s.Fold(op, amountLeaf(MatchGreaterThan, amount, func(e E) int64 { return e.GetAmount() }))
}

// WithAmountLessThan folds in a strict upper bound on the amount.
func WithAmountLessThan[E domain.HasAmount](s *Specification[E], op FoldOp, amount int64) *Specification[E] {
	return s.Fold(op, amountLeaf(MatchLessThan, amount, func(e E) int64 { return e.GetAmount() }))
}
