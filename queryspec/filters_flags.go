package queryspec

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
)

// WithIsAccepted folds in an answered invitation with the given answer. Pending invitations never match.
func WithIsAccepted[E domain.HasIsAccepted](s *Specification[E], op FoldOp, accepted bool) *Specification[E] {
	return s.Fold(op, optionalEqualLeaf(FieldIsAccepted, accepted, func(e E) *bool { return e.GetIsAccepted() }))
}

// WithPendingResponse folds in "not answered yet".
func WithPendingResponse[E domain.HasIsAccepted](s *Specification[E], op FoldOp) *Specification[E] {
	return s.Fold(op, isNullLeaf(FieldIsAccepted, func(e E) *bool { return e.GetIsAccepted() }))
}

// WithIsRead folds in "is read equals read".
func WithIsRead[E domain.HasIsRead](s *Specification[E], op FoldOp, read bool) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldIsRead, read, func(e E) bool { return e.GetIsRead() }))
}

// WithEmailConfirmed folds in "email confirmed equals confirmed".
func WithEmailConfirmed[E domain.HasEmailConfirmed](s *Specification[E], op FoldOp, confirmed bool) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldEmailConfirmed, confirmed, func(e E) bool { return e.GetIsEmailConfirmed() }))
}

// WithTwoFactorEnabled folds in "two factor enabled equals enabled".
func WithTwoFactorEnabled[E domain.HasTwoFactorEnabled](s *Specification[E], op FoldOp, enabled bool) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldTwoFactorEnabled, enabled, func(e E) bool { return e.GetIsTwoFactorEnabled() }))
}
