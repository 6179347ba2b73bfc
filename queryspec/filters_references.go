package queryspec

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
)

// WithUserID folds in "user id = id".
func WithUserID[E domain.HasUserID](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldUserID, id, func(e E) uuid.UUID { return e.GetUserID() }))
}

// WithGroupID folds in "group id = id".
func WithGroupID[E domain.HasGroupID](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldGroupID, id, func(e E) uuid.UUID { return e.GetGroupID() }))
}

// WithGroupUserID folds in "group user id = id".
func WithGroupUserID[E domain.HasGroupUserID](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldGroupUserID, id, func(e E) uuid.UUID { return e.GetGroupUserID() }))
}

// WithTransactionID folds in "transaction id = id".
func WithTransactionID[E domain.HasTransactionID](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldTransactionID, id, func(e E) uuid.UUID { return e.GetTransactionID() }))
}

// WithCategoryID folds in "category id = id".
func WithCategoryID[E domain.HasCategoryID](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, optionalEqualLeaf(FieldCategoryID, id, func(e E) *uuid.UUID { return e.GetCategoryID() }))
}

// WithoutCategory folds in "uncategorized".
func WithoutCategory[E domain.HasCategoryID](s *Specification[E], op FoldOp) *Specification[E] {
	return s.Fold(op, isNullLeaf(FieldCategoryID, func(e E) *uuid.UUID { return e.GetCategoryID() }))
}

// WithSenderID folds in "sender id = id".
func WithSenderID[E domain.HasSenderID](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldSenderID, id, func(e E) uuid.UUID { return e.GetSenderID() }))
}

// WithReceiverID folds in "receiver id = id".
func WithReceiverID[E domain.HasReceiverID](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldReceiverID, id, func(e E) uuid.UUID { return e.GetReceiverID() }))
}
