package queryspec

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
)

// WithNoticeType folds in "notice type equals noticeType".
func WithNoticeType[E domain.HasNoticeType](s *Specification[E], op FoldOp, noticeType domain.NoticeType) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldNoticeType, noticeType, func(e E) domain.NoticeType { return e.GetNoticeType() }))
}

// WithTransactionType folds in "transaction type equals transactionType".
func WithTransactionType[E domain.HasTransactionType](s *Specification[E], op FoldOp, transactionType domain.TransactionType) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldTransactionType, transactionType, func(e E) domain.TransactionType { return e.GetTransactionType() }))
}

// WithPreferredTheme folds in "preferred theme equals theme".
func WithPreferredTheme[E domain.HasPreferredTheme](s *Specification[E], op FoldOp, theme domain.Theme) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldPreferredTheme, theme, func(e E) domain.Theme { return e.GetPreferredTheme() }))
}

// WithRole folds in a role match.
func WithRole[E domain.HasRole](s *Specification[E], op FoldOp, role domain.UserRole) *Specification[E] {
	return s.Fold(op, equalLeaf(FieldRole, role, func(e E) domain.UserRole { return e.GetRole() }))
}
