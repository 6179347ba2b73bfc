package queryspec

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
)

// WithIcon folds in "icon has content".
func WithIcon[E domain.HasIcon](s *Specification[E], op FoldOp) *Specification[E] {
	return s.Fold(op, contentLeaf(FieldIcon, true, func(e E) []byte { return e.GetIcon() }))
}

// WithoutIcon folds in "icon is absent or empty".
func WithoutIcon[E domain.HasIcon](s *Specification[E], op FoldOp) *Specification[E] {
	return s.Fold(op, contentLeaf(FieldIcon, false, func(e E) []byte { return e.GetIcon() }))
}

// WithPhoto folds in "photo has content".
func WithPhoto[E domain.HasPhoto](s *Specification[E], op FoldOp) *Specification[E] {
	return s.Fold(op, contentLeaf(FieldPhoto, true, func(e E) []byte { return e.GetPhoto() }))
}

// WithoutPhoto folds in "photo is absent or empty".
func WithoutPhoto[E domain.HasPhoto](s *Specification[E], op FoldOp) *Specification[E] {
	return s.Fold(op, contentLeaf(FieldPhoto, false, func(e E) []byte { return e.GetPhoto() }))
}
