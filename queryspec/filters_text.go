package queryspec

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
)

/***** identity *****/

// WithID folds in an id match.
func WithID[E domain.Entity](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, idLeaf(id, func(e E) uuid.UUID { return e.GetID() }))
}

/***** name *****/

// WithName folds in an exact name match.
func WithName[E domain.HasName](s *Specification[E], op FoldOp, name string) *Specification[E] {
	return s.Fold(op, textLeaf(FieldName, MatchEqual, name, func(e E) string { return e.GetName() }))
}

// WithNamePartialMatch folds in a case-sensitive substring match on the name.
func WithNamePartialMatch[E domain.HasName](s *Specification[E], op FoldOp, part string) *Specification[E] {
	return s.Fold(op, textLeaf(FieldName, MatchContains, part, func(e E) string { return e.GetName() }))
}

/***** surname *****/

// WithSurname folds in an exact surname match.
func WithSurname[E domain.HasSurname](s *Specification[E], op FoldOp, surname string) *Specification[E] {
	return s.Fold(op, textLeaf(FieldSurname, MatchEqual, surname, func(e E) string { return e.GetSurname() }))
}

// WithSurnamePartialMatch folds in "surname contains part".
func WithSurnamePartialMatch[E domain.HasSurname](s *Specification[E], op FoldOp, part string) *Specification[E] {
	return s.Fold(op, textLeaf(FieldSurname, MatchContains, part, func(e E) string { return e.GetSurname() }))
}

// WithFullName folds in an exact match on "Name Surname".
func WithFullName[E domain.HasFullName](s *Specification[E], op FoldOp, fullName string) *Specification[E] {
	return s.Fold(op, fullNameLeaf(
		fullName,
		func(e E) string { return e.GetName() },
		func(e E) string { return e.GetSurname() },
	))
}

/***** description *****/

// WithDescription folds in an exact description match. Absent descriptions never match.
func WithDescription[E domain.HasDescription](s *Specification[E], op FoldOp, description string) *Specification[E] {
	return s.Fold(op, optionalTextLeaf(FieldDescription, MatchEqual, description, func(e E) *string { return e.GetDescription() }))
}

// WithDescriptionPartialMatch folds in "description contains part".
func WithDescriptionPartialMatch[E domain.HasDescription](s *Specification[E], op FoldOp, part string) *Specification[E] {
	return s.Fold(op, optionalTextLeaf(FieldDescription, MatchContains, part, func(e E) *string { return e.GetDescription() }))
}

// WithoutDescription folds in "description is absent".
func WithoutDescription[E domain.HasDescription](s *Specification[E], op FoldOp) *Specification[E] {
	return s.Fold(op, isNullLeaf(FieldDescription, func(e E) *string { return e.GetDescription() }))
}

/***** color *****/

// WithColor folds in an exact color match.
func WithColor[E domain.HasColor](s *Specification[E], op FoldOp, color string) *Specification[E] {
	return s.Fold(op, textLeaf(FieldColor, MatchEqual, color, func(e E) string { return e.GetColor() }))
}

/***** email *****/

// WithEmail folds in an exact email match.
func WithEmail[E domain.HasEmail](s *Specification[E], op FoldOp, email string) *Specification[E] {
	return s.Fold(op, textLeaf(FieldEmail, MatchEqual, email, func(e E) string { return e.GetEmail() }))
}

// WithEmailPartialMatch folds in "email contains part".
func WithEmailPartialMatch[E domain.HasEmail](s *Specification[E], op FoldOp, part string) *Specification[E] {
	return s.Fold(op, textLeaf(FieldEmail, MatchContains, part, func(e E) string { return e.GetEmail() }))
}

// WithEmailDomain folds in "email ends with @domain".
func WithEmailDomain[E domain.HasEmail](s *Specification[E], op FoldOp, emailDomain string) *Specification[E] {
	return s.Fold(op, textLeaf(FieldEmail, MatchEndsWith, "@"+emailDomain, func(e E) string { return e.GetEmail() }))
}

/***** credentials *****/

// WithPasswordHash folds in "password hash equals hash".
func WithPasswordHash[E domain.HasPasswordHash](s *Specification[E], op FoldOp, hash string) *Specification[E] {
	return s.Fold(op, textLeaf(FieldPasswordHash, MatchEqual, hash, func(e E) string { return e.GetPasswordHash() }))
}

// WithResetPasswordToken folds in "reset password token equals token".
func WithResetPasswordToken[E domain.HasResetPasswordToken](s *Specification[E], op FoldOp, token string) *Specification[E] {
	return s.Fold(op, optionalTextLeaf(FieldResetPasswordToken, MatchEqual, token, func(e E) *string { return e.GetResetPasswordToken() }))
}

// WithoutResetPasswordToken folds in "no password reset is pending".
func WithoutResetPasswordToken[E domain.HasResetPasswordToken](s *Specification[E], op FoldOp) *Specification[E] {
	return s.Fold(op, isNullLeaf(FieldResetPasswordToken, func(e E) *string { return e.GetResetPasswordToken() }))
}
