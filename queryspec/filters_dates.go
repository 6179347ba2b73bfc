package queryspec

import (
	"time"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
)

// Date filters compare calendar days in UTC, the time of day is ignored.
// The From and Until bounds are inclusive.

/***** date *****/

// WithDate folds in "date falls on the UTC day of date".
func WithDate[E domain.HasDate](s *Specification[E], op FoldOp, date time.Time) *Specification[E] {
	return s.Fold(op, dateLeaf(FieldDate, MatchOnDay, date, func(e E) time.Time { return e.GetDate() }))
}

// WithDateFrom folds in "date on or after the UTC day of from".
func WithDateFrom[E domain.HasDate](s *Specification[E], op FoldOp, from time.Time) *Specification[E] {
	return s.Fold(op, dateLeaf(FieldDate, MatchOnOrAfterDay, from, func(e E) time.Time { return e.GetDate() }))
}

// WithDateUntil folds in "date on or before the UTC day of until".
func WithDateUntil[E domain.HasDate](s *Specification[E], op FoldOp, until time.Time) *Specification[E] {
	return s.Fold(op, dateLeaf(FieldDate, MatchOnOrBeforeDay, until, func(e E) time.Time { return e.GetDate() }))
}

/***** sent date *****/

// WithSentDate folds in "sent date falls on the UTC day of date".
func WithSentDate[E domain.HasSentDate](s *Specification[E], op FoldOp, date time.Time) *Specification[E] {
	return s.Fold(op, dateLeaf(FieldSentDate, MatchOnDay, date, func(e E) time.Time { return e.GetSentDate() }))
}

// WithSentDateFrom folds in "sent date on or after the UTC day of from".
func WithSentDateFrom[E domain.HasSentDate](s *Specification[E], op FoldOp, from time.Time) *Specification[E] {
	return s.Fold(op, dateLeaf(FieldSentDate, MatchOnOrAfterDay, from, func(e E) time.Time { return e.GetSentDate() }))
}

// WithSentDateUntil folds in "sent date on or before the UTC day of until".
func WithSentDateUntil[E domain.HasSentDate](s *Specification[E], op FoldOp, until time.Time) *Specification[E] {
	return s.Fold(op, dateLeaf(FieldSentDate, MatchOnOrBeforeDay, until, func(e E) time.Time { return e.GetSentDate() }))
}

/***** response date *****/

// WithResponseDate folds in "response date falls on the UTC day of date".
func WithResponseDate[E domain.HasResponseDate](s *Specification[E], op FoldOp, date time.Time) *Specification[E] {
	return s.Fold(op, optionalDateLeaf(FieldResponseDate, MatchOnDay, date, func(e E) *time.Time { return e.GetResponseDate() }))
}

// WithResponseDateFrom folds in "response date on or after the UTC day of from".
func WithResponseDateFrom[E domain.HasResponseDate](s *Specification[E], op FoldOp, from time.Time) *Specification[E] {
	return s.Fold(op, optionalDateLeaf(FieldResponseDate, MatchOnOrAfterDay, from, func(e E) *time.Time { return e.GetResponseDate() }))
}

// WithResponseDateUntil folds in "response date on or before the UTC day of until".
func WithResponseDateUntil[E domain.HasResponseDate](s *Specification[E], op FoldOp, until time.Time) *Specification[E] {
	return s.Fold(op, optionalDateLeaf(FieldResponseDate, MatchOnOrBeforeDay, until, func(e E) *time.Time { return e.GetResponseDate() }))
}

// WithoutResponseDate folds in "not answered yet".
func WithoutResponseDate[E domain.HasResponseDate](s *Specification[E], op FoldOp) *Specification[E] {
	return s.Fold(op, isNullLeaf(FieldResponseDate, func(e E) *time.Time { return e.GetResponseDate() }))
}

/***** date of registration *****/

// WithDateOfRegistration folds in "date of registration falls on the UTC day of date".
func WithDateOfRegistration[E domain.HasDateOfRegistration](s *Specification[E], op FoldOp, date time.Time) *Specification[E] {
	return s.Fold(op, dateLeaf(FieldDateOfRegistration, MatchOnDay, date, func(e E) time.Time { return e.GetDateOfRegistration() }))
}

// WithDateOfRegistrationFrom folds in "date of registration on or after the UTC day of from".
func WithDateOfRegistrationFrom[E domain.HasDateOfRegistration](s *Specification[E], op FoldOp, from time.Time) *Specification[E] {
	return s.Fold(op, dateLeaf(FieldDateOfRegistration, MatchOnOrAfterDay, from, func(e E) time.Time { return e.GetDateOfRegistration() }))
}

// WithDateOfRegistrationUntil folds in "date of registration on or before the UTC day of until".
func WithDateOfRegistrationUntil[E domain.HasDateOfRegistration](s *Specification[E], op FoldOp, until time.Time) *Specification[E] {
	return s.Fold(op, dateLeaf(FieldDateOfRegistration, MatchOnOrBeforeDay, until, func(e E) time.Time { return e.GetDateOfRegistration() }))
}
