package queryspec

import "errors"

// ErrUnsupportedCapability is returned when a filter is requested for an entity type that lacks the field family.
var ErrUnsupportedCapability = errors.New("entity type does not support the requested filter capability")

// ErrUnsupportedMatch is returned when a match kind is not defined for a field family, e.g. "contains" on an amount.
var ErrUnsupportedMatch = errors.New("match kind is not supported for the field")

// ErrInvalidCriterionValue is returned when a Criterion value has the wrong type for its field.
var ErrInvalidCriterionValue = errors.New("invalid criterion value")

// ErrUnknownField is returned for a Criterion addressing a field that does not exist.
var ErrUnknownField = errors.New("unknown criterion field")

// ErrMoreThanOneResult is returned by Repository.SingleOrDefault when several entities match.
var ErrMoreThanOneResult = errors.New("more than one entity matches the predicate")
