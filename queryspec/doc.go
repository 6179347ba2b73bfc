// Package queryspec composes filters over SpendWise entities into a single predicate and carries
// the eager-load paths requested alongside them.
//
// A Predicate is an immutable boolean tree over one entity type. A Specification folds predicates
// into one running accumulator, left to right and without precedence:
//
//	spec := queryspec.New[domain.User]()
//	queryspec.WithName(spec, queryspec.And, "Alice")
//	queryspec.WithSurname(spec, queryspec.Or, "Brown") // (name = Alice) OR (surname = Brown)
//
// Filter functions are bounded by the capability interfaces of the domain package, so
// queryspec.WithAmount(spec, queryspec.And, 500) does not compile for a domain.User.
// Filters arriving as data go through Criterion and Apply, which reject an unsupported field with
// ErrUnsupportedCapability before any predicate is built:
//
//	err := spec.Apply(queryspec.And, queryspec.Criterion{Field: queryspec.FieldAmount, Match: queryspec.MatchGreaterThan, Value: 500})
//
// An empty Specification yields the identity predicate, which matches every entity.
package queryspec
