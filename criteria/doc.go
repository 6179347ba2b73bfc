// Package criteria holds the recursive filter descriptions callers send for each SpendWise entity
// and compiles them into predicates.
//
// A criteria value has optional scalar conditions and three child lists. Compile folds the
// populated scalar fields in declaration order (With fields with And, Not fields with Not), then
// every And child with And, every Or child with Or and every Not child with Not. The fold runs
// left to right over a single accumulator, so {Name: "Alice", Or: [{Name: "Bob"}]} means
// name = Alice OR name = Bob, while Or children on an otherwise empty criteria form a plain disjunction.
//
// An empty criteria value compiles to the predicate matching everything.
package criteria
