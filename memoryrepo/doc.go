// Package memoryrepo provides an in-memory queryspec.Repository.
//
// Predicates are evaluated with Predicate.Eval against the stored entities, so every filter
// behaves exactly as its in-memory definition, including Where leaves that have no SQL form.
// Relations are returned as they were saved: the repository does not hydrate include paths,
// it records them per call so callers can assert what would have been loaded.
package memoryrepo
