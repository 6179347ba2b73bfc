package queryspec

import (
	"context"

	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// Repository is the persistence collaborator a compiled specification is handed to.
// The engine never queries by itself, it only produces the predicate and the include paths.
type Repository[E any] interface {
	// List returns every entity matching predicate, with the relations on the include paths loaded.
	// Implementations without a relation store may ignore includes and must say so;
	// memoryrepo returns entities with the relations they were saved with.
	List(ctx context.Context, predicate Predicate[E], includes []relations.Path[E]) ([]E, error)

	// SingleOrDefault returns the only entity matching predicate, or false if none matches.
	// It fails with ErrMoreThanOneResult if several entities match.
	SingleOrDefault(ctx context.Context, predicate Predicate[E], includes []relations.Path[E]) (E, bool, error)
}

// List runs s against repo.
func List[E any](ctx context.Context, repo Repository[E], s *Specification[E]) ([]E, error) {
	return repo.List(ctx, s.ToPredicate(), s.IncludePaths())
}

// SingleOrDefault runs s against repo expecting at most one result.
func SingleOrDefault[E any](ctx context.Context, repo Repository[E], s *Specification[E]) (E, bool, error) {
	return repo.SingleOrDefault(ctx, s.ToPredicate(), s.IncludePaths())
}
