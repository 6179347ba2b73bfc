package memoryrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// RecordedQuery is one call the repository served.
type RecordedQuery struct {
	Predicate string
	Includes  []string
}

// Repository keeps entities keyed by ID in insertion order.
// It is safe for concurrent use. Entities are deep-copied on the way in and out.
// Include paths are recorded but not hydrated, relations come back as they were saved.
type Repository[E domain.Entity] struct {
	mu       sync.RWMutex
	order    []uuid.UUID
	entities map[uuid.UUID]E
	queries  []RecordedQuery
}

// New returns a Repository holding the given entities.
func New[E domain.Entity](entities ...E) (*Repository[E], error) {
	r := &Repository[E]{entities: make(map[uuid.UUID]E)}
	if err := r.Save(entities...); err != nil {
		return nil, err
	}

	return r, nil
}

// Save inserts the entities, replacing stored ones with the same ID in place.
func (r *Repository[E]) Save(entities ...E) error {
	copies := make([]E, 0, len(entities))
	for _, entity := range entities {
		c, err := clone(entity)
		if err != nil {
			return err
		}
		copies = append(copies, c)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range copies {
		id := c.GetID()
		if _, exists := r.entities[id]; !exists {
			r.order = append(r.order, id)
		}
		r.entities[id] = c
	}

	return nil
}

// Delete removes the entity with the given ID and reports whether it existed.
func (r *Repository[E]) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entities[id]; !exists {
		return false
	}

	delete(r.entities, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return true
}

// Len returns the number of stored entities.
func (r *Repository[E]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Queries returns the calls served so far, oldest first.
func (r *Repository[E]) Queries() []RecordedQuery {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]RecordedQuery(nil), r.queries...)
}

// List returns the matching entities in insertion order.
func (r *Repository[E]) List(
	ctx context.Context,
	predicate queryspec.Predicate[E],
	includes []relations.Path[E],
) ([]E, error) {
	return r.match(ctx, predicate, includes, 0)
}

// SingleOrDefault returns the only matching entity.
func (r *Repository[E]) SingleOrDefault(
	ctx context.Context,
	predicate queryspec.Predicate[E],
	includes []relations.Path[E],
) (E, bool, error) {
	var empty E

	matched, err := r.match(ctx, predicate, includes, 2)
	if err != nil {
		return empty, false, err
	}

	switch len(matched) {
	case 0:
		return empty, false, nil
	case 1:
		return matched[0], true, nil
	default:
		return empty, false, queryspec.ErrMoreThanOneResult
	}
}

// match evaluates predicate over the stored entities, stopping after limit matches if limit > 0.
func (r *Repository[E]) match(
	ctx context.Context,
	predicate queryspec.Predicate[E],
	includes []relations.Path[E],
	limit int,
) ([]E, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.queries = append(r.queries, record(predicate, includes))
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]E, 0)
	for _, id := range r.order {
		entity := r.entities[id]
		if !predicate.Eval(entity) {
			continue
		}

		c, err := clone(entity)
		if err != nil {
			return nil, err
		}
		matched = append(matched, c)

		if limit > 0 && len(matched) == limit {
			break
		}
	}

	return matched, nil
}

func record[E any](predicate queryspec.Predicate[E], includes []relations.Path[E]) RecordedQuery {
	rq := RecordedQuery{Predicate: predicate.String()}
	for _, path := range includes {
		rq.Includes = append(rq.Includes, path.String())
	}

	return rq
}

func clone[E any](entity E) (E, error) {
	var c E

	data, err := codec.Marshal(entity)
	if err != nil {
		return c, err
	}

	if err = codec.Unmarshal(data, &c); err != nil {
		return c, err
	}

	return c, nil
}
