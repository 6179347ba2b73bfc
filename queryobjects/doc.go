// Package queryobjects provides one fluent query specification per SpendWise entity.
//
// Each type wraps a queryspec.Specification and exposes only the filters its entity supports,
// plus the include paths rooted at that entity:
//
//	q := queryobjects.NewUserQuery().
//		WithName("Alice").
//		NotWithEmailDomain("example.com")
//	q.Include(q.Relations().IncludeGroupUsers().ThenIncludeGroup())
//
//	users, err := queryspec.List(ctx, repo, q.Specification)
package queryobjects
