// Package fixtures provides a small, fully linked SpendWise data set for tests.
//
// NewWorld builds three users in two groups with memberships, a limit, categories, transactions,
// their participations and invitations. Entities carry IDs and foreign keys only; relation
// fields are left empty so the same world can seed a database or an in-memory repository.
package fixtures
