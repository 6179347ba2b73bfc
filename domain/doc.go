// Package domain contains the SpendWise entities the query engine filters and eager-loads:
// users, groups, group memberships, invitations, spending limits, transactions, their
// per-member read state and categories.
//
// Each entity is a plain value type with exported fields. Alongside the fields, every entity
// implements the capability interfaces (HasName, HasAmount, HasSentDate, ...) for exactly the
// field families it carries. Generic filters in the queryspec package are bounded by these
// interfaces, so a filter is only available for the entities that can answer it.
package domain
