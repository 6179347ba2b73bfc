// Package bycriteria answers "list the entities matching these criteria" requests.
//
// Each query type pairs the criteria of one entity with boolean include flags. Building the
// specification compiles the criteria and turns every set flag into its include path, e.g.
// UsersQuery.IncludeGroupParticipants requests GroupUsers.Group.GroupUsers.User.
// A QueryHandler hands the resulting predicate and include paths to a queryspec.Repository.
package bycriteria
