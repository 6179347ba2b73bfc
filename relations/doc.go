// Package relations builds eager-load paths through the cyclic SpendWise entity graph.
//
// Every root entity has a chain of state interfaces. Each state only offers the relations that are
// reachable from the current position and not on the path yet, so a duplicate or impossible path
// does not compile:
//
//	participants := relations.ForUser().
//		IncludeGroupUsers().
//		ThenIncludeGroup().
//		ThenIncludeGroupUsers().
//		ThenIncludeUser()
//
//	participants.Path().String() // "GroupUsers.Group.GroupUsers.User"
//
// A chain describes one path. Sibling relations are requested as separate chains, e.g. both
// IncludeSentInvitations() and IncludeReceivedInvitations() handed to the same specification.
// The root state has no Path method, so an empty chain cannot be used as an include.
package relations
