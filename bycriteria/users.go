package bycriteria

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/criteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// UsersQuery lists users matching Criteria.
type UsersQuery struct {
	Criteria                   criteria.User `json:"criteria"`
	IncludeGroupUsers          bool          `json:"include_group_users"`
	IncludeSentInvitations     bool          `json:"include_sent_invitations"`
	IncludeReceivedInvitations bool          `json:"include_received_invitations"`
	IncludeGroups              bool          `json:"include_groups"`
	IncludeGroupParticipants   bool          `json:"include_group_participants"`
	IncludeTransactions        bool          `json:"include_transactions"`
}

func (q UsersQuery) QueryType() string {
	return "UsersByCriteria"
}

func (q UsersQuery) Specification() *queryspec.Specification[domain.User] {
	query := q.Criteria.Query()
	r := query.Relations()

	return applyIncludes(query.Specification, []includeAction[domain.User]{
		{q.IncludeGroupUsers, r.IncludeGroupUsers()},
		{q.IncludeSentInvitations, r.IncludeSentInvitations()},
		{q.IncludeReceivedInvitations, r.IncludeReceivedInvitations()},
		{q.IncludeGroups, r.IncludeGroupUsers().ThenIncludeGroup()},
		{q.IncludeGroupParticipants, r.IncludeGroupUsers().ThenIncludeGroup().ThenIncludeGroupUsers().ThenIncludeUser()},
		{q.IncludeTransactions, r.IncludeGroupUsers().ThenIncludeTransactionGroupUsers().ThenIncludeTransaction()},
	})
}
