package bycriteria

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/criteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// GroupsQuery lists groups matching Criteria.
// Including transactions or categories also includes the members' users.
type GroupsQuery struct {
	Criteria            criteria.Group `json:"criteria"`
	IncludeUsers        bool           `json:"include_users"`
	IncludeLimits       bool           `json:"include_limits"`
	IncludeInvitations  bool           `json:"include_invitations"`
	IncludeTransactions bool           `json:"include_transactions"`
	IncludeCategories   bool           `json:"include_categories"`
}

func (q GroupsQuery) QueryType() string {
	return "GroupsByCriteria"
}

func (q GroupsQuery) Specification() *queryspec.Specification[domain.Group] {
	query := q.Criteria.Query()
	r := query.Relations()

	return applyIncludes(query.Specification, []includeAction[domain.Group]{
		{q.IncludeUsers || q.IncludeTransactions || q.IncludeCategories, r.IncludeGroupUsers().ThenIncludeUser()},
		{q.IncludeLimits, r.IncludeGroupUsers().ThenIncludeLimit()},
		{q.IncludeInvitations, r.IncludeInvitations()},
		{q.IncludeTransactions, r.IncludeGroupUsers().ThenIncludeTransactionGroupUsers().ThenIncludeTransaction()},
		{
			q.IncludeCategories,
			r.IncludeGroupUsers().ThenIncludeTransactionGroupUsers().ThenIncludeTransaction().ThenIncludeCategory(),
		},
	})
}
