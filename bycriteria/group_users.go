package bycriteria

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/criteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// GroupUsersQuery lists group memberships matching Criteria.
type GroupUsersQuery struct {
	Criteria            criteria.GroupUser `json:"criteria"`
	IncludeUser         bool               `json:"include_user"`
	IncludeGroup        bool               `json:"include_group"`
	IncludeLimit        bool               `json:"include_limit"`
	IncludeTransactions bool               `json:"include_transactions"`
}

func (q GroupUsersQuery) QueryType() string {
	return "GroupUsersByCriteria"
}

func (q GroupUsersQuery) Specification() *queryspec.Specification[domain.GroupUser] {
	query := q.Criteria.Query()
	r := query.Relations()

	return applyIncludes(query.Specification, []includeAction[domain.GroupUser]{
		{q.IncludeUser, r.IncludeUser()},
		{q.IncludeGroup, r.IncludeGroup()},
		{q.IncludeLimit, r.IncludeLimit()},
		{q.IncludeTransactions, r.IncludeTransactionGroupUsers().ThenIncludeTransaction()},
	})
}
