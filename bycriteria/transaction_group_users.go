package bycriteria

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/criteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// TransactionGroupUsersQuery lists transaction participations matching Criteria.
type TransactionGroupUsersQuery struct {
	Criteria            criteria.TransactionGroupUser `json:"criteria"`
	IncludeTransactions bool                          `json:"include_transactions"`
	IncludeCategory     bool                          `json:"include_category"`
	IncludeUser         bool                          `json:"include_user"`
}

func (q TransactionGroupUsersQuery) QueryType() string {
	return "TransactionGroupUsersByCriteria"
}

func (q TransactionGroupUsersQuery) Specification() *queryspec.Specification[domain.TransactionGroupUser] {
	query := q.Criteria.Query()
	r := query.Relations()

	return applyIncludes(query.Specification, []includeAction[domain.TransactionGroupUser]{
		{q.IncludeTransactions, r.IncludeTransaction()},
		{q.IncludeCategory, r.IncludeTransaction().ThenIncludeCategory()},
		{q.IncludeUser, r.IncludeGroupUser().ThenIncludeUser()},
	})
}
