package bycriteria

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/criteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// TransactionsQuery lists transactions matching Criteria.
type TransactionsQuery struct {
	Criteria            criteria.Transaction `json:"criteria"`
	IncludeCategory     bool                 `json:"include_category"`
	IncludeGroups       bool                 `json:"include_groups"`
	IncludeUsers        bool                 `json:"include_users"`
	IncludeParticipants bool                 `json:"include_participants"`
}

func (q TransactionsQuery) QueryType() string {
	return "TransactionsByCriteria"
}

func (q TransactionsQuery) Specification() *queryspec.Specification[domain.Transaction] {
	query := q.Criteria.Query()
	r := query.Relations()
	groupUser := r.IncludeTransactionGroupUsers().ThenIncludeGroupUser()

	return applyIncludes(query.Specification, []includeAction[domain.Transaction]{
		{q.IncludeCategory, r.IncludeCategory()},
		{q.IncludeGroups, groupUser.ThenIncludeGroup()},
		{q.IncludeUsers, groupUser.ThenIncludeUser()},
		{q.IncludeParticipants, groupUser.ThenIncludeGroup().ThenIncludeGroupUsers().ThenIncludeUser()},
	})
}
