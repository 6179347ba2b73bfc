package bycriteria

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/criteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// LimitsQuery lists spending limits matching Criteria.
type LimitsQuery struct {
	Criteria         criteria.Limit `json:"criteria"`
	IncludeGroupUser bool           `json:"include_group_user"`
	IncludeUser      bool           `json:"include_user"`
	IncludeGroup     bool           `json:"include_group"`
}

func (q LimitsQuery) QueryType() string {
	return "LimitsByCriteria"
}

func (q LimitsQuery) Specification() *queryspec.Specification[domain.Limit] {
	query := q.Criteria.Query()
	r := query.Relations()

	return applyIncludes(query.Specification, []includeAction[domain.Limit]{
		{q.IncludeGroupUser, r.IncludeGroupUser()},
		{q.IncludeUser, r.IncludeGroupUser().ThenIncludeUser()},
		{q.IncludeGroup, r.IncludeGroupUser().ThenIncludeGroup()},
	})
}
