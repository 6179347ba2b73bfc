package bycriteria

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/criteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// CategoriesQuery lists categories matching Criteria.
type CategoriesQuery struct {
	Criteria            criteria.Category `json:"criteria"`
	IncludeTransactions bool              `json:"include_transactions"`
}

func (q CategoriesQuery) QueryType() string {
	return "CategoriesByCriteria"
}

func (q CategoriesQuery) Specification() *queryspec.Specification[domain.Category] {
	query := q.Criteria.Query()

	return applyIncludes(query.Specification, []includeAction[domain.Category]{
		{q.IncludeTransactions, query.Relations().IncludeTransactions()},
	})
}
