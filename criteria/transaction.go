package criteria

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryobjects"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// Transaction describes a filter over domain.Transaction. Nil fields do not constrain the result.
type Transaction struct {
	ID                         *uuid.UUID              `json:"id,omitempty"`
	NotID                      *uuid.UUID              `json:"not_id,omitempty"`
	Amount                     *int64                  `json:"amount,omitempty"`
	NotAmount                  *int64                  `json:"not_amount,omitempty"`
	AmountGreaterThan          *int64                  `json:"amount_greater_than,omitempty"`
	AmountLessThan             *int64                  `json:"amount_less_than,omitempty"`
	Date                       *time.Time              `json:"date,omitempty"`
	NotDate                    *time.Time              `json:"not_date,omitempty"`
	DateFrom                   *time.Time              `json:"date_from,omitempty"`
	DateUntil                  *time.Time              `json:"date_until,omitempty"`
	Description                *string                 `json:"description,omitempty"`
	NotDescription             *string                 `json:"not_description,omitempty"`
	DescriptionPartialMatch    *string                 `json:"description_partial_match,omitempty"`
	NotDescriptionPartialMatch *string                 `json:"not_description_partial_match,omitempty"`
	WithoutDescription         bool                    `json:"without_description,omitempty"`
	TransactionType            *domain.TransactionType `json:"transaction_type,omitempty"`
	NotTransactionType         *domain.TransactionType `json:"not_transaction_type,omitempty"`
	CategoryID                 *uuid.UUID              `json:"category_id,omitempty"`
	NotCategoryID              *uuid.UUID              `json:"not_category_id,omitempty"`
	WithoutCategory            bool                    `json:"without_category,omitempty"`

	// Related entities, matched by id.
	TransactionGroupUserID    *uuid.UUID `json:"transaction_group_user_id,omitempty"`
	NotTransactionGroupUserID *uuid.UUID `json:"not_transaction_group_user_id,omitempty"`
	GroupID                   *uuid.UUID `json:"group_id,omitempty"`
	NotGroupID                *uuid.UUID `json:"not_group_id,omitempty"`
	UserID                    *uuid.UUID `json:"user_id,omitempty"`
	NotUserID                 *uuid.UUID `json:"not_user_id,omitempty"`

	And []Transaction `json:"and,omitempty"`
	Or  []Transaction `json:"or,omitempty"`
	Not []Transaction `json:"not,omitempty"`
}

// Compile folds the criteria into a predicate: scalar fields in declaration order, then the And, Or and Not children.
func (c Transaction) Compile() queryspec.Predicate[domain.Transaction] {
	return c.Query().ToPredicate()
}

// Query compiles the criteria into a fresh query specification.
//
//nolint:funlen,gocyclo
func (c Transaction) Query() *queryobjects.TransactionQuery {
	q := queryobjects.NewTransactionQuery()

	if c.ID != nil {
		q.WithID(*c.ID)
	}
	if c.NotID != nil {
		q.NotWithID(*c.NotID)
	}
	if c.Amount != nil {
		q.WithAmount(*c.Amount)
	}
	if c.NotAmount != nil {
		q.NotWithAmount(*c.NotAmount)
	}
	if c.AmountGreaterThan != nil {
		q.WithAmountGreaterThan(*c.AmountGreaterThan)
	}
	if c.AmountLessThan != nil {
		q.WithAmountLessThan(*c.AmountLessThan)
	}
	if c.Date != nil {
		q.WithDate(*c.Date)
	}
	if c.NotDate != nil {
		q.NotWithDate(*c.NotDate)
	}
	if c.DateFrom != nil {
		q.WithDateFrom(*c.DateFrom)
	}
	if c.DateUntil != nil {
		q.WithDateUntil(*c.DateUntil)
	}
	if c.Description != nil {
		q.WithDescription(*c.Description)
	}
	if c.NotDescription != nil {
		q.NotWithDescription(*c.NotDescription)
	}
	if c.DescriptionPartialMatch != nil {
		q.WithDescriptionPartialMatch(*c.DescriptionPartialMatch)
	}
	if c.NotDescriptionPartialMatch != nil {
		q.NotWithDescriptionPartialMatch(*c.NotDescriptionPartialMatch)
	}
	if c.WithoutDescription {
		q.WithoutDescription()
	}
	if c.TransactionType != nil {
		q.WithTransactionType(*c.TransactionType)
	}
	if c.NotTransactionType != nil {
		q.NotWithTransactionType(*c.NotTransactionType)
	}
	if c.CategoryID != nil {
		q.WithCategoryID(*c.CategoryID)
	}
	if c.NotCategoryID != nil {
		q.NotWithCategoryID(*c.NotCategoryID)
	}
	if c.WithoutCategory {
		q.WithoutCategory()
	}
	if c.TransactionGroupUserID != nil {
		q.WithTransactionGroupUser(*c.TransactionGroupUserID)
	}
	if c.NotTransactionGroupUserID != nil {
		q.NotWithTransactionGroupUser(*c.NotTransactionGroupUserID)
	}
	if c.GroupID != nil {
		q.WithGroup(*c.GroupID)
	}
	if c.NotGroupID != nil {
		q.NotWithGroup(*c.NotGroupID)
	}
	if c.UserID != nil {
		q.WithUser(*c.UserID)
	}
	if c.NotUserID != nil {
		q.NotWithUser(*c.NotUserID)
	}

	for _, child := range c.And {
		q.And(child.Compile())
	}

	for _, child := range c.Or {
		q.Or(child.Compile())
	}

	for _, child := range c.Not {
		q.Not(child.Compile())
	}

	return q
}
