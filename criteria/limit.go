package criteria

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryobjects"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// Limit describes a filter over domain.Limit. Nil fields do not constrain the result.
type Limit struct {
	ID                *uuid.UUID         `json:"id,omitempty"`
	NotID             *uuid.UUID         `json:"not_id,omitempty"`
	GroupUserID       *uuid.UUID         `json:"group_user_id,omitempty"`
	NotGroupUserID    *uuid.UUID         `json:"not_group_user_id,omitempty"`
	Amount            *int64             `json:"amount,omitempty"`
	NotAmount         *int64             `json:"not_amount,omitempty"`
	AmountGreaterThan *int64             `json:"amount_greater_than,omitempty"`
	AmountLessThan    *int64             `json:"amount_less_than,omitempty"`
	NoticeType        *domain.NoticeType `json:"notice_type,omitempty"`
	NotNoticeType     *domain.NoticeType `json:"not_notice_type,omitempty"`

	And []Limit `json:"and,omitempty"`
	Or  []Limit `json:"or,omitempty"`
	Not []Limit `json:"not,omitempty"`
}

// Compile folds the criteria into a predicate: scalar fields in declaration order, then the And, Or and Not children.
func (c Limit) Compile() queryspec.Predicate[domain.Limit] {
	return c.Query().ToPredicate()
}

// Query compiles the criteria into a fresh query specification.
//
//nolint:funlen,gocyclo
func (c Limit) Query() *queryobjects.LimitQuery {
	q := queryobjects.NewLimitQuery()

	if c.ID != nil {
		q.WithID(*c.ID)
	}
	if c.NotID != nil {
		q.NotWithID(*c.NotID)
	}
	if c.GroupUserID != nil {
		q.WithGroupUserID(*c.GroupUserID)
	}
	if c.NotGroupUserID != nil {
		q.NotWithGroupUserID(*c.NotGroupUserID)
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
	if c.NoticeType != nil {
		q.WithNoticeType(*c.NoticeType)
	}
	if c.NotNoticeType != nil {
		q.NotWithNoticeType(*c.NotNoticeType)
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
