package criteria

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryobjects"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// GroupUser describes a filter over domain.GroupUser. Nil fields do not constrain the result.
type GroupUser struct {
	ID         *uuid.UUID       `json:"id,omitempty"`
	NotID      *uuid.UUID       `json:"not_id,omitempty"`
	Role       *domain.UserRole `json:"role,omitempty"`
	NotRole    *domain.UserRole `json:"not_role,omitempty"`
	UserID     *uuid.UUID       `json:"user_id,omitempty"`
	NotUserID  *uuid.UUID       `json:"not_user_id,omitempty"`
	GroupID    *uuid.UUID       `json:"group_id,omitempty"`
	NotGroupID *uuid.UUID       `json:"not_group_id,omitempty"`

	// Related entities, matched by id.
	TransactionGroupUserID    *uuid.UUID `json:"transaction_group_user_id,omitempty"`
	NotTransactionGroupUserID *uuid.UUID `json:"not_transaction_group_user_id,omitempty"`

	And []GroupUser `json:"and,omitempty"`
	Or  []GroupUser `json:"or,omitempty"`
	Not []GroupUser `json:"not,omitempty"`
}

// Compile folds the criteria into a predicate: scalar fields in declaration order, then the And, Or and Not children.
func (c GroupUser) Compile() queryspec.Predicate[domain.GroupUser] {
	return c.Query().ToPredicate()
}

// Query compiles the criteria into a fresh query specification.
//
//nolint:funlen,gocyclo
func (c GroupUser) Query() *queryobjects.GroupUserQuery {
	q := queryobjects.NewGroupUserQuery()

	if c.ID != nil {
		q.WithID(*c.ID)
	}
	if c.NotID != nil {
		q.NotWithID(*c.NotID)
	}
	if c.Role != nil {
		q.WithRole(*c.Role)
	}
	if c.NotRole != nil {
		q.NotWithRole(*c.NotRole)
	}
	if c.UserID != nil {
		q.WithUserID(*c.UserID)
	}
	if c.NotUserID != nil {
		q.NotWithUserID(*c.NotUserID)
	}
	if c.GroupID != nil {
		q.WithGroupID(*c.GroupID)
	}
	if c.NotGroupID != nil {
		q.NotWithGroupID(*c.NotGroupID)
	}
	if c.TransactionGroupUserID != nil {
		q.WithTransactionGroupUser(*c.TransactionGroupUserID)
	}
	if c.NotTransactionGroupUserID != nil {
		q.NotWithTransactionGroupUser(*c.NotTransactionGroupUserID)
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
