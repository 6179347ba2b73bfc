package criteria

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryobjects"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// TransactionGroupUser describes a filter over domain.TransactionGroupUser. Nil fields do not constrain the result.
type TransactionGroupUser struct {
	ID               *uuid.UUID `json:"id,omitempty"`
	NotID            *uuid.UUID `json:"not_id,omitempty"`
	TransactionID    *uuid.UUID `json:"transaction_id,omitempty"`
	NotTransactionID *uuid.UUID `json:"not_transaction_id,omitempty"`
	GroupUserID      *uuid.UUID `json:"group_user_id,omitempty"`
	NotGroupUserID   *uuid.UUID `json:"not_group_user_id,omitempty"`
	IsRead           *bool      `json:"is_read,omitempty"`

	// Related entities, matched by id.
	TransactionParticipantID    *uuid.UUID `json:"transaction_participant_id,omitempty"`
	NotTransactionParticipantID *uuid.UUID `json:"not_transaction_participant_id,omitempty"`
	GroupID                     *uuid.UUID `json:"group_id,omitempty"`
	NotGroupID                  *uuid.UUID `json:"not_group_id,omitempty"`
	UserID                      *uuid.UUID `json:"user_id,omitempty"`
	NotUserID                   *uuid.UUID `json:"not_user_id,omitempty"`

	And []TransactionGroupUser `json:"and,omitempty"`
	Or  []TransactionGroupUser `json:"or,omitempty"`
	Not []TransactionGroupUser `json:"not,omitempty"`
}

// Compile folds the criteria into a predicate: scalar fields in declaration order, then the And, Or and Not children.
func (c TransactionGroupUser) Compile() queryspec.Predicate[domain.TransactionGroupUser] {
	return c.Query().ToPredicate()
}

// Query compiles the criteria into a fresh query specification.
//
//nolint:funlen,gocyclo
func (c TransactionGroupUser) Query() *queryobjects.TransactionGroupUserQuery {
	q := queryobjects.NewTransactionGroupUserQuery()

	if c.ID != nil {
		q.WithID(*c.ID)
	}
	if c.NotID != nil {
		q.NotWithID(*c.NotID)
	}
	if c.TransactionID != nil {
		q.WithTransactionID(*c.TransactionID)
	}
	if c.NotTransactionID != nil {
		q.NotWithTransactionID(*c.NotTransactionID)
	}
	if c.GroupUserID != nil {
		q.WithGroupUserID(*c.GroupUserID)
	}
	if c.NotGroupUserID != nil {
		q.NotWithGroupUserID(*c.NotGroupUserID)
	}
	if c.IsRead != nil {
		q.WithIsRead(*c.IsRead)
	}
	if c.TransactionParticipantID != nil {
		q.WithTransactionParticipant(*c.TransactionParticipantID)
	}
	if c.NotTransactionParticipantID != nil {
		q.NotWithTransactionParticipant(*c.NotTransactionParticipantID)
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
