package criteria

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryobjects"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// Invitation describes a filter over domain.Invitation. Nil fields do not constrain the result.
type Invitation struct {
	ID                  *uuid.UUID `json:"id,omitempty"`
	NotID               *uuid.UUID `json:"not_id,omitempty"`
	SenderID            *uuid.UUID `json:"sender_id,omitempty"`
	NotSenderID         *uuid.UUID `json:"not_sender_id,omitempty"`
	ReceiverID          *uuid.UUID `json:"receiver_id,omitempty"`
	NotReceiverID       *uuid.UUID `json:"not_receiver_id,omitempty"`
	GroupID             *uuid.UUID `json:"group_id,omitempty"`
	NotGroupID          *uuid.UUID `json:"not_group_id,omitempty"`
	SentDate            *time.Time `json:"sent_date,omitempty"`
	NotSentDate         *time.Time `json:"not_sent_date,omitempty"`
	SentDateFrom        *time.Time `json:"sent_date_from,omitempty"`
	SentDateUntil       *time.Time `json:"sent_date_until,omitempty"`
	ResponseDate        *time.Time `json:"response_date,omitempty"`
	NotResponseDate     *time.Time `json:"not_response_date,omitempty"`
	ResponseDateFrom    *time.Time `json:"response_date_from,omitempty"`
	ResponseDateUntil   *time.Time `json:"response_date_until,omitempty"`
	WithoutResponseDate bool       `json:"without_response_date,omitempty"`
	IsAccepted          *bool      `json:"is_accepted,omitempty"`
	WithPendingResponse bool       `json:"with_pending_response,omitempty"`

	And []Invitation `json:"and,omitempty"`
	Or  []Invitation `json:"or,omitempty"`
	Not []Invitation `json:"not,omitempty"`
}

// Compile folds the criteria into a predicate: scalar fields in declaration order, then the And, Or and Not children.
func (c Invitation) Compile() queryspec.Predicate[domain.Invitation] {
	return c.Query().ToPredicate()
}

// Query compiles the criteria into a fresh query specification.
//
//nolint:funlen,gocyclo
func (c Invitation) Query() *queryobjects.InvitationQuery {
	q := queryobjects.NewInvitationQuery()

	if c.ID != nil {
		q.WithID(*c.ID)
	}
	if c.NotID != nil {
		q.NotWithID(*c.NotID)
	}
	if c.SenderID != nil {
		q.WithSenderID(*c.SenderID)
	}
	if c.NotSenderID != nil {
		q.NotWithSenderID(*c.NotSenderID)
	}
	if c.ReceiverID != nil {
		q.WithReceiverID(*c.ReceiverID)
	}
	if c.NotReceiverID != nil {
		q.NotWithReceiverID(*c.NotReceiverID)
	}
	if c.GroupID != nil {
		q.WithGroupID(*c.GroupID)
	}
	if c.NotGroupID != nil {
		q.NotWithGroupID(*c.NotGroupID)
	}
	if c.SentDate != nil {
		q.WithSentDate(*c.SentDate)
	}
	if c.NotSentDate != nil {
		q.NotWithSentDate(*c.NotSentDate)
	}
	if c.SentDateFrom != nil {
		q.WithSentDateFrom(*c.SentDateFrom)
	}
	if c.SentDateUntil != nil {
		q.WithSentDateUntil(*c.SentDateUntil)
	}
	if c.ResponseDate != nil {
		q.WithResponseDate(*c.ResponseDate)
	}
	if c.NotResponseDate != nil {
		q.NotWithResponseDate(*c.NotResponseDate)
	}
	if c.ResponseDateFrom != nil {
		q.WithResponseDateFrom(*c.ResponseDateFrom)
	}
	if c.ResponseDateUntil != nil {
		q.WithResponseDateUntil(*c.ResponseDateUntil)
	}
	if c.WithoutResponseDate {
		q.WithoutResponseDate()
	}
	if c.IsAccepted != nil {
		q.WithIsAccepted(*c.IsAccepted)
	}
	if c.WithPendingResponse {
		q.WithPendingResponse()
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
