package queryobjects

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// InvitationQuery is the query specification for domain.Invitation.
// With methods fold with queryspec.And, NotWith methods with queryspec.Not.
type InvitationQuery struct {
	*queryspec.Specification[domain.Invitation]
}

// NewInvitationQuery returns an empty InvitationQuery, which matches every invitation until filters are added.
func NewInvitationQuery() *InvitationQuery {
	return &InvitationQuery{Specification: queryspec.New[domain.Invitation]()}
}

// Relations starts an include path for domain.Invitation, to be passed to Include once completed.
func (q *InvitationQuery) Relations() relations.InvitationRoot {
	return relations.ForInvitation()
}

// Include adds include paths completed from Relations.
func (q *InvitationQuery) Include(chains ...relations.Completed[domain.Invitation]) *InvitationQuery {
	q.Specification.Include(chains...)
	return q
}

// WithID selects the invitation with id.
func (q *InvitationQuery) WithID(id uuid.UUID) *InvitationQuery {
	queryspec.WithID(q.Specification, queryspec.And, id)
	return q
}

// NotWithID excludes the invitation with id.
func (q *InvitationQuery) NotWithID(id uuid.UUID) *InvitationQuery {
	queryspec.WithID(q.Specification, queryspec.Not, id)
	return q
}

// WithSenderID matches invitations whose sender id is senderID.
func (q *InvitationQuery) WithSenderID(senderID uuid.UUID) *InvitationQuery {
	queryspec.WithSenderID(q.Specification, queryspec.And, senderID)
	return q
}

// NotWithSenderID negates WithSenderID.
func (q *InvitationQuery) NotWithSenderID(senderID uuid.UUID) *InvitationQuery {
	queryspec.WithSenderID(q.Specification, queryspec.Not, senderID)
	return q
}

// WithReceiverID matches invitations whose receiver id is receiverID.
func (q *InvitationQuery) WithReceiverID(receiverID uuid.UUID) *InvitationQuery {
	queryspec.WithReceiverID(q.Specification, queryspec.And, receiverID)
	return q
}

// NotWithReceiverID negates WithReceiverID.
func (q *InvitationQuery) NotWithReceiverID(receiverID uuid.UUID) *InvitationQuery {
	queryspec.WithReceiverID(q.Specification, queryspec.Not, receiverID)
	return q
}

// WithGroupID matches invitations whose group id is groupID.
func (q *InvitationQuery) WithGroupID(groupID uuid.UUID) *InvitationQuery {
	queryspec.WithGroupID(q.Specification, queryspec.And, groupID)
	return q
}

// NotWithGroupID negates WithGroupID.
func (q *InvitationQuery) NotWithGroupID(groupID uuid.UUID) *InvitationQuery {
	queryspec.WithGroupID(q.Specification, queryspec.Not, groupID)
	return q
}

// WithSentDate matches invitations whose sent date falls on the UTC day of sentDate.
func (q *InvitationQuery) WithSentDate(sentDate time.Time) *InvitationQuery {
	queryspec.WithSentDate(q.Specification, queryspec.And, sentDate)
	return q
}

// NotWithSentDate negates WithSentDate.
func (q *InvitationQuery) NotWithSentDate(sentDate time.Time) *InvitationQuery {
	queryspec.WithSentDate(q.Specification, queryspec.Not, sentDate)
	return q
}

// WithSentDateFrom matches invitations sent on or after the given day.
func (q *InvitationQuery) WithSentDateFrom(from time.Time) *InvitationQuery {
	queryspec.WithSentDateFrom(q.Specification, queryspec.And, from)
	return q
}

// WithSentDateUntil matches invitations up to and including the UTC day of until.
func (q *InvitationQuery) WithSentDateUntil(until time.Time) *InvitationQuery {
	queryspec.WithSentDateUntil(q.Specification, queryspec.And, until)
	return q
}

// WithResponseDate matches invitations whose response date falls on the UTC day of responseDate.
func (q *InvitationQuery) WithResponseDate(responseDate time.Time) *InvitationQuery {
	queryspec.WithResponseDate(q.Specification, queryspec.And, responseDate)
	return q
}

// NotWithResponseDate negates WithResponseDate.
func (q *InvitationQuery) NotWithResponseDate(responseDate time.Time) *InvitationQuery {
	queryspec.WithResponseDate(q.Specification, queryspec.Not, responseDate)
	return q
}

// WithResponseDateFrom matches invitations from the UTC day of from on.
func (q *InvitationQuery) WithResponseDateFrom(from time.Time) *InvitationQuery {
	queryspec.WithResponseDateFrom(q.Specification, queryspec.And, from)
	return q
}

// WithResponseDateUntil matches invitations up to and including the UTC day of until.
func (q *InvitationQuery) WithResponseDateUntil(until time.Time) *InvitationQuery {
	queryspec.WithResponseDateUntil(q.Specification, queryspec.And, until)
	return q
}

// WithoutResponseDate matches invitations without a response date.
func (q *InvitationQuery) WithoutResponseDate() *InvitationQuery {
	queryspec.WithoutResponseDate(q.Specification, queryspec.And)
	return q
}

// WithIsAccepted matches answered invitations with the given answer.
func (q *InvitationQuery) WithIsAccepted(isAccepted bool) *InvitationQuery {
	queryspec.WithIsAccepted(q.Specification, queryspec.And, isAccepted)
	return q
}

// WithPendingResponse matches invitations nobody answered yet.
func (q *InvitationQuery) WithPendingResponse() *InvitationQuery {
	queryspec.WithPendingResponse(q.Specification, queryspec.And)
	return q
}
