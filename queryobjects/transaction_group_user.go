package queryobjects

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// TransactionGroupUserQuery is the query specification for domain.TransactionGroupUser.
// With methods fold with queryspec.And, NotWith methods with queryspec.Not.
type TransactionGroupUserQuery struct {
	*queryspec.Specification[domain.TransactionGroupUser]
}

// NewTransactionGroupUserQuery returns an empty TransactionGroupUserQuery, which matches every transactionGroupUser until filters are added.
func NewTransactionGroupUserQuery() *TransactionGroupUserQuery {
	return &TransactionGroupUserQuery{Specification: queryspec.New[domain.TransactionGroupUser]()}
}

// Relations starts an include path for domain.TransactionGroupUser, to be passed to Include once completed.
func (q *TransactionGroupUserQuery) Relations() relations.TransactionGroupUserRoot {
	return relations.ForTransactionGroupUser()
}

// Include adds include paths completed from Relations.
func (q *TransactionGroupUserQuery) Include(chains ...relations.Completed[domain.TransactionGroupUser]) *TransactionGroupUserQuery {
	q.Specification.Include(chains...)
	return q
}

// WithID selects the entry with id.
func (q *TransactionGroupUserQuery) WithID(id uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithID(q.Specification, queryspec.And, id)
	return q
}

// NotWithID excludes the entry with id.
func (q *TransactionGroupUserQuery) NotWithID(id uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithID(q.Specification, queryspec.Not, id)
	return q
}

// WithTransactionID matches entries whose transaction id is transactionID.
func (q *TransactionGroupUserQuery) WithTransactionID(transactionID uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithTransactionID(q.Specification, queryspec.And, transactionID)
	return q
}

// NotWithTransactionID negates WithTransactionID.
func (q *TransactionGroupUserQuery) NotWithTransactionID(transactionID uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithTransactionID(q.Specification, queryspec.Not, transactionID)
	return q
}

// WithGroupUserID matches entries whose group user id is groupUserID.
func (q *TransactionGroupUserQuery) WithGroupUserID(groupUserID uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithGroupUserID(q.Specification, queryspec.And, groupUserID)
	return q
}

// NotWithGroupUserID negates WithGroupUserID.
func (q *TransactionGroupUserQuery) NotWithGroupUserID(groupUserID uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithGroupUserID(q.Specification, queryspec.Not, groupUserID)
	return q
}

// WithIsRead matches entries whose read flag equals read.
func (q *TransactionGroupUserQuery) WithIsRead(isRead bool) *TransactionGroupUserQuery {
	queryspec.WithIsRead(q.Specification, queryspec.And, isRead)
	return q
}

// WithTransactionParticipant matches every entry of the transaction that transactionGroupUserID belongs to.
func (q *TransactionGroupUserQuery) WithTransactionParticipant(transactionGroupUserID uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithTransactionParticipant(q.Specification, queryspec.And, transactionGroupUserID)
	return q
}

// NotWithTransactionParticipant excludes the entries of the transaction that transactionGroupUserID belongs to.
func (q *TransactionGroupUserQuery) NotWithTransactionParticipant(transactionGroupUserID uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithTransactionParticipant(q.Specification, queryspec.Not, transactionGroupUserID)
	return q
}

// WithGroup matches entries whose transaction is shared with a member of the group.
func (q *TransactionGroupUserQuery) WithGroup(groupID uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithTransactionParticipatingGroup(q.Specification, queryspec.And, groupID)
	return q
}

// NotWithGroup matches entries whose transaction has no participant from the group.
func (q *TransactionGroupUserQuery) NotWithGroup(groupID uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithTransactionParticipatingGroup(q.Specification, queryspec.Not, groupID)
	return q
}

// WithUser matches entries whose transaction is shared with the user.
func (q *TransactionGroupUserQuery) WithUser(userID uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithTransactionParticipatingUser(q.Specification, queryspec.And, userID)
	return q
}

// NotWithUser matches entries whose transaction is not shared with the user.
func (q *TransactionGroupUserQuery) NotWithUser(userID uuid.UUID) *TransactionGroupUserQuery {
	queryspec.WithTransactionParticipatingUser(q.Specification, queryspec.Not, userID)
	return q
}
