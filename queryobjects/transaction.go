package queryobjects

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// TransactionQuery is the query specification for domain.Transaction.
// With methods fold with queryspec.And, NotWith methods with queryspec.Not.
type TransactionQuery struct {
	*queryspec.Specification[domain.Transaction]
}

// NewTransactionQuery returns an empty TransactionQuery, which matches every transaction until filters are added.
func NewTransactionQuery() *TransactionQuery {
	return &TransactionQuery{Specification: queryspec.New[domain.Transaction]()}
}

// Relations starts an include path for domain.Transaction, to be passed to Include once completed.
func (q *TransactionQuery) Relations() relations.TransactionRoot {
	return relations.ForTransaction()
}

// Include adds include paths completed from Relations.
func (q *TransactionQuery) Include(chains ...relations.Completed[domain.Transaction]) *TransactionQuery {
	q.Specification.Include(chains...)
	return q
}

// WithID selects the transaction with id.
func (q *TransactionQuery) WithID(id uuid.UUID) *TransactionQuery {
	queryspec.WithID(q.Specification, queryspec.And, id)
	return q
}

// NotWithID excludes the transaction with id.
func (q *TransactionQuery) NotWithID(id uuid.UUID) *TransactionQuery {
	queryspec.WithID(q.Specification, queryspec.Not, id)
	return q
}

// WithAmount matches an exact amount in minor currency units.
func (q *TransactionQuery) WithAmount(amount int64) *TransactionQuery {
	queryspec.WithAmount(q.Specification, queryspec.And, amount)
	return q
}

// NotWithAmount negates WithAmount.
func (q *TransactionQuery) NotWithAmount(amount int64) *TransactionQuery {
	queryspec.WithAmount(q.Specification, queryspec.Not, amount)
	return q
}

// WithAmountGreaterThan matches transactions above amount.
func (q *TransactionQuery) WithAmountGreaterThan(amount int64) *TransactionQuery {
	queryspec.WithAmountGreaterThan(q.Specification, queryspec.And, amount)
	return q
}

// WithAmountLessThan matches transactions below amount.
func (q *TransactionQuery) WithAmountLessThan(amount int64) *TransactionQuery {
	queryspec.WithAmountLessThan(q.Specification, queryspec.And, amount)
	return q
}

// WithDate matches transactions whose date falls on the UTC day of date.
func (q *TransactionQuery) WithDate(date time.Time) *TransactionQuery {
	queryspec.WithDate(q.Specification, queryspec.And, date)
	return q
}

// NotWithDate negates WithDate.
func (q *TransactionQuery) NotWithDate(date time.Time) *TransactionQuery {
	queryspec.WithDate(q.Specification, queryspec.Not, date)
	return q
}

// WithDateFrom matches transactions booked on or after the given day.
func (q *TransactionQuery) WithDateFrom(from time.Time) *TransactionQuery {
	queryspec.WithDateFrom(q.Specification, queryspec.And, from)
	return q
}

// WithDateUntil matches transactions up to and including the UTC day of until.
func (q *TransactionQuery) WithDateUntil(until time.Time) *TransactionQuery {
	queryspec.WithDateUntil(q.Specification, queryspec.And, until)
	return q
}

// WithDescription matches transactions whose description is description.
func (q *TransactionQuery) WithDescription(description string) *TransactionQuery {
	queryspec.WithDescription(q.Specification, queryspec.And, description)
	return q
}

// NotWithDescription negates WithDescription.
func (q *TransactionQuery) NotWithDescription(description string) *TransactionQuery {
	queryspec.WithDescription(q.Specification, queryspec.Not, description)
	return q
}

// WithDescriptionPartialMatch matches transactions whose description contains part.
func (q *TransactionQuery) WithDescriptionPartialMatch(part string) *TransactionQuery {
	queryspec.WithDescriptionPartialMatch(q.Specification, queryspec.And, part)
	return q
}

// NotWithDescriptionPartialMatch negates WithDescriptionPartialMatch.
func (q *TransactionQuery) NotWithDescriptionPartialMatch(part string) *TransactionQuery {
	queryspec.WithDescriptionPartialMatch(q.Specification, queryspec.Not, part)
	return q
}

// WithoutDescription matches transactions without a description.
func (q *TransactionQuery) WithoutDescription() *TransactionQuery {
	queryspec.WithoutDescription(q.Specification, queryspec.And)
	return q
}

// WithTransactionType matches transactions whose transaction type is transactionType.
func (q *TransactionQuery) WithTransactionType(transactionType domain.TransactionType) *TransactionQuery {
	queryspec.WithTransactionType(q.Specification, queryspec.And, transactionType)
	return q
}

// NotWithTransactionType negates WithTransactionType.
func (q *TransactionQuery) NotWithTransactionType(transactionType domain.TransactionType) *TransactionQuery {
	queryspec.WithTransactionType(q.Specification, queryspec.Not, transactionType)
	return q
}

// WithCategoryID matches transactions whose category id is categoryID.
func (q *TransactionQuery) WithCategoryID(categoryID uuid.UUID) *TransactionQuery {
	queryspec.WithCategoryID(q.Specification, queryspec.And, categoryID)
	return q
}

// NotWithCategoryID negates WithCategoryID.
func (q *TransactionQuery) NotWithCategoryID(categoryID uuid.UUID) *TransactionQuery {
	queryspec.WithCategoryID(q.Specification, queryspec.Not, categoryID)
	return q
}

// WithoutCategory matches transactions without a category.
func (q *TransactionQuery) WithoutCategory() *TransactionQuery {
	queryspec.WithoutCategory(q.Specification, queryspec.And)
	return q
}

// WithTransactionGroupUser matches the transaction linked to transactionGroupUserID.
func (q *TransactionQuery) WithTransactionGroupUser(transactionGroupUserID uuid.UUID) *TransactionQuery {
	queryspec.WithTransactionGroupUser(q.Specification, queryspec.And, transactionGroupUserID)
	return q
}

// NotWithTransactionGroupUser excludes the transaction linked to transactionGroupUserID.
func (q *TransactionQuery) NotWithTransactionGroupUser(transactionGroupUserID uuid.UUID) *TransactionQuery {
	queryspec.WithTransactionGroupUser(q.Specification, queryspec.Not, transactionGroupUserID)
	return q
}

// WithGroup matches transactions shared with a member of the group.
func (q *TransactionQuery) WithGroup(groupID uuid.UUID) *TransactionQuery {
	queryspec.WithParticipatingGroup(q.Specification, queryspec.And, groupID)
	return q
}

// NotWithGroup matches transactions not shared with any member of the group.
func (q *TransactionQuery) NotWithGroup(groupID uuid.UUID) *TransactionQuery {
	queryspec.WithParticipatingGroup(q.Specification, queryspec.Not, groupID)
	return q
}

// WithUser matches transactions shared with the user.
func (q *TransactionQuery) WithUser(userID uuid.UUID) *TransactionQuery {
	queryspec.WithParticipatingUser(q.Specification, queryspec.And, userID)
	return q
}

// NotWithUser matches transactions not shared with the user.
func (q *TransactionQuery) NotWithUser(userID uuid.UUID) *TransactionQuery {
	queryspec.WithParticipatingUser(q.Specification, queryspec.Not, userID)
	return q
}
