package queryobjects

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// GroupUserQuery is the query specification for domain.GroupUser.
// With methods fold with queryspec.And, NotWith methods with queryspec.Not.
type GroupUserQuery struct {
	*queryspec.Specification[domain.GroupUser]
}

// NewGroupUserQuery returns an empty GroupUserQuery, which matches every groupUser until filters are added.
func NewGroupUserQuery() *GroupUserQuery {
	return &GroupUserQuery{Specification: queryspec.New[domain.GroupUser]()}
}

// Relations starts an include path for domain.GroupUser, to be passed to Include once completed.
func (q *GroupUserQuery) Relations() relations.GroupUserRoot {
	return relations.ForGroupUser()
}

// Include adds include paths completed from Relations.
func (q *GroupUserQuery) Include(chains ...relations.Completed[domain.GroupUser]) *GroupUserQuery {
	q.Specification.Include(chains...)
	return q
}

// WithID selects the membership with id.
func (q *GroupUserQuery) WithID(id uuid.UUID) *GroupUserQuery {
	queryspec.WithID(q.Specification, queryspec.And, id)
	return q
}

// NotWithID excludes the membership with id.
func (q *GroupUserQuery) NotWithID(id uuid.UUID) *GroupUserQuery {
	queryspec.WithID(q.Specification, queryspec.Not, id)
	return q
}

// WithRole matches memberships whose role is role.
func (q *GroupUserQuery) WithRole(role domain.UserRole) *GroupUserQuery {
	queryspec.WithRole(q.Specification, queryspec.And, role)
	return q
}

// NotWithRole negates WithRole.
func (q *GroupUserQuery) NotWithRole(role domain.UserRole) *GroupUserQuery {
	queryspec.WithRole(q.Specification, queryspec.Not, role)
	return q
}

// WithUserID matches memberships whose user id is userID.
func (q *GroupUserQuery) WithUserID(userID uuid.UUID) *GroupUserQuery {
	queryspec.WithUserID(q.Specification, queryspec.And, userID)
	return q
}

// NotWithUserID negates WithUserID.
func (q *GroupUserQuery) NotWithUserID(userID uuid.UUID) *GroupUserQuery {
	queryspec.WithUserID(q.Specification, queryspec.Not, userID)
	return q
}

// WithGroupID matches memberships whose group id is groupID.
func (q *GroupUserQuery) WithGroupID(groupID uuid.UUID) *GroupUserQuery {
	queryspec.WithGroupID(q.Specification, queryspec.And, groupID)
	return q
}

// NotWithGroupID negates WithGroupID.
func (q *GroupUserQuery) NotWithGroupID(groupID uuid.UUID) *GroupUserQuery {
	queryspec.WithGroupID(q.Specification, queryspec.Not, groupID)
	return q
}

// WithTransactionGroupUser matches the membership a transaction was shared with through transactionGroupUserID.
func (q *GroupUserQuery) WithTransactionGroupUser(transactionGroupUserID uuid.UUID) *GroupUserQuery {
	queryspec.WithTransactionGroupUser(q.Specification, queryspec.And, transactionGroupUserID)
	return q
}

// NotWithTransactionGroupUser excludes the membership behind transactionGroupUserID.
func (q *GroupUserQuery) NotWithTransactionGroupUser(transactionGroupUserID uuid.UUID) *GroupUserQuery {
	queryspec.WithTransactionGroupUser(q.Specification, queryspec.Not, transactionGroupUserID)
	return q
}
