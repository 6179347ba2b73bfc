package queryobjects

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// GroupQuery is the query specification for domain.Group.
// With methods fold with queryspec.And, NotWith methods with queryspec.Not.
type GroupQuery struct {
	*queryspec.Specification[domain.Group]
}

// NewGroupQuery returns an empty GroupQuery, which matches every group until filters are added.
func NewGroupQuery() *GroupQuery {
	return &GroupQuery{Specification: queryspec.New[domain.Group]()}
}

// Relations starts an include path for domain.Group, to be passed to Include once completed.
func (q *GroupQuery) Relations() relations.GroupRoot {
	return relations.ForGroup()
}

// Include adds include paths completed from Relations.
func (q *GroupQuery) Include(chains ...relations.Completed[domain.Group]) *GroupQuery {
	q.Specification.Include(chains...)
	return q
}

// WithID selects the group with id.
func (q *GroupQuery) WithID(id uuid.UUID) *GroupQuery {
	queryspec.WithID(q.Specification, queryspec.And, id)
	return q
}

// NotWithID excludes the group with id.
func (q *GroupQuery) NotWithID(id uuid.UUID) *GroupQuery {
	queryspec.WithID(q.Specification, queryspec.Not, id)
	return q
}

// WithName matches groups whose name is name.
func (q *GroupQuery) WithName(name string) *GroupQuery {
	queryspec.WithName(q.Specification, queryspec.And, name)
	return q
}

// NotWithName negates WithName.
func (q *GroupQuery) NotWithName(name string) *GroupQuery {
	queryspec.WithName(q.Specification, queryspec.Not, name)
	return q
}

// WithNamePartialMatch matches names containing part, case-sensitive.
func (q *GroupQuery) WithNamePartialMatch(part string) *GroupQuery {
	queryspec.WithNamePartialMatch(q.Specification, queryspec.And, part)
	return q
}

// NotWithNamePartialMatch negates WithNamePartialMatch.
func (q *GroupQuery) NotWithNamePartialMatch(part string) *GroupQuery {
	queryspec.WithNamePartialMatch(q.Specification, queryspec.Not, part)
	return q
}

// WithDescription matches groups whose description is description.
func (q *GroupQuery) WithDescription(description string) *GroupQuery {
	queryspec.WithDescription(q.Specification, queryspec.And, description)
	return q
}

// NotWithDescription negates WithDescription.
func (q *GroupQuery) NotWithDescription(description string) *GroupQuery {
	queryspec.WithDescription(q.Specification, queryspec.Not, description)
	return q
}

// WithDescriptionPartialMatch matches groups whose description contains part.
func (q *GroupQuery) WithDescriptionPartialMatch(part string) *GroupQuery {
	queryspec.WithDescriptionPartialMatch(q.Specification, queryspec.And, part)
	return q
}

// NotWithDescriptionPartialMatch negates WithDescriptionPartialMatch.
func (q *GroupQuery) NotWithDescriptionPartialMatch(part string) *GroupQuery {
	queryspec.WithDescriptionPartialMatch(q.Specification, queryspec.Not, part)
	return q
}

// WithoutDescription matches groups without a description.
func (q *GroupQuery) WithoutDescription() *GroupQuery {
	queryspec.WithoutDescription(q.Specification, queryspec.And)
	return q
}

// WithGroupUser matches the group the membership belongs to.
func (q *GroupQuery) WithGroupUser(groupUserID uuid.UUID) *GroupQuery {
	queryspec.WithGroupUser(q.Specification, queryspec.And, groupUserID)
	return q
}

// NotWithGroupUser excludes the group the membership belongs to.
func (q *GroupQuery) NotWithGroupUser(groupUserID uuid.UUID) *GroupQuery {
	queryspec.WithGroupUser(q.Specification, queryspec.Not, groupUserID)
	return q
}

// WithInvitation matches the group the invitation was issued for.
func (q *GroupQuery) WithInvitation(invitationID uuid.UUID) *GroupQuery {
	queryspec.WithInvitation(q.Specification, queryspec.And, invitationID)
	return q
}

// NotWithInvitation excludes the group the invitation was issued for.
func (q *GroupQuery) NotWithInvitation(invitationID uuid.UUID) *GroupQuery {
	queryspec.WithInvitation(q.Specification, queryspec.Not, invitationID)
	return q
}
