package criteria

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryobjects"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// Group describes a filter over domain.Group. Nil fields do not constrain the result.
type Group struct {
	ID                         *uuid.UUID `json:"id,omitempty"`
	NotID                      *uuid.UUID `json:"not_id,omitempty"`
	Name                       *string    `json:"name,omitempty"`
	NotName                    *string    `json:"not_name,omitempty"`
	NamePartialMatch           *string    `json:"name_partial_match,omitempty"`
	NotNamePartialMatch        *string    `json:"not_name_partial_match,omitempty"`
	Description                *string    `json:"description,omitempty"`
	NotDescription             *string    `json:"not_description,omitempty"`
	DescriptionPartialMatch    *string    `json:"description_partial_match,omitempty"`
	NotDescriptionPartialMatch *string    `json:"not_description_partial_match,omitempty"`
	WithoutDescription         bool       `json:"without_description,omitempty"`

	// Related entities, matched by id.
	GroupUserID     *uuid.UUID `json:"group_user_id,omitempty"`
	NotGroupUserID  *uuid.UUID `json:"not_group_user_id,omitempty"`
	InvitationID    *uuid.UUID `json:"invitation_id,omitempty"`
	NotInvitationID *uuid.UUID `json:"not_invitation_id,omitempty"`

	And []Group `json:"and,omitempty"`
	Or  []Group `json:"or,omitempty"`
	Not []Group `json:"not,omitempty"`
}

// Compile folds the criteria into a predicate: scalar fields in declaration order, then the And, Or and Not children.
func (c Group) Compile() queryspec.Predicate[domain.Group] {
	return c.Query().ToPredicate()
}

// Query compiles the criteria into a fresh query specification.
//
//nolint:funlen,gocyclo
func (c Group) Query() *queryobjects.GroupQuery {
	q := queryobjects.NewGroupQuery()

	if c.ID != nil {
		q.WithID(*c.ID)
	}
	if c.NotID != nil {
		q.NotWithID(*c.NotID)
	}
	if c.Name != nil {
		q.WithName(*c.Name)
	}
	if c.NotName != nil {
		q.NotWithName(*c.NotName)
	}
	if c.NamePartialMatch != nil {
		q.WithNamePartialMatch(*c.NamePartialMatch)
	}
	if c.NotNamePartialMatch != nil {
		q.NotWithNamePartialMatch(*c.NotNamePartialMatch)
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
	if c.GroupUserID != nil {
		q.WithGroupUser(*c.GroupUserID)
	}
	if c.NotGroupUserID != nil {
		q.NotWithGroupUser(*c.NotGroupUserID)
	}
	if c.InvitationID != nil {
		q.WithInvitation(*c.InvitationID)
	}
	if c.NotInvitationID != nil {
		q.NotWithInvitation(*c.NotInvitationID)
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
