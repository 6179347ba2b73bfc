package criteria

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryobjects"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// Category describes a filter over domain.Category. Nil fields do not constrain the result.
type Category struct {
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
	Color                      *string    `json:"color,omitempty"`
	NotColor                   *string    `json:"not_color,omitempty"`
	WithIcon                   bool       `json:"with_icon,omitempty"`
	WithoutIcon                bool       `json:"without_icon,omitempty"`

	And []Category `json:"and,omitempty"`
	Or  []Category `json:"or,omitempty"`
	Not []Category `json:"not,omitempty"`
}

// Compile folds the criteria into a predicate: scalar fields in declaration order, then the And, Or and Not children.
func (c Category) Compile() queryspec.Predicate[domain.Category] {
	return c.Query().ToPredicate()
}

// Query compiles the criteria into a fresh query specification.
//
//nolint:funlen,gocyclo
func (c Category) Query() *queryobjects.CategoryQuery {
	q := queryobjects.NewCategoryQuery()

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
	if c.Color != nil {
		q.WithColor(*c.Color)
	}
	if c.NotColor != nil {
		q.NotWithColor(*c.NotColor)
	}
	if c.WithIcon {
		q.WithIcon()
	}
	if c.WithoutIcon {
		q.WithoutIcon()
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
