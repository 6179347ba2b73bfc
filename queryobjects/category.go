package queryobjects

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// CategoryQuery is the query specification for domain.Category.
// With methods fold with queryspec.And, NotWith methods with queryspec.Not.
type CategoryQuery struct {
	*queryspec.Specification[domain.Category]
}

// NewCategoryQuery returns an empty CategoryQuery, which matches every category until filters are added.
func NewCategoryQuery() *CategoryQuery {
	return &CategoryQuery{Specification: queryspec.New[domain.Category]()}
}

// Relations starts an include path for domain.Category, to be passed to Include once completed.
func (q *CategoryQuery) Relations() relations.CategoryRoot {
	return relations.ForCategory()
}

// Include adds include paths completed from Relations.
func (q *CategoryQuery) Include(chains ...relations.Completed[domain.Category]) *CategoryQuery {
	q.Specification.Include(chains...)
	return q
}

// WithID selects the category with id.
func (q *CategoryQuery) WithID(id uuid.UUID) *CategoryQuery {
	queryspec.WithID(q.Specification, queryspec.And, id)
	return q
}

// NotWithID excludes the category with id.
func (q *CategoryQuery) NotWithID(id uuid.UUID) *CategoryQuery {
	queryspec.WithID(q.Specification, queryspec.Not, id)
	return q
}

// WithName matches categories whose name is name.
func (q *CategoryQuery) WithName(name string) *CategoryQuery {
	queryspec.WithName(q.Specification, queryspec.And, name)
	return q
}

// NotWithName negates WithName.
func (q *CategoryQuery) NotWithName(name string) *CategoryQuery {
	queryspec.WithName(q.Specification, queryspec.Not, name)
	return q
}

// WithNamePartialMatch matches names containing part, case-sensitive.
func (q *CategoryQuery) WithNamePartialMatch(part string) *CategoryQuery {
	queryspec.WithNamePartialMatch(q.Specification, queryspec.And, part)
	return q
}

// NotWithNamePartialMatch negates WithNamePartialMatch.
func (q *CategoryQuery) NotWithNamePartialMatch(part string) *CategoryQuery {
	queryspec.WithNamePartialMatch(q.Specification, queryspec.Not, part)
	return q
}

// WithDescription matches categories whose description is description.
func (q *CategoryQuery) WithDescription(description string) *CategoryQuery {
	queryspec.WithDescription(q.Specification, queryspec.And, description)
	return q
}

// NotWithDescription negates WithDescription.
func (q *CategoryQuery) NotWithDescription(description string) *CategoryQuery {
	queryspec.WithDescription(q.Specification, queryspec.Not, description)
	return q
}

// WithDescriptionPartialMatch matches categories whose description contains part.
func (q *CategoryQuery) WithDescriptionPartialMatch(part string) *CategoryQuery {
	queryspec.WithDescriptionPartialMatch(q.Specification, queryspec.And, part)
	return q
}

// NotWithDescriptionPartialMatch negates WithDescriptionPartialMatch.
func (q *CategoryQuery) NotWithDescriptionPartialMatch(part string) *CategoryQuery {
	queryspec.WithDescriptionPartialMatch(q.Specification, queryspec.Not, part)
	return q
}

// WithoutDescription matches categories without a description.
func (q *CategoryQuery) WithoutDescription() *CategoryQuery {
	queryspec.WithoutDescription(q.Specification, queryspec.And)
	return q
}

// WithColor matches the color code exactly, e.g. "#FF8800".
func (q *CategoryQuery) WithColor(color string) *CategoryQuery {
	queryspec.WithColor(q.Specification, queryspec.And, color)
	return q
}

// NotWithColor negates WithColor.
func (q *CategoryQuery) NotWithColor(color string) *CategoryQuery {
	queryspec.WithColor(q.Specification, queryspec.Not, color)
	return q
}

// WithIcon matches categories with a non-empty icon.
func (q *CategoryQuery) WithIcon() *CategoryQuery {
	queryspec.WithIcon(q.Specification, queryspec.And)
	return q
}

// WithoutIcon matches categories with no icon or an empty one.
func (q *CategoryQuery) WithoutIcon() *CategoryQuery {
	queryspec.WithoutIcon(q.Specification, queryspec.And)
	return q
}
