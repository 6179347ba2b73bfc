package queryobjects

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// LimitQuery is the query specification for domain.Limit.
// With methods fold with queryspec.And, NotWith methods with queryspec.Not.
type LimitQuery struct {
	*queryspec.Specification[domain.Limit]
}

// NewLimitQuery returns an empty LimitQuery, which matches every limit until filters are added.
func NewLimitQuery() *LimitQuery {
	return &LimitQuery{Specification: queryspec.New[domain.Limit]()}
}

// Relations starts an include path for domain.Limit, to be passed to Include once completed.
func (q *LimitQuery) Relations() relations.LimitRoot {
	return relations.ForLimit()
}

// Include adds include paths completed from Relations.
func (q *LimitQuery) Include(chains ...relations.Completed[domain.Limit]) *LimitQuery {
	q.Specification.Include(chains...)
	return q
}

// WithID selects the limit with id.
func (q *LimitQuery) WithID(id uuid.UUID) *LimitQuery {
	queryspec.WithID(q.Specification, queryspec.And, id)
	return q
}

// NotWithID excludes the limit with id.
func (q *LimitQuery) NotWithID(id uuid.UUID) *LimitQuery {
	queryspec.WithID(q.Specification, queryspec.Not, id)
	return q
}

// WithGroupUserID matches limits whose group user id is groupUserID.
func (q *LimitQuery) WithGroupUserID(groupUserID uuid.UUID) *LimitQuery {
	queryspec.WithGroupUserID(q.Specification, queryspec.And, groupUserID)
	return q
}

// NotWithGroupUserID negates WithGroupUserID.
func (q *LimitQuery) NotWithGroupUserID(groupUserID uuid.UUID) *LimitQuery {
	queryspec.WithGroupUserID(q.Specification, queryspec.Not, groupUserID)
	return q
}

// WithAmount matches an exact amount in minor currency units.
func (q *LimitQuery) WithAmount(amount int64) *LimitQuery {
	queryspec.WithAmount(q.Specification, queryspec.And, amount)
	return q
}

// NotWithAmount negates WithAmount.
func (q *LimitQuery) NotWithAmount(amount int64) *LimitQuery {
	queryspec.WithAmount(q.Specification, queryspec.Not, amount)
	return q
}

// WithAmountGreaterThan matches limits above amount.
func (q *LimitQuery) WithAmountGreaterThan(amount int64) *LimitQuery {
	queryspec.WithAmountGreaterThan(q.Specification, queryspec.And, amount)
	return q
}

// WithAmountLessThan matches limits below amount.
func (q *LimitQuery) WithAmountLessThan(amount int64) *LimitQuery {
	queryspec.WithAmountLessThan(q.Specification, queryspec.And, amount)
	return q
}

// WithNoticeType matches limits whose notice type is noticeType.
func (q *LimitQuery) WithNoticeType(noticeType domain.NoticeType) *LimitQuery {
	queryspec.WithNoticeType(q.Specification, queryspec.And, noticeType)
	return q
}

// NotWithNoticeType negates WithNoticeType.
func (q *LimitQuery) NotWithNoticeType(noticeType domain.NoticeType) *LimitQuery {
	queryspec.WithNoticeType(q.Specification, queryspec.Not, noticeType)
	return q
}
