package relations

import "github.com/AntonStoeckl/spendwise-queryspec-go/domain"

// LimitRoot is the starting state for include paths of a domain.Limit.
type LimitRoot interface {
	IncludeGroupUser() LimitGroupUser
}

// LimitGroupUser is the state after GroupUser.
type LimitGroupUser interface {
	Completed[domain.Limit]
	ThenIncludeUser() Completed[domain.Limit]
	ThenIncludeGroup() Completed[domain.Limit]
}

type limitIncludes struct {
	path Path[domain.Limit]
}

// ForLimit starts an include path rooted at domain.Limit.
func ForLimit() LimitRoot {
	return limitIncludes{}
}

func (b limitIncludes) Path() Path[domain.Limit] {
	return b.path
}

func (b limitIncludes) IncludeGroupUser() LimitGroupUser {
	return limitIncludes{path: b.path.with(GroupUser)}
}

func (b limitIncludes) ThenIncludeUser() Completed[domain.Limit] {
	return limitIncludes{path: b.path.with(User)}
}

func (b limitIncludes) ThenIncludeGroup() Completed[domain.Limit] {
	return limitIncludes{path: b.path.with(Group)}
}
