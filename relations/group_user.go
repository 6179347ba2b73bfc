package relations

import "github.com/AntonStoeckl/spendwise-queryspec-go/domain"

// GroupUserRoot is the starting state for include paths of a domain.GroupUser.
type GroupUserRoot interface {
	IncludeUser() Completed[domain.GroupUser]
	IncludeGroup() GroupUserGroup
	IncludeLimit() Completed[domain.GroupUser]
	IncludeTransactionGroupUsers() GroupUserTransactionGroupUsers
}

// GroupUserGroup is the state after Group.
type GroupUserGroup interface {
	Completed[domain.GroupUser]
	ThenIncludeGroupUsers() GroupUserGroupGroupUsers
}

// GroupUserGroupGroupUsers is the state after Group.GroupUsers.
type GroupUserGroupGroupUsers interface {
	Completed[domain.GroupUser]
	ThenIncludeUser() Completed[domain.GroupUser]
}

// GroupUserTransactionGroupUsers is the state after TransactionGroupUsers.
type GroupUserTransactionGroupUsers interface {
	Completed[domain.GroupUser]
	ThenIncludeTransaction() GroupUserTransactionGroupUsersTransaction
}

// GroupUserTransactionGroupUsersTransaction is the state after TransactionGroupUsers.Transaction.
type GroupUserTransactionGroupUsersTransaction interface {
	Completed[domain.GroupUser]
	ThenIncludeCategory() Completed[domain.GroupUser]
}

type groupUserIncludes struct {
	path Path[domain.GroupUser]
}

// ForGroupUser starts an include path rooted at domain.GroupUser.
func ForGroupUser() GroupUserRoot {
	return groupUserIncludes{}
}

func (b groupUserIncludes) Path() Path[domain.GroupUser] {
	return b.path
}

func (b groupUserIncludes) IncludeUser() Completed[domain.GroupUser] {
	return groupUserIncludes{path: b.path.with(User)}
}

func (b groupUserIncludes) IncludeGroup() GroupUserGroup {
	return groupUserIncludes{path: b.path.with(Group)}
}

func (b groupUserIncludes) IncludeLimit() Completed[domain.GroupUser] {
	return groupUserIncludes{path: b.path.with(Limit)}
}

func (b groupUserIncludes) IncludeTransactionGroupUsers() GroupUserTransactionGroupUsers {
	return groupUserIncludes{path: b.path.with(TransactionGroupUsers)}
}

func (b groupUserIncludes) ThenIncludeGroupUsers() GroupUserGroupGroupUsers {
	return groupUserIncludes{path: b.path.with(GroupUsers)}
}

func (b groupUserIncludes) ThenIncludeUser() Completed[domain.GroupUser] {
	return groupUserIncludes{path: b.path.with(User)}
}

func (b groupUserIncludes) ThenIncludeTransaction() GroupUserTransactionGroupUsersTransaction {
	return groupUserIncludes{path: b.path.with(Transaction)}
}

func (b groupUserIncludes) ThenIncludeCategory() Completed[domain.GroupUser] {
	return groupUserIncludes{path: b.path.with(Category)}
}
