package relations

import "github.com/AntonStoeckl/spendwise-queryspec-go/domain"

// UserRoot is the starting state for include paths of a domain.User.
type UserRoot interface {
	IncludeSentInvitations() Completed[domain.User]
	IncludeReceivedInvitations() Completed[domain.User]
	IncludeGroupUsers() UserGroupUsers
}

// UserGroupUsers is the state after GroupUsers.
type UserGroupUsers interface {
	Completed[domain.User]
	ThenIncludeGroup() UserGroupUsersGroup
	ThenIncludeLimit() Completed[domain.User]
	ThenIncludeTransactionGroupUsers() UserGroupUsersTransactionGroupUsers
}

// UserGroupUsersGroup is the state after GroupUsers.Group.
type UserGroupUsersGroup interface {
	Completed[domain.User]
	ThenIncludeGroupUsers() UserGroupUsersGroupGroupUsers
}

// UserGroupUsersGroupGroupUsers is the state after GroupUsers.Group.GroupUsers, i.e. the co-members.
type UserGroupUsersGroupGroupUsers interface {
	Completed[domain.User]
	ThenIncludeUser() Completed[domain.User]
}

// UserGroupUsersTransactionGroupUsers is the state after GroupUsers.TransactionGroupUsers.
type UserGroupUsersTransactionGroupUsers interface {
	Completed[domain.User]
	ThenIncludeTransaction() Completed[domain.User]
}

// userIncludes implements all the state interfaces rooted at domain.User.
type userIncludes struct {
	path Path[domain.User]
}

// ForUser starts an include path rooted at domain.User.
func ForUser() UserRoot {
	return userIncludes{}
}

func (b userIncludes) Path() Path[domain.User] {
	return b.path
}

func (b userIncludes) IncludeSentInvitations() Completed[domain.User] {
	return userIncludes{path: b.path.with(SentInvitations)}
}

func (b userIncludes) IncludeReceivedInvitations() Completed[domain.User] {
	return userIncludes{path: b.path.with(ReceivedInvitations)}
}

func (b userIncludes) IncludeGroupUsers() UserGroupUsers {
	return userIncludes{path: b.path.with(GroupUsers)}
}

func (b userIncludes) ThenIncludeGroup() UserGroupUsersGroup {
	return userIncludes{path: b.path.with(Group)}
}

func (b userIncludes) ThenIncludeLimit() Completed[domain.User] {
	return userIncludes{path: b.path.with(Limit)}
}

func (b userIncludes) ThenIncludeTransactionGroupUsers() UserGroupUsersTransactionGroupUsers {
	return userIncludes{path: b.path.with(TransactionGroupUsers)}
}

func (b userIncludes) ThenIncludeGroupUsers() UserGroupUsersGroupGroupUsers {
	return userIncludes{path: b.path.with(GroupUsers)}
}

func (b userIncludes) ThenIncludeUser() Completed[domain.User] {
	return userIncludes{path: b.path.with(User)}
}

func (b userIncludes) ThenIncludeTransaction() Completed[domain.User] {
	return userIncludes{path: b.path.with(Transaction)}
}
