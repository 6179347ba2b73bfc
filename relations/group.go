package relations

import "github.com/AntonStoeckl/spendwise-queryspec-go/domain"

// GroupRoot is the starting state for include paths of a domain.Group.
type GroupRoot interface {
	IncludeGroupUsers() GroupGroupUsers
	IncludeInvitations() GroupInvitations
}

// GroupGroupUsers is the state after GroupUsers.
type GroupGroupUsers interface {
	Completed[domain.Group]
	ThenIncludeUser() Completed[domain.Group]
	ThenIncludeLimit() Completed[domain.Group]
	ThenIncludeTransactionGroupUsers() GroupGroupUsersTransactionGroupUsers
}

// GroupGroupUsersTransactionGroupUsers is the state after GroupUsers.TransactionGroupUsers.
type GroupGroupUsersTransactionGroupUsers interface {
	Completed[domain.Group]
	ThenIncludeTransaction() GroupGroupUsersTransactionGroupUsersTransaction
}

// GroupGroupUsersTransactionGroupUsersTransaction is the state after GroupUsers.TransactionGroupUsers.Transaction.
type GroupGroupUsersTransactionGroupUsersTransaction interface {
	Completed[domain.Group]
	ThenIncludeCategory() Completed[domain.Group]
}

// GroupInvitations is the state after Invitations.
type GroupInvitations interface {
	Completed[domain.Group]
	ThenIncludeSender() Completed[domain.Group]
	ThenIncludeReceiver() Completed[domain.Group]
}

type groupIncludes struct {
	path Path[domain.Group]
}

// ForGroup starts an include path rooted at domain.Group.
func ForGroup() GroupRoot {
	return groupIncludes{}
}

func (b groupIncludes) Path() Path[domain.Group] {
	return b.path
}

func (b groupIncludes) IncludeGroupUsers() GroupGroupUsers {
	return groupIncludes{path: b.path.with(GroupUsers)}
}

func (b groupIncludes) IncludeInvitations() GroupInvitations {
	return groupIncludes{path: b.path.with(Invitations)}
}

func (b groupIncludes) ThenIncludeUser() Completed[domain.Group] {
	return groupIncludes{path: b.path.with(User)}
}

func (b groupIncludes) ThenIncludeLimit() Completed[domain.Group] {
	return groupIncludes{path: b.path.with(Limit)}
}

func (b groupIncludes) ThenIncludeTransactionGroupUsers() GroupGroupUsersTransactionGroupUsers {
	return groupIncludes{path: b.path.with(TransactionGroupUsers)}
}

func (b groupIncludes) ThenIncludeTransaction() GroupGroupUsersTransactionGroupUsersTransaction {
	return groupIncludes{path: b.path.with(Transaction)}
}

func (b groupIncludes) ThenIncludeCategory() Completed[domain.Group] {
	return groupIncludes{path: b.path.with(Category)}
}

func (b groupIncludes) ThenIncludeSender() Completed[domain.Group] {
	return groupIncludes{path: b.path.with(Sender)}
}

func (b groupIncludes) ThenIncludeReceiver() Completed[domain.Group] {
	return groupIncludes{path: b.path.with(Receiver)}
}
