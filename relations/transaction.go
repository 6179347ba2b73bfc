package relations

import "github.com/AntonStoeckl/spendwise-queryspec-go/domain"

// TransactionRoot is the starting state for include paths of a domain.Transaction.
type TransactionRoot interface {
	IncludeCategory() Completed[domain.Transaction]
	IncludeTransactionGroupUsers() TransactionTransactionGroupUsers
}

// TransactionTransactionGroupUsers is the state after TransactionGroupUsers.
type TransactionTransactionGroupUsers interface {
	Completed[domain.Transaction]
	ThenIncludeGroupUser() TransactionTransactionGroupUsersGroupUser
}

// TransactionTransactionGroupUsersGroupUser is the state after TransactionGroupUsers.GroupUser.
type TransactionTransactionGroupUsersGroupUser interface {
	Completed[domain.Transaction]
	ThenIncludeUser() Completed[domain.Transaction]
	ThenIncludeGroup() TransactionTransactionGroupUsersGroupUserGroup
}

// TransactionTransactionGroupUsersGroupUserGroup is the state after TransactionGroupUsers.GroupUser.Group.
type TransactionTransactionGroupUsersGroupUserGroup interface {
	Completed[domain.Transaction]
	ThenIncludeGroupUsers() TransactionTransactionGroupUsersGroupUserGroupGroupUsers
}

// TransactionTransactionGroupUsersGroupUserGroupGroupUsers is the state after
// TransactionGroupUsers.GroupUser.Group.GroupUsers, i.e. all members of the group the transaction was booked in.
type TransactionTransactionGroupUsersGroupUserGroupGroupUsers interface {
	Completed[domain.Transaction]
	ThenIncludeUser() Completed[domain.Transaction]
}

type transactionIncludes struct {
	path Path[domain.Transaction]
}

// ForTransaction starts an include path rooted at domain.Transaction.
func ForTransaction() TransactionRoot {
	return transactionIncludes{}
}

func (b transactionIncludes) Path() Path[domain.Transaction] {
	return b.path
}

func (b transactionIncludes) IncludeCategory() Completed[domain.Transaction] {
	return transactionIncludes{path: b.path.with(Category)}
}

func (b transactionIncludes) IncludeTransactionGroupUsers() TransactionTransactionGroupUsers {
	return transactionIncludes{path: b.path.with(TransactionGroupUsers)}
}

func (b transactionIncludes) ThenIncludeGroupUser() TransactionTransactionGroupUsersGroupUser {
	return transactionIncludes{path: b.path.with(GroupUser)}
}

func (b transactionIncludes) ThenIncludeUser() Completed[domain.Transaction] {
	return transactionIncludes{path: b.path.with(User)}
}

func (b transactionIncludes) ThenIncludeGroup() TransactionTransactionGroupUsersGroupUserGroup {
	return transactionIncludes{path: b.path.with(Group)}
}

func (b transactionIncludes) ThenIncludeGroupUsers() TransactionTransactionGroupUsersGroupUserGroupGroupUsers {
	return transactionIncludes{path: b.path.with(GroupUsers)}
}
