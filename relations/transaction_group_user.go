package relations

import "github.com/AntonStoeckl/spendwise-queryspec-go/domain"

// TransactionGroupUserRoot is the starting state for include paths of a domain.TransactionGroupUser.
type TransactionGroupUserRoot interface {
	IncludeTransaction() TransactionGroupUserTransaction
	IncludeGroupUser() TransactionGroupUserGroupUser
}

// TransactionGroupUserTransaction is the state after Transaction.
type TransactionGroupUserTransaction interface {
	Completed[domain.TransactionGroupUser]
	ThenIncludeCategory() Completed[domain.TransactionGroupUser]
}

// TransactionGroupUserGroupUser is the state after GroupUser.
type TransactionGroupUserGroupUser interface {
	Completed[domain.TransactionGroupUser]
	ThenIncludeUser() Completed[domain.TransactionGroupUser]
	ThenIncludeGroup() Completed[domain.TransactionGroupUser]
}

type transactionGroupUserIncludes struct {
	path Path[domain.TransactionGroupUser]
}

// ForTransactionGroupUser starts an include path rooted at domain.TransactionGroupUser.
func ForTransactionGroupUser() TransactionGroupUserRoot {
	return transactionGroupUserIncludes{}
}

func (b transactionGroupUserIncludes) Path() Path[domain.TransactionGroupUser] {
	return b.path
}

func (b transactionGroupUserIncludes) IncludeTransaction() TransactionGroupUserTransaction {
	return transactionGroupUserIncludes{path: b.path.with(Transaction)}
}

func (b transactionGroupUserIncludes) IncludeGroupUser() TransactionGroupUserGroupUser {
	return transactionGroupUserIncludes{path: b.path.with(GroupUser)}
}

func (b transactionGroupUserIncludes) ThenIncludeCategory() Completed[domain.TransactionGroupUser] {
	return transactionGroupUserIncludes{path: b.path.with(Category)}
}

func (b transactionGroupUserIncludes) ThenIncludeUser() Completed[domain.TransactionGroupUser] {
	return transactionGroupUserIncludes{path: b.path.with(User)}
}

func (b transactionGroupUserIncludes) ThenIncludeGroup() Completed[domain.TransactionGroupUser] {
	return transactionGroupUserIncludes{path: b.path.with(Group)}
}
