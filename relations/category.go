package relations

import "github.com/AntonStoeckl/spendwise-queryspec-go/domain"

// CategoryRoot is the starting state for include paths of a domain.Category.
type CategoryRoot interface {
	IncludeTransactions() CategoryTransactions
}

// CategoryTransactions is the state after Transactions.
type CategoryTransactions interface {
	Completed[domain.Category]
	ThenIncludeTransactionGroupUsers() Completed[domain.Category]
}

type categoryIncludes struct {
	path Path[domain.Category]
}

// ForCategory starts an include path rooted at domain.Category.
func ForCategory() CategoryRoot {
	return categoryIncludes{}
}

func (b categoryIncludes) Path() Path[domain.Category] {
	return b.path
}

func (b categoryIncludes) IncludeTransactions() CategoryTransactions {
	return categoryIncludes{path: b.path.with(Transactions)}
}

func (b categoryIncludes) ThenIncludeTransactionGroupUsers() Completed[domain.Category] {
	return categoryIncludes{path: b.path.with(TransactionGroupUsers)}
}
