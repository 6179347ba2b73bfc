package domain

// NoticeType tells how a group member is notified once a spending Limit is reached.
type NoticeType string

const (
	NoticeTypeEmail            NoticeType = "Email"
	NoticeTypeSMS              NoticeType = "SMS"
	NoticeTypePushNotification NoticeType = "PushNotification"
	NoticeTypeInApp            NoticeType = "InApp"
)

// Theme is the UI theme a User prefers.
type Theme string

const (
	ThemeLight         Theme = "Light"
	ThemeDark          Theme = "Dark"
	ThemeSystemDefault Theme = "SystemDefault"
)

// TransactionType classifies a Transaction.
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "Income"
	TransactionTypeExpense    TransactionType = "Expense"
	TransactionTypeTransfer   TransactionType = "Transfer"
	TransactionTypeRefund     TransactionType = "Refund"
	TransactionTypeLoan       TransactionType = "Loan"
	TransactionTypeInvestment TransactionType = "Investment"
	TransactionTypePayment    TransactionType = "Payment"
)

// UserRole is the role a User has inside a Group.
type UserRole string

const (
	RoleMember UserRole = "Member"
	RoleOwner  UserRole = "Owner"
	RoleAdmin  UserRole = "Admin"
)
