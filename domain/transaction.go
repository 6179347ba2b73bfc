package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a money movement booked in a group and shared by its members.
type Transaction struct {
	ID                    uuid.UUID              `json:"id"`
	Amount                int64                  `json:"amount"`
	Date                  time.Time              `json:"date"`
	Description           *string                `json:"description,omitempty"`
	Type                  TransactionType        `json:"type"`
	CategoryID            *uuid.UUID             `json:"category_id,omitempty"`
	Category              *Category              `json:"category,omitempty"`
	TransactionGroupUsers []TransactionGroupUser `json:"transaction_group_users,omitempty"`
}

func (t Transaction) GetID() uuid.UUID                    { return t.ID }
func (t Transaction) GetAmount() int64                    { return t.Amount }
func (t Transaction) GetDate() time.Time                  { return t.Date }
func (t Transaction) GetDescription() *string             { return t.Description }
func (t Transaction) GetTransactionType() TransactionType { return t.Type }
func (t Transaction) GetCategoryID() *uuid.UUID           { return t.CategoryID }

func (t Transaction) GetTransactionGroupUsers() []TransactionGroupUser {
	return t.TransactionGroupUsers
}
