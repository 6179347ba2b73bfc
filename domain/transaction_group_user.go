package domain

import "github.com/google/uuid"

// TransactionGroupUser links a Transaction to a group member and tracks whether the member has seen it.
type TransactionGroupUser struct {
	ID            uuid.UUID    `json:"id"`
	TransactionID uuid.UUID    `json:"transaction_id"`
	GroupUserID   uuid.UUID    `json:"group_user_id"`
	IsRead        bool         `json:"is_read"`
	Transaction   *Transaction `json:"transaction,omitempty"`
	GroupUser     *GroupUser   `json:"group_user,omitempty"`
}

func (tgu TransactionGroupUser) GetID() uuid.UUID             { return tgu.ID }
func (tgu TransactionGroupUser) GetTransactionID() uuid.UUID  { return tgu.TransactionID }
func (tgu TransactionGroupUser) GetGroupUserID() uuid.UUID    { return tgu.GroupUserID }
func (tgu TransactionGroupUser) GetIsRead() bool              { return tgu.IsRead }
func (tgu TransactionGroupUser) GetTransaction() *Transaction { return tgu.Transaction }
