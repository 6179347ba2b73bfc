package domain

import "github.com/google/uuid"

// GroupUser is the membership of a User in a Group.
type GroupUser struct {
	ID                    uuid.UUID              `json:"id"`
	Role                  UserRole               `json:"role"`
	UserID                uuid.UUID              `json:"user_id"`
	GroupID               uuid.UUID              `json:"group_id"`
	LimitID               *uuid.UUID             `json:"limit_id,omitempty"`
	User                  *User                  `json:"user,omitempty"`
	Group                 *Group                 `json:"group,omitempty"`
	Limit                 *Limit                 `json:"limit,omitempty"`
	TransactionGroupUsers []TransactionGroupUser `json:"transaction_group_users,omitempty"`
}

func (gu GroupUser) GetID() uuid.UUID      { return gu.ID }
func (gu GroupUser) GetRole() UserRole     { return gu.Role }
func (gu GroupUser) GetUserID() uuid.UUID  { return gu.UserID }
func (gu GroupUser) GetGroupID() uuid.UUID { return gu.GroupID }

func (gu GroupUser) GetTransactionGroupUsers() []TransactionGroupUser {
	return gu.TransactionGroupUsers
}
