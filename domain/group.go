package domain

import "github.com/google/uuid"

// Group is a set of users sharing expenses.
type Group struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	GroupUsers  []GroupUser  `json:"group_users,omitempty"`
	Invitations []Invitation `json:"invitations,omitempty"`
}

func (g Group) GetID() uuid.UUID             { return g.ID }
func (g Group) GetName() string              { return g.Name }
func (g Group) GetDescription() *string      { return g.Description }
func (g Group) GetGroupUsers() []GroupUser   { return g.GroupUsers }
func (g Group) GetInvitations() []Invitation { return g.Invitations }
