package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered SpendWise account.
type User struct {
	ID                  uuid.UUID    `json:"id"`
	Name                string       `json:"name"`
	Surname             string       `json:"surname"`
	Email               string       `json:"email"`
	PasswordHash        string       `json:"password_hash"`
	DateOfRegistration  time.Time    `json:"date_of_registration"`
	Photo               []byte       `json:"photo,omitempty"`
	IsEmailConfirmed    bool         `json:"is_email_confirmed"`
	ResetPasswordToken  *string      `json:"reset_password_token,omitempty"`
	IsTwoFactorEnabled  bool         `json:"is_two_factor_enabled"`
	PreferredTheme      Theme        `json:"preferred_theme"`
	SentInvitations     []Invitation `json:"sent_invitations,omitempty"`
	ReceivedInvitations []Invitation `json:"received_invitations,omitempty"`
	GroupUsers          []GroupUser  `json:"group_users,omitempty"`
}

func (u User) GetID() uuid.UUID                     { return u.ID }
func (u User) GetName() string                      { return u.Name }
func (u User) GetSurname() string                   { return u.Surname }
func (u User) GetEmail() string                     { return u.Email }
func (u User) GetPasswordHash() string              { return u.PasswordHash }
func (u User) GetDateOfRegistration() time.Time     { return u.DateOfRegistration }
func (u User) GetPhoto() []byte                     { return u.Photo }
func (u User) GetIsEmailConfirmed() bool            { return u.IsEmailConfirmed }
func (u User) GetResetPasswordToken() *string       { return u.ResetPasswordToken }
func (u User) GetIsTwoFactorEnabled() bool          { return u.IsTwoFactorEnabled }
func (u User) GetPreferredTheme() Theme             { return u.PreferredTheme }
func (u User) GetSentInvitations() []Invitation     { return u.SentInvitations }
func (u User) GetReceivedInvitations() []Invitation { return u.ReceivedInvitations }
func (u User) GetGroupUsers() []GroupUser           { return u.GroupUsers }

// FullName returns "Name Surname".
func (u User) FullName() string {
	return u.Name + " " + u.Surname
}
