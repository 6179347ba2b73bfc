package criteria

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryobjects"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// User describes a filter over domain.User. Nil fields do not constrain the result.
type User struct {
	ID                        *uuid.UUID    `json:"id,omitempty"`
	NotID                     *uuid.UUID    `json:"not_id,omitempty"`
	Name                      *string       `json:"name,omitempty"`
	NotName                   *string       `json:"not_name,omitempty"`
	NamePartialMatch          *string       `json:"name_partial_match,omitempty"`
	NotNamePartialMatch       *string       `json:"not_name_partial_match,omitempty"`
	Surname                   *string       `json:"surname,omitempty"`
	NotSurname                *string       `json:"not_surname,omitempty"`
	SurnamePartialMatch       *string       `json:"surname_partial_match,omitempty"`
	NotSurnamePartialMatch    *string       `json:"not_surname_partial_match,omitempty"`
	FullName                  *string       `json:"full_name,omitempty"`
	NotFullName               *string       `json:"not_full_name,omitempty"`
	Email                     *string       `json:"email,omitempty"`
	NotEmail                  *string       `json:"not_email,omitempty"`
	EmailPartialMatch         *string       `json:"email_partial_match,omitempty"`
	NotEmailPartialMatch      *string       `json:"not_email_partial_match,omitempty"`
	EmailDomain               *string       `json:"email_domain,omitempty"`
	NotEmailDomain            *string       `json:"not_email_domain,omitempty"`
	PasswordHash              *string       `json:"password_hash,omitempty"`
	NotPasswordHash           *string       `json:"not_password_hash,omitempty"`
	DateOfRegistration        *time.Time    `json:"date_of_registration,omitempty"`
	NotDateOfRegistration     *time.Time    `json:"not_date_of_registration,omitempty"`
	DateOfRegistrationFrom    *time.Time    `json:"date_of_registration_from,omitempty"`
	DateOfRegistrationUntil   *time.Time    `json:"date_of_registration_until,omitempty"`
	WithPhoto                 bool          `json:"with_photo,omitempty"`
	WithoutPhoto              bool          `json:"without_photo,omitempty"`
	EmailConfirmed            *bool         `json:"email_confirmed,omitempty"`
	TwoFactorEnabled          *bool         `json:"two_factor_enabled,omitempty"`
	ResetPasswordToken        *string       `json:"reset_password_token,omitempty"`
	NotResetPasswordToken     *string       `json:"not_reset_password_token,omitempty"`
	WithoutResetPasswordToken bool          `json:"without_reset_password_token,omitempty"`
	PreferredTheme            *domain.Theme `json:"preferred_theme,omitempty"`
	NotPreferredTheme         *domain.Theme `json:"not_preferred_theme,omitempty"`

	// Related entities, matched by id.
	SentInvitationID        *uuid.UUID `json:"sent_invitation_id,omitempty"`
	NotSentInvitationID     *uuid.UUID `json:"not_sent_invitation_id,omitempty"`
	ReceivedInvitationID    *uuid.UUID `json:"received_invitation_id,omitempty"`
	NotReceivedInvitationID *uuid.UUID `json:"not_received_invitation_id,omitempty"`
	GroupUserID             *uuid.UUID `json:"group_user_id,omitempty"`
	NotGroupUserID          *uuid.UUID `json:"not_group_user_id,omitempty"`
	GroupID                 *uuid.UUID `json:"group_id,omitempty"`
	NotGroupID              *uuid.UUID `json:"not_group_id,omitempty"`

	And []User `json:"and,omitempty"`
	Or  []User `json:"or,omitempty"`
	Not []User `json:"not,omitempty"`
}

// Compile folds the criteria into a predicate: scalar fields in declaration order, then the And, Or and Not children.
func (c User) Compile() queryspec.Predicate[domain.User] {
	return c.Query().ToPredicate()
}

// Query compiles the criteria into a fresh query specification.
//
//nolint:funlen,gocyclo
func (c User) Query() *queryobjects.UserQuery {
	q := queryobjects.NewUserQuery()

	if c.ID != nil {
		q.WithID(*c.ID)
	}
	if c.NotID != nil {
		q.NotWithID(*c.NotID)
	}
	if c.Name != nil {
		q.WithName(*c.Name)
	}
	if c.NotName != nil {
		q.NotWithName(*c.NotName)
	}
	if c.NamePartialMatch != nil {
		q.WithNamePartialMatch(*c.NamePartialMatch)
	}
	if c.NotNamePartialMatch != nil {
		q.NotWithNamePartialMatch(*c.NotNamePartialMatch)
	}
	if c.Surname != nil {
		q.WithSurname(*c.Surname)
	}
	if c.NotSurname != nil {
		q.NotWithSurname(*c.NotSurname)
	}
	if c.SurnamePartialMatch != nil {
		q.WithSurnamePartialMatch(*c.SurnamePartialMatch)
	}
	if c.NotSurnamePartialMatch != nil {
		q.NotWithSurnamePartialMatch(*c.NotSurnamePartialMatch)
	}
	if c.FullName != nil {
		q.WithFullName(*c.FullName)
	}
	if c.NotFullName != nil {
		q.NotWithFullName(*c.NotFullName)
	}
	if c.Email != nil {
		q.WithEmail(*c.Email)
	}
	if c.NotEmail != nil {
		q.NotWithEmail(*c.NotEmail)
	}
	if c.EmailPartialMatch != nil {
		q.WithEmailPartialMatch(*c.EmailPartialMatch)
	}
	if c.NotEmailPartialMatch != nil {
		q.NotWithEmailPartialMatch(*c.NotEmailPartialMatch)
	}
	if c.EmailDomain != nil {
		q.WithEmailDomain(*c.EmailDomain)
	}
	if c.NotEmailDomain != nil {
		q.NotWithEmailDomain(*c.NotEmailDomain)
	}
	if c.PasswordHash != nil {
		q.WithPasswordHash(*c.PasswordHash)
	}
	if c.NotPasswordHash != nil {
		q.NotWithPasswordHash(*c.NotPasswordHash)
	}
	if c.DateOfRegistration != nil {
		q.WithDateOfRegistration(*c.DateOfRegistration)
	}
	if c.NotDateOfRegistration != nil {
		q.NotWithDateOfRegistration(*c.NotDateOfRegistration)
	}
	if c.DateOfRegistrationFrom != nil {
		q.WithDateOfRegistrationFrom(*c.DateOfRegistrationFrom)
	}
	if c.DateOfRegistrationUntil != nil {
		q.WithDateOfRegistrationUntil(*c.DateOfRegistrationUntil)
	}
	if c.WithPhoto {
		q.WithPhoto()
	}
	if c.WithoutPhoto {
		q.WithoutPhoto()
	}
	if c.EmailConfirmed != nil {
		q.WithEmailConfirmed(*c.EmailConfirmed)
	}
	if c.TwoFactorEnabled != nil {
		q.WithTwoFactorEnabled(*c.TwoFactorEnabled)
	}
	if c.ResetPasswordToken != nil {
		q.WithResetPasswordToken(*c.ResetPasswordToken)
	}
	if c.NotResetPasswordToken != nil {
		q.NotWithResetPasswordToken(*c.NotResetPasswordToken)
	}
	if c.WithoutResetPasswordToken {
		q.WithoutResetPasswordToken()
	}
	if c.PreferredTheme != nil {
		q.WithPreferredTheme(*c.PreferredTheme)
	}
	if c.NotPreferredTheme != nil {
		q.NotWithPreferredTheme(*c.NotPreferredTheme)
	}
	if c.SentInvitationID != nil {
		q.WithSentInvitation(*c.SentInvitationID)
	}
	if c.NotSentInvitationID != nil {
		q.NotWithSentInvitation(*c.NotSentInvitationID)
	}
	if c.ReceivedInvitationID != nil {
		q.WithReceivedInvitation(*c.ReceivedInvitationID)
	}
	if c.NotReceivedInvitationID != nil {
		q.NotWithReceivedInvitation(*c.NotReceivedInvitationID)
	}
	if c.GroupUserID != nil {
		q.WithGroupUser(*c.GroupUserID)
	}
	if c.NotGroupUserID != nil {
		q.NotWithGroupUser(*c.NotGroupUserID)
	}
	if c.GroupID != nil {
		q.WithGroup(*c.GroupID)
	}
	if c.NotGroupID != nil {
		q.NotWithGroup(*c.NotGroupID)
	}

	for _, child := range c.And {
		q.And(child.Compile())
	}

	for _, child := range c.Or {
		q.Or(child.Compile())
	}

	for _, child := range c.Not {
		q.Not(child.Compile())
	}

	return q
}
