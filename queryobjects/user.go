package queryobjects

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// UserQuery is the query specification for domain.User.
// With methods fold with queryspec.And, NotWith methods with queryspec.Not.
type UserQuery struct {
	*queryspec.Specification[domain.User]
}

// NewUserQuery returns an empty UserQuery, which matches every user until filters are added.
func NewUserQuery() *UserQuery {
	return &UserQuery{Specification: queryspec.New[domain.User]()}
}

// Relations starts an include path for domain.User, to be passed to Include once completed.
func (q *UserQuery) Relations() relations.UserRoot {
	return relations.ForUser()
}

// Include adds include paths completed from Relations.
func (q *UserQuery) Include(chains ...relations.Completed[domain.User]) *UserQuery {
	q.Specification.Include(chains...)
	return q
}

// WithID selects the user with id.
func (q *UserQuery) WithID(id uuid.UUID) *UserQuery {
	queryspec.WithID(q.Specification, queryspec.And, id)
	return q
}

// NotWithID excludes the user with id.
func (q *UserQuery) NotWithID(id uuid.UUID) *UserQuery {
	queryspec.WithID(q.Specification, queryspec.Not, id)
	return q
}

// WithName matches users whose name is name.
func (q *UserQuery) WithName(name string) *UserQuery {
	queryspec.WithName(q.Specification, queryspec.And, name)
	return q
}

// NotWithName negates WithName.
func (q *UserQuery) NotWithName(name string) *UserQuery {
	queryspec.WithName(q.Specification, queryspec.Not, name)
	return q
}

// WithNamePartialMatch matches names containing part, case-sensitive.
func (q *UserQuery) WithNamePartialMatch(part string) *UserQuery {
	queryspec.WithNamePartialMatch(q.Specification, queryspec.And, part)
	return q
}

// NotWithNamePartialMatch negates WithNamePartialMatch.
func (q *UserQuery) NotWithNamePartialMatch(part string) *UserQuery {
	queryspec.WithNamePartialMatch(q.Specification, queryspec.Not, part)
	return q
}

// WithSurname matches users whose surname is surname.
func (q *UserQuery) WithSurname(surname string) *UserQuery {
	queryspec.WithSurname(q.Specification, queryspec.And, surname)
	return q
}

// NotWithSurname negates WithSurname.
func (q *UserQuery) NotWithSurname(surname string) *UserQuery {
	queryspec.WithSurname(q.Specification, queryspec.Not, surname)
	return q
}

// WithSurnamePartialMatch matches users whose surname contains part.
func (q *UserQuery) WithSurnamePartialMatch(part string) *UserQuery {
	queryspec.WithSurnamePartialMatch(q.Specification, queryspec.And, part)
	return q
}

// NotWithSurnamePartialMatch negates WithSurnamePartialMatch.
func (q *UserQuery) NotWithSurnamePartialMatch(part string) *UserQuery {
	queryspec.WithSurnamePartialMatch(q.Specification, queryspec.Not, part)
	return q
}

// WithFullName matches "Name Surname" exactly.
func (q *UserQuery) WithFullName(fullName string) *UserQuery {
	queryspec.WithFullName(q.Specification, queryspec.And, fullName)
	return q
}

// NotWithFullName negates WithFullName.
func (q *UserQuery) NotWithFullName(fullName string) *UserQuery {
	queryspec.WithFullName(q.Specification, queryspec.Not, fullName)
	return q
}

// WithEmail matches users whose email is email.
func (q *UserQuery) WithEmail(email string) *UserQuery {
	queryspec.WithEmail(q.Specification, queryspec.And, email)
	return q
}

// NotWithEmail negates WithEmail.
func (q *UserQuery) NotWithEmail(email string) *UserQuery {
	queryspec.WithEmail(q.Specification, queryspec.Not, email)
	return q
}

// WithEmailPartialMatch matches users whose email contains part.
func (q *UserQuery) WithEmailPartialMatch(part string) *UserQuery {
	queryspec.WithEmailPartialMatch(q.Specification, queryspec.And, part)
	return q
}

// NotWithEmailPartialMatch negates WithEmailPartialMatch.
func (q *UserQuery) NotWithEmailPartialMatch(part string) *UserQuery {
	queryspec.WithEmailPartialMatch(q.Specification, queryspec.Not, part)
	return q
}

// WithEmailDomain matches emails ending in "@" + emailDomain.
func (q *UserQuery) WithEmailDomain(emailDomain string) *UserQuery {
	queryspec.WithEmailDomain(q.Specification, queryspec.And, emailDomain)
	return q
}

// NotWithEmailDomain negates WithEmailDomain.
func (q *UserQuery) NotWithEmailDomain(emailDomain string) *UserQuery {
	queryspec.WithEmailDomain(q.Specification, queryspec.Not, emailDomain)
	return q
}

// WithPasswordHash matches users whose password hash is passwordHash.
func (q *UserQuery) WithPasswordHash(passwordHash string) *UserQuery {
	queryspec.WithPasswordHash(q.Specification, queryspec.And, passwordHash)
	return q
}

// NotWithPasswordHash negates WithPasswordHash.
func (q *UserQuery) NotWithPasswordHash(passwordHash string) *UserQuery {
	queryspec.WithPasswordHash(q.Specification, queryspec.Not, passwordHash)
	return q
}

// WithDateOfRegistration matches users registered on the given calendar day (UTC).
func (q *UserQuery) WithDateOfRegistration(dateOfRegistration time.Time) *UserQuery {
	queryspec.WithDateOfRegistration(q.Specification, queryspec.And, dateOfRegistration)
	return q
}

// NotWithDateOfRegistration negates WithDateOfRegistration.
func (q *UserQuery) NotWithDateOfRegistration(dateOfRegistration time.Time) *UserQuery {
	queryspec.WithDateOfRegistration(q.Specification, queryspec.Not, dateOfRegistration)
	return q
}

// WithDateOfRegistrationFrom matches users from the UTC day of from on.
func (q *UserQuery) WithDateOfRegistrationFrom(from time.Time) *UserQuery {
	queryspec.WithDateOfRegistrationFrom(q.Specification, queryspec.And, from)
	return q
}

// WithDateOfRegistrationUntil matches users up to and including the UTC day of until.
func (q *UserQuery) WithDateOfRegistrationUntil(until time.Time) *UserQuery {
	queryspec.WithDateOfRegistrationUntil(q.Specification, queryspec.And, until)
	return q
}

// WithPhoto matches users with a non-empty photo.
func (q *UserQuery) WithPhoto() *UserQuery {
	queryspec.WithPhoto(q.Specification, queryspec.And)
	return q
}

// WithoutPhoto matches users with no photo or an empty one.
func (q *UserQuery) WithoutPhoto() *UserQuery {
	queryspec.WithoutPhoto(q.Specification, queryspec.And)
	return q
}

// WithEmailConfirmed matches users by email confirmation state.
func (q *UserQuery) WithEmailConfirmed(emailConfirmed bool) *UserQuery {
	queryspec.WithEmailConfirmed(q.Specification, queryspec.And, emailConfirmed)
	return q
}

// WithTwoFactorEnabled matches users by two-factor state.
func (q *UserQuery) WithTwoFactorEnabled(twoFactorEnabled bool) *UserQuery {
	queryspec.WithTwoFactorEnabled(q.Specification, queryspec.And, twoFactorEnabled)
	return q
}

// WithResetPasswordToken matches users whose reset password token is resetPasswordToken.
func (q *UserQuery) WithResetPasswordToken(resetPasswordToken string) *UserQuery {
	queryspec.WithResetPasswordToken(q.Specification, queryspec.And, resetPasswordToken)
	return q
}

// NotWithResetPasswordToken negates WithResetPasswordToken.
func (q *UserQuery) NotWithResetPasswordToken(resetPasswordToken string) *UserQuery {
	queryspec.WithResetPasswordToken(q.Specification, queryspec.Not, resetPasswordToken)
	return q
}

// WithoutResetPasswordToken matches users with no pending password reset.
func (q *UserQuery) WithoutResetPasswordToken() *UserQuery {
	queryspec.WithoutResetPasswordToken(q.Specification, queryspec.And)
	return q
}

// WithPreferredTheme matches users whose preferred theme is preferredTheme.
func (q *UserQuery) WithPreferredTheme(preferredTheme domain.Theme) *UserQuery {
	queryspec.WithPreferredTheme(q.Specification, queryspec.And, preferredTheme)
	return q
}

// NotWithPreferredTheme negates WithPreferredTheme.
func (q *UserQuery) NotWithPreferredTheme(preferredTheme domain.Theme) *UserQuery {
	queryspec.WithPreferredTheme(q.Specification, queryspec.Not, preferredTheme)
	return q
}

// WithSentInvitation matches users who sent the invitation.
func (q *UserQuery) WithSentInvitation(invitationID uuid.UUID) *UserQuery {
	queryspec.WithSentInvitation(q.Specification, queryspec.And, invitationID)
	return q
}

// NotWithSentInvitation excludes the sender of the invitation.
func (q *UserQuery) NotWithSentInvitation(invitationID uuid.UUID) *UserQuery {
	queryspec.WithSentInvitation(q.Specification, queryspec.Not, invitationID)
	return q
}

// WithReceivedInvitation matches users who received the invitation.
func (q *UserQuery) WithReceivedInvitation(invitationID uuid.UUID) *UserQuery {
	queryspec.WithReceivedInvitation(q.Specification, queryspec.And, invitationID)
	return q
}

// NotWithReceivedInvitation excludes the receiver of the invitation.
func (q *UserQuery) NotWithReceivedInvitation(invitationID uuid.UUID) *UserQuery {
	queryspec.WithReceivedInvitation(q.Specification, queryspec.Not, invitationID)
	return q
}

// WithGroupUser matches the user owning the membership.
func (q *UserQuery) WithGroupUser(groupUserID uuid.UUID) *UserQuery {
	queryspec.WithGroupUser(q.Specification, queryspec.And, groupUserID)
	return q
}

// NotWithGroupUser excludes the user owning the membership.
func (q *UserQuery) NotWithGroupUser(groupUserID uuid.UUID) *UserQuery {
	queryspec.WithGroupUser(q.Specification, queryspec.Not, groupUserID)
	return q
}

// WithGroup matches members of the group.
func (q *UserQuery) WithGroup(groupID uuid.UUID) *UserQuery {
	queryspec.WithMembershipInGroup(q.Specification, queryspec.And, groupID)
	return q
}

// NotWithGroup matches users who are not members of the group.
func (q *UserQuery) NotWithGroup(groupID uuid.UUID) *UserQuery {
	queryspec.WithMembershipInGroup(q.Specification, queryspec.Not, groupID)
	return q
}
