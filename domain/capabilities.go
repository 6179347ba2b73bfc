package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is implemented by every SpendWise entity.
type Entity interface {
	GetID() uuid.UUID
}

/***** text families *****/

type HasName interface {
	GetName() string
}

type HasSurname interface {
	GetSurname() string
}

// HasFullName is implemented by entities whose full name is "Name Surname".
type HasFullName interface {
	HasName
	HasSurname
}

// HasDescription is implemented by entities with an optional free-text description.
// A nil result means the description is absent.
type HasDescription interface {
	GetDescription() *string
}

type HasColor interface {
	GetColor() string
}

type HasEmail interface {
	GetEmail() string
}

type HasPasswordHash interface {
	GetPasswordHash() string
}

type HasResetPasswordToken interface {
	GetResetPasswordToken() *string
}

/***** binary content families *****/

type HasIcon interface {
	GetIcon() []byte
}

type HasPhoto interface {
	GetPhoto() []byte
}

/***** numeric families *****/

// HasAmount is implemented by entities carrying money, in minor currency units.
type HasAmount interface {
	GetAmount() int64
}

/***** date families *****/

type HasDate interface {
	GetDate() time.Time
}

type HasSentDate interface {
	GetSentDate() time.Time
}

type HasResponseDate interface {
	GetResponseDate() *time.Time
}

type HasDateOfRegistration interface {
	GetDateOfRegistration() time.Time
}

/***** flag families *****/

// HasIsAccepted is implemented by entities with a tri-state acceptance flag,
// where nil means no answer was given yet.
type HasIsAccepted interface {
	GetIsAccepted() *bool
}

type HasIsRead interface {
	GetIsRead() bool
}

type HasEmailConfirmed interface {
	GetIsEmailConfirmed() bool
}

type HasTwoFactorEnabled interface {
	GetIsTwoFactorEnabled() bool
}

/***** enum families *****/

type HasNoticeType interface {
	GetNoticeType() NoticeType
}

type HasTransactionType interface {
	GetTransactionType() TransactionType
}

type HasPreferredTheme interface {
	GetPreferredTheme() Theme
}

type HasRole interface {
	GetRole() UserRole
}

/***** reference families *****/

type HasUserID interface {
	GetUserID() uuid.UUID
}

type HasGroupID interface {
	GetGroupID() uuid.UUID
}

type HasGroupUserID interface {
	GetGroupUserID() uuid.UUID
}

type HasTransactionID interface {
	GetTransactionID() uuid.UUID
}

// HasCategoryID is implemented by entities with an optional category, nil means uncategorized.
type HasCategoryID interface {
	GetCategoryID() *uuid.UUID
}

type HasSenderID interface {
	GetSenderID() uuid.UUID
}

type HasReceiverID interface {
	GetReceiverID() uuid.UUID
}

/***** relation families *****/

// Relation accessors return whatever is loaded, so membership tests on an unloaded relation never match.

type HasSentInvitations interface {
	GetSentInvitations() []Invitation
}

type HasReceivedInvitations interface {
	GetReceivedInvitations() []Invitation
}

type HasInvitations interface {
	GetInvitations() []Invitation
}

type HasGroupUsers interface {
	GetGroupUsers() []GroupUser
}

type HasTransactionGroupUsers interface {
	GetTransactionGroupUsers() []TransactionGroupUser
}

// HasTransaction is implemented by entities hanging off a single Transaction, nil when it is not loaded.
type HasTransaction interface {
	GetTransaction() *Transaction
}
