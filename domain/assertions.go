package domain

// Compile-time capability membership of each entity.
var (
	_ interface {
		Entity
		HasName
		HasSurname
		HasEmail
		HasPasswordHash
		HasDateOfRegistration
		HasPhoto
		HasEmailConfirmed
		HasResetPasswordToken
		HasTwoFactorEnabled
		HasPreferredTheme
		HasSentInvitations
		HasReceivedInvitations
		HasGroupUsers
	} = User{}

	_ interface {
		Entity
		HasName
		HasDescription
		HasGroupUsers
		HasInvitations
	} = Group{}

	_ interface {
		Entity
		HasRole
		HasUserID
		HasGroupID
		HasTransactionGroupUsers
	} = GroupUser{}

	_ interface {
		Entity
		HasSenderID
		HasReceiverID
		HasGroupID
		HasSentDate
		HasResponseDate
		HasIsAccepted
	} = Invitation{}

	_ interface {
		Entity
		HasGroupUserID
		HasAmount
		HasNoticeType
	} = Limit{}

	_ interface {
		Entity
		HasAmount
		HasDate
		HasDescription
		HasTransactionType
		HasCategoryID
		HasTransactionGroupUsers
	} = Transaction{}

	_ interface {
		Entity
		HasTransactionID
		HasGroupUserID
		HasIsRead
		HasTransaction
	} = TransactionGroupUser{}

	_ interface {
		Entity
		HasName
		HasDescription
		HasColor
		HasIcon
	} = Category{}
)
