package queryspec

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// Relation membership filters. In memory they look at the relations loaded on the entity,
// translating repositories check the related rows instead.

// WithSentInvitation matches users who sent the invitation with the given id.
func WithSentInvitation[E domain.HasSentInvitations](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, anyLeaf([]relations.Relation{relations.SentInvitations}, FieldID, id,
		func(e E) []domain.Invitation { return e.GetSentInvitations() }, invitationID))
}

// WithReceivedInvitation matches users who received the invitation with the given id.
func WithReceivedInvitation[E domain.HasReceivedInvitations](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, anyLeaf([]relations.Relation{relations.ReceivedInvitations}, FieldID, id,
		func(e E) []domain.Invitation { return e.GetReceivedInvitations() }, invitationID))
}

// WithInvitation matches groups the invitation with the given id was issued for.
func WithInvitation[E domain.HasInvitations](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, anyLeaf([]relations.Relation{relations.Invitations}, FieldID, id,
		func(e E) []domain.Invitation { return e.GetInvitations() }, invitationID))
}

// WithGroupUser matches entities owning the membership with the given id.
func WithGroupUser[E domain.HasGroupUsers](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, anyLeaf([]relations.Relation{relations.GroupUsers}, FieldID, id,
		func(e E) []domain.GroupUser { return e.GetGroupUsers() },
		func(gu domain.GroupUser) uuid.UUID { return gu.ID }))
}

// WithMembershipInGroup matches entities with a membership in the group with the given id.
func WithMembershipInGroup[E domain.HasGroupUsers](s *Specification[E], op FoldOp, groupID uuid.UUID) *Specification[E] {
	return s.Fold(op, anyLeaf([]relations.Relation{relations.GroupUsers}, FieldGroupID, groupID,
		func(e E) []domain.GroupUser { return e.GetGroupUsers() },
		func(gu domain.GroupUser) uuid.UUID { return gu.GroupID }))
}

// WithTransactionGroupUser matches entities linked to the transaction group user with the given id.
func WithTransactionGroupUser[E domain.HasTransactionGroupUsers](
	s *Specification[E],
	op FoldOp,
	id uuid.UUID,
) *Specification[E] {
	return s.Fold(op, anyLeaf([]relations.Relation{relations.TransactionGroupUsers}, FieldID, id,
		func(e E) []domain.TransactionGroupUser { return e.GetTransactionGroupUsers() },
		func(tgu domain.TransactionGroupUser) uuid.UUID { return tgu.ID }))
}

// WithParticipatingGroup matches entities shared with a member of the group with the given id.
func WithParticipatingGroup[E domain.HasTransactionGroupUsers](
	s *Specification[E],
	op FoldOp,
	groupID uuid.UUID,
) *Specification[E] {
	return s.Fold(op, anyLeaf(participantsVia(), FieldGroupID, groupID,
		func(e E) []domain.GroupUser { return participants(e.GetTransactionGroupUsers()) },
		func(gu domain.GroupUser) uuid.UUID { return gu.GroupID }))
}

// WithParticipatingUser matches entities shared with the user with the given id.
func WithParticipatingUser[E domain.HasTransactionGroupUsers](
	s *Specification[E],
	op FoldOp,
	userID uuid.UUID,
) *Specification[E] {
	return s.Fold(op, anyLeaf(participantsVia(), FieldUserID, userID,
		func(e E) []domain.GroupUser { return participants(e.GetTransactionGroupUsers()) },
		func(gu domain.GroupUser) uuid.UUID { return gu.UserID }))
}

// WithTransactionParticipant matches entities whose transaction is linked to the
// transaction group user with the given id, the entity itself included.
func WithTransactionParticipant[E domain.HasTransaction](s *Specification[E], op FoldOp, id uuid.UUID) *Specification[E] {
	return s.Fold(op, anyLeaf(
		[]relations.Relation{relations.Transaction, relations.TransactionGroupUsers}, FieldID, id,
		func(e E) []domain.TransactionGroupUser { return transactionGroupUsers(e.GetTransaction()) },
		func(tgu domain.TransactionGroupUser) uuid.UUID { return tgu.ID }))
}

// WithTransactionParticipatingGroup matches entities whose transaction is shared with a member of the given group.
func WithTransactionParticipatingGroup[E domain.HasTransaction](
	s *Specification[E],
	op FoldOp,
	groupID uuid.UUID,
) *Specification[E] {
	return s.Fold(op, anyLeaf(append([]relations.Relation{relations.Transaction}, participantsVia()...), FieldGroupID, groupID,
		func(e E) []domain.GroupUser { return participants(transactionGroupUsers(e.GetTransaction())) },
		func(gu domain.GroupUser) uuid.UUID { return gu.GroupID }))
}

// WithTransactionParticipatingUser matches entities whose transaction is shared with the given user.
func WithTransactionParticipatingUser[E domain.HasTransaction](
	s *Specification[E],
	op FoldOp,
	userID uuid.UUID,
) *Specification[E] {
	return s.Fold(op, anyLeaf(append([]relations.Relation{relations.Transaction}, participantsVia()...), FieldUserID, userID,
		func(e E) []domain.GroupUser { return participants(transactionGroupUsers(e.GetTransaction())) },
		func(gu domain.GroupUser) uuid.UUID { return gu.UserID }))
}

func invitationID(i domain.Invitation) uuid.UUID { return i.ID }

func participantsVia() []relations.Relation {
	return []relations.Relation{relations.TransactionGroupUsers, relations.GroupUser}
}

// participants returns the loaded memberships behind tgus.
func participants(tgus []domain.TransactionGroupUser) []domain.GroupUser {
	members := make([]domain.GroupUser, 0, len(tgus))
	for _, tgu := range tgus {
		if tgu.GroupUser != nil {
			members = append(members, *tgu.GroupUser)
		}
	}

	return members
}

func transactionGroupUsers(t *domain.Transaction) []domain.TransactionGroupUser {
	if t == nil {
		return nil
	}

	return t.TransactionGroupUsers
}
