package relations

import "github.com/AntonStoeckl/spendwise-queryspec-go/domain"

// InvitationRoot is the starting state for include paths of a domain.Invitation.
type InvitationRoot interface {
	IncludeSender() Completed[domain.Invitation]
	IncludeReceiver() Completed[domain.Invitation]
	IncludeGroup() InvitationGroup
}

// InvitationGroup is the state after Group.
type InvitationGroup interface {
	Completed[domain.Invitation]
	ThenIncludeGroupUsers() InvitationGroupGroupUsers
}

// InvitationGroupGroupUsers is the state after Group.GroupUsers.
type InvitationGroupGroupUsers interface {
	Completed[domain.Invitation]
	ThenIncludeUser() Completed[domain.Invitation]
}

type invitationIncludes struct {
	path Path[domain.Invitation]
}

// ForInvitation starts an include path rooted at domain.Invitation.
func ForInvitation() InvitationRoot {
	return invitationIncludes{}
}

func (b invitationIncludes) Path() Path[domain.Invitation] {
	return b.path
}

func (b invitationIncludes) IncludeSender() Completed[domain.Invitation] {
	return invitationIncludes{path: b.path.with(Sender)}
}

func (b invitationIncludes) IncludeReceiver() Completed[domain.Invitation] {
	return invitationIncludes{path: b.path.with(Receiver)}
}

func (b invitationIncludes) IncludeGroup() InvitationGroup {
	return invitationIncludes{path: b.path.with(Group)}
}

func (b invitationIncludes) ThenIncludeGroupUsers() InvitationGroupGroupUsers {
	return invitationIncludes{path: b.path.with(GroupUsers)}
}

func (b invitationIncludes) ThenIncludeUser() Completed[domain.Invitation] {
	return invitationIncludes{path: b.path.with(User)}
}
