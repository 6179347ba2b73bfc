package bycriteria

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/criteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
)

// InvitationsQuery lists invitations matching Criteria.
type InvitationsQuery struct {
	Criteria                 criteria.Invitation `json:"criteria"`
	IncludeGroup             bool                `json:"include_group"`
	IncludeSender            bool                `json:"include_sender"`
	IncludeReceiver          bool                `json:"include_receiver"`
	IncludeGroupParticipants bool                `json:"include_group_participants"`
}

func (q InvitationsQuery) QueryType() string {
	return "InvitationsByCriteria"
}

func (q InvitationsQuery) Specification() *queryspec.Specification[domain.Invitation] {
	query := q.Criteria.Query()
	r := query.Relations()

	return applyIncludes(query.Specification, []includeAction[domain.Invitation]{
		{q.IncludeGroup, r.IncludeGroup()},
		{q.IncludeSender, r.IncludeSender()},
		{q.IncludeReceiver, r.IncludeReceiver()},
		{q.IncludeGroupParticipants, r.IncludeGroup().ThenIncludeGroupUsers().ThenIncludeUser()},
	})
}
