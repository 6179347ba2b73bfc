package bycriteria_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/spendwise-queryspec-go/bycriteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/criteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

func pathStrings[E any](paths []relations.Path[E]) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, p.String())
	}

	return out
}

func Test_UsersQuery_ShouldMapIncludeFlagsToPaths(t *testing.T) { //nolint:funlen
	testCases := []struct {
		description string
		query       bycriteria.UsersQuery
		expected    []string
	}{
		{description: "no flags", query: bycriteria.UsersQuery{}, expected: []string{}},
		{
			description: "group users",
			query:       bycriteria.UsersQuery{IncludeGroupUsers: true},
			expected:    []string{"GroupUsers"},
		},
		{
			description: "invitations",
			query:       bycriteria.UsersQuery{IncludeSentInvitations: true, IncludeReceivedInvitations: true},
			expected:    []string{"SentInvitations", "ReceivedInvitations"},
		},
		{
			description: "participants",
			query:       bycriteria.UsersQuery{IncludeGroupParticipants: true},
			expected:    []string{"GroupUsers.Group.GroupUsers.User"},
		},
		{
			description: "transactions",
			query:       bycriteria.UsersQuery{IncludeTransactions: true},
			expected:    []string{"GroupUsers.TransactionGroupUsers.Transaction"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			spec := tc.query.Specification()

			assert.Equal(t, "UsersByCriteria", tc.query.QueryType())
			assert.Equal(t, tc.expected, pathStrings(spec.IncludePaths()))
		})
	}
}

func Test_GroupsQuery_TransactionsAndCategories_ShouldAlsoLoadUsers(t *testing.T) {
	spec := bycriteria.GroupsQuery{IncludeCategories: true}.Specification()

	assert.Equal(t, []string{
		"GroupUsers.User",
		"GroupUsers.TransactionGroupUsers.Transaction.Category",
	}, pathStrings(spec.IncludePaths()))
}

func Test_Queries_ShouldMapIncludeFlagsToPaths(t *testing.T) { //nolint:funlen
	assert.Equal(t,
		[]string{"GroupUsers.User", "GroupUsers.Limit", "Invitations", "GroupUsers.TransactionGroupUsers.Transaction"},
		pathStrings(bycriteria.GroupsQuery{
			IncludeUsers: true, IncludeLimits: true, IncludeInvitations: true, IncludeTransactions: true,
		}.Specification().IncludePaths()),
	)
	assert.Equal(t,
		[]string{"User", "Group", "Limit", "TransactionGroupUsers.Transaction"},
		pathStrings(bycriteria.GroupUsersQuery{
			IncludeUser: true, IncludeGroup: true, IncludeLimit: true, IncludeTransactions: true,
		}.Specification().IncludePaths()),
	)
	assert.Equal(t,
		[]string{"Group", "Sender", "Receiver", "Group.GroupUsers.User"},
		pathStrings(bycriteria.InvitationsQuery{
			IncludeGroup: true, IncludeSender: true, IncludeReceiver: true, IncludeGroupParticipants: true,
		}.Specification().IncludePaths()),
	)
	assert.Equal(t,
		[]string{"GroupUser", "GroupUser.User", "GroupUser.Group"},
		pathStrings(bycriteria.LimitsQuery{
			IncludeGroupUser: true, IncludeUser: true, IncludeGroup: true,
		}.Specification().IncludePaths()),
	)
	assert.Equal(t,
		[]string{
			"Category",
			"TransactionGroupUsers.GroupUser.Group",
			"TransactionGroupUsers.GroupUser.User",
			"TransactionGroupUsers.GroupUser.Group.GroupUsers.User",
		},
		pathStrings(bycriteria.TransactionsQuery{
			IncludeCategory: true, IncludeGroups: true, IncludeUsers: true, IncludeParticipants: true,
		}.Specification().IncludePaths()),
	)
	assert.Equal(t,
		[]string{"Transaction", "Transaction.Category", "GroupUser.User"},
		pathStrings(bycriteria.TransactionGroupUsersQuery{
			IncludeTransactions: true, IncludeCategory: true, IncludeUser: true,
		}.Specification().IncludePaths()),
	)
	assert.Equal(t,
		[]string{"Transactions"},
		pathStrings(bycriteria.CategoriesQuery{IncludeTransactions: true}.Specification().IncludePaths()),
	)
}

func Test_Queries_ShouldCompileTheirCriteria(t *testing.T) {
	query := bycriteria.TransactionGroupUsersQuery{
		Criteria: criteria.TransactionGroupUser{Not: []criteria.TransactionGroupUser{{IsRead: ptr(true)}}},
	}

	assert.Equal(t, "NOT(is_read eq true)", query.Specification().ToPredicate().String())
	assert.Equal(t, "TransactionGroupUsersByCriteria", query.QueryType())
}

func Test_QueryTypes_ShouldBeDistinct(t *testing.T) {
	types := []string{
		bycriteria.UsersQuery{}.QueryType(),
		bycriteria.GroupsQuery{}.QueryType(),
		bycriteria.GroupUsersQuery{}.QueryType(),
		bycriteria.InvitationsQuery{}.QueryType(),
		bycriteria.LimitsQuery{}.QueryType(),
		bycriteria.TransactionsQuery{}.QueryType(),
		bycriteria.TransactionGroupUsersQuery{}.QueryType(),
		bycriteria.CategoriesQuery{}.QueryType(),
	}

	seen := map[string]bool{}
	for _, queryType := range types {
		assert.False(t, seen[queryType], queryType)
		seen[queryType] = true
	}
}

var _ bycriteria.Query[domain.User] = bycriteria.UsersQuery{}
