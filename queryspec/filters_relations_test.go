package queryspec_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/fixtures"
)

func filtered[E any](entities []E, build func(s *queryspec.Specification[E])) []E {
	spec := queryspec.New[E]()
	build(spec)

	return spec.ToPredicate().Filter(entities)
}

func Test_RelationFilters_ShouldMatchUsersByLoadedRelations(t *testing.T) { //nolint:funlen
	world := fixtures.NewWorld(t).WithRelations()

	testCases := []struct {
		description string
		build       func(s *queryspec.Specification[domain.User])
		expected    []domain.User
	}{
		{
			description: "sent invitation",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithSentInvitation(s, queryspec.And, world.AcceptedInvitation.ID)
			},
			expected: []domain.User{world.AliceBrown},
		},
		{
			description: "received invitation",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithReceivedInvitation(s, queryspec.And, world.PendingInvitation.ID)
			},
			expected: []domain.User{world.AliceSmith},
		},
		{
			description: "group user",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithGroupUser(s, queryspec.And, world.BobInTrip.ID)
			},
			expected: []domain.User{world.BobBrown},
		},
		{
			description: "membership in group",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithMembershipInGroup(s, queryspec.And, world.Household.ID)
			},
			expected: []domain.User{world.AliceBrown, world.AliceSmith, world.BobBrown},
		},
		{
			description: "no membership in group",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithMembershipInGroup(s, queryspec.Not, world.Trip.ID)
			},
			expected: []domain.User{world.AliceBrown, world.AliceSmith},
		},
		{
			description: "unknown invitation",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithSentInvitation(s, queryspec.And, fixtures.GivenUniqueID(t))
			},
			expected: []domain.User{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, filtered(world.Users(), tc.build))
		})
	}
}

func Test_RelationFilters_OnUnloadedRelations_ShouldNotMatch(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)

	// act
	members := filtered(world.Users(), func(s *queryspec.Specification[domain.User]) {
		queryspec.WithMembershipInGroup(s, queryspec.And, world.Household.ID)
	})
	nonMembers := filtered(world.Users(), func(s *queryspec.Specification[domain.User]) {
		queryspec.WithMembershipInGroup(s, queryspec.Not, world.Household.ID)
	})

	// assert
	assert.Empty(t, members)
	assert.Equal(t, world.Users(), nonMembers)
}

func Test_RelationFilters_ShouldMatchAcrossEntities(t *testing.T) { //nolint:funlen
	world := fixtures.NewWorld(t).WithRelations()

	testCases := []struct {
		description string
		matched     func() []uuid.UUID
		expected    []uuid.UUID
	}{
		{
			description: "group by group user",
			matched: func() []uuid.UUID {
				return idsOf(filtered(world.Groups(), func(s *queryspec.Specification[domain.Group]) {
					queryspec.WithGroupUser(s, queryspec.And, world.AliceSmithInHousehold.ID)
				}))
			},
			expected: []uuid.UUID{world.Household.ID},
		},
		{
			description: "group by invitation",
			matched: func() []uuid.UUID {
				return idsOf(filtered(world.Groups(), func(s *queryspec.Specification[domain.Group]) {
					queryspec.WithInvitation(s, queryspec.And, world.PendingInvitation.ID)
				}))
			},
			expected: []uuid.UUID{world.Trip.ID},
		},
		{
			description: "group user by transaction group user",
			matched: func() []uuid.UUID {
				return idsOf(filtered(world.GroupUsers(), func(s *queryspec.Specification[domain.GroupUser]) {
					queryspec.WithTransactionGroupUser(s, queryspec.And, world.ShoppingByBob.ID)
				}))
			},
			expected: []uuid.UUID{world.BobInHousehold.ID},
		},
		{
			description: "transaction by transaction group user",
			matched: func() []uuid.UUID {
				return idsOf(filtered(world.Transactions(), func(s *queryspec.Specification[domain.Transaction]) {
					queryspec.WithTransactionGroupUser(s, queryspec.And, world.SalaryByAliceSmith.ID)
				}))
			},
			expected: []uuid.UUID{world.Salary.ID},
		},
		{
			description: "transactions shared with a user",
			matched: func() []uuid.UUID {
				return idsOf(filtered(world.Transactions(), func(s *queryspec.Specification[domain.Transaction]) {
					queryspec.WithParticipatingUser(s, queryspec.And, world.BobBrown.ID)
				}))
			},
			expected: []uuid.UUID{world.Shopping.ID, world.Flight.ID},
		},
		{
			description: "transactions shared with a group",
			matched: func() []uuid.UUID {
				return idsOf(filtered(world.Transactions(), func(s *queryspec.Specification[domain.Transaction]) {
					queryspec.WithParticipatingGroup(s, queryspec.And, world.Trip.ID)
				}))
			},
			expected: []uuid.UUID{world.Flight.ID},
		},
		{
			description: "entries of the transaction of another entry",
			matched: func() []uuid.UUID {
				return idsOf(filtered(
					world.TransactionGroupUsers(),
					func(s *queryspec.Specification[domain.TransactionGroupUser]) {
						queryspec.WithTransactionParticipant(s, queryspec.And, world.ShoppingByBob.ID)
					},
				))
			},
			expected: []uuid.UUID{world.ShoppingByAliceBrown.ID, world.ShoppingByBob.ID},
		},
		{
			description: "entries whose transaction is shared with a user",
			matched: func() []uuid.UUID {
				return idsOf(filtered(
					world.TransactionGroupUsers(),
					func(s *queryspec.Specification[domain.TransactionGroupUser]) {
						queryspec.WithTransactionParticipatingUser(s, queryspec.And, world.AliceBrown.ID)
					},
				))
			},
			expected: []uuid.UUID{world.ShoppingByAliceBrown.ID, world.ShoppingByBob.ID},
		},
		{
			description: "entries whose transaction is shared with a group",
			matched: func() []uuid.UUID {
				return idsOf(filtered(
					world.TransactionGroupUsers(),
					func(s *queryspec.Specification[domain.TransactionGroupUser]) {
						queryspec.WithTransactionParticipatingGroup(s, queryspec.And, world.Trip.ID)
					},
				))
			},
			expected: []uuid.UUID{world.FlightByBob.ID},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.matched())
		})
	}
}

func Test_RelationFilters_ShouldDescribeTheRelationPath(t *testing.T) {
	// arrange
	userID := fixtures.GivenUniqueID(t)
	spec := queryspec.New[domain.TransactionGroupUser]()
	queryspec.WithTransactionParticipatingUser(spec, queryspec.Not, userID)

	// act
	expr := spec.ToPredicate().Expr()

	// assert
	assert.Equal(t, queryspec.OpNot, expr.Op)
	assert.Equal(t, queryspec.Condition{
		Field: queryspec.FieldUserID,
		Match: queryspec.MatchAnyEqual,
		Value: userID,
		Via:   []relations.Relation{relations.Transaction, relations.TransactionGroupUsers, relations.GroupUser},
	}, expr.Children[0].Condition)
	assert.Equal(
		t,
		fmt.Sprintf("NOT(Transaction.TransactionGroupUsers.GroupUser.user_id any_eq %s)", userID),
		spec.ToPredicate().String(),
	)
}

func idsOf[E domain.Entity](entities []E) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(entities))
	for _, e := range entities {
		ids = append(ids, e.GetID())
	}

	return ids
}
