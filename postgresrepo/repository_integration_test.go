package postgresrepo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/spendwise-queryspec-go/bycriteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/criteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/postgresrepo"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/fixtures"
	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/observability/testdoubles"
	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/postgresrepo/pgtesthelpers"
)

func ptr[T any](v T) *T {
	return &v
}

func ids[E domain.Entity](entities []E) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.GetID())
	}

	return out
}

func Test_Integration_ListByCriteria(t *testing.T) { //nolint:funlen
	// arrange
	world := fixtures.NewWorld(t)
	pgtesthelpers.GivenSeededDatabase(t, world)
	store := pgtesthelpers.NewStore(t)
	ctx := context.Background()

	t.Run("users by surname or email domain", func(t *testing.T) {
		repo := givenRepository[domain.User](t, store)
		query := bycriteria.UsersQuery{Criteria: criteria.User{
			Or: []criteria.User{{Surname: ptr("Smith")}, {EmailDomain: ptr("acme.org")}},
		}}

		users, err := bycriteria.NewQueryHandler[domain.User](repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{world.AliceSmith.ID}, ids(users))
	})

	t.Run("transactions without category", func(t *testing.T) {
		repo := givenRepository[domain.Transaction](t, store)
		query := bycriteria.TransactionsQuery{Criteria: criteria.Transaction{WithoutCategory: true}}

		transactions, err := bycriteria.NewQueryHandler[domain.Transaction](repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{world.Salary.ID}, ids(transactions))
	})

	t.Run("negated nullable condition keeps rows with absent values", func(t *testing.T) {
		repo := givenRepository[domain.Transaction](t, store)
		query := bycriteria.TransactionsQuery{Criteria: criteria.Transaction{
			Not: []criteria.Transaction{{DescriptionPartialMatch: ptr("salary")}},
		}}

		transactions, err := bycriteria.NewQueryHandler[domain.Transaction](repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{world.Shopping.ID, world.Flight.ID}, ids(transactions))
	})

	t.Run("unread transaction group users", func(t *testing.T) {
		repo := givenRepository[domain.TransactionGroupUser](t, store)
		query := bycriteria.TransactionGroupUsersQuery{
			Criteria: criteria.TransactionGroupUser{Not: []criteria.TransactionGroupUser{{IsRead: ptr(true)}}},
		}

		tgus, err := bycriteria.NewQueryHandler[domain.TransactionGroupUser](repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]uuid.UUID{world.ShoppingByBob.ID, world.SalaryByAliceSmith.ID},
			ids(tgus),
		)
	})

	t.Run("members of a group", func(t *testing.T) {
		repo := givenRepository[domain.User](t, store)
		query := bycriteria.UsersQuery{Criteria: criteria.User{GroupID: ptr(world.Trip.ID)}}

		users, err := bycriteria.NewQueryHandler[domain.User](repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{world.BobBrown.ID}, ids(users))
	})

	t.Run("entries whose transaction is shared with a user", func(t *testing.T) {
		repo := givenRepository[domain.TransactionGroupUser](t, store)
		query := bycriteria.TransactionGroupUsersQuery{
			Criteria: criteria.TransactionGroupUser{UserID: ptr(world.AliceBrown.ID)},
		}

		tgus, err := bycriteria.NewQueryHandler[domain.TransactionGroupUser](repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.ElementsMatch(t,
			[]uuid.UUID{world.ShoppingByAliceBrown.ID, world.ShoppingByBob.ID},
			ids(tgus),
		)
	})
}

func Test_Integration_ShouldLoadIncludedRelations(t *testing.T) { //nolint:funlen
	// arrange
	world := fixtures.NewWorld(t)
	pgtesthelpers.GivenSeededDatabase(t, world)
	store := pgtesthelpers.NewStore(t)
	ctx := context.Background()

	t.Run("group with members and their users", func(t *testing.T) {
		repo := givenRepository[domain.Group](t, store)
		query := bycriteria.GroupsQuery{
			Criteria:     criteria.Group{Name: ptr(world.Household.Name)},
			IncludeUsers: true,
		}

		group, found, err := bycriteria.NewQueryHandler[domain.Group](repo).HandleSingle(ctx, query)

		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, world.Household.ID, group.ID)
		require.Len(t, group.GroupUsers, 3)
		for _, member := range group.GroupUsers {
			require.NotNil(t, member.User)
			assert.Equal(t, member.UserID, member.User.ID)
		}
		assert.Empty(t, group.Invitations)
	})

	t.Run("transaction with category and binary icon", func(t *testing.T) {
		repo := givenRepository[domain.Transaction](t, store)
		query := bycriteria.TransactionsQuery{
			Criteria:        criteria.Transaction{ID: ptr(world.Shopping.ID)},
			IncludeCategory: true,
		}

		transaction, found, err := bycriteria.NewQueryHandler[domain.Transaction](repo).HandleSingle(ctx, query)

		require.NoError(t, err)
		require.True(t, found)
		require.NotNil(t, transaction.Category)
		assert.Equal(t, world.Groceries.ID, transaction.Category.ID)
		assert.Equal(t, world.Groceries.Icon, transaction.Category.Icon)
		assert.True(t, world.Shopping.Date.Equal(transaction.Date))
	})

	t.Run("limit with group user and user", func(t *testing.T) {
		repo := givenRepository[domain.Limit](t, store)
		query := bycriteria.LimitsQuery{IncludeUser: true}

		limits, err := bycriteria.NewQueryHandler[domain.Limit](repo).Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, limits, 1)
		require.NotNil(t, limits[0].GroupUser)
		require.NotNil(t, limits[0].GroupUser.User)
		assert.Equal(t, world.BobBrown.ID, limits[0].GroupUser.User.ID)
		assert.Nil(t, limits[0].GroupUser.Group)
	})
}

func Test_Integration_SingleOrDefault_WithSeveralMatches_ShouldFail(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)
	pgtesthelpers.GivenSeededDatabase(t, world)
	logger := testdoubles.NewLoggerSpy()
	metrics := testdoubles.NewMetricsCollectorSpy()
	repo := givenRepository[domain.Invitation](t, pgtesthelpers.NewStore(t,
		postgresrepo.WithLogger(logger),
		postgresrepo.WithMetrics(metrics),
	))

	// act
	_, _, err := repo.SingleOrDefault(context.Background(), queryspec.True[domain.Invitation](), nil)

	// assert
	assert.ErrorIs(t, err, queryspec.ErrMoreThanOneResult)
	assert.True(t, logger.HasLog(testdoubles.LevelDebug, "executed sql for: query"))
	assert.True(t, logger.HasLog(testdoubles.LevelInfo, "repository operation: query completed"))

	loaded := metrics.Records("spendwise_rows_loaded")
	require.Len(t, loaded, 1)
	assert.InDelta(t, 2.0, loaded[0].Value, 0.001)
	assert.Equal(t, "success", loaded[0].Labels["status"])
}
