package bycriteria_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/spendwise-queryspec-go/bycriteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/criteria"
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/memoryrepo"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/fixtures"
	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/observability/testdoubles"
)

func ptr[T any](v T) *T {
	return &v
}

func Test_Handle_ShouldReturnMatchesAndPassIncludes(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)
	repo, err := memoryrepo.New(world.Users()...)
	require.NoError(t, err)
	handler := bycriteria.NewQueryHandler[domain.User](repo)

	query := bycriteria.UsersQuery{
		Criteria:      criteria.User{Surname: ptr("Brown")},
		IncludeGroups: true,
	}

	// act
	users, err := handler.Handle(context.Background(), query)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []domain.User{world.AliceBrown, world.BobBrown}, users)
	assert.Equal(t, []memoryrepo.RecordedQuery{
		{Predicate: "surname eq Brown", Includes: []string{"GroupUsers.Group"}},
	}, repo.Queries())
}

func Test_HandleSingle(t *testing.T) { //nolint:funlen
	world := fixtures.NewWorld(t)
	repo, err := memoryrepo.New(world.Invitations()...)
	require.NoError(t, err)
	handler := bycriteria.NewQueryHandler[domain.Invitation](repo)

	testCases := []struct {
		description   string
		query         bycriteria.InvitationsQuery
		expected      domain.Invitation
		expectedFound bool
		expectedErr   error
	}{
		{
			description:   "one pending invitation",
			query:         bycriteria.InvitationsQuery{Criteria: criteria.Invitation{WithPendingResponse: true}},
			expected:      world.PendingInvitation,
			expectedFound: true,
		},
		{
			description: "no declined invitation",
			query:       bycriteria.InvitationsQuery{Criteria: criteria.Invitation{IsAccepted: ptr(false)}},
		},
		{
			description: "every invitation",
			query:       bycriteria.InvitationsQuery{},
			expectedErr: queryspec.ErrMoreThanOneResult,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			invitation, found, err := handler.HandleSingle(context.Background(), tc.query)

			// assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedFound, found)
			assert.Equal(t, tc.expected, invitation)
		})
	}
}

func Test_Handle_ShouldLogStartAndCompletion(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)
	repo, err := memoryrepo.New(world.Transactions()...)
	require.NoError(t, err)
	logger := testdoubles.NewLoggerSpy()
	handler := bycriteria.NewQueryHandler[domain.Transaction](repo, bycriteria.WithLogger(logger))

	query := bycriteria.TransactionsQuery{
		Criteria:        criteria.Transaction{WithoutCategory: true},
		IncludeCategory: true,
	}

	// act
	_, err = handler.Handle(context.Background(), query)

	// assert
	require.NoError(t, err)

	started := logger.Records(testdoubles.LevelDebug)
	require.Len(t, started, 1)
	assert.Equal(t, "query by criteria started", started[0].Message)
	predicate, _ := started[0].Attr("predicate")
	assert.Equal(t, "category_id is_null", predicate)
	includes, _ := started[0].Attr("includes")
	assert.Equal(t, []string{"Category"}, includes)

	completed := logger.Records(testdoubles.LevelInfo)
	require.Len(t, completed, 1)
	assert.Equal(t, "query by criteria completed", completed[0].Message)
	queryType, _ := completed[0].Attr("query_type")
	assert.Equal(t, "TransactionsByCriteria", queryType)
	resultCount, _ := completed[0].Attr("result_count")
	assert.Equal(t, 1, resultCount)
	_, hasDuration := completed[0].Attr("duration_ms")
	assert.True(t, hasDuration)
}

func Test_Handle_ShouldLogFailures(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)
	repo, err := memoryrepo.New(world.Limits()...)
	require.NoError(t, err)
	logger := testdoubles.NewLoggerSpy()
	handler := bycriteria.NewQueryHandler[domain.Limit](repo, bycriteria.WithLogger(logger))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, err = handler.Handle(ctx, bycriteria.LimitsQuery{})
	_, _, errSingle := handler.HandleSingle(ctx, bycriteria.LimitsQuery{})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, errSingle, context.Canceled)
	failures := logger.Records(testdoubles.LevelError)
	require.Len(t, failures, 2)
	assert.Equal(t, "query by criteria failed", failures[0].Message)
	logged, _ := failures[0].Attr("error")
	assert.Equal(t, context.Canceled.Error(), logged)
	assert.Empty(t, logger.Records(testdoubles.LevelInfo))
}

type failingRepository[E any] struct{}

var errRepositoryDown = errors.New("repository down")

func (failingRepository[E]) List(context.Context, queryspec.Predicate[E], []relations.Path[E]) ([]E, error) {
	return nil, errRepositoryDown
}

func (failingRepository[E]) SingleOrDefault(context.Context, queryspec.Predicate[E], []relations.Path[E]) (E, bool, error) {
	var empty E
	return empty, false, errRepositoryDown
}

func Test_Handle_WithoutLogger_ShouldPassErrorsThrough(t *testing.T) {
	handler := bycriteria.NewQueryHandler[domain.Category](failingRepository[domain.Category]{})

	_, err := handler.Handle(context.Background(), bycriteria.CategoriesQuery{})

	assert.ErrorIs(t, err, errRepositoryDown)
}
