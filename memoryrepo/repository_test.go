package memoryrepo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/memoryrepo"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryobjects"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/fixtures"
)

func givenUserRepository(t *testing.T, world fixtures.World) *memoryrepo.Repository[domain.User] {
	t.Helper()

	repo, err := memoryrepo.New(world.Users()...)
	require.NoError(t, err, "error in arranging test data")

	return repo
}

func Test_List_ShouldReturnMatchesInInsertionOrder(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)
	repo := givenUserRepository(t, world)
	query := queryobjects.NewUserQuery().WithSurname("Brown")

	// act
	users, err := queryspec.List(context.Background(), repo, query.Specification)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []domain.User{world.AliceBrown, world.BobBrown}, users)
}

func Test_List_WithEmptySpecification_ShouldReturnEverything(t *testing.T) {
	world := fixtures.NewWorld(t)
	repo := givenUserRepository(t, world)

	users, err := queryspec.List(context.Background(), repo, queryspec.New[domain.User]())

	require.NoError(t, err)
	assert.Equal(t, world.Users(), users)
}

func Test_SingleOrDefault(t *testing.T) { //nolint:funlen
	world := fixtures.NewWorld(t)
	repo := givenUserRepository(t, world)

	testCases := []struct {
		description   string
		query         *queryobjects.UserQuery
		expectedUser  domain.User
		expectedFound bool
		expectedErr   error
	}{
		{
			description:   "exactly one match",
			query:         queryobjects.NewUserQuery().WithEmail("bob@example.com"),
			expectedUser:  world.BobBrown,
			expectedFound: true,
		},
		{
			description: "no match",
			query:       queryobjects.NewUserQuery().WithEmail("carol@example.com"),
		},
		{
			description: "several matches",
			query:       queryobjects.NewUserQuery().WithName("Alice"),
			expectedErr: queryspec.ErrMoreThanOneResult,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			user, found, err := queryspec.SingleOrDefault(context.Background(), repo, tc.query.Specification)

			// assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.False(t, found)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedFound, found)
			assert.Equal(t, tc.expectedUser, user)
		})
	}
}

func Test_Save_ShouldReplaceInPlace(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)
	repo := givenUserRepository(t, world)
	renamed := world.AliceSmith
	renamed.Surname = "Jones"

	// act
	require.NoError(t, repo.Save(renamed))

	// assert
	users, err := repo.List(context.Background(), queryspec.True[domain.User](), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.Len())
	assert.Equal(t, []domain.User{world.AliceBrown, renamed, world.BobBrown}, users)
}

func Test_Delete(t *testing.T) {
	world := fixtures.NewWorld(t)
	repo := givenUserRepository(t, world)

	assert.True(t, repo.Delete(world.AliceSmith.ID))
	assert.False(t, repo.Delete(world.AliceSmith.ID))
	assert.Equal(t, 2, repo.Len())

	users, err := repo.List(context.Background(), queryspec.True[domain.User](), nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.User{world.AliceBrown, world.BobBrown}, users)
}

func Test_Repository_ShouldIsolateStoredEntitiesFromCallers(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)
	original := world.AliceBrown
	repo, err := memoryrepo.New(original)
	require.NoError(t, err)

	// act
	original.Photo[0] = 0x00
	listed, err := repo.List(context.Background(), queryspec.True[domain.User](), nil)
	require.NoError(t, err)
	listed[0].Name = "Mallory"

	// assert
	again, err := repo.List(context.Background(), queryspec.True[domain.User](), nil)
	require.NoError(t, err)
	assert.Equal(t, "Alice", again[0].Name)
	assert.Equal(t, byte(0x89), again[0].Photo[0])
}

func Test_Repository_ShouldRecordPredicateAndIncludes(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)
	repo, err := memoryrepo.New(world.Groups()...)
	require.NoError(t, err)

	query := queryobjects.NewGroupQuery().WithName("Trip")
	query.Include(query.Relations().IncludeGroupUsers().ThenIncludeUser())

	// act
	_, err = queryspec.List(context.Background(), repo, query.Specification)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []memoryrepo.RecordedQuery{
		{Predicate: "name eq Trip", Includes: []string{"GroupUsers.User"}},
	}, repo.Queries())
}

func Test_List_ShouldFail_WhenContextIsCanceled(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)
	repo := givenUserRepository(t, world)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, err := repo.List(ctx, queryspec.True[domain.User](), nil)
	_, _, errSingle := repo.SingleOrDefault(ctx, queryspec.True[domain.User](), nil)

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, errSingle, context.Canceled)
	assert.Empty(t, repo.Queries())
}

func Test_Repository_ShouldBeSafeForConcurrentUse(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)
	repo, err := memoryrepo.New[domain.TransactionGroupUser]()
	require.NoError(t, err)

	var wg sync.WaitGroup

	// act
	for _, tgu := range world.TransactionGroupUsers() {
		tgu := tgu
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Save(tgu))
		}()
		go func() {
			defer wg.Done()
			_, listErr := repo.List(context.Background(), queryspec.True[domain.TransactionGroupUser](), nil)
			assert.NoError(t, listErr)
		}()
	}
	wg.Wait()

	// assert
	assert.Equal(t, len(world.TransactionGroupUsers()), repo.Len())
}

func Test_List_ShouldReturnRelationsAsSaved_RegardlessOfIncludes(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)
	loaded := world.WithRelations()

	bare, err := memoryrepo.New(world.Groups()...)
	require.NoError(t, err)
	withRelations, err := memoryrepo.New(loaded.Groups()...)
	require.NoError(t, err)

	including := queryobjects.NewGroupQuery().WithID(world.Household.ID)
	including.Include(including.Relations().IncludeGroupUsers())
	notIncluding := queryobjects.NewGroupQuery().WithID(world.Household.ID)

	// act
	fromBare, bareErr := queryspec.List(context.Background(), bare, including.Specification)
	fromLoaded, loadedErr := queryspec.List(context.Background(), withRelations, notIncluding.Specification)

	// assert
	require.NoError(t, bareErr)
	require.NoError(t, loadedErr)
	require.Len(t, fromBare, 1)
	require.Len(t, fromLoaded, 1)
	assert.Empty(t, fromBare[0].GroupUsers, "includes are not hydrated")
	assert.Equal(t, loaded.Household.GroupUsers, fromLoaded[0].GroupUsers)
	assert.Equal(t, []string{"GroupUsers"}, bare.Queries()[0].Includes)
}

func Test_List_WithRelationFilters_ShouldMatchSavedRelations(t *testing.T) { //nolint:funlen
	world := fixtures.NewWorld(t).WithRelations()

	users, err := memoryrepo.New(world.Users()...)
	require.NoError(t, err, "error in arranging test data")
	transactions, err := memoryrepo.New(world.Transactions()...)
	require.NoError(t, err, "error in arranging test data")

	testCases := []struct {
		description string
		list        func() ([]uuid.UUID, error)
		expected    []uuid.UUID
	}{
		{
			description: "members of a group",
			list: func() ([]uuid.UUID, error) {
				return listIDs(users, queryobjects.NewUserQuery().WithGroup(world.Trip.ID).Specification)
			},
			expected: []uuid.UUID{world.BobBrown.ID},
		},
		{
			description: "members of a group who received no invitation",
			list: func() ([]uuid.UUID, error) {
				query := queryobjects.NewUserQuery().
					WithGroup(world.Household.ID).
					NotWithReceivedInvitation(world.AcceptedInvitation.ID)

				return listIDs(users, query.Specification)
			},
			expected: []uuid.UUID{world.AliceBrown.ID, world.AliceSmith.ID},
		},
		{
			description: "transactions shared with a user",
			list: func() ([]uuid.UUID, error) {
				return listIDs(transactions, queryobjects.NewTransactionQuery().WithUser(world.AliceSmith.ID).Specification)
			},
			expected: []uuid.UUID{world.Salary.ID},
		},
		{
			description: "transactions not shared with a group",
			list: func() ([]uuid.UUID, error) {
				return listIDs(transactions, queryobjects.NewTransactionQuery().NotWithGroup(world.Trip.ID).Specification)
			},
			expected: []uuid.UUID{world.Shopping.ID, world.Salary.ID},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, listErr := tc.list()

			require.NoError(t, listErr)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func listIDs[E domain.Entity](repo *memoryrepo.Repository[E], spec *queryspec.Specification[E]) ([]uuid.UUID, error) {
	entities, err := queryspec.List(context.Background(), repo, spec)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(entities))
	for _, e := range entities {
		ids = append(ids, e.GetID())
	}

	return ids, nil
}
