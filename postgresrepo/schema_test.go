package postgresrepo_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/postgresrepo"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// reachablePaths walks every Include/ThenInclude transition of state up to depth and collects the reached paths.
func reachablePaths[E any](state reflect.Value, depth int) []relations.Path[E] {
	var paths []relations.Path[E]

	for i := 0; i < state.Type().NumMethod(); i++ {
		name := state.Type().Method(i).Name
		if !strings.HasPrefix(name, "Include") && !strings.HasPrefix(name, "ThenInclude") {
			continue
		}

		next := state.MethodByName(name).Call(nil)[0]
		paths = append(paths, next.MethodByName("Path").Call(nil)[0].Interface().(relations.Path[E]))

		if depth > 1 {
			paths = append(paths, reachablePaths[E](next, depth-1)...)
		}
	}

	return paths
}

func rootState[S any](state S) reflect.Value {
	return reflect.ValueOf(&state).Elem()
}

func assertAllPathsResolve[E domain.Entity](t *testing.T, store postgresrepo.Store, root reflect.Value) {
	t.Helper()

	repo := givenRepository[E](t, store)
	paths := reachablePaths[E](root, 5)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		_, err := repo.SelectSQL(queryspec.True[E](), []relations.Path[E]{path})
		assert.NoError(t, err, path.String())
	}

	_, err := repo.SelectSQL(queryspec.True[E](), paths)
	assert.NoError(t, err, "all paths merged")
}

func Test_Schema_ShouldMapEveryReachableIncludePath(t *testing.T) {
	store := givenUnconnectedStore(t)

	t.Run("user", func(t *testing.T) {
		assertAllPathsResolve[domain.User](t, store, rootState(relations.ForUser()))
	})
	t.Run("group", func(t *testing.T) {
		assertAllPathsResolve[domain.Group](t, store, rootState(relations.ForGroup()))
	})
	t.Run("group_user", func(t *testing.T) {
		assertAllPathsResolve[domain.GroupUser](t, store, rootState(relations.ForGroupUser()))
	})
	t.Run("invitation", func(t *testing.T) {
		assertAllPathsResolve[domain.Invitation](t, store, rootState(relations.ForInvitation()))
	})
	t.Run("limit", func(t *testing.T) {
		assertAllPathsResolve[domain.Limit](t, store, rootState(relations.ForLimit()))
	})
	t.Run("transaction", func(t *testing.T) {
		assertAllPathsResolve[domain.Transaction](t, store, rootState(relations.ForTransaction()))
	})
	t.Run("transaction_group_user", func(t *testing.T) {
		assertAllPathsResolve[domain.TransactionGroupUser](t, store, rootState(relations.ForTransactionGroupUser()))
	})
	t.Run("category", func(t *testing.T) {
		assertAllPathsResolve[domain.Category](t, store, rootState(relations.ForCategory()))
	})
}

func Test_NewRepository_ShouldUseTheEntityTable(t *testing.T) {
	store := givenUnconnectedStore(t, postgresrepo.WithTableName(postgresrepo.TableTransactionGroupUsers, "tx_members"))
	repo := givenRepository[domain.TransactionGroupUser](t, store)

	sqlQuery, err := repo.SelectSQL(queryspec.True[domain.TransactionGroupUser](), nil)

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `FROM "tx_members" AS "t0"`)
}
