package queryobjects_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryobjects"
	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/fixtures"
)

func Test_NewQuery_ShouldStartEmpty(t *testing.T) {
	assert.True(t, queryobjects.NewUserQuery().IsEmpty())
	assert.True(t, queryobjects.NewGroupQuery().IsEmpty())
	assert.True(t, queryobjects.NewGroupUserQuery().IsEmpty())
	assert.True(t, queryobjects.NewInvitationQuery().IsEmpty())
	assert.True(t, queryobjects.NewLimitQuery().IsEmpty())
	assert.True(t, queryobjects.NewTransactionQuery().IsEmpty())
	assert.True(t, queryobjects.NewTransactionGroupUserQuery().IsEmpty())
	assert.True(t, queryobjects.NewCategoryQuery().IsEmpty())
}

func Test_UserQuery_ShouldChainWithAndNotWith(t *testing.T) {
	// arrange
	world := fixtures.NewWorld(t)

	// act
	query := queryobjects.NewUserQuery().
		WithEmailDomain("example.com").
		NotWithSurname("Smith").
		WithDateOfRegistrationFrom(fixtures.Day(2024, time.January, 1))

	// assert
	assert.Equal(
		t,
		"((email ends_with @example.com AND NOT(surname eq Smith)) AND date_of_registration on_or_after_day 2024-01-01 00:00:00 +0000 UTC)",
		query.ToPredicate().String(),
	)
	assert.Equal(t, []domain.User{world.BobBrown}, query.ToPredicate().Filter(world.Users()))
}

func Test_UserQuery_NotWithEmailDomain_ShouldExcludeTheDomain(t *testing.T) {
	world := fixtures.NewWorld(t)

	query := queryobjects.NewUserQuery().NotWithEmailDomain("example.com")

	assert.Equal(t, []domain.User{world.AliceSmith}, query.ToPredicate().Filter(world.Users()))
}

func Test_TransactionQuery_ShouldFilterTransactions(t *testing.T) {
	world := fixtures.NewWorld(t)

	query := queryobjects.NewTransactionQuery().
		WithAmountLessThan(100000).
		NotWithTransactionType(domain.TransactionTypeTransfer)

	assert.Equal(t, []domain.Transaction{world.Shopping}, query.ToPredicate().Filter(world.Transactions()))
}

func Test_InvitationQuery_ShouldFilterInvitations(t *testing.T) {
	world := fixtures.NewWorld(t)

	query := queryobjects.NewInvitationQuery().
		WithGroupID(world.Trip.ID).
		WithPendingResponse()

	assert.Equal(t, []domain.Invitation{world.PendingInvitation}, query.ToPredicate().Filter(world.Invitations()))
}

func Test_GroupUserQuery_ShouldFilterMemberships(t *testing.T) {
	world := fixtures.NewWorld(t)

	query := queryobjects.NewGroupUserQuery().
		WithUserID(world.BobBrown.ID).
		NotWithRole(domain.RoleOwner)

	assert.Equal(t, []domain.GroupUser{world.BobInHousehold}, query.ToPredicate().Filter(world.GroupUsers()))
}

func Test_LimitAndCategoryQueries_ShouldFilter(t *testing.T) {
	world := fixtures.NewWorld(t)

	limits := queryobjects.NewLimitQuery().WithNoticeType(domain.NoticeTypeEmail).WithAmount(50000)
	categories := queryobjects.NewCategoryQuery().WithoutDescription().NotWithColor("#2e7d32")
	reads := queryobjects.NewTransactionGroupUserQuery().WithTransactionID(world.Shopping.ID).WithIsRead(false)

	assert.Equal(t, []domain.Limit{world.BobLimit}, limits.ToPredicate().Filter(world.Limits()))
	assert.Equal(t, []domain.Category{world.Travel}, categories.ToPredicate().Filter(world.Categories()))
	assert.Equal(t, []domain.TransactionGroupUser{world.ShoppingByBob}, reads.ToPredicate().Filter(world.TransactionGroupUsers()))
}

func Test_RelationMethods_ShouldFilterByLoadedRelations(t *testing.T) {
	world := fixtures.NewWorld(t).WithRelations()

	users := queryobjects.NewUserQuery().WithGroup(world.Household.ID).NotWithGroupUser(world.BobInHousehold.ID)
	groups := queryobjects.NewGroupQuery().NotWithInvitation(world.AcceptedInvitation.ID)
	memberships := queryobjects.NewGroupUserQuery().WithTransactionGroupUser(world.ShoppingByAliceBrown.ID)
	entries := queryobjects.NewTransactionGroupUserQuery().WithUser(world.BobBrown.ID).NotWithGroup(world.Trip.ID)

	assert.Equal(t, []domain.User{world.AliceBrown, world.AliceSmith}, users.ToPredicate().Filter(world.Users()))
	assert.Equal(t, []domain.Group{world.Trip}, groups.ToPredicate().Filter(world.Groups()))
	assert.Equal(
		t,
		[]domain.GroupUser{world.AliceBrownInHousehold},
		memberships.ToPredicate().Filter(world.GroupUsers()),
	)
	assert.Equal(
		t,
		[]domain.TransactionGroupUser{world.ShoppingByAliceBrown, world.ShoppingByBob},
		entries.ToPredicate().Filter(world.TransactionGroupUsers()),
	)
}

func Test_Include_ShouldAddRelationPaths(t *testing.T) {
	// arrange
	query := queryobjects.NewTransactionQuery()
	r := query.Relations()

	// act
	query.Include(
		r.IncludeCategory(),
		r.IncludeTransactionGroupUsers().ThenIncludeGroupUser().ThenIncludeUser(),
	)

	// assert
	assert.Equal(t, []string{
		"Category",
		"TransactionGroupUsers",
		"TransactionGroupUsers.GroupUser",
		"TransactionGroupUsers.GroupUser.User",
	}, query.Includes())
	assert.True(t, query.IsEmpty(), "includes must not touch the filter")
}
