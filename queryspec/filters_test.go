package queryspec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/fixtures"
)

func filterUsers(world fixtures.World, build func(s *queryspec.Specification[domain.User])) []domain.User {
	spec := queryspec.New[domain.User]()
	build(spec)

	return spec.ToPredicate().Filter(world.Users())
}

func Test_TextFilters_ShouldMatchUsers(t *testing.T) { //nolint:funlen
	world := fixtures.NewWorld(t)

	testCases := []struct {
		description string
		build       func(s *queryspec.Specification[domain.User])
		expected    []domain.User
	}{
		{
			description: "name",
			build:       func(s *queryspec.Specification[domain.User]) { queryspec.WithName(s, queryspec.And, "Alice") },
			expected:    []domain.User{world.AliceBrown, world.AliceSmith},
		},
		{
			description: "name is case sensitive",
			build:       func(s *queryspec.Specification[domain.User]) { queryspec.WithName(s, queryspec.And, "alice") },
			expected:    []domain.User{},
		},
		{
			description: "name partial match",
			build:       func(s *queryspec.Specification[domain.User]) { queryspec.WithNamePartialMatch(s, queryspec.And, "lic") },
			expected:    []domain.User{world.AliceBrown, world.AliceSmith},
		},
		{
			description: "surname partial match",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithSurnamePartialMatch(s, queryspec.And, "row")
			},
			expected: []domain.User{world.AliceBrown, world.BobBrown},
		},
		{
			description: "full name",
			build:       func(s *queryspec.Specification[domain.User]) { queryspec.WithFullName(s, queryspec.And, "Alice Smith") },
			expected:    []domain.User{world.AliceSmith},
		},
		{
			description: "email partial match",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithEmailPartialMatch(s, queryspec.And, "alice")
			},
			expected: []domain.User{world.AliceBrown, world.AliceSmith},
		},
		{
			description: "email domain",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithEmailDomain(s, queryspec.And, "example.com")
			},
			expected: []domain.User{world.AliceBrown, world.BobBrown},
		},
		{
			description: "email domain needs the full domain",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithEmailDomain(s, queryspec.And, "ample.com")
			},
			expected: []domain.User{},
		},
		{
			description: "password hash",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithPasswordHash(s, queryspec.And, "hash-bob")
			},
			expected: []domain.User{world.BobBrown},
		},
		{
			description: "reset password token",
			build: func(s *queryspec.Specification[domain.User]) {
				queryspec.WithResetPasswordToken(s, queryspec.And, "reset-4711")
			},
			expected: []domain.User{world.AliceSmith},
		},
		{
			description: "without reset password token",
			build:       func(s *queryspec.Specification[domain.User]) { queryspec.WithoutResetPasswordToken(s, queryspec.And) },
			expected:    []domain.User{world.AliceBrown, world.BobBrown},
		},
		{
			description: "photo",
			build:       func(s *queryspec.Specification[domain.User]) { queryspec.WithPhoto(s, queryspec.And) },
			expected:    []domain.User{world.AliceBrown},
		},
		{
			description: "without photo",
			build:       func(s *queryspec.Specification[domain.User]) { queryspec.WithoutPhoto(s, queryspec.And) },
			expected:    []domain.User{world.AliceSmith, world.BobBrown},
		},
		{
			description: "id",
			build:       func(s *queryspec.Specification[domain.User]) { queryspec.WithID(s, queryspec.And, world.AliceSmith.ID) },
			expected:    []domain.User{world.AliceSmith},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, filterUsers(world, tc.build))
		})
	}
}

func Test_FlagAndEnumFilters_ShouldMatchUsers(t *testing.T) {
	world := fixtures.NewWorld(t)

	assert.Equal(t, []domain.User{world.AliceBrown, world.BobBrown}, filterUsers(world, func(s *queryspec.Specification[domain.User]) {
		queryspec.WithEmailConfirmed(s, queryspec.And, true)
	}))
	assert.Equal(t, []domain.User{world.AliceSmith, world.BobBrown}, filterUsers(world, func(s *queryspec.Specification[domain.User]) {
		queryspec.WithTwoFactorEnabled(s, queryspec.And, false)
	}))
	assert.Equal(t, []domain.User{world.AliceSmith}, filterUsers(world, func(s *queryspec.Specification[domain.User]) {
		queryspec.WithPreferredTheme(s, queryspec.And, domain.ThemeLight)
	}))
}

func Test_DateFilters_ShouldCompareCalendarDaysInUTC(t *testing.T) { //nolint:funlen
	world := fixtures.NewWorld(t)
	transactions := world.Transactions()
	berlin := time.FixedZone("CEST", 2*60*60)

	testCases := []struct {
		description string
		build       func(s *queryspec.Specification[domain.Transaction])
		expected    []domain.Transaction
	}{
		{
			description: "on day ignores the time of day",
			build: func(s *queryspec.Specification[domain.Transaction]) {
				queryspec.WithDate(s, queryspec.And, time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC))
			},
			expected: []domain.Transaction{world.Flight},
		},
		{
			description: "the argument is truncated in UTC",
			build: func(s *queryspec.Specification[domain.Transaction]) {
				queryspec.WithDate(s, queryspec.And, time.Date(2024, time.March, 2, 1, 0, 0, 0, berlin))
			},
			expected: []domain.Transaction{world.Shopping},
		},
		{
			description: "from is inclusive",
			build: func(s *queryspec.Specification[domain.Transaction]) {
				queryspec.WithDateFrom(s, queryspec.And, fixtures.Day(2024, time.March, 15))
			},
			expected: []domain.Transaction{world.Salary, world.Flight},
		},
		{
			description: "until is inclusive",
			build: func(s *queryspec.Specification[domain.Transaction]) {
				queryspec.WithDateUntil(s, queryspec.And, fixtures.Day(2024, time.March, 15))
			},
			expected: []domain.Transaction{world.Shopping, world.Salary},
		},
		{
			description: "range",
			build: func(s *queryspec.Specification[domain.Transaction]) {
				queryspec.WithDateFrom(s, queryspec.And, fixtures.Day(2024, time.March, 2))
				queryspec.WithDateUntil(s, queryspec.And, fixtures.Day(2024, time.April, 1))
			},
			expected: []domain.Transaction{world.Salary},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			spec := queryspec.New[domain.Transaction]()
			tc.build(spec)

			assert.Equal(t, tc.expected, spec.ToPredicate().Filter(transactions))
		})
	}
}

func Test_DateFilter_Condition_ShouldCarryTheTruncatedDay(t *testing.T) {
	spec := queryspec.New[domain.User]()
	queryspec.WithDateOfRegistrationFrom(spec, queryspec.And, time.Date(2024, time.February, 29, 17, 45, 0, 0, time.UTC))

	condition := spec.ToPredicate().Expr().Condition

	assert.Equal(t, queryspec.MatchOnOrAfterDay, condition.Match)
	assert.Equal(t, fixtures.Day(2024, time.February, 29), condition.Value)
}

func Test_AmountFilters_ShouldCompareMinorUnits(t *testing.T) {
	world := fixtures.NewWorld(t)

	exact := queryspec.New[domain.Transaction]()
	queryspec.WithAmount(exact, queryspec.And, 4200)
	between := queryspec.New[domain.Transaction]()
	queryspec.WithAmountGreaterThan(between, queryspec.And, 4200)
	queryspec.WithAmountLessThan(between, queryspec.And, 150000)
	limits := queryspec.New[domain.Limit]()
	queryspec.WithAmountGreaterThan(limits, queryspec.And, 49999)

	assert.Equal(t, []domain.Transaction{world.Shopping}, exact.ToPredicate().Filter(world.Transactions()))
	assert.Equal(t, []domain.Transaction{world.Flight}, between.ToPredicate().Filter(world.Transactions()))
	assert.Equal(t, []domain.Limit{world.BobLimit}, limits.ToPredicate().Filter(world.Limits()))
}

func Test_ReferenceFilters_ShouldMatchForeignKeys(t *testing.T) {
	world := fixtures.NewWorld(t)

	members := queryspec.New[domain.GroupUser]()
	queryspec.WithGroupID(members, queryspec.And, world.Household.ID)
	queryspec.WithRole(members, queryspec.Not, domain.RoleOwner)

	bobsReads := queryspec.New[domain.TransactionGroupUser]()
	queryspec.WithGroupUserID(bobsReads, queryspec.And, world.BobInHousehold.ID)
	queryspec.WithGroupUserID(bobsReads, queryspec.Or, world.BobInTrip.ID)
	queryspec.WithIsRead(bobsReads, queryspec.And, true)

	invitations := queryspec.New[domain.Invitation]()
	queryspec.WithSenderID(invitations, queryspec.And, world.BobBrown.ID)
	queryspec.WithReceiverID(invitations, queryspec.Or, world.BobBrown.ID)

	assert.Equal(t, []domain.GroupUser{world.AliceSmithInHousehold, world.BobInHousehold},
		members.ToPredicate().Filter(world.GroupUsers()))
	assert.Equal(t, []domain.TransactionGroupUser{world.FlightByBob},
		bobsReads.ToPredicate().Filter(world.TransactionGroupUsers()))
	assert.Equal(t, world.Invitations(), invitations.ToPredicate().Filter(world.Invitations()))
}

func Test_OptionalFilters_ShouldNeverMatchAbsentValues(t *testing.T) { //nolint:funlen
	world := fixtures.NewWorld(t)

	testCases := []struct {
		description string
		build       func(s *queryspec.Specification[domain.Invitation])
		expected    []domain.Invitation
	}{
		{
			description: "accepted",
			build:       func(s *queryspec.Specification[domain.Invitation]) { queryspec.WithIsAccepted(s, queryspec.And, true) },
			expected:    []domain.Invitation{world.AcceptedInvitation},
		},
		{
			description: "declined does not match pending",
			build:       func(s *queryspec.Specification[domain.Invitation]) { queryspec.WithIsAccepted(s, queryspec.And, false) },
			expected:    []domain.Invitation{},
		},
		{
			description: "negated accepted matches pending",
			build:       func(s *queryspec.Specification[domain.Invitation]) { queryspec.WithIsAccepted(s, queryspec.Not, true) },
			expected:    []domain.Invitation{world.PendingInvitation},
		},
		{
			description: "pending",
			build:       func(s *queryspec.Specification[domain.Invitation]) { queryspec.WithPendingResponse(s, queryspec.And) },
			expected:    []domain.Invitation{world.PendingInvitation},
		},
		{
			description: "response date",
			build: func(s *queryspec.Specification[domain.Invitation]) {
				queryspec.WithResponseDate(s, queryspec.And, fixtures.Day(2024, time.January, 6))
			},
			expected: []domain.Invitation{world.AcceptedInvitation},
		},
		{
			description: "response date from does not match unanswered",
			build: func(s *queryspec.Specification[domain.Invitation]) {
				queryspec.WithResponseDateFrom(s, queryspec.And, fixtures.Day(2000, time.January, 1))
			},
			expected: []domain.Invitation{world.AcceptedInvitation},
		},
		{
			description: "without response date",
			build:       func(s *queryspec.Specification[domain.Invitation]) { queryspec.WithoutResponseDate(s, queryspec.And) },
			expected:    []domain.Invitation{world.PendingInvitation},
		},
		{
			description: "sent until",
			build: func(s *queryspec.Specification[domain.Invitation]) {
				queryspec.WithSentDateUntil(s, queryspec.And, fixtures.Day(2024, time.January, 5))
			},
			expected: []domain.Invitation{world.AcceptedInvitation},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			spec := queryspec.New[domain.Invitation]()
			tc.build(spec)

			assert.Equal(t, tc.expected, spec.ToPredicate().Filter(world.Invitations()))
		})
	}
}

func Test_OptionalTextAndCategoryFilters_ShouldHandleAbsence(t *testing.T) {
	world := fixtures.NewWorld(t)

	described := queryspec.New[domain.Transaction]()
	queryspec.WithDescriptionPartialMatch(described, queryspec.And, "s")
	undescribed := queryspec.New[domain.Transaction]()
	queryspec.WithoutDescription(undescribed, queryspec.And)
	groceries := queryspec.New[domain.Transaction]()
	queryspec.WithCategoryID(groceries, queryspec.And, world.Groceries.ID)
	notGroceries := queryspec.New[domain.Transaction]()
	queryspec.WithCategoryID(notGroceries, queryspec.Not, world.Groceries.ID)
	uncategorized := queryspec.New[domain.Transaction]()
	queryspec.WithoutCategory(uncategorized, queryspec.And)

	assert.Equal(t, []domain.Transaction{world.Shopping, world.Salary}, described.ToPredicate().Filter(world.Transactions()))
	assert.Equal(t, []domain.Transaction{world.Flight}, undescribed.ToPredicate().Filter(world.Transactions()))
	assert.Equal(t, []domain.Transaction{world.Shopping}, groceries.ToPredicate().Filter(world.Transactions()))
	assert.Equal(t, []domain.Transaction{world.Salary, world.Flight}, notGroceries.ToPredicate().Filter(world.Transactions()))
	assert.Equal(t, []domain.Transaction{world.Salary}, uncategorized.ToPredicate().Filter(world.Transactions()))
}

func Test_CategoryFilters_ShouldMatchCategories(t *testing.T) {
	world := fixtures.NewWorld(t)

	withIcon := queryspec.New[domain.Category]()
	queryspec.WithIcon(withIcon, queryspec.And)
	withoutIcon := queryspec.New[domain.Category]()
	queryspec.WithoutIcon(withoutIcon, queryspec.And)
	byColor := queryspec.New[domain.Category]()
	queryspec.WithColor(byColor, queryspec.And, "#1565c0")
	byDescription := queryspec.New[domain.Category]()
	queryspec.WithDescription(byDescription, queryspec.And, "Food and household")

	assert.Equal(t, []domain.Category{world.Groceries}, withIcon.ToPredicate().Filter(world.Categories()))
	assert.Equal(t, []domain.Category{world.Travel}, withoutIcon.ToPredicate().Filter(world.Categories()))
	assert.Equal(t, []domain.Category{world.Travel}, byColor.ToPredicate().Filter(world.Categories()))
	assert.Equal(t, []domain.Category{world.Groceries}, byDescription.ToPredicate().Filter(world.Categories()))
}

func Test_EnumFilters_ShouldMatchLimitsAndTransactions(t *testing.T) {
	world := fixtures.NewWorld(t)

	email := queryspec.New[domain.Limit]()
	queryspec.WithNoticeType(email, queryspec.And, domain.NoticeTypeEmail)
	sms := queryspec.New[domain.Limit]()
	queryspec.WithNoticeType(sms, queryspec.And, domain.NoticeTypeSMS)
	income := queryspec.New[domain.Transaction]()
	queryspec.WithTransactionType(income, queryspec.And, domain.TransactionTypeIncome)

	assert.Equal(t, []domain.Limit{world.BobLimit}, email.ToPredicate().Filter(world.Limits()))
	assert.Empty(t, sms.ToPredicate().Filter(world.Limits()))
	assert.Equal(t, []domain.Transaction{world.Salary}, income.ToPredicate().Filter(world.Transactions()))
}
