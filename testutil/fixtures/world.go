package fixtures

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
)

// World is the fixture data set. Named fields give tests direct access to single entities.
type World struct {
	AliceBrown domain.User
	AliceSmith domain.User
	BobBrown   domain.User

	Household domain.Group
	Trip      domain.Group

	AliceBrownInHousehold domain.GroupUser // Owner
	AliceSmithInHousehold domain.GroupUser // Admin
	BobInHousehold        domain.GroupUser // Member, has BobLimit
	BobInTrip             domain.GroupUser // Owner

	BobLimit domain.Limit

	Groceries domain.Category
	Travel    domain.Category

	Shopping domain.Transaction // Expense, Groceries
	Salary   domain.Transaction // Income, no category
	Flight   domain.Transaction // Transfer, Travel

	ShoppingByAliceBrown domain.TransactionGroupUser // read
	ShoppingByBob        domain.TransactionGroupUser // unread
	SalaryByAliceSmith   domain.TransactionGroupUser // unread
	FlightByBob          domain.TransactionGroupUser // read

	AcceptedInvitation domain.Invitation // AliceBrown to Bob, Household
	PendingInvitation  domain.Invitation // Bob to AliceSmith, Trip
}

// GivenUniqueID returns a new time-ordered ID.
func GivenUniqueID(t testing.TB) uuid.UUID {
	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id
}

// Day returns midnight UTC of the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// NewWorld builds the fixture data set with fresh IDs.
//
//nolint:funlen
func NewWorld(t testing.TB) World {
	w := World{}

	w.AliceBrown = domain.User{
		ID:                 GivenUniqueID(t),
		Name:               "Alice",
		Surname:            "Brown",
		Email:              "alice.brown@example.com",
		PasswordHash:       "hash-alice-brown",
		DateOfRegistration: time.Date(2023, time.January, 10, 9, 30, 0, 0, time.UTC),
		Photo:              []byte{0x89, 0x50, 0x4e, 0x47},
		IsEmailConfirmed:   true,
		IsTwoFactorEnabled: true,
		PreferredTheme:     domain.ThemeDark,
	}
	w.AliceSmith = domain.User{
		ID:                 GivenUniqueID(t),
		Name:               "Alice",
		Surname:            "Smith",
		Email:              "alice.smith@acme.org",
		PasswordHash:       "hash-alice-smith",
		DateOfRegistration: time.Date(2023, time.June, 1, 23, 45, 0, 0, time.UTC),
		ResetPasswordToken: ptr("reset-4711"),
		PreferredTheme:     domain.ThemeLight,
	}
	w.BobBrown = domain.User{
		ID:                 GivenUniqueID(t),
		Name:               "Bob",
		Surname:            "Brown",
		Email:              "bob@example.com",
		PasswordHash:       "hash-bob",
		DateOfRegistration: time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC),
		IsEmailConfirmed:   true,
		PreferredTheme:     domain.ThemeSystemDefault,
	}

	w.Household = domain.Group{ID: GivenUniqueID(t), Name: "Household", Description: ptr("Shared flat expenses")}
	w.Trip = domain.Group{ID: GivenUniqueID(t), Name: "Trip"}

	w.AliceBrownInHousehold = domain.GroupUser{
		ID: GivenUniqueID(t), Role: domain.RoleOwner, UserID: w.AliceBrown.ID, GroupID: w.Household.ID,
	}
	w.AliceSmithInHousehold = domain.GroupUser{
		ID: GivenUniqueID(t), Role: domain.RoleAdmin, UserID: w.AliceSmith.ID, GroupID: w.Household.ID,
	}
	w.BobInHousehold = domain.GroupUser{
		ID: GivenUniqueID(t), Role: domain.RoleMember, UserID: w.BobBrown.ID, GroupID: w.Household.ID,
	}
	w.BobInTrip = domain.GroupUser{
		ID: GivenUniqueID(t), Role: domain.RoleOwner, UserID: w.BobBrown.ID, GroupID: w.Trip.ID,
	}

	w.BobLimit = domain.Limit{
		ID: GivenUniqueID(t), GroupUserID: w.BobInHousehold.ID, Amount: 50000, NoticeType: domain.NoticeTypeEmail,
	}
	w.BobInHousehold.LimitID = ptr(w.BobLimit.ID)

	w.Groceries = domain.Category{
		ID: GivenUniqueID(t), Name: "Groceries", Description: ptr("Food and household"), Color: "#2e7d32",
		Icon: []byte("<svg/>"),
	}
	w.Travel = domain.Category{ID: GivenUniqueID(t), Name: "Travel", Color: "#1565c0"}

	w.Shopping = domain.Transaction{
		ID: GivenUniqueID(t), Amount: 4200, Date: time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC),
		Description: ptr("Weekly shopping"), Type: domain.TransactionTypeExpense, CategoryID: ptr(w.Groceries.ID),
	}
	w.Salary = domain.Transaction{
		ID: GivenUniqueID(t), Amount: 150000, Date: time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC),
		Description: ptr("March salary"), Type: domain.TransactionTypeIncome,
	}
	w.Flight = domain.Transaction{
		ID: GivenUniqueID(t), Amount: 32000, Date: time.Date(2024, time.April, 2, 23, 59, 0, 0, time.UTC),
		Type: domain.TransactionTypeTransfer, CategoryID: ptr(w.Travel.ID),
	}

	w.ShoppingByAliceBrown = domain.TransactionGroupUser{
		ID: GivenUniqueID(t), TransactionID: w.Shopping.ID, GroupUserID: w.AliceBrownInHousehold.ID, IsRead: true,
	}
	w.ShoppingByBob = domain.TransactionGroupUser{
		ID: GivenUniqueID(t), TransactionID: w.Shopping.ID, GroupUserID: w.BobInHousehold.ID,
	}
	w.SalaryByAliceSmith = domain.TransactionGroupUser{
		ID: GivenUniqueID(t), TransactionID: w.Salary.ID, GroupUserID: w.AliceSmithInHousehold.ID,
	}
	w.FlightByBob = domain.TransactionGroupUser{
		ID: GivenUniqueID(t), TransactionID: w.Flight.ID, GroupUserID: w.BobInTrip.ID, IsRead: true,
	}

	w.AcceptedInvitation = domain.Invitation{
		ID: GivenUniqueID(t), SenderID: w.AliceBrown.ID, ReceiverID: w.BobBrown.ID, GroupID: w.Household.ID,
		SentDate:     time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC),
		ResponseDate: ptr(time.Date(2024, time.January, 6, 7, 0, 0, 0, time.UTC)),
		IsAccepted:   ptr(true),
	}
	w.PendingInvitation = domain.Invitation{
		ID: GivenUniqueID(t), SenderID: w.BobBrown.ID, ReceiverID: w.AliceSmith.ID, GroupID: w.Trip.ID,
		SentDate: time.Date(2024, time.May, 20, 16, 0, 0, 0, time.UTC),
	}

	return w
}

func (w World) Users() []domain.User {
	return []domain.User{w.AliceBrown, w.AliceSmith, w.BobBrown}
}

func (w World) Groups() []domain.Group {
	return []domain.Group{w.Household, w.Trip}
}

func (w World) GroupUsers() []domain.GroupUser {
	return []domain.GroupUser{w.AliceBrownInHousehold, w.AliceSmithInHousehold, w.BobInHousehold, w.BobInTrip}
}

func (w World) Limits() []domain.Limit {
	return []domain.Limit{w.BobLimit}
}

func (w World) Categories() []domain.Category {
	return []domain.Category{w.Groceries, w.Travel}
}

func (w World) Transactions() []domain.Transaction {
	return []domain.Transaction{w.Shopping, w.Salary, w.Flight}
}

func (w World) TransactionGroupUsers() []domain.TransactionGroupUser {
	return []domain.TransactionGroupUser{w.ShoppingByAliceBrown, w.ShoppingByBob, w.SalaryByAliceSmith, w.FlightByBob}
}

func (w World) Invitations() []domain.Invitation {
	return []domain.Invitation{w.AcceptedInvitation, w.PendingInvitation}
}

// WithRelations returns a copy of w whose entities carry their direct relations,
// as a repository returns them when those relations are included.
// Transaction entries additionally carry their GroupUser, and a TransactionGroupUser its loaded Transaction.
func (w World) WithRelations() World {
	r := w

	r.AliceBrown = w.userWithRelations(w.AliceBrown)
	r.AliceSmith = w.userWithRelations(w.AliceSmith)
	r.BobBrown = w.userWithRelations(w.BobBrown)

	r.Household = w.groupWithRelations(w.Household)
	r.Trip = w.groupWithRelations(w.Trip)

	r.AliceBrownInHousehold = w.groupUserWithRelations(w.AliceBrownInHousehold)
	r.AliceSmithInHousehold = w.groupUserWithRelations(w.AliceSmithInHousehold)
	r.BobInHousehold = w.groupUserWithRelations(w.BobInHousehold)
	r.BobInTrip = w.groupUserWithRelations(w.BobInTrip)

	r.Shopping = w.transactionWithRelations(w.Shopping)
	r.Salary = w.transactionWithRelations(w.Salary)
	r.Flight = w.transactionWithRelations(w.Flight)

	r.ShoppingByAliceBrown = w.transactionGroupUserWithRelations(w.ShoppingByAliceBrown)
	r.ShoppingByBob = w.transactionGroupUserWithRelations(w.ShoppingByBob)
	r.SalaryByAliceSmith = w.transactionGroupUserWithRelations(w.SalaryByAliceSmith)
	r.FlightByBob = w.transactionGroupUserWithRelations(w.FlightByBob)

	return r
}

func (w World) userWithRelations(u domain.User) domain.User {
	u.SentInvitations = where(w.Invitations(), func(i domain.Invitation) bool { return i.SenderID == u.ID })
	u.ReceivedInvitations = where(w.Invitations(), func(i domain.Invitation) bool { return i.ReceiverID == u.ID })
	u.GroupUsers = where(w.GroupUsers(), func(gu domain.GroupUser) bool { return gu.UserID == u.ID })

	return u
}

func (w World) groupWithRelations(g domain.Group) domain.Group {
	g.GroupUsers = where(w.GroupUsers(), func(gu domain.GroupUser) bool { return gu.GroupID == g.ID })
	g.Invitations = where(w.Invitations(), func(i domain.Invitation) bool { return i.GroupID == g.ID })

	return g
}

func (w World) groupUserWithRelations(gu domain.GroupUser) domain.GroupUser {
	gu.TransactionGroupUsers = where(w.TransactionGroupUsers(), func(tgu domain.TransactionGroupUser) bool {
		return tgu.GroupUserID == gu.ID
	})

	return gu
}

func (w World) transactionWithRelations(t domain.Transaction) domain.Transaction {
	entries := where(w.TransactionGroupUsers(), func(tgu domain.TransactionGroupUser) bool {
		return tgu.TransactionID == t.ID
	})

	for i := range entries {
		member := byID(w.GroupUsers(), entries[i].GroupUserID)
		entries[i].GroupUser = &member
	}

	t.TransactionGroupUsers = entries

	return t
}

func (w World) transactionGroupUserWithRelations(tgu domain.TransactionGroupUser) domain.TransactionGroupUser {
	transaction := w.transactionWithRelations(byID(w.Transactions(), tgu.TransactionID))
	member := byID(w.GroupUsers(), tgu.GroupUserID)

	tgu.Transaction = &transaction
	tgu.GroupUser = &member

	return tgu
}

func where[E any](entities []E, keep func(E) bool) []E {
	var kept []E
	for _, e := range entities {
		if keep(e) {
			kept = append(kept, e)
		}
	}

	return kept
}

func byID[E domain.Entity](entities []E, id uuid.UUID) E {
	for _, e := range entities {
		if e.GetID() == id {
			return e
		}
	}

	var zero E

	return zero
}
