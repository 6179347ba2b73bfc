package pgtesthelpers

import (
	"context"
	"database/sql"
	_ "embed"
	"testing"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/fixtures"
	"github.com/AntonStoeckl/spendwise-queryspec-go/testutil/postgresrepo/config"
)

//go:embed schema.sql
var schemaSQL string

// GivenSeededDatabase opens the test database, recreates the schema and seeds world.
func GivenSeededDatabase(t testing.TB, world fixtures.World) *sql.DB {
	t.Helper()

	dsn := requireDSN(t)
	ctx := context.Background()

	db, err := config.PostgresSQLDBConfig(ctx, dsn)
	require.NoError(t, err, "error connecting to the test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, CreateSchema(ctx, db), "error creating the schema")
	require.NoError(t, Seed(ctx, db, world), "error seeding the fixtures")

	return db
}

// CreateSchema drops and recreates all SpendWise tables.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

// Seed inserts every entity of world, parents first.
func Seed(ctx context.Context, db *sql.DB, world fixtures.World) error {
	inserts := make([]*goqu.InsertDataset, 0)
	builder := goqu.Dialect("postgres")

	for _, u := range world.Users() {
		inserts = append(inserts, builder.Insert("users").Rows(goqu.Record{
			"id": u.ID.String(), "name": u.Name, "surname": u.Surname, "email": u.Email,
			"password_hash": u.PasswordHash, "date_of_registration": u.DateOfRegistration,
			"photo": bytesOrNil(u.Photo), "is_email_confirmed": u.IsEmailConfirmed,
			"reset_password_token": optional(u.ResetPasswordToken), "is_two_factor_enabled": u.IsTwoFactorEnabled,
			"preferred_theme": string(u.PreferredTheme),
		}))
	}

	for _, g := range world.Groups() {
		inserts = append(inserts, builder.Insert("groups").Rows(goqu.Record{
			"id": g.ID.String(), "name": g.Name, "description": optional(g.Description),
		}))
	}

	for _, gu := range world.GroupUsers() {
		inserts = append(inserts, builder.Insert("group_users").Rows(goqu.Record{
			"id": gu.ID.String(), "role": string(gu.Role), "user_id": gu.UserID.String(),
			"group_id": gu.GroupID.String(), "limit_id": optionalID(gu.LimitID),
		}))
	}

	for _, l := range world.Limits() {
		inserts = append(inserts, builder.Insert("limits").Rows(goqu.Record{
			"id": l.ID.String(), "group_user_id": l.GroupUserID.String(), "amount": l.Amount,
			"notice_type": string(l.NoticeType),
		}))
	}

	for _, i := range world.Invitations() {
		inserts = append(inserts, builder.Insert("invitations").Rows(goqu.Record{
			"id": i.ID.String(), "sender_id": i.SenderID.String(), "receiver_id": i.ReceiverID.String(),
			"group_id": i.GroupID.String(), "sent_date": i.SentDate, "response_date": optional(i.ResponseDate),
			"is_accepted": optional(i.IsAccepted),
		}))
	}

	for _, c := range world.Categories() {
		inserts = append(inserts, builder.Insert("categories").Rows(goqu.Record{
			"id": c.ID.String(), "name": c.Name, "description": optional(c.Description), "color": c.Color,
			"icon": bytesOrNil(c.Icon),
		}))
	}

	for _, tx := range world.Transactions() {
		inserts = append(inserts, builder.Insert("transactions").Rows(goqu.Record{
			"id": tx.ID.String(), "amount": tx.Amount, "date": tx.Date, "description": optional(tx.Description),
			"type": string(tx.Type), "category_id": optionalID(tx.CategoryID),
		}))
	}

	for _, tgu := range world.TransactionGroupUsers() {
		inserts = append(inserts, builder.Insert("transaction_group_users").Rows(goqu.Record{
			"id": tgu.ID.String(), "transaction_id": tgu.TransactionID.String(),
			"group_user_id": tgu.GroupUserID.String(), "is_read": tgu.IsRead,
		}))
	}

	for _, insert := range inserts {
		query, args, err := insert.Prepared(true).ToSQL()
		if err != nil {
			return err
		}

		if _, err = db.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	return nil
}

func requireDSN(t testing.TB) string {
	dsn, ok := config.PostgresSingleDSN()
	if !ok {
		t.Skip("SPENDWISE_TEST_DSN is not set")
	}

	return dsn
}

func optional[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}

func optionalID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}

	return id.String()
}

func bytesOrNil(b []byte) any {
	if len(b) == 0 {
		return nil
	}

	return b
}
