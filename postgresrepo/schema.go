package postgresrepo

import (
	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// Table identifies the table of one entity type. Its value is the default table name.
type Table string

const (
	TableUsers                 Table = "users"
	TableGroups                Table = "groups"
	TableGroupUsers            Table = "group_users"
	TableInvitations           Table = "invitations"
	TableLimits                Table = "limits"
	TableTransactions          Table = "transactions"
	TableTransactionGroupUsers Table = "transaction_group_users"
	TableCategories            Table = "categories"
)

const colID = "id"

// column is a table column. Its name doubles as the JSON key of the entity document.
type column struct {
	name     string
	field    queryspec.Field // empty if no filter addresses the column
	nullable bool
	binary   bool // bytea, rendered base64 in documents
}

// relation joins a child table to its parent: child.childColumn = parent.parentColumn.
type relation struct {
	target       Table
	many         bool
	childColumn  string
	parentColumn string
	jsonKey      string
}

type entitySchema struct {
	table     Table
	columns   []column
	relations map[relations.Relation]relation
}

// columnFor returns the column filtered by field.
func (es entitySchema) columnFor(field queryspec.Field) (column, bool) {
	for _, c := range es.columns {
		if c.field != "" && c.field == field {
			return c, true
		}
	}

	return column{}, false
}

var schemas = map[Table]entitySchema{
	TableUsers: {
		table: TableUsers,
		columns: []column{
			{name: colID, field: queryspec.FieldID},
			{name: "name", field: queryspec.FieldName},
			{name: "surname", field: queryspec.FieldSurname},
			{name: "email", field: queryspec.FieldEmail},
			{name: "password_hash", field: queryspec.FieldPasswordHash},
			{name: "date_of_registration", field: queryspec.FieldDateOfRegistration},
			{name: "photo", field: queryspec.FieldPhoto, nullable: true, binary: true},
			{name: "is_email_confirmed", field: queryspec.FieldEmailConfirmed},
			{name: "reset_password_token", field: queryspec.FieldResetPasswordToken, nullable: true},
			{name: "is_two_factor_enabled", field: queryspec.FieldTwoFactorEnabled},
			{name: "preferred_theme", field: queryspec.FieldPreferredTheme},
		},
		relations: map[relations.Relation]relation{
			relations.SentInvitations: {
				target: TableInvitations, many: true, childColumn: "sender_id", parentColumn: colID,
				jsonKey: "sent_invitations",
			},
			relations.ReceivedInvitations: {
				target: TableInvitations, many: true, childColumn: "receiver_id", parentColumn: colID,
				jsonKey: "received_invitations",
			},
			relations.GroupUsers: {
				target: TableGroupUsers, many: true, childColumn: "user_id", parentColumn: colID,
				jsonKey: "group_users",
			},
		},
	},
	TableGroups: {
		table: TableGroups,
		columns: []column{
			{name: colID, field: queryspec.FieldID},
			{name: "name", field: queryspec.FieldName},
			{name: "description", field: queryspec.FieldDescription, nullable: true},
		},
		relations: map[relations.Relation]relation{
			relations.GroupUsers: {
				target: TableGroupUsers, many: true, childColumn: "group_id", parentColumn: colID,
				jsonKey: "group_users",
			},
			relations.Invitations: {
				target: TableInvitations, many: true, childColumn: "group_id", parentColumn: colID,
				jsonKey: "invitations",
			},
		},
	},
	TableGroupUsers: {
		table: TableGroupUsers,
		columns: []column{
			{name: colID, field: queryspec.FieldID},
			{name: "role", field: queryspec.FieldRole},
			{name: "user_id", field: queryspec.FieldUserID},
			{name: "group_id", field: queryspec.FieldGroupID},
			{name: "limit_id", nullable: true},
		},
		relations: map[relations.Relation]relation{
			relations.User: {
				target: TableUsers, childColumn: colID, parentColumn: "user_id", jsonKey: "user",
			},
			relations.Group: {
				target: TableGroups, childColumn: colID, parentColumn: "group_id", jsonKey: "group",
			},
			relations.Limit: {
				target: TableLimits, childColumn: "group_user_id", parentColumn: colID, jsonKey: "limit",
			},
			relations.TransactionGroupUsers: {
				target: TableTransactionGroupUsers, many: true, childColumn: "group_user_id", parentColumn: colID,
				jsonKey: "transaction_group_users",
			},
		},
	},
	TableInvitations: {
		table: TableInvitations,
		columns: []column{
			{name: colID, field: queryspec.FieldID},
			{name: "sender_id", field: queryspec.FieldSenderID},
			{name: "receiver_id", field: queryspec.FieldReceiverID},
			{name: "group_id", field: queryspec.FieldGroupID},
			{name: "sent_date", field: queryspec.FieldSentDate},
			{name: "response_date", field: queryspec.FieldResponseDate, nullable: true},
			{name: "is_accepted", field: queryspec.FieldIsAccepted, nullable: true},
		},
		relations: map[relations.Relation]relation{
			relations.Sender: {
				target: TableUsers, childColumn: colID, parentColumn: "sender_id", jsonKey: "sender",
			},
			relations.Receiver: {
				target: TableUsers, childColumn: colID, parentColumn: "receiver_id", jsonKey: "receiver",
			},
			relations.Group: {
				target: TableGroups, childColumn: colID, parentColumn: "group_id", jsonKey: "group",
			},
		},
	},
	TableLimits: {
		table: TableLimits,
		columns: []column{
			{name: colID, field: queryspec.FieldID},
			{name: "group_user_id", field: queryspec.FieldGroupUserID},
			{name: "amount", field: queryspec.FieldAmount},
			{name: "notice_type", field: queryspec.FieldNoticeType},
		},
		relations: map[relations.Relation]relation{
			relations.GroupUser: {
				target: TableGroupUsers, childColumn: colID, parentColumn: "group_user_id", jsonKey: "group_user",
			},
		},
	},
	TableTransactions: {
		table: TableTransactions,
		columns: []column{
			{name: colID, field: queryspec.FieldID},
			{name: "amount", field: queryspec.FieldAmount},
			{name: "date", field: queryspec.FieldDate},
			{name: "description", field: queryspec.FieldDescription, nullable: true},
			{name: "type", field: queryspec.FieldTransactionType},
			{name: "category_id", field: queryspec.FieldCategoryID, nullable: true},
		},
		relations: map[relations.Relation]relation{
			relations.Category: {
				target: TableCategories, childColumn: colID, parentColumn: "category_id", jsonKey: "category",
			},
			relations.TransactionGroupUsers: {
				target: TableTransactionGroupUsers, many: true, childColumn: "transaction_id", parentColumn: colID,
				jsonKey: "transaction_group_users",
			},
		},
	},
	TableTransactionGroupUsers: {
		table: TableTransactionGroupUsers,
		columns: []column{
			{name: colID, field: queryspec.FieldID},
			{name: "transaction_id", field: queryspec.FieldTransactionID},
			{name: "group_user_id", field: queryspec.FieldGroupUserID},
			{name: "is_read", field: queryspec.FieldIsRead},
		},
		relations: map[relations.Relation]relation{
			relations.Transaction: {
				target: TableTransactions, childColumn: colID, parentColumn: "transaction_id", jsonKey: "transaction",
			},
			relations.GroupUser: {
				target: TableGroupUsers, childColumn: colID, parentColumn: "group_user_id", jsonKey: "group_user",
			},
		},
	},
	TableCategories: {
		table: TableCategories,
		columns: []column{
			{name: colID, field: queryspec.FieldID},
			{name: "name", field: queryspec.FieldName},
			{name: "description", field: queryspec.FieldDescription, nullable: true},
			{name: "color", field: queryspec.FieldColor},
			{name: "icon", field: queryspec.FieldIcon, nullable: true, binary: true},
		},
		relations: map[relations.Relation]relation{
			relations.Transactions: {
				target: TableTransactions, many: true, childColumn: "category_id", parentColumn: colID,
				jsonKey: "transactions",
			},
		},
	},
}

// tableFor returns the table of the entity type E.
func tableFor[E domain.Entity]() (Table, error) {
	var zero E

	switch any(zero).(type) {
	case domain.User:
		return TableUsers, nil
	case domain.Group:
		return TableGroups, nil
	case domain.GroupUser:
		return TableGroupUsers, nil
	case domain.Invitation:
		return TableInvitations, nil
	case domain.Limit:
		return TableLimits, nil
	case domain.Transaction:
		return TableTransactions, nil
	case domain.TransactionGroupUser:
		return TableTransactionGroupUsers, nil
	case domain.Category:
		return TableCategories, nil
	default:
		return "", ErrUnknownEntity
	}
}
