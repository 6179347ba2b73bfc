package queryspec

import (
	"fmt"
	"strings"

	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// Field names the entity property family a Condition constrains.
type Field string

const (
	FieldID                 Field = "id"
	FieldName               Field = "name"
	FieldSurname            Field = "surname"
	FieldFullName           Field = "full_name"
	FieldDescription        Field = "description"
	FieldColor              Field = "color"
	FieldEmail              Field = "email"
	FieldPasswordHash       Field = "password_hash"
	FieldResetPasswordToken Field = "reset_password_token"
	FieldIcon               Field = "icon"
	FieldPhoto              Field = "photo"
	FieldAmount             Field = "amount"
	FieldDate               Field = "date"
	FieldSentDate           Field = "sent_date"
	FieldResponseDate       Field = "response_date"
	FieldDateOfRegistration Field = "date_of_registration"
	FieldIsAccepted         Field = "is_accepted"
	FieldIsRead             Field = "is_read"
	FieldEmailConfirmed     Field = "is_email_confirmed"
	FieldTwoFactorEnabled   Field = "is_two_factor_enabled"
	FieldNoticeType         Field = "notice_type"
	FieldTransactionType    Field = "transaction_type"
	FieldPreferredTheme     Field = "preferred_theme"
	FieldRole               Field = "role"
	FieldUserID             Field = "user_id"
	FieldGroupID            Field = "group_id"
	FieldGroupUserID        Field = "group_user_id"
	FieldTransactionID      Field = "transaction_id"
	FieldCategoryID         Field = "category_id"
	FieldSenderID           Field = "sender_id"
	FieldReceiverID         Field = "receiver_id"

	// FieldCustom marks a leaf built with Where. It carries no translatable meaning.
	FieldCustom Field = "custom"
)

// Fields returns every field a Criterion can address, in declaration order.
func Fields() []Field {
	return []Field{
		FieldID, FieldName, FieldSurname, FieldFullName, FieldDescription, FieldColor, FieldEmail,
		FieldPasswordHash, FieldResetPasswordToken, FieldIcon, FieldPhoto, FieldAmount, FieldDate,
		FieldSentDate, FieldResponseDate, FieldDateOfRegistration, FieldIsAccepted, FieldIsRead,
		FieldEmailConfirmed, FieldTwoFactorEnabled, FieldNoticeType, FieldTransactionType,
		FieldPreferredTheme, FieldRole, FieldUserID, FieldGroupID, FieldGroupUserID,
		FieldTransactionID, FieldCategoryID, FieldSenderID, FieldReceiverID,
	}
}

// Match is the comparison a Condition applies to its Field.
type Match string

const (
	MatchEqual         Match = "eq"
	MatchContains      Match = "contains"
	MatchEndsWith      Match = "ends_with"
	MatchGreaterThan   Match = "gt"
	MatchLessThan      Match = "lt"
	MatchOnDay         Match = "on_day"
	MatchOnOrAfterDay  Match = "on_or_after_day"
	MatchOnOrBeforeDay Match = "on_or_before_day"
	MatchIsNull        Match = "is_null"
	MatchAnyEqual      Match = "any_eq"
	MatchHasContent    Match = "has_content"
	MatchLacksContent  Match = "lacks_content"
	MatchCustom        Match = "custom"
)

// Condition describes a single leaf of a Predicate: which field, how it is compared, and against what.
// Value is nil for MatchIsNull, MatchHasContent and MatchLacksContent.
//
// A MatchAnyEqual condition constrains a related entity instead of the entity itself:
// Via is the relation hop sequence from the entity, and Field belongs to the last hop's target.
// It holds when at least one related entity reachable over Via has Field equal to Value.
type Condition struct {
	Field Field
	Match Match
	Value any
	Via   []relations.Relation
}

// String renders c as "field match value", prefixing the field with the relation hops of Via.
func (c Condition) String() string {
	field := string(c.Field)
	if len(c.Via) > 0 {
		hops := make([]string, 0, len(c.Via)+1)
		for _, r := range c.Via {
			hops = append(hops, string(r))
		}

		field = strings.Join(append(hops, field), ".")
	}

	switch c.Match {
	case MatchIsNull, MatchHasContent, MatchLacksContent:
		return fmt.Sprintf("%s %s", field, c.Match)
	default:
		return fmt.Sprintf("%s %s %v", field, c.Match, c.Value)
	}
}
