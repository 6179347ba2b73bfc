package queryspec

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/domain"
)

const dayLayout = "2006-01-02"

// Criterion is a filter described as data, e.g. decoded from a request: {"field":"amount","match":"gt","value":500}.
// An empty Match means MatchEqual, or MatchHasContent for the icon and photo fields.
type Criterion struct {
	Field Field `json:"field"`
	Match Match `json:"match,omitempty"`
	Value any   `json:"value,omitempty"`
}

// Apply binds c to E and folds the resulting predicate into the accumulator.
// On error the accumulator is left untouched.
func (s *Specification[E]) Apply(op FoldOp, c Criterion) error {
	p, err := Bind[E](c)
	if err != nil {
		return err
	}

	s.Fold(op, p)

	return nil
}

// Bind builds the predicate described by c for entity type E.
//
// Capability membership of E is checked before anything else, so a field E does not have
// fails with ErrUnsupportedCapability regardless of match kind and value.
//
//nolint:funlen,gocyclo
func Bind[E any](c Criterion) (Predicate[E], error) {
	var none Predicate[E]

	switch c.Field {
	case FieldID:
		as, err := capability[domain.Entity, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, uuidValue, func(e E) uuid.UUID { return as(e).GetID() })

	case FieldName:
		as, err := capability[domain.HasName, E](c)
		if err != nil {
			return none, err
		}
		return bindText(c, func(e E) string { return as(e).GetName() }, MatchEqual, MatchContains)

	case FieldSurname:
		as, err := capability[domain.HasSurname, E](c)
		if err != nil {
			return none, err
		}
		return bindText(c, func(e E) string { return as(e).GetSurname() }, MatchEqual, MatchContains)

	case FieldFullName:
		as, err := capability[domain.HasFullName, E](c)
		if err != nil {
			return none, err
		}
		if err = allowMatch(c, MatchEqual); err != nil {
			return none, err
		}
		v, err := stringValue(c)
		if err != nil {
			return none, err
		}
		return fullNameLeaf(v, func(e E) string { return as(e).GetName() }, func(e E) string { return as(e).GetSurname() }), nil

	case FieldDescription:
		as, err := capability[domain.HasDescription, E](c)
		if err != nil {
			return none, err
		}
		return bindOptionalText(c, func(e E) *string { return as(e).GetDescription() }, MatchEqual, MatchContains, MatchIsNull)

	case FieldColor:
		as, err := capability[domain.HasColor, E](c)
		if err != nil {
			return none, err
		}
		return bindText(c, func(e E) string { return as(e).GetColor() }, MatchEqual)

	case FieldEmail:
		as, err := capability[domain.HasEmail, E](c)
		if err != nil {
			return none, err
		}
		return bindText(c, func(e E) string { return as(e).GetEmail() }, MatchEqual, MatchContains, MatchEndsWith)

	case FieldPasswordHash:
		as, err := capability[domain.HasPasswordHash, E](c)
		if err != nil {
			return none, err
		}
		return bindText(c, func(e E) string { return as(e).GetPasswordHash() }, MatchEqual)

	case FieldResetPasswordToken:
		as, err := capability[domain.HasResetPasswordToken, E](c)
		if err != nil {
			return none, err
		}
		return bindOptionalText(c, func(e E) *string { return as(e).GetResetPasswordToken() }, MatchEqual, MatchIsNull)

	case FieldIcon:
		as, err := capability[domain.HasIcon, E](c)
		if err != nil {
			return none, err
		}
		return bindContent(c, func(e E) []byte { return as(e).GetIcon() })

	case FieldPhoto:
		as, err := capability[domain.HasPhoto, E](c)
		if err != nil {
			return none, err
		}
		return bindContent(c, func(e E) []byte { return as(e).GetPhoto() })

	case FieldAmount:
		as, err := capability[domain.HasAmount, E](c)
		if err != nil {
			return none, err
		}
		return bindAmount(c, func(e E) int64 { return as(e).GetAmount() })

	case FieldDate:
		as, err := capability[domain.HasDate, E](c)
		if err != nil {
			return none, err
		}
		return bindDate(c, func(e E) time.Time { return as(e).GetDate() })

	case FieldSentDate:
		as, err := capability[domain.HasSentDate, E](c)
		if err != nil {
			return none, err
		}
		return bindDate(c, func(e E) time.Time { return as(e).GetSentDate() })

	case FieldResponseDate:
		as, err := capability[domain.HasResponseDate, E](c)
		if err != nil {
			return none, err
		}
		return bindOptionalDate(c, func(e E) *time.Time { return as(e).GetResponseDate() })

	case FieldDateOfRegistration:
		as, err := capability[domain.HasDateOfRegistration, E](c)
		if err != nil {
			return none, err
		}
		return bindDate(c, func(e E) time.Time { return as(e).GetDateOfRegistration() })

	case FieldIsAccepted:
		as, err := capability[domain.HasIsAccepted, E](c)
		if err != nil {
			return none, err
		}
		return bindOptionalEqual(c, boolValue, func(e E) *bool { return as(e).GetIsAccepted() })

	case FieldIsRead:
		as, err := capability[domain.HasIsRead, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, boolValue, func(e E) bool { return as(e).GetIsRead() })

	case FieldEmailConfirmed:
		as, err := capability[domain.HasEmailConfirmed, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, boolValue, func(e E) bool { return as(e).GetIsEmailConfirmed() })

	case FieldTwoFactorEnabled:
		as, err := capability[domain.HasTwoFactorEnabled, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, boolValue, func(e E) bool { return as(e).GetIsTwoFactorEnabled() })

	case FieldNoticeType:
		as, err := capability[domain.HasNoticeType, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, enumValue[domain.NoticeType], func(e E) domain.NoticeType { return as(e).GetNoticeType() })

	case FieldTransactionType:
		as, err := capability[domain.HasTransactionType, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, enumValue[domain.TransactionType], func(e E) domain.TransactionType { return as(e).GetTransactionType() })

	case FieldPreferredTheme:
		as, err := capability[domain.HasPreferredTheme, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, enumValue[domain.Theme], func(e E) domain.Theme { return as(e).GetPreferredTheme() })

	case FieldRole:
		as, err := capability[domain.HasRole, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, enumValue[domain.UserRole], func(e E) domain.UserRole { return as(e).GetRole() })

	case FieldUserID:
		as, err := capability[domain.HasUserID, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, uuidValue, func(e E) uuid.UUID { return as(e).GetUserID() })

	case FieldGroupID:
		as, err := capability[domain.HasGroupID, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, uuidValue, func(e E) uuid.UUID { return as(e).GetGroupID() })

	case FieldGroupUserID:
		as, err := capability[domain.HasGroupUserID, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, uuidValue, func(e E) uuid.UUID { return as(e).GetGroupUserID() })

	case FieldTransactionID:
		as, err := capability[domain.HasTransactionID, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, uuidValue, func(e E) uuid.UUID { return as(e).GetTransactionID() })

	case FieldCategoryID:
		as, err := capability[domain.HasCategoryID, E](c)
		if err != nil {
			return none, err
		}
		return bindOptionalEqual(c, uuidValue, func(e E) *uuid.UUID { return as(e).GetCategoryID() })

	case FieldSenderID:
		as, err := capability[domain.HasSenderID, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, uuidValue, func(e E) uuid.UUID { return as(e).GetSenderID() })

	case FieldReceiverID:
		as, err := capability[domain.HasReceiverID, E](c)
		if err != nil {
			return none, err
		}
		return bindEqual(c, uuidValue, func(e E) uuid.UUID { return as(e).GetReceiverID() })

	default:
		return none, errors.Join(ErrUnknownField, fmt.Errorf("field %q", c.Field))
	}
}

/***** capability and match checks *****/

// capability verifies on the zero value of E that E implements C and returns the conversion used at evaluation.
func capability[C any, E any](c Criterion) (func(E) C, error) {
	var zero E

	if _, ok := any(zero).(C); !ok {
		return nil, errors.Join(
			ErrUnsupportedCapability,
			fmt.Errorf("%T cannot be filtered by %s", zero, c.Field),
		)
	}

	return func(e E) C { return any(e).(C) }, nil
}

func matchOrDefault(c Criterion, fallback Match) Match {
	if c.Match == "" {
		return fallback
	}

	return c.Match
}

func allowMatch(c Criterion, allowed ...Match) error {
	if slices.Contains(allowed, matchOrDefault(c, MatchEqual)) {
		return nil
	}

	return errors.Join(ErrUnsupportedMatch, fmt.Errorf("%s does not support %q", c.Field, c.Match))
}

/***** binders per family *****/

func bindText[E any](c Criterion, get func(E) string, allowed ...Match) (Predicate[E], error) {
	if err := allowMatch(c, allowed...); err != nil {
		return Predicate[E]{}, err
	}

	v, err := stringValue(c)
	if err != nil {
		return Predicate[E]{}, err
	}

	return textLeaf(c.Field, matchOrDefault(c, MatchEqual), v, get), nil
}

func bindOptionalText[E any](c Criterion, get func(E) *string, allowed ...Match) (Predicate[E], error) {
	if err := allowMatch(c, allowed...); err != nil {
		return Predicate[E]{}, err
	}

	match := matchOrDefault(c, MatchEqual)
	if match == MatchIsNull {
		return isNullLeaf(c.Field, get), nil
	}

	v, err := stringValue(c)
	if err != nil {
		return Predicate[E]{}, err
	}

	return optionalTextLeaf(c.Field, match, v, get), nil
}

func bindContent[E any](c Criterion, get func(E) []byte) (Predicate[E], error) {
	switch matchOrDefault(c, MatchHasContent) {
	case MatchHasContent:
		return contentLeaf(c.Field, true, get), nil
	case MatchLacksContent:
		return contentLeaf(c.Field, false, get), nil
	default:
		return Predicate[E]{}, errors.Join(ErrUnsupportedMatch, fmt.Errorf("%s does not support %q", c.Field, c.Match))
	}
}

func bindAmount[E any](c Criterion, get func(E) int64) (Predicate[E], error) {
	if err := allowMatch(c, MatchEqual, MatchGreaterThan, MatchLessThan); err != nil {
		return Predicate[E]{}, err
	}

	v, err := int64Value(c)
	if err != nil {
		return Predicate[E]{}, err
	}

	return amountLeaf(matchOrDefault(c, MatchEqual), v, get), nil
}

func bindDate[E any](c Criterion, get func(E) time.Time) (Predicate[E], error) {
	if err := allowMatch(c, MatchEqual, MatchOnDay, MatchOnOrAfterDay, MatchOnOrBeforeDay); err != nil {
		return Predicate[E]{}, err
	}

	v, err := timeValue(c)
	if err != nil {
		return Predicate[E]{}, err
	}

	return dateLeaf(c.Field, dayMatch(c), v, get), nil
}

func bindOptionalDate[E any](c Criterion, get func(E) *time.Time) (Predicate[E], error) {
	if err := allowMatch(c, MatchEqual, MatchOnDay, MatchOnOrAfterDay, MatchOnOrBeforeDay, MatchIsNull); err != nil {
		return Predicate[E]{}, err
	}

	if c.Match == MatchIsNull {
		return isNullLeaf(c.Field, get), nil
	}

	v, err := timeValue(c)
	if err != nil {
		return Predicate[E]{}, err
	}

	return optionalDateLeaf(c.Field, dayMatch(c), v, get), nil
}

// dayMatch maps the generic equality onto calendar day equality.
func dayMatch(c Criterion) Match {
	if m := matchOrDefault(c, MatchOnDay); m != MatchEqual {
		return m
	}

	return MatchOnDay
}

func bindEqual[E any, V comparable](c Criterion, value func(Criterion) (V, error), get func(E) V) (Predicate[E], error) {
	if err := allowMatch(c, MatchEqual); err != nil {
		return Predicate[E]{}, err
	}

	v, err := value(c)
	if err != nil {
		return Predicate[E]{}, err
	}

	return equalLeaf(c.Field, v, get), nil
}

func bindOptionalEqual[E any, V comparable](c Criterion, value func(Criterion) (V, error), get func(E) *V) (Predicate[E], error) {
	if err := allowMatch(c, MatchEqual, MatchIsNull); err != nil {
		return Predicate[E]{}, err
	}

	if c.Match == MatchIsNull {
		return isNullLeaf(c.Field, get), nil
	}

	v, err := value(c)
	if err != nil {
		return Predicate[E]{}, err
	}

	return optionalEqualLeaf(c.Field, v, get), nil
}

/***** value conversion *****/

func invalidValue(c Criterion, want string) error {
	return errors.Join(
		ErrInvalidCriterionValue,
		fmt.Errorf("%s expects %s, got %T", c.Field, want, c.Value),
	)
}

func stringValue(c Criterion) (string, error) {
	v, ok := c.Value.(string)
	if !ok {
		return "", invalidValue(c, "a string")
	}

	return v, nil
}

func boolValue(c Criterion) (bool, error) {
	v, ok := c.Value.(bool)
	if !ok {
		return false, invalidValue(c, "a bool")
	}

	return v, nil
}

// int64Value also accepts whole float64 values as produced by JSON decoding.
func int64Value(c Criterion) (int64, error) {
	switch v := c.Value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < math.MaxInt64 {
			return int64(v), nil
		}
	}

	return 0, invalidValue(c, "a whole number of minor currency units")
}

// timeValue accepts a time.Time, an RFC 3339 string or a plain "2006-01-02" day.
func timeValue(c Criterion) (time.Time, error) {
	switch v := c.Value.(type) {
	case time.Time:
		return v, nil
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, nil
		}
		if t, err := time.Parse(dayLayout, v); err == nil {
			return t, nil
		}
	}

	return time.Time{}, invalidValue(c, "a time or a day string")
}

func uuidValue(c Criterion) (uuid.UUID, error) {
	switch v := c.Value.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		if id, err := uuid.Parse(v); err == nil {
			return id, nil
		}
	}

	return uuid.Nil, invalidValue(c, "a UUID")
}

func enumValue[T ~string](c Criterion) (T, error) {
	switch v := c.Value.(type) {
	case T:
		return v, nil
	case string:
		return T(v), nil
	}

	return "", invalidValue(c, fmt.Sprintf("a %T", *new(T)))
}
