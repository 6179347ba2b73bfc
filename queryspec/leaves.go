package queryspec

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

// Leaf constructors shared by the typed filter functions and by Criterion binding.
// Each takes an accessor so the same code serves both a statically bounded E and a runtime-asserted one.
// Leaves over absent optional values never match, except MatchIsNull.

func textTest(match Match, value string) func(string) bool {
	switch match {
	case MatchContains:
		return func(s string) bool { return strings.Contains(s, value) }
	case MatchEndsWith:
		return func(s string) bool { return strings.HasSuffix(s, value) }
	default:
		return func(s string) bool { return s == value }
	}
}

func textLeaf[E any](field Field, match Match, value string, get func(E) string) Predicate[E] {
	test := textTest(match, value)

	return leaf(
		Condition{Field: field, Match: match, Value: value},
		func(e E) bool { return test(get(e)) },
	)
}

func optionalTextLeaf[E any](field Field, match Match, value string, get func(E) *string) Predicate[E] {
	test := textTest(match, value)

	return leaf(
		Condition{Field: field, Match: match, Value: value},
		func(e E) bool {
			v := get(e)
			return v != nil && test(*v)
		},
	)
}

func isNullLeaf[E any, V any](field Field, get func(E) *V) Predicate[E] {
	return leaf(
		Condition{Field: field, Match: MatchIsNull},
		func(e E) bool { return get(e) == nil },
	)
}

func contentLeaf[E any](field Field, present bool, get func(E) []byte) Predicate[E] {
	match := MatchHasContent
	if !present {
		match = MatchLacksContent
	}

	return leaf(
		Condition{Field: field, Match: match},
		func(e E) bool { return (len(get(e)) > 0) == present },
	)
}

func amountLeaf[E any](match Match, value int64, get func(E) int64) Predicate[E] {
	var test func(int64) bool

	switch match {
	case MatchGreaterThan:
		test = func(a int64) bool { return a > value }
	case MatchLessThan:
		test = func(a int64) bool { return a < value }
	default:
		test = func(a int64) bool { return a == value }
	}

	return leaf(
		Condition{Field: FieldAmount, Match: match, Value: value},
		func(e E) bool { return test(get(e)) },
	)
}

// day truncates t to its calendar day in UTC.
func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayTest(match Match, value time.Time) func(time.Time) bool {
	want := day(value)

	switch match {
	case MatchOnOrAfterDay:
		return func(t time.Time) bool { return !day(t).Before(want) }
	case MatchOnOrBeforeDay:
		return func(t time.Time) bool { return !day(t).After(want) }
	default:
		return func(t time.Time) bool { return day(t).Equal(want) }
	}
}

func dateLeaf[E any](field Field, match Match, value time.Time, get func(E) time.Time) Predicate[E] {
	test := dayTest(match, value)

	return leaf(
		Condition{Field: field, Match: match, Value: day(value)},
		func(e E) bool { return test(get(e)) },
	)
}

func optionalDateLeaf[E any](field Field, match Match, value time.Time, get func(E) *time.Time) Predicate[E] {
	test := dayTest(match, value)

	return leaf(
		Condition{Field: field, Match: match, Value: day(value)},
		func(e E) bool {
			t := get(e)
			return t != nil && test(*t)
		},
	)
}

func equalLeaf[E any, V comparable](field Field, value V, get func(E) V) Predicate[E] {
	return leaf(
		Condition{Field: field, Match: MatchEqual, Value: value},
		func(e E) bool { return get(e) == value },
	)
}

func optionalEqualLeaf[E any, V comparable](field Field, value V, get func(E) *V) Predicate[E] {
	return leaf(
		Condition{Field: field, Match: MatchEqual, Value: value},
		func(e E) bool {
			v := get(e)
			return v != nil && *v == value
		},
	)
}

func fullNameLeaf[E any](value string, name func(E) string, surname func(E) string) Predicate[E] {
	return leaf(
		Condition{Field: FieldFullName, Match: MatchEqual, Value: value},
		func(e E) bool { return name(e)+" "+surname(e) == value },
	)
}

func idLeaf[E any](value uuid.UUID, get func(E) uuid.UUID) Predicate[E] {
	return equalLeaf(FieldID, value, get)
}

// anyLeaf matches when at least one related entity produced by related has field equal to id.
func anyLeaf[E any, R any](
	via []relations.Relation,
	field Field,
	id uuid.UUID,
	related func(E) []R,
	get func(R) uuid.UUID,
) Predicate[E] {
	return leaf(
		Condition{Field: field, Match: MatchAnyEqual, Value: id, Via: via},
		func(e E) bool {
			for _, r := range related(e) {
				if get(r) == id {
					return true
				}
			}

			return false
		},
	)
}
