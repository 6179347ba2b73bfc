package postgresrepo

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/spendwise-queryspec-go/queryspec"
	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

const (
	dayLayout     = "2006-01-02"
	sqlTrue       = "TRUE"
	sqlNot        = "NOT (?)"
	sqlFullName   = "(? || ' ' || ?)"
	sqlUTCDay     = "(? AT TIME ZONE 'UTC')::date"
	sqlDayValue   = "?::date"
	sqlHasContent = "COALESCE(octet_length(?), 0) > 0"
	sqlNoContent  = "COALESCE(octet_length(?), 0) = 0"
	sqlExists     = "EXISTS ?"
	sqlOne        = "1"
	likeEscaper   = `\`
)

// operand is what a leaf compares: a column identifier or a computed literal.
type operand interface {
	exp.Expression
	exp.Comparable
	exp.Likeable
	exp.Isable
}

// translator turns a predicate tree of one entity into a WHERE expression over alias.
// Relation membership subqueries take their aliases and table names from builder.
type translator struct {
	schema  entitySchema
	alias   string
	builder *documentBuilder
}

func (t translator) translate(e queryspec.Expr) (exp.Expression, error) {
	switch e.Op {
	case queryspec.OpTrue:
		return goqu.L(sqlTrue), nil

	case queryspec.OpAnd, queryspec.OpOr:
		children := make([]exp.Expression, 0, len(e.Children))
		for _, child := range e.Children {
			translated, err := t.translate(child)
			if err != nil {
				return nil, err
			}
			children = append(children, translated)
		}

		if e.Op == queryspec.OpAnd {
			return goqu.And(children...), nil
		}

		return goqu.Or(children...), nil

	case queryspec.OpNot:
		child, err := t.translate(e.Children[0])
		if err != nil {
			return nil, err
		}

		return goqu.L(sqlNot, child), nil

	default:
		return t.condition(e.Condition)
	}
}

// condition translates one leaf. Conditions over nullable columns are wrapped in COALESCE(…, FALSE)
// so that NOT keeps two-valued semantics, matching in-memory evaluation of absent values.
func (t translator) condition(c queryspec.Condition) (exp.Expression, error) {
	if len(c.Via) > 0 {
		return t.exists(t.schema, t.alias, c.Via, c)
	}

	if c.Field == queryspec.FieldFullName {
		return t.fullName(c)
	}

	col, ok := t.schema.columnFor(c.Field)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrUntranslatableCondition, c, t.schema.table)
	}

	ident := goqu.I(t.alias + "." + col.name)

	cond, err := t.compare(c, ident)
	if err != nil {
		return nil, err
	}

	if col.nullable && c.Match != queryspec.MatchIsNull && c.Match != queryspec.MatchLacksContent {
		return goqu.COALESCE(cond, false), nil
	}

	return cond, nil
}

// exists renders a relation membership as nested EXISTS subqueries, one per hop of via.
func (t translator) exists(
	parent entitySchema,
	parentAlias string,
	via []relations.Relation,
	c queryspec.Condition,
) (exp.Expression, error) {

	if c.Match != queryspec.MatchAnyEqual {
		return nil, fmt.Errorf("%w: %s", ErrUntranslatableCondition, c)
	}

	rel, ok := parent.relations[via[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %s from %s in %s", ErrUnknownRelation, via[0], parent.table, c)
	}

	alias := t.builder.nextAlias()
	target := schemas[rel.target]

	var inner exp.Expression
	if len(via) == 1 {
		col, found := target.columnFor(c.Field)
		if !found {
			return nil, fmt.Errorf("%w: %s on %s", ErrUntranslatableCondition, c, target.table)
		}

		inner = goqu.I(alias + "." + col.name).Eq(sqlValue(c.Value))
	} else {
		var err error
		if inner, err = t.exists(target, alias, via[1:], c); err != nil {
			return nil, err
		}
	}

	sub := t.builder.dialect.
		From(goqu.T(t.builder.tableNames[rel.target]).As(alias)).
		Select(goqu.L(sqlOne)).
		Where(goqu.I(alias+"."+rel.childColumn).Eq(goqu.I(parentAlias+"."+rel.parentColumn)), inner)

	return goqu.L(sqlExists, sub), nil
}

func (t translator) fullName(c queryspec.Condition) (exp.Expression, error) {
	name, nameOK := t.schema.columnFor(queryspec.FieldName)
	surname, surnameOK := t.schema.columnFor(queryspec.FieldSurname)
	if !nameOK || !surnameOK {
		return nil, fmt.Errorf("%w: %s on %s", ErrUntranslatableCondition, c, t.schema.table)
	}

	full := goqu.L(sqlFullName, goqu.I(t.alias+"."+name.name), goqu.I(t.alias+"."+surname.name))

	return t.compare(c, full)
}

func (t translator) compare(c queryspec.Condition, target operand) (exp.Expression, error) {
	switch c.Match {
	case queryspec.MatchEqual:
		return target.Eq(sqlValue(c.Value)), nil
	case queryspec.MatchContains:
		return target.Like("%" + escapeLike(fmt.Sprint(c.Value)) + "%"), nil
	case queryspec.MatchEndsWith:
		return target.Like("%" + escapeLike(fmt.Sprint(c.Value))), nil
	case queryspec.MatchGreaterThan:
		return target.Gt(sqlValue(c.Value)), nil
	case queryspec.MatchLessThan:
		return target.Lt(sqlValue(c.Value)), nil
	case queryspec.MatchIsNull:
		return target.IsNull(), nil
	case queryspec.MatchHasContent:
		return goqu.L(sqlHasContent, target), nil
	case queryspec.MatchLacksContent:
		return goqu.L(sqlNoContent, target), nil
	case queryspec.MatchOnDay, queryspec.MatchOnOrAfterDay, queryspec.MatchOnOrBeforeDay:
		return dayComparison(c, target)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUntranslatableCondition, c)
	}
}

func dayComparison(c queryspec.Condition, target operand) (exp.Expression, error) {
	value, ok := c.Value.(time.Time)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUntranslatableCondition, c)
	}

	columnDay := goqu.L(sqlUTCDay, target)
	valueDay := goqu.L(sqlDayValue, value.UTC().Format(dayLayout))

	switch c.Match {
	case queryspec.MatchOnOrAfterDay:
		return columnDay.Gte(valueDay), nil
	case queryspec.MatchOnOrBeforeDay:
		return columnDay.Lte(valueDay), nil
	default:
		return columnDay.Eq(valueDay), nil
	}
}

// sqlValue converts condition values goqu has no literal form for.
func sqlValue(v any) any {
	switch value := v.(type) {
	case uuid.UUID:
		return value.String()
	case string, bool, int64:
		return value
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String()
	}

	return v
}

func escapeLike(s string) string {
	return strings.NewReplacer(
		likeEscaper, likeEscaper+likeEscaper,
		"%", likeEscaper+"%",
		"_", likeEscaper+"_",
	).Replace(s)
}
