package postgresrepo

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/AntonStoeckl/spendwise-queryspec-go/relations"
)

const (
	sqlJSONAgg        = "jsonb_agg(? ORDER BY ?)"
	sqlEmptyJSONArray = "'[]'::jsonb"
	funcBuildObject   = "jsonb_build_object"
	funcEncode        = "encode"
	encodingBase64    = "base64"
	aliasPattern      = "t%d"
)

// includeNode is one relation of the merged include paths; paths sharing a prefix share nodes.
type includeNode struct {
	relation relations.Relation
	children []*includeNode
}

func (n *includeNode) child(relation relations.Relation) *includeNode {
	for _, c := range n.children {
		if c.relation == relation {
			return c
		}
	}

	c := &includeNode{relation: relation}
	n.children = append(n.children, c)

	return c
}

// mergeIncludes merges the include paths into one tree rooted at table and checks every hop is mapped.
func mergeIncludes[E any](table Table, paths []relations.Path[E]) (*includeNode, error) {
	root := &includeNode{}

	for _, path := range paths {
		current, node := table, root

		for _, hop := range path.Hops() {
			rel, ok := schemas[current].relations[hop]
			if !ok {
				return nil, fmt.Errorf("%w: %s from %s in %s", ErrUnknownRelation, hop, current, path)
			}

			node = node.child(hop)
			current = rel.target
		}
	}

	return root, nil
}

// documentBuilder renders an entity row plus its included relations as one jsonb object.
// To-many relations become arrays ordered by id, to-one relations nested objects or null.
type documentBuilder struct {
	dialect    goqu.DialectWrapper
	tableNames map[Table]string
	aliases    int
}

func (b *documentBuilder) nextAlias() string {
	alias := fmt.Sprintf(aliasPattern, b.aliases)
	b.aliases++

	return alias
}

func (b *documentBuilder) document(schema entitySchema, alias string, includes []*includeNode) exp.SQLFunctionExpression {
	args := make([]any, 0, 2*(len(schema.columns)+len(includes)))

	for _, c := range schema.columns {
		var value any = goqu.I(alias + "." + c.name)
		if c.binary {
			value = goqu.Func(funcEncode, value, goqu.V(encodingBase64))
		}

		args = append(args, goqu.V(c.name), value)
	}

	for _, include := range includes {
		rel := schema.relations[include.relation]
		args = append(args, goqu.V(rel.jsonKey), b.subselect(rel, alias, include.children))
	}

	return goqu.Func(funcBuildObject, args...)
}

func (b *documentBuilder) subselect(rel relation, parentAlias string, includes []*includeNode) *goqu.SelectDataset {
	alias := b.nextAlias()
	doc := b.document(schemas[rel.target], alias, includes)

	ds := b.dialect.
		From(goqu.T(b.tableNames[rel.target]).As(alias)).
		Where(goqu.I(alias + "." + rel.childColumn).Eq(goqu.I(parentAlias + "." + rel.parentColumn)))

	if rel.many {
		return ds.Select(goqu.COALESCE(goqu.L(sqlJSONAgg, doc, goqu.I(alias+"."+colID)), goqu.L(sqlEmptyJSONArray)))
	}

	return ds.Select(doc).Limit(1)
}
