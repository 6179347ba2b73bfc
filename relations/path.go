package relations

import (
	"slices"
	"strings"
)

// Relation is the name of a navigation property of an entity, used as one token of a Path.
type Relation string

const (
	GroupUsers            Relation = "GroupUsers"
	Group                 Relation = "Group"
	User                  Relation = "User"
	Limit                 Relation = "Limit"
	TransactionGroupUsers Relation = "TransactionGroupUsers"
	Transaction           Relation = "Transaction"
	Transactions          Relation = "Transactions"
	Category              Relation = "Category"
	GroupUser             Relation = "GroupUser"
	SentInvitations       Relation = "SentInvitations"
	ReceivedInvitations   Relation = "ReceivedInvitations"
	Invitations           Relation = "Invitations"
	Sender                Relation = "Sender"
	Receiver              Relation = "Receiver"
)

const tokenSeparator = "."

/***** Path *****/

// Path is an eager-load path rooted at entity type E, e.g. GroupUsers → Group → GroupUsers → User for a domain.User.
// A non-empty Path can only be obtained from the state builders of this package.
type Path[E any] struct {
	hops []Relation
}

// Completed is implemented by every include state that denotes a usable path, i.e. every state except the root.
type Completed[E any] interface {
	Path() Path[E]
}

// Hops returns the relations of the path in traversal order.
func (p Path[E]) Hops() []Relation {
	return slices.Clone(p.hops)
}

func (p Path[E]) Len() int {
	return len(p.hops)
}

// String returns the dotted form, e.g. "GroupUsers.Group.GroupUsers.User".
func (p Path[E]) String() string {
	parts := make([]string, len(p.hops))
	for i, hop := range p.hops {
		parts[i] = string(hop)
	}

	return strings.Join(parts, tokenSeparator)
}

// Tokens returns the dotted prefixes of the path, shortest first:
// "GroupUsers", "GroupUsers.Group", "GroupUsers.Group.GroupUsers", ...
func (p Path[E]) Tokens() []string {
	tokens := make([]string, 0, len(p.hops))
	prefix := ""

	for i, hop := range p.hops {
		if i > 0 {
			prefix += tokenSeparator
		}

		prefix += string(hop)
		tokens = append(tokens, prefix)
	}

	return tokens
}

func (p Path[E]) Equal(other Path[E]) bool {
	return slices.Equal(p.hops, other.hops)
}

func (p Path[E]) with(hop Relation) Path[E] {
	return Path[E]{hops: append(slices.Clone(p.hops), hop)}
}
