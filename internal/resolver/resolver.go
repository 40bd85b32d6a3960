package resolver

import (
	"github.com/seitarof/gen-fake/internal/inspector"
)

// Resolver picks the default expression for one field when the caller
// supplies no override. Resolution is total: every field resolves to exactly
// one non-empty expression.
type Resolver interface {
	Resolve(owner string, field inspector.StoredField) string
}

// Rule tries to produce a default expression for one field. Rules run in
// priority order; the first match wins.
type Rule interface {
	Name() string
	Try(owner string, field inspector.StoredField) (string, bool)
}

type resolverImpl struct {
	rules []Rule
}

// New builds a resolver with the given rule chain. The chain must end in a
// total rule; DefaultRules does.
func New(rules ...Rule) Resolver {
	return &resolverImpl{rules: rules}
}

func (r *resolverImpl) Resolve(owner string, field inspector.StoredField) string {
	for _, rule := range r.rules {
		if expr, ok := rule.Try(owner, field); ok {
			return expr
		}
	}
	// FakeCallRule is total, so the chain cannot fall through; keep the
	// never-empty contract anyway.
	return field.Type.Source + "{}"
}

// DefaultRules returns the built-in rules in precedence order. The custom
// default annex outranks every type-based rule, including optionals.
func DefaultRules() []Rule {
	return []Rule{
		&AnnexRule{},
		&OptionalRule{},
		&ArrayRule{},
		&DictionaryRule{},
		&TableRule{},
		&FakeCallRule{},
	}
}
