package generator

import (
	"strings"

	"github.com/seitarof/gen-fake/internal/inspector"
	"github.com/seitarof/gen-fake/internal/resolver"
)

// wellKnownMarker is the conformance identifier that opts a struct into the
// singleton strategy (the embedded fakes.WellKnown marker). Matching is by
// literal name only.
const wellKnownMarker = "WellKnown"

// Synthesizer turns one analyzed declaration into a factory plan. Selection
// runs a fixed-order state machine; the first matching strategy wins and
// every declaration lands in exactly one of the four.
type Synthesizer interface {
	Plan(decl *inspector.Declaration) *FakePlan
}

type synthesizerImpl struct {
	resolver resolver.Resolver
}

// NewSynthesizer creates a synthesizer backed by the given default resolver.
func NewSynthesizer(r resolver.Resolver) Synthesizer {
	return &synthesizerImpl{resolver: r}
}

func (s *synthesizerImpl) Plan(decl *inspector.Declaration) *FakePlan {
	plan := &FakePlan{
		TypeName: decl.Name,
		PkgName:  decl.PkgName,
		Kind:     decl.Kind,
		FuncName: resolver.FactoryName(decl.Name),
		Helpers:  s.buildHelpers(decl),
	}

	switch {
	case decl.Kind == inspector.DeclEnum && len(decl.Cases) > 0:
		plan.Strategy = StrategyEnumFirstCase
		plan.ReturnExpr = s.firstCaseExpr(decl)
	case decl.Kind == inspector.DeclStruct && hasWellKnownMarker(decl) && len(decl.Statics) > 0:
		plan.Strategy = StrategySingleton
		plan.ReturnExpr = decl.Statics[0].Name
	case firstUsableConstructor(decl) != nil:
		ctor := firstUsableConstructor(decl)
		plan.Strategy = StrategyManualConstructor
		plan.CtorName = ctor.Name
		plan.Params = s.constructorParams(decl, ctor)
	default:
		plan.Strategy = StrategyMemberwise
		plan.Params = s.memberwiseParams(decl)
	}
	return plan
}

// buildHelpers emits one annex helper per annotated field, in declaration
// order, regardless of which strategy ends up selected.
func (s *synthesizerImpl) buildHelpers(decl *inspector.Declaration) []AnnexHelper {
	helpers := []AnnexHelper{}
	for _, f := range decl.Fields {
		if !f.HasDefault {
			continue
		}
		helpers = append(helpers, AnnexHelper{
			Name:       resolver.ProviderName(decl.Name, f.Name),
			ReturnType: f.Type.Source,
			Expr:       f.DefaultExpr,
		})
	}
	return helpers
}

// firstCaseExpr builds the value for the lexically first declared case.
// Constant-backed cases are referenced directly; sum-type cases construct
// the case struct with each associated value resolved through the standard
// type rules (custom defaults never apply to associated values).
func (s *synthesizerImpl) firstCaseExpr(decl *inspector.Declaration) string {
	c := decl.Cases[0]
	if c.CaseType == "" {
		return c.Name
	}

	var b strings.Builder
	b.WriteString(c.CaseType)
	b.WriteString("{")
	for i, v := range c.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		value := inspector.StoredField{Name: v.Label, Type: v.Type}
		b.WriteString(v.Label)
		b.WriteString(": ")
		b.WriteString(s.resolver.Resolve(decl.Name, value))
	}
	b.WriteString("}")
	return b.String()
}

// constructorParams mirrors the constructor's own parameter order, names and
// types; it is never re-normalized to field declaration order. Custom
// defaults attach by matching the parameter name against a same-named stored
// field.
func (s *synthesizerImpl) constructorParams(decl *inspector.Declaration, ctor *inspector.Constructor) []Param {
	params := make([]Param, 0, len(ctor.Params))
	for _, p := range ctor.Params {
		field := fieldNamedLike(decl, p.Name)

		resolved := inspector.StoredField{Name: p.Name, Type: p.Type}
		settable := ""
		if field != nil {
			settable = field.Name
			resolved.Name = field.Name
			resolved.HasDefault = field.HasDefault
			resolved.DefaultExpr = field.DefaultExpr
		}

		params = append(params, Param{
			Name:    p.Name,
			Field:   settable,
			Type:    p.Type,
			Default: s.resolver.Resolve(decl.Name, resolved),
		})
	}
	return params
}

func (s *synthesizerImpl) memberwiseParams(decl *inspector.Declaration) []Param {
	params := make([]Param, 0, len(decl.Fields))
	for _, f := range decl.Fields {
		params = append(params, Param{
			Name:    f.Name,
			Field:   f.Name,
			Type:    f.Type,
			Default: s.resolver.Resolve(decl.Name, f),
		})
	}
	return params
}

func hasWellKnownMarker(decl *inspector.Declaration) bool {
	for _, name := range decl.Conformances {
		if name == wellKnownMarker {
			return true
		}
	}
	return false
}

// firstUsableConstructor returns the first constructor in source order that
// is not the deserialization shape, or nil.
func firstUsableConstructor(decl *inspector.Declaration) *inspector.Constructor {
	for i := range decl.Constructors {
		if decl.Constructors[i].IsDeserializer {
			continue
		}
		return &decl.Constructors[i]
	}
	return nil
}

func fieldNamedLike(decl *inspector.Declaration, paramName string) *inspector.StoredField {
	for i := range decl.Fields {
		if strings.EqualFold(decl.Fields[i].Name, paramName) {
			return &decl.Fields[i]
		}
	}
	return nil
}
