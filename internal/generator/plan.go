package generator

import (
	"github.com/seitarof/gen-fake/internal/inspector"
)

// Strategy identifies how one factory is built.
type Strategy int

const (
	StrategyEnumFirstCase Strategy = iota
	StrategySingleton
	StrategyManualConstructor
	StrategyMemberwise
)

// Param is one generated parameter: a field or constructor parameter with
// its resolved default expression. Field names the settable struct field and
// is empty when a constructor parameter matches no field.
type Param struct {
	Name    string
	Field   string
	Type    inspector.TypeDescriptor
	Default string
}

// AnnexHelper materializes one custom default expression exactly once per
// factory call.
type AnnexHelper struct {
	Name       string
	ReturnType string
	Expr       string
}

// FakePlan describes one generated factory: its annex helpers, its ordered
// defaulted parameters and the construction strategy for the body.
type FakePlan struct {
	TypeName string
	PkgName  string
	Kind     inspector.DeclKind
	Strategy Strategy

	FuncName string
	Params   []Param
	Helpers  []AnnexHelper

	// Strategy-specific body inputs.
	ReturnExpr string // enum / singleton strategies
	CtorName   string // manual constructor strategy
}
