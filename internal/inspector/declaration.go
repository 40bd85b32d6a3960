package inspector

// DeclKind is the structural classification of an inspected declaration.
type DeclKind int

const (
	DeclStruct DeclKind = iota
	DeclEnum
)

// Declaration holds the analyzed shape of one type declaration.
type Declaration struct {
	Name    string
	PkgPath string
	PkgName string
	Dir     string
	Kind    DeclKind

	// Struct shape.
	Fields       []StoredField
	Conformances []string
	Statics      []StaticValue
	Constructors []Constructor

	// Enum shape.
	Cases []EnumCase
}

// StoredField is one generation-eligible field in declaration order.
type StoredField struct {
	Name        string
	Type        TypeDescriptor
	HasDefault  bool
	DefaultExpr string
}

// StaticValue names one package-level value of the declaration's type.
type StaticValue struct {
	Name string
}

// Constructor is one user-written constructor function.
type Constructor struct {
	Name           string
	Params         []ConstructorParam
	IsDeserializer bool
}

// ConstructorParam is one (name, type) pair in declared order.
type ConstructorParam struct {
	Name string
	Type TypeDescriptor
}

// EnumCase is one enumeration case in source order. CaseType is empty for
// constant-backed cases and names the case struct for sum-type cases.
type EnumCase struct {
	Name     string
	CaseType string
	Values   []AssociatedValue
}

// AssociatedValue is one payload slot of a sum-type case.
type AssociatedValue struct {
	Label string
	Type  TypeDescriptor
}

// TypeKind is the coarse classification used to pick a default literal.
type TypeKind int

const (
	TypeOptional TypeKind = iota
	TypeArray
	TypeDictionary
	TypeNamed
)

// TypeDescriptor keeps simplified type metadata for default resolution.
type TypeDescriptor struct {
	Kind TypeKind
	// Source is the type expression as written in the output package.
	Source string
	// Name is the lookup text for named types ("string", "time.Time", "Profile").
	Name string
	// BareName is Name without a package qualifier.
	BareName string
	// PkgPath is the defining package for non-basic named types.
	PkgPath string
	// Local marks named types declared in the inspected package.
	Local bool

	Elem *TypeDescriptor
	Key  *TypeDescriptor
}
