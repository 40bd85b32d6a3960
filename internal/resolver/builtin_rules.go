package resolver

import (
	"strings"
	"unicode"

	"github.com/seitarof/gen-fake/internal/inspector"
)

// AnnexRule routes annotated fields through their generated annex helper,
// never the raw expression inline.
type AnnexRule struct{}

func (r *AnnexRule) Name() string { return "annex" }

func (r *AnnexRule) Try(owner string, field inspector.StoredField) (string, bool) {
	if !field.HasDefault {
		return "", false
	}
	return ProviderName(owner, field.Name) + "()", true
}

// OptionalRule: pointer-like types default to the absent value.
type OptionalRule struct{}

func (r *OptionalRule) Name() string { return "optional" }

func (r *OptionalRule) Try(_ string, field inspector.StoredField) (string, bool) {
	if field.Type.Kind != inspector.TypeOptional {
		return "", false
	}
	return "nil", true
}

// ArrayRule: sequence types default to their empty composite literal.
type ArrayRule struct{}

func (r *ArrayRule) Name() string { return "array" }

func (r *ArrayRule) Try(_ string, field inspector.StoredField) (string, bool) {
	if field.Type.Kind != inspector.TypeArray {
		return "", false
	}
	return field.Type.Source + "{}", true
}

// DictionaryRule: map types default to their empty composite literal.
type DictionaryRule struct{}

func (r *DictionaryRule) Name() string { return "dictionary" }

func (r *DictionaryRule) Try(_ string, field inspector.StoredField) (string, bool) {
	if field.Type.Kind != inspector.TypeDictionary {
		return "", false
	}
	return field.Type.Source + "{}", true
}

// TableRule resolves well-known named types against a fixed literal table.
// Lookup is exact and case-sensitive; no alias or subtype resolution.
type TableRule struct{}

func (r *TableRule) Name() string { return "table" }

func (r *TableRule) Try(_ string, field inspector.StoredField) (string, bool) {
	if field.Type.Kind != inspector.TypeNamed {
		return "", false
	}
	lit, ok := defaultLiterals[field.Type.Name]
	return lit, ok
}

// FakeCallRule is the total fallback: a presumed user-defined type resolves
// to a call of that type's own generated factory. Whether the factory exists
// is not verified here; a missing one surfaces when the emitted code is
// compiled.
type FakeCallRule struct{}

func (r *FakeCallRule) Name() string { return "fake-call" }

func (r *FakeCallRule) Try(_ string, field inspector.StoredField) (string, bool) {
	return FactoryCall(field.Type), true
}

// defaultLiterals maps named types to placeholder literals. Built once,
// never mutated.
var defaultLiterals = map[string]string{
	"string": `""`,
	"bool":   "false",

	"int":     "0",
	"int8":    "0",
	"int16":   "0",
	"int32":   "0",
	"int64":   "0",
	"uint":    "0",
	"uint8":   "0",
	"uint16":  "0",
	"uint32":  "0",
	"uint64":  "0",
	"uintptr": "0",
	"byte":    "0",
	"rune":    "0",

	"float32":    "0",
	"float64":    "0",
	"complex64":  "0",
	"complex128": "0",

	"time.Time":     "time.Unix(0, 0).UTC()",
	"time.Duration": "0",

	"url.URL": `url.URL{Scheme: "https", Host: "example.com"}`,

	"image.Point":     "image.Point{}",
	"image.Rectangle": "image.Rectangle{}",

	"any":   "nil",
	"error": "nil",
}

// FactoryName returns the generated factory name for a type.
func FactoryName(typeName string) string {
	return "Fake" + exportedToken(typeName)
}

// FactoryCall renders a zero-argument factory invocation for a named type,
// keeping the package qualifier the field was written with.
func FactoryCall(td inspector.TypeDescriptor) string {
	if idx := strings.LastIndex(td.Name, "."); idx >= 0 {
		return td.Name[:idx+1] + FactoryName(td.Name[idx+1:]) + "()"
	}
	return FactoryName(td.Name) + "()"
}

// ProviderName returns the annex helper name for an annotated field,
// derived deterministically from the owning type and field names.
func ProviderName(owner, fieldName string) string {
	return "fake" + exportedToken(owner) + exportedToken(fieldName) + "Default"
}

// OptionTypeName returns the per-type functional option type name.
func OptionTypeName(typeName string) string {
	return "Fake" + exportedToken(typeName) + "Option"
}

// OptionFuncName returns the per-field option constructor name.
func OptionFuncName(typeName, fieldName string) string {
	return "Fake" + exportedToken(typeName) + exportedToken(fieldName)
}

func exportedToken(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
