package generator

import (
	"bytes"
	"embed"
	"os"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/imports"

	"github.com/seitarof/gen-fake/internal/inspector"
	"github.com/seitarof/gen-fake/internal/resolver"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// Generator renders factory plans into a generated source file.
type Generator interface {
	Generate(cfg Config, plans []*FakePlan) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type fileWriter struct{}

type templateData struct {
	Package string
	Plans   []planTemplateData
}

type planTemplateData struct {
	TypeName   string
	FuncName   string
	OptionType string
	Args       string
	Options    []optionTemplateData
	Helpers    []AnnexHelper
	Body       string
}

type optionTemplateData struct {
	FuncName   string
	Field      string
	ParamType  string
	OptionType string
	TypeName   string
}

// New creates a code generator.
func New(f Formatter, w FileWriter) Generator {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.go.tmpl"))
	return &generatorImpl{formatter: f, writer: w, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports. Formatting
// doubles as a structural check: template output that does not parse as Go
// fails the run instead of landing on disk.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Generate(cfg Config, plans []*FakePlan) error {
	if len(plans) == 0 {
		return errors.New("no factory plans")
	}

	data := buildTemplateData(plans)
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "fake.go.tmpl", data); err != nil {
		return errors.Wrap(err, "template")
	}

	formatted, err := g.formatter.Format(cfg.OutputFilename(), buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "format")
	}
	if err := g.writer.Write(cfg.OutputFilename(), formatted); err != nil {
		return errors.Wrap(err, "write")
	}
	return nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func (w *fileWriter) Write(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}

func buildTemplateData(plans []*FakePlan) templateData {
	out := templateData{Package: plans[0].PkgName}
	for _, plan := range plans {
		out.Plans = append(out.Plans, buildPlanData(plan))
	}
	return out
}

func buildPlanData(plan *FakePlan) planTemplateData {
	data := planTemplateData{
		TypeName: plan.TypeName,
		FuncName: plan.FuncName,
		Helpers:  plan.Helpers,
	}

	options := buildOptions(plan)
	if len(options) > 0 {
		data.OptionType = resolver.OptionTypeName(plan.TypeName)
		data.Args = "opts ..." + data.OptionType
		for i := range options {
			options[i].OptionType = data.OptionType
		}
		data.Options = options
	}
	data.Body = renderBody(plan, data.OptionType != "")
	return data
}

// buildOptions emits one option constructor per settable generated
// parameter. Constructor parameters that name no stored field keep their
// default but get no setter.
func buildOptions(plan *FakePlan) []optionTemplateData {
	switch plan.Strategy {
	case StrategyEnumFirstCase, StrategySingleton:
		return nil
	}

	options := []optionTemplateData{}
	for _, p := range plan.Params {
		if p.Field == "" {
			continue
		}
		options = append(options, optionTemplateData{
			FuncName:  resolver.OptionFuncName(plan.TypeName, p.Name),
			Field:     p.Field,
			ParamType: p.Type.Source,
			TypeName:  plan.TypeName,
		})
	}
	return options
}

func renderBody(plan *FakePlan, withOptions bool) string {
	switch plan.Strategy {
	case StrategyEnumFirstCase, StrategySingleton:
		return "\treturn " + plan.ReturnExpr
	case StrategyManualConstructor:
		call := plan.CtorName + "(" + joinDefaults(plan.Params) + ")"
		if !withOptions {
			return "\treturn " + call
		}
		return "\tv := " + call + "\n" + optionBlock()
	default:
		return renderMemberwiseBody(plan, withOptions)
	}
}

func renderMemberwiseBody(plan *FakePlan, withOptions bool) string {
	if plan.Kind != inspector.DeclStruct {
		// Enum-like declaration with no cases: fall back to the zero value.
		return "\tvar v " + plan.TypeName + "\n\treturn v"
	}
	if len(plan.Params) == 0 {
		return "\treturn " + plan.TypeName + "{}"
	}

	var b strings.Builder
	b.WriteString("\tv := " + plan.TypeName + "{\n")
	for _, p := range plan.Params {
		b.WriteString("\t\t" + p.Field + ": " + p.Default + ",\n")
	}
	b.WriteString("\t}\n")
	if withOptions {
		b.WriteString(optionBlock())
	} else {
		b.WriteString("\treturn v")
	}
	return b.String()
}

func optionBlock() string {
	return "\tfor _, opt := range opts {\n\t\topt(&v)\n\t}\n\treturn v"
}

func joinDefaults(params []Param) string {
	defaults := make([]string, 0, len(params))
	for _, p := range params {
		defaults = append(defaults, p.Default)
	}
	return strings.Join(defaults, ", ")
}
