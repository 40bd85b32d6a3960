package inspector

import (
	"reflect"
	"strconv"
	"strings"

	"go/ast"
	"go/token"
	"go/types"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"
)

// defaultDirectivePrefix marks a per-field custom default. The remainder of
// the line is taken verbatim as the default expression.
const defaultDirectivePrefix = "//fake:default"

// skipTag excludes a field from generation, mirroring `json:"-"`.
const skipTagKey = "fake"

func (i *inspectorImpl) analyzeShape(
	pkg *packages.Package,
	decl *Declaration,
	named *types.Named,
	qual types.Qualifier,
) error {
	spec := findTypeSpec(pkg, decl.Name)
	if spec == nil {
		return errors.Newf("declaration of %q not found in package syntax", decl.Name)
	}

	switch t := spec.Type.(type) {
	case *ast.StructType:
		decl.Kind = DeclStruct
		collectStructShape(pkg, decl, named, t, qual)
		return nil
	case *ast.InterfaceType:
		if !isSumMarkerInterface(t, decl.Name) {
			return errors.Newf(
				"unsupported declaration shape: interface %q is not a sealed sum type (want a sole %q marker method)",
				decl.Name, sumMarkerName(decl.Name),
			)
		}
		decl.Kind = DeclEnum
		collectSumCases(pkg, decl, qual)
		return nil
	default:
		if _, ok := named.Underlying().(*types.Basic); ok {
			decl.Kind = DeclEnum
			collectConstCases(pkg, decl, named)
			return nil
		}
		return errors.Newf("unsupported declaration shape for %q: not a struct or enum-like type", decl.Name)
	}
}

func findTypeSpec(pkg *packages.Package, name string) *ast.TypeSpec {
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, s := range gd.Specs {
				ts, ok := s.(*ast.TypeSpec)
				if ok && ts.Name.Name == name {
					return ts
				}
			}
		}
	}
	return nil
}

func collectStructShape(
	pkg *packages.Package,
	decl *Declaration,
	named *types.Named,
	st *ast.StructType,
	qual types.Qualifier,
) {
	info := pkg.TypesInfo

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			if name := embeddedTypeName(field.Type); name != "" {
				decl.Conformances = append(decl.Conformances, name)
			}
			continue
		}
		if tagSkipsField(field.Tag) {
			continue
		}

		expr, hasDefault := fieldDefaultExpr(field.Doc, field.Comment)
		td := describeType(info.TypeOf(field.Type), qual, decl.PkgPath)

		// One stored field per declared name; several names on one line
		// each become an independent field.
		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}
			decl.Fields = append(decl.Fields, StoredField{
				Name:        name.Name,
				Type:        td,
				HasDefault:  hasDefault,
				DefaultExpr: expr,
			})
		}
	}

	collectStatics(pkg, decl, named)
	collectConstructors(pkg, decl, named, qual)
}

// collectStatics records package-level values of the declaration's type in
// source order. Interface guards (`var _ T = ...`) are blank-named and skipped.
func collectStatics(pkg *packages.Package, decl *Declaration, named *types.Named) {
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || (gd.Tok != token.VAR && gd.Tok != token.CONST) {
				continue
			}
			for _, s := range gd.Specs {
				vs, ok := s.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, name := range vs.Names {
					if name.Name == "_" {
						continue
					}
					obj := pkg.TypesInfo.Defs[name]
					if obj == nil || !types.Identical(obj.Type(), named) {
						continue
					}
					decl.Statics = append(decl.Statics, StaticValue{Name: name.Name})
				}
			}
		}
	}
}

func collectConstructors(
	pkg *packages.Package,
	decl *Declaration,
	named *types.Named,
	qual types.Qualifier,
) {
	prefix := "New" + decl.Name
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Recv != nil || !strings.HasPrefix(fd.Name.Name, prefix) {
				continue
			}
			obj := pkg.TypesInfo.Defs[fd.Name]
			if obj == nil {
				continue
			}
			sig, ok := obj.Type().(*types.Signature)
			if !ok || sig.Results().Len() != 1 {
				continue
			}
			if !types.Identical(sig.Results().At(0).Type(), named) {
				continue
			}

			ctor := Constructor{Name: fd.Name.Name}
			for p := 0; p < sig.Params().Len(); p++ {
				param := sig.Params().At(p)
				ctor.Params = append(ctor.Params, ConstructorParam{
					Name: param.Name(),
					Type: describeType(param.Type(), qual, decl.PkgPath),
				})
			}
			ctor.IsDeserializer = isDeserializerShape(ctor.Params)
			decl.Constructors = append(decl.Constructors, ctor)
		}
	}
}

// isDeserializerShape matches the decoding-constructor pattern by its fixed
// parameter name and type. Such constructors never seed generation.
func isDeserializerShape(params []ConstructorParam) bool {
	return len(params) == 1 && params[0].Name == "data" && params[0].Type.Source == "[]byte"
}

func collectConstCases(pkg *packages.Package, decl *Declaration, named *types.Named) {
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			for _, s := range gd.Specs {
				vs, ok := s.(*ast.ValueSpec)
				if !ok {
					continue
				}
				// Several case names on one line each count once.
				for _, name := range vs.Names {
					if name.Name == "_" {
						continue
					}
					obj := pkg.TypesInfo.Defs[name]
					if obj == nil || !types.Identical(obj.Type(), named) {
						continue
					}
					decl.Cases = append(decl.Cases, EnumCase{Name: name.Name})
				}
			}
		}
	}
}

func sumMarkerName(typeName string) string {
	return "is" + typeName
}

func isSumMarkerInterface(iface *ast.InterfaceType, typeName string) bool {
	if iface.Methods == nil || len(iface.Methods.List) != 1 {
		return false
	}
	m := iface.Methods.List[0]
	return len(m.Names) == 1 && m.Names[0].Name == sumMarkerName(typeName)
}

// collectSumCases finds the structs implementing the marker method, in source
// order, and records their fields as labeled associated values.
func collectSumCases(pkg *packages.Package, decl *Declaration, qual types.Qualifier) {
	marker := sumMarkerName(decl.Name)
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Recv == nil || fd.Name.Name != marker {
				continue
			}
			caseName := receiverTypeName(fd.Recv)
			if caseName == "" || caseName == decl.Name {
				continue
			}
			decl.Cases = append(decl.Cases, buildSumCase(pkg, decl, caseName, qual))
		}
	}
}

func buildSumCase(pkg *packages.Package, decl *Declaration, caseName string, qual types.Qualifier) EnumCase {
	c := EnumCase{Name: caseName, CaseType: caseName}

	obj := pkg.Types.Scope().Lookup(caseName)
	if obj == nil {
		return c
	}
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return c
	}
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Embedded() {
			continue
		}
		c.Values = append(c.Values, AssociatedValue{
			Label: f.Name(),
			Type:  describeType(f.Type(), qual, decl.PkgPath),
		})
	}
	return c
}

func receiverTypeName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}
	return embeddedTypeName(recv.List[0].Type)
}

func embeddedTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedTypeName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedTypeName(t.X)
	case *ast.IndexListExpr:
		return embeddedTypeName(t.X)
	default:
		return ""
	}
}

func tagSkipsField(tag *ast.BasicLit) bool {
	if tag == nil {
		return false
	}
	unquoted, err := strconv.Unquote(tag.Value)
	if err != nil {
		return false
	}
	return reflect.StructTag(unquoted).Get(skipTagKey) == "-"
}

// fieldDefaultExpr extracts the custom default expression attached to a
// field. A marker with no expression is malformed and silently ignored; the
// field then resolves through the standard type rules.
func fieldDefaultExpr(groups ...*ast.CommentGroup) (string, bool) {
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, c := range group.List {
			if !strings.HasPrefix(c.Text, defaultDirectivePrefix) {
				continue
			}
			rest := strings.TrimSpace(strings.TrimPrefix(c.Text, defaultDirectivePrefix))
			if rest == "" {
				continue
			}
			return rest, true
		}
	}
	return "", false
}
