package inspector

import (
	"path/filepath"

	"go/types"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// Inspector extracts declaration shapes from Go packages.
type Inspector interface {
	Inspect(pkgPath string, typeName string) (*Declaration, error)
	InspectRecursive(pkgPath string, typeName string) ([]*Declaration, error)
}

type inspectorImpl struct {
	log *zap.Logger
}

// New returns the default inspector.
func New(log *zap.Logger) Inspector {
	if log == nil {
		log = zap.NewNop()
	}
	return &inspectorImpl{log: log}
}

func (i *inspectorImpl) Inspect(pkgPath string, typeName string) (*Declaration, error) {
	cache := map[string]*packages.Package{}
	return i.inspectWithCache(pkgPath, typeName, cache)
}

func (i *inspectorImpl) inspectWithCache(
	pkgPath string,
	typeName string,
	cache map[string]*packages.Package,
) (*Declaration, error) {
	pkg, err := i.loadPackage(pkgPath, cache)
	if err != nil {
		return nil, err
	}

	if pkg.Types == nil || pkg.Types.Scope() == nil {
		return nil, errors.Newf("type info unavailable for package %q", pkgPath)
	}

	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, errors.Newf("type %q not found in package %q", typeName, pkgPath)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		if alias, aok := obj.Type().(*types.Alias); aok {
			named, ok = types.Unalias(alias.Rhs()).(*types.Named)
		}
		if !ok {
			return nil, errors.Newf("type %q in package %q is not a named type declaration", typeName, pkgPath)
		}
	}

	qualifier := func(p *types.Package) string {
		if p == nil {
			return ""
		}
		if pkg.Types != nil && p.Path() == pkg.Types.Path() {
			return ""
		}
		return p.Name()
	}

	decl := &Declaration{
		Name:    typeName,
		PkgPath: pkg.Types.Path(),
		PkgName: pkg.Name,
		Dir:     packageDir(pkg),
	}
	if err := i.analyzeShape(pkg, decl, named, qualifier); err != nil {
		return nil, err
	}
	return decl, nil
}

func (i *inspectorImpl) loadPackage(pkgPath string, cache map[string]*packages.Package) (*packages.Package, error) {
	if cached, ok := cache[pkgPath]; ok {
		return cached, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedSyntax |
			packages.NeedModule,
	}

	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, errors.Wrapf(err, "load package %q", pkgPath)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, errors.Newf("package %q has compilation errors", pkgPath)
	}
	if len(pkgs) == 0 {
		return nil, errors.Newf("package %q not found", pkgPath)
	}
	cache[pkgPath] = pkgs[0]
	return pkgs[0], nil
}

// InspectRecursive analyzes typeName and every same-package named type it
// references, leaf-first, so nested fakes are emitted before their callers.
// References to types outside the package are left for that package's own
// generation run.
func (i *inspectorImpl) InspectRecursive(pkgPath string, typeName string) ([]*Declaration, error) {
	visited := map[string]bool{}
	cache := map[string]*packages.Package{}

	result := []*Declaration{}
	if err := i.inspectRec(pkgPath, typeName, visited, cache, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (i *inspectorImpl) inspectRec(
	pkgPath string,
	typeName string,
	visited map[string]bool,
	cache map[string]*packages.Package,
	result *[]*Declaration,
) error {
	decl, err := i.inspectWithCache(pkgPath, typeName, cache)
	if err != nil {
		return err
	}

	key := decl.PkgPath + "." + decl.Name
	if visited[key] {
		return nil
	}
	visited[key] = true

	for _, nested := range nestedLocalTypes(decl) {
		if visited[decl.PkgPath+"."+nested] {
			continue
		}
		if err := i.inspectRec(decl.PkgPath, nested, visited, cache, result); err != nil {
			i.log.Warn("nested type skipped",
				zap.String("type", nested),
				zap.String("package", decl.PkgPath),
				zap.Error(err))
			continue
		}
	}

	*result = append(*result, decl)
	return nil
}

// nestedLocalTypes lists same-package named types referenced by fields,
// constructor parameters or associated values, in first-use order.
func nestedLocalTypes(decl *Declaration) []string {
	seen := map[string]bool{decl.Name: true}
	names := []string{}
	add := func(td *TypeDescriptor) {
		collectLocalNames(td, seen, &names)
	}

	for i := range decl.Fields {
		add(&decl.Fields[i].Type)
	}
	for _, ctor := range decl.Constructors {
		for i := range ctor.Params {
			add(&ctor.Params[i].Type)
		}
	}
	for _, c := range decl.Cases {
		for i := range c.Values {
			add(&c.Values[i].Type)
		}
	}
	return names
}

func collectLocalNames(td *TypeDescriptor, seen map[string]bool, out *[]string) {
	if td == nil {
		return
	}
	if td.Kind == TypeNamed && td.Local && !seen[td.BareName] {
		seen[td.BareName] = true
		*out = append(*out, td.BareName)
	}
	collectLocalNames(td.Elem, seen, out)
	collectLocalNames(td.Key, seen, out)
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) == 0 {
		return ""
	}
	return filepath.Dir(pkg.GoFiles[0])
}
