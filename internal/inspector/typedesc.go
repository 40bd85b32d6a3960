package inspector

import (
	"fmt"

	"go/types"
)

// describeType classifies a field or parameter type for default resolution.
// Both spellings of optionality (a literal pointer and a named or alias type
// whose underlying type is a pointer) normalize to TypeOptional. Interface,
// func and channel types also classify TypeOptional since nil is their
// absent value.
func describeType(t types.Type, qual types.Qualifier, homePkg string) TypeDescriptor {
	switch v := t.(type) {
	case *types.Alias:
		return describeType(v.Rhs(), qual, homePkg)
	case *types.Basic:
		name := v.Name()
		return TypeDescriptor{Kind: TypeNamed, Source: name, Name: name, BareName: name}
	case *types.Pointer:
		elem := describeType(v.Elem(), qual, homePkg)
		return TypeDescriptor{Kind: TypeOptional, Source: "*" + elem.Source, Elem: &elem}
	case *types.Slice:
		elem := describeType(v.Elem(), qual, homePkg)
		return TypeDescriptor{Kind: TypeArray, Source: "[]" + elem.Source, Elem: &elem}
	case *types.Array:
		elem := describeType(v.Elem(), qual, homePkg)
		return TypeDescriptor{
			Kind:   TypeArray,
			Source: fmt.Sprintf("[%d]%s", v.Len(), elem.Source),
			Elem:   &elem,
		}
	case *types.Map:
		key := describeType(v.Key(), qual, homePkg)
		elem := describeType(v.Elem(), qual, homePkg)
		return TypeDescriptor{
			Kind:   TypeDictionary,
			Source: "map[" + key.Source + "]" + elem.Source,
			Key:    &key,
			Elem:   &elem,
		}
	case *types.Interface:
		if v.Empty() {
			return TypeDescriptor{Kind: TypeNamed, Source: "any", Name: "any", BareName: "any"}
		}
		src := types.TypeString(t, qual)
		return TypeDescriptor{Kind: TypeOptional, Source: src}
	case *types.Chan, *types.Signature:
		src := types.TypeString(t, qual)
		return TypeDescriptor{Kind: TypeOptional, Source: src}
	case *types.Named:
		return describeNamed(v, qual, homePkg)
	default:
		src := types.TypeString(t, qual)
		return TypeDescriptor{Kind: TypeNamed, Source: src, Name: src, BareName: src}
	}
}

func describeNamed(v *types.Named, qual types.Qualifier, homePkg string) TypeDescriptor {
	obj := v.Obj()
	src := types.TypeString(v, qual)
	pkgPath := ""
	if obj.Pkg() != nil {
		pkgPath = obj.Pkg().Path()
	}

	switch v.Underlying().(type) {
	case *types.Pointer:
		// Generic-wrapper spelling of an optional; nil still applies.
		return TypeDescriptor{Kind: TypeOptional, Source: src}
	case *types.Slice, *types.Array:
		// Named sequence types take their own empty composite literal.
		return TypeDescriptor{Kind: TypeArray, Source: src}
	case *types.Map:
		return TypeDescriptor{Kind: TypeDictionary, Source: src}
	case *types.Chan, *types.Signature:
		return TypeDescriptor{Kind: TypeOptional, Source: src}
	default:
		return TypeDescriptor{
			Kind:     TypeNamed,
			Source:   src,
			Name:     src,
			BareName: obj.Name(),
			PkgPath:  pkgPath,
			Local:    pkgPath != "" && pkgPath == homePkg,
		}
	}
}
