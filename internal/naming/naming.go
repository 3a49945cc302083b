// Package naming maps products to their canonical output paths and display
// names. Every generated artifact consults these functions so that all files
// agree on product names.
package naming

import (
	"fmt"
	"path"

	"github.com/specialistvlad/pkgproj/internal/model"
)

// DynamicLibraryExtension returns the dynamic library suffix for a platform.
func DynamicLibraryExtension(platform model.Platform) string {
	if platform.IsApple() {
		return "dylib"
	}
	return "so"
}

// OutputPath returns the product's output path relative to the build directory.
func OutputPath(p *model.Product, platform model.Platform) string {
	name := p.Name()
	switch p.Type() {
	case model.Executable:
		return name
	case model.StaticLibrary:
		return "lib" + name + ".a"
	case model.DynamicLibrary:
		return "lib" + name + "." + DynamicLibraryExtension(platform)
	case model.Test:
		if platform.IsApple() {
			return path.Join(name+".xctest", "Contents", "MacOS", name)
		}
		return name + ".xctest"
	default:
		panic(fmt.Sprintf("naming: unhandled product type %v", p.Type()))
	}
}

// DisplayName returns the human-readable product name: the basename of the
// output path, except for tests, which always use the bundle name even where
// the output path points inside the bundle.
func DisplayName(p *model.Product, platform model.Platform) string {
	if p.Type() == model.Test {
		return p.Name() + ".xctest"
	}
	return path.Base(OutputPath(p, platform))
}
