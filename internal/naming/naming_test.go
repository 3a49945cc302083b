package naming

import (
	"testing"

	"github.com/specialistvlad/pkgproj/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, name string, typ model.ProductType) *model.Product {
	t.Helper()
	p, err := model.NewProduct(name, typ, []*model.Module{{Name: name}})
	require.NoError(t, err)
	return p
}

func TestOutputPathAndDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		typ      model.ProductType
		platform model.Platform
		wantPath string
		wantName string
	}{
		{"executable macos", model.Executable, model.PlatformMacOS, "Foo", "Foo"},
		{"executable linux", model.Executable, model.PlatformLinux, "Foo", "Foo"},
		{"static macos", model.StaticLibrary, model.PlatformMacOS, "libFoo.a", "libFoo.a"},
		{"static linux", model.StaticLibrary, model.PlatformLinux, "libFoo.a", "libFoo.a"},
		{"dynamic macos", model.DynamicLibrary, model.PlatformMacOS, "libFoo.dylib", "libFoo.dylib"},
		{"dynamic linux", model.DynamicLibrary, model.PlatformLinux, "libFoo.so", "libFoo.so"},
		{"test macos", model.Test, model.PlatformMacOS, "Foo.xctest/Contents/MacOS/Foo", "Foo.xctest"},
		{"test linux", model.Test, model.PlatformLinux, "Foo.xctest", "Foo.xctest"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newProduct(t, "Foo", tc.typ)
			assert.Equal(t, tc.wantPath, OutputPath(p, tc.platform))
			assert.Equal(t, tc.wantName, DisplayName(p, tc.platform))
		})
	}
}

func TestOutputPath_Deterministic(t *testing.T) {
	t.Parallel()

	p := newProduct(t, "Bar", model.DynamicLibrary)
	first := OutputPath(p, model.PlatformLinux)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, OutputPath(p, model.PlatformLinux))
	}
}

func TestDynamicLibraryExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dylib", DynamicLibraryExtension(model.PlatformMacOS))
	assert.Equal(t, "so", DynamicLibraryExtension(model.PlatformLinux))
}

func TestOutputPath_UnknownTypePanics(t *testing.T) {
	t.Parallel()

	p := newProduct(t, "Foo", model.ProductType(42))
	assert.Panics(t, func() { OutputPath(p, model.PlatformLinux) })
}
