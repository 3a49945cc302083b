package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_RequiresModules(t *testing.T) {
	t.Parallel()

	_, err := NewProduct("Foo", Executable, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyProduct))
	assert.Contains(t, err.Error(), "Foo")
}

func TestNewProduct_RequiresName(t *testing.T) {
	t.Parallel()

	_, err := NewProduct("", Executable, []*Module{{Name: "Foo"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestProduct_ModulesIsACopy(t *testing.T) {
	t.Parallel()

	mods := []*Module{{Name: "A"}, {Name: "B"}}
	p, err := NewProduct("AB", StaticLibrary, mods)
	require.NoError(t, err)

	mods[0] = &Module{Name: "Changed"}
	got := p.Modules()
	assert.Equal(t, "A", got[0].Name)

	got[1] = nil
	assert.NotNil(t, p.Modules()[1])
	assert.Equal(t, StaticLibrary, p.Type())
	assert.Equal(t, "AB", p.Name())
}

func TestParseProductType(t *testing.T) {
	t.Parallel()

	cases := map[string]ProductType{
		"executable": Executable,
		"static":     StaticLibrary,
		"Dynamic":    DynamicLibrary,
		"test":       Test,
	}
	for in, want := range cases {
		got, err := ParseProductType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseProductType("framework")
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestParseModuleKindAndType(t *testing.T) {
	t.Parallel()

	k, err := ParseModuleKind("")
	require.NoError(t, err)
	assert.Equal(t, NativeModule, k)

	k, err = ParseModuleKind("foreign")
	require.NoError(t, err)
	assert.Equal(t, ForeignModule, k)

	_, err = ParseModuleKind("rust")
	assert.Error(t, err)

	typ, err := ParseModuleType("test")
	require.NoError(t, err)
	assert.Equal(t, TestModule, typ)
	assert.True(t, (&Module{Type: typ}).IsTest())

	_, err = ParseModuleType("plugin")
	assert.Error(t, err)
}

func TestPlatform(t *testing.T) {
	t.Parallel()

	p, err := ParsePlatform("Darwin")
	require.NoError(t, err)
	assert.Equal(t, PlatformMacOS, p)
	assert.True(t, p.IsApple())

	p, err = ParsePlatform("linux")
	require.NoError(t, err)
	assert.False(t, p.IsApple())

	_, err = ParsePlatform("windows")
	assert.Error(t, err)

	assert.Equal(t, PlatformMacOS, HostPlatform("darwin"))
	assert.Equal(t, PlatformLinux, HostPlatform("freebsd"))
}
