package xcodeproj

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/pkgproj/internal/model"
	"github.com/specialistvlad/pkgproj/internal/naming"
)

const (
	configDebug   = "Debug"
	configRelease = "Release"
)

var configurations = []string{configDebug, configRelease}

// Input is the graph data a bundle is generated from.
type Input struct {
	// ProjectName names the bundle, the scheme, and the container reference.
	ProjectName string
	// SrcRoot is the directory module paths are resolved against.
	SrcRoot  string
	Platform model.Platform

	Modules         []*model.Module
	ExternalModules []*model.Module
	Products        []*model.Product
}

// Options carries user-supplied build settings into the project descriptor.
type Options struct {
	// Xcc holds extra C compiler flags.
	Xcc []string
	// Xld holds extra linker flags.
	Xld []string
	// Xswiftc holds extra native compiler flags.
	Xswiftc []string
	// XcconfigOverrides, when set, is the path of a configuration file that
	// the project includes as the base of its build configurations.
	XcconfigOverrides string
}

// target is a native module built by the IDE.
type target struct {
	id         string
	module     *model.Module
	external   bool
	product    *model.Product
	productRef string
	configList string
}

// aggregate is a declared product, built by depending on its module targets.
type aggregate struct {
	id         string
	product    *model.Product
	productRef string
	configList string
	deps       []*target
}

// project is the single description all three bundle files are rendered from.
type project struct {
	name       string
	container  string
	schemeName string
	srcRoot    string
	platform   model.Platform
	opts       Options

	id         string
	configList string

	modules  []*model.Module
	external map[*model.Module]bool

	targets    []*target
	byModule   map[string]*target
	aggregates []*aggregate
}

func checkProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidProjectName)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidProjectName, name)
	}
	return nil
}

// checkModules enforces the generation preconditions in order: at least one
// module, unique non-empty names, and at least one native module.
func checkModules(modules []*model.Module) error {
	if len(modules) == 0 {
		return ErrNoModules
	}

	seen := make(map[string]struct{}, len(modules))
	var firstForeign string
	native := false
	for _, m := range modules {
		if m == nil || m.Name == "" {
			return fmt.Errorf("%w: module name is required", ErrInvalidModule)
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateModule, m.Name)
		}
		seen[m.Name] = struct{}{}

		if m.IsNative() {
			native = true
		} else if firstForeign == "" {
			firstForeign = m.Name
		}
	}
	if !native {
		return &OnlyForeignModuleError{Name: firstForeign}
	}
	return nil
}

// checkProducts requires every product to be present and uniquely named, since
// the name is the product's identity in the descriptor.
func checkProducts(products []*model.Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, prod := range products {
		if prod == nil || prod.Name() == "" {
			return fmt.Errorf("%w: product name is required", ErrInvalidProduct)
		}
		if _, dup := seen[prod.Name()]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateProduct, prod.Name())
		}
		seen[prod.Name()] = struct{}{}
	}
	return nil
}

// newProject validates the input and lays out every target and identifier.
func newProject(in Input, opts Options) (*project, error) {
	if err := checkProjectName(in.ProjectName); err != nil {
		return nil, err
	}
	if err := checkModules(in.Modules); err != nil {
		return nil, err
	}
	if err := checkProducts(in.Products); err != nil {
		return nil, err
	}

	p := &project{
		name:       in.ProjectName,
		container:  in.ProjectName + ".xcodeproj",
		schemeName: in.ProjectName + ".xcscheme",
		srcRoot:    in.SrcRoot,
		platform:   in.Platform,
		opts:       opts,
		id:         objectID("project", in.ProjectName),
		configList: objectID("configlist", "project"),
		modules:    in.Modules,
		external:   make(map[*model.Module]bool, len(in.ExternalModules)),
		byModule:   make(map[string]*target),
	}
	for _, m := range in.ExternalModules {
		p.external[m] = true
	}

	for _, m := range in.Modules {
		if !m.IsNative() {
			continue
		}
		product, err := moduleProduct(m)
		if err != nil {
			return nil, err
		}
		t := &target{
			id:         objectID("target", m.Name),
			module:     m,
			external:   p.external[m],
			product:    product,
			productRef: objectID("product", m.Name),
			configList: objectID("configlist", "target/"+m.Name),
		}
		p.targets = append(p.targets, t)
		p.byModule[m.Name] = t
	}

	for _, prod := range in.Products {
		a := &aggregate{
			id:         objectID("aggregate", prod.Name()),
			product:    prod,
			productRef: objectID("aggregate-product", prod.Name()),
			configList: objectID("configlist", "aggregate/"+prod.Name()),
		}
		for _, m := range prod.Modules() {
			if t, ok := p.byModule[m.Name]; ok {
				a.deps = append(a.deps, t)
			}
		}
		p.aggregates = append(p.aggregates, a)
	}
	return p, nil
}

// moduleProduct is the product a single native module target builds.
func moduleProduct(m *model.Module) (*model.Product, error) {
	typ := model.DynamicLibrary
	switch m.Type {
	case model.ExecutableModule:
		typ = model.Executable
	case model.TestModule:
		typ = model.Test
	}
	return model.NewProduct(m.Name, typ, []*model.Module{m})
}

// buildableName is the name the scheme and the descriptor use for a target's product.
func (t *target) buildableName(platform model.Platform) string {
	return naming.DisplayName(t.product, platform)
}

// testTargets returns the targets whose module builds a test bundle.
func (p *project) testTargets() []*target {
	var out []*target
	for _, t := range p.targets {
		if t.module.IsTest() {
			out = append(out, t)
		}
	}
	return out
}

// runnable returns the first root-package executable target, if any.
func (p *project) runnable() *target {
	for _, t := range p.targets {
		if !t.external && t.module.Type == model.ExecutableModule {
			return t
		}
	}
	return nil
}

// foreignIncludePaths lists foreign module directories for the native compiler's import search path.
func (p *project) foreignIncludePaths() []string {
	var out []string
	for _, m := range p.modules {
		if !m.IsNative() && m.Path != "" {
			out = append(out, m.Path)
		}
	}
	return out
}
