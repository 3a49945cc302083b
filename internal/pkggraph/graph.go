package pkggraph

import (
	"context"

	"github.com/specialistvlad/pkgproj/internal/ctxlog"
	"github.com/specialistvlad/pkgproj/internal/model"
)

// Graph is the resolved, ordered view of all reachable packages together with
// their modules and products. It is immutable after New returns and safe for
// concurrent reads.
type Graph struct {
	root     *model.Package
	packages []*model.Package
	byID     map[string]*model.Package

	modules         []*model.Module
	externalModules []*model.Module
	external        map[*model.Module]struct{}
	products        []*model.Product
}

// New constructs a Graph from a root package and the collections supplied by
// the resolver. It fails with ErrCyclicGraph when the dependency relation has a
// cycle and with ErrDuplicatePackage when one package ID is reachable through
// two different instances.
func New(ctx context.Context, root *model.Package, modules, externalModules []*model.Module, products []*model.Product) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("New: Starting package graph construction.", "root", root.String())

	if root == nil {
		return nil, invalidf("root package is required")
	}

	packages, err := topologicalSort(root)
	if err != nil {
		return nil, err
	}
	logger.Debug("New: Topological sort complete.", "package_count", len(packages))

	g := &Graph{
		root:            root,
		packages:        packages,
		byID:            make(map[string]*model.Package, len(packages)),
		modules:         append([]*model.Module(nil), modules...),
		externalModules: append([]*model.Module(nil), externalModules...),
		external:        make(map[*model.Module]struct{}, len(externalModules)),
		products:        append([]*model.Product(nil), products...),
	}
	for _, p := range packages {
		g.byID[p.ID] = p
	}
	for _, m := range externalModules {
		g.external[m] = struct{}{}
	}

	logger.Debug("New: Package graph construction successful.",
		"modules", len(g.modules),
		"external_modules", len(g.externalModules),
		"products", len(g.products),
	)
	return g, nil
}

// Root returns the root package.
func (g *Graph) Root() *model.Package { return g.root }

// Packages returns every reachable package, root first. A package precedes all
// of its dependencies.
func (g *Graph) Packages() []*model.Package {
	out := make([]*model.Package, len(g.packages))
	copy(out, g.packages)
	return out
}

// Package looks up a reachable package by ID.
func (g *Graph) Package(id string) (*model.Package, bool) {
	p, ok := g.byID[id]
	return p, ok
}

// Modules returns the complete module set.
func (g *Graph) Modules() []*model.Module {
	out := make([]*model.Module, len(g.modules))
	copy(out, g.modules)
	return out
}

// ExternalModules returns the modules that do not belong to the root package.
func (g *Graph) ExternalModules() []*model.Module {
	out := make([]*model.Module, len(g.externalModules))
	copy(out, g.externalModules)
	return out
}

// IsExternal reports whether m is part of the external module subset.
func (g *Graph) IsExternal(m *model.Module) bool {
	_, ok := g.external[m]
	return ok
}

// Products returns the product set.
func (g *Graph) Products() []*model.Product {
	out := make([]*model.Product, len(g.products))
	copy(out, g.products)
	return out
}
