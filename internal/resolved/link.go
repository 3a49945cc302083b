package resolved

import "github.com/specialistvlad/pkgproj/internal/model"

// link turns decoded blocks into model records. Packages are created first so
// that dependency edges can point at any declared package, in any order.
func link(rootID string, blocks []*packageBlock) (*Result, error) {
	packages := make(map[string]*model.Package, len(blocks))
	ordered := make([]*model.Package, 0, len(blocks))
	modules := make(map[string]*model.Module)

	for _, b := range blocks {
		if _, dup := packages[b.ID]; dup {
			return nil, invalidf("package %q is declared more than once", b.ID)
		}
		name := b.Name
		if name == "" {
			name = b.ID
		}
		pkg := &model.Package{ID: b.ID, Name: name, Path: b.Path}

		for _, mb := range b.Modules {
			m, err := newModule(b.ID, mb)
			if err != nil {
				return nil, err
			}
			if owner, dup := modules[m.Name]; dup {
				return nil, invalidf("module %q is declared by both %q and %q", m.Name, owner.PackageID, b.ID)
			}
			modules[m.Name] = m
			pkg.Modules = append(pkg.Modules, m)
		}

		packages[b.ID] = pkg
		ordered = append(ordered, pkg)
	}

	root, ok := packages[rootID]
	if !ok {
		return nil, invalidf("root package %q is not declared", rootID)
	}

	for _, b := range blocks {
		pkg := packages[b.ID]
		for _, depID := range b.Dependencies {
			dep, ok := packages[depID]
			if !ok {
				return nil, invalidf("package %q depends on undeclared package %q", b.ID, depID)
			}
			pkg.Dependencies = append(pkg.Dependencies, dep)
		}
	}

	reachable := reachableFrom(root)
	blockByID := make(map[string]*packageBlock, len(blocks))
	for _, b := range blocks {
		blockByID[b.ID] = b
	}

	// Only packages the root pulls in contribute modules and products.
	res := &Result{Root: root, Packages: ordered}
	res.Modules = append(res.Modules, root.Modules...)
	linked := make(map[string]*model.Module)
	for _, m := range root.Modules {
		linked[m.Name] = m
	}
	for _, pkg := range ordered {
		if pkg == root || !reachable[pkg.ID] {
			continue
		}
		res.Modules = append(res.Modules, pkg.Modules...)
		res.ExternalModules = append(res.ExternalModules, pkg.Modules...)
		for _, m := range pkg.Modules {
			linked[m.Name] = m
		}
	}

	for _, pkg := range ordered {
		if !reachable[pkg.ID] {
			continue
		}
		for _, pb := range blockByID[pkg.ID].Products {
			prod, err := newProduct(pb, linked, modules)
			if err != nil {
				return nil, err
			}
			res.Products = append(res.Products, prod)
		}
	}
	return res, nil
}

func newModule(packageID string, b *moduleBlock) (*model.Module, error) {
	kind, err := model.ParseModuleKind(b.Kind)
	if err != nil {
		return nil, invalidf("module %q: %v", b.Name, err)
	}
	typ, err := model.ParseModuleType(b.Type)
	if err != nil {
		return nil, invalidf("module %q: %v", b.Name, err)
	}
	return &model.Module{
		Name:         b.Name,
		PackageID:    packageID,
		Kind:         kind,
		Type:         typ,
		Path:         b.Path,
		Sources:      append([]string(nil), b.Sources...),
		Dependencies: append([]string(nil), b.Dependencies...),
	}, nil
}

// reachableFrom returns the IDs of root and every package it depends on,
// directly or transitively.
func reachableFrom(root *model.Package) map[string]bool {
	seen := make(map[string]bool)
	stack := []*model.Package{root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		stack = append(stack, p.Dependencies...)
	}
	return seen
}

// newProduct links a product to the modules of reachable packages. declared
// holds every module so an unreachable one gets its own message.
func newProduct(b *productBlock, linked, declared map[string]*model.Module) (*model.Product, error) {
	typ, err := model.ParseProductType(b.Type)
	if err != nil {
		return nil, invalidf("product %q: %v", b.Name, err)
	}
	mods := make([]*model.Module, 0, len(b.Modules))
	for _, name := range b.Modules {
		m, ok := linked[name]
		if !ok {
			if owner, found := declared[name]; found {
				return nil, invalidf("product %q references module %q of package %q, which the root does not depend on", b.Name, name, owner.PackageID)
			}
			return nil, invalidf("product %q references undeclared module %q", b.Name, name)
		}
		mods = append(mods, m)
	}
	prod, err := model.NewProduct(b.Name, typ, mods)
	if err != nil {
		return nil, invalidf("product %q: %v", b.Name, err)
	}
	return prod, nil
}
