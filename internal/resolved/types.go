package resolved

import "github.com/specialistvlad/pkgproj/internal/model"

// fileRoot is decoded from every input file.
type fileRoot struct {
	Root     string          `hcl:"root,optional"`
	Packages []*packageBlock `hcl:"package,block"`
}

type packageBlock struct {
	ID           string          `hcl:"id,label"`
	Name         string          `hcl:"name,optional"`
	Path         string          `hcl:"path,optional"`
	Dependencies []string        `hcl:"dependencies,optional"`
	Modules      []*moduleBlock  `hcl:"module,block"`
	Products     []*productBlock `hcl:"product,block"`
}

type moduleBlock struct {
	Name         string   `hcl:"name,label"`
	Kind         string   `hcl:"kind,optional"`
	Type         string   `hcl:"type,optional"`
	Path         string   `hcl:"path,optional"`
	Sources      []string `hcl:"sources,optional"`
	Dependencies []string `hcl:"dependencies,optional"`
}

type productBlock struct {
	Name    string   `hcl:"name,label"`
	Type    string   `hcl:"type"`
	Modules []string `hcl:"modules"`
}

// Result is the linked content of the input files.
type Result struct {
	Root *model.Package
	// Packages lists every declared package in declaration order.
	Packages []*model.Package
	// Modules lists the modules of the root and every package it reaches,
	// root package modules first.
	Modules []*model.Module
	// ExternalModules lists the reachable modules that do not belong to the
	// root package.
	ExternalModules []*model.Module
	// Products lists the products declared by reachable packages.
	Products []*model.Product
}
