// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// Package is a named unit owning modules and declaring direct dependencies on
// other packages.
type Package struct {
	// ID is the stable identity of the package. Two packages with the same ID
	// are the same package.
	ID string
	// Name is the human-readable package name.
	Name string
	// Path is the package root on disk.
	Path string
	// Dependencies are the direct dependency edges, in declaration order.
	Dependencies []*Package
	// Modules are the modules this package owns.
	Modules []*Module
}

// String returns the package ID.
func (p *Package) String() string {
	if p == nil {
		return "<nil>"
	}
	return p.ID
}
