// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrEmptyProduct   = errors.New("product has no modules")
)

// ProductType is the kind of build output a product produces.
type ProductType int

const (
	Executable ProductType = iota
	StaticLibrary
	DynamicLibrary
	Test
)

// String returns the type as written in resolved input files.
func (t ProductType) String() string {
	switch t {
	case Executable:
		return "executable"
	case StaticLibrary:
		return "static"
	case DynamicLibrary:
		return "dynamic"
	case Test:
		return "test"
	default:
		return fmt.Sprintf("ProductType(%d)", int(t))
	}
}

// IsLibrary reports whether the product is a static or dynamic library.
func (t ProductType) IsLibrary() bool {
	return t == StaticLibrary || t == DynamicLibrary
}

// ParseProductType converts an input string into a ProductType.
func ParseProductType(s string) (ProductType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "executable":
		return Executable, nil
	case "static", "static-library":
		return StaticLibrary, nil
	case "dynamic", "dynamic-library", "library":
		return DynamicLibrary, nil
	case "test":
		return Test, nil
	default:
		return 0, fmt.Errorf("%w: unknown product type %q", ErrInvalidProduct, s)
	}
}

// Product is a named, typed build output. Its identity is its name, and its
// type cannot change after construction.
type Product struct {
	name    string
	typ     ProductType
	modules []*Module
}

// NewProduct creates a product from an ordered, non-empty module list.
func NewProduct(name string, typ ProductType, modules []*Module) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyProduct, name)
	}
	mods := make([]*Module, len(modules))
	copy(mods, modules)
	return &Product{name: name, typ: typ, modules: mods}, nil
}

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Type returns the product type.
func (p *Product) Type() ProductType { return p.typ }

// Modules returns a copy of the product's ordered module list.
func (p *Product) Modules() []*Module {
	out := make([]*Module, len(p.modules))
	copy(out, p.modules)
	return out
}

// String returns the product name.
func (p *Product) String() string { return p.name }
