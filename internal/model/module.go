// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"fmt"
	"strings"
)

// ModuleKind selects the toolchain that compiles a module.
type ModuleKind int

const (
	// NativeModule is compiled by the native toolchain.
	NativeModule ModuleKind = iota
	// ForeignModule is a C-family module without native build descriptors.
	ForeignModule
)

// String returns the kind as written in resolved input files.
func (k ModuleKind) String() string {
	switch k {
	case NativeModule:
		return "native"
	case ForeignModule:
		return "foreign"
	default:
		return fmt.Sprintf("ModuleKind(%d)", int(k))
	}
}

// ParseModuleKind converts an input string into a ModuleKind. An empty string
// means native.
func ParseModuleKind(s string) (ModuleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "native", "swift":
		return NativeModule, nil
	case "foreign", "c", "clang":
		return ForeignModule, nil
	default:
		return 0, fmt.Errorf("unknown module kind %q", s)
	}
}

// ModuleType describes what a module builds into.
type ModuleType int

const (
	LibraryModule ModuleType = iota
	ExecutableModule
	TestModule
)

// String returns the type as written in resolved input files.
func (t ModuleType) String() string {
	switch t {
	case LibraryModule:
		return "library"
	case ExecutableModule:
		return "executable"
	case TestModule:
		return "test"
	default:
		return fmt.Sprintf("ModuleType(%d)", int(t))
	}
}

// ParseModuleType converts an input string into a ModuleType. An empty string
// means library.
func ParseModuleType(s string) (ModuleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "library":
		return LibraryModule, nil
	case "executable":
		return ExecutableModule, nil
	case "test":
		return TestModule, nil
	default:
		return 0, fmt.Errorf("unknown module type %q", s)
	}
}

// Module is a compilable unit owned by exactly one package.
type Module struct {
	Name      string
	PackageID string
	Kind      ModuleKind
	Type      ModuleType
	// Path is the module's source directory.
	Path string
	// Sources are source file paths relative to Path.
	Sources []string
	// Dependencies name the modules this module imports.
	Dependencies []string
}

// IsNative reports whether the module is compiled by the native toolchain.
func (m *Module) IsNative() bool { return m.Kind == NativeModule }

// IsTest reports whether the module builds a test bundle.
func (m *Module) IsTest() bool { return m.Type == TestModule }

// String returns the module name.
func (m *Module) String() string {
	if m == nil {
		return "<nil>"
	}
	return m.Name
}
