// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the value records handed to pkgproj by the upstream
// dependency resolver: packages, the modules they own, and the products built
// from those modules.
//
// # Core Concepts
//
//   - Package: A named unit with a stable ID. It owns modules and declares
//     direct dependencies on other packages. The dependency relation over every
//     reachable package must be acyclic.
//
//   - Module: A compilable unit owned by exactly one package. Its Kind tells the
//     native toolchain apart from a foreign (C-family) one; its Type says whether
//     it builds a library, an executable, or a test bundle.
//
//   - Product: A named, typed build output composed of an ordered, non-empty
//     list of modules. Its type is fixed at construction.
//
//   - Platform: The host platform that output naming depends on. It is always
//     passed explicitly; nothing in this module reads a process-global value.
//
// Why plain records?
//
// Resolution happens before pkgproj runs. The graph builder and the project
// generator only reference these records and never mutate them, so they carry
// no behavior beyond small accessors and parsing helpers.
package model
