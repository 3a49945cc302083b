// Package pkggraph builds the immutable, ordered package graph consumed by
// build planning.
//
// The graph holds the root package, every package reachable from it exactly
// once, and the module and product collections supplied by the resolver.
// Packages are ordered root-first: a package always appears before every
// package it depends on, so Packages()[0] is the root and reversing the slice
// gives a valid build order.
package pkggraph
