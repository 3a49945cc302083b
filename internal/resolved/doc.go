// Package resolved reads the upstream resolver's output, a set of HCL files
// describing the root package, every dependency package, their modules and
// the declared products, and turns it into model records.
//
// The loader performs no resolution of its own. It only links the names the
// files declare and rejects input that does not describe a consistent set of
// records. Cycle detection is left to pkggraph.
//
// Attribute values may reference two variables: srcroot, the directory module
// paths are resolved against, and platform, the target platform name.
package resolved
