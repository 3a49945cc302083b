// Package xcodeproj generates an IDE project bundle from the package graph's
// modules and products.
//
// Generate writes a directory tree of three interdependent files:
//
//	<name>.xcodeproj/
//	  project.pbxproj
//	  xcshareddata/xcschemes/
//	    <name>.xcscheme
//	    xcschememanagement.plist
//
// All three files are rendered from one in-memory project description built
// in a single pass, so they agree on the container name, the scheme name and
// every target identifier. Identifiers are derived from names, never from
// time or randomness, which keeps the output byte-identical for identical
// input.
//
// Generation is synchronous and not preemptible. Files are fully rendered
// before being written, but a failure midway leaves already-written files in
// place; the caller always gets an error in that case.
package xcodeproj
