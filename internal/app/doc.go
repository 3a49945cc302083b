// Package app contains the core application logic. It ties the resolved input
// loader, the package graph builder and the project bundle generator together
// behind one Run call, decoupled from any specific entrypoint like a CLI.
package app
