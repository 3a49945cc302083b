// Package integration_tests runs the whole pipeline, from resolved HCL input
// on disk to a generated project bundle, through the testutil harness.
package integration_tests
