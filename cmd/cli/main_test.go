package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/pkgproj/internal/cli"
	"github.com/specialistvlad/pkgproj/internal/resolved"
	"github.com/stretchr/testify/require"
)

func TestRun_GeneratesBundle(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	input := filepath.Join(dir, "resolved.hcl")
	err := os.WriteFile(input, []byte(`
root = "hello"

package "hello" {
  name = "Hello"

  module "Hello" {
    type    = "executable"
    path    = "${srcroot}/Sources/Hello"
    sources = ["main.swift"]
  }

  module "HelloTests" {
    type         = "test"
    sources      = ["HelloTests.swift"]
    dependencies = ["Hello"]
  }
}
`), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	err = run(out, logs, []string{"-o", dir, "-platform", "linux", input})

	// --- Assert ---
	require.NoError(t, err)
	bundle := strings.TrimSpace(out.String())
	require.Equal(t, "Hello.xcodeproj", filepath.Base(bundle))
	require.FileExists(t, filepath.Join(bundle, "project.pbxproj"))
	require.FileExists(t, filepath.Join(bundle, "xcshareddata", "xcschemes", "Hello.xcscheme"))
	require.FileExists(t, filepath.Join(bundle, "xcshareddata", "xcschemes", "xcschememanagement.plist"))
	require.Contains(t, logs.String(), "Project bundle generated.")
}

func TestRun_InvalidInputFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The root names a package that is never declared.
	dir := t.TempDir()
	input := filepath.Join(dir, "resolved.hcl")
	err := os.WriteFile(input, []byte(`root = "ghost"`), 0600)
	require.NoError(t, err, "failed to set up test file")

	// --- Act ---
	runErr := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-o", dir, input})

	// --- Assert ---
	require.Error(t, runErr)
	require.True(t, errors.Is(runErr, resolved.ErrInvalidInput))

	var exitErr *cli.ExitError
	require.False(t, errors.As(runErr, &exitErr), "load failures are not usage errors")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}
