package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// BundleFiles lists the files of the generated bundle relative to its root.
func BundleFiles(t *testing.T, result *HarnessResult) []string {
	t.Helper()
	require.NotEmpty(t, result.BundlePath, "no bundle was generated")

	var files []string
	err := filepath.WalkDir(result.BundlePath, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(result.BundlePath, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

// ReadBundleFile returns the content of a file inside the generated bundle.
func ReadBundleFile(t *testing.T, result *HarnessResult, rel string) string {
	t.Helper()
	require.NotEmpty(t, result.BundlePath, "no bundle was generated")

	data, err := os.ReadFile(filepath.Join(result.BundlePath, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// AssertNoBundle checks that a failed run left the output directory empty.
func AssertNoBundle(t *testing.T, result *HarnessResult) {
	t.Helper()

	require.Empty(t, result.BundlePath)
	entries, err := os.ReadDir(result.OutDir)
	require.NoError(t, err)
	require.Empty(t, entries, "failed run must not touch the output directory")
}
