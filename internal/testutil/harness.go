package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/pkgproj/internal/app"
	"github.com/specialistvlad/pkgproj/internal/model"
	"github.com/specialistvlad/pkgproj/internal/resolved"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	// SrcRoot holds the input files; OutDir receives the bundle.
	SrcRoot string
	OutDir  string
	// BundlePath is the path the app printed, empty on failure.
	BundlePath string
}

// RunIntegrationTest writes files under a fresh source root and runs the app
// over the whole directory with a debug logger. Options adjust the config
// before it is validated.
func RunIntegrationTest(t *testing.T, files map[string]string, opts ...func(*app.Config)) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, opts...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, opts ...func(*app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	srcRoot := filepath.Join(tmpDir, "src")
	outDir := filepath.Join(tmpDir, "out")
	require.NoError(t, os.MkdirAll(srcRoot, 0755))
	require.NoError(t, os.MkdirAll(outDir, 0755))

	// Test paths are relative (e.g. "deps/utils.hcl") and may create subdirectories.
	for name, content := range files {
		filePath := filepath.Join(srcRoot, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	cfg := app.Config{
		InputPaths: []string{srcRoot},
		OutputDir:  outDir,
		SrcRoot:    srcRoot,
		Platform:   model.PlatformLinux,
		LogLevel:   "debug",
		LogFormat:  "text",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	loader := resolved.NewLoader(appConfig.SrcRoot, appConfig.Platform)
	runErr := app.NewApp(out, logBuffer, appConfig, loader).Run(ctx)

	if os.Getenv("PKGPROJ_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput:  logBuffer.String(),
		Err:        runErr,
		SrcRoot:    srcRoot,
		OutDir:     outDir,
		BundlePath: strings.TrimSpace(out.String()),
	}
}
