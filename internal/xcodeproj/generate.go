package xcodeproj

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/pkgproj/internal/ctxlog"
)

const (
	descriptorFile       = "project.pbxproj"
	schemesDir           = "xcshareddata/xcschemes"
	schemeManagementFile = "xcschememanagement.plist"
)

// Generate writes the project bundle for in under dstDir and returns the
// absolute path of the created .xcodeproj directory.
//
// Precondition failures (ErrNoModules, *OnlyForeignModuleError, invalid names)
// are reported before anything is created on disk. Filesystem errors abort the
// operation and are returned wrapped with the path involved.
func Generate(ctx context.Context, dstDir string, in Input, opts Options) (string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Generate: Starting project generation.", "dst", dstDir, "project", in.ProjectName)

	p, err := newProject(in, opts)
	if err != nil {
		return "", err
	}

	// Render everything before touching the filesystem.
	descriptor, err := encodePBXProj(p)
	if err != nil {
		return "", err
	}
	schemeContent, err := encodeScheme(p)
	if err != nil {
		return "", err
	}
	management, err := encodeSchemeManagement(p)
	if err != nil {
		return "", err
	}
	logger.Debug("Generate: Bundle content rendered.",
		"targets", len(p.targets),
		"aggregates", len(p.aggregates),
		"descriptor_bytes", len(descriptor),
	)

	bundlePath, err := filepath.Abs(filepath.Join(dstDir, p.container))
	if err != nil {
		return "", fmt.Errorf("failed to resolve bundle path: %w", err)
	}
	schemesPath := filepath.Join(bundlePath, filepath.FromSlash(schemesDir))

	for _, dir := range []string{bundlePath, schemesPath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	files := []struct {
		path    string
		content []byte
	}{
		{filepath.Join(bundlePath, descriptorFile), descriptor},
		{filepath.Join(schemesPath, p.schemeName), schemeContent},
		{filepath.Join(schemesPath, schemeManagementFile), management},
	}
	for _, f := range files {
		if err := writeFile(f.path, f.content); err != nil {
			return "", err
		}
		logger.Debug("Generate: Wrote bundle file.", "path", f.path, "bytes", len(f.content))
	}

	logger.Info("Project bundle generated.", "path", bundlePath, "targets", len(p.targets))
	return bundlePath, nil
}

// writeFile writes data in one pass and always closes the file, returning the
// close error when the write itself succeeded.
func writeFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
