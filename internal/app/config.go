package app

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/specialistvlad/pkgproj/internal/model"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPaths []string // resolved .hcl files or directories
	OutputDir  string

	// ProjectName overrides the root package name as the bundle name.
	ProjectName string
	SrcRoot     string
	Platform    model.Platform

	Xcc               []string
	Xlinker           []string
	Xswiftc           []string
	XcconfigOverrides string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills the source root and platform defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.InputPaths) == 0 {
		return nil, errors.New("InputPaths is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OutputDir is a required configuration field and cannot be empty")
	}

	if cfg.SrcRoot == "" {
		cfg.SrcRoot = defaultSrcRoot(cfg.InputPaths[0])
	}
	if cfg.Platform == "" {
		cfg.Platform = model.HostPlatform(runtime.GOOS)
	}
	return &cfg, nil
}

// defaultSrcRoot is the input directory itself, or the directory holding the
// input file.
func defaultSrcRoot(input string) string {
	dir := input
	if info, err := os.Stat(input); err != nil || !info.IsDir() {
		dir = filepath.Dir(input)
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
