package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/pkgproj/internal/app"
	"github.com/specialistvlad/pkgproj/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The host-dependent source root default is ignored in comparisons.
var ignoreSrcRoot = cmpopts.IgnoreFields(app.Config{}, "SrcRoot")

func TestParse(t *testing.T) {
	t.Setenv(envLogLevel, "")
	t.Setenv(envLogFormat, "")
	t.Setenv(envPlatform, "")

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectCode     int
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "All flags",
			args: []string{
				"-input", "/in/a.hcl",
				"-i", "/in/b.hcl",
				"-output=/out",
				"-name", "Demo",
				"-srcroot", "/src",
				"-platform", "darwin",
				"-Xcc", "-DDEBUG", "-Xcc", "-I/opt/include",
				"-Xlinker", "-lz",
				"-Xswiftc", "-Onone",
				"-xcconfig-overrides", "/cfg/overrides.xcconfig",
				"--log-level=debug",
				"--log-format=json",
			},
			expectedConfig: &app.Config{
				InputPaths:        []string{"/in/a.hcl", "/in/b.hcl"},
				OutputDir:         "/out",
				ProjectName:       "Demo",
				SrcRoot:           "/src",
				Platform:          model.PlatformMacOS,
				Xcc:               []string{"-DDEBUG", "-I/opt/include"},
				Xlinker:           []string{"-lz"},
				Xswiftc:           []string{"-Onone"},
				XcconfigOverrides: "/cfg/overrides.xcconfig",
				LogLevel:          "debug",
				LogFormat:         "json",
			},
		},
		{
			name: "Positional inputs and shorthand output",
			args: []string{"-o", "/short", "-platform", "linux", "/a.hcl", "/b"},
			expectedConfig: &app.Config{
				InputPaths: []string{"/a.hcl", "/b"},
				OutputDir:  "/short",
				Platform:   model.PlatformLinux,
				LogLevel:   "info",
				LogFormat:  "text",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Usage:")
			},
		},
		{
			name:       "No input prints usage",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "INPUT_PATH")
			},
		},
		{name: "Unknown flag", args: []string{"-nope"}, expectCode: 2},
		{name: "Bad log format", args: []string{"-log-format", "xml", "a.hcl"}, expectCode: 2},
		{name: "Bad log level", args: []string{"-log-level", "loud", "a.hcl"}, expectCode: 2},
		{name: "Bad platform", args: []string{"-platform", "plan9", "a.hcl"}, expectCode: 2},
		{name: "Name with separator", args: []string{"-name", "a/b", "a.hcl"}, expectCode: 2},
		{name: "Empty output", args: []string{"-output", "", "a.hcl"}, expectCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.expectCode != 0 {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %v", err)
				assert.Equal(t, tc.expectCode, exitErr.Code)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectExit, shouldExit)
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig == nil {
				assert.Nil(t, cfg)
				return
			}
			require.NotNil(t, cfg)
			opts := []cmp.Option{cmpopts.EquateEmpty()}
			if tc.expectedConfig.SrcRoot == "" {
				opts = append(opts, ignoreSrcRoot)
			}
			if diff := cmp.Diff(tc.expectedConfig, cfg, opts...); diff != "" {
				t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_EnvironmentDefaults(t *testing.T) {
	t.Setenv(envLogLevel, "warn")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envPlatform, "macos")

	cfg, shouldExit, err := Parse([]string{"a.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, model.PlatformMacOS, cfg.Platform)

	cfg, _, err = Parse([]string{"-log-level", "error", "-platform", "linux", "a.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "flags win over the environment")
	assert.Equal(t, model.PlatformLinux, cfg.Platform)
}

func TestParse_InvalidEnvironmentIsRejected(t *testing.T) {
	t.Setenv(envLogLevel, "")
	t.Setenv(envLogFormat, "yaml")
	t.Setenv(envPlatform, "")

	_, _, err := Parse([]string{"a.hcl"}, &bytes.Buffer{})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
