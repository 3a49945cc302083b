package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/pkgproj/internal/app"
	"github.com/specialistvlad/pkgproj/internal/model"
)

const (
	envLogLevel  = "PKGPROJ_LOG_LEVEL"
	envLogFormat = "PKGPROJ_LOG_FORMAT"
	envPlatform  = "PKGPROJ_PLATFORM"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// stringList collects every occurrence of a repeatable flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, " ") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pkgproj", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pkgproj - Generate an IDE project bundle from a resolved package graph.

Usage:
  pkgproj [options] [INPUT_PATH...]

Arguments:
  INPUT_PATH
    Path to a resolved .hcl file or a directory containing .hcl files.

Environment:
  PKGPROJ_LOG_LEVEL, PKGPROJ_LOG_FORMAT, PKGPROJ_PLATFORM
    Defaults for -log-level, -log-format and -platform.

Options:
`)
		flagSet.PrintDefaults()
	}

	var inputs, xcc, xlinker, xswiftc stringList
	flagSet.Var(&inputs, "input", "Path to the resolved input file or directory. Repeatable.")
	flagSet.Var(&inputs, "i", "Path to the resolved input file or directory (shorthand).")
	outputFlag := flagSet.String("output", ".", "Directory the project bundle is written into.")
	oFlag := flagSet.String("o", "", "Directory the project bundle is written into (shorthand).")
	nameFlag := flagSet.String("name", "", "Project name. Defaults to the root package name.")
	srcRootFlag := flagSet.String("srcroot", "", "Source root module paths are resolved against. Defaults to the input directory.")
	platformFlag := flagSet.String("platform", envOr(envPlatform, ""), "Target platform: 'macos' or 'linux'. Defaults to the host.")
	flagSet.Var(&xcc, "Xcc", "Pass a flag to the C compiler. Repeatable.")
	flagSet.Var(&xlinker, "Xlinker", "Pass a flag to the linker. Repeatable.")
	flagSet.Var(&xswiftc, "Xswiftc", "Pass a flag to the native compiler. Repeatable.")
	xcconfigFlag := flagSet.String("xcconfig-overrides", "", "Path to a build settings file included by every configuration.")
	logFormatFlag := flagSet.String("log-format", envOr(envLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envOr(envLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	inputs = append(inputs, flagSet.Args()...)
	if len(inputs) == 0 {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	outDir := *outputFlag
	if *oFlag != "" {
		outDir = *oFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	var platform model.Platform
	if *platformFlag != "" {
		p, err := model.ParsePlatform(*platformFlag)
		if err != nil {
			return nil, false, usageError("invalid platform: %v", err)
		}
		platform = p
	}

	if strings.ContainsAny(*nameFlag, `/\`) {
		return nil, false, usageError("invalid name: %q must not contain a path separator", *nameFlag)
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPaths:        inputs,
		OutputDir:         outDir,
		ProjectName:       *nameFlag,
		SrcRoot:           *srcRootFlag,
		Platform:          platform,
		Xcc:               xcc,
		Xlinker:           xlinker,
		Xswiftc:           xswiftc,
		XcconfigOverrides: *xcconfigFlag,
		LogFormat:         logFormat,
		LogLevel:          logLevel,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
