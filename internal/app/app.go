package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/pkgproj/internal/ctxlog"
	"github.com/specialistvlad/pkgproj/internal/pkggraph"
	"github.com/specialistvlad/pkgproj/internal/resolved"
	"github.com/specialistvlad/pkgproj/internal/xcodeproj"
)

// Loader reads the resolver output the graph is built from.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*resolved.Result, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader Loader
}

// NewApp is the constructor for the main application. The bundle path is
// printed to outW; logs go to logW through an isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config, loader Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// Run loads the resolved input, builds the package graph and writes the
// project bundle into the configured output directory.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "inputs", a.config.InputPaths, "platform", a.config.Platform)

	res, err := a.loader.Load(ctx, a.config.InputPaths...)
	if err != nil {
		return fmt.Errorf("failed to load resolved input: %w", err)
	}

	graph, err := pkggraph.New(ctx, res.Root, res.Modules, res.ExternalModules, res.Products)
	if err != nil {
		return fmt.Errorf("failed to build package graph: %w", err)
	}
	order := make([]string, 0, len(graph.Packages()))
	for _, p := range graph.Packages() {
		order = append(order, p.ID)
	}
	a.logger.Debug("Package graph built.", "order", order)

	name := a.config.ProjectName
	if name == "" {
		name = graph.Root().Name
	}

	path, err := xcodeproj.Generate(ctx, a.config.OutputDir, xcodeproj.Input{
		ProjectName:     name,
		SrcRoot:         a.config.SrcRoot,
		Platform:        a.config.Platform,
		Modules:         graph.Modules(),
		ExternalModules: graph.ExternalModules(),
		Products:        graph.Products(),
	}, xcodeproj.Options{
		Xcc:               a.config.Xcc,
		Xld:               a.config.Xlinker,
		Xswiftc:           a.config.Xswiftc,
		XcconfigOverrides: a.config.XcconfigOverrides,
	})
	if err != nil {
		return fmt.Errorf("failed to generate project bundle: %w", err)
	}

	fmt.Fprintln(a.outW, path)
	a.logger.Debug("App.Run method finished.")
	return nil
}
