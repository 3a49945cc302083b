package resolved

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pkgproj/internal/ctxlog"
	"github.com/specialistvlad/pkgproj/internal/fsutil"
	"github.com/specialistvlad/pkgproj/internal/model"
	"github.com/zclconf/go-cty/cty"
)

var ErrInvalidInput = errors.New("invalid resolved input")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Loader reads resolved package descriptions from HCL files.
type Loader struct {
	srcRoot  string
	platform model.Platform
}

// NewLoader creates a loader whose files can reference srcRoot and platform.
func NewLoader(srcRoot string, platform model.Platform) *Loader {
	return &Loader{srcRoot: srcRoot, platform: platform}
}

func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"srcroot":  cty.StringVal(l.srcRoot),
			"platform": cty.StringVal(l.platform.String()),
		},
	}
}

// Load parses every .hcl file found in paths and links the declared packages,
// modules and products.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolved input loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, invalidf("no .hcl files found")
	}
	logger.Debug("Discovered input files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := l.evalContext()

	var rootID, rootFile string
	var blocks []*packageBlock
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.Root != "" {
			if rootID != "" && rootID != root.Root {
				return nil, invalidf("root declared as %q in %s and %q in %s", rootID, rootFile, root.Root, file)
			}
			rootID, rootFile = root.Root, file
		}
		blocks = append(blocks, root.Packages...)
	}

	if rootID == "" {
		return nil, invalidf("no root package declared")
	}

	res, err := link(rootID, blocks)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved input loading complete.",
		"packages", len(res.Packages),
		"modules", len(res.Modules),
		"products", len(res.Products),
	)
	return res, nil
}
