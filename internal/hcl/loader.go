package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/boardsim/internal/ctxlog"
	"github.com/vk/boardsim/internal/engine"
)

// Loader reads simulation files.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the file at path and applies its simulation block on top of
// base. The result is not validated; that is left to engine.New.
func (l *Loader) Load(ctx context.Context, path string, base engine.GameConfig) (engine.GameConfig, error) {
	logger := ctxlog.FromContext(ctx).With("path", path)
	logger.Debug("HCL loader started.")

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return base, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	if root.Simulation == nil {
		logger.Debug("No simulation block found, using defaults.")
		return base, nil
	}

	attrs, diags := root.Simulation.Body.JustAttributes()
	if diags.HasErrors() {
		return base, fmt.Errorf("invalid simulation block in %s: %w", path, diags)
	}
	evalCtx, err := evalContext(base)
	if err != nil {
		return base, err
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	cfg := base
	for _, name := range names {
		attr := attrs[name]
		field, ok := attributes[name]
		if !ok {
			return base, fmt.Errorf("%s: unsupported argument %q", attr.NameRange, name)
		}
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return base, fmt.Errorf("failed to evaluate %q: %w", name, diags)
		}
		if err := decodeInt(ctx, val, field(&cfg)); err != nil {
			return base, fmt.Errorf("%s: failed to decode argument %q: %w", attr.Expr.Range(), name, err)
		}
	}

	logger.Debug("HCL loading complete.", "attributes", len(names))
	return cfg, nil
}
