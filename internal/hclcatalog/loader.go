// Package hclcatalog loads unit and substance overlays from .hcl files and
// applies them to a catalog. Overlays let users add units and densities the
// built-in tables do not carry, or shadow built-in entries; files apply in
// sorted order, last write wins.
package hclcatalog

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/kitchenconv/internal/catalog"
	"github.com/vk/kitchenconv/internal/ctxlog"
	"github.com/vk/kitchenconv/internal/fsutil"
)

// Loader reads catalog overlay files.
type Loader struct{}

// NewLoader creates a new overlay loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load applies every overlay found under paths to cat. Each path may be a
// single .hcl file or a directory searched recursively.
func (l *Loader) Load(ctx context.Context, cat *catalog.Catalog, paths ...string) error {
	logger := ctxlog.FromContext(ctx)
	parser := hclparse.NewParser()

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return fmt.Errorf("failed to find catalog files in %s: %w", path, err)
		}
		if len(files) == 0 {
			logger.Warn("No .hcl catalog files found in path.", "path", path)
			continue
		}
		for _, file := range files {
			if err := l.loadFile(ctx, cat, parser, file); err != nil {
				return err
			}
		}
	}

	return nil
}

// loadFile parses one overlay file and applies its blocks to the catalog.
func (l *Loader) loadFile(ctx context.Context, cat *catalog.Catalog, parser *hclparse.Parser, path string) error {
	logger := ctxlog.FromContext(ctx)

	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse catalog file %s: %w", path, diags)
	}

	var parsed catalogFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode catalog file %s: %w", path, diags)
	}

	for _, block := range parsed.Units {
		u, err := translateUnit(block)
		if err != nil {
			return fmt.Errorf("in catalog file %s: %w", path, err)
		}
		cat.SetUnit(block.Name, u)
	}
	for _, block := range parsed.Substances {
		density, err := translateSubstance(block)
		if err != nil {
			return fmt.Errorf("in catalog file %s: %w", path, err)
		}
		cat.SetDensity(block.Name, density)
	}

	logger.Debug("Catalog overlay applied.",
		"path", path, "units", len(parsed.Units), "substances", len(parsed.Substances))
	return nil
}
