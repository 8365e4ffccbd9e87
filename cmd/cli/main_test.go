package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/kitchenconv/internal/catalog"
	"github.com/vk/kitchenconv/internal/cli"
)

func TestRun_Conversion(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	err := run(out, errOut, []string{"3/4", "cup", "to", "ml"})
	require.NoError(t, err)
	assert.Equal(t, "  3/4 cup is 177.45 ml\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_NegativeQuantity(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	// -40 is the point where the two scales agree; the leading dash must
	// reach the token classifier instead of the flag parser.
	err := run(out, &bytes.Buffer{}, []string{"-40", "f", "in", "c"})
	require.NoError(t, err)
	assert.Equal(t, "  -40 f is -40 c\n", out.String())
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	err := run(out, &bytes.Buffer{}, []string{"-h"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_TooFewArguments(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"10", "kg"})
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, out.String(), "usage examples:")
}

func TestRun_UnknownUnitCarriesSuggestions(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"1", "cupp", "to", "ml"})
	require.Error(t, err)

	var unknown *catalog.UnknownUnitError
	require.ErrorAs(t, err, &unknown)

	errOut := &bytes.Buffer{}
	printSuggestions(errOut, err)
	assert.Contains(t, errOut.String(), "did you mean (closest first):")
	assert.Contains(t, errOut.String(), "cup")
}

func TestRun_BadOverlayFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`unit "x" {`), 0o600))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-catalog", path, "1", "cup", "to", "ml"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load catalog overlays")
}

func TestPrintSuggestions_SilentForOtherErrors(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"1", "cup", "to", "g"})
	require.Error(t, err)

	errOut := &bytes.Buffer{}
	printSuggestions(errOut, err)
	assert.Empty(t, errOut.String())
}
