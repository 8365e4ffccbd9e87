package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/kitchenconv/internal/catalog"
	"github.com/vk/kitchenconv/internal/convert"
	"github.com/vk/kitchenconv/internal/request"
)

func newTestApp(t *testing.T, cfg Config) (*App, *Config, *bytes.Buffer) {
	t.Helper()
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a, err := NewApp(out, &bytes.Buffer{}, appConfig)
	require.NoError(t, err)
	return a, appConfig, out
}

func TestRun_Conversion(t *testing.T) {
	t.Parallel()

	a, cfg, out := newTestApp(t, Config{Args: []string{"1", "cup", "to", "ml"}})
	require.NoError(t, a.Run(context.Background(), cfg))
	assert.Equal(t, "  1 cup is 236.6 ml\n", out.String())
}

func TestRun_ConversionWithSubstance(t *testing.T) {
	t.Parallel()

	a, cfg, out := newTestApp(t, Config{Args: []string{"1", "cup", "butter", "to", "g"}})
	require.NoError(t, a.Run(context.Background(), cfg))
	assert.Equal(t, "  1 cup of butter is 226.805 g\n", out.String())
}

func TestRun_ErrorsAreTyped(t *testing.T) {
	t.Parallel()

	t.Run("unknown unit", func(t *testing.T) {
		t.Parallel()
		a, cfg, _ := newTestApp(t, Config{Args: []string{"1", "cupp", "to", "ml"}})
		err := a.Run(context.Background(), cfg)

		var unknown *catalog.UnknownUnitError
		require.ErrorAs(t, err, &unknown)
		assert.NotEmpty(t, unknown.Suggestions)
	})

	t.Run("missing substance", func(t *testing.T) {
		t.Parallel()
		a, cfg, _ := newTestApp(t, Config{Args: []string{"1", "cup", "to", "g"}})
		err := a.Run(context.Background(), cfg)

		var missing *convert.MissingSubstanceError
		require.ErrorAs(t, err, &missing)
	})

	t.Run("substance mismatch", func(t *testing.T) {
		t.Parallel()
		a, cfg, _ := newTestApp(t, Config{Args: []string{"1", "cup", "butter", "to", "g", "flour"}})
		err := a.Run(context.Background(), cfg)

		var mismatch *request.SubstanceMismatchError
		require.ErrorAs(t, err, &mismatch)
	})
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	a, cfg, out := newTestApp(t, Config{List: true})
	require.NoError(t, a.Run(context.Background(), cfg))
	assert.Contains(t, out.String(), "volume units:")
	assert.Contains(t, out.String(), "butter")
}

func TestNewApp_CatalogOverlay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pantry.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
substance "honey" {
  density = 1.42
}
`), 0o600))

	a, cfg, out := newTestApp(t, Config{
		Catalogs: []string{path},
		Args:     []string{"1", "cup", "of", "honey", "to", "g"},
	})
	require.NoError(t, a.Run(context.Background(), cfg))
	assert.Contains(t, out.String(), "1 cup of honey is")

	d, err := a.Catalog().Density("honey")
	require.NoError(t, err)
	assert.Equal(t, 1.42, d)
}

func TestNewApp_BadOverlayFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`unit "x" {`), 0o600))

	appConfig, err := NewConfig(Config{
		Catalogs: []string{path},
		Args:     []string{"1", "cup", "to", "ml"},
	})
	require.NoError(t, err)

	_, err = NewApp(&bytes.Buffer{}, &bytes.Buffer{}, appConfig)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load catalog overlays")
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults are applied", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{Args: []string{"1", "kg", "to", "lb"}})
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("requires args unless listing", func(t *testing.T) {
		t.Parallel()
		_, err := NewConfig(Config{})
		require.Error(t, err)

		_, err = NewConfig(Config{List: true})
		require.NoError(t, err)
	})
}
