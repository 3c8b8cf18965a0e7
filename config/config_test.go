package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/config"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
	assert.Equal(t, 10, cfg.Search.MinSize)
	assert.True(t, cfg.Input.Header)
	assert.Equal(t, ',', cfg.Input.CommaRune())
	assert.Equal(t, "sqlite", cfg.Store.Driver)
}

func TestLoad_TOML(t *testing.T) {
	path := write(t, "lvclique.toml", `
[input]
edges = "musae_ENGB_edges.csv"
comma = ";"

[search]
min_size = 4
degeneracy_order = true

[store]
driver = "badger"
path = "data/runs"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "musae_ENGB_edges.csv", cfg.Input.Edges)
	assert.Equal(t, ';', cfg.Input.CommaRune())
	assert.True(t, cfg.Input.Header, "unset keys keep defaults")
	assert.Equal(t, 4, cfg.Search.MinSize)
	assert.True(t, cfg.Search.DegeneracyOrder)
	assert.Equal(t, "badger", cfg.Store.Driver)
	assert.Equal(t, 16, cfg.Charts.PerPage)
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "lvclique.yml", `
input:
  targets: target.csv
  header: false
charts:
  enabled: false
  per_page: 4
log:
  level: debug
  development: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "target.csv", cfg.Input.Targets)
	assert.False(t, cfg.Input.Header)
	assert.False(t, cfg.Charts.Enabled)
	assert.Equal(t, 4, cfg.Charts.PerPage)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvMinSize, "3")
	cfg, err := config.Load(write(t, "c.toml", "[search]\nmin_size = 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Search.MinSize)

	t.Setenv(config.EnvMinSize, "three")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(write(t, "c.json", "{}"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(write(t, "bad.toml", "[search\n"))
	assert.Error(t, err)

	cases := map[string]string{
		"negative min size":  "[search]\nmin_size = -1\n",
		"per page too big":   "[charts]\nper_page = 20\n",
		"unknown driver":     "[store]\ndriver = \"postgres\"\n",
		"bad level":          "[log]\nlevel = \"loud\"\n",
		"long comma":         "[input]\ncomma = \";;\"\n",
		"zero width":         "[charts]\nwidth = 0\n",
		"charts without dir": "[charts]\nenabled = true\ndir = \"\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, "c.toml", body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestValidate_MessageNamesField(t *testing.T) {
	cfg := config.Default()
	cfg.Search.MinSize = -2
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "config.search.minsize must be at least 0")
}
