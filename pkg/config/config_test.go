package config_test

import (
	"os"
	"testing"

	"github.com/jhoicas/invoice-core/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_NAME", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "invoice-core", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_NAME", "facturacion")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "facturacion", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
