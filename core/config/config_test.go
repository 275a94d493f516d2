package config_test

import (
	"testing"

	"article-stream/core/config"
	"article-stream/core/sources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "api_response.json", cfg.Sources.APIResponseFile)
	assert.Equal(t, "reference_data.xlsx", cfg.Sources.ReferenceDataFile)
	assert.Equal(t, sources.BackendWorkbook, cfg.Sources.ReferenceBackend)
	assert.False(t, cfg.Sources.UseStorage)
	assert.Equal(t, "editorial", cfg.Database.Name)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SOURCES_REFERENCE_BACKEND", "database")
	t.Setenv("SOURCES_USE_STORAGE", "true")
	t.Setenv("DATABASE_NAME", "editorial_test")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, sources.BackendDatabase, cfg.Sources.ReferenceBackend)
	assert.True(t, cfg.Sources.UseStorage)
	assert.Equal(t, "editorial_test", cfg.Database.Name)
}
