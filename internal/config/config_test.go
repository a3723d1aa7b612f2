package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	cfg := Load()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.ListenAddr)
	assert.NotEmpty(t, cfg.DBPath)
	assert.NotEmpty(t, cfg.AssetBaseURL)
	assert.Equal(t, DefaultPointImageURL, cfg.PointImageURL)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("DB_PATH", "/custom/ecopontos.db")
	t.Setenv("ASSET_BASE_URL", "https://cdn.example.com/assets")
	t.Setenv("POINT_IMAGE_URL", "https://cdn.example.com/default.jpg")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/custom/ecopontos.db", cfg.DBPath)
	assert.Equal(t, "https://cdn.example.com/assets", cfg.AssetBaseURL)
	assert.Equal(t, "https://cdn.example.com/default.jpg", cfg.PointImageURL)
}
