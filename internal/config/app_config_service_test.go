package config

import (
	"os"
	"path/filepath"
	"testing"

	"strategy-commander/internal/features/config/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_config.json")
	service := NewAppConfigService(path)

	saved := &domain.AppConfig{
		DefaultProduct: "Acme Tracker",
		PhasePrompts: map[string]string{
			"market_research": "Research the market for {product}.",
		},
		PhaseParams: map[string]domain.ModelParams{
			"quality": {Temperature: 0.3, MaxTokens: 600},
		},
	}
	require.NoError(t, service.SaveAppConfig(saved))

	loaded, err := service.LoadAppConfig()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, loaded)
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	service := NewAppConfigService(filepath.Join(t.TempDir(), "does_not_exist.json"))

	loaded, err := service.LoadAppConfig()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadAppConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	service := NewAppConfigService(path)
	_, err := service.LoadAppConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}
