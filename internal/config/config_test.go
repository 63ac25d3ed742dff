package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wayfare.yaml")
	body := `
scoring:
  rating_weight: 0.40
  price_weight: 0.25
  distance_weight: 0.10
  cuisine_weight: 0.15
  popularity_weight: 0.10
  viability_floor: 0.5
slots:
  fallback_step_min: 15
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.40, cfg.Scoring.RatingWeight)
	assert.Equal(t, 0.5, cfg.Scoring.ViabilityFloor)
	assert.Equal(t, 15, cfg.Slots.FallbackStepMin)
	assert.Equal(t, 3, cfg.Slots.FallbackTries, "unset field keeps default")
}

func TestLoad_RejectsBadWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wayfare.yaml")
	body := `
scoring:
  rating_weight: 0.9
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "sum to 1.0")
}
