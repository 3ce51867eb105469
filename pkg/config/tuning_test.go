package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/steer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_YAMLOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	content := `
lateral:
  deadband: 0.1
omega:
  exponent: 3
  slew_rate: 0
  limit: 0.5
mix:
  strategy: weighted_sum
  policy: per-axis-clamp
  normalize: true
  limits:
    omega: 2
field_centric: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tun, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.1, tun.Lateral.Deadband)
	assert.Equal(t, 2.0, tun.Lateral.Exponent, "unset keys keep defaults")
	assert.Equal(t, 3.0, tun.Omega.Exponent)
	assert.Equal(t, 0.0, tun.Omega.SlewRate)
	assert.Equal(t, 0.5, tun.Omega.Limit)
	assert.Equal(t, domain.WeightedSum, tun.Mix.Strategy)
	assert.Equal(t, domain.PerAxisClamp, tun.Mix.Policy)
	assert.True(t, tun.Mix.Normalize)
	assert.Equal(t, domain.Limits{Lateral: 1, Axial: 1, Omega: 2}, tun.Mix.Limits)
	assert.True(t, tun.FieldCentric)
	assert.Equal(t, domain.Limits{Lateral: 1, Axial: 1, Omega: 0.5}, tun.OutputLimits())
}

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"axial": {"slew_rate": 3.5}, "mix": {"strategy": "priority"}}`), 0644))

	tun, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.5, tun.Axial.SlewRate)
	assert.Equal(t, domain.PrioritySoftSaturate, tun.Mix.Strategy)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown key", yaml: "lateral:\n  dedband: 0.1\n"},
		{name: "unknown strategy", yaml: "mix:\n  strategy: loudest\n"},
		{name: "exponent below one", yaml: "axial:\n  exponent: 0.5\n"},
		{name: "deadband too large", yaml: "omega:\n  deadband: 1\n"},
		{name: "negative slew", yaml: "omega:\n  slew_rate: -2\n"},
		{name: "zero limit", yaml: "lateral:\n  limit: 0\n"},
		{name: "zero mix limit", yaml: "mix:\n  limits:\n    axial: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), ".yaml")
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidTuning), "got %v", err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_RejectsUnknownEnums(t *testing.T) {
	tun := Default()
	tun.Mix.Policy = domain.OutputLimitPolicy(7)
	assert.True(t, errors.Is(tun.Validate(), domain.ErrUnknownPolicy))

	tun = Default()
	tun.Mix.Strategy = domain.MixStrategy(7)
	assert.True(t, errors.Is(tun.Validate(), domain.ErrUnknownStrategy))
}
