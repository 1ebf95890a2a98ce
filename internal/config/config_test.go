package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/betweenness/centrality"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Epsilon", cfg.Epsilon, centrality.DefaultEpsilon},
		{"MaxPaths", cfg.MaxPaths, 0},
		{"Membership", cfg.Membership, "inclusive"},
		{"Verbose", cfg.Verbose, false},
		{"Graph", cfg.Graph, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SBC_MAX_PATHS", "50")
	t.Setenv("SBC_MEMBERSHIP", "interior")

	v := viper.New()
	require.NoError(t, Init(v, "", t.TempDir()))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.MaxPaths)
	assert.Equal(t, "interior", cfg.Membership)
}

func TestInit_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sbc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("epsilon: 0.001\nverbose: true\n"), 0o600))

	v := viper.New()
	require.NoError(t, Init(v, path, ""))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 0.001, cfg.Epsilon)
	assert.True(t, cfg.Verbose)
}

func TestInit_ExplicitFileMissing(t *testing.T) {
	v := viper.New()
	err := Init(v, filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key string
		val any
	}{
		{KeyEpsilon, -1.0},
		{KeyMaxPaths, -3},
		{KeyMembership, "strict"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)
			_, err := Load(v)
			assert.Error(t, err)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := Config{Epsilon: 0.5, MaxPaths: 3, Membership: "interior"}

	o := centrality.DefaultOptions()
	for _, fn := range cfg.Options() {
		fn(&o)
	}
	assert.Equal(t, 0.5, o.Epsilon)
	assert.Equal(t, 3, o.MaxPaths)
	assert.Equal(t, centrality.Interior, o.Membership)
}
