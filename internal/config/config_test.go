package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 25, cfg.Rounds)
	assert.Equal(t, 100000, cfg.SieveBound)
	assert.Equal(t, int64(2), cfg.Exclusion.From)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Rounds, cfg.Rounds)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q47.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rounds: 40
seed: 7
sieve_bound: 5000
exclusion:
  from: 2
  to: 100
quadruplet_starts: [117309848]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Rounds)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 5000, cfg.SieveBound)
	assert.Equal(t, int64(100), cfg.Exclusion.To)
	assert.Equal(t, []int64{117309848}, cfg.QuadrupletStarts)
	assert.Equal(t, Default().Workers, cfg.Workers, "unset fields keep defaults")
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero rounds":     "rounds: 0",
		"tiny sieve":      "sieve_bound: 1",
		"bad exclusion":   "exclusion: {from: 1, to: 10}",
		"empty exclusion": "exclusion: {from: 10, to: 5}",
		"bad start":       "quadruplet_starts: [1]",
		"not yaml":        "rounds: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "q47.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestStartsFallback(t *testing.T) {
	cfg := Default()
	fallback := []int64{5, 7}
	assert.Equal(t, fallback, cfg.Starts(fallback))

	cfg.QuadrupletStarts = []int64{11}
	assert.Equal(t, []int64{11}, cfg.Starts(fallback))
}
