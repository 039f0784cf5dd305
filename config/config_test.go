package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.3, cfg.Matching.TruthMaxDR)
	assert.Equal(t, 0.5, cfg.Matching.SeedMaxDR)
	assert.Equal(t, int64(-1), cfg.Run.MaxEvents)
	assert.Equal(t, int64(100), cfg.Run.LogFreq)
	assert.Equal(t, FormatNanoAOD, cfg.Source.Format)
	assert.Equal(t, "Events", cfg.Source.NanoAOD.Tree)
	assert.Equal(t, "Reconstructed", cfg.Source.Proio.RecoTag)
	assert.Equal(t, "GenStable", cfg.Source.Proio.TruthTag)
	assert.Equal(t, "MCParticle", cfg.Source.LCIO.Truth)
	assert.Equal(t, 3.5, cfg.Source.LCIO.BField)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qcd.yaml")
	data := []byte(`
matching:
  seed_max_dr: 0.4
run:
  output: qcd_tuple.csv
source:
  format: lcio
  lcio:
    bfield: 5
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.3, cfg.Matching.TruthMaxDR, "unset keys keep their default")
	assert.Equal(t, 0.4, cfg.Matching.SeedMaxDR)
	assert.Equal(t, "qcd_tuple.csv", cfg.Run.Output)
	assert.Equal(t, FormatLCIO, cfg.Source.Format)
	assert.Equal(t, "Tracks", cfg.Source.LCIO.Tracks)
	assert.Equal(t, 5.0, cfg.Source.LCIO.BField)
	assert.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("matching: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"negative truth cutoff", func(c *Config) { c.Matching.TruthMaxDR = -0.1 }},
		{"negative seed cutoff", func(c *Config) { c.Matching.SeedMaxDR = -0.1 }},
		{"zero log frequency", func(c *Config) { c.Run.LogFreq = 0 }},
		{"no output", func(c *Config) { c.Run.Output = "" }},
		{"unknown format", func(c *Config) { c.Source.Format = "hepmc" }},
		{"no tree", func(c *Config) { c.Source.NanoAOD.Tree = "" }},
		{"no reco tag", func(c *Config) {
			c.Source.Format = FormatProio
			c.Source.Proio.RecoTag = ""
		}},
		{"no field", func(c *Config) {
			c.Source.Format = FormatLCIO
			c.Source.LCIO.BField = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestWriteYAML(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Matching.TruthMaxDR = 0.2

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
