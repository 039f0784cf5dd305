// Package config loads the settings shared by the ntuple producer and the
// plotting commands.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Source formats understood by readtaus.
const (
	FormatNanoAOD = "nanoaod"
	FormatProio   = "proio"
	FormatLCIO    = "lcio"
)

type Config struct {
	Matching MatchingConfig `yaml:"matching"`
	Run      RunConfig      `yaml:"run"`
	Source   SourceConfig   `yaml:"source"`
}

type MatchingConfig struct {
	TruthMaxDR float64 `yaml:"truth_max_dr"`
	SeedMaxDR  float64 `yaml:"seed_max_dr"`
}

type RunConfig struct {
	MaxEvents int64  `yaml:"max_events"` // negative means all
	LogFreq   int64  `yaml:"log_freq"`
	Output    string `yaml:"output"`
}

type SourceConfig struct {
	Format  string        `yaml:"format"`
	NanoAOD NanoAODConfig `yaml:"nanoaod"`
	Proio   ProioConfig   `yaml:"proio"`
	LCIO    LCIOConfig    `yaml:"lcio"`
}

type NanoAODConfig struct {
	Tree string `yaml:"tree"`
}

type ProioConfig struct {
	RecoTag  string `yaml:"reco_tag"`
	TruthTag string `yaml:"truth_tag"`
	SeedTag  string `yaml:"seed_tag"`
}

type LCIOConfig struct {
	Tracks string  `yaml:"tracks"`
	Truth  string  `yaml:"truth"`
	Seeds  string  `yaml:"seeds"`
	BField float64 `yaml:"bfield"` // Tesla
}

// Load reads the YAML file at path on top of the embedded defaults. Keys
// absent from the file keep their default. An empty path yields the
// defaults alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Matching.TruthMaxDR < 0:
		return fmt.Errorf("matching.truth_max_dr must not be negative (got %v)", c.Matching.TruthMaxDR)
	case c.Matching.SeedMaxDR < 0:
		return fmt.Errorf("matching.seed_max_dr must not be negative (got %v)", c.Matching.SeedMaxDR)
	case c.Run.LogFreq <= 0:
		return fmt.Errorf("run.log_freq must be positive (got %d)", c.Run.LogFreq)
	case c.Run.Output == "":
		return fmt.Errorf("run.output is empty")
	}

	switch c.Source.Format {
	case FormatNanoAOD:
		if c.Source.NanoAOD.Tree == "" {
			return fmt.Errorf("source.nanoaod.tree is empty")
		}
	case FormatProio:
		if c.Source.Proio.RecoTag == "" {
			return fmt.Errorf("source.proio.reco_tag is empty")
		}
	case FormatLCIO:
		if c.Source.LCIO.Tracks == "" {
			return fmt.Errorf("source.lcio.tracks is empty")
		}
		if c.Source.LCIO.BField <= 0 {
			return fmt.Errorf("source.lcio.bfield must be positive (got %v)", c.Source.LCIO.BField)
		}
	default:
		return fmt.Errorf("unknown source.format %q", c.Source.Format)
	}
	return nil
}

// WriteYAML saves the configuration, typically next to the output it
// produced.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
