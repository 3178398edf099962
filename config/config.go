// Package config parses TOML descriptions of a codec setup and the
// channel experiment to run against it. It works on bytes; reading the
// file is the caller's business.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/yangl1996/error-control-codes/bitstring"
	"github.com/yangl1996/error-control-codes/channel"
)

// Config selects one error-control scheme and the experiment
// parameters. Generator is only read for the crc scheme, BlockWidth
// only for checksum.
type Config struct {
	Scheme     string  `toml:"scheme"`
	DataLen    int     `toml:"data_len"`
	BlockWidth int     `toml:"block_width"`
	Generator  string  `toml:"generator"`
	BER        float64 `toml:"ber"`
	Trials     int     `toml:"trials"`
	Seed       uint64  `toml:"seed"`
}

const (
	defaultDataLen = 64
	defaultTrials  = 100
)

// Parse decodes and validates a TOML document. Omitted data_len and
// trials fall back to defaults; everything else must be explicit.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DataLen == 0 {
		cfg.DataLen = defaultDataLen
	}
	if cfg.Trials == 0 {
		cfg.Trials = defaultTrials
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the scheme and its parameters.
func (c *Config) Validate() error {
	switch c.Scheme {
	case "checksum":
		if c.BlockWidth <= 0 {
			return fmt.Errorf("checksum scheme needs block_width > 0, got %d", c.BlockWidth)
		}
	case "crc":
		g, err := bitstring.Parse(c.Generator)
		if err != nil {
			return fmt.Errorf("crc generator: %w", err)
		}
		if len(g) < 2 || g[0] != 1 {
			return fmt.Errorf("crc generator %q must start with 1 and have degree >= 1", c.Generator)
		}
	case "hamming":
		// no parameters
	case "":
		return fmt.Errorf("missing scheme")
	default:
		return fmt.Errorf("unknown scheme %q", c.Scheme)
	}
	if c.DataLen <= 0 {
		return fmt.Errorf("data_len must be positive, got %d", c.DataLen)
	}
	if c.BER < 0 || c.BER > 1 {
		return fmt.Errorf("ber %v outside [0, 1]", c.BER)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	return nil
}

// Detector builds the configured scheme's adapter.
func (c *Config) Detector() (channel.Detector, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Scheme {
	case "checksum":
		return channel.ChecksumDetector{BlockWidth: c.BlockWidth}, nil
	case "crc":
		g, err := bitstring.Parse(c.Generator)
		if err != nil {
			return nil, err
		}
		return channel.CRCDetector{Generator: g}, nil
	case "hamming":
		return channel.HammingDetector{}, nil
	default:
		return nil, fmt.Errorf("unknown scheme %q", c.Scheme)
	}
}

// Experiment builds the configured experiment. A nil logger disables
// per-trial logging.
func (c *Config) Experiment(logger *zerolog.Logger) (channel.Experiment, error) {
	d, err := c.Detector()
	if err != nil {
		return channel.Experiment{}, err
	}
	return channel.Experiment{
		Detector: d,
		DataLen:  c.DataLen,
		BER:      c.BER,
		Trials:   c.Trials,
		Seed:     c.Seed,
		Logger:   logger,
	}, nil
}
