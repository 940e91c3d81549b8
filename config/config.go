// Package config implements the configuration of the polyring tool.
package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tuneinsight/polyring/ring"
	"github.com/tuneinsight/polyring/utils"
	"github.com/tuneinsight/polyring/utils/sampling"
)

const (
	defaultN        = 1024
	defaultQ        = 40961
	defaultSigma    = 3.2
	defaultSource   = SourceWyRand
	defaultLogLevel = "NOTICE"
)

// Names of the randomness sources.
const (
	SourceWyRand  = "wyrand"
	SourceBlake2b = "blake2b"
	SourceBlake3  = "blake3"
	SourceCrypto  = "crypto"
)

// Ring is the polynomial ring configuration.
type Ring struct {
	// N is the degree of the ring modulus x^N + 1.
	N int

	// Q is the coefficient modulus.
	Q float64
}

func (rCfg *Ring) applyDefaults() {
	if rCfg.N == 0 {
		rCfg.N = defaultN
	}
	if rCfg.Q == 0 {
		rCfg.Q = defaultQ
	}
}

func (rCfg *Ring) validate() error {
	if _, err := ring.NewRing(rCfg.N, rCfg.Q); err != nil {
		return fmt.Errorf("config: Ring: %w", err)
	}
	return nil
}

// NewRing returns the configured ring.
func (rCfg *Ring) NewRing() (*ring.Ring, error) {
	return ring.NewRing(rCfg.N, rCfg.Q)
}

// Sampling is the randomness configuration.
type Sampling struct {
	// Source is the randomness source, one of "wyrand", "blake2b",
	// "blake3" or "crypto".
	Source string

	// Seed seeds the deterministic sources. It is ignored by "crypto".
	Seed uint64

	// Mean and Sigma are the parameters of the gaussian distribution.
	Mean  float64
	Sigma float64
}

func (sCfg *Sampling) applyDefaults() {
	if sCfg.Source == "" {
		sCfg.Source = defaultSource
	}
	if sCfg.Sigma == 0 {
		sCfg.Sigma = defaultSigma
	}
}

func (sCfg *Sampling) validate() error {
	src := strings.ToLower(sCfg.Source)
	switch src {
	case SourceWyRand, SourceBlake2b, SourceBlake3, SourceCrypto:
	default:
		return fmt.Errorf("config: Sampling: Source '%v' is invalid", sCfg.Source)
	}
	sCfg.Source = src
	if !utils.IsFinite(sCfg.Mean) {
		return fmt.Errorf("config: Sampling: Mean %v is invalid", sCfg.Mean)
	}
	if !utils.IsFinite(sCfg.Sigma) || sCfg.Sigma < 0 {
		return fmt.Errorf("config: Sampling: Sigma %v is invalid", sCfg.Sigma)
	}
	return nil
}

// Key returns the 32-byte key of the keyed sources, the little endian
// encoding of Seed followed by zeroes.
func (sCfg *Sampling) Key() []byte {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, sCfg.Seed)
	return key
}

// NewSource returns the configured randomness source.
func (sCfg *Sampling) NewSource() (sampling.Source, error) {
	switch sCfg.Source {
	case SourceWyRand:
		return sampling.NewWyRand(sCfg.Seed), nil
	case SourceBlake2b:
		prng, err := sampling.NewKeyedPRNG(sCfg.Key())
		if err != nil {
			return nil, err
		}
		return sampling.NewSource(prng), nil
	case SourceBlake3:
		prng, err := sampling.NewBlake3PRNG(sCfg.Key())
		if err != nil {
			return nil, err
		}
		return sampling.NewSource(prng), nil
	case SourceCrypto:
		prng, err := sampling.NewPRNG()
		if err != nil {
			return nil, err
		}
		return sampling.NewSource(prng), nil
	default:
		return nil, fmt.Errorf("config: Sampling: Source '%v' is invalid", sCfg.Source)
	}
}

// Gaussian returns the configured gaussian distribution.
func (sCfg *Sampling) Gaussian() ring.DiscreteGaussian {
	return ring.DiscreteGaussian{Mean: sCfg.Mean, Sigma: sCfg.Sigma}
}

// Logging is the logging configuration.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool

	// File specifies the log file, if omitted stdout will be used.
	File string

	// Level specifies the log level.
	Level string
}

func (lCfg *Logging) validate() error {
	lvl := strings.ToUpper(lCfg.Level)
	switch lvl {
	case "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG":
	case "":
		lvl = defaultLogLevel
	default:
		return fmt.Errorf("config: Logging: Level '%v' is invalid", lCfg.Level)
	}
	lCfg.Level = lvl // Force uppercase.
	return nil
}

// Config is the top level polyring configuration.
type Config struct {
	Ring     *Ring
	Sampling *Sampling
	Logging  *Logging
}

// FixupAndValidate applies defaults to config entries and validates the
// configuration sections.
func (cfg *Config) FixupAndValidate() error {
	if cfg.Ring == nil {
		cfg.Ring = &Ring{}
	}
	if cfg.Sampling == nil {
		cfg.Sampling = &Sampling{}
	}
	if cfg.Logging == nil {
		cfg.Logging = &Logging{}
	}

	cfg.Ring.applyDefaults()
	cfg.Sampling.applyDefaults()

	if err := cfg.Ring.validate(); err != nil {
		return err
	}
	if err := cfg.Sampling.validate(); err != nil {
		return err
	}
	return cfg.Logging.validate()
}

// Default returns the default configuration.
func Default() *Config {
	cfg := new(Config)
	if err := cfg.FixupAndValidate(); err != nil {
		panic(fmt.Errorf("BUG: invalid default configuration: %w", err))
	}
	return cfg
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	if b == nil {
		return nil, errors.New("config: No data")
	}

	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}
