// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/tridiag/numeric"
)

// EnvPrefix prefixes every environment override, e.g. TRIDIAG_BACKEND.
const EnvPrefix = "TRIDIAG"

// Keys.
const (
	KeyAddress     = "address"
	KeyFixturesDir = "fixtures_dir"
	KeyBackend     = "backend"
	KeyPrecision   = "bigfloat_precision"
	KeyDigits      = "decimal_digits"
	KeyCrossCheck  = "cross_check"
	KeyWorkers     = "workers"
	KeyLogLevel    = "log_level"
	KeyTimeout     = "timeout"
)

// Defaults.
const (
	DefaultAddress     = ":8080"
	DefaultFixturesDir = "fixtures/tridiagonal"
	DefaultBackend     = numeric.NameBigFloat
	DefaultWorkers     = 4
	DefaultLogLevel    = "info"
	DefaultTimeout     = time.Minute
)

var (
	// ErrInvalid is wrapped by every Validate failure.
	ErrInvalid = errors.New("config: invalid")
)

// Config is the resolved runtime configuration.
type Config struct {
	Address     string        `mapstructure:"address"`
	FixturesDir string        `mapstructure:"fixtures_dir"`
	Backend     string        `mapstructure:"backend"`
	Precision   uint          `mapstructure:"bigfloat_precision"`
	Digits      uint32        `mapstructure:"decimal_digits"`
	CrossCheck  bool          `mapstructure:"cross_check"`
	Workers     int           `mapstructure:"workers"`
	LogLevel    string        `mapstructure:"log_level"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// New returns a viper instance carrying the defaults and environment binding.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAddress, DefaultAddress)
	v.SetDefault(KeyFixturesDir, DefaultFixturesDir)
	v.SetDefault(KeyBackend, DefaultBackend)
	v.SetDefault(KeyPrecision, numeric.DefaultBigFloatPrecision)
	v.SetDefault(KeyDigits, numeric.DefaultDecimalDigits)
	v.SetDefault(KeyCrossCheck, false)
	v.SetDefault(KeyWorkers, DefaultWorkers)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyTimeout, DefaultTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file at path (any format viper knows by
// extension; "" skips the file), applies environment overrides and validates.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = New()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Default returns the built-in configuration.
func Default() Config {
	c, err := Load(New(), "")
	if err != nil {
		// defaults are constant and valid
		panic(err)
	}

	return c
}

// Validate rejects configurations the runner cannot honour.
func (c Config) Validate() error {
	switch {
	case !numeric.IsBackend(c.Backend):
		return fmt.Errorf("%w: backend %q (want %s)", ErrInvalid, c.Backend, strings.Join(numeric.Backends(), "|"))
	case c.Precision == 0 || c.Precision > big.MaxPrec:
		return fmt.Errorf("%w: %s must be in [1, %d]", ErrInvalid, KeyPrecision, uint64(big.MaxPrec))
	case c.Digits == 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalid, KeyDigits)
	case c.Workers < 1:
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalid, KeyWorkers, c.Workers)
	case c.FixturesDir == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalid, KeyFixturesDir)
	case c.Timeout < 0:
		return fmt.Errorf("%w: %s is negative", ErrInvalid, KeyTimeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogLevel, c.LogLevel)
	}

	return nil
}
