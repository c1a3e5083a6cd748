// SPDX-License-Identifier: MIT

package config_test

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/tridiag/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Equal(t, ":8080", c.Address)
	assert.Equal(t, "fixtures/tridiagonal", c.FixturesDir)
	assert.Equal(t, "bigfloat", c.Backend)
	assert.Equal(t, uint(1024), c.Precision)
	assert.Equal(t, uint32(310), c.Digits)
	assert.False(t, c.CrossCheck)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, time.Minute, c.Timeout)
}

func TestLoad_File(t *testing.T) {
	p := writeFile(t, "tridiag.yaml", `
address: "127.0.0.1:9000"
backend: Decimal
decimal_digits: 50
cross_check: true
workers: 2
timeout: 5s
`)
	c, err := config.Load(config.New(), p)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", c.Address)
	assert.Equal(t, "decimal", c.Backend)
	assert.Equal(t, uint32(50), c.Digits)
	assert.True(t, c.CrossCheck)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.Equal(t, uint(1024), c.Precision, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "tridiag.toml", "backend = \"decimal\"\nworkers = 2\n")
	t.Setenv("TRIDIAG_BACKEND", "float64")
	t.Setenv("TRIDIAG_BIGFLOAT_PRECISION", "256")

	c, err := config.Load(config.New(), p)
	require.NoError(t, err)
	assert.Equal(t, "float64", c.Backend)
	assert.Equal(t, uint(256), c.Precision)
	assert.Equal(t, 2, c.Workers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(nil, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

var maxPrec = uint(big.MaxPrec)

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"backend":   func(c *config.Config) { c.Backend = "quad" },
		"precision": func(c *config.Config) { c.Precision = 0 },
		// MaxPrec+1 wraps to 0 where uint is 32 bits; both are rejected
		"precision too large": func(c *config.Config) { c.Precision = maxPrec + 1 },
		"digits":    func(c *config.Config) { c.Digits = 0 },
		"workers":   func(c *config.Config) { c.Workers = 0 },
		"fixtures":  func(c *config.Config) { c.FixturesDir = "" },
		"timeout":   func(c *config.Config) { c.Timeout = -time.Second },
		"log level": func(c *config.Config) { c.LogLevel = "trace" },
	}
	for name, mutate := range cases {
		c := config.Default()
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), config.ErrInvalid, name)
	}
	assert.NoError(t, config.Default().Validate())
}

func TestLoad_RejectsInvalidEnv(t *testing.T) {
	t.Setenv("TRIDIAG_WORKERS", "0")
	_, err := config.Load(config.New(), "")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
