package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invoicekit/pkg/config"
)

type testConfig struct {
	TestString string `env:"TEST_STRING" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL" envDefault:"true"`
}

type durationConfig struct {
	Lifetime time.Duration `env:"TEST_LIFETIME" envDefault:"24h"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING", "test_value")
	t.Setenv("TEST_INT", "100")
	t.Setenv("TEST_BOOL", "false")

	var cfg testConfig
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.Equal(t, false, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	var cfg testConfig
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.Equal(t, true, cfg.TestBool)
}

func TestLoad_Durations(t *testing.T) {
	t.Setenv("TEST_LIFETIME", "168h")

	var cfg durationConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 168*time.Hour, cfg.Lifetime)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_FreshParsePerCall(t *testing.T) {
	t.Setenv("TEST_STRING", "first_value")

	var first testConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first_value", first.TestString)

	t.Setenv("TEST_STRING", "second_value")

	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "second_value", second.TestString)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfig
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
