package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/config"
	"github.com/dmitrymomot/namekit/pkg/groupname"
)

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigFresh struct {
	Value string `env:"FRESH_VALUE" envDefault:"unset"`
}

type TestConfigFile struct {
	Value string `env:"FILE_VALUE"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	cfg, err := config.Load[TestConfigSuccess]()

	require.NoError(t, err, "Load should not return an error with valid environment variables")
	assert.Equal(t, "test_value", cfg.TestString, "TestString should match environment variable")
	assert.Equal(t, 100, cfg.TestInt, "TestInt should match environment variable")
	assert.Equal(t, false, cfg.TestBool, "TestBool should match environment variable")
}

func TestLoad_DefaultValues(t *testing.T) {
	// Clean environment variables to ensure defaults are used
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	cfg, err := config.Load[TestConfigDefault]()

	require.NoError(t, err, "Load should not return an error when using default values")
	assert.Equal(t, "default_value", cfg.TestString, "TestString should use default value")
	assert.Equal(t, 42, cfg.TestInt, "TestInt should use default value")
	assert.Equal(t, true, cfg.TestBool, "TestBool should use default value")
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	_, err := config.Load[RequiredConfig]()

	require.Error(t, err, "Load should return an error when a required value is missing")
	assert.True(t, errors.Is(err, config.ErrParsingConfig), "Error should be ErrParsingConfig")
}

func TestLoad_FreshParse(t *testing.T) {
	t.Setenv("FRESH_VALUE", "first_value")

	first, err := config.Load[TestConfigFresh]()
	require.NoError(t, err, "First load should not return an error")

	t.Setenv("FRESH_VALUE", "second_value")

	second, err := config.Load[TestConfigFresh]()
	require.NoError(t, err, "Second load should not return an error")

	assert.Equal(t, "first_value", first.Value, "First load should see the initial value")
	assert.Equal(t, "second_value", second.Value, "Second load should see the updated value")
}

func TestLoadEnv_File(t *testing.T) {
	os.Unsetenv("FILE_VALUE")
	t.Cleanup(func() { os.Unsetenv("FILE_VALUE") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FILE_VALUE=from_file\n"), 0o600))

	require.NoError(t, config.LoadEnv(path), "LoadEnv should read an existing file")

	cfg, err := config.Load[TestConfigFile]()
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.Value, "Value should come from the env file")
}

func TestLoadEnv_MultipleFiles(t *testing.T) {
	os.Unsetenv("MULTI_SHARED")
	os.Unsetenv("MULTI_SECOND_ONLY")
	t.Cleanup(func() {
		os.Unsetenv("MULTI_SHARED")
		os.Unsetenv("MULTI_SECOND_ONLY")
	})

	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("MULTI_SHARED=from_first\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("MULTI_SHARED=from_second\nMULTI_SECOND_ONLY=present\n"), 0o600))

	require.NoError(t, config.LoadEnv(first, second))

	// Already-set variables keep their values, so the first file wins for
	// keys both files define.
	assert.Equal(t, "from_first", os.Getenv("MULTI_SHARED"))
	assert.Equal(t, "present", os.Getenv("MULTI_SECOND_ONLY"))
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))

	require.Error(t, err, "LoadEnv should fail for a missing file")
	assert.ErrorIs(t, err, config.ErrLoadingEnv, "Error should be ErrLoadingEnv")
}

func TestLoad_NamingConfig(t *testing.T) {
	t.Setenv("GROUPNAME_PREFIX", "acme")
	t.Setenv("GROUPNAME_SUFFIX_LENGTH", "4")
	os.Unsetenv("GROUPNAME_DELIMITER")
	os.Unsetenv("GROUPNAME_SUFFIX_ALPHABET")

	cfg, err := config.Load[groupname.Config]()
	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.Prefix)
	assert.Equal(t, "-", cfg.Delimiter, "Delimiter should fall back to its default")
	assert.Equal(t, 4, cfg.SuffixLength)

	factory, err := groupname.NewFromConfig(cfg,
		groupname.WithSuffixSource(groupname.SuffixFunc(func() string { return "f3e9" })))
	require.NoError(t, err)

	unique, err := factory.Create().UniqueName("web")
	require.NoError(t, err)
	assert.Equal(t, "acme-web-f3e9", unique)
}
