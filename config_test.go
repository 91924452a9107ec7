package gccopt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"Wall", "Wextra"}, config.Umbrellas)
	assert.Equal(t, "text", config.Output.Format)
	assert.True(t, config.Output.ColorEnabled())
	assert.Equal(t, "options.db", config.Export.Output)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gccopt.yaml")
	content := `
inputs:
  - common.opt
  - c-family/c.opt
umbrellas: [Wall]
output:
  format: yaml
  color: false
databases:
  ci:
    driver: pgx
    connection: postgres://localhost/options
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, []string{"common.opt", "c-family/c.opt"}, config.Inputs)
	assert.Equal(t, []string{"Wall"}, config.Umbrellas)
	assert.Equal(t, "yaml", config.Output.Format)
	assert.False(t, config.Output.ColorEnabled())
	assert.Equal(t, "pgx", config.Databases["ci"].Driver)
}

func TestParseConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown format", "output:\n  format: csv\n"},
		{"empty umbrella name", "umbrellas: [Wall, \"\"]\n"},
		{"unsupported driver", "databases:\n  prod:\n    driver: oracle\n    connection: x\n"},
		{"missing connection", "databases:\n  prod:\n    driver: sqlite3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.content))
			assert.IsError(t, err, ErrConfigValidation)
		})
	}
}

func TestParseConfig_UnknownFieldRejected(t *testing.T) {
	_, err := ParseConfig([]byte("umbrella: [Wall]\n"))
	assert.Error(t, err)
}

func TestParseConfig_ExpandsEnvironment(t *testing.T) {
	t.Setenv("GCCOPT_TEST_DIR", "/tmp/gcc")

	config, err := ParseConfig([]byte("inputs: [\"${GCCOPT_TEST_DIR}/common.opt\"]\nexport:\n  output: $GCCOPT_TEST_DIR/options.db\n"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"/tmp/gcc/common.opt"}, config.Inputs)
	assert.Equal(t, "/tmp/gcc/options.db", config.Export.Output)
}

func TestParseConfig_ValidatesExpandedDriver(t *testing.T) {
	data := []byte("databases:\n  local:\n    driver: ${GCCOPT_TEST_DRIVER}\n    connection: options.db\n")

	t.Setenv("GCCOPT_TEST_DRIVER", "sqlite3")

	config, err := ParseConfig(data)
	assert.NoError(t, err)
	assert.Equal(t, "sqlite3", config.Databases["local"].Driver)

	t.Setenv("GCCOPT_TEST_DRIVER", "oracle")

	_, err = ParseConfig(data)
	assert.IsError(t, err, ErrConfigValidation)
}

func TestDialectForDriver(t *testing.T) {
	tests := []struct {
		driver      string
		dialect     Dialect
		placeholder string
	}{
		{"sqlite3", DialectSQLite, "?"},
		{"pgx", DialectPostgres, "$2"},
		{"mysql", DialectMySQL, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := DialectForDriver(tt.driver)
			assert.NoError(t, err)
			assert.Equal(t, tt.dialect, d)
			assert.Equal(t, tt.placeholder, d.Placeholder(2))
		})
	}

	_, err := DialectForDriver("oracle")
	assert.IsError(t, err, ErrUnsupportedDriver)
}
