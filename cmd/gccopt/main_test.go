package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/fatih/color"
	"github.com/shibukawa/gccopt"
	"github.com/shibukawa/gccopt/query"
	"github.com/shibukawa/gccopt/testhelper"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	err := run(args, &stdout, &stderr)

	return stdout.String(), stderr.String(), err
}

// withFixtures prefixes args with a missing config file and the given fixtures.
func withFixtures(t *testing.T, fixtures []string, args ...string) []string {
	t.Helper()

	result := []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}
	for _, name := range fixtures {
		result = append(result, "-f", testhelper.FixtureFile(t, name))
	}

	return append(result, args...)
}

var allFixtures = []string{"common.opt", "c.opt"}

func TestShow(t *testing.T) {
	stdout, _, err := runCLI(t, withFixtures(t, allFixtures, "show", "--", "-Wall")...)
	assert.NoError(t, err)
	assert.Contains(t, stdout, "-Wall [warning]\n")
	assert.Contains(t, stdout, "  enables:    -Wunused, -Wformat=, -Wimplicit, -Wsign-compare\n")
	assert.Contains(t, stdout, "  Enable most warning messages.\n")
}

func TestShow_UnmatchedNamesDoNotStopOthers(t *testing.T) {
	stdout, stderr, err := runCLI(t, withFixtures(t, allFixtures, "show", "Wnope", "Wall")...)
	assert.IsError(t, err, ErrQueriesFailed)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, stderr, "Wnope")
	assert.Contains(t, stdout, "-Wall [warning]")
}

func TestShow_WhereAndFormat(t *testing.T) {
	stdout, _, err := runCLI(t, withFixtures(t, allFixtures, "show", "--where", "warning && default_on", "-o", "json")...)
	assert.NoError(t, err)

	var entries []query.Entry
	assert.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, "Woverflow", entries[0].Name)
	assert.True(t, entries[0].DefaultOn)
}

func TestShow_PatternAndLanguage(t *testing.T) {
	stdout, _, err := runCLI(t, withFixtures(t, allFixtures, "show", "Wimplicit.*", "Wsign-compare", "--lang", "C++", "-o", "json")...)
	assert.NoError(t, err)

	var entries []query.Entry
	assert.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, "Wsign-compare", entries[0].Name)
}

func TestShow_Errors(t *testing.T) {
	_, _, err := runCLI(t, withFixtures(t, allFixtures, "show", "--where", "name")...)
	assert.IsError(t, err, gccopt.ErrInvalidFilter)

	_, _, err = runCLI(t, withFixtures(t, allFixtures, "show", "-o", "csv")...)
	assert.IsError(t, err, gccopt.ErrUnsupportedFormat)
}

func TestUnreported(t *testing.T) {
	stdout, _, err := runCLI(t, withFixtures(t, allFixtures, "unreported")...)
	assert.NoError(t, err)
	assert.Equal(t, "-Wlarger-than=\n-Wshadow\n-Wstrict-overflow=\n-Wtraditional\n-Wunused-parameter\n", stdout)
}

func TestUnreported_UmbrellaFlag(t *testing.T) {
	stdout, _, err := runCLI(t, withFixtures(t, []string{"common.opt"}, "unreported", "-u", "Wall", "-o", "json")...)
	assert.NoError(t, err)

	var names []string
	assert.NoError(t, json.Unmarshal([]byte(stdout), &names))
	assert.Equal(t, []string{"Wextra", "Wlarger-than=", "Wmaybe-uninitialized", "Wshadow", "Wstrict-overflow=", "Wuninitialized", "Wunused-parameter"}, names)
}

func TestUnreported_FromConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "gccopt.yaml")

	config := "inputs:\n" +
		"  - \"" + testhelper.FixtureFile(t, "common.opt") + "\"\n" +
		"umbrellas: [Wall, Wextra]\n" +
		"output:\n" +
		"  format: markdown\n"
	assert.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	stdout, _, err := runCLI(t, "--config", configPath, "unreported")
	assert.NoError(t, err)
	assert.Equal(t, "## Unreported warnings\n\n- `-Wlarger-than=`\n- `-Wshadow`\n- `-Wstrict-overflow=`\n- `-Wunused-parameter`\n", stdout)
}

func TestLanguages(t *testing.T) {
	stdout, _, err := runCLI(t, withFixtures(t, allFixtures, "languages")...)
	assert.NoError(t, err)
	assert.Equal(t, "Ada\nC\nC++\nFortran\nObjC\nObjC++\n", stdout)
}

func TestEnums(t *testing.T) {
	stdout, _, err := runCLI(t, withFixtures(t, allFixtures, "enums", "diagnostic_color_rule")...)
	assert.NoError(t, err)
	assert.Contains(t, stdout, "diagnostic_color_rule (int)\n")
	assert.Contains(t, stdout, "DIAGNOSTICS_COLOR_AUTO")

	_, _, err = runCLI(t, withFixtures(t, allFixtures, "enums", "Missing")...)
	assert.IsError(t, err, gccopt.ErrEnumNotFound)
}

func TestStats(t *testing.T) {
	stdout, stderr, err := runCLI(t, withFixtures(t, allFixtures, "stats", "--details", "-o", "json")...)
	assert.NoError(t, err)

	var summary query.Summary
	assert.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, 22, summary.Options)
	assert.Equal(t, 2, summary.Duplicates)
	assert.Contains(t, stderr, "duplicate definition of -Wshadow")
	assert.Contains(t, stderr, "duplicate definition of -Wall")
}

func TestExport(t *testing.T) {
	output := filepath.Join(t.TempDir(), "options.db")

	stdout, _, err := runCLI(t, withFixtures(t, allFixtures, "export", "--output", output)...)
	assert.NoError(t, err)
	assert.Contains(t, stdout, "Exported 22 options, 1 enums and 9 enables edges")

	db, err := sql.Open("sqlite3", output)
	assert.NoError(t, err)

	defer db.Close()

	var n int
	assert.NoError(t, db.QueryRow("SELECT COUNT(*) FROM opt_options WHERE warning").Scan(&n))
	assert.Equal(t, 20, n)
}

func TestExport_Errors(t *testing.T) {
	_, _, err := runCLI(t, withFixtures(t, allFixtures, "export", "--env", "production")...)
	assert.IsError(t, err, ErrEnvironmentNotFound)

	_, _, err = runCLI(t, withFixtures(t, allFixtures, "export", "--env", "production", "--output", "x.db")...)
	assert.IsError(t, err, ErrOutputAndEnvExclusive)
}

func TestLoad_Errors(t *testing.T) {
	_, _, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "stats")
	assert.IsError(t, err, ErrNoInputFiles)

	broken := filepath.Join(t.TempDir(), "broken.opt")
	assert.NoError(t, os.WriteFile(broken, []byte("Enum\nName(x)\n"), 0o644))

	_, _, err = runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "-f", broken, "stats")
	assert.IsError(t, err, gccopt.ErrMissingProperty)
	assert.IsError(t, err, gccopt.ErrFormat)
	assert.Contains(t, err.Error(), "broken.opt:2")

	_, _, err = runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "-f", filepath.Join(t.TempDir(), "nope.opt"), "stats")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open option file")
}

func TestShow_XML(t *testing.T) {
	stdout, _, err := runCLI(t, withFixtures(t, allFixtures, "show", "Wshadow", "-o", "xml")...)
	assert.NoError(t, err)
	assert.Contains(t, stdout, `<option name="Wshadow" warning="true" default-on="false"`)
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := runCLI(t, withFixtures(t, allFixtures, "-v", "show", "Wall")...)
	assert.NoError(t, err)
	assert.Contains(t, stderr, "Loaded 22 options from 2 files")
	assert.Contains(t, stderr, "level=DEBUG")
}

func TestVersion(t *testing.T) {
	stdout, _, err := runCLI(t, "version")
	assert.NoError(t, err)
	assert.Equal(t, "gccopt v0.1.0\n", stdout)
}

func TestNewLogger(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer

	assert.True(t, newLogger(&buf, true, false).Enabled(ctx, slog.LevelDebug))
	assert.False(t, newLogger(&buf, false, false).Enabled(ctx, slog.LevelInfo))
	assert.True(t, newLogger(&buf, false, false).Enabled(ctx, slog.LevelWarn))
	assert.False(t, newLogger(&buf, false, true).Enabled(ctx, slog.LevelWarn))
}
