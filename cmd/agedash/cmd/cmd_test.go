package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/agedash/internal/config"
	"github.com/f3rmion/agedash/internal/dashboard"
	"github.com/f3rmion/agedash/internal/people"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() people.Table {
	return people.NewTable(people.Columns, []people.Record{
		people.NewRecord("US", "M", "30"),
		people.NewRecord("US", "F", "25"),
		people.NewRecord("FR", "M", "40"),
	})
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := Execute()
	return stdout.String(), stderr.String(), err
}

func TestBuildSelection(t *testing.T) {
	tbl := sampleTable()

	sel := buildSelection(tbl, nil, nil)
	assert.Equal(t, []string{"FR", "US"}, sel.Countries)
	assert.Equal(t, []people.Gender{people.GenderMale, people.GenderFemale}, sel.Genders)

	sel = buildSelection(tbl, []string{" US "}, []string{"f"})
	assert.Equal(t, []string{"US"}, sel.Countries)
	assert.Equal(t, []people.Gender{people.GenderFemale}, sel.Genders)
}

func TestWriteSummary(t *testing.T) {
	tbl := sampleTable()

	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, dashboard.Render(tbl, buildSelection(tbl, nil, nil))))
	out := buf.String()

	assert.Contains(t, out, "Individual Ages by Country and Gender")
	assert.Contains(t, out, "Rows: 3")
	assert.Contains(t, out, "FR M")
	assert.Contains(t, out, "blue=Male, red=Female")
	assert.Less(t, strings.Index(out, "FR M"), strings.Index(out, "US F"))
	assert.Less(t, strings.Index(out, "US F"), strings.Index(out, "US M"))
}

func TestWriteSummaryEmptyKeepsLegend(t *testing.T) {
	tbl := sampleTable()

	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, dashboard.Render(tbl, buildSelection(tbl, []string{"DE"}, nil))))

	assert.Contains(t, buf.String(), "(no rows)")
	assert.Contains(t, buf.String(), "(none)")
	assert.Contains(t, buf.String(), "Gender: blue=Male, red=Female")
}

func TestWriteInspect(t *testing.T) {
	tbl := people.NewTable(people.Columns, []people.Record{
		people.NewRecord("US", "M", "30"),
		people.NewRecord("US", "X", "25"),
	})

	var buf bytes.Buffer
	require.NoError(t, writeInspect(&buf, tbl))
	out := buf.String()

	assert.Contains(t, out, "Columns: Country, Gender, Age")
	assert.Contains(t, out, "Rows: 2")
	assert.Contains(t, out, "Countries (1):")
	assert.Contains(t, out, "(no color)")
}

func TestLoadTableMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.DataFile = filepath.Join(t.TempDir(), "country_data.csv")

	_, err := loadTable(t.Context(), cfg)
	require.Error(t, err)

	var buf bytes.Buffer
	printError(&buf, err)
	assert.Equal(t, "File '"+cfg.DataFile+"' not found in the working directory.\n", buf.String())
}

func TestExecuteMissingFile(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "country_data.csv")

	stdout, stderr, err := execute(t, "show", "--config", dir, "--file", missing)
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Equal(t, "File '"+missing+"' not found in the working directory.\n", stderr)
}

func TestExecuteExport(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "country_data.csv")
	require.NoError(t, os.WriteFile(data, []byte("Country, Gender, Age\nUS,M,30\nUS,F,25\nFR,M,40\n"), 0644))
	out := filepath.Join(dir, "ages.svg")

	stdout, _, err := execute(t, "export", "--config", dir, "--file", data, "--output", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 3 bars to "+out)

	svg, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestExecuteInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "agedash")

	stdout, _, err := execute(t, "init", "--config", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created")

	cfg, err := config.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, _, err = execute(t, "init", "--config", dir)
	assert.Error(t, err)
}
