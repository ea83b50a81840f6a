package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ec2inventory/internal/models"
	"ec2inventory/internal/report"
	"ec2inventory/pkg/logging"
)

// isolate keeps the developer's config file and environment out of the test
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("EC2INVENTORY_REGION", "")
	t.Setenv("EC2INVENTORY_CREDENTIALS", "")
	t.Setenv("EC2INVENTORY_CONFIG", "")
}

// writeReport exports a one-instance inventory and returns its path
func writeReport(t *testing.T) string {
	t.Helper()
	exporter := report.NewXLSXExporter(t.TempDir(), logging.NewMockLogger())
	path, err := exporter.Export([]models.InstanceRecord{
		{Name: "web-1", InstanceID: "i-1234567890abcdef0", InstanceType: "t2.micro", State: "running", PrivateIP: "10.0.1.15", Architecture: "x86_64"},
	}, time.Date(2026, time.October, 18, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestShow_Table(t *testing.T) {
	isolate(t)
	path := writeReport(t)

	out, _, err := execute(t, "", "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "web-1")
	assert.Contains(t, out, "i-1234567890abcdef0")
	assert.Contains(t, out, "Total: 1 instances")
}

func TestShow_JSON(t *testing.T) {
	isolate(t)
	path := writeReport(t)

	out, _, err := execute(t, "", "show", path, "--format", "json")
	require.NoError(t, err)

	var decoded report.InventoryReport
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, path, decoded.Source)
	assert.Equal(t, 1, decoded.Count)
}

func TestShow_MissingFile(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "", "show", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.True(t, report.IsExportError(err))
	assert.Equal(t, exitError, run([]string{"show", filepath.Join(t.TempDir(), "missing.xlsx")}))
}

func TestShow_RequiresFile(t *testing.T) {
	isolate(t)

	_, _, err := execute(t, "", "show")
	assert.Error(t, err)
}

func TestExport_InvalidConfiguration(t *testing.T) {
	isolate(t)

	assert.Equal(t, exitError, run([]string{"--credentials", "vault"}))
	assert.Equal(t, exitError, run([]string{"--retries", "-3"}))
}

func TestExport_PromptsForRegion(t *testing.T) {
	isolate(t)

	_, stderr, err := execute(t, "", "--credentials", "env")
	require.Error(t, err, "no region typed")
	assert.Contains(t, stderr, regionPrompt)
}

func TestExitCodeError(t *testing.T) {
	cause := errors.New("permission_denied: Access denied")
	err := &exitCodeError{code: exitListingFailed, err: cause}

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
}
