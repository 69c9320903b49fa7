package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustrent-backend/internal/logger"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "log:\n  level: error\nreports:\n  dir: " + filepath.Join(dir, "reports") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", writeConfig(t)}, args...))
	err := root.ExecuteContext(context.Background())
	logger.SetOutput(io.Discard, "error", "text")
	return out.String(), err
}

func TestReportCredit(t *testing.T) {
	outDir := t.TempDir()
	out, err := run(t, "report", "credit", "-o", outDir)
	require.NoError(t, err)

	path := filepath.Join(outDir, "TrustRent_CreditReport_Jordan_Rivera.pdf")
	assert.Contains(t, out, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestReportInvoice(t *testing.T) {
	outDir := t.TempDir()
	_, err := run(t, "report", "invoice", "pay_002", "-o", outDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "TrustRent_Invoice_pay_002.pdf"))

	_, err = run(t, "report", "invoice", "pay_404", "-o", outDir)
	assert.Error(t, err)
}

func TestAdvise(t *testing.T) {
	out, err := run(t, "advise", "--role", "tenant", "How", "is", "my", "credit?")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = run(t, "advise", "--role", "admin", "hello")
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	out, err := run(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "prop_003")
	assert.Contains(t, out, "Total 3, occupied 2, vacant 1, monthly revenue $6000")
}

func TestJobsReminders(t *testing.T) {
	_, err := run(t, "jobs", "reminders")
	assert.NoError(t, err)
}
