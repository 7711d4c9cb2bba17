package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/tankhah/internal/app"
	"github.com/hance08/tankhah/internal/config"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	a, err := app.NewApp(config.NewDefault())
	require.NoError(t, err)
	return a
}

func TestConfigFlag(t *testing.T) {
	assert.Equal(t, "a.yaml", configFlag([]string{"list", "--config", "a.yaml"}))
	assert.Equal(t, "b.yaml", configFlag([]string{"-c", "b.yaml", "info"}))
	assert.Equal(t, "c.yaml", configFlag([]string{"--config=c.yaml"}))
	assert.Empty(t, configFlag([]string{"list", "--config"}))
	assert.Empty(t, configFlag(nil))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Invalid month", capitalize("invalid month"))
	assert.Equal(t, "", capitalize(""))
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd(newTestApp(t))

	for _, name := range []string{"dashboard", "monthly", "list", "show", "add", "delete", "export", "print", "info"} {
		c, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}

func TestAddCmd_FlagsMode(t *testing.T) {
	a := newTestApp(t)
	root := NewRootCmd(a)
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	root.SetArgs([]string{"add", "--type", "expense", "--amount", "150", "--account", "saman_shahin",
		"--category", "lunch", "--desc", "چای", "--date", "1403/01/05"})
	require.NoError(t, root.Execute())

	txs := a.Service.Ledger.All()
	require.Len(t, txs, 5)
	assert.Equal(t, int64(1500), txs[0].Amount)
	assert.Equal(t, "1403/01/05", txs[0].Date)
}

func TestAddCmd_Invalid(t *testing.T) {
	a := newTestApp(t)
	root := NewRootCmd(a)
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	root.SetArgs([]string{"add", "--amount", "abc", "--desc", "x"})
	assert.Error(t, root.Execute())
	assert.Equal(t, 4, a.Service.Ledger.Count())
}

func TestDeleteCmd(t *testing.T) {
	a := newTestApp(t)
	root := NewRootCmd(a)
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	root.SetArgs([]string{"delete", "--yes", "2"})
	require.NoError(t, root.Execute())
	assert.Equal(t, 3, a.Service.Ledger.Count())

	root.SetArgs([]string{"delete", "--yes", "missing"})
	require.NoError(t, root.Execute())
	assert.Equal(t, 3, a.Service.Ledger.Count())
}

func TestMonthlyRunner_Month(t *testing.T) {
	svc := newTestApp(t).Service

	r := &monthlyRunner{svc: svc, flags: &monthlyFlags{Month: 3}}
	m, err := r.month()
	require.NoError(t, err)
	assert.Equal(t, 2, m)

	r.flags.Month = 13
	_, err = r.month()
	assert.Error(t, err)
}

func TestListCmd_InvalidType(t *testing.T) {
	root := NewRootCmd(newTestApp(t))
	root.SetArgs([]string{"list", "--type", "transfer"})
	assert.Error(t, root.Execute())
}

func TestExportCmd(t *testing.T) {
	a := newTestApp(t)
	root := NewRootCmd(a)
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	dir := t.TempDir()
	root.SetArgs([]string{"export", "--dir", dir, "--year", "1402"})
	require.NoError(t, root.Execute())

	_, err := os.Stat(filepath.Join(dir, "گزارش-تنخواه-1402.csv"))
	assert.NoError(t, err)
}

func TestPrintCmd_ToFile(t *testing.T) {
	a := newTestApp(t)
	root := NewRootCmd(a)

	out := filepath.Join(t.TempDir(), "dashboard.txt")
	root.SetArgs([]string{"print", "--view", "list", "--out", out})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(data, []byte("قبض برق")))
	assert.False(t, bytes.Contains(data, []byte("\x1b[")))
}

func TestPrintCmd_DashboardToFile(t *testing.T) {
	root := NewRootCmd(newTestApp(t))

	out := filepath.Join(t.TempDir(), "dashboard.txt")
	root.SetArgs([]string{"print", "--out", out})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(data, []byte("Petty Cash")))
	assert.True(t, bytes.Contains(data, []byte("4 transactions")))
}

func TestRedirectOutput_Restores(t *testing.T) {
	info := pterm.Info

	var buf bytes.Buffer
	restore := redirectOutput(&buf)
	pterm.Info.Println("redirected")
	restore()

	assert.Contains(t, buf.String(), "redirected")
	assert.Equal(t, info.Writer, pterm.Info.Writer)
}

func TestPrintCmd_UnknownView(t *testing.T) {
	root := NewRootCmd(newTestApp(t))
	root.SetArgs([]string{"print", "--view", "chart"})
	assert.Error(t, root.Execute())
}
