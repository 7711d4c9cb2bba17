package app

import (
	"testing"
	"time"

	"github.com/hance08/tankhah/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 23, 12, 0, 0, 0, time.UTC)
}

func TestNewApp_Seeded(t *testing.T) {
	a, err := newApp(config.NewDefault(), fixedClock)
	require.NoError(t, err)

	assert.Equal(t, 4, a.Store.Len())
	assert.Equal(t, 4, a.Service.Ledger.Count())
	assert.Equal(t, 0, a.Service.Report.CurrentMonth())
}

func TestNewApp_Empty(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Ledger.Seed = false

	a, err := newApp(cfg, fixedClock)
	require.NoError(t, err)

	assert.Zero(t, a.Store.Len())
	d := a.Service.Report.Dashboard()
	assert.Zero(t, d.Totals.Balance)
	assert.Len(t, d.Weekly, 7)
	assert.Len(t, a.Service.Report.Monthly(), 12)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Ledger.Calendar = "lunar"

	_, err := NewApp(cfg)
	assert.Error(t, err)
}
