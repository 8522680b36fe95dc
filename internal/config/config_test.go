package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":5000", cfg.Server.Addr)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "@every 30s", cfg.Scheduler.Spec)
	require.Equal(t, 30, cfg.Seed.Players)
	require.Equal(t, int64(5000), cfg.Auction.DefaultRules.MinBidIncrement)
	require.Equal(t, 11, cfg.Auction.DefaultRules.MaxPlayersPerTeam)
	require.Equal(t, int64(500000), cfg.Auction.DefaultRules.InitialBudget)
	require.True(t, cfg.Auction.DefaultRules.AllowAutoBid)
	require.Equal(t, 40.0, cfg.Auction.DefaultRules.MaxAutoBidPercentage)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  addr: ":9090"
log:
  level: debug
auction:
  default_rules:
    min_bid_increment: 2500
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("PORT", "")
	t.Setenv("AUCTION_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, "warn", cfg.Log.Level, "env overrides file")
	require.Equal(t, int64(2500), cfg.Auction.DefaultRules.MinBidIncrement)
	require.Equal(t, 11, cfg.Auction.DefaultRules.MaxPlayersPerTeam, "unset keys keep defaults")
}

func TestLoad_PortFallback(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "7070")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
