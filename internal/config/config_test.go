package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/latestcomment/interview-cards/internal/presenter"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":8080"
score_tiers:
  excellent: 95
  great: 85
  good: 60
session:
  duration_minutes: 30
cards:
  tech_stack_limit: 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, presenter.Thresholds{Excellent: 95, Great: 85, Good: 60}, cfg.ScoreTiers)
	require.Equal(t, 30, cfg.Session.DurationMinutes)
	require.Equal(t, 12, cfg.Session.QuestionCount)
	require.Equal(t, 5, cfg.Cards.TechStackLimit)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":8080\"\n")
	t.Setenv("CARDS_ADDR", ":9999")
	t.Setenv("CARDS_SESSION_QUESTIONS", "7")
	t.Setenv("CARDS_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Server.Addr)
	require.Equal(t, 7, cfg.Session.QuestionCount)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_RejectsAscendingTiers(t *testing.T) {
	path := writeConfig(t, "score_tiers:\n  excellent: 70\n  great: 80\n  good: 90\n")
	_, err := Load(path)
	require.ErrorContains(t, err, "descending")
}

func TestLoad_RejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")
	_, err := Load(path)
	require.ErrorContains(t, err, "parse config")
}

func TestLogConfig_Build(t *testing.T) {
	logger, err := LogConfig{Level: "debug"}.Build()
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = LogConfig{Level: "loud"}.Build()
	require.Error(t, err)
}
