package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkillQuest_Go/internal/config"
	"github.com/osse101/SkillQuest_Go/internal/domain"
	"github.com/osse101/SkillQuest_Go/internal/xprules"
)

func rulesConfig(t *testing.T, rulesYAML string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xp_rules.yaml")
	if rulesYAML != "" {
		require.NoError(t, os.WriteFile(path, []byte(rulesYAML), 0o600))
	}
	return &config.Config{
		XPRulesPath:       path,
		XPRulesSchemaPath: config.ConfigPathXPRulesSchema,
	}
}

func TestLoadXPRules(t *testing.T) {
	t.Run("missing file falls back to built-in rules", func(t *testing.T) {
		rules, err := LoadXPRules(rulesConfig(t, ""))
		require.NoError(t, err)
		assert.Equal(t, int64(xprules.DefaultDailyCap), rules.DailyCap)
	})

	t.Run("valid file", func(t *testing.T) {
		rules, err := LoadXPRules(rulesConfig(t, `
version: 1
daily_cap: 800
activities:
  - key: lesson_completed
    xp: 40
`))
		require.NoError(t, err)
		assert.Equal(t, int64(800), rules.DailyCap)

		xp, err := rules.XPFor(xprules.ActivityLessonCompleted, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(80), xp)
	})

	t.Run("schema violation is fatal", func(t *testing.T) {
		_, err := LoadXPRules(rulesConfig(t, `
version: 1
activities:
  - key: lesson_completed
    xp: -5
`))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidXPRules)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadXPRules)
	})
}

type recorder struct {
	calls *[]string
	name  string
	err   error
}

func (r recorder) Stop(context.Context) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func (r recorder) Shutdown(context.Context) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func TestGracefulShutdown_Order(t *testing.T) {
	var calls []string

	GracefulShutdown(context.Background(), ShutdownComponents{
		Server:           recorder{calls: &calls, name: "server", err: errors.New("deadline exceeded")},
		DailyResetWorker: recorder{calls: &calls, name: "worker"},
	})

	assert.Equal(t, []string{"server", "worker"}, calls)
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	SetupLogger(&config.Config{
		LogLevel:    "info",
		LogFormat:   "json",
		ServiceName: "skillquest",
		Version:     "v1.2.3",
		Environment: "prod",
	}, &buf)

	assert.Contains(t, buf.String(), LogMsgStartingSkillQuest)
	assert.Contains(t, buf.String(), `"version":"v1.2.3"`)
	assert.NotContains(t, buf.String(), LogMsgConfigurationLoaded)
}
