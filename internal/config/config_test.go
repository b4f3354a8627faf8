package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse("app:\n  name: pmcore-test\n")
	require.NoError(t, err)

	assert.Equal(t, "pmcore-test", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 4, cfg.Analytics.VelocityWindowWeeks)
	assert.Equal(t, 30, cfg.Analytics.TrendDays)
	assert.Equal(t, 60, cfg.Analytics.HealthRiskThreshold)
	assert.Equal(t, []int{75, 90, 100}, cfg.Analytics.BudgetAlertThresholds)
	assert.Equal(t, "en", cfg.Analytics.DefaultLocale)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("APP_DATABASE_DRIVER", "sqlite")

	cfg, err := parse(`
database:
  dsn: "file::memory:"
analytics:
  velocityWindowWeeks: 6
  budgetAlertThresholds: [50, 100]
`)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, 6, cfg.Analytics.VelocityWindowWeeks)
	assert.Equal(t, []int{50, 100}, cfg.Analytics.BudgetAlertThresholds)
}
