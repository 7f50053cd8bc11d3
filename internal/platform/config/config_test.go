package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageDriverSQLite, cfg.StorageDriver)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 2*time.Hour, cfg.LeadTime)
	assert.Equal(t, 30, cfg.SlotMinutes)
	assert.Equal(t, "08:00", cfg.OfficeOpen)
	assert.Equal(t, "18:00", cfg.OfficeClose)
	assert.Equal(t, time.UTC, cfg.OfficeLocation)
	assert.True(t, cfg.RunMigrations)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "postgres://localhost/deskbook")
	t.Setenv("OFFICE_TIMEZONE", "Asia/Kolkata")
	t.Setenv("OFFICE_NETWORKS", "10.0.0.0/8, 192.168.1.20")
	t.Setenv("LEAD_TIME", "90m")
	t.Setenv("SWEEP_INTERVAL", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Asia/Kolkata", cfg.OfficeLocation.String())
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.20"}, cfg.OfficeNetworks)
	assert.Equal(t, 90*time.Minute, cfg.LeadTime)
	assert.Equal(t, time.Hour, cfg.SweepInterval)
}

func TestLoadConfig_Rejects(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongodb")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("OFFICE_TIMEZONE", "Mars/Olympus_Mons")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_ProductionNeedsSecret(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	assert.Error(t, err)
}
