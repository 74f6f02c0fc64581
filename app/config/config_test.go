package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_DIR", "STORE_DRIVER", "DATABASE_URL", "RECEIPT_PREFIX", "BACKUP_DIR", "BACKUP_INTERVAL_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "file", cfg.StoreDriver)
	assert.Equal(t, "ALB", cfg.ReceiptPrefix)
	assert.Equal(t, filepath.Join("data", "backups"), cfg.BackupDir)
	assert.Equal(t, 30*time.Minute, cfg.BackupInterval)
}

func TestBackupDirFollowsDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/receipts")
	t.Setenv("BACKUP_DIR", "")

	cfg := Load()
	assert.Equal(t, filepath.Join("/var/lib/receipts", "backups"), cfg.BackupDir)
}

func TestPostgresDriverRequiresDatabaseURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()
	assert.Equal(t, "file", cfg.StoreDriver)
}

func TestInvalidBackupIntervalFallsBack(t *testing.T) {
	t.Setenv("BACKUP_INTERVAL_MINUTES", "soon")

	cfg := Load()
	assert.Equal(t, 30*time.Minute, cfg.BackupInterval)
}
