package backup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vitalog-app/vitalog/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (string, *Manager) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "vitalog.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close test database: %v", err)
	}

	return dbPath, NewManager(dbPath)
}

func TestCreateAndListBackups(t *testing.T) {
	_, mgr := setupTestDB(t)

	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("expected backup path %s, got %s", path, backups[0].Path)
	}
	if backups[0].Size == 0 {
		t.Error("backup file should not be empty")
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestBackupCollisionGetsCounter(t *testing.T) {
	_, mgr := setupTestDB(t)

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("first CreateBackup failed: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup failed: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct backup paths, both were %s", first)
	}
}

func TestParseBackupTimestamp(t *testing.T) {
	stamp, ok := parseBackupTimestamp("vitalog-20240103-120000.db")
	if !ok {
		t.Fatal("expected timestamp to parse")
	}
	want := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	if !stamp.Equal(want) {
		t.Errorf("expected %v, got %v", want, stamp)
	}

	if _, ok := parseBackupTimestamp("vitalog-20240103-120000-2.db"); !ok {
		t.Error("expected counter-suffixed name to parse")
	}
	if _, ok := parseBackupTimestamp("vitalog-garbage.db"); ok {
		t.Error("expected malformed name to be skipped")
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath, mgr := setupTestDB(t)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	// Restored database must load as an initialized store.
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("restored database failed to load: %v", err)
	}
	store.Close()

	// Restore snapshots the pre-restore database as an extra backup.
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected pre-restore snapshot, got %d backups", len(backups))
	}
}

func TestRestoreRejectsInvalidFile(t *testing.T) {
	_, mgr := setupTestDB(t)
	if err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected error for missing backup file")
	}
}
