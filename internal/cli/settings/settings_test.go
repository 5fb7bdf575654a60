package settings

import (
	"path/filepath"
	"testing"

	"github.com/vitalog-app/vitalog/internal/cli"
	"github.com/vitalog-app/vitalog/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := &cli.Context{
		Store: store,
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func TestSettingsCmd_List(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{
		List: true,
	}

	err := cmd.Run(ctx)
	if err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_UpdatePollInterval(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	newValue := 60
	cmd := &SettingsCmd{
		PollIntervalSec: &newValue,
	}

	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings update failed: %v", err)
	}

	updated, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get updated settings: %v", err)
	}

	if updated.PollIntervalSec != newValue {
		t.Errorf("expected PollIntervalSec to be %d, got %d", newValue, updated.PollIntervalSec)
	}
}

func TestSettingsCmd_UpdateNotificationsEnabled(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	initial, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}

	newValue := !initial.NotificationsEnabled
	cmd := &SettingsCmd{
		NotificationsEnabled: &newValue,
	}

	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings update failed: %v", err)
	}

	updated, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get updated settings: %v", err)
	}

	if updated.NotificationsEnabled != newValue {
		t.Errorf("expected NotificationsEnabled to be %v, got %v", newValue, updated.NotificationsEnabled)
	}
}

func TestSettingsCmd_RejectsInvalidValues(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	badInterval := 0
	cmd := &SettingsCmd{PollIntervalSec: &badInterval}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for zero poll interval")
	}

	badTZ := "Mars/Olympus_Mons"
	cmd = &SettingsCmd{Timezone: &badTZ}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for invalid timezone")
	}
}
