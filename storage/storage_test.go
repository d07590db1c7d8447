package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Chairfield97/CPSC-305-GBA-Game/game"
)

// useTempConfigDir points the package at a fresh directory
func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)
	return dir
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Version != 1 {
		t.Errorf("expected version 1, got %d", config.Version)
	}
	if config.Window.Width != 720 || config.Window.Height != 480 {
		t.Errorf("expected window 720x480, got %dx%d", config.Window.Width, config.Window.Height)
	}
	if got, want := config.Settings(), game.DefaultConfig(); got != want {
		t.Errorf("expected game settings %+v, got %+v", want, got)
	}
	if err := config.Settings().Validate(); err != nil {
		t.Errorf("default settings do not validate: %v", err)
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	data := struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}{
		Name:  "test",
		Value: 42,
	}

	if err := AtomicWriteJSON(path, data); err != nil {
		t.Fatalf("AtomicWriteJSON failed: %v", err)
	}

	var result struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	if err := ReadJSON(path, &result); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if result.Name != data.Name || result.Value != data.Value {
		t.Errorf("data mismatch: expected %+v, got %+v", data, result)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should be removed after write")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	useTempConfigDir(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *config != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", config)
	}
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	useTempConfigDir(t)

	config := DefaultConfig()
	config.Game.Delay = 0
	config.Game.Lives = 9
	x := 40
	config.Window.X = &x

	if err := SaveConfig(config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Game.Delay != 0 {
		t.Errorf("zero delay should survive a reload, got %d", loaded.Game.Delay)
	}
	if loaded.Game.Lives != 9 {
		t.Errorf("expected 9 lives, got %d", loaded.Game.Lives)
	}
	if loaded.Window.X == nil || *loaded.Window.X != 40 {
		t.Errorf("expected window x 40, got %v", loaded.Window.X)
	}
	if loaded.Window.Y != nil {
		t.Errorf("expected nil window y, got %d", *loaded.Window.Y)
	}
}

func TestLoadConfig_Corrupt(t *testing.T) {
	dir := useTempConfigDir(t)

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for corrupt config")
	}
}

func TestCreateConfigIfMissing(t *testing.T) {
	dir := useTempConfigDir(t)
	path := filepath.Join(dir, "config.json")

	if err := CreateConfigIfMissing(); err != nil {
		t.Fatalf("CreateConfigIfMissing failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not created: %v", err)
	}

	// an existing file is left alone
	if err := os.WriteFile(path, []byte(`{"version":1,"game":{"delay":300,"lives":7,"enemyQuota":5}}`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if err := CreateConfigIfMissing(); err != nil {
		t.Fatalf("CreateConfigIfMissing failed: %v", err)
	}
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Game.Lives != 7 {
		t.Errorf("existing config overwritten: expected 7 lives, got %d", config.Game.Lives)
	}
}

func TestConfigMigration(t *testing.T) {
	config := &Config{
		Game: GameConfig{Delay: -5},
	}

	migrated := migrateConfig(config)

	def := DefaultConfig()
	if migrated.Version != 1 {
		t.Errorf("expected version 1 after migration, got %d", migrated.Version)
	}
	if migrated.Game.Delay != def.Game.Delay {
		t.Errorf("expected delay %d, got %d", def.Game.Delay, migrated.Game.Delay)
	}
	if migrated.Game.Lives != def.Game.Lives {
		t.Errorf("expected lives %d, got %d", def.Game.Lives, migrated.Game.Lives)
	}
	if migrated.Game.EnemyQuota != def.Game.EnemyQuota {
		t.Errorf("expected quota %d, got %d", def.Game.EnemyQuota, migrated.Game.EnemyQuota)
	}
	if migrated.Window.Width != def.Window.Width || migrated.Window.Height != def.Window.Height {
		t.Errorf("expected window %dx%d, got %dx%d",
			def.Window.Width, def.Window.Height, migrated.Window.Width, migrated.Window.Height)
	}
}

func TestConfig_SetScale(t *testing.T) {
	config := DefaultConfig()

	config.SetScale(2)
	if config.Window.Width != 480 || config.Window.Height != 320 {
		t.Errorf("expected window 480x320, got %dx%d", config.Window.Width, config.Window.Height)
	}

	config.SetScale(0)
	if config.Window.Width != 480 || config.Window.Height != 320 {
		t.Errorf("zero scale changed window to %dx%d", config.Window.Width, config.Window.Height)
	}
}

func TestConfig_RecordWindowSurvivesReload(t *testing.T) {
	useTempConfigDir(t)

	if err := CreateConfigIfMissing(); err != nil {
		t.Fatalf("CreateConfigIfMissing failed: %v", err)
	}
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Window.X != nil || config.Window.Y != nil {
		t.Fatalf("fresh config should leave position to the OS, got %v,%v", config.Window.X, config.Window.Y)
	}

	config.RecordWindow(12, 34, 960, 640)
	if err := SaveConfig(config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Window.X == nil || *loaded.Window.X != 12 {
		t.Errorf("expected window x 12, got %v", loaded.Window.X)
	}
	if loaded.Window.Y == nil || *loaded.Window.Y != 34 {
		t.Errorf("expected window y 34, got %v", loaded.Window.Y)
	}
	if loaded.Window.Width != 960 || loaded.Window.Height != 640 {
		t.Errorf("expected window 960x640, got %dx%d", loaded.Window.Width, loaded.Window.Height)
	}
}

func TestConfig_RecordWindowKeepsSizeWhenUnknown(t *testing.T) {
	config := DefaultConfig()

	config.RecordWindow(5, 6, 0, 0)
	if config.Window.Width != 720 || config.Window.Height != 480 {
		t.Errorf("expected window 720x480, got %dx%d", config.Window.Width, config.Window.Height)
	}
	if config.Window.X == nil || *config.Window.X != 5 {
		t.Errorf("expected window x 5, got %v", config.Window.X)
	}
}
