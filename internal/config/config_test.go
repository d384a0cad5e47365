package config

import (
	"os"
	"path/filepath"
	"testing"
)

// --- Path helpers ---

func TestWorkspacePath(t *testing.T) {
	got := WorkspacePath("/home/user/project")
	want := filepath.Join("/home/user/project", Dir)
	if got != want {
		t.Errorf("WorkspacePath = %s, want %s", got, want)
	}
}

func TestConfigPath(t *testing.T) {
	got := ConfigPath("/home/user/project")
	want := filepath.Join("/home/user/project", Dir, File)
	if got != want {
		t.Errorf("ConfigPath = %s, want %s", got, want)
	}
}

// --- Default ---

func TestDefault_PathsUnderWorkspace(t *testing.T) {
	cfg := Default("/proj")

	checks := map[string]string{
		"IndexDir":              cfg.IndexDir,
		"UniversalModulesDir":   cfg.UniversalModulesDir,
		"ConditionalModulesDir": cfg.ConditionalModulesDir,
		"OutputDir":             cfg.OutputDir,
	}
	ws := WorkspacePath("/proj")
	for name, path := range checks {
		if path == "" {
			t.Errorf("%s is empty", name)
		}
		if !filepath.IsAbs(path) {
			t.Errorf("%s = %s, want absolute", name, path)
		}
		if path != ws && filepath.Dir(filepath.Dir(path)) != ws && filepath.Dir(path) != ws {
			t.Errorf("%s = %s, want under %s", name, path, ws)
		}
	}
}

// --- Load ---

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	tmp := t.TempDir()
	store := NewFileStore()

	cfg, err := store.Load(tmp)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default(tmp)
	if cfg.IndexDir != want.IndexDir {
		t.Errorf("IndexDir = %s, want %s", cfg.IndexDir, want.IndexDir)
	}
	if cfg.OutputDir != want.OutputDir {
		t.Errorf("OutputDir = %s, want %s", cfg.OutputDir, want.OutputDir)
	}
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	tmp := t.TempDir()
	if err := os.MkdirAll(WorkspacePath(tmp), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	yaml := "index_dir: scan\noutput_dir: docs/generated\n"
	if err := os.WriteFile(ConfigPath(tmp), []byte(yaml), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	cfg, err := NewFileStore().Load(tmp)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IndexDir != filepath.Join(tmp, "scan") {
		t.Errorf("IndexDir = %s, want %s", cfg.IndexDir, filepath.Join(tmp, "scan"))
	}
	if cfg.OutputDir != filepath.Join(tmp, "docs", "generated") {
		t.Errorf("OutputDir = %s, want %s", cfg.OutputDir, filepath.Join(tmp, "docs", "generated"))
	}
	// Unset fields fall back to defaults.
	if cfg.UniversalModulesDir != Default(tmp).UniversalModulesDir {
		t.Errorf("UniversalModulesDir = %s, want default", cfg.UniversalModulesDir)
	}
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	tmp := t.TempDir()
	if err := os.MkdirAll(WorkspacePath(tmp), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(ConfigPath(tmp), []byte("index_dir: [unclosed"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if _, err := NewFileStore().Load(tmp); err == nil {
		t.Fatal("Load should fail on malformed yaml")
	}
}

// --- Save / round-trip ---

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	store := NewFileStore()

	cfg := Default(tmp)
	cfg.OutputDir = filepath.Join(tmp, "out")
	if err := store.Save(tmp, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists(tmp) {
		t.Fatal("Exists should be true after Save")
	}

	loaded, err := store.Load(tmp)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.OutputDir != cfg.OutputDir {
		t.Errorf("OutputDir = %s, want %s", loaded.OutputDir, cfg.OutputDir)
	}
	if loaded.IndexDir != cfg.IndexDir {
		t.Errorf("IndexDir = %s, want %s", loaded.IndexDir, cfg.IndexDir)
	}
}

func TestExists_FalseWithoutWorkspace(t *testing.T) {
	if Exists(t.TempDir()) {
		t.Error("Exists should be false for an empty directory")
	}
}
