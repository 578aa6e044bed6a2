package cmd

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/bianoble/blaze/internal/config"
)

func setConfigPath(t *testing.T, path string) {
	t.Helper()
	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })
}

func TestInitCreatesConfig(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "blaze", "lint_config.yaml")
	setConfigPath(t, outPath)

	initForce = false
	if err := initCmd.RunE(initCmd, nil); err != nil {
		t.Fatalf("init: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("config file is empty")
	}
}

func TestInitDefaultsUnderRoot(t *testing.T) {
	dir := t.TempDir()
	setConfigPath(t, "")
	oldRoot := rootDir
	rootDir = dir
	defer func() { rootDir = oldRoot }()

	initForce = false
	if err := initCmd.RunE(initCmd, nil); err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "blaze", "lint_config.yaml")); err != nil {
		t.Errorf("config not created at default path: %v", err)
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "lint_config.yaml")
	if err := os.WriteFile(outPath, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}
	setConfigPath(t, outPath)

	initForce = false
	err := initCmd.RunE(initCmd, nil)
	if err == nil {
		t.Fatal("expected error when file exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error should mention 'already exists': %v", err)
	}

	data, _ := os.ReadFile(outPath)
	if string(data) != "existing" {
		t.Error("existing file was modified")
	}
}

func TestInitForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "lint_config.yaml")
	if err := os.WriteFile(outPath, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}
	setConfigPath(t, outPath)

	initForce = true
	defer func() { initForce = false }()
	if err := initCmd.RunE(initCmd, nil); err != nil {
		t.Fatalf("init --force: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) == "existing" {
		t.Error("file was not overwritten")
	}
}

func TestInitTemplateIsValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lint_config.yaml")
	if err := os.WriteFile(path, []byte(initTemplate), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("template does not load: %v", err)
	}
	if len(cfg.Filetypes["py"]) != 1 {
		t.Errorf("py chain = %v, want one lint", cfg.Filetypes["py"])
	}
	for _, name := range []string{".git", "blaze", "node_modules"} {
		if !slices.Contains(cfg.GlobalIgnore, name) {
			t.Errorf("%s should be ignored by default", name)
		}
	}
}
