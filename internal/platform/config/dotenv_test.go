package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestLoadDotEnvSetsVariables(t *testing.T) {
	path := writeEnvFile(t, "HELLO_TEST_PORT=9999\n")
	t.Setenv("HELLO_TEST_PORT", "")
	_ = os.Unsetenv("HELLO_TEST_PORT")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("HELLO_TEST_PORT"); got != "9999" {
		t.Fatalf("expected HELLO_TEST_PORT=9999, got %q", got)
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := writeEnvFile(t, "HELLO_TEST_HOST=0.0.0.0\n")
	t.Setenv("HELLO_TEST_HOST", "127.0.0.1")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("HELLO_TEST_HOST"); got != "127.0.0.1" {
		t.Fatalf("expected existing value to win, got %q", got)
	}
}

func TestLoadDotEnvSkipsMissingFiles(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")
	if err := LoadDotEnv(missing); err != nil {
		t.Fatalf("expected missing file to be skipped, got %v", err)
	}
}

func TestLoadDotEnvReportsDirectory(t *testing.T) {
	if err := LoadDotEnv(t.TempDir()); err == nil {
		t.Fatal("expected error when env file is a directory")
	}
}
