package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mathildetho/taskade/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// clearEnv blanks the recognized variables so file values win.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ADDR", "MONGO_URI", "MONGO_DATABASE", "JWT_SECRET"} {
		t.Setenv(key, "")
	}
}

func TestLoadFile_FromYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  addr: ":9000"
  graphiql: true
mongo:
  uri: mongodb://localhost:27017
  database: taskade
auth:
  secret: yaml-secret
`)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q, want %q", cfg.Server.Addr, ":9000")
	}
	if !cfg.Server.GraphiQL {
		t.Error("GraphiQL = false, want true")
	}
	if cfg.Mongo.Database != "taskade" {
		t.Errorf("Database = %q, want %q", cfg.Mongo.Database, "taskade")
	}
	if cfg.Auth.Secret != "yaml-secret" {
		t.Errorf("Secret = %q, want %q", cfg.Auth.Secret, "yaml-secret")
	}
}

func TestLoadFile_EnvSubstitution(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_TASKADE_SECRET", "substituted")
	path := writeConfig(t, `
mongo:
  uri: mongodb://localhost:27017
  database: taskade
auth:
  secret: ${TEST_TASKADE_SECRET}
`)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Auth.Secret != "substituted" {
		t.Errorf("Secret = %q, want %q", cfg.Auth.Secret, "substituted")
	}
}

func TestLoadFile_EnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://env:27017")
	t.Setenv("MONGO_DATABASE", "envdb")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Mongo.URI != "mongodb://env:27017" {
		t.Errorf("URI = %q, want env value", cfg.Mongo.URI)
	}
	if cfg.Server.Addr == "" {
		t.Error("Addr should default when unset")
	}
}

func TestLoadFile_MissingSecret(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
mongo:
  uri: mongodb://localhost:27017
  database: taskade
`)

	_, err := config.LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile() should fail without a signing secret")
	}
	if !strings.Contains(err.Error(), "secret") {
		t.Errorf("error %q should mention the missing secret", err)
	}
}

func TestLoadFile_MissingMongoURI(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
mongo:
  database: taskade
auth:
  secret: s
`)

	if _, err := config.LoadFile(path); err == nil {
		t.Fatal("LoadFile() should fail without a mongo uri")
	}
}
