package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
site:
  name: "Test Site"
  publicURL: "https://folio.example.com"
server:
  listen: ":9000"
  postgresDsn: "host=db user=postgres"
  redisAddr: "redis:6379"
  memcachedAddr: "memcached:11211"
  sessionTTLMinutes: 30
  enableTrace: true
  traceEndpoint: "otel:4318"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if conf.Site.Name != "Test Site" {
		t.Fatalf("unexpected site name: %s", conf.Site.Name)
	}
	if conf.Server.Listen != ":9000" {
		t.Fatalf("unexpected listen: %s", conf.Server.Listen)
	}
	if conf.Server.SessionTTLMinutes != 30 {
		t.Fatalf("unexpected ttl: %d", conf.Server.SessionTTLMinutes)
	}
	if !conf.Server.EnableTrace {
		t.Fatalf("trace flag not read")
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("site:\n  name: x\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if conf.Server.Listen != ":8000" {
		t.Fatalf("listen default missing: %s", conf.Server.Listen)
	}
	if conf.Site.PublicURL != "http://localhost:8000" {
		t.Fatalf("publicURL default missing: %s", conf.Site.PublicURL)
	}
	if conf.Server.SessionTTLMinutes != 120 {
		t.Fatalf("ttl default missing: %d", conf.Server.SessionTTLMinutes)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
