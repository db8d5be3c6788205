package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("WS_ORIGINS", "")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("want default addr :8080, got %q", cfg.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("want default level info, got %q", cfg.LogLevel)
	}
	if cfg.WSOrigins != nil {
		t.Fatalf("want no origin patterns by default, got %v", cfg.WSOrigins)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Addr != ":9999" || cfg.LogLevel != "debug" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_WSOrigins(t *testing.T) {
	t.Setenv("WS_ORIGINS", "game.example.com, *.example.org ,")

	cfg := Load()
	want := []string{"game.example.com", "*.example.org"}
	if len(cfg.WSOrigins) != len(want) {
		t.Fatalf("want %v, got %v", want, cfg.WSOrigins)
	}
	for i := range want {
		if cfg.WSOrigins[i] != want[i] {
			t.Fatalf("want %v, got %v", want, cfg.WSOrigins)
		}
	}
}
