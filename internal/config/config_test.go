package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Algorithm != "ahash" {
		t.Errorf("expected default algorithm 'ahash', got '%s'", cfg.Algorithm)
	}

	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}

	if cfg.Decoder.AutoOrient {
		t.Error("expected auto orientation to be off by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("IMAGESEARCH_ALGORITHM", "phash")
	t.Setenv("IMAGESEARCH_FORMAT", "text")
	t.Setenv("IMAGESEARCH_AUTO_ORIENT", "true")

	cfg := Load()

	if cfg.Algorithm != "phash" {
		t.Errorf("expected algorithm 'phash', got '%s'", cfg.Algorithm)
	}

	if cfg.Format != "text" {
		t.Errorf("expected format 'text', got '%s'", cfg.Format)
	}

	if !cfg.Decoder.AutoOrient {
		t.Error("expected auto orientation to be on")
	}
}

func TestLoad_InvalidBoolFallsBack(t *testing.T) {
	t.Setenv("IMAGESEARCH_AUTO_ORIENT", "definitely")

	cfg := Load()

	if cfg.Decoder.AutoOrient {
		t.Error("expected invalid boolean to fall back to the default")
	}
}

func TestLoad_EmptyEnvKeepsDefault(t *testing.T) {
	t.Setenv("IMAGESEARCH_ALGORITHM", "")

	cfg := Load()

	if cfg.Algorithm != "ahash" {
		t.Errorf("expected empty env var to keep default 'ahash', got '%s'", cfg.Algorithm)
	}
}
