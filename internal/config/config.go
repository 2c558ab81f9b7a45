package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Algorithm string        `yaml:"algorithm"` // fingerprint algorithm name (e.g. ahash, phash)
	Format    string        `yaml:"format"`    // output format, json or text
	Decoder   DecoderConfig `yaml:"decoder"`
}

type DecoderConfig struct {
	AutoOrient bool `yaml:"auto_orient"` // apply EXIF orientation before hashing
}

// envString reads an environment variable.
// Returns the default value if the env var is unset or empty.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// envBool reads an environment variable and parses it as a boolean.
// Returns the default value if the env var is unset, empty, or invalid.
func envBool(key string, defaultVal bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return defaultVal
}

func Load() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded defaults.yaml: " + err.Error())
	}

	cfg.Algorithm = envString("IMAGESEARCH_ALGORITHM", cfg.Algorithm)
	cfg.Format = envString("IMAGESEARCH_FORMAT", cfg.Format)
	cfg.Decoder.AutoOrient = envBool("IMAGESEARCH_AUTO_ORIENT", cfg.Decoder.AutoOrient)

	return &cfg
}
