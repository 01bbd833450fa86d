package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultFields is the usual column set for private-credit positions.
var DefaultFields = []string{"codativo", "qtdisponivel", "puposicao", "principal", "valorfindisp"}

type Config struct {
	// Extraction defaults (overridable by flags)
	Container string
	Fields    []string

	// Output
	Format string // "csv" or "xlsx"
	OutDir string
	BOM    bool // prefix CSV output with a UTF-8 BOM

	// Batch mode
	Workers int
}

func Load() Config {
	cfg := Config{
		Container: envOr("FUNDXML_CONTAINER", "titprivado"),
		Fields:    envList("FUNDXML_FIELDS", DefaultFields),
		Format:    envOr("FUNDXML_FORMAT", "csv"),
		OutDir:    envOr("FUNDXML_OUT_DIR", "."),
		BOM:       envBool("FUNDXML_CSV_BOM", true),
		Workers:   envInt("FUNDXML_WORKERS", 4),
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Container == "" {
		return fmt.Errorf("container tag must not be empty")
	}
	if len(c.Fields) == 0 {
		return fmt.Errorf("at least one field name is required")
	}
	if c.Format != "csv" && c.Format != "xlsx" {
		return fmt.Errorf("unsupported output format: %s", c.Format)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
