package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.Container != "titprivado" {
		t.Errorf("expected default container %q, got %q", "titprivado", cfg.Container)
	}
	if len(cfg.Fields) != 5 {
		t.Errorf("expected 5 default fields, got %v", cfg.Fields)
	}
	if cfg.Format != "csv" {
		t.Errorf("expected default format csv, got %q", cfg.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FUNDXML_CONTAINER", "debenture")
	t.Setenv("FUNDXML_FIELDS", "isin, coddeb ,indexador,")
	t.Setenv("FUNDXML_FORMAT", "xlsx")
	t.Setenv("FUNDXML_WORKERS", "8")

	cfg := Load()
	if cfg.Container != "debenture" {
		t.Errorf("expected container debenture, got %q", cfg.Container)
	}
	want := []string{"isin", "coddeb", "indexador"}
	if len(cfg.Fields) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, cfg.Fields)
	}
	for i := range want {
		if cfg.Fields[i] != want[i] {
			t.Errorf("field[%d]: expected %q, got %q", i, want[i], cfg.Fields[i])
		}
	}
	if cfg.Format != "xlsx" || cfg.Workers != 8 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestValidate_BadFormat(t *testing.T) {
	cfg := Load()
	cfg.Format = "parquet"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unsupported format")
	}
}
