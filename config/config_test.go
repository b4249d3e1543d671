package config

import "testing"

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	if cfg.Schema.IdentifierKind != "gtin8" {
		t.Errorf("IdentifierKind = %q, want gtin8", cfg.Schema.IdentifierKind)
	}
	if cfg.Schema.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.Schema.Currency)
	}
	if cfg.Schema.ApplyShortcodes {
		t.Error("ApplyShortcodes should default to false")
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("Logger.Level = %q, want debug", cfg.Logger.Level)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SCHEMA_IDENTIFIER_KIND", "isbn")
	t.Setenv("SCHEMA_CURRENCY", "EUR")
	t.Setenv("SCHEMA_PRODUCT_BRAND", "custom")
	t.Setenv("SCHEMA_CUSTOM_BRAND", "Acme")
	t.Setenv("SCHEMA_APPLY_SHORTCODES", "true")
	t.Setenv("LOGGER_ENCODING", "json")

	cfg := LoadEnv()

	if cfg.Schema.IdentifierKind != "isbn" {
		t.Errorf("IdentifierKind = %q, want isbn", cfg.Schema.IdentifierKind)
	}
	if cfg.Schema.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.Schema.Currency)
	}
	if cfg.Schema.ProductBrand != "custom" || cfg.Schema.CustomBrand != "Acme" {
		t.Errorf("brand settings = %q/%q", cfg.Schema.ProductBrand, cfg.Schema.CustomBrand)
	}
	if !cfg.Schema.ApplyShortcodes {
		t.Error("ApplyShortcodes should be true")
	}
	if cfg.Logger.Encoding != "json" {
		t.Errorf("Logger.Encoding = %q, want json", cfg.Logger.Encoding)
	}
}

func TestGetEnvBoolBadValue(t *testing.T) {
	t.Setenv("SCHEMA_APPLY_SHORTCODES", "not-a-bool")
	cfg := LoadEnv()
	if cfg.Schema.ApplyShortcodes {
		t.Error("unparseable bool should keep the fallback")
	}
}
