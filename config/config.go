package config

import (
	"os"
	"strconv"
)

type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Schema SchemaConfig
}

type AppConfig struct {
	Env     string
	BaseURL string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// SchemaConfig carries the installation settings the aggregation engine and
// its built-in extensions read.
type SchemaConfig struct {
	IdentifierKind  string // gtin8, gtin12, gtin13, gtin14 or isbn
	IdentifierLabel string
	Currency        string
	ProductBrand    string // brand taxonomy name, or "custom"
	CustomBrand     string
	KnowledgeGraph  string // company or person
	ApplyShortcodes bool
	AdditionalProps bool
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			Env:     getEnv("APP_ENV", "dev"),
			BaseURL: getEnv("APP_BASE_URL", "http://localhost"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Schema: SchemaConfig{
			IdentifierKind:  getEnv("SCHEMA_IDENTIFIER_KIND", "gtin8"),
			IdentifierLabel: getEnv("SCHEMA_IDENTIFIER_LABEL", ""),
			Currency:        getEnv("SCHEMA_CURRENCY", "USD"),
			ProductBrand:    getEnv("SCHEMA_PRODUCT_BRAND", ""),
			CustomBrand:     getEnv("SCHEMA_CUSTOM_BRAND", ""),
			KnowledgeGraph:  getEnv("SCHEMA_KNOWLEDGE_GRAPH", "company"),
			ApplyShortcodes: getEnvBool("SCHEMA_APPLY_SHORTCODES", false),
			AdditionalProps: getEnvBool("SCHEMA_ADDITIONAL_PROPERTIES", false),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
