package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/avelier/productgraph/config"
	"github.com/avelier/productgraph/internal/aggregation/extensions"
	"github.com/avelier/productgraph/internal/aggregation/pipeline"
	"github.com/avelier/productgraph/internal/aggregation/usecase"
	"github.com/avelier/productgraph/internal/catalog/source"
	"github.com/avelier/productgraph/internal/schema"
	"github.com/avelier/productgraph/internal/shortcode"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	catalogPath := flag.String("catalog", "catalog.yaml", "path to the YAML catalog snapshot")
	flag.Parse()

	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := newLogger(cfg)
	defer appLogger.Sync()
	appLogger = appLogger.With(zap.String("run_id", uuid.New().String()))

	// 3. Open the catalog snapshot
	src, err := source.NewFileSource(*catalogPath)
	if err != nil {
		appLogger.Fatal("could not open catalog", zap.Error(err))
	}
	appLogger.Info("loaded catalog", zap.String("path", *catalogPath))

	// 4. Assemble the extension pipeline
	pipe := pipeline.New()
	if cfg.Schema.ProductBrand == "custom" && cfg.Schema.CustomBrand != "" {
		pipe.Register(pipeline.ProductAssembled, extensions.CustomBrand(cfg.Schema.CustomBrand))
		pipe.Register(pipeline.GroupAssembled, extensions.CustomBrand(cfg.Schema.CustomBrand))
	}
	if cfg.Schema.AdditionalProps {
		props := extensions.AdditionalProperties(cfg.App.BaseURL, cfg.Schema.KnowledgeGraph)
		pipe.Register(pipeline.ProductAssembled, props)
		pipe.Register(pipeline.GroupAssembled, props)
	}

	// 5. Initialize the aggregator
	uc := usecase.NewGroupAggregator(usecase.Config{
		IdentifierKind:   schema.ParseIdentifierKind(cfg.Schema.IdentifierKind),
		Currency:         cfg.Schema.Currency,
		ExpandShortcodes: cfg.Schema.ApplyShortcodes,
		Shortcodes:       shortcode.NewRegistry(),
	}, pipe, appLogger)

	// 6. Aggregate every product and emit the JSON-LD graph
	ctx := context.Background()
	products, err := src.Products(ctx)
	if err != nil {
		appLogger.Fatal("could not list products", zap.Error(err))
	}

	graph := make([]schema.Entity, 0, len(products))
	for i := range products {
		p := &products[i]
		graph = append(graph, uc.Aggregate(ctx, p, p.Variants))
	}

	data, err := schema.NewDocument(graph...).MarshalIndent()
	if err != nil {
		appLogger.Fatal("could not render document", zap.Error(err))
	}
	os.Stdout.Write(data)
	os.Stdout.Write([]byte("\n"))

	appLogger.Info("aggregated catalog", zap.Int("products", len(products)))
}

func newLogger(cfg *config.Config) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if cfg.App.Env == "development" || cfg.App.Env == "dev" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Encoding = cfg.Logger.Encoding
	if lvl, err := zapcore.ParseLevel(cfg.Logger.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	zcfg.DisableCaller = cfg.Logger.DisableCaller
	zcfg.DisableStacktrace = cfg.Logger.DisableStacktrace

	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}
