package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/omnichat/omnichat-go/internal/adapters/extractor"
	"github.com/omnichat/omnichat-go/internal/adapters/filewatcher"
	"github.com/omnichat/omnichat-go/internal/adapters/gateway"
	"github.com/omnichat/omnichat-go/internal/adapters/store"
	"github.com/omnichat/omnichat-go/internal/config"
	"github.com/omnichat/omnichat-go/internal/domain/ports"
	"github.com/omnichat/omnichat-go/internal/domain/usecases"
	httpserver "github.com/omnichat/omnichat-go/internal/infrastructure/http"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	setupLogging(cfg.Log.Level)

	docStore, cleanup, err := buildStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing document store")
	}
	defer cleanup()

	registry := extractor.NewRegistry()
	ingestUC := usecases.NewIngestUseCase(registry, docStore)
	retrieveUC := usecases.NewRetrieveUseCase(docStore, cfg.Ingest.TopK)
	augmenter := usecases.NewAugmenter(cfg.Ingest.MaxContextChars)
	runner := gateway.NewRunnerGateway(cfg.Runner.URL, time.Duration(cfg.Runner.TimeoutSecs)*time.Second)
	inferUC := usecases.NewInferUseCase(retrieveUC, augmenter, runner)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(cfg.Ingest.UploadDir, 0755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Ingest.UploadDir).Msg("creating upload dir")
	}

	if info, err := os.Stat(cfg.Ingest.DocumentsDir); err == nil && info.IsDir() {
		count, err := ingestUC.IngestFolder(ctx, cfg.Ingest.DocumentsDir)
		if err != nil {
			log.Warn().Err(err).Msg("initial folder ingest failed")
		} else {
			log.Info().Int("ingested", count).Str("dir", cfg.Ingest.DocumentsDir).Msg("initial folder ingest")
		}

		if cfg.Ingest.Watch {
			go watchDocuments(ctx, ingestUC, cfg.Ingest.DocumentsDir)
		}
	}

	server := httpserver.NewServer(inferUC, ingestUC, docStore, cfg.Server.Addr, cfg.Ingest.UploadDir)
	if err := server.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).
		With().Timestamp().Logger()
}

func buildStore(cfg *config.Config) (ports.DocumentStore, func(), error) {
	switch cfg.Store.Type {
	case "sqlite":
		s, err := store.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		return store.NewMemoryStore(), func() {}, nil
	}
}

// watchDocuments ingests files dropped into the documents folder while the
// server is running.
func watchDocuments(ctx context.Context, ingestUC *usecases.IngestUseCase, dir string) {
	watcher, err := filewatcher.NewFSNotifyWatcher(nil)
	if err != nil {
		log.Warn().Err(err).Msg("file watcher unavailable")
		return
	}
	defer watcher.Stop()

	events, err := watcher.Watch(ctx, dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("watching documents folder failed")
		return
	}
	log.Info().Str("dir", dir).Msg("watching documents folder")

	for event := range events {
		if event.Operation != ports.FileCreated && event.Operation != ports.FileModified {
			continue
		}
		doc, err := ingestUC.IngestFile(ctx, event.Path)
		if err != nil {
			log.Warn().Err(err).Str("path", event.Path).Msg("auto-ingest failed")
			continue
		}
		log.Info().Str("filename", doc.Filename).Msg("auto-ingested document")
	}
}
