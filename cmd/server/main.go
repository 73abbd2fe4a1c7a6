// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/api"
	"github.com/giellalt/langgate/internal/catalog"
	"github.com/giellalt/langgate/internal/config"
	"github.com/giellalt/langgate/internal/dispatcher"
	"github.com/giellalt/langgate/internal/graphqlapi"
	"github.com/giellalt/langgate/internal/logging"
	"github.com/giellalt/langgate/internal/preferences"
	"github.com/giellalt/langgate/internal/registry"
	"github.com/giellalt/langgate/internal/supervisor"
	"github.com/giellalt/langgate/internal/supervisor/services"
	"github.com/giellalt/langgate/internal/watcher"
	"github.com/giellalt/langgate/internal/worker"
)

// dispatcherRateLimit and dispatcherRateBurst bound the sustained and
// bursty request rate each analyzer kind's dispatcher will forward to
// its workers, ahead of the per-worker mailbox.
const (
	dispatcherRateLimit = rate.Limit(50)
	dispatcherRateBurst = 100
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logging.Info().Str("data_file_dir", cfg.DataFileDir).Str("addr", cfg.Addr).Msg("starting langgate")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slogLogger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to create supervisor tree")
	}

	spellerReg := registry.New[*worker.SpellerWorker](analyzer.Speller, tree.AnalyzerSupervisor())
	grammarReg := registry.New[*worker.GrammarWorker](analyzer.GrammarChecker, tree.AnalyzerSupervisor())
	hyphenatorReg := registry.New[*worker.HyphenationWorker](analyzer.Hyphenator, tree.AnalyzerSupervisor())
	prefsCache := preferences.NewCache()

	scanner := catalog.NewScanner(cfg.DataFileDir)
	loadCatalog(ctx, scanner, spellerReg, grammarReg, hyphenatorReg, prefsCache)

	watcherSvc := watcher.New(cfg.DataFileDir, cfg.WatcherInterval(),
		&watcher.SpellerHandler{Registry: spellerReg},
		&watcher.GrammarHandler{Registry: grammarReg, Preferences: prefsCache},
		&watcher.HyphenationHandler{Registry: hyphenatorReg},
	)
	tree.AddCatalogService(watcherSvc)

	speller := dispatcher.NewSpellerDispatcher(spellerReg)
	grammar := dispatcher.NewGrammarDispatcher(grammarReg)
	hyphenator := dispatcher.NewHyphenatorDispatcher(hyphenatorReg)
	speller.SetRateLimit(dispatcherRateLimit, dispatcherRateBurst)
	grammar.SetRateLimit(dispatcherRateLimit, dispatcherRateBurst)
	hyphenator.SetRateLimit(dispatcherRateLimit, dispatcherRateBurst)

	handler := api.NewHandler(speller, grammar, hyphenator, spellerReg, grammarReg, hyphenatorReg, prefsCache)
	schema := graphqlapi.NewSchema(speller, grammar, hyphenator)
	router := api.NewRouter(handler, graphqlapi.NewHandler(schema))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", cfg.Addr).Msg("http server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("service failed to stop")
		}
	}

	logging.Info().Msg("langgate stopped gracefully")
}

// loadCatalog performs the one-shot startup scan and registers every
// discovered model file before the watcher takes over. A model that
// fails to load (a grammar checker whose preferences cannot be read) is
// skipped with a warning rather than aborting startup.
func loadCatalog(
	ctx context.Context,
	scanner *catalog.Scanner,
	spellerReg *registry.Registry[*worker.SpellerWorker],
	grammarReg *registry.Registry[*worker.GrammarWorker],
	hyphenatorReg *registry.Registry[*worker.HyphenationWorker],
	prefsCache *preferences.Cache,
) {
	files, err := scanner.ScanAll()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to scan data file directory")
	}

	for _, f := range files {
		switch f.Kind {
		case analyzer.Speller:
			if err := spellerReg.Add(f.Language, func() (*worker.SpellerWorker, error) {
				return worker.LoadSpellerWorker(f.Language, f.Path)
			}); err != nil {
				logging.Warn().Str("language", string(f.Language)).Err(err).Msg("skipping speller model")
			}

		case analyzer.GrammarChecker:
			set, err := preferences.Load(ctx, preferences.ExecRunner, f.Path)
			if err != nil {
				logging.Warn().Str("language", string(f.Language)).Err(err).Msg("skipping grammar model, preferences unreadable")
				continue
			}
			if err := grammarReg.Add(f.Language, func() (*worker.GrammarWorker, error) {
				return worker.NewGrammarWorker(f.Language, f.Path), nil
			}); err != nil {
				logging.Warn().Str("language", string(f.Language)).Err(err).Msg("skipping grammar model")
				continue
			}
			prefsCache.Set(f.Language, set)

		case analyzer.Hyphenator:
			if err := hyphenatorReg.Add(f.Language, func() (*worker.HyphenationWorker, error) {
				return worker.NewHyphenationWorker(f.Language, f.Path), nil
			}); err != nil {
				logging.Warn().Str("language", string(f.Language)).Err(err).Msg("skipping hyphenation model")
			}
		}
	}

	logging.Info().
		Int("spellers", spellerReg.Count()).
		Int("grammars", grammarReg.Count()).
		Int("hyphenators", hyphenatorReg.Count()).
		Msg("catalog scan complete")
}
