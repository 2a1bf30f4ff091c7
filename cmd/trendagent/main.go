package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/merchkit/trendagent/internal/agent"
	"github.com/merchkit/trendagent/internal/ai"
	"github.com/merchkit/trendagent/internal/config"
	"github.com/merchkit/trendagent/internal/logging"
	"github.com/merchkit/trendagent/internal/search"
	"github.com/merchkit/trendagent/internal/server"
	"github.com/merchkit/trendagent/internal/telegram"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP server instead of a single agent cycle")
	addr := flag.String("addr", "", "listen address, overrides SERVER_PORT (e.g. :8080)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	notifier, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID, log)
	if err != nil {
		log.Error("telegram setup failed", zap.Error(err))
		os.Exit(1)
	}

	searchClient := search.New(
		search.NewDuckDuckGoClient(cfg.SearchTimeout),
		cfg.QueryPause, cfg.MinSearchResults, log)
	generator := ai.NewGenerator(
		ai.NewClient(cfg.OpenRouterKey, cfg.OpenRouterBaseURL, cfg.Model, cfg.LLMTimeout), log)
	pipeline := agent.New(searchClient, generator, notifier, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *serve {
		listenAddr := *addr
		if listenAddr == "" {
			listenAddr = ":" + cfg.ServerPort
		}
		runServer(ctx, listenAddr, pipeline, log)
		return
	}

	result := pipeline.RunCycle(ctx)
	if !result.Success {
		os.Exit(1)
	}
}

func runServer(ctx context.Context, addr string, pipeline *agent.Agent, log *zap.Logger) {
	srv := &http.Server{
		Addr:    addr,
		Handler: server.New(pipeline, log).Router(),
	}

	go func() {
		log.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
		return
	}
	log.Info("server shutdown complete")
}
