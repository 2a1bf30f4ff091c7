package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/merchkit/trendagent/internal/ai"
	"github.com/merchkit/trendagent/internal/config"
	"github.com/merchkit/trendagent/internal/logging"
	"github.com/merchkit/trendagent/internal/orders"
	"github.com/merchkit/trendagent/internal/telegram"
)

const sampleRequest = "I need a t-shirt design for my coffee shop called 'Morning Brew'. " +
	"I want something with coffee cups and mountains, modern minimalist style."

func main() {
	interactive := flag.Bool("interactive", false, "read client requests from stdin one by one")
	testMode := flag.Bool("test", false, "run once with a canned sample request")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadAssistant()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	generator := ai.NewGenerator(
		ai.NewClient(cfg.OpenRouterKey, cfg.OpenRouterBaseURL, cfg.Model, cfg.LLMTimeout), log)

	var notifier orders.Notifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != "" {
		tg, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID, log)
		if err != nil {
			log.Warn("telegram summary disabled", zap.Error(err))
		} else {
			notifier = tg
		}
	}

	assistant := orders.NewAssistant(generator, notifier, os.Stdout, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch {
	case *interactive:
		assistant.Interactive(ctx, os.Stdin)
	case *testMode:
		fmt.Printf("🧪 Running test with sample request:\n%q\n", sampleRequest)
		assistant.Process(ctx, sampleRequest)
	case flag.NArg() > 0:
		assistant.Process(ctx, strings.Join(flag.Args(), " "))
	default:
		printUsage()
	}
}

func printUsage() {
	fmt.Println("🤖 CLIENT ORDER ASSISTANT")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println(`  orderassistant "Client request text"`)
	fmt.Println("  orderassistant -interactive")
	fmt.Println("  orderassistant -test")
	fmt.Println()
	fmt.Println("Quote the request if it contains spaces.")
}
