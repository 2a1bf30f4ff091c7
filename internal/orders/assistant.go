// Package orders drives the client-order assistant: one free-text client
// request in, an analysis, three design concepts, a ready-to-send reply
// and per-concept image prompts out.
package orders

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/merchkit/trendagent/internal/models"
	"github.com/merchkit/trendagent/internal/telegram"
)

type Generator interface {
	AnalyzeOrder(ctx context.Context, request string) models.OrderAnalysis
	GenerateConcepts(ctx context.Context, analysis models.OrderAnalysis) string
	GenerateReply(ctx context.Context, analysis models.OrderAnalysis, concepts string) string
	GenerateOrderPrompts(ctx context.Context, concepts string) []models.OrderPrompt
}

type Notifier interface {
	Send(ctx context.Context, text string) bool
}

// Result bundles everything produced for one client request.
type Result struct {
	Request  string
	Analysis models.OrderAnalysis
	Concepts string
	Reply    string
	Prompts  []models.OrderPrompt
}

type Assistant struct {
	gen      Generator
	notifier Notifier // optional; nil disables the Telegram summary
	out      io.Writer
	log      *zap.Logger
	now      func() time.Time
}

func NewAssistant(gen Generator, notifier Notifier, out io.Writer, log *zap.Logger) *Assistant {
	return &Assistant{gen: gen, notifier: notifier, out: out, log: log, now: time.Now}
}

// Process runs the full flow for one request and writes the report.
func (a *Assistant) Process(ctx context.Context, request string) Result {
	request = strings.TrimSpace(request)
	a.log.Info("processing client order", zap.Int("request_len", len(request)))

	analysis := a.gen.AnalyzeOrder(ctx, request)
	concepts := a.gen.GenerateConcepts(ctx, analysis)
	reply := a.gen.GenerateReply(ctx, analysis, concepts)
	prompts := a.gen.GenerateOrderPrompts(ctx, concepts)

	result := Result{
		Request:  request,
		Analysis: analysis,
		Concepts: concepts,
		Reply:    reply,
		Prompts:  prompts,
	}

	a.renderReport(result)

	if a.notifier != nil {
		a.notifier.Send(ctx, a.summaryMessage(result))
	}
	return result
}

// Interactive reads requests line by line until EOF or an exit word.
func (a *Assistant) Interactive(ctx context.Context, in io.Reader) {
	fmt.Fprintln(a.out, strings.Repeat("=", 70))
	fmt.Fprintln(a.out, "🤖 CLIENT ORDER ASSISTANT — INTERACTIVE MODE")
	fmt.Fprintln(a.out, "Enter client requests one by one. Type 'exit' or 'quit' to end.")
	fmt.Fprintln(a.out, strings.Repeat("=", 70))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(a.out, "\n📋 Client request: ")
		if !scanner.Scan() {
			break
		}
		request := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(request) {
		case "exit", "quit", "q":
			fmt.Fprintln(a.out, "\n👋 Exiting interactive mode.")
			return
		case "":
			fmt.Fprintln(a.out, "❌ Please enter a non-empty client request.")
			continue
		}
		a.Process(ctx, request)
	}
}

func (a *Assistant) summaryMessage(result Result) string {
	return fmt.Sprintf(`🤖 <b>NEW CLIENT ORDER PROCESSED</b>

📋 Request: <i>%s</i>
🏷️ Brand: %s
⏱️ %s

✅ Ready-to-send reply drafted
✅ 3 design concepts generated
✅ Image prompts ready

Check your terminal for the full report.`,
		telegram.Escape(shorten(result.Request, 50)),
		telegram.Escape(result.Analysis.BrandName),
		a.now().Format("2006-01-02 15:04"))
}

func shorten(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
