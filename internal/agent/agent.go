// Package agent runs one cycle of the pipeline: research, content
// generation, report assembly, notification. Every stage degrades to
// fallback content on failure; only a failed final send marks the cycle
// unsuccessful.
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/merchkit/trendagent/internal/models"
	"github.com/merchkit/trendagent/internal/search"
)

type SearchProvider interface {
	Research(ctx context.Context, queries []string) models.ResearchBundle
}

type ContentGenerator interface {
	GenerateImagePrompts(ctx context.Context, bundle models.ResearchBundle) []string
	GenerateGigContent(ctx context.Context, bundle models.ResearchBundle) string
}

type Notifier interface {
	Send(ctx context.Context, text string) bool
}

type Agent struct {
	search   SearchProvider
	gen      ContentGenerator
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time
}

func New(searchProvider SearchProvider, gen ContentGenerator, notifier Notifier, log *zap.Logger) *Agent {
	return &Agent{
		search:   searchProvider,
		gen:      gen,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// RunCycle executes research → generate → report → notify and never
// panics out: an unexpected failure becomes a best-effort failure notice
// to the same chat.
func (a *Agent) RunCycle(ctx context.Context) (result models.CycleResult) {
	start := a.now()
	result.CycleID = uuid.NewString()

	a.log.Info("starting agent cycle", zap.String("cycle_id", result.CycleID))

	defer func() {
		if r := recover(); r != nil {
			a.log.Error("agent cycle panicked", zap.String("cycle_id", result.CycleID), zap.Any("panic", r))
			a.notifier.Send(ctx, FailureNotice(a.now(), fmt.Sprintf("%v", r)))
			result.Success = false
			result.Elapsed = a.now().Sub(start)
		}
	}()

	bundle := a.search.Research(ctx, search.TrendQueries(a.now()))
	prompts := a.gen.GenerateImagePrompts(ctx, bundle)
	gigCopy := a.gen.GenerateGigContent(ctx, bundle)

	report := BuildReport(a.now(), bundle, prompts, gigCopy)

	result.Trends = trendTitles(bundle, reportTrendCount)
	result.Prompts = prompts
	result.Report = report
	result.Success = a.notifier.Send(ctx, report)
	result.Elapsed = a.now().Sub(start)

	a.log.Info("agent cycle finished",
		zap.String("cycle_id", result.CycleID),
		zap.Bool("success", result.Success),
		zap.Duration("elapsed", result.Elapsed))
	return result
}

// RunAnalysis is the research+generation half of a cycle, used by the HTTP
// endpoint: no notification, results returned to the caller.
func (a *Agent) RunAnalysis(ctx context.Context) ([]models.SearchResult, []string, error) {
	bundle := a.search.Research(ctx, search.TrendQueries(a.now()))
	if bundle.Empty() {
		return nil, nil, fmt.Errorf("could not find any trends; the search may have failed")
	}

	prompts := a.gen.GenerateImagePrompts(ctx, bundle)
	if len(prompts) == 0 {
		return nil, nil, fmt.Errorf("failed to generate prompts from the research data")
	}

	trends := bundle.Results
	if len(trends) > reportTrendCount {
		trends = trends[:reportTrendCount]
	}
	return trends, prompts, nil
}

func trendTitles(bundle models.ResearchBundle, n int) []string {
	var titles []string
	for _, r := range bundle.Results {
		titles = append(titles, r.Title)
		if len(titles) == n {
			break
		}
	}
	return titles
}
