// Package search performs the research phase of a cycle: a handful of
// keyless web searches, filtered to apparel-relevant hits, topped up from
// the static fallback list so the pipeline always has input.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/merchkit/trendagent/internal/fallback"
	"github.com/merchkit/trendagent/internal/models"
)

const perQueryLimit = 5

// relevance allow-list: a hit must mention at least one of these in its
// title or snippet to survive.
var relevantKeywords = []string{"shirt", "tee", "design", "apparel", "print"}

// Querier is the single-query surface implemented by DuckDuckGoClient.
type Querier interface {
	Query(ctx context.Context, query string, limit int) ([]models.SearchResult, error)
}

type Client struct {
	querier    Querier
	limiter    *rate.Limiter
	minResults int
	log        *zap.Logger
}

func New(querier Querier, queryPause time.Duration, minResults int, log *zap.Logger) *Client {
	if queryPause <= 0 {
		queryPause = 3 * time.Second
	}
	if minResults <= 0 {
		minResults = 4
	}
	return &Client{
		querier:    querier,
		limiter:    rate.NewLimiter(rate.Every(queryPause), 1),
		minResults: minResults,
		log:        log,
	}
}

// TrendQueries builds the research queries for the current cycle.
func TrendQueries(now time.Time) []string {
	return []string{
		fmt.Sprintf("trending t-shirt designs %s", now.Format("January 2006")),
		"best selling graphic tees on etsy",
		"pinterest popular t-shirt aesthetics",
		"top instagram t-shirt trends",
	}
}

// Research runs every query with a fixed pause in between and aggregates
// the filtered results. Provider failures cost only that query; if the
// cycle total stays below the threshold the static trend list fills in, so
// the returned bundle is never empty.
func (c *Client) Research(ctx context.Context, queries []string) models.ResearchBundle {
	bundle := models.ResearchBundle{Queries: queries}

	for _, query := range queries {
		if err := c.limiter.Wait(ctx); err != nil {
			c.log.Warn("research interrupted", zap.Error(err))
			break
		}

		results, err := c.querier.Query(ctx, query, perQueryLimit)
		if err != nil {
			c.log.Warn("search query failed", zap.String("query", query), zap.Error(err))
			continue
		}

		kept := 0
		for _, r := range results {
			if !isRelevant(r) {
				continue
			}
			bundle.Results = append(bundle.Results, r)
			kept++
		}
		c.log.Info("search query done",
			zap.String("query", query), zap.Int("hits", len(results)), zap.Int("kept", kept))
	}

	if len(bundle.Results) < c.minResults {
		static := fallback.Trends()
		c.log.Info("topping up research from fallback list",
			zap.Int("live", len(bundle.Results)), zap.Int("static", len(static)))
		bundle.Results = append(bundle.Results, static...)
	}

	return bundle
}

func isRelevant(r models.SearchResult) bool {
	haystack := strings.ToLower(r.Title + " " + r.Snippet)
	for _, kw := range relevantKeywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
