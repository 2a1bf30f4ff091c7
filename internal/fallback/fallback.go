// Package fallback holds the static content substituted whenever a live
// provider call fails or returns too little data. Everything lives in one
// embedded, versioned resource instead of literals scattered per call site.
package fallback

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/merchkit/trendagent/internal/models"
)

//go:embed data.json
var raw []byte

type Trend struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

type data struct {
	Version       int                  `json:"version"`
	Trends        []Trend              `json:"trends"`
	Themes        []string             `json:"themes"`
	ImagePrompts  []string             `json:"image_prompts"`
	GigCopy       string               `json:"gig_copy"`
	OrderAnalysis models.OrderAnalysis `json:"order_analysis"`
	OrderConcepts string               `json:"order_concepts"`
	OrderReply    string               `json:"order_reply"`
	OrderPrompts  []models.OrderPrompt `json:"order_prompts"`
}

var table data

func init() {
	if err := json.Unmarshal(raw, &table); err != nil {
		panic(fmt.Sprintf("fallback: embedded data.json is invalid: %v", err))
	}
}

func Version() int { return table.Version }

// Trends returns the static trend list as search results, labelled so a
// report can tell live research from substituted content.
func Trends() []models.SearchResult {
	out := make([]models.SearchResult, 0, len(table.Trends))
	for _, t := range table.Trends {
		out = append(out, models.SearchResult{
			Title:   t.Title,
			Snippet: t.Snippet,
			Query:   "fallback",
		})
	}
	return out
}

func Themes() []string {
	return append([]string(nil), table.Themes...)
}

func ImagePrompts() []string {
	return append([]string(nil), table.ImagePrompts...)
}

func GigCopy() string { return table.GigCopy }

func OrderAnalysis() models.OrderAnalysis {
	a := table.OrderAnalysis
	a.Colors = append([]string(nil), table.OrderAnalysis.Colors...)
	a.StylePreferences = append([]string(nil), table.OrderAnalysis.StylePreferences...)
	a.SpecialRequirements = append([]string(nil), table.OrderAnalysis.SpecialRequirements...)
	return a
}

func OrderConcepts() string { return table.OrderConcepts }

func OrderReply() string { return table.OrderReply }

func OrderPrompts() []models.OrderPrompt {
	return append([]models.OrderPrompt(nil), table.OrderPrompts...)
}
