package models

import "time"

// SearchResult is one hit returned by the search provider for a query.
// Results live only for the duration of a single cycle.
type SearchResult struct {
	Title     string `json:"title"`
	Snippet   string `json:"snippet"`
	SourceURL string `json:"source_url"`
	Query     string `json:"query"`
}

// ResearchBundle groups the results of one cycle by originating query.
type ResearchBundle struct {
	Queries []string
	Results []SearchResult
}

func (b ResearchBundle) Empty() bool {
	return len(b.Results) == 0
}

// ByQuery returns the results produced for a single query, in order.
func (b ResearchBundle) ByQuery(query string) []SearchResult {
	var out []SearchResult
	for _, r := range b.Results {
		if r.Query == query {
			out = append(out, r)
		}
	}
	return out
}

// OrderAnalysis is the structured breakdown of a client order request.
type OrderAnalysis struct {
	ClientName          string   `json:"client_name"`
	BrandName           string   `json:"brand_name"`
	DesignSubject       string   `json:"design_subject"`
	Colors              []string `json:"colors"`
	StylePreferences    []string `json:"style_preferences"`
	SpecialRequirements []string `json:"special_requirements"`
	Sentiment           string   `json:"sentiment"`
}

// OrderPrompt is one ready-to-use image generation prompt for an order concept.
type OrderPrompt struct {
	ConceptName      string `json:"concept_name"`
	Prompt           string `json:"prompt"`
	RecommendedModel string `json:"recommended_model"`
	QualitySetting   string `json:"quality_setting"`
}

// CycleResult is what one research/generate/notify cycle produced.
type CycleResult struct {
	CycleID string        `json:"cycle_id"`
	Success bool          `json:"success"`
	Trends  []string      `json:"trends"`
	Prompts []string      `json:"prompts"`
	Report  string        `json:"-"`
	Elapsed time.Duration `json:"-"`
}
