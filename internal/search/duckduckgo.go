package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/merchkit/trendagent/internal/models"
)

const (
	defaultBaseURL   = "https://html.duckduckgo.com/html/"
	desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// DuckDuckGoClient scrapes the keyless DuckDuckGo HTML surface.
type DuckDuckGoClient struct {
	baseURL string
	client  *http.Client
}

func NewDuckDuckGoClient(timeout time.Duration) *DuckDuckGoClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &DuckDuckGoClient{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Query fetches one results page and parses title/snippet pairs. Callers
// treat any error as zero results for that query.
func (c *DuckDuckGoClient) Query(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", desktopUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var results []models.SearchResult
	doc.Find(".result__body").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if limit > 0 && len(results) >= limit {
			return false
		}
		titleSel := s.Find(".result__title a")
		snippetSel := s.Find(".result__snippet")
		if titleSel.Length() == 0 || snippetSel.Length() == 0 {
			return true
		}

		href, ok := titleSel.Attr("href")
		if !ok {
			return true
		}

		results = append(results, models.SearchResult{
			Title:     strings.TrimSpace(titleSel.Text()),
			Snippet:   strings.TrimSpace(snippetSel.Text()),
			SourceURL: unwrapRedirect(href),
			Query:     query,
		})
		return true
	})

	return results, nil
}

// unwrapRedirect resolves DuckDuckGo's /l/?uddg=... redirect links to the
// destination URL. Anything unexpected is returned as-is.
func unwrapRedirect(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
			return target
		}
	}
	return href
}
