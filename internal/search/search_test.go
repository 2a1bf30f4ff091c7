package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/merchkit/trendagent/internal/models"
)

const serpPage = `<!DOCTYPE html>
<html><body>
<div class="result__body">
  <h2 class="result__title"><a href="/l/?uddg=https%3A%2F%2Fexample.com%2Ftees&amp;rut=abc">Best graphic tee designs 2026</a></h2>
  <a class="result__snippet">The t-shirt design trends everyone is printing this year.</a>
</div>
<div class="result__body">
  <h2 class="result__title"><a href="https://example.org/cats">Cat videos compilation</a></h2>
  <a class="result__snippet">Funny cats doing cat things.</a>
</div>
<div class="result__body">
  <h2 class="result__title"><a href="/l/?uddg=https%3A%2F%2Fetsy.example%2Fshop">Vintage shirt shop</a></h2>
  <a class="result__snippet">Hand printed apparel with retro art.</a>
</div>
</body></html>`

func newTestQuerier(t *testing.T, handler http.HandlerFunc) *DuckDuckGoClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c := NewDuckDuckGoClient(5 * time.Second)
	c.baseURL = ts.URL + "/"
	return c
}

func TestDuckDuckGoQueryParsesResults(t *testing.T) {
	var gotUA string
	c := newTestQuerier(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		require.NotEmpty(t, r.URL.Query().Get("q"))
		w.Write([]byte(serpPage))
	})

	results, err := c.Query(context.Background(), "trending t-shirt designs", 10)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Contains(t, gotUA, "Mozilla/5.0")

	require.Equal(t, "Best graphic tee designs 2026", results[0].Title)
	require.Equal(t, "https://example.com/tees", results[0].SourceURL)
	require.Equal(t, "The t-shirt design trends everyone is printing this year.", results[0].Snippet)
	require.Equal(t, "trending t-shirt designs", results[0].Query)

	// direct hrefs pass through untouched
	require.Equal(t, "https://example.org/cats", results[1].SourceURL)
}

func TestDuckDuckGoQueryRespectsLimit(t *testing.T) {
	c := newTestQuerier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(serpPage))
	})

	results, err := c.Query(context.Background(), "q", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestDuckDuckGoQueryNon200(t *testing.T) {
	c := newTestQuerier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.Query(context.Background(), "q", 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}

func TestDuckDuckGoQueryMalformedMarkup(t *testing.T) {
	c := newTestQuerier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="totally-different">nothing here</div></body></html>`))
	})

	results, err := c.Query(context.Background(), "q", 5)
	require.NoError(t, err)
	require.Empty(t, results)
}

type stubQuerier struct {
	results map[string][]models.SearchResult
	err     error
	calls   []string
}

func (s *stubQuerier) Query(_ context.Context, query string, _ int) ([]models.SearchResult, error) {
	s.calls = append(s.calls, query)
	if s.err != nil {
		return nil, s.err
	}
	return s.results[query], nil
}

func TestResearchFiltersAndAggregates(t *testing.T) {
	stub := &stubQuerier{results: map[string][]models.SearchResult{
		"a": {
			{Title: "Minimalist tee ideas", Snippet: "clean shirt art", Query: "a"},
			{Title: "Celebrity gossip", Snippet: "nothing relevant here", Query: "a"},
		},
		"b": {
			{Title: "Vector design pack", Snippet: "print ready graphics", Query: "b"},
			{Title: "Screen print apparel", Snippet: "bulk orders", Query: "b"},
			{Title: "Stock market news", Snippet: "rates up", Query: "b"},
			{Title: "Best tshirt mockups", Snippet: "for your design shop", Query: "b"},
		},
	}}

	c := New(stub, time.Millisecond, 4, zap.NewNop())
	bundle := c.Research(context.Background(), []string{"a", "b"})

	require.Equal(t, []string{"a", "b"}, stub.calls)
	require.Len(t, bundle.Results, 4)
	for _, r := range bundle.Results {
		require.NotEqual(t, "fallback", r.Query)
	}
	require.Len(t, bundle.ByQuery("b"), 3)
}

func TestResearchProviderErrorFallsBack(t *testing.T) {
	stub := &stubQuerier{err: errors.New("connection refused")}

	c := New(stub, time.Millisecond, 4, zap.NewNop())
	bundle := c.Research(context.Background(), []string{"a", "b"})

	require.False(t, bundle.Empty())
	for _, r := range bundle.Results {
		require.Equal(t, "fallback", r.Query)
	}
}

func TestResearchBelowThresholdTopsUp(t *testing.T) {
	stub := &stubQuerier{results: map[string][]models.SearchResult{
		"a": {{Title: "One lonely tee result", Snippet: "shirt", Query: "a"}},
	}}

	c := New(stub, time.Millisecond, 4, zap.NewNop())
	bundle := c.Research(context.Background(), []string{"a"})

	require.Greater(t, len(bundle.Results), 1)
	require.Equal(t, "One lonely tee result", bundle.Results[0].Title)
	require.Equal(t, "fallback", bundle.Results[len(bundle.Results)-1].Query)
}

func TestResearchCancelledContext(t *testing.T) {
	stub := &stubQuerier{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(stub, time.Minute, 4, zap.NewNop())
	bundle := c.Research(ctx, []string{"a", "b"})

	// limiter wait fails immediately, still returns fallback input
	require.False(t, bundle.Empty())
}

func TestTrendQueriesIncludeCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	queries := TrendQueries(now)
	require.Len(t, queries, 4)
	require.Equal(t, "trending t-shirt designs August 2026", queries[0])
}
