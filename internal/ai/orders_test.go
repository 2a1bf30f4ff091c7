package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/merchkit/trendagent/internal/fallback"
	"github.com/merchkit/trendagent/internal/models"
)

func TestAnalyzeOrderParsesJSON(t *testing.T) {
	mock := &mockCompleter{response: "```json\n" + `{
		"client_name": "Sam",
		"brand_name": "Morning Brew",
		"design_subject": "coffee cups and mountains",
		"colors": ["brown", "cream"],
		"style_preferences": ["modern", "minimalist"],
		"special_requirements": ["for coffee shop"],
		"sentiment": "excited"
	}` + "\n```"}
	g := NewGenerator(mock, zap.NewNop())

	analysis := g.AnalyzeOrder(context.Background(), "I need a shirt for my coffee shop Morning Brew")
	require.Equal(t, "Sam", analysis.ClientName)
	require.Equal(t, "Morning Brew", analysis.BrandName)
	require.Equal(t, []string{"brown", "cream"}, analysis.Colors)
	require.InDelta(t, 0.3, mock.requests[0].Temperature, 0.001)
}

func TestAnalyzeOrderInvalidJSONFallsBack(t *testing.T) {
	mock := &mockCompleter{response: "Sure! The client wants a coffee themed shirt."}
	g := NewGenerator(mock, zap.NewNop())

	request := "I need a t-shirt design for my coffee shop called Morning Brew with mountains"
	analysis := g.AnalyzeOrder(context.Background(), request)

	require.Equal(t, "Client", analysis.ClientName)
	require.Contains(t, analysis.DesignSubject, "I need a t-shirt design")
}

func TestAnalyzeOrderProviderErrorFallsBack(t *testing.T) {
	g := NewGenerator(&mockCompleter{err: errors.New("429")}, zap.NewNop())

	analysis := g.AnalyzeOrder(context.Background(), "short request")
	require.Equal(t, "Client", analysis.ClientName)
	require.Equal(t, "short request", analysis.DesignSubject)
}

func TestGenerateConceptsFallsBack(t *testing.T) {
	g := NewGenerator(&mockCompleter{err: errors.New("timeout")}, zap.NewNop())

	concepts := g.GenerateConcepts(context.Background(), fallback.OrderAnalysis())
	require.Equal(t, fallback.OrderConcepts(), concepts)
	require.Contains(t, concepts, "1. Minimalist Brand Focus")
}

func TestGenerateReplySubstitutesNames(t *testing.T) {
	g := NewGenerator(&mockCompleter{err: errors.New("timeout")}, zap.NewNop())

	analysis := models.OrderAnalysis{ClientName: "Sam", BrandName: "Morning Brew"}
	reply := g.GenerateReply(context.Background(), analysis, "concepts")
	require.Contains(t, reply, "Hi Sam!")
	require.Contains(t, reply, "Morning Brew")
	require.NotContains(t, reply, "{client}")
	require.NotContains(t, reply, "{brand}")
}

func TestGenerateOrderPromptsParsesArray(t *testing.T) {
	mock := &mockCompleter{response: `[
		{"concept_name": "A", "prompt": "p1", "recommended_model": "dall-e-3", "quality_setting": "hd"},
		{"concept_name": "B", "prompt": "p2", "recommended_model": "gpt-image-1", "quality_setting": "high"}
	]`}
	g := NewGenerator(mock, zap.NewNop())

	prompts := g.GenerateOrderPrompts(context.Background(), "concepts")
	require.Len(t, prompts, 2)
	require.Equal(t, "A", prompts[0].ConceptName)
	require.Equal(t, "gpt-image-1", prompts[1].RecommendedModel)
}

func TestGenerateOrderPromptsFallsBack(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		g := NewGenerator(&mockCompleter{response: "here you go"}, zap.NewNop())
		require.Equal(t, fallback.OrderPrompts(), g.GenerateOrderPrompts(context.Background(), "c"))
	})

	t.Run("empty array", func(t *testing.T) {
		g := NewGenerator(&mockCompleter{response: "[]"}, zap.NewNop())
		require.Equal(t, fallback.OrderPrompts(), g.GenerateOrderPrompts(context.Background(), "c"))
	})

	t.Run("provider error", func(t *testing.T) {
		g := NewGenerator(&mockCompleter{err: errors.New("boom")}, zap.NewNop())
		require.Equal(t, fallback.OrderPrompts(), g.GenerateOrderPrompts(context.Background(), "c"))
	})
}
