// Package ai turns research data into content through OpenRouter chat
// completions, degrading to the embedded fallback tables whenever the
// provider fails or answers with too little usable material.
package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/merchkit/trendagent/internal/fallback"
	"github.com/merchkit/trendagent/internal/models"
)

const (
	promptCount     = 5
	minValidPrompts = 3
	minContentLen   = 40
	maxDigestBytes  = 4096
)

type Generator struct {
	completer Completer
	log       *zap.Logger
}

func NewGenerator(completer Completer, log *zap.Logger) *Generator {
	return &Generator{completer: completer, log: log}
}

// GenerateImagePrompts asks the model for five production-ready image
// prompts based on the research bundle. Responses are reduced to their
// numbered lines and validated; fewer than three survivors means the
// deterministic fallback set is returned instead.
func (g *Generator) GenerateImagePrompts(ctx context.Context, bundle models.ResearchBundle) []string {
	digest := researchDigest(bundle)

	raw, err := g.completer.Complete(ctx, CompletionRequest{
		User:        buildPromptRequest(digest),
		Temperature: 0.9,
		MaxTokens:   1000,
	})
	if err != nil {
		g.log.Warn("prompt generation failed, using fallback prompts", zap.Error(err))
		return fallback.ImagePrompts()
	}

	var valid []string
	for _, item := range ExtractNumberedItems(raw) {
		if ValidPrompt(item) {
			valid = append(valid, item)
		}
	}
	if len(valid) < minValidPrompts {
		g.log.Warn("too few valid prompts in model response, using fallback prompts",
			zap.Int("valid", len(valid)))
		return fallback.ImagePrompts()
	}
	if len(valid) > promptCount {
		valid = valid[:promptCount]
	}

	g.log.Info("generated image prompts", zap.Int("count", len(valid)))
	return valid
}

// GenerateGigContent produces the marketing copy block for the report.
func (g *Generator) GenerateGigContent(ctx context.Context, bundle models.ResearchBundle) string {
	themes := topThemes(bundle, 3)

	raw, err := g.completer.Complete(ctx, CompletionRequest{
		User:        buildGigRequest(themes),
		Temperature: 0.7,
		MaxTokens:   300,
	})
	if err != nil || len(strings.TrimSpace(raw)) < minContentLen {
		g.log.Warn("gig content generation failed, using fallback copy", zap.Error(err))
		return fallback.GigCopy()
	}
	return strings.TrimSpace(raw)
}

func buildPromptRequest(digest string) string {
	var sb strings.Builder
	sb.WriteString("You are a professional prompt engineer for AI image generators, specializing in commercially viable t-shirt designs. ")
	sb.WriteString("Analyze the following research snippets from recent t-shirt trend searches and generate 5 production-quality prompts.\n\n")
	sb.WriteString("Research:\n")
	sb.WriteString(digest)
	sb.WriteString("\n\nInstructions:\n")
	sb.WriteString("1. Create 5 unique, detailed prompts inspired by the research.\n")
	sb.WriteString("2. Each prompt must be ready for a text-to-image API.\n")
	sb.WriteString("3. Include critical details for t-shirt printing: style, color palette, composition, and background (isolated on white is standard).\n")
	sb.WriteString("4. Optimize for commercial use: clean lines, scalable details, clear subject matter.\n")
	sb.WriteString("5. Format: a numbered list of 5 prompts. No extra explanations.\n\n")
	sb.WriteString("Example of a perfect prompt:\n")
	sb.WriteString("Minimalist single-line art of a cat, sleek and modern, black ink on a white background, vector style, high detail, commercial use ready.\n\n")
	sb.WriteString("Now generate 5 unique prompts based on the research:")
	return sb.String()
}

func buildGigRequest(themes []string) string {
	return fmt.Sprintf(`Act as a freelance-marketplace gig expert. Create compelling content for a T-shirt design gig.
Current trending themes: %s

Output format:
🎯 GIG TITLE: [catchy title under 60 characters]
📝 SHORT DESCRIPTION: [one sentence hook]
📦 PACKAGE IDEAS: [3 package options with prices]
🔍 SEO KEYWORDS: [5 relevant keywords]`, strings.Join(themes, ", "))
}

// researchDigest flattens the bundle into the context block sent to the
// model, capped so a noisy search day cannot blow up the request.
func researchDigest(bundle models.ResearchBundle) string {
	var sb strings.Builder
	for _, r := range bundle.Results {
		line := fmt.Sprintf("- [%s] %s: %s\n", r.Query, r.Title, r.Snippet)
		if sb.Len()+len(line) > maxDigestBytes {
			break
		}
		sb.WriteString(line)
	}
	if sb.Len() == 0 {
		sb.WriteString("- no live research available; trending evergreen themes: ")
		sb.WriteString(strings.Join(fallback.Themes(), ", "))
	}
	return sb.String()
}

func topThemes(bundle models.ResearchBundle, n int) []string {
	var themes []string
	for _, r := range bundle.Results {
		themes = append(themes, r.Title)
		if len(themes) == n {
			return themes
		}
	}
	for _, t := range fallback.Themes() {
		themes = append(themes, t)
		if len(themes) == n {
			break
		}
	}
	return themes
}
