package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/merchkit/trendagent/internal/fallback"
	"github.com/merchkit/trendagent/internal/models"
)

// AnalyzeOrder extracts the key requirements from a free-text client
// request. The model is asked for JSON; any decode failure yields the
// static analysis with the raw request as the design subject.
func (g *Generator) AnalyzeOrder(ctx context.Context, request string) models.OrderAnalysis {
	prompt := fmt.Sprintf(`Analyze this client request for a t-shirt design and extract key information.

Client request: %q

Respond with JSON only, using these keys:
- "client_name": extract if mentioned, otherwise "Client"
- "brand_name": extract brand/business name if mentioned
- "design_subject": main subject/theme requested
- "colors": array of specific colors mentioned
- "style_preferences": array of style keywords mentioned
- "special_requirements": array of special requirements (e.g. "for gym", "for coffee shop")
- "sentiment": one of "excited", "urgent", "professional", "casual"

Only include information explicitly mentioned or strongly implied.`, request)

	raw, err := g.completer.Complete(ctx, CompletionRequest{
		User:        prompt,
		Temperature: 0.3,
		MaxTokens:   300,
	})
	if err != nil {
		g.log.Warn("order analysis failed, using fallback analysis", zap.Error(err))
		return fallbackAnalysis(request)
	}

	var analysis models.OrderAnalysis
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &analysis); err != nil {
		g.log.Warn("order analysis response was not valid JSON", zap.Error(err))
		return fallbackAnalysis(request)
	}
	if analysis.ClientName == "" {
		analysis.ClientName = "Client"
	}
	if analysis.DesignSubject == "" {
		analysis.DesignSubject = truncateWords(request, 50)
	}
	return analysis
}

// GenerateConcepts produces three design concepts for the analyzed order.
func (g *Generator) GenerateConcepts(ctx context.Context, analysis models.OrderAnalysis) string {
	prompt := fmt.Sprintf(`You are a professional t-shirt designer responding to a client. Create 3 unique design concepts based on this analysis:

- Brand: %s
- Design Subject: %s
- Colors: %s
- Style Preferences: %s
- Special Requirements: %s
- Sentiment: %s

For each concept provide a catchy concept name, a 2-3 sentence description, a suggested color palette (2-3 colors), and 2-3 style keywords.

Format as a numbered list:
1. [Concept Name]
   Description: [description]
   Colors: [colors]
   Style: [style keywords]

Keep descriptions professional but engaging. Focus on commercial viability and print readiness.`,
		analysis.BrandName, analysis.DesignSubject,
		strings.Join(analysis.Colors, ", "),
		strings.Join(analysis.StylePreferences, ", "),
		strings.Join(analysis.SpecialRequirements, ", "),
		analysis.Sentiment)

	raw, err := g.completer.Complete(ctx, CompletionRequest{
		User:        prompt,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil || len(strings.TrimSpace(raw)) < minContentLen {
		g.log.Warn("concept generation failed, using fallback concepts", zap.Error(err))
		return fallback.OrderConcepts()
	}
	return strings.TrimSpace(raw)
}

// GenerateReply drafts the message the freelancer can paste back to the
// client, presenting the concepts and asking follow-up questions.
func (g *Generator) GenerateReply(ctx context.Context, analysis models.OrderAnalysis, concepts string) string {
	prompt := fmt.Sprintf(`You are a professional freelancer replying to a t-shirt design client. Write a warm, professional response that:

1. Acknowledges their request positively
2. Shows you understood their needs
3. Presents the design concepts clearly
4. Asks specific follow-up questions to narrow down preferences
5. Mentions a 24-48 hour delivery timeline and 2 included revision rounds
6. Ends with a clear call to action

Client name: %s
Brand: %s
Key requirements: %s, colors: %s

Design concepts:
%s

Use at most 1-2 emojis. Format as plain text ready to copy-paste.`,
		analysis.ClientName, analysis.BrandName, analysis.DesignSubject,
		strings.Join(analysis.Colors, ", "), concepts)

	raw, err := g.completer.Complete(ctx, CompletionRequest{
		User:        prompt,
		Temperature: 0.5,
		MaxTokens:   600,
	})
	if err != nil || len(strings.TrimSpace(raw)) < minContentLen {
		g.log.Warn("reply generation failed, using fallback reply", zap.Error(err))
		return renderFallbackReply(analysis)
	}
	return strings.TrimSpace(raw)
}

// GenerateOrderPrompts converts the concepts into per-concept image
// generation prompts with model/quality recommendations.
func (g *Generator) GenerateOrderPrompts(ctx context.Context, concepts string) []models.OrderPrompt {
	prompt := fmt.Sprintf(`Convert these 3 t-shirt design concepts into image generation prompts. Each prompt must be highly detailed, specify the style and color palette, mention "t-shirt design" and "white background", and include technical terms like "vector style", "clean lines", "isolated on white".

Design concepts:
%s

Respond with a JSON array only:
[
  {"concept_name": "...", "prompt": "...", "recommended_model": "dall-e-3 or gpt-image-1", "quality_setting": "hd or high"}
]`, concepts)

	raw, err := g.completer.Complete(ctx, CompletionRequest{
		User:        prompt,
		Temperature: 0.4,
		MaxTokens:   800,
	})
	if err != nil {
		g.log.Warn("order prompt generation failed, using fallback prompts", zap.Error(err))
		return fallback.OrderPrompts()
	}

	var prompts []models.OrderPrompt
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &prompts); err != nil || len(prompts) == 0 {
		g.log.Warn("order prompt response was not a valid JSON array", zap.Error(err))
		return fallback.OrderPrompts()
	}
	return prompts
}

func fallbackAnalysis(request string) models.OrderAnalysis {
	analysis := fallback.OrderAnalysis()
	if subject := truncateWords(request, 50); subject != "" {
		analysis.DesignSubject = subject
	}
	return analysis
}

func renderFallbackReply(analysis models.OrderAnalysis) string {
	reply := fallback.OrderReply()
	reply = strings.ReplaceAll(reply, "{client}", analysis.ClientName)
	reply = strings.ReplaceAll(reply, "{brand}", analysis.BrandName)
	return reply
}

func truncateWords(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}
