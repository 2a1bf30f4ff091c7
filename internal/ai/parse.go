package ai

import (
	"regexp"
	"strings"
)

var (
	numberedLine = regexp.MustCompile(`^\s*\d+[.)]\s*(.+)$`)
	boldWrapper  = regexp.MustCompile(`^\*\*(.+)\*\*$`)

	designKeywords = []string{"shirt", "tee", "design", "print", "apparel"}
	techKeywords   = []string{"background", "vector", "isolated", "line art", "screen print"}
)

// ExtractNumberedItems pulls the payload of every "1. item" / "2) item"
// line out of a raw model response. Surrounding markdown emphasis and
// quotes are stripped; anything that is not a numbered line is ignored.
func ExtractNumberedItems(raw string) []string {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		m := numberedLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		item := strings.TrimSpace(m[1])
		if b := boldWrapper.FindStringSubmatch(item); b != nil {
			item = strings.TrimSpace(b[1])
		}
		item = strings.Trim(item, `"'*`)
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// ValidPrompt reports whether a candidate image prompt is usable for
// t-shirt production: long enough to carry detail, mentions the garment or
// design domain, and carries at least one print-readiness term.
func ValidPrompt(prompt string) bool {
	if len(prompt) <= 40 {
		return false
	}
	lower := strings.ToLower(prompt)
	return containsAny(lower, designKeywords) && containsAny(lower, techKeywords)
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// StripCodeFence removes a surrounding markdown code fence, with or
// without a language tag, from a model response expected to be JSON.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line, e.g. "json"
		first := strings.TrimSpace(s[:idx])
		if len(first) <= 10 && !strings.ContainsAny(first, "{}[]") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
