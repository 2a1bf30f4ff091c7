package telegram

import (
	"regexp"
	"strings"
)

// MaxMessageLen is Telegram's hard ceiling for one message.
const MaxMessageLen = 4096

const ellipsis = "…"

// tags Telegram's HTML parse mode accepts and that reports may use.
var tagPattern = regexp.MustCompile(`</?(b|i|u|s|code|pre)>`)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape makes externally sourced text (titles, snippets, model output)
// safe to interpolate into an HTML-mode message.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// Sanitize enforces the two invariants every outgoing payload must hold:
// at most MaxMessageLen characters, and no opening tag left unclosed.
func Sanitize(text string) string {
	cut := MaxMessageLen
	for {
		candidate := balanceTags(truncateRunes(text, cut))
		if len([]rune(candidate)) <= MaxMessageLen {
			return candidate
		}
		// closing tags pushed us back over the ceiling; cut deeper
		cut -= 256
		if cut <= 0 {
			return truncateRunes(candidate, MaxMessageLen)
		}
	}
}

// truncateRunes cuts to at most n characters, never leaving a sliced-open
// tag at the end.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	out := string(runes[:n-1])
	if open := strings.LastIndex(out, "<"); open > strings.LastIndex(out, ">") {
		out = out[:open]
	}
	return out + ellipsis
}

// balanceTags appends the closing tags missing for any still-open
// formatting tag, innermost first.
func balanceTags(s string) string {
	var stack []string
	for _, match := range tagPattern.FindAllString(s, -1) {
		name := strings.Trim(match, "</>")
		if strings.HasPrefix(match, "</") {
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i] == name {
					stack = append(stack[:i], stack[i+1:]...)
					break
				}
			}
			continue
		}
		stack = append(stack, name)
	}

	var sb strings.Builder
	sb.WriteString(s)
	for i := len(stack) - 1; i >= 0; i-- {
		sb.WriteString("</" + stack[i] + ">")
	}
	return sb.String()
}
