package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func assertBalanced(t *testing.T, s string) {
	t.Helper()
	counts := map[string]int{}
	for _, m := range tagPattern.FindAllString(s, -1) {
		name := strings.Trim(m, "</>")
		if strings.HasPrefix(m, "</") {
			counts[name]--
		} else {
			counts[name]++
		}
	}
	for name, c := range counts {
		require.Zerof(t, c, "tag <%s> open/close mismatch in %q", name, s)
	}
}

func TestEscape(t *testing.T) {
	require.Equal(t, "a &amp;&amp; b &lt;c&gt;", Escape("a && b <c>"))
	require.Equal(t, "plain", Escape("plain"))
}

func TestSanitizeShortMessageUnchanged(t *testing.T) {
	msg := "<b>Report</b>\nAll fine."
	require.Equal(t, msg, Sanitize(msg))
}

func TestSanitizeClosesOpenTags(t *testing.T) {
	out := Sanitize("<b>bold <i>both")
	require.Equal(t, "<b>bold <i>both</i></b>", out)
	assertBalanced(t, out)
}

func TestSanitizeIgnoresAlreadyClosed(t *testing.T) {
	msg := "<b>a</b> <code>x</code> <i>b</i>"
	require.Equal(t, msg, Sanitize(msg))
}

func TestSanitizeTruncatesToLimit(t *testing.T) {
	long := strings.Repeat("word ", 2000)
	out := Sanitize(long)
	require.LessOrEqual(t, len([]rune(out)), MaxMessageLen)
	require.True(t, strings.HasSuffix(out, ellipsis))
}

func TestSanitizeTruncationKeepsTagsBalanced(t *testing.T) {
	long := "<b>header</b>\n<code>" + strings.Repeat("prompt text ", 1000) + "</code>"
	out := Sanitize(long)
	require.LessOrEqual(t, len([]rune(out)), MaxMessageLen)
	assertBalanced(t, out)
}

func TestSanitizeNeverLeavesSlicedTag(t *testing.T) {
	// place a tag right at the cut point
	long := strings.Repeat("x", MaxMessageLen-3) + "<code>abc</code>"
	out := Sanitize(long)
	require.LessOrEqual(t, len([]rune(out)), MaxMessageLen)
	require.NotRegexp(t, `<[a-z]*$`, out)
	assertBalanced(t, out)
}

func TestSanitizePathologicalNesting(t *testing.T) {
	long := strings.Repeat("<b>", 2000)
	out := Sanitize(long)
	require.LessOrEqual(t, len([]rune(out)), MaxMessageLen)
	assertBalanced(t, out)
}
