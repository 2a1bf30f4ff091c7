package agent

import (
	"fmt"
	"strings"
	"time"

	"github.com/merchkit/trendagent/internal/models"
	"github.com/merchkit/trendagent/internal/telegram"
)

const (
	reportTrendCount = 3
	failureErrLimit  = 200
	reportTimeLayout = "2006-01-02 15:04"
)

// BuildReport assembles the HTML report sent to the chat. Dynamic text is
// escaped; the formatting tags are ours.
func BuildReport(now time.Time, bundle models.ResearchBundle, prompts []string, gigCopy string) string {
	var sb strings.Builder

	sb.WriteString("🤖 <b>AI T-SHIRT DESIGN AGENT REPORT</b>\n")
	sb.WriteString("⏱️ " + now.Format(reportTimeLayout) + "\n\n")

	sb.WriteString("📊 <b>TREND RESEARCH</b>\n")
	shown := 0
	for _, r := range bundle.Results {
		if shown == reportTrendCount {
			break
		}
		sb.WriteString(fmt.Sprintf("• <b>%s</b>: <i>%s</i>\n",
			telegram.Escape(r.Title), telegram.Escape(r.Snippet)))
		shown++
	}

	sb.WriteString("\n🎨 <b>READY-TO-USE IMAGE PROMPTS</b>\n")
	sb.WriteString("<i>Copy and paste into the generator:</i>\n\n")
	for i, prompt := range prompts {
		sb.WriteString(fmt.Sprintf("%d. <code>%s</code>\n\n", i+1, telegram.Escape(prompt)))
	}

	sb.WriteString("📝 <b>GIG CONTENT SUGGESTIONS</b>\n")
	sb.WriteString(telegram.Escape(gigCopy) + "\n\n")

	sb.WriteString("✅ <b>NEXT STEPS</b>\n")
	sb.WriteString("1. Copy a prompt and paste it into the image generator.\n")
	sb.WriteString("2. Generate designs and save your favorites.\n")
	sb.WriteString("3. Upload the best ones to your gig gallery.\n\n")

	sb.WriteString("🔄 <b>Next research cycle will begin in 6 hours.</b>")

	return sb.String()
}

// FailureNotice is the distinct report sent when a cycle dies unexpectedly.
func FailureNotice(now time.Time, errText string) string {
	if len([]rune(errText)) > failureErrLimit {
		errText = string([]rune(errText)[:failureErrLimit]) + "…"
	}
	var sb strings.Builder
	sb.WriteString("⚠️ <b>AGENT CYCLE FAILED</b>\n")
	sb.WriteString("⏱️ " + now.Format(reportTimeLayout) + "\n\n")
	sb.WriteString("<code>" + telegram.Escape(errText) + "</code>\n\n")
	sb.WriteString("🔄 The next scheduled attempt will run in 6 hours.")
	return sb.String()
}
