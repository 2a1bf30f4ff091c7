package orders

import (
	"fmt"
	"strings"
)

func (a *Assistant) renderReport(result Result) {
	out := a.out
	rule := strings.Repeat("=", 70)

	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "🤖 CLIENT ORDER ASSISTANT — %s\n", a.now().Format("2006-01-02 15:04"))
	fmt.Fprintln(out, rule)

	fmt.Fprintln(out, "\n🎯 CLIENT ORDER ANALYSIS")
	fmt.Fprintln(out, "========================")
	fmt.Fprintf(out, "Client Request: %q\n", result.Request)
	fmt.Fprintf(out, "Client: %s\n", result.Analysis.ClientName)
	fmt.Fprintf(out, "Brand: %s\n", result.Analysis.BrandName)
	fmt.Fprintf(out, "Design Subject: %s\n", result.Analysis.DesignSubject)
	fmt.Fprintf(out, "Colors: %s\n", strings.Join(result.Analysis.Colors, ", "))
	fmt.Fprintf(out, "Style Preferences: %s\n", strings.Join(result.Analysis.StylePreferences, ", "))
	fmt.Fprintf(out, "Special Requirements: %s\n", strings.Join(result.Analysis.SpecialRequirements, ", "))

	fmt.Fprintln(out, "\n🎨 DESIGN CONCEPTS")
	fmt.Fprintln(out, "==================")
	fmt.Fprintln(out, result.Concepts)

	fmt.Fprintln(out, "\n💬 READY-TO-SEND RESPONSE")
	fmt.Fprintln(out, "=========================")
	fmt.Fprintln(out, result.Reply)

	fmt.Fprintln(out, "\n⚡ IMAGE GENERATION PROMPTS")
	fmt.Fprintln(out, "===========================")
	for i, p := range result.Prompts {
		fmt.Fprintf(out, "\n🎨 Concept %d: %s\n", i+1, p.ConceptName)
		fmt.Fprintf(out, "   Model: %s\n", p.RecommendedModel)
		fmt.Fprintf(out, "   Quality: %s\n", p.QualitySetting)
		fmt.Fprintf(out, "   Prompt: %q\n", p.Prompt)
	}

	fmt.Fprintln(out, "\n📱 NEXT STEPS")
	fmt.Fprintln(out, "=============")
	fmt.Fprintln(out, "1. Copy the response above and send it to your client.")
	fmt.Fprintln(out, "2. Generate the design images with the prompts above.")
	fmt.Fprintln(out, "3. Review every AI-generated draft before sending it on.")
	fmt.Fprintln(out, "4. Wait for client feedback before producing final files.")
	fmt.Fprintln(out)
}
