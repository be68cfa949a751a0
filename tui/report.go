package tui

import (
	"fmt"
	"strings"

	"github.com/stain-win/passaudit/audit"
)

// Report renders an audit result as a styled terminal report: the score,
// length and active character classes, followed by the numbered risk and
// recommendation lists. It is shared by the TUI report screen and the
// one-shot `audit` command.
func Report(r audit.Result, width int) string {
	var b strings.Builder

	score := fmt.Sprintf("%d/10", r.Score)
	switch {
	case r.Score >= 8:
		score = scoreGoodStyle.Render(score)
	case r.Score >= 5:
		score = scoreWarnStyle.Render(score)
	default:
		score = scoreBadStyle.Render(score)
	}

	b.WriteString(labelStyle.Render("Score:") + " " + score + "\n")
	b.WriteString(labelStyle.Render("Length:") + fmt.Sprintf(" %d characters\n", r.Length))

	classes := strings.Join(r.Classes.Active(), ", ")
	if classes == "" {
		classes = "none"
	}
	b.WriteString(labelStyle.Render("Character classes:") + " " + classes + "\n")

	b.WriteString("\n" + labelStyle.Render("Detected risks:") + "\n")
	if len(r.Issues) == 0 {
		b.WriteString("- no obvious risks detected.\n")
	} else {
		for i, issue := range r.Issues {
			b.WriteString(issueStyle.Render(fmt.Sprintf("%d. %s", i+1, issue.Message)) + "\n")
		}
	}

	b.WriteString("\n" + labelStyle.Render("Recommendations:") + "\n")
	for i, rec := range r.Recommendations {
		b.WriteString(recStyle.Render(fmt.Sprintf("%d. %s", i+1, rec.Message)) + "\n")
	}

	return reportStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}
