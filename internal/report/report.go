// Package report composes the shareable text and markdown summaries of an
// estimate. The share text mirrors the copy-paste block the tool's UI
// exposes; the markdown variant renders to HTML for API consumers.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"settei/ports"
)

// Title heads every share block.
const Title = "モンキーターンV 判別結果"

// ShareText builds the plain-text summary block for clipboard sharing.
func ShareText(res *ports.EstimateResult) string {
	var b strings.Builder
	b.WriteString(Title + "\n")
	fmt.Fprintf(&b, "総回転数: %dG\n", res.Spins)
	fmt.Fprintf(&b, "小役回数: %d回\n", res.Hits)
	fmt.Fprintf(&b, "最有力設定: 設定%s (%.2f%%)\n", res.TopKey, res.TopProbPct)
	fmt.Fprintf(&b, "低設定(1・2): %.2f%%\n", res.LowGroupPct)
	fmt.Fprintf(&b, "高設定(4・5・6): %.2f%%\n", res.HighGroupPct)
	b.WriteString("各設定の事後確率:\n")
	for _, row := range res.Rows {
		fmt.Fprintf(&b, "  設定%s: %.2f%% (事前 %.2f%%)\n", row.Key, row.PosteriorPct, row.PriorPct)
	}
	for _, goal := range res.Goals {
		fmt.Fprintf(&b, "%s: %s %s\n", goal.Label, goal.Evaluation.Stars, goal.Evaluation.Comment)
	}
	return b.String()
}

// Markdown builds a markdown report of the estimate.
func Markdown(res *ports.EstimateResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", Title)
	fmt.Fprintf(&b, "- 総回転数: **%dG**\n", res.Spins)
	fmt.Fprintf(&b, "- 小役回数: **%d回** (%.2f%%, 95%%CI %.2f-%.2f%%)\n",
		res.Hits, res.HitRatePct, res.IntervalLowPct, res.IntervalHighPct)
	fmt.Fprintf(&b, "- 最有力設定: **設定%s** (%.2f%%)\n\n", res.TopKey, res.TopProbPct)

	b.WriteString("| 設定 | 確率(1/x) | 事前(%) | 事後(%) |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, row := range res.Rows {
		fmt.Fprintf(&b, "| %s | 1/%.2f | %.2f | %.2f |\n",
			row.Key, row.Denominator, row.PriorPct, row.PosteriorPct)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "低設定(1,2) %.2f%% / 高設定(4,5,6) %.2f%%、(1,2,4) %.2f%% / (5,6) %.2f%%\n\n",
		res.LowGroupPct, res.HighGroupPct, res.Grp124Pct, res.Grp56Pct)

	for _, goal := range res.Goals {
		fmt.Fprintf(&b, "## %s %s\n\n%s\n\n", goal.Label, goal.Evaluation.Stars, goal.Evaluation.Comment)
	}
	return b.String()
}

// HTML renders a markdown report to HTML.
func HTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}
