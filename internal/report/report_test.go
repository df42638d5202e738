package report

import (
	"context"
	"strings"
	"testing"

	"settei/app"
	"settei/domain/confidence"
	"settei/ports"
)

func testResult(t *testing.T) *ports.EstimateResult {
	t.Helper()
	service := app.NewEstimateService(confidence.DefaultGoalConfigs(), nil)
	result, err := service.Estimate(context.Background(), ports.EstimateRequest{Spins: 1000, Hits: 44})
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	return result
}

func TestShareText(t *testing.T) {
	text := ShareText(testResult(t))

	for _, want := range []string{
		Title,
		"総回転数: 1000G",
		"小役回数: 44回",
		"最有力設定: 設定6",
		"各設定の事後確率:",
		"設定1:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("share text missing %q:\n%s", want, text)
		}
	}
	// One goal line per grouping, each with a star string.
	if strings.Count(text, "★") == 0 && strings.Count(text, "☆") == 0 {
		t.Errorf("share text missing star ratings:\n%s", text)
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(testResult(t))

	if !strings.HasPrefix(md, "# "+Title) {
		t.Errorf("markdown missing title heading:\n%s", md)
	}
	if !strings.Contains(md, "| 設定 |") {
		t.Errorf("markdown missing posterior table:\n%s", md)
	}
	if !strings.Contains(md, "## 設定456") {
		t.Errorf("markdown missing goal section:\n%s", md)
	}
}

func TestHTML(t *testing.T) {
	html := string(HTML(Markdown(testResult(t))))

	if !strings.Contains(html, "<h1") {
		t.Errorf("rendered HTML missing heading:\n%s", html)
	}
	if !strings.Contains(html, "<table") {
		t.Errorf("rendered HTML missing table:\n%s", html)
	}
}
