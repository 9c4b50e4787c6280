package community

import (
	"strings"
	"testing"
)

func TestTranslateKeywords(t *testing.T) {
	query := TranslateKeywords([]string{"客戶", "流失", "預測"}, "零售")
	for _, want := range []string{"retail", "customer", "churn", "forecast"} {
		if !strings.Contains(query, want) {
			t.Errorf("query %q missing %q", query, want)
		}
	}

	// At most four fragments join the query.
	query = TranslateKeywords([]string{"客戶", "流失", "預測", "報表", "庫存"}, "零售")
	if got := len(strings.Split(query, " ")); got > 12 {
		t.Errorf("query has %d words, fragments not capped: %q", got, query)
	}
}

func TestTranslateKeywords_SubstringFallback(t *testing.T) {
	// 客戶流失 has no direct entry; it should hit a dictionary key by
	// containment instead.
	query := TranslateKeywords([]string{"客戶流失"}, "")
	if query == "workflow automation" {
		t.Errorf("expected substring fallback, got generic query")
	}
}

func TestTranslateKeywords_NeverEmpty(t *testing.T) {
	if got := TranslateKeywords(nil, ""); got != "workflow automation" {
		t.Errorf("empty keywords = %q, want generic query", got)
	}
	if got := TranslateKeywords([]string{"無對應詞彙"}, "不明產業"); got == "" {
		t.Error("query must never be empty")
	}
}

func TestTranslateToZH(t *testing.T) {
	got := TranslateToZH("Customer churn prediction workflow")
	for _, want := range []string{"客戶", "預測", "工作流"} {
		if !strings.Contains(got, want) {
			t.Errorf("translation %q missing %q", got, want)
		}
	}

	// Longest phrase wins over its component words.
	got = TranslateToZH("workflow automation")
	if got != "工作流自動化" {
		t.Errorf("phrase translation = %q, want 工作流自動化", got)
	}
}

func TestTranslateToZH_Deterministic(t *testing.T) {
	in := "Automated invoice processing with database sync"
	first := TranslateToZH(in)
	for i := 0; i < 5; i++ {
		if got := TranslateToZH(in); got != first {
			t.Fatalf("run %d: %q != %q", i, got, first)
		}
	}
}

func TestTranslateNodeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Schedule Trigger", "排程觸發"},
		{"My HTTP Request", "HTTP 請求"},
		{"Google Sheets", "Google 試算表"},
		{"OpenAI Chat", "OpenAI AI 模型"},
	}
	for _, tc := range cases {
		if got := TranslateNodeName(tc.in); got != tc.want {
			t.Errorf("TranslateNodeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
