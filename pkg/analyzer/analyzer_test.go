package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

var testExtractor *Extractor

func getExtractor(t *testing.T) *Extractor {
	t.Helper()
	if testExtractor == nil {
		e, err := New()
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		testExtractor = e
	}
	return testExtractor
}

func TestExtract_RetailChurn(t *testing.T) {
	e := getExtractor(t)

	sig := e.Extract("客戶流失率太高，希望能預測哪些客戶會離開", "零售", "行銷")

	if !sig.HasAction("預測分析") {
		t.Errorf("actions = %v, want 預測分析 included", sig.Actions)
	}
	if sig.IndustryFocus != "客戶" {
		t.Errorf("industry focus = %q, want 客戶", sig.IndustryFocus)
	}
	// No source phrase in the text: the retail default pair applies.
	want := []string{"POS/收銀", "CRM"}
	if !reflect.DeepEqual(sig.Sources, want) {
		t.Errorf("sources = %v, want %v", sig.Sources, want)
	}
	if !strings.Contains(sig.Summary, "零售") {
		t.Errorf("summary %q should mention the industry", sig.Summary)
	}
}

func TestExtract_NoIndustryFallbacks(t *testing.T) {
	e := getExtractor(t)

	sig := e.Extract("報表產出太慢，重複性工作太多需要自動化", "", "")

	if len(sig.Sources) == 0 || len(sig.Actions) == 0 || len(sig.Outputs) == 0 {
		t.Fatalf("fallbacks must keep sources/actions/outputs non-empty: %+v", sig)
	}
	if sig.IndustryFocus != "" {
		t.Errorf("focus = %q, want empty without industry table", sig.IndustryFocus)
	}
	if strings.Contains(sig.Summary, "💡") {
		t.Errorf("summary %q must not carry industry advice without an industry", sig.Summary)
	}
	if !strings.Contains(sig.Summary, "針對您描述的業務痛點") {
		t.Errorf("summary %q should open with the generic clause", sig.Summary)
	}
}

func TestExtract_Totality(t *testing.T) {
	e := getExtractor(t)

	inputs := []struct {
		text, industry, dept string
	}{
		{"x", "", ""},
		{"完全不含任何觸發詞的敘述喔", "未知產業", "未知部門"},
		{"nothing matches here at all", "", ""},
		{"！？。，", "", ""},
	}
	for _, in := range inputs {
		sig := e.Extract(in.text, in.industry, in.dept)
		if len(sig.Sources) == 0 {
			t.Errorf("Extract(%q) sources empty", in.text)
		}
		if len(sig.Actions) == 0 {
			t.Errorf("Extract(%q) actions empty", in.text)
		}
		if len(sig.Outputs) == 0 {
			t.Errorf("Extract(%q) outputs empty", in.text)
		}
		if sig.Summary == "" {
			t.Errorf("Extract(%q) summary empty", in.text)
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := getExtractor(t)

	const text = "品質檢測靠人工，瑕疵太多，需要即時警報"
	first := e.Extract(text, "製造", "品保")
	second := e.Extract(text, "製造", "品保")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract() not deterministic:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestKeywords_LatinFallback(t *testing.T) {
	e := getExtractor(t)

	kws := e.Keywords("reports reports reports are slow and manual manual work", 5)
	if len(kws) == 0 {
		t.Fatal("Keywords() empty for Latin text")
	}
	if kws[0] != "reports" {
		t.Errorf("top keyword = %q, want reports (highest frequency)", kws[0])
	}
	for _, k := range kws {
		if k == "are" || k == "and" {
			t.Errorf("stopword %q leaked into keywords", k)
		}
	}
}

func TestKeywords_Cap(t *testing.T) {
	e := getExtractor(t)

	long := strings.Repeat("庫存 缺貨 滯銷 訂單 業績 促銷 折扣 會員 回購 留客 忠誠度 廣告 ", 3)
	kws := e.Keywords(long, 10)
	if len(kws) > 10 {
		t.Errorf("Keywords() returned %d terms, cap is 10", len(kws))
	}
}

func TestFrequencyKeywords_TieOrder(t *testing.T) {
	// Equal counts keep first-appearance order.
	got := frequencyKeywords("alpha beta alpha beta gamma", 3)
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("frequencyKeywords() = %v, want %v", got, want)
	}
}
