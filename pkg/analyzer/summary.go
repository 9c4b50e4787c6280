package analyzer

import (
	"fmt"
	"strings"

	"github.com/yhlin/n8n-consultant/models"
	"github.com/yhlin/n8n-consultant/pkg/lexicon"
)

// buildSummary assembles the analysis summary from the detected signals in a
// fixed clause order: industry opening, keyword clause, action clause, source
// clause, output clause, complexity warning, optional industry advice. Same
// input always yields the same string.
func buildSummary(sig models.SignalSet, industry string) string {
	var b strings.Builder

	switch {
	case industry != "" && sig.IndustryFocus != "":
		fmt.Fprintf(&b, "針對「%s」產業的「%s」問題進行深度分析", industry, sig.IndustryFocus)
	case industry != "":
		fmt.Fprintf(&b, "針對「%s」產業的業務痛點進行分析", industry)
	default:
		b.WriteString("針對您描述的業務痛點進行分析")
	}

	if len(sig.Keywords) > 0 {
		head := sig.Keywords
		if len(head) > 5 {
			head = head[:5]
		}
		fmt.Fprintf(&b, "。核心關鍵字為「%s」", strings.Join(head, "、"))
	}

	if len(sig.Actions) > 0 {
		joined := strings.Join(sig.Actions, "、")
		if len(sig.Actions) >= 3 {
			fmt.Fprintf(&b, "。系統偵測到多維度的處理需求：%s，建議分階段實施", joined)
		} else {
			fmt.Fprintf(&b, "。系統偵測到主要處理能力需求：%s", joined)
		}
	}

	if len(sig.Sources) > 0 {
		fmt.Fprintf(&b, "。資料將從 %s 取得", strings.Join(sig.Sources, "、"))
	}

	if len(sig.Outputs) > 0 {
		fmt.Fprintf(&b, "，結果透過 %s 輸出", strings.Join(sig.Outputs, "、"))
	}

	if len(sig.Complexity) > 0 {
		joined := strings.Join(sig.Complexity, "、")
		if len(sig.Complexity) >= 2 {
			fmt.Fprintf(&b, "。⚠️ 注意複雜度因素：%s，建議由資深工程師協助實施", joined)
		} else {
			fmt.Fprintf(&b, "。注意複雜度因素：%s", joined)
		}
	}

	if advice, ok := lexicon.Advice(industry, sig.IndustryFocus); ok {
		b.WriteString(advice)
	}

	b.WriteString("。")
	return b.String()
}
