package roadmap

import (
	"fmt"
	"strings"

	"github.com/yhlin/n8n-consultant/models"
)

const reportWidth = 70

// FormatReport renders a roadmap as the printable text report shown by the
// CLI. Content is fully determined by the roadmap fields.
func FormatReport(rm models.Roadmap) string {
	if rm.SolutionID == noMatchID {
		return "未找到匹配的解決方案，請嘗試更具體的描述。"
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}
	rule := func(ch string) { line("%s", strings.Repeat(ch, reportWidth)) }

	line("")
	rule("=")
	line("         🤖 n8n AI 導入路徑圖 — Implementation Roadmap")
	rule("=")
	line("")
	line("  📌 營業項目：%s", rm.Industry)
	line("  📌 部門：%s", rm.Department)
	line("  📌 痛點描述：%s", rm.UserQuery)
	line("")
	if rm.Signals.Summary != "" {
		line("  🔍 痛點分析：%s", rm.Signals.Summary)
		line("")
	}

	rule("-")
	line("  🎯 推薦解決方案：%s（匹配度 %.2f）", rm.SolutionName, rm.MatchScore)
	rule("-")
	line("  工作流名稱：%s", rm.Workflow.Name)
	line("  說明：%s", rm.Workflow.Description)
	line("")
	line("  n8n 節點設計：")
	for i, node := range rm.Workflow.Nodes {
		line("    [%d] %s (%s)", i+1, node.Name, node.Type)
		line("        %s", node.Desc)
	}

	line("")
	rule("-")
	line("  📊 困難度：%s  (%d/5)", rm.DifficultyDisplay, rm.Difficulty)
	rule("-")
	line("  評分理由：")
	for i, reason := range rm.DifficultyReasons {
		line("    %d. %s", i+1, reason)
	}

	line("")
	rule("-")
	line("  📋 實施步驟")
	rule("-")
	for _, s := range rm.Steps {
		line("    Step %d：%s（%s）", s.Step, s.Title, s.Duration)
		line("        %s", s.Desc)
	}

	if len(rm.Alternatives) > 0 {
		line("")
		rule("-")
		line("  🔄 其他候選方案")
		rule("-")
		for _, alt := range rm.Alternatives {
			line("    • %s（匹配度 %.2f，困難度 %s）", alt.Name, alt.MatchScore, alt.DifficultyDisplay)
		}
	}

	if len(rm.Community) > 0 {
		line("")
		rule("-")
		line("  🌐 社群範本參考")
		rule("-")
		for _, cw := range rm.Community {
			line("    • %s（%d 個節點，困難度 %s）", cw.Name, cw.NodeCount, cw.DifficultyDisplay)
			if cw.URL != "" {
				line("      %s", cw.URL)
			}
		}
	}

	line("")
	rule("=")
	return b.String()
}
