package composer

import (
	"fmt"
	"strings"

	"github.com/yhlin/n8n-consultant/models"
)

const (
	difficultyBase = 1
	difficultyCap  = 5
	longFlowNodes  = 7
)

// advancedActions are capabilities that add a difficulty point for model or
// prompt tuning work.
var advancedActions = map[string]struct{}{
	"影像辨識": {}, "預測分析": {}, "風險評估": {}, "推薦引擎": {}, "排程優化": {},
}

// simpleActions never add difficulty on their own.
var simpleActions = map[string]struct{}{
	"統計彙總": {}, "資料比對": {},
}

// complexityReasons maps each risk flag to its score contribution text, in
// the order flags are evaluated.
var complexityReasons = []struct {
	Flag   string
	Reason string
}{
	{"即時處理", "需要即時處理能力，對系統延遲有較高要求"},
	{"大量資料", "涉及大量資料處理，需考慮分頁與效能優化"},
	{"多系統整合", "需跨多個系統整合資料，API 相容性是主要挑戰"},
	{"合規/安全", "涉及合規或安全要求，需額外注意資料處理規範"},
	{"跨部門協作", "需要跨部門協作推動，組織溝通成本較高"},
	{"機器學習", "需要機器學習模型，訓練與維護成本較高"},
}

// ScoreDifficulty rates the composed workflow from 1 to 5 and explains every
// point added. The score is monotone in the signal set: adding sources,
// advanced actions or complexity flags never lowers it. Reasons is never
// empty.
func ScoreDifficulty(sig models.SignalSet, nodeCount int) models.Difficulty {
	score := difficultyBase
	var reasons []string

	if len(sig.Sources) >= 2 {
		score++
		reasons = append(reasons, fmt.Sprintf("需要整合 %d 個資料來源（%s），增加串接工作量",
			len(sig.Sources), strings.Join(sig.Sources, "、")))
	} else if len(sig.Sources) == 1 {
		reasons = append(reasons, fmt.Sprintf("資料來源為 %s，串接難度適中", sig.Sources[0]))
	}

	var hard []string
	for _, a := range sig.Actions {
		if _, ok := advancedActions[a]; ok {
			hard = append(hard, a)
		}
	}
	if len(hard) > 0 {
		score++
		reasons = append(reasons, fmt.Sprintf("涉及進階 AI 能力（%s），需要調校模型參數與 Prompt",
			strings.Join(hard, "、")))
	}
	if len(sig.Actions) > 0 && allSimple(sig.Actions) {
		reasons = append(reasons, "處理邏輯以統計與比對為主，邏輯相對單純")
	}

	for _, c := range complexityReasons {
		if sig.HasComplexity(c.Flag) {
			score++
			reasons = append(reasons, c.Reason)
		}
	}

	if nodeCount >= longFlowNodes {
		score++
		reasons = append(reasons, fmt.Sprintf("工作流包含 %d 個節點，流程較長，測試與除錯需要更多時間", nodeCount))
	}

	if score > difficultyCap {
		score = difficultyCap
	}
	if score <= 2 && len(reasons) < 3 {
		reasons = append(reasons, "整體而言是入門級 n8n 工作流，適合初次使用者")
	}

	return models.Difficulty{Score: score, Reasons: reasons}
}

func allSimple(actions []string) bool {
	for _, a := range actions {
		if _, ok := simpleActions[a]; !ok {
			return false
		}
	}
	return true
}

// Stars renders a 1-5 score as a filled and hollow star bar.
func Stars(score int) string {
	if score < 0 {
		score = 0
	}
	if score > difficultyCap {
		score = difficultyCap
	}
	return strings.Repeat("★", score) + strings.Repeat("☆", difficultyCap-score)
}
