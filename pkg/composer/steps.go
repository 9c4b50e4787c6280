package composer

import (
	"fmt"
	"strings"

	"github.com/yhlin/n8n-consultant/models"
)

// advancedCoreActions stretch the core-logic stage from days to a week.
var advancedCoreActions = map[string]struct{}{
	"預測分析": {}, "影像辨識": {}, "風險評估": {},
}

// PlanSteps turns a signal set into a staged implementation plan. Stage
// ordinals start at 1 and are contiguous; optional stages only shift later
// ordinals, never leave gaps. The opening, testing and go-live stages are
// always present.
func PlanSteps(sig models.SignalSet) []models.Step {
	target := subject(sig)
	var steps []models.Step
	num := 1

	srcText := "資料接口"
	if len(sig.Sources) > 0 {
		srcText = strings.Join(capped(sig.Sources, 2), "、")
	}
	steps = append(steps, models.Step{
		Step:  num,
		Title: "需求確認與資料盤點",
		Desc: fmt.Sprintf("盤點「%s」相關數據的來源與格式，確認可用的 %s，並定義預期的自動化目標。",
			target, srcText),
		Duration: "1~2 天",
	})
	num++

	if len(sig.Sources) > 0 {
		joined := strings.Join(capped(sig.Sources, 2), "、")
		duration := "1~2 天"
		if len(sig.Sources) >= 2 {
			duration = "2~3 天"
		}
		steps = append(steps, models.Step{
			Step:     num,
			Title:    fmt.Sprintf("串接資料來源（%s）", joined),
			Desc:     fmt.Sprintf("在 n8n 中設定 %s 的連線，測試資料讀取是否正確，確認欄位對應。", joined),
			Duration: duration,
		})
		num++
	}

	if len(sig.Actions) > 0 {
		joined := strings.Join(capped(sig.Actions, 2), "、")
		duration := "2~3 天"
		for _, a := range sig.Actions {
			if _, ok := advancedCoreActions[a]; ok {
				duration = "3~5 天"
				break
			}
		}
		steps = append(steps, models.Step{
			Step:  num,
			Title: fmt.Sprintf("建構核心邏輯（%s）", joined),
			Desc: fmt.Sprintf("在 n8n 中建立「%s」的%s處理節點，撰寫必要的 Prompt 或計算邏輯，並以小量測試資料驗證。",
				target, joined),
			Duration: duration,
		})
		num++
	}

	if NeedsDecision(sig) {
		steps = append(steps, models.Step{
			Step:  num,
			Title: "設定條件分流與閾值",
			Desc: fmt.Sprintf("設定 IF/Switch 節點的判斷閾值（例如：風險高/中/低），確保「%s」分流邏輯準確。",
				target),
			Duration: "1~2 天",
		})
		num++
	}

	if len(sig.Outputs) > 0 {
		joined := strings.Join(capped(sig.Outputs, 2), "、")
		steps = append(steps, models.Step{
			Step:     num,
			Title:    fmt.Sprintf("設定輸出通道（%s）", joined),
			Desc:     fmt.Sprintf("設定%s節點，確保「%s」處理結果能正確送達通知對象。", joined, target),
			Duration: "1~2 天",
		})
		num++
	}

	steps = append(steps, models.Step{
		Step:  num,
		Title: "端到端測試與微調",
		Desc: fmt.Sprintf("用真實資料執行完整工作流，驗證從資料匯入到結果輸出的全流程，微調%s相關參數。",
			target),
		Duration: "2~3 天",
	})
	num++

	steps = append(steps, models.Step{
		Step:     num,
		Title:    "正式上線與監控",
		Desc:     "啟用排程或觸發條件，監控前 1~2 週的執行紀錄，處理邊界情況或例外。",
		Duration: "持續",
	})

	return steps
}
