package composer

import (
	"fmt"
	"strings"

	"github.com/yhlin/n8n-consultant/models"
	"github.com/yhlin/n8n-consultant/pkg/textutil"
)

const (
	maxSourceNodes  = 2
	maxProcessNodes = 2
	maxOutputNodes  = 2
	fallbackSubject = "業務數據"
)

// decisionActions are the processing capabilities whose results need a
// branching node downstream.
var decisionActions = []string{"分類判斷", "風險評估", "異常偵測", "預測分析"}

// genericSubjects are keywords too generic to serve as the workflow subject.
var genericSubjects = map[string]struct{}{
	"我們": {}, "公司": {}, "系統": {}, "問題": {}, "希望": {},
	"可以": {}, "因為": {}, "目前": {}, "常常": {}, "太多": {},
	"太高": {}, "太低": {}, "很多": {}, "一直": {}, "經常": {},
	"需要": {}, "想要": {}, "如何": {}, "怎麼": {}, "不知道": {},
	"沒有": {}, "無法": {}, "進行": {},
}

// Compose assembles the node sequence for one signal set: one trigger, up to
// two source nodes, up to two process nodes, an optional decision node, up to
// two output nodes and a closing log node. Node order always follows that
// pipeline shape regardless of detection order.
func Compose(sig models.SignalSet, industry string) models.Workflow {
	target := subject(sig)

	nodes := []models.Node{selectTrigger(sig)}

	for _, src := range capped(sig.Sources, maxSourceNodes) {
		tpl, ok := sourceNodes[src]
		if !ok {
			continue
		}
		nodes = append(nodes, models.Node{Name: tpl.Name, Type: tpl.Type, Desc: tpl.describe(target)})
	}

	for _, act := range capped(sig.Actions, maxProcessNodes) {
		tpl, ok := processNodes[act]
		if !ok {
			continue
		}
		nodes = append(nodes, models.Node{Name: tpl.Name, Type: tpl.Type, Desc: fmt.Sprintf(tpl.DescFmt, target)})
	}

	if NeedsDecision(sig) {
		nodes = append(nodes, models.Node{
			Name: decisionNodeName,
			Type: decisionNodeType,
			Desc: fmt.Sprintf(decisionDescFmt, criteria(sig, target)),
		})
	}

	for _, out := range capped(sig.Outputs, maxOutputNodes) {
		tpl, ok := outputNodes[out]
		if !ok {
			continue
		}
		nodes = append(nodes, models.Node{Name: tpl.Name, Type: tpl.Type, Desc: tpl.Describe(target)})
	}

	nodes = append(nodes, models.Node{
		Name: logNodeName,
		Type: logNodeType,
		Desc: fmt.Sprintf(logDescFmt, target),
	})

	return models.Workflow{
		Name:        workflowName(target, sig, industry),
		Description: workflowDescription(target, sig),
		Nodes:       nodes,
	}
}

// NeedsDecision reports whether the signal set calls for a branching node.
func NeedsDecision(sig models.SignalSet) bool {
	for _, a := range decisionActions {
		if sig.HasAction(a) {
			return true
		}
	}
	return false
}

// subject picks the noun injected into node templates: the industry focus
// when one was detected, otherwise the first non-generic keyword of at least
// two runes, otherwise a neutral default.
func subject(sig models.SignalSet) string {
	if sig.IndustryFocus != "" {
		return sig.IndustryFocus
	}
	for _, kw := range sig.Keywords {
		if _, generic := genericSubjects[kw]; generic {
			continue
		}
		if textutil.RuneLen(kw) >= 2 {
			return kw
		}
	}
	return fallbackSubject
}

func selectTrigger(sig models.SignalSet) models.Node {
	if sig.HasComplexity("即時處理") {
		return models.Node{
			Name: "Webhook 觸發",
			Type: "Webhook",
			Desc: "接收即時事件通知，立即啟動處理流程",
		}
	}
	if sig.HasOutput("自動回覆") {
		return models.Node{
			Name: "Webhook 觸發",
			Type: "Webhook",
			Desc: "收到客戶請求時即時啟動工作流",
		}
	}
	return models.Node{
		Name: "排程觸發",
		Type: "Schedule Trigger",
		Desc: "每日定時自動執行工作流",
	}
}

// criteria phrases the branching condition; risk-like capabilities win over
// anomaly detection, which wins over plain classification.
func criteria(sig models.SignalSet, target string) string {
	switch {
	case sig.HasAction("風險評估") || sig.HasAction("預測分析"):
		return target + "風險評分"
	case sig.HasAction("異常偵測"):
		return target + "異常偵測"
	case sig.HasAction("分類判斷"):
		return target + "分類"
	}
	return target + "分析"
}

func workflowName(target string, sig models.SignalSet, industry string) string {
	act := "自動分析"
	if len(sig.Actions) > 0 {
		act = sig.Actions[0]
	}
	return industry + target + act + "自動化"
}

func workflowDescription(target string, sig models.SignalSet) string {
	acts := "資料處理"
	if len(sig.Actions) > 0 {
		acts = strings.Join(capped(sig.Actions, 2), "與")
	}
	outs := "結果輸出"
	if len(sig.Outputs) > 0 {
		outs = strings.Join(capped(sig.Outputs, 2), "與")
	}
	return fmt.Sprintf("針對「%s」問題，自動進行 %s，並透過 %s 將結果即時傳達給相關人員。", target, acts, outs)
}

func capped(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
