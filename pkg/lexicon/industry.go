package lexicon

import "strings"

// FocusPattern scores one industry-specific focus topic by counting trigger
// occurrences in the combined text.
type FocusPattern struct {
	Focus    string
	Triggers []string
}

// industryPatterns maps an industry to its ordered focus patterns. Order
// matters: ties in trigger counts resolve to the earlier entry.
var industryPatterns = map[string][]FocusPattern{
	"製造": {
		{"品質", []string{"品質", "不良率", "瑕疵", "良率", "品管", "品檢", "defect"}},
		{"產能", []string{"產能", "產量", "效率", "稼動率", "oee", "停機", "productiv"}},
		{"供應鏈", []string{"供應鏈", "原物料", "缺料", "庫存", "供應商", "採購", "交期"}},
		{"設備", []string{"設備", "機台", "維修", "保養", "故障", "維護", "preventive"}},
		{"人力", []string{"人力", "人員", "加班", "排班", "離職", "招募", "人事"}},
	},
	"零售": {
		{"客戶", []string{"客戶", "會員", "流失", "忠誠度", "留客", "回購"}},
		{"庫存", []string{"庫存", "缺貨", "滯銷", "存貨", "倉儲"}},
		{"銷售", []string{"銷售", "業績", "營收", "訂單", "促銷", "折扣"}},
		{"行銷", []string{"行銷", "廣告", "活動", "轉換率", "精準行銷"}},
	},
	"金融": {
		{"風控", []string{"風險", "風控", "信用", "審核", "違約", "徵信"}},
		{"客戶", []string{"客戶", "開戶", "kyc", "身分", "驗證"}},
		{"合規", []string{"合規", "法規", "洗錢", "aml", "申報"}},
	},
	"醫療": {
		{"看診", []string{"看診", "問診", "病患", "病歷", "診斷"}},
		{"排班", []string{"排班", "值班", "門診", "掛號", "預約"}},
		{"藥品", []string{"藥品", "用藥", "處方", "庫存", "藥物"}},
	},
	"餐飲": {
		{"訂單", []string{"訂單", "點餐", "出餐", "外送", "外帶"}},
		{"食材", []string{"食材", "進貨", "備料", "保鮮", "過期"}},
		{"人力", []string{"人力", "排班", "尖峰", "人手不足"}},
	},
}

// DetectFocus scores each focus pattern of the industry against the folded
// text and returns the focus with the strictly highest trigger count. Ties
// keep the earlier table entry; no table or no match yields "".
func DetectFocus(folded, industry string) string {
	patterns, ok := industryPatterns[industry]
	if !ok {
		return ""
	}
	best := ""
	bestCount := 0
	for _, p := range patterns {
		count := 0
		for _, t := range p.Triggers {
			if strings.Contains(folded, t) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = p.Focus
		}
	}
	return best
}

// industryDefaultSources supplies fallback data sources for known industries
// when detection finds none. Unknown industries get the generic pair.
var industryDefaultSources = map[string][]DataSource{
	"製造": {SourceERP, SourceDatabase},
	"零售": {SourcePOS, SourceCRM},
	"金融": {SourceDatabase, SourceAPI},
	"醫療": {SourceEHR, SourceDatabase},
	"餐飲": {SourcePOS, SourceForm},
	"電商": {SourceAPI, SourceDatabase},
	"物流": {SourceAPI, SourceDatabase},
	"教育": {SourceLMS, SourceForm},
}

// DefaultSources returns the fallback source pair for an industry.
func DefaultSources(industry string) []DataSource {
	if defaults, ok := industryDefaultSources[industry]; ok {
		out := make([]DataSource, len(defaults))
		copy(out, defaults)
		return out
	}
	return []DataSource{SourceSpreadsheet, SourceDatabase}
}

// actionHints is the reduced keyword table used to infer actions when the
// full action lexicon found nothing. Hints match as substrings of extracted
// keywords, not of the raw text.
var actionHints = []struct {
	Cat   Action
	Hints []string
}{
	{ActionPredict, []string{"流失", "預測", "趨勢", "需求", "銷量"}},
	{ActionAnomaly, []string{"異常", "不良", "瑕疵", "故障", "偏差", "波動"}},
	{ActionClassify, []string{"分類", "判斷", "辨識", "篩選"}},
	{ActionAggregate, []string{"統計", "報表", "彙總", "分析"}},
}

// InferActions scans extracted keywords against the hint table. The baseline
// aggregate action is returned when nothing matches, so the result is never
// empty.
func InferActions(keywords []string) []Action {
	var found []Action
	for _, h := range actionHints {
		for _, hint := range h.Hints {
			if keywordContains(keywords, hint) {
				found = append(found, h.Cat)
				break
			}
		}
	}
	if len(found) == 0 {
		return []Action{ActionAggregate}
	}
	return found
}

func keywordContains(keywords []string, hint string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, hint) {
			return true
		}
	}
	return false
}

// DefaultOutputs is the fixed baseline when no output phrase matched.
func DefaultOutputs() []Output {
	return []Output{OutputAlert, OutputReport}
}

// adviceTable holds industry+focus specific closing advice for summaries.
// Keyed by "industry/focus"; absent pairs simply add no advice clause.
var adviceTable = map[string]string{
	"製造/品質":  "。💡 建議導入自動化履歷追蹤，結合即時監控儀表板管理品質指標",
	"製造/產能":  "。💡 建議導入排程優化模組，搭配每日產能自動報表",
	"製造/供應鏈": "。💡 建議整合 ERP 庫存預警與供應商交期管理，降低缺料風險",
	"製造/設備":  "。💡 建議建立設備維護履歷系統，自動觸發保養提醒",
	"零售/客戶":  "。💡 建議建立 RFM 客戶分群模型，搭配再行銷自動化提升回購率",
	"零售/庫存":  "。💡 建議導入需求預測模型，搭配自動補貨觸發機制",
	"零售/銷售":  "。💡 建議建立銷售漏斗分析看板，結合促銷效果追蹤",
	"金融/風控":  "。💡 建議導入即時交易監控與異常評分機制，搭配人工覆審流程",
	"金融/客戶":  "。💡 建議建立 eKYC 自動化驗證流程，提升開戶效率",
	"金融/合規":  "。💡 建議導入自動合規報告生成與 AML 交易篩選",
	"醫療/看診":  "。💡 建議導入智慧問診輔助系統，結合病歷自動摘要",
	"醫療/排班":  "。💡 建議導入 AI 排班最佳化，考量人力需求與法規限制",
	"餐飲/訂單":  "。💡 建議導入智慧出餐排序系統，結合外送平台 API 整合",
	"餐飲/食材":  "。💡 建議導入食材用量預測，搭配供應商自動下單",
}

// Advice looks up the closing advice clause for an industry+focus pair.
func Advice(industry, focus string) (string, bool) {
	advice, ok := adviceTable[industry+"/"+focus]
	return advice, ok
}
