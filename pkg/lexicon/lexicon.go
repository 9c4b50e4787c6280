// Package lexicon holds the immutable trigger-phrase tables that drive signal
// extraction. Each of the four dimensions is a closed enum with an ordered
// trigger list; detection scans tables in declaration order so results are
// deterministic. Categories are not mutually exclusive: one text may match
// several within a dimension.
//
// Trigger phrases are stored lower-cased; callers must match against
// textutil.Fold()ed text.
package lexicon

import "strings"

// DataSource identifies where the automation reads its data from.
type DataSource int

const (
	SourceCRM DataSource = iota
	SourceERP
	SourceDatabase
	SourceSpreadsheet
	SourceAPI
	SourceEmail
	SourceWeb
	SourceSocial
	SourceIoT
	SourceForm
	SourceFile
	SourcePOS
	SourceEHR
	SourceLMS
)

var sourceLabels = [...]string{
	SourceCRM:         "CRM",
	SourceERP:         "ERP",
	SourceDatabase:    "資料庫",
	SourceSpreadsheet: "Excel/CSV",
	SourceAPI:         "API 介接",
	SourceEmail:       "Email",
	SourceWeb:         "網站/爬蟲",
	SourceSocial:      "社群媒體",
	SourceIoT:         "IoT/感測器",
	SourceForm:        "表單系統",
	SourceFile:        "檔案系統",
	SourcePOS:         "POS/收銀",
	SourceEHR:         "EHR/病歷",
	SourceLMS:         "LMS/教學",
}

func (s DataSource) String() string { return sourceLabels[s] }

// SourceByLabel resolves a label back to its enum value.
func SourceByLabel(label string) (DataSource, bool) {
	for i, l := range sourceLabels {
		if l == label {
			return DataSource(i), true
		}
	}
	return 0, false
}

type sourceEntry struct {
	Cat      DataSource
	Triggers []string
}

var sourceTable = []sourceEntry{
	{SourceCRM, []string{"crm", "客戶關係", "客戶管理", "客戶資料", "會員資料", "客戶系統"}},
	{SourceERP, []string{"erp", "企業資源", "進銷存", "庫存系統"}},
	{SourceDatabase, []string{"資料庫", "database", "db", "sql", "數據庫"}},
	{SourceSpreadsheet, []string{"excel", "csv", "試算表", "報表", "表格", "spreadsheet"}},
	{SourceAPI, []string{"api", "介接", "串接", "第三方", "外部系統", "webhook"}},
	{SourceEmail, []string{"email", "郵件", "信箱", "mail", "電子郵件"}},
	{SourceWeb, []string{"網站", "爬蟲", "網頁", "crawler", "scraping"}},
	{SourceSocial, []string{"facebook", "fb", "ig", "instagram", "line", "社群", "粉專", "貼文"}},
	{SourceIoT, []string{"iot", "感測器", "sensor", "溫度", "濕度", "壓力", "振動", "電壓", "電流", "轉速"}},
	{SourceForm, []string{"表單", "google form", "問卷", "typeform", "申請單", "簽核"}},
	{SourceFile, []string{"檔案", "文件", "pdf", "圖片", "照片", "影像", "掃描", "合約"}},
	{SourcePOS, []string{"pos", "收銀", "結帳", "交易紀錄"}},
	{SourceEHR, []string{"病歷", "ehr", "醫療紀錄", "看診", "掛號"}},
	{SourceLMS, []string{"lms", "學習", "教學平台", "課程", "學生"}},
}

// DetectSources returns the data-source categories whose trigger phrases
// occur in the folded text, in table order, each at most once.
func DetectSources(folded string) []DataSource {
	var found []DataSource
	for _, e := range sourceTable {
		if matchAny(folded, e.Triggers) {
			found = append(found, e.Cat)
		}
	}
	return found
}

// Action identifies the processing capability the pain point asks for.
type Action int

const (
	ActionPredict Action = iota
	ActionClassify
	ActionTextAnalysis
	ActionVision
	ActionReconcile
	ActionAggregate
	ActionSchedule
	ActionRisk
	ActionAnomaly
	ActionRecommend
)

var actionLabels = [...]string{
	ActionPredict:      "預測分析",
	ActionClassify:     "分類判斷",
	ActionTextAnalysis: "文字分析",
	ActionVision:       "影像辨識",
	ActionReconcile:    "資料比對",
	ActionAggregate:    "統計彙總",
	ActionSchedule:     "排程優化",
	ActionRisk:         "風險評估",
	ActionAnomaly:      "異常偵測",
	ActionRecommend:    "推薦引擎",
}

func (a Action) String() string { return actionLabels[a] }

// ActionByLabel resolves a label back to its enum value.
func ActionByLabel(label string) (Action, bool) {
	for i, l := range actionLabels {
		if l == label {
			return Action(i), true
		}
	}
	return 0, false
}

type actionEntry struct {
	Cat      Action
	Triggers []string
}

var actionTable = []actionEntry{
	{ActionPredict, []string{"預測", "predict", "forecast", "趨勢", "未來", "預估", "銷量"}},
	{ActionClassify, []string{"分類", "判斷", "辨識", "識別", "歸類", "標記", "偵測", "classify"}},
	{ActionTextAnalysis, []string{"摘要", "語意", "情緒", "sentiment", "nlp", "文字", "分詞", "翻譯"}},
	{ActionVision, []string{"影像", "圖片", "視覺", "照片", "拍照", "外觀", "瑕疵", "缺陷", "vision"}},
	{ActionReconcile, []string{"比對", "核對", "匹配", "對帳", "驗證", "檢查", "稽核"}},
	{ActionAggregate, []string{"統計", "彙總", "加總", "平均", "計算", "彙整", "aggregate", "分析"}},
	{ActionSchedule, []string{"排程", "排班", "調度", "時程", "排序", "優化", "最佳化"}},
	{ActionRisk, []string{"風險", "評估", "評分", "scoring", "信用", "風控", "審核"}},
	{ActionAnomaly, []string{"異常", "異常值", "outlier", "偏差", "波動", "不正常", "不良"}},
	{ActionRecommend, []string{"推薦", "推薦系統", "建議", "個人化", "精準行銷"}},
}

// DetectActions returns matched action categories in table order.
func DetectActions(folded string) []Action {
	var found []Action
	for _, e := range actionTable {
		if matchAny(folded, e.Triggers) {
			found = append(found, e.Cat)
		}
	}
	return found
}

// Output identifies how results should be delivered.
type Output int

const (
	OutputEmail Output = iota
	OutputLINE
	OutputSlack
	OutputAlert
	OutputReport
	OutputSheets
	OutputStore
	OutputAutoReply
	OutputTriggerFlow
	OutputDocument
)

var outputLabels = [...]string{
	OutputEmail:       "Email 通知",
	OutputLINE:        "LINE 通知",
	OutputSlack:       "Slack 通知",
	OutputAlert:       "即時警報",
	OutputReport:      "自動報表",
	OutputSheets:      "Google Sheets",
	OutputStore:       "資料儲存",
	OutputAutoReply:   "自動回覆",
	OutputTriggerFlow: "觸發流程",
	OutputDocument:    "產出文件",
}

func (o Output) String() string { return outputLabels[o] }

// OutputByLabel resolves a label back to its enum value.
func OutputByLabel(label string) (Output, bool) {
	for i, l := range outputLabels {
		if l == label {
			return Output(i), true
		}
	}
	return 0, false
}

type outputEntry struct {
	Cat      Output
	Triggers []string
}

var outputTable = []outputEntry{
	{OutputEmail, []string{"email通知", "寄信", "發送郵件", "mail", "通知信"}},
	{OutputLINE, []string{"line通知", "line bot", "line推播", "line"}},
	{OutputSlack, []string{"slack", "頻道通知"}},
	{OutputAlert, []string{"警報", "告警", "預警", "提醒", "alert", "通知", "推播"}},
	{OutputReport, []string{"報表", "報告", "dashboard", "儀表板", "日報", "週報", "月報"}},
	{OutputSheets, []string{"google sheets", "google試算表", "雲端表格", "sheets"}},
	{OutputStore, []string{"儲存", "記錄", "歸檔", "存檔", "備份", "log", "資料庫"}},
	{OutputAutoReply, []string{"自動回覆", "chatbot", "機器人", "客服"}},
	{OutputTriggerFlow, []string{"觸發", "啟動", "自動執行", "自動化", "workflow"}},
	{OutputDocument, []string{"產出", "生成", "產生", "文件", "合約", "報價單", "發票"}},
}

// DetectOutputs returns matched output categories in table order.
func DetectOutputs(folded string) []Output {
	var found []Output
	for _, e := range outputTable {
		if matchAny(folded, e.Triggers) {
			found = append(found, e.Cat)
		}
	}
	return found
}

// Complexity identifies implementation-risk signals.
type Complexity int

const (
	ComplexityCrossDept Complexity = iota
	ComplexityRealtime
	ComplexityVolume
	ComplexityMultiSystem
	ComplexityCompliance
	ComplexityML
	ComplexityPrecision
)

var complexityLabels = [...]string{
	ComplexityCrossDept:   "跨部門協作",
	ComplexityRealtime:    "即時處理",
	ComplexityVolume:      "大量資料",
	ComplexityMultiSystem: "多系統整合",
	ComplexityCompliance:  "合規/安全",
	ComplexityML:          "機器學習",
	ComplexityPrecision:   "高精度要求",
}

func (c Complexity) String() string { return complexityLabels[c] }

type complexityEntry struct {
	Cat      Complexity
	Triggers []string
}

var complexityTable = []complexityEntry{
	{ComplexityCrossDept, []string{"跨部門", "多部門", "協作", "各部門", "全公司"}},
	{ComplexityRealtime, []string{"即時", "real-time", "即時性", "馬上", "立即", "秒級"}},
	{ComplexityVolume, []string{"大量", "海量", "百萬", "千筆", "萬筆", "十萬", "巨量", "big data"}},
	{ComplexityMultiSystem, []string{"多系統", "多平台", "整合", "串接", "異質系統", "api"}},
	{ComplexityCompliance, []string{"合規", "法規", "gdpr", "個資", "安全", "加密", "隱私"}},
	{ComplexityML, []string{"機器學習", "ml", "模型", "訓練", "深度學習", "ai"}},
	{ComplexityPrecision, []string{"精準", "精確", "準確率", "誤差", "品質標準"}},
}

// DetectComplexity returns matched complexity categories in table order.
func DetectComplexity(folded string) []Complexity {
	var found []Complexity
	for _, e := range complexityTable {
		if matchAny(folded, e.Triggers) {
			found = append(found, e.Cat)
		}
	}
	return found
}

func matchAny(folded string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(folded, t) {
			return true
		}
	}
	return false
}

// Labels converts any detected slice to its display labels, preserving order.
func Labels[T interface{ String() string }](cats []T) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.String()
	}
	return out
}
