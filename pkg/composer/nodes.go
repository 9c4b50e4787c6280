// Package composer assembles automation workflow plans from extracted
// signals: a node sequence, a 1-5 difficulty score with reasons, and a staged
// implementation plan. Every template placeholder is resolved at composition
// time; no node description ever carries an unfilled slot.
package composer

import "fmt"

// sourceNode is the component template for one data-source category. An
// empty DefaultData means the description takes the subject noun instead.
type sourceNode struct {
	Name        string
	Type        string
	DescFmt     string
	DefaultData string
}

func (t sourceNode) describe(target string) string {
	data := t.DefaultData
	if data == "" {
		data = target + "相關資料"
	}
	return fmt.Sprintf(t.DescFmt, data)
}

var sourceNodes = map[string]sourceNode{
	"CRM": {
		Name: "讀取 CRM 資料", Type: "HTTP Request / CRM API",
		DescFmt: "從 CRM 系統取得%s", DefaultData: "客戶行為與交易紀錄",
	},
	"ERP": {
		Name: "讀取 ERP 資料", Type: "HTTP Request / ERP API",
		DescFmt: "從 ERP 系統匯入%s", DefaultData: "生產與庫存數據",
	},
	"資料庫": {
		Name: "查詢資料庫", Type: "Postgres / MySQL",
		DescFmt: "查詢資料庫取得%s", DefaultData: "相關業務數據",
	},
	"Excel/CSV": {
		Name: "讀取試算表", Type: "Spreadsheet File / Google Sheets",
		DescFmt: "讀取 Excel 或 CSV 中的%s", DefaultData: "業務數據",
	},
	"API 介接": {
		Name: "API 資料介接", Type: "HTTP Request",
		DescFmt: "透過 API 取得%s", DefaultData: "外部系統資料",
	},
	"Email": {
		Name: "讀取郵件內容", Type: "Email Read (IMAP)",
		DescFmt: "自動讀取並解析%s相關郵件",
	},
	"社群媒體": {
		Name: "抓取社群數據", Type: "HTTP Request / Social API",
		DescFmt: "取得社群平台上的%s", DefaultData: "貼文、留言或評價數據",
	},
	"IoT/感測器": {
		Name: "感測器數據接收", Type: "MQTT / Webhook",
		DescFmt: "接收 IoT 感測器的%s", DefaultData: "設備運行數據",
	},
	"POS/收銀": {
		Name: "讀取 POS 交易", Type: "HTTP Request / Database",
		DescFmt: "取得 POS 系統的%s", DefaultData: "交易與銷售紀錄",
	},
	"EHR/病歷": {
		Name: "讀取醫療紀錄", Type: "FHIR API / Database",
		DescFmt: "從醫療系統取得%s", DefaultData: "病患紀錄與診斷資料",
	},
	"LMS/教學": {
		Name: "讀取學習數據", Type: "HTTP Request / LMS API",
		DescFmt: "從教學平台取得%s", DefaultData: "學生學習進度與成績",
	},
	"表單系統": {
		Name: "接收表單資料", Type: "Webhook / Google Forms",
		DescFmt: "接收來自表單的%s", DefaultData: "使用者填寫資料",
	},
	"檔案系統": {
		Name: "讀取文件檔案", Type: "Read Binary File / S3",
		DescFmt: "讀取%s相關文件",
	},
	"網站/爬蟲": {
		Name: "網頁資料擷取", Type: "HTTP Request / HTML Extract",
		DescFmt: "從目標網站擷取%s", DefaultData: "公開資訊",
	},
}

// processNode is the component template for one processing capability. The
// format slot takes the subject noun.
type processNode struct {
	Name    string
	Type    string
	DescFmt string
}

var processNodes = map[string]processNode{
	"預測分析": {"AI 預測分析", "OpenAI / Code Node", "基於歷史數據，對「%s」進行趨勢預測與風險評估"},
	"分類判斷": {"AI 分類與判斷", "OpenAI / Code Node", "自動將「%s」分類為不同等級或類別"},
	"文字分析": {"文字語意分析", "OpenAI / Code Node", "對「%s」進行語意理解、摘要或情緒分析"},
	"影像辨識": {"影像 AI 辨識", "OpenAI Vision / Code Node", "對「%s」影像進行自動辨識與標記"},
	"資料比對": {"自動資料比對", "Code Node / Merge", "將多筆「%s」資料進行交叉比對，找出差異"},
	"統計彙總": {"數據統計彙總", "Code Node / Aggregate", "對「%s」數據進行統計計算與趨勢彙總"},
	"排程優化": {"AI 排程優化", "OpenAI / Code Node", "根據「%s」資料，產出最佳化排程建議"},
	"風險評估": {"風險評分模型", "OpenAI / Code Node", "對「%s」進行多維度風險評分（高/中/低）"},
	"異常偵測": {"異常偵測引擎", "Code Node / OpenAI", "自動偵測「%s」中的異常模式與偏差值"},
	"推薦引擎": {"AI 推薦引擎", "OpenAI / Code Node", "根據「%s」行為數據，產出個人化推薦"},
}

// outputNode carries a describe closure because delivery templates differ in
// which subject-derived phrase they embed.
type outputNode struct {
	Name     string
	Type     string
	Describe func(target string) string
}

var outputNodes = map[string]outputNode{
	"Email 通知": {"Email 通知", "Send Email / Gmail", func(t string) string {
		return fmt.Sprintf("自動發送%s分析結果通知郵件給相關負責人", t)
	}},
	"LINE 通知": {"LINE 推播通知", "HTTP Request (LINE API)", func(t string) string {
		return fmt.Sprintf("透過 LINE 推播%s分析結果給相關人員", t)
	}},
	"Slack 通知": {"Slack 頻道通知", "Slack", func(t string) string {
		return fmt.Sprintf("將%s分析結果發送到 Slack 指定頻道", t)
	}},
	"即時警報": {"即時警報推播", "HTTP Request / Email", func(t string) string {
		return fmt.Sprintf("當偵測到%s出現異常時，立即推播警報", t)
	}},
	"自動報表": {"自動產出報表", "Google Sheets / Code Node", func(t string) string {
		return fmt.Sprintf("將%s分析結果自動整理成結構化報表", t)
	}},
	"Google Sheets": {"寫入 Google Sheets", "Google Sheets", func(t string) string {
		return fmt.Sprintf("將%s分析結果自動寫入 Google Sheets 追蹤表", t)
	}},
	"資料儲存": {"結果存入資料庫", "Postgres / MySQL", func(t string) string {
		return fmt.Sprintf("將%s分析結果永久儲存至資料庫", t)
	}},
	"自動回覆": {"自動回覆 / Chatbot", "HTTP Request / Webhook Response", func(t string) string {
		return fmt.Sprintf("自動產生%s分析結果回覆給客戶", t)
	}},
	"觸發流程": {"觸發後續流程", "Execute Workflow / Webhook", func(t string) string {
		return fmt.Sprintf("自動觸發後續%s處理流程", t)
	}},
	"產出文件": {"自動產出文件", "Code Node / PDF Generator", func(t string) string {
		return fmt.Sprintf("自動產生%s報告文件", t)
	}},
}

const (
	decisionNodeName = "條件分流"
	decisionNodeType = "IF / Switch Node"
	decisionDescFmt  = "根據%s結果，將資料分流至不同處理路徑"

	logNodeName = "執行紀錄追蹤"
	logNodeType = "Google Sheets / Database"
	logDescFmt  = "記錄每次%s分析的執行結果，方便後續追蹤與優化"
)
