package community

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yhlin/n8n-consultant/pkg/textutil"
)

// zhToEN maps business keywords to English search terms for the template API.
var zhToEN = map[string]string{
	"CRM": "CRM", "ERP": "ERP",
	"試算表": "spreadsheet", "資料庫": "database", "郵件": "email",
	"社群媒體": "social media", "表單": "form", "網站": "website",

	"預測": "prediction forecast", "分類": "classification",
	"偵測": "detection monitoring", "辨識": "recognition",
	"分析": "analysis", "統計": "statistics analytics",
	"排程": "scheduling", "比對": "matching comparison",
	"推薦": "recommendation", "評估": "assessment evaluation",
	"摘要": "summary", "翻譯": "translation",

	"報表": "report", "通知": "notification alert",
	"警報": "alert warning", "回覆": "reply response",

	"零售": "retail ecommerce", "製造": "manufacturing production",
	"金融": "finance banking", "醫療": "healthcare medical",
	"教育": "education learning", "物流": "logistics shipping",
	"餐飲": "restaurant food", "電商": "ecommerce online store",
	"行銷": "marketing", "客服": "customer service support",
	"業務": "sales", "人資": "HR human resources",

	"客戶": "customer client", "流失": "churn retention",
	"訂單": "order", "庫存": "inventory stock",
	"品質": "quality inspection", "瑕疵": "defect quality",
	"排班": "shift scheduling", "薪資": "payroll salary",
	"發票": "invoice billing", "合約": "contract",
	"審核": "approval review", "出勤": "attendance",
	"退貨": "return refund", "投訴": "complaint",
	"滿意度": "satisfaction survey", "供應鏈": "supply chain",
	"採購": "procurement purchasing", "報價": "quotation pricing",
	"生產": "production manufacturing", "設備": "equipment maintenance",
	"維修": "maintenance repair", "倉儲": "warehouse storage",
	"配送": "delivery shipping", "會員": "membership loyalty",
	"異常": "anomaly detection alert", "預警": "early warning alert monitoring",
	"良率": "yield quality rate", "停機": "downtime maintenance",
	"工單": "work order production", "巡檢": "inspection patrol quality",
	"預約": "booking appointment", "文件": "document",
	"合規": "compliance", "風控": "risk management",
	"信用": "credit scoring", "病患": "patient",
	"掛號": "registration appointment", "學生": "student",
	"課程": "course class", "缺貨": "stockout shortage",
	"自動化": "automation", "效率": "efficiency productivity",
	"成本": "cost reduction", "數據": "data",
	"機器學習": "machine learning", "聊天機器人": "chatbot",
}

// enToZH translates community workflow text back to Traditional Chinese.
// Replacement runs longest key first so phrases beat their own substrings.
var enToZH = map[string]string{
	"workflow automation": "工作流自動化", "machine learning": "機器學習",
	"supply chain": "供應鏈", "real estate": "房地產",
	"repetitive tasks": "重複性任務", "this workflow": "此工作流",
	"allows you to": "讓您可以", "helps you": "幫助您",
	"send an email": "發送郵件", "send a message": "發送訊息",
	"every day": "每天", "every week": "每週", "every hour": "每小時",

	"automation": "自動化", "automated": "自動化", "automate": "自動化",
	"automatically": "自動地",
	"monitoring":    "監控", "monitor": "監控",
	"tracking": "追蹤", "tracker": "追蹤器", "track": "追蹤",
	"analytics": "分析", "analysis": "分析", "analyze": "分析",
	"generator": "產生器", "generate": "產生",
	"detection": "偵測", "detect": "偵測",
	"prediction": "預測", "predict": "預測", "forecast": "預測",
	"classification": "分類", "classify": "分類",
	"scheduling": "排程", "schedule": "排程",
	"notifications": "通知", "notification": "通知", "notify": "通知",
	"alerts": "警報", "alert": "警報",
	"reminders": "提醒", "reminder": "提醒",
	"scraping": "爬取", "scraper": "爬取器", "scrape": "爬取",
	"extraction": "擷取", "extract": "擷取",
	"aggregation": "彙總", "aggregate": "彙總",
	"validation": "驗證", "validate": "驗證",
	"summarize": "摘要", "summary": "摘要",
	"translation": "翻譯", "translate": "翻譯",
	"processing": "處理", "process": "處理",
	"management": "管理", "manage": "管理",
	"optimization": "優化", "optimize": "優化",
	"sync": "同步", "backup": "備份",

	"invoices": "發票", "invoice": "發票",
	"payments": "付款", "payment": "付款",
	"orders": "訂單", "order": "訂單",
	"inventory": "庫存", "stock": "庫存",
	"customers": "客戶", "customer": "客戶",
	"clients": "客戶", "client": "客戶",
	"employees": "員工", "employee": "員工",
	"leads": "潛在客戶", "lead": "潛在客戶",
	"sales": "銷售", "marketing": "行銷",
	"financial": "財務", "finance": "財務", "accounting": "會計",
	"manufacturing": "製造", "production": "生產",
	"inspection": "檢驗", "quality": "品質",
	"maintenance": "維護", "procurement": "採購",
	"warehouse": "倉庫", "logistics": "物流",
	"shipping": "出貨", "delivery": "配送",
	"healthcare": "醫療", "medical": "醫療", "patient": "病患",
	"ecommerce": "電商", "retail": "零售",
	"education": "教育", "insurance": "保險",

	"workflows": "工作流", "workflow": "工作流",
	"templates": "模板", "template": "模板",
	"dashboard": "儀表板",
	"reporting": "報表", "reports": "報表", "report": "報表",
	"spreadsheet": "試算表", "database": "資料庫",
	"chatbot": "聊天機器人", "assistant": "助手",
	"integrations": "整合", "integration": "整合",
	"sentiment": "情緒", "recommendation": "推薦",
	"intelligent": "智慧", "smart": "智慧",
	"real-time": "即時", "realtime": "即時",
	"daily": "每日", "weekly": "每週", "monthly": "每月",

	"messages": "訊息", "message": "訊息",
	"emails": "郵件", "email": "郵件",
	"documents": "文件", "document": "文件",
	"records": "記錄", "record": "記錄",
	"files": "檔案", "file": "檔案",
	"tasks": "任務", "task": "任務",
	"tickets": "工單", "ticket": "工單",
	"contacts": "聯絡人", "contact": "聯絡人",
	"responses": "回覆", "response": "回覆",
	"forms": "表單", "form": "表單",
	"data": "資料", "trigger": "觸發",
}

// nodeNameZH translates common node display names; matched by containment on
// the lowered name.
var nodeNameZH = map[string]string{
	"schedule trigger":   "排程觸發",
	"respond to webhook": "回應 Webhook",
	"http request":       "HTTP 請求",
	"webhook":            "Webhook 接收",
	"code":               "自訂程式碼",
	"if":                 "條件判斷",
	"switch":             "多路分流",
	"merge":              "資料合併",
	"set":                "設定數值",
	"gmail":              "Gmail 郵件",
	"slack":              "Slack 通知",
	"telegram":           "Telegram 訊息",
	"discord":            "Discord 訊息",
	"google sheets":      "Google 試算表",
	"postgres":           "PostgreSQL 資料庫",
	"mysql":              "MySQL 資料庫",
	"mongodb":            "MongoDB 資料庫",
	"openai":             "OpenAI AI 模型",
	"airtable":           "Airtable 資料表",
	"notion":             "Notion 頁面",
	"shopify":            "Shopify 電商",
	"stripe":             "Stripe 金流",
	"hubspot":            "HubSpot CRM",
	"salesforce":         "Salesforce CRM",
	"jira":               "Jira 專案管理",
	"github":             "GitHub 程式碼庫",
	"wait":               "等待",
	"split in batches":   "分批處理",
	"rss feed read":      "RSS 訂閱讀取",
}

type replacement struct {
	re *regexp.Regexp
	zh string
}

// enReplacements is enToZH compiled once in deterministic order: longest key
// first, lexical on ties.
var enReplacements = buildReplacements()

func buildReplacements() []replacement {
	keys := make([]string, 0, len(enToZH))
	for k := range enToZH {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	out := make([]replacement, len(keys))
	for i, k := range keys {
		out[i] = replacement{
			re: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(k)),
			zh: enToZH[k],
		}
	}
	return out
}

// zhKeys is the zh→en key set in deterministic order for substring fallback.
var zhKeys = sortedZhKeys()

func sortedZhKeys() []string {
	keys := make([]string, 0, len(zhToEN))
	for k := range zhToEN {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TranslateToZH rewrites English text into Traditional Chinese with the
// dictionary. Unknown words pass through unchanged.
func TranslateToZH(text string) string {
	if text == "" {
		return text
	}
	for _, r := range enReplacements {
		text = r.re.ReplaceAllString(text, r.zh)
	}
	return text
}

// TranslateNodeName maps a community node display name to Chinese, falling
// back to dictionary translation when no known node matches.
func TranslateNodeName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	// Longest match first so "schedule trigger" beats "trigger".
	best := ""
	bestZh := ""
	for k, zh := range nodeNameZH {
		if strings.Contains(lower, k) && len(k) > len(best) {
			best, bestZh = k, zh
		}
	}
	if bestZh != "" {
		return bestZh
	}
	return TranslateToZH(name)
}

// TranslateKeywords builds an English search query from Chinese keywords:
// industry term first, then direct hits, then substring fallback, at most
// four fragments. Never returns an empty query.
func TranslateKeywords(keywords []string, industry string) string {
	var parts []string
	used := make(map[string]struct{})

	if en, ok := zhToEN[industry]; ok {
		parts = append(parts, en)
		used[industry] = struct{}{}
	}

	for _, kw := range keywords {
		if _, done := used[kw]; done {
			continue
		}
		if en, ok := zhToEN[kw]; ok {
			parts = append(parts, en)
			used[kw] = struct{}{}
			continue
		}
		if textutil.RuneLen(kw) < 2 {
			continue
		}
		for _, zhKey := range zhKeys {
			if _, done := used[zhKey]; done {
				continue
			}
			if strings.Contains(kw, zhKey) {
				parts = append(parts, zhToEN[zhKey])
				used[zhKey] = struct{}{}
				break
			}
		}
	}

	if len(parts) > 4 {
		parts = parts[:4]
	}
	if len(parts) == 0 {
		return "workflow automation"
	}
	return strings.Join(parts, " ")
}
