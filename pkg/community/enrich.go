package community

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yhlin/n8n-consultant/models"
	"github.com/yhlin/n8n-consultant/pkg/composer"
)

const (
	maxTranslatedNodes = 12
	descriptionRunes   = 200
)

// Enrich turns an API workflow record into a roadmap augmentation entry:
// translated name and description, readable node list, a difficulty
// assessment from the node structure and setup steps.
func Enrich(detail *workflowDetail, id int64) models.CommunityWorkflow {
	var nodes []models.Node
	var nodeTypes []string
	for _, n := range detail.Workflow.Nodes {
		// Annotation-only nodes say nothing about the flow.
		if strings.Contains(n.Type, "stickyNote") || strings.Contains(n.Type, "noOp") {
			continue
		}
		nodes = append(nodes, models.Node{
			Name: n.Name,
			Type: simplifyType(n.Type),
			Desc: guessNodeDesc(n),
		})
		nodeTypes = append(nodeTypes, n.Type)
	}

	description := cleanDescription(detail.Description)
	diff := assessDifficulty(nodeTypes, len(nodes), detail.Description)
	steps := extractSteps(detail.Description, nodeTypes, detail.Name)

	translated := nodes
	if len(translated) > maxTranslatedNodes {
		translated = translated[:maxTranslatedNodes]
	}
	for i := range translated {
		translated[i].Name = TranslateNodeName(translated[i].Name)
		translated[i].Desc = TranslateToZH(translated[i].Desc)
	}
	for i := range steps {
		steps[i].Title = TranslateToZH(steps[i].Title)
		steps[i].Desc = TranslateToZH(steps[i].Desc)
	}

	return models.CommunityWorkflow{
		ID:                id,
		Name:              TranslateToZH(detail.Name),
		NameEN:            detail.Name,
		Description:       TranslateToZH(description),
		URL:               fmt.Sprintf("https://n8n.io/workflows/%d", id),
		Nodes:             translated,
		NodeCount:         len(nodes),
		Difficulty:        diff.Score,
		DifficultyDisplay: composer.Stars(diff.Score),
		DifficultyReasons: diff.Reasons,
		Steps:             steps,
	}
}

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	titleCaser    = cases.Title(language.English, cases.NoLower)
)

// simplifyType turns a wire node type like n8n-nodes-base.httpRequest into a
// readable label like Http Request.
func simplifyType(nodeType string) string {
	parts := strings.Split(nodeType, ".")
	raw := parts[len(parts)-1]
	if raw == "" {
		return nodeType
	}
	spaced := camelBoundary.ReplaceAllString(raw, "$1 $2")
	return titleCaser.String(spaced)
}

func guessNodeDesc(n detailNode) string {
	lowerType := strings.ToLower(n.Type)
	lowerName := strings.ToLower(n.Name)

	switch {
	case strings.Contains(lowerType, "trigger") || strings.Contains(lowerName, "trigger"):
		return "觸發條件：" + n.Name
	case strings.Contains(lowerType, "openai") || strings.Contains(lowerType, "langchain"):
		return "AI 處理：" + n.Name
	case strings.Contains(lowerType, "httprequest"):
		if u, err := url.Parse(n.Parameters.URL); err == nil && u.Host != "" {
			return "API 呼叫：" + u.Host
		}
		return "HTTP 請求：" + n.Name
	case strings.Contains(lowerType, "if") || strings.Contains(lowerType, "switch"):
		return "條件判斷：" + n.Name
	case strings.Contains(lowerType, "code"):
		return "自訂邏輯：" + n.Name
	case strings.Contains(lowerType, "gmail") || strings.Contains(lowerType, "email"):
		return "郵件操作：" + n.Name
	case strings.Contains(lowerType, "slack"):
		return "Slack 通知：" + n.Name
	case strings.Contains(lowerType, "sheets") || strings.Contains(lowerType, "spreadsheet"):
		return "試算表操作：" + n.Name
	case strings.Contains(lowerType, "postgres") || strings.Contains(lowerType, "mysql") || strings.Contains(lowerType, "database"):
		return "資料庫操作：" + n.Name
	case strings.Contains(lowerType, "webhook"):
		return "Webhook 接收：" + n.Name
	}
	return "執行：" + n.Name
}

// assessDifficulty scores a community workflow from its node structure; same
// 1-5 scale and reason style as composed workflows.
func assessDifficulty(nodeTypes []string, nodeCount int, description string) models.Difficulty {
	score := 1
	var reasons []string

	switch {
	case nodeCount >= 15:
		score += 2
		reasons = append(reasons, fmt.Sprintf("工作流包含 %d 個節點，流程複雜度高", nodeCount))
	case nodeCount >= 8:
		score++
		reasons = append(reasons, fmt.Sprintf("工作流包含 %d 個節點，屬於中等規模", nodeCount))
	default:
		reasons = append(reasons, fmt.Sprintf("工作流僅 %d 個節點，結構精簡", nodeCount))
	}

	ai := countTypes(nodeTypes, "openai", "langchain")
	if ai > 0 {
		score++
		reasons = append(reasons, fmt.Sprintf("包含 %d 個 AI 節點，需要設定 AI 模型與 Prompt", ai))
	}

	apis := countTypes(nodeTypes, "httprequest")
	if apis >= 3 {
		score++
		reasons = append(reasons, fmt.Sprintf("需要串接 %d 個外部 API，整合複雜度較高", apis))
	} else if apis >= 1 {
		reasons = append(reasons, fmt.Sprintf("需要串接 %d 個外部 API", apis))
	}

	decisions := countTypes(nodeTypes, ".if", ".switch")
	if decisions >= 2 {
		score++
		reasons = append(reasons, fmt.Sprintf("包含 %d 個條件分流，邏輯分支多", decisions))
	}

	if countTypes(nodeTypes, "postgres", "mysql", "mongo") > 0 {
		score++
		reasons = append(reasons, "需要設定資料庫連線，需有資料庫管理經驗")
	}

	descLower := strings.ToLower(description)
	if strings.Contains(descLower, "credentials") || strings.Contains(descLower, "api key") || strings.Contains(descLower, "oauth") {
		reasons = append(reasons, "需要設定外部服務的認證憑證（API Key / OAuth）")
	}

	if score > 5 {
		score = 5
	}
	if score <= 2 && len(reasons) < 3 {
		reasons = append(reasons, "整體而言適合 n8n 初學者上手")
	}
	return models.Difficulty{Score: score, Reasons: reasons}
}

func countTypes(nodeTypes []string, fragments ...string) int {
	count := 0
	for _, t := range nodeTypes {
		lower := strings.ToLower(t)
		for _, f := range fragments {
			if strings.Contains(lower, f) {
				count++
				break
			}
		}
	}
	return count
}

var (
	howItWorksRe = regexp.MustCompile(`(?is)(?:How it works|What this workflow does)[:\s]*\n(.*?)(?:\n\n|\n##|\z)`)
	listItemRe   = regexp.MustCompile(`\d+\.\s*\*?\*?(.+)`)
	markupRe     = regexp.MustCompile("\\*\\*|\\*|`")
)

// extractSteps pulls a numbered "How it works" list from the description, or
// derives setup steps from the node structure when none is usable.
func extractSteps(description string, nodeTypes []string, name string) []models.Step {
	var steps []models.Step
	if m := howItWorksRe.FindStringSubmatch(description); m != nil {
		for _, lineMatch := range listItemRe.FindAllStringSubmatch(m[1], 7) {
			clean := strings.TrimRight(strings.TrimSpace(markupRe.ReplaceAllString(lineMatch[1], "")), ".")
			if clean == "" {
				continue
			}
			title := clean
			if r := []rune(title); len(r) > 60 {
				title = string(r[:60])
			}
			steps = append(steps, models.Step{Step: len(steps) + 1, Title: title, Desc: clean})
		}
	}
	if len(steps) >= 3 {
		return steps
	}
	return generateSteps(nodeTypes, name)
}

func generateSteps(nodeTypes []string, name string) []models.Step {
	steps := []models.Step{
		{Step: 1, Title: "匯入工作流模板",
			Desc:     fmt.Sprintf("從 n8n 社群下載「%s」模板，匯入你的 n8n 環境。", name),
			Duration: "10 分鐘"},
		{Step: 2, Title: "設定認證憑證",
			Desc:     "為工作流中使用的外部服務（API、資料庫）設定連線憑證。",
			Duration: "30~60 分鐘"},
	}
	num := 3

	if countTypes(nodeTypes, "openai", "langchain") > 0 {
		steps = append(steps, models.Step{Step: num, Title: "調校 AI Prompt",
			Desc:     "根據你的業務場景，調整 AI 節點的 Prompt 與輸出格式。",
			Duration: "1~2 小時"})
		num++
	}
	if countTypes(nodeTypes, "httprequest") > 0 {
		steps = append(steps, models.Step{Step: num, Title: "對接外部 API",
			Desc:     "將 HTTP Request 節點的 URL 與參數替換為你的實際 API 端點。",
			Duration: "1~3 小時"})
		num++
	}
	if countTypes(nodeTypes, "postgres", "mysql") > 0 {
		steps = append(steps, models.Step{Step: num, Title: "設定資料庫連線",
			Desc:     "設定 Postgres/MySQL 節點的連線資訊，確認查詢語句正確。",
			Duration: "1~2 小時"})
		num++
	}

	steps = append(steps, models.Step{Step: num, Title: "測試與微調",
		Desc:     "用測試資料執行工作流，確認每個節點的輸出正確。",
		Duration: "2~4 小時"})
	num++
	steps = append(steps, models.Step{Step: num, Title: "正式啟用",
		Desc:     "啟用排程或觸發條件，開始自動執行。監控前幾天的執行紀錄。",
		Duration: "持續"})
	return steps
}

var (
	headingRe   = regexp.MustCompile(`#+\s*`)
	imageLinkRe = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	blankRunRe  = regexp.MustCompile(`\n{2,}`)
)

// cleanDescription flattens the description to plain text. Full HTML pages go
// through readability, inline HTML through goquery, and pure markdown is
// stripped directly. The result is capped to a preview length.
func cleanDescription(desc string) string {
	if desc == "" {
		return ""
	}

	if strings.Contains(strings.ToLower(desc), "<html") {
		pageURL, _ := url.Parse("https://n8n.io/workflows")
		parser := readability.NewParser()
		if article, err := parser.Parse(strings.NewReader(desc), pageURL); err == nil {
			desc = article.TextContent
		}
	} else if strings.Contains(desc, "<") && strings.Contains(desc, ">") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(desc)); err == nil {
			desc = doc.Text()
		}
	}

	clean := headingRe.ReplaceAllString(desc, "")
	clean = imageLinkRe.ReplaceAllString(clean, "")
	clean = markupRe.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(blankRunRe.ReplaceAllString(clean, "\n"))

	runes := []rune(clean)
	if len(runes) > descriptionRunes {
		clean = string(runes[:descriptionRunes])
		if i := strings.LastIndex(clean, " "); i > 0 {
			clean = clean[:i]
		}
		clean += "..."
	}
	return clean
}
