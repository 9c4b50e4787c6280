package composer

import (
	"strings"
	"testing"

	"github.com/yhlin/n8n-consultant/models"
)

func churnSignals() models.SignalSet {
	return models.SignalSet{
		Keywords:      []string{"客戶流失", "回購", "會員"},
		Sources:       []string{"POS/收銀", "CRM"},
		Actions:       []string{"預測分析"},
		Outputs:       []string{"即時警報", "自動報表"},
		IndustryFocus: "客戶",
	}
}

func TestCompose_PipelineShape(t *testing.T) {
	wf := Compose(churnSignals(), "零售")

	// trigger + 2 sources + 1 process + decision + 2 outputs + log
	if len(wf.Nodes) != 8 {
		t.Fatalf("got %d nodes, want 8", len(wf.Nodes))
	}
	if wf.Nodes[0].Name != "排程觸發" {
		t.Errorf("first node = %q, want 排程觸發", wf.Nodes[0].Name)
	}
	if wf.Nodes[len(wf.Nodes)-1].Name != "執行紀錄追蹤" {
		t.Errorf("last node = %q, want 執行紀錄追蹤", wf.Nodes[len(wf.Nodes)-1].Name)
	}
	if wf.Nodes[1].Name != "讀取 POS 交易" || wf.Nodes[2].Name != "讀取 CRM 資料" {
		t.Errorf("source nodes out of order: %q, %q", wf.Nodes[1].Name, wf.Nodes[2].Name)
	}
	for _, n := range wf.Nodes {
		if n.Desc == "" || n.Type == "" {
			t.Errorf("node %q has empty type or desc", n.Name)
		}
		if strings.ContainsAny(n.Desc, "{}%") {
			t.Errorf("node %q desc has unresolved placeholder: %q", n.Name, n.Desc)
		}
	}
	if !strings.Contains(wf.Name, "零售") || !strings.Contains(wf.Name, "客戶") {
		t.Errorf("workflow name %q missing industry or subject", wf.Name)
	}
}

func TestCompose_SourceAndOutputCaps(t *testing.T) {
	sig := models.SignalSet{
		Keywords: []string{"報表"},
		Sources:  []string{"CRM", "ERP", "資料庫", "Excel/CSV"},
		Actions:  []string{"統計彙總", "資料比對", "文字分析"},
		Outputs:  []string{"Email 通知", "LINE 通知", "Slack 通知"},
	}
	wf := Compose(sig, "")

	var src, proc, out int
	for _, n := range wf.Nodes {
		switch {
		case strings.HasPrefix(n.Name, "讀取") || n.Name == "查詢資料庫":
			src++
		case n.Name == "數據統計彙總" || n.Name == "自動資料比對" || n.Name == "文字語意分析":
			proc++
		case strings.Contains(n.Name, "通知"):
			out++
		}
	}
	if src != 2 {
		t.Errorf("got %d source nodes, want 2", src)
	}
	if proc != 2 {
		t.Errorf("got %d process nodes, want 2", proc)
	}
	if out != 2 {
		t.Errorf("got %d output nodes, want 2", out)
	}
}

func TestCompose_DecisionNode(t *testing.T) {
	withRisk := models.SignalSet{
		Keywords: []string{"授信"},
		Sources:  []string{"資料庫"},
		Actions:  []string{"風險評估"},
		Outputs:  []string{"即時警報"},
	}
	wf := Compose(withRisk, "金融")
	found := false
	for _, n := range wf.Nodes {
		if n.Name == "條件分流" {
			found = true
			if !strings.Contains(n.Desc, "風險評分") {
				t.Errorf("decision desc %q missing risk criterion", n.Desc)
			}
		}
	}
	if !found {
		t.Error("risk action should add a decision node")
	}

	noDecision := models.SignalSet{
		Keywords: []string{"報表"},
		Sources:  []string{"Excel/CSV"},
		Actions:  []string{"統計彙總"},
		Outputs:  []string{"自動報表"},
	}
	for _, n := range Compose(noDecision, "").Nodes {
		if n.Name == "條件分流" {
			t.Error("aggregation-only signals should not add a decision node")
		}
	}
}

func TestCompose_RealtimeTrigger(t *testing.T) {
	sig := models.SignalSet{
		Keywords:   []string{"警報"},
		Sources:    []string{"IoT/感測器"},
		Actions:    []string{"異常偵測"},
		Outputs:    []string{"即時警報"},
		Complexity: []string{"即時處理"},
	}
	wf := Compose(sig, "製造")
	if wf.Nodes[0].Type != "Webhook" {
		t.Errorf("realtime signals should use a webhook trigger, got %q", wf.Nodes[0].Type)
	}

	reply := models.SignalSet{
		Keywords: []string{"客服"},
		Sources:  []string{"社群媒體"},
		Actions:  []string{"文字分析"},
		Outputs:  []string{"自動回覆"},
	}
	wf = Compose(reply, "")
	if wf.Nodes[0].Type != "Webhook" {
		t.Errorf("auto-reply output should use a webhook trigger, got %q", wf.Nodes[0].Type)
	}
}

func TestSubject_SkipsGenericKeywords(t *testing.T) {
	sig := models.SignalSet{Keywords: []string{"我們", "公司", "庫存", "報表"}}
	if got := subject(sig); got != "庫存" {
		t.Errorf("subject = %q, want 庫存", got)
	}

	sig = models.SignalSet{Keywords: []string{"我們", "公司"}}
	if got := subject(sig); got != "業務數據" {
		t.Errorf("subject fallback = %q, want 業務數據", got)
	}

	sig = models.SignalSet{Keywords: []string{"報價"}, IndustryFocus: "品質"}
	if got := subject(sig); got != "品質" {
		t.Errorf("focus should win, got %q", got)
	}
}

func TestScoreDifficulty_BoundsAndReasons(t *testing.T) {
	cases := []struct {
		name string
		sig  models.SignalSet
		n    int
		want int
	}{
		{"minimal", models.SignalSet{Sources: []string{"Excel/CSV"}, Actions: []string{"統計彙總"}}, 4, 1},
		{"churn scenario", churnSignals(), 8, 4},
		{"everything", models.SignalSet{
			Sources:    []string{"CRM", "ERP", "資料庫"},
			Actions:    []string{"預測分析", "影像辨識"},
			Complexity: []string{"即時處理", "大量資料", "多系統整合", "合規/安全", "機器學習"},
		}, 9, 5},
	}
	for _, tc := range cases {
		d := ScoreDifficulty(tc.sig, tc.n)
		if d.Score != tc.want {
			t.Errorf("%s: score = %d, want %d", tc.name, d.Score, tc.want)
		}
		if d.Score < 1 || d.Score > 5 {
			t.Errorf("%s: score %d outside 1-5", tc.name, d.Score)
		}
		if len(d.Reasons) == 0 {
			t.Errorf("%s: no reasons", tc.name)
		}
	}
}

func TestScoreDifficulty_Monotone(t *testing.T) {
	base := models.SignalSet{Sources: []string{"CRM"}, Actions: []string{"統計彙總"}}
	more := base
	more.Sources = append([]string{"ERP"}, base.Sources...)
	more.Complexity = []string{"大量資料"}

	if ScoreDifficulty(more, 5).Score < ScoreDifficulty(base, 5).Score {
		t.Error("adding sources and complexity flags lowered the score")
	}
}

func TestPlanSteps_ContiguousOrdinals(t *testing.T) {
	cases := []models.SignalSet{
		churnSignals(),
		{Keywords: []string{"報表"}, Sources: []string{"Excel/CSV"}, Actions: []string{"統計彙總"}, Outputs: []string{"自動報表"}},
		{Keywords: []string{"文件"}},
	}
	for i, sig := range cases {
		steps := PlanSteps(sig)
		if len(steps) < 3 {
			t.Errorf("case %d: got %d steps, want at least 3", i, len(steps))
		}
		for j, s := range steps {
			if s.Step != j+1 {
				t.Errorf("case %d: step %d has ordinal %d", i, j, s.Step)
			}
			if s.Title == "" || s.Desc == "" || s.Duration == "" {
				t.Errorf("case %d: step %d has an empty field", i, j)
			}
		}
		if steps[0].Title != "需求確認與資料盤點" {
			t.Errorf("case %d: first step = %q", i, steps[0].Title)
		}
		last := steps[len(steps)-1]
		if last.Title != "正式上線與監控" || last.Duration != "持續" {
			t.Errorf("case %d: last step = %q (%s)", i, last.Title, last.Duration)
		}
	}
}

func TestPlanSteps_DecisionStagePresent(t *testing.T) {
	steps := PlanSteps(churnSignals())
	found := false
	for _, s := range steps {
		if s.Title == "設定條件分流與閾值" {
			found = true
		}
	}
	if !found {
		t.Error("prediction action should add a threshold stage")
	}
}

func TestStars(t *testing.T) {
	if got := Stars(4); got != "★★★★☆" {
		t.Errorf("Stars(4) = %q", got)
	}
	if got := Stars(0); got != "☆☆☆☆☆" {
		t.Errorf("Stars(0) = %q", got)
	}
	if got := Stars(9); got != "★★★★★" {
		t.Errorf("Stars(9) = %q", got)
	}
}
