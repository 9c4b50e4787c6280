// Package roadmap orchestrates the consulting pipeline: signal extraction,
// weighted similarity retrieval, workflow composition and difficulty scoring
// merged into one result object. The assembler adds no decision logic of its
// own and never fails; missing matches resolve to a deterministic fallback.
package roadmap

import (
	"github.com/yhlin/n8n-consultant/models"
	"github.com/yhlin/n8n-consultant/pkg/composer"
	"github.com/yhlin/n8n-consultant/pkg/industry"
	"github.com/yhlin/n8n-consultant/pkg/matcher"
)

const (
	maxAlternatives = 3
	allDepartments  = "全部門"
	noMatchName     = "未找到匹配的解決方案"
	noMatchID       = "none"
)

// SignalExtractor produces a signal set from one pain-point description.
type SignalExtractor interface {
	Extract(painText, industry, department string) models.SignalSet
}

// Assembler holds the immutable collaborators of the pipeline. Safe for
// concurrent use; every Generate call is a pure function of its arguments.
type Assembler struct {
	extractor SignalExtractor
	adapter   *industry.Adapter
	corpus    []models.Solution
}

func NewAssembler(extractor SignalExtractor, adapter *industry.Adapter, corpus []models.Solution) *Assembler {
	return &Assembler{extractor: extractor, adapter: adapter, corpus: corpus}
}

// Generate runs the full pipeline for one consultation. The retrieval query
// is the pain text enriched with industry context; ranking is biased by the
// resolved dimension weights. The composed workflow, difficulty and step plan
// come from the extracted signals, while the best corpus match seeds the
// recommendation fields.
func (a *Assembler) Generate(industryName, department, painText string) models.Roadmap {
	sig := a.extractor.Extract(painText, industryName, department)

	query := painText
	if ctx := a.adapter.ContextText(industryName, department); ctx != "" {
		query += " " + ctx
	}
	weights := a.adapter.Weights(industryName, department)
	matches := matcher.RankWeighted(query, a.corpus, maxAlternatives+1, weights)

	if len(matches) == 0 {
		return a.emptyRoadmap(industryName, department, painText, sig)
	}

	best := matches[0]
	wf := composer.Compose(sig, industryName)
	diff := composer.ScoreDifficulty(sig, len(wf.Nodes))
	steps := composer.PlanSteps(sig)

	rm := models.Roadmap{
		Industry:          industryName,
		Department:        departmentOrAll(department),
		UserQuery:         painText,
		MatchScore:        best.Similarity,
		SolutionName:      best.Solution.Name,
		SolutionID:        best.Solution.ID,
		Signals:           sig,
		Workflow:          wf,
		Difficulty:        diff.Score,
		DifficultyDisplay: composer.Stars(diff.Score),
		DifficultyReasons: diff.Reasons,
		Steps:             steps,
		Alternatives:      []models.Alternative{},
	}
	for _, alt := range matches[1:] {
		rm.Alternatives = append(rm.Alternatives, models.Alternative{
			Name:              alt.Solution.Name,
			MatchScore:        alt.Similarity,
			Difficulty:        alt.Solution.Difficulty,
			DifficultyDisplay: composer.Stars(alt.Solution.Difficulty),
		})
	}
	return rm
}

// emptyRoadmap is the no-match fallback: zero score, placeholder solution and
// a single corrective step asking for a more specific description.
func (a *Assembler) emptyRoadmap(industryName, department, painText string, sig models.SignalSet) models.Roadmap {
	return models.Roadmap{
		Industry:     industryName,
		Department:   departmentOrAll(department),
		UserQuery:    painText,
		MatchScore:   0,
		SolutionName: noMatchName,
		SolutionID:   noMatchID,
		Signals:      sig,
		Workflow: models.Workflow{
			Name:        "N/A",
			Description: "請嘗試用更具體的痛點描述重新分析",
			Nodes:       []models.Node{},
		},
		Difficulty:        0,
		DifficultyDisplay: composer.Stars(0),
		DifficultyReasons: []string{"無法評估——請補充更多痛點細節"},
		Steps: []models.Step{{
			Step:     1,
			Title:    "重新描述痛點",
			Desc:     "請用更具體的業務場景重新描述您的痛點",
			Duration: "N/A",
		}},
		Alternatives: []models.Alternative{},
	}
}

func departmentOrAll(department string) string {
	if department == "" {
		return allDepartments
	}
	return department
}
