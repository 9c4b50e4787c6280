package models

// Node is one fully resolved step of a composed automation workflow.
// Description text has every template placeholder filled; none remain.
type Node struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Desc string `json:"desc" yaml:"desc"`
}

// Workflow is an ordered node sequence with a generated name and description.
type Workflow struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Nodes       []Node `json:"nodes" yaml:"nodes"`
}

// Difficulty is a 1-5 implementation difficulty score with its justification.
// Reasons is never empty.
type Difficulty struct {
	Score   int      `json:"score" yaml:"score"`
	Reasons []string `json:"reasons" yaml:"reasons"`
}

// Step is one entry of the staged implementation plan. Ordinals start at 1
// and increase by 1 with no gaps.
type Step struct {
	Step     int    `json:"step" yaml:"step"`
	Title    string `json:"title" yaml:"title"`
	Desc     string `json:"desc" yaml:"desc"`
	Duration string `json:"duration" yaml:"duration"`
}

// Alternative is a lower-ranked solution attached to a roadmap.
type Alternative struct {
	Name              string  `json:"name" yaml:"name"`
	MatchScore        float64 `json:"match_score" yaml:"match_score"`
	Difficulty        int     `json:"difficulty" yaml:"difficulty"`
	DifficultyDisplay string  `json:"difficulty_display" yaml:"difficulty_display"`
}

// Roadmap is the full consultation result returned to callers.
type Roadmap struct {
	Industry          string              `json:"industry" yaml:"industry"`
	Department        string              `json:"department" yaml:"department"`
	UserQuery         string              `json:"user_query" yaml:"user_query"`
	MatchScore        float64             `json:"match_score" yaml:"match_score"`
	SolutionName      string              `json:"solution_name" yaml:"solution_name"`
	SolutionID        string              `json:"solution_id" yaml:"solution_id"`
	Signals           SignalSet           `json:"signals" yaml:"signals"`
	Workflow          Workflow            `json:"workflow" yaml:"workflow"`
	Difficulty        int                 `json:"difficulty" yaml:"difficulty"`
	DifficultyDisplay string              `json:"difficulty_display" yaml:"difficulty_display"`
	DifficultyReasons []string            `json:"difficulty_reasons" yaml:"difficulty_reasons"`
	Steps             []Step              `json:"steps" yaml:"steps"`
	Alternatives      []Alternative       `json:"alternatives" yaml:"alternatives"`
	Community         []CommunityWorkflow `json:"community,omitempty" yaml:"community,omitempty"`
}

// CommunityWorkflow is an optional augmentation entry fetched from the public
// n8n template library. The roadmap is complete without any of these.
type CommunityWorkflow struct {
	ID                int64    `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	NameEN            string   `json:"name_en" yaml:"name_en"`
	Description       string   `json:"description" yaml:"description"`
	URL               string   `json:"url" yaml:"url"`
	Nodes             []Node   `json:"nodes" yaml:"nodes"`
	NodeCount         int      `json:"node_count" yaml:"node_count"`
	Difficulty        int      `json:"difficulty" yaml:"difficulty"`
	DifficultyDisplay string   `json:"difficulty_display" yaml:"difficulty_display"`
	DifficultyReasons []string `json:"difficulty_reasons" yaml:"difficulty_reasons"`
	Steps             []Step   `json:"steps" yaml:"steps"`
}
