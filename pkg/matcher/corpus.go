package matcher

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/yhlin/n8n-consultant/models"
)

//go:embed data/solutions.json
var embeddedCorpus []byte

// LoadCorpus reads the solution corpus from path, or the embedded copy when
// path is empty. Records are validated on load; a malformed corpus is a
// startup failure, not something to paper over at query time.
func LoadCorpus(path string) ([]models.Solution, error) {
	raw := embeddedCorpus
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read solution corpus: %w", err)
		}
		raw = b
	}

	var corpus []models.Solution
	if err := json.Unmarshal(raw, &corpus); err != nil {
		return nil, fmt.Errorf("parse solution corpus: %w", err)
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("solution corpus is empty")
	}

	seen := make(map[string]struct{}, len(corpus))
	for i := range corpus {
		s := &corpus[i]
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("solution corpus: record %d missing id or name", i)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("solution corpus: duplicate id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Difficulty < 1 || s.Difficulty > 5 {
			return nil, fmt.Errorf("solution corpus: %s has difficulty %d outside 1-5", s.ID, s.Difficulty)
		}
		if len(s.Workflow.Nodes) == 0 {
			return nil, fmt.Errorf("solution corpus: %s has no workflow nodes", s.ID)
		}
	}
	return corpus, nil
}
