package consult

import (
	"fmt"

	"github.com/yhlin/n8n-consultant/models"
	"github.com/yhlin/n8n-consultant/pkg/analyzer"
	"github.com/yhlin/n8n-consultant/pkg/industry"
	"github.com/yhlin/n8n-consultant/pkg/matcher"
	"github.com/yhlin/n8n-consultant/pkg/roadmap"
)

// Pipeline bundles the components a consult run needs. Built once per
// invocation and shared with the HTTP server.
type Pipeline struct {
	Adapter   *industry.Adapter
	Assembler *roadmap.Assembler
}

// NewPipeline loads the reference data named by cfg and wires the signal
// extractor, industry adapter and solution corpus into an assembler.
func NewPipeline(cfg *models.Config) (*Pipeline, error) {
	extractor, err := analyzer.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize signal extractor: %w", err)
	}

	adapter, err := industry.Load(cfg.IndustryMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to load industry mapping: %w", err)
	}

	corpus, err := matcher.LoadCorpus(cfg.SolutionsCorpus)
	if err != nil {
		return nil, fmt.Errorf("failed to load solution corpus: %w", err)
	}

	return &Pipeline{
		Adapter:   adapter,
		Assembler: roadmap.NewAssembler(extractor, adapter, corpus),
	}, nil
}
