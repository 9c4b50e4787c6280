// Package analyzer turns a free-text pain-point description into a structured
// SignalSet: weighted keywords, multi-category tags over four lexicon
// dimensions, an industry focus and a deterministic summary sentence.
//
// Extraction is total: every step resolves absence of signal through a
// documented fallback, so Extract never fails, including on empty input.
package analyzer

import (
	"fmt"

	"github.com/go-ego/gse"
	"github.com/go-ego/gse/hmm/extracker"
	"github.com/pemistahl/lingua-go"

	"github.com/yhlin/n8n-consultant/models"
	"github.com/yhlin/n8n-consultant/pkg/lexicon"
	"github.com/yhlin/n8n-consultant/pkg/textutil"
)

// keywordCap bounds the extracted keyword list.
const keywordCap = 10

// Extractor holds the loaded segmentation dictionaries and the language
// detector. It is read-only after New and safe for concurrent use.
type Extractor struct {
	seg      gse.Segmenter
	tagger   extracker.TagExtracter
	detector lingua.LanguageDetector
}

// New loads the traditional-Chinese segmentation dictionary and the IDF table.
// Dictionary load failures are fatal for the process: the pipeline must not
// start in a degraded mode.
func New() (*Extractor, error) {
	e := &Extractor{}

	if err := e.seg.LoadDict("zh_t"); err != nil {
		return nil, fmt.Errorf("failed to load segmentation dictionary: %w", err)
	}

	e.tagger.WithGse(e.seg)
	if err := e.tagger.LoadIdf(); err != nil {
		return nil, fmt.Errorf("failed to load idf table: %w", err)
	}

	e.detector = lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Chinese, lingua.English, lingua.Japanese).
		Build()

	return e, nil
}

// Extract analyzes a pain-point description with optional industry and
// department hints and returns the full SignalSet.
func (e *Extractor) Extract(painText, industry, department string) models.SignalSet {
	folded := textutil.Fold(painText + " " + industry + " " + department)

	keywords := e.Keywords(painText, keywordCap)

	sources := lexicon.DetectSources(folded)
	actions := lexicon.DetectActions(folded)
	outputs := lexicon.DetectOutputs(folded)
	complexity := lexicon.DetectComplexity(folded)
	focus := lexicon.DetectFocus(folded, industry)

	if len(sources) == 0 {
		sources = lexicon.DefaultSources(industry)
	}
	if len(actions) == 0 {
		actions = lexicon.InferActions(keywords)
	}
	if len(outputs) == 0 {
		outputs = lexicon.DefaultOutputs()
	}

	sig := models.SignalSet{
		Keywords:      keywords,
		Sources:       lexicon.Labels(sources),
		Actions:       lexicon.Labels(actions),
		Outputs:       lexicon.Labels(outputs),
		Complexity:    lexicon.Labels(complexity),
		IndustryFocus: focus,
	}
	sig.Summary = buildSummary(sig, industry)
	return sig
}

// Keywords returns up to max salient terms ordered by relevance weight,
// descending. Text containing Han script goes through the TF-IDF tag
// extractor over segmented words; pure Latin text falls back to a stopword
// filtered frequency ranking.
func (e *Extractor) Keywords(text string, max int) []string {
	text = textutil.Normalize(text)
	if text == "" {
		return nil
	}

	if e.useSegmenter(text) {
		tags := e.tagger.ExtractTags(text, max)
		out := make([]string, 0, len(tags))
		for _, t := range tags {
			out = append(out, t.Text)
		}
		return out
	}

	return frequencyKeywords(text, max)
}

// useSegmenter decides whether the segmentation path applies. Han runes are
// the strong signal; for ambiguous short text the language detector breaks
// the tie.
func (e *Extractor) useSegmenter(text string) bool {
	if textutil.HasHan(text) {
		return true
	}
	lang, ok := e.detector.DetectLanguageOf(text)
	if !ok {
		return false
	}
	return lang == lingua.Chinese || lang == lingua.Japanese
}
