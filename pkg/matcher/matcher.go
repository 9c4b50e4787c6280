// Package matcher ranks the reference solution corpus against a pain-point
// query using character n-gram TF-IDF vectors and cosine similarity. The
// character representation lets overlapping substrings score across mixed
// scripts, which keeps unsegmented Chinese text comparable without a word
// tokenizer in the loop.
package matcher

import (
	"math"
	"sort"
	"strings"

	"github.com/yhlin/n8n-consultant/models"
	"github.com/yhlin/n8n-consultant/pkg/textutil"
)

const (
	ngramMin = 2
	ngramMax = 4
	vocabCap = 5000
)

// Match pairs a corpus solution with its similarity score in [0,1].
type Match struct {
	Solution   *models.Solution
	Similarity float64
}

// blob builds the text representation of one corpus record: name, workflow
// description, keyword list and pain-point phrases concatenated.
func blob(s *models.Solution) string {
	parts := []string{
		s.Name,
		s.Workflow.Description,
		strings.Join(s.Keywords, " "),
		strings.Join(s.PainPoints, " "),
	}
	return strings.Join(parts, " ")
}

// Rank scores every corpus solution against the query and returns at most
// topN matches ordered by descending similarity. Ties keep corpus order and
// zero-similarity entries are dropped entirely, so the result may be shorter
// than topN.
func Rank(query string, corpus []models.Solution, topN int) []Match {
	return rank(query, corpus, topN, nil)
}

// RankWeighted biases the ranking with an industry dimension weight vector:
// solutions tagged with highly weighted dimensions sort ahead of equally
// similar ones. The reported similarity is the boosted score rescaled by the
// strongest boost in the corpus, so it stays in (0,1], equals the raw cosine
// under uniform weights, and the Rank invariants (descending, no zeros,
// length at most topN) still hold.
func RankWeighted(query string, corpus []models.Solution, topN int, weights models.DimensionWeights) []Match {
	return rank(query, corpus, topN, &weights)
}

func rank(query string, corpus []models.Solution, topN int, weights *models.DimensionWeights) []Match {
	if len(corpus) == 0 || topN <= 0 {
		return nil
	}

	docs := make([]string, 0, len(corpus)+1)
	for i := range corpus {
		docs = append(docs, blob(&corpus[i]))
	}
	docs = append(docs, query)

	vectors := vectorize(docs)
	queryVec := vectors[len(vectors)-1]

	// Rescaling every boosted score by the strongest boost keeps the
	// reported similarity in (0,1] and monotone with the sort order.
	scale := 1.0
	if weights != nil {
		for i := range corpus {
			if b := dimensionBoost(&corpus[i], *weights); 1+b > scale {
				scale = 1 + b
			}
		}
	}

	type scored struct {
		idx   int
		score float64
	}
	var results []scored
	for i := range corpus {
		cos := dot(queryVec, vectors[i])
		if cos <= 0 {
			continue
		}
		score := cos
		if weights != nil {
			score = cos * (1 + dimensionBoost(&corpus[i], *weights)) / scale
		}
		results = append(results, scored{idx: i, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	if len(results) > topN {
		results = results[:topN]
	}

	out := make([]Match, len(results))
	for i, r := range results {
		out[i] = Match{
			Solution:   &corpus[r.idx],
			Similarity: round4(r.score),
		}
	}
	return out
}

// dimensionBoost is the strongest industry weight among the solution's
// tagged dimensions, in [0,1].
func dimensionBoost(s *models.Solution, w models.DimensionWeights) float64 {
	best := 0.0
	for _, dim := range s.Dimensions {
		if v := w.Of(dim); v > best {
			best = v
		}
	}
	return best
}

// vectorize builds L2-normalized TF-IDF vectors for all documents at once.
// Term frequency is sublinear (1+ln tf); the vocabulary is capped to the
// most frequent terms so corpus size stays the only scale factor.
func vectorize(docs []string) []map[string]float64 {
	counts := make([]map[string]int, len(docs))
	totals := make(map[string]int)
	df := make(map[string]int)
	for i, doc := range docs {
		counts[i] = ngramCounts(doc)
		for g, c := range counts[i] {
			totals[g] += c
			df[g]++
		}
	}

	vocab := cappedVocabulary(totals)

	n := float64(len(docs))
	idf := make(map[string]float64, len(vocab))
	for g := range vocab {
		idf[g] = math.Log((1+n)/(1+float64(df[g]))) + 1
	}

	vectors := make([]map[string]float64, len(docs))
	for i := range docs {
		vec := make(map[string]float64)
		var norm float64
		for g, c := range counts[i] {
			if _, ok := vocab[g]; !ok {
				continue
			}
			w := (1 + math.Log(float64(c))) * idf[g]
			vec[g] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for g := range vec {
				vec[g] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}

// ngramCounts extracts word-boundary-padded character n-grams, the analyzer
// that makes short CJK phrases and Latin words contribute alike.
func ngramCounts(doc string) map[string]int {
	counts := make(map[string]int)
	for _, word := range strings.Fields(textutil.Fold(doc)) {
		padded := []rune(" " + word + " ")
		for n := ngramMin; n <= ngramMax; n++ {
			for i := 0; i+n <= len(padded); i++ {
				counts[string(padded[i:i+n])]++
			}
		}
	}
	return counts
}

// cappedVocabulary keeps the vocabCap most frequent n-grams; ties resolve
// lexically so the vocabulary is deterministic.
func cappedVocabulary(totals map[string]int) map[string]struct{} {
	if len(totals) <= vocabCap {
		vocab := make(map[string]struct{}, len(totals))
		for g := range totals {
			vocab[g] = struct{}{}
		}
		return vocab
	}

	grams := make([]string, 0, len(totals))
	for g := range totals {
		grams = append(grams, g)
	}
	sort.Slice(grams, func(i, j int) bool {
		if totals[grams[i]] != totals[grams[j]] {
			return totals[grams[i]] > totals[grams[j]]
		}
		return grams[i] < grams[j]
	})

	vocab := make(map[string]struct{}, vocabCap)
	for _, g := range grams[:vocabCap] {
		vocab[g] = struct{}{}
	}
	return vocab
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for g, v := range a {
		sum += v * b[g]
	}
	return sum
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
