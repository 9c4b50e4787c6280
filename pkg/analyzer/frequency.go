package analyzer

import (
	"sort"
	"strings"
)

// latinStopwords filters function words from the frequency fallback path.
var latinStopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "again": {}, "all": {}, "also": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"between": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "cannot": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "done": {}, "down": {},
	"during": {},
	"each":   {}, "either": {}, "every": {},
	"few": {}, "for": {}, "from": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "his": {}, "how": {},
	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"just": {},
	"like": {},
	"make": {}, "many": {}, "may": {}, "me": {}, "might": {}, "more": {},
	"most": {}, "much": {}, "must": {}, "my": {},
	"need": {}, "no": {}, "not": {}, "now": {},
	"of": {}, "off": {}, "on": {}, "once": {}, "one": {}, "only": {},
	"or": {}, "other": {}, "our": {}, "out": {}, "over": {}, "own": {},
	"per":  {},
	"same": {}, "she": {}, "should": {}, "so": {}, "some": {}, "such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "us": {},
	"very": {},
	"want": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "while": {}, "who": {}, "why": {}, "will": {},
	"with": {}, "would": {},
	"you": {}, "your": {},
}

// frequencyKeywords ranks tokens of whitespace-segmented text by occurrence
// count. Ties keep first-appearance order so output is deterministic.
func frequencyKeywords(text string, max int) []string {
	words := strings.Fields(strings.ToLower(text))

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, word := range words {
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})
		if word == "" {
			continue
		}
		if _, stop := latinStopwords[word]; stop {
			continue
		}
		if _, seen := counts[word]; !seen {
			firstSeen[word] = i
		}
		counts[word]++
	}

	ranked := make([]string, 0, len(counts))
	for w := range counts {
		ranked = append(ranked, w)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}
