package matcher

import (
	"regexp"
	"sort"
	"strings"
)

const (
	minTokenLen = 2
	maxTokenLen = 32
)

var (
	htmlTagPattern  = regexp.MustCompile(`<[^>]*>`)
	disallowedChars = regexp.MustCompile(`[^a-z0-9+.#\-\s]`)

	stopWords = map[string]struct{}{
		"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "but": {},
		"by": {}, "can": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {}, "is": {},
		"it": {}, "its": {}, "not": {}, "of": {}, "on": {}, "or": {}, "our": {}, "that": {},
		"the": {}, "their": {}, "they": {}, "this": {}, "to": {}, "was": {}, "we": {}, "were": {},
		"will": {}, "with": {}, "you": {}, "your": {},
	}

	seniorityTerms = []string{"intern", "junior", "mid", "senior", "staff", "lead", "principal", "manager", "director"}
)

// normalize lowercases text, drops HTML tags and replaces anything outside
// [a-z0-9+.#-] and whitespace with a space. "c++", "node.js" and "c#" survive.
func normalize(text string) string {
	text = strings.ToLower(text)
	text = htmlTagPattern.ReplaceAllString(text, " ")
	return disallowedChars.ReplaceAllString(text, " ")
}

// ExtractKeywords returns up to limit distinct keywords of text ordered by
// descending frequency; equal counts keep first-seen order.
func ExtractKeywords(text string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range strings.Fields(normalize(text)) {
		if len(tok) < minTokenLen || len(tok) > maxTokenLen {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	if order == nil {
		return []string{}
	}
	return order
}

// DetectSeniorityCues returns the seniority terms contained in text, in
// fixed term order. Matching is by substring, not word boundary.
func DetectSeniorityCues(text string) []string {
	lower := strings.ToLower(text)
	cues := []string{}
	for _, term := range seniorityTerms {
		if strings.Contains(lower, term) {
			cues = append(cues, term)
		}
	}
	return cues
}
