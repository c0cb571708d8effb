package matcher

import "math"

const (
	jobKeywordLimit    = 160
	resumeKeywordLimit = 220
	matchedLimit       = 40
	missingLimit       = 5
)

// Result is the keyword comparison of a resume against a job description.
type Result struct {
	MatchScore      int      `json:"match_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	SeniorityCues   []string `json:"seniority_cues"`
}

// Analyze scores resume against jobDescription. The score is the share of
// job keywords found in the resume, over all job keywords before capping.
func Analyze(resume, jobDescription string) Result {
	jobKeywords := ExtractKeywords(jobDescription, jobKeywordLimit)

	resumeSet := make(map[string]struct{})
	for _, kw := range ExtractKeywords(resume, resumeKeywordLimit) {
		resumeSet[kw] = struct{}{}
	}

	matched := []string{}
	missing := []string{}
	for _, kw := range jobKeywords {
		if _, ok := resumeSet[kw]; ok {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := int(math.Round(100 * float64(len(matched)) / float64(max(1, len(jobKeywords)))))

	return Result{
		MatchScore:      score,
		MatchedKeywords: capped(matched, matchedLimit),
		MissingKeywords: capped(missing, missingLimit),
		SeniorityCues:   DetectSeniorityCues(jobDescription),
	}
}

func capped(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
