package matcher

import (
	"fmt"
	"strings"
)

const emphasizeLimit = 3

// Recommend turns a Result into plain advice. It is the offline counterpart
// of LLM-generated recommendations.
func Recommend(r Result) []string {
	var recs []string

	switch {
	case r.MatchScore >= 80:
		recs = append(recs, "Strong match: your resume already covers most of the role's keywords.")
	case r.MatchScore >= 60:
		recs = append(recs, "Good match: a few targeted additions would strengthen your resume.")
	default:
		recs = append(recs, "Low match: tailor your resume to the job description before applying.")
	}

	if len(r.MissingKeywords) > 0 {
		recs = append(recs, fmt.Sprintf("Consider learning or adding experience with: %s.", strings.Join(r.MissingKeywords, ", ")))
	}

	if len(r.MatchedKeywords) > 0 {
		top := capped(r.MatchedKeywords, emphasizeLimit)
		recs = append(recs, fmt.Sprintf("Emphasize your experience with: %s.", strings.Join(top, ", ")))
	}

	if len(r.SeniorityCues) > 0 {
		recs = append(recs, fmt.Sprintf("The posting signals %s level; highlight scope and ownership that match it.", strings.Join(r.SeniorityCues, "/")))
	}

	return recs
}
