package resume

import "student-productivity/internal/matcher"

// Recommendation sources.
const (
	SourceLLM      = "llm"
	SourceKeywords = "keywords"
)

type AnalyzeInput struct {
	ResumeText     string
	JobDescription string
}

// AnalyzeOutput is the keyword match plus advice. Source tells whether the
// advice came from a language model or the keyword fallback.
type AnalyzeOutput struct {
	Result          matcher.Result
	Recommendations []string
	Source          string
}
