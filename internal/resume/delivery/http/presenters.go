package http

import (
	"student-productivity/internal/resume"
)

type analyzeReq struct {
	ResumeText     string `json:"resume_text"     binding:"required,notblank,max=50000"`
	JobDescription string `json:"job_description" binding:"required,notblank,max=50000"`
}

func (r analyzeReq) validate() error { return nil }

func (r analyzeReq) toInput() resume.AnalyzeInput {
	return resume.AnalyzeInput{ResumeText: r.ResumeText, JobDescription: r.JobDescription}
}

type analyzeResp struct {
	MatchScore      int      `json:"match_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	SeniorityCues   []string `json:"seniority_cues"`
	Recommendations []string `json:"recommendations"`
	Source          string   `json:"source"`
}

func (h *handler) newAnalyzeResp(out resume.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		MatchScore:      out.Result.MatchScore,
		MatchedKeywords: nonNil(out.Result.MatchedKeywords),
		MissingKeywords: nonNil(out.Result.MissingKeywords),
		SeniorityCues:   nonNil(out.Result.SeniorityCues),
		Recommendations: nonNil(out.Recommendations),
		Source:          out.Source,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
