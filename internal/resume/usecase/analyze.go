package usecase

import (
	"context"
	"fmt"
	"strings"

	"student-productivity/internal/matcher"
	"student-productivity/internal/model"
	"student-productivity/internal/resume"
)

const (
	maxRecommendations = 6

	systemInstruction = `You are a career advisor for university students.
Given a keyword comparison between a resume and a job description, write
concrete, actionable recommendations to improve the resume for this job.
Answer with one recommendation per line, each starting with "- ".
Do not add headings or any other text.`
)

// Analyze scores the resume against the job description and asks the
// generator for advice. Any generator failure falls back to keyword advice.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input resume.AnalyzeInput) (resume.AnalyzeOutput, error) {
	if strings.TrimSpace(input.ResumeText) == "" || strings.TrimSpace(input.JobDescription) == "" {
		return resume.AnalyzeOutput{}, resume.ErrEmptyInput
	}

	result := matcher.Analyze(input.ResumeText, input.JobDescription)
	out := resume.AnalyzeOutput{Result: result}

	if uc.gen != nil {
		text, err := uc.gen.Generate(ctx, systemInstruction, buildPrompt(result))
		if err != nil {
			uc.l.Warnf(ctx, "uc.Analyze Generate: %v", err)
		} else if recs := parseRecommendations(text); len(recs) > 0 {
			out.Recommendations = recs
			out.Source = resume.SourceLLM
			return out, nil
		} else {
			uc.l.Warnf(ctx, "uc.Analyze: generator returned no recommendations")
		}
	}

	out.Recommendations = matcher.Recommend(result)
	out.Source = resume.SourceKeywords
	return out, nil
}

func buildPrompt(r matcher.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Match score: %d/100\n", r.MatchScore)
	fmt.Fprintf(&b, "Keywords found in the resume: %s\n", orNone(r.MatchedKeywords))
	fmt.Fprintf(&b, "Job keywords missing from the resume: %s\n", orNone(r.MissingKeywords))
	fmt.Fprintf(&b, "Seniority cues in the posting: %s\n", orNone(r.SeniorityCues))
	fmt.Fprintf(&b, "Give at most %d recommendations.", maxRecommendations)
	return b.String()
}

func orNone(s []string) string {
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ", ")
}

// parseRecommendations keeps bullet or numbered lines, stripped of their
// markers. Plain lines count when the text has no bullets at all.
func parseRecommendations(text string) []string {
	var bullets, plain []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if item, ok := stripMarker(line); ok {
			bullets = append(bullets, item)
		} else {
			plain = append(plain, line)
		}
	}

	recs := bullets
	if len(recs) == 0 {
		recs = plain
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func stripMarker(line string) (string, bool) {
	for _, m := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, m) {
			return strings.TrimSpace(line[len(m):]), true
		}
	}
	// "1. " or "1) "
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(line) && (line[i] == '.' || line[i] == ')') && line[i+1] == ' ' {
		return strings.TrimSpace(line[i+2:]), true
	}
	return "", false
}
