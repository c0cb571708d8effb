package matcher_test

import (
	"reflect"
	"strings"
	"testing"

	"student-productivity/internal/matcher"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{
			name:  "frequency then first seen",
			text:  "go rust go python rust go",
			limit: 10,
			want:  []string{"go", "rust", "python"},
		},
		{
			name:  "keeps programming tokens",
			text:  "C++ and C# with Node.js; also CI/CD",
			limit: 10,
			want:  []string{"c++", "c#", "node.js", "also", "ci", "cd"},
		},
		{
			name:  "strips html and stop words",
			text:  "<p>The <b>Kubernetes</b> team</p> is hiring",
			limit: 10,
			want:  []string{"kubernetes", "team", "hiring"},
		},
		{
			name:  "length bounds",
			text:  "x " + strings.Repeat("a", 33) + " ok " + strings.Repeat("b", 32),
			limit: 10,
			want:  []string{"ok", strings.Repeat("b", 32)},
		},
		{
			name:  "truncates to limit",
			text:  "alpha beta gamma delta",
			limit: 2,
			want:  []string{"alpha", "beta"},
		},
		{
			name:  "empty",
			text:  "   ",
			limit: 5,
			want:  []string{},
		},
		{
			name:  "zero limit",
			text:  "alpha",
			limit: 0,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matcher.ExtractKeywords(tt.text, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractKeywords_ReExtractIsSubset(t *testing.T) {
	text := "Senior Go engineer: Go, gRPC, Kafka, PostgreSQL, Kubernetes. Go and gRPC experience required; Kafka a plus."
	first := matcher.ExtractKeywords(text, 50)

	again := matcher.ExtractKeywords(strings.Join(first, " "), 50)

	seen := make(map[string]bool, len(first))
	for _, kw := range first {
		seen[kw] = true
	}
	for _, kw := range again {
		if !seen[kw] {
			t.Errorf("re-extracted keyword %q not in original %v", kw, first)
		}
	}
}

func TestDetectSeniorityCues(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{text: "Senior Staff Engineer", want: []string{"senior", "staff"}},
		{text: "Team LEADERSHIP for a Director", want: []string{"lead", "director"}},
		{text: "Internship program", want: []string{"intern"}},
		{text: "Backend developer", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := matcher.DetectSeniorityCues(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectSeniorityCues(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
