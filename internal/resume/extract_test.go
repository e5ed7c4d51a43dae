package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTagger struct {
	tokens []Token
	err    error
	calls  int
}

func (s *stubTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	s.calls++
	return s.tokens, s.err
}

func TestMatchKeywordsWordBoundary(t *testing.T) {
	v := NewVocabulary("test", []string{"java", "javascript", "machine learning", "go"})

	found := MatchKeywords(v, "Senior JavaScript developer, some machine learning")

	assert.Contains(t, found, "javascript")
	assert.Contains(t, found, "machine learning")
	assert.NotContains(t, found, "java")
	assert.NotContains(t, found, "go", "no partial-word matches")
}

func TestMatchKeywordsSymbolTerms(t *testing.T) {
	v := NewVocabulary("test", []string{"c++", "c#", "node.js", "ci/cd"})

	found := MatchKeywords(v, "Modern C++ and C#, Node.js services, CI/CD pipelines")
	assert.Len(t, found, 4)

	found = MatchKeywords(v, "abc++ and xnode.js")
	assert.Empty(t, found)
}

func TestExtractSkills(t *testing.T) {
	e := NewExtractor(DefaultVocabulary(), nil, nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{}},
		{name: "resume", text: "Experienced in Python and React", want: []string{"Python", "React"}},
		{name: "job", text: "Requires Python, React, Docker", want: []string{"Docker", "Python", "React"}},
		{name: "javascript only", text: "javascript developer", want: []string{"Javascript"}},
		{name: "multi word", text: "Worked on Machine Learning pipelines", want: []string{"Machine Learning"}},
		{name: "duplicates", text: "python PYTHON Python", want: []string{"Python"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(context.Background(), tt.text))
		})
	}
}

func TestExtractSkillsIgnoresLayout(t *testing.T) {
	e := NewExtractor(DefaultVocabulary(), nil, nil)
	ctx := context.Background()

	flat := e.Extract(ctx, "machine learning with docker and sql")
	wrapped := e.Extract(ctx, "machine\n   learning\twith\n\ndocker   and\r\nsql")

	assert.Equal(t, flat, wrapped)
	assert.Equal(t, flat, e.Extract(ctx, "machine learning with docker and sql"), "idempotent")
	assert.Equal(t, []string{"Docker", "Machine Learning", "Sql"}, flat)
}

func TestExtractWithTagger(t *testing.T) {
	v := NewVocabulary("test", []string{"python", "rust"})

	tagger := &stubTagger{tokens: []Token{{Text: "Rust", POS: "PROPN"}, {Text: "unknown", POS: "NOUN"}}}
	e := NewExtractor(v, tagger, nil)
	assert.Equal(t, []string{"Python", "Rust"}, e.Extract(context.Background(), "python"))
	assert.Equal(t, 1, tagger.calls)

	failing := &stubTagger{err: errors.New("model not loaded")}
	e = NewExtractor(v, failing, nil)
	assert.Equal(t, []string{"Python"}, e.Extract(context.Background(), "python"), "tagger errors are not fatal")
}

func TestCompare(t *testing.T) {
	assert.Equal(t, []string{"Docker", "Go"}, Compare([]string{"python", "REACT"}, []string{"Docker", "Python", "Go", "React"}))
	assert.Equal(t, []string{}, Compare([]string{"Python"}, nil))
	assert.Equal(t, []string{"Python"}, Compare(nil, []string{"Python"}))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		resume []string
		job    []string
		want   float64
	}{
		{name: "empty resume", resume: []string{}, job: []string{"Python"}, want: 0},
		{name: "empty job", resume: []string{"Python"}, job: []string{}, want: 0},
		{name: "case insensitive", resume: []string{"Python", "SQL"}, job: []string{"python"}, want: 100},
		{name: "two of three", resume: []string{"Python", "React"}, job: []string{"Docker", "Python", "React"}, want: 200.0 / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.resume, tt.job), 1e-9)
		})
	}
}
