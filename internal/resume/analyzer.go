package resume

import (
	"context"

	"institute_backend/internal/model"
)

// Analyzer 组合文本提取、技能提取、对比与打分
type Analyzer struct {
	Extractor *Extractor
}

func NewAnalyzer(extractor *Extractor) *Analyzer {
	return &Analyzer{Extractor: extractor}
}

// Analyze 文档无法读取时返回 *DocumentReadError
func (a *Analyzer) Analyze(ctx context.Context, doc Document, jobText string) (*model.SkillComparison, error) {
	text, err := ExtractText(ctx, doc)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeText(ctx, text, jobText), nil
}

// AnalyzeText 对已提取的文本进行分析
func (a *Analyzer) AnalyzeText(ctx context.Context, resumeText, jobText string) *model.SkillComparison {
	resumeSkills := a.Extractor.Extract(ctx, resumeText)
	jobSkills := a.Extractor.Extract(ctx, jobText)

	return &model.SkillComparison{
		ResumeSkills:  resumeSkills,
		JobSkills:     jobSkills,
		MissingSkills: Compare(resumeSkills, jobSkills),
		Score:         Score(resumeSkills, jobSkills),
	}
}
