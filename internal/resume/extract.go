package resume

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Extractor 基于词表的技能提取器，Tagger 可选
type Extractor struct {
	Vocabulary *Vocabulary
	Tagger     Tagger
	Logger     *zap.Logger
}

func NewExtractor(vocab *Vocabulary, tagger Tagger, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{Vocabulary: vocab, Tagger: tagger, Logger: log}
}

// MatchKeywords 返回文本中命中的规范化（小写）词条集合。
// 多词词条按子串匹配，单词词条按单词边界匹配（"java" 不会命中 "javascript"）。
func MatchKeywords(vocab *Vocabulary, text string) map[string]struct{} {
	found := make(map[string]struct{})
	if vocab == nil || strings.TrimSpace(text) == "" {
		return found
	}

	// 折叠空白，使换行/缩进不影响多词词条
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")

	for _, t := range vocab.terms {
		if t.pattern == nil {
			if strings.Contains(normalized, t.text) {
				found[t.text] = struct{}{}
			}
			continue
		}
		if t.pattern.MatchString(normalized) {
			found[t.text] = struct{}{}
		}
	}
	return found
}

// Extract 提取技能，返回去重、排序后的展示形式（首字母大写）
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	found := MatchKeywords(e.Vocabulary, text)

	if e.Tagger != nil && strings.TrimSpace(text) != "" {
		tokens, err := e.Tagger.Tag(ctx, text)
		if err != nil {
			e.Logger.Debug("nlp enrichment skipped", zap.Error(err))
		}
		for _, tok := range tokens {
			t := strings.ToLower(strings.TrimSpace(tok.Text))
			if e.Vocabulary.Contains(t) {
				found[t] = struct{}{}
			}
		}
	}

	return displaySkills(found)
}

func displaySkills(found map[string]struct{}) []string {
	caser := cases.Title(language.English)
	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, caser.String(s))
	}
	sort.Strings(out)
	return out
}

func lowerSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

// Compare 返回岗位要求中简历缺失的技能（大小写不敏感），保持岗位技能的原有顺序
func Compare(resumeSkills, jobSkills []string) []string {
	have := lowerSet(resumeSkills)
	missing := make([]string, 0)
	for _, s := range jobSkills {
		if _, ok := have[strings.ToLower(s)]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}

// Score 覆盖率 = |简历 ∩ 岗位| / |岗位| * 100，岗位技能为空时为 0
func Score(resumeSkills, jobSkills []string) float64 {
	job := lowerSet(jobSkills)
	if len(job) == 0 {
		return 0
	}
	have := lowerSet(resumeSkills)
	matched := 0
	for s := range job {
		if _, ok := have[s]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(job)) * 100
}
