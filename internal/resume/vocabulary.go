package resume

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSkillTerms 软件类岗位常用技能词表
var DefaultSkillTerms = []string{
	"python", "java", "c++", "c#", "javascript", "typescript", "sql", "nosql", "html", "css",
	"react", "angular", "vue", "node.js", "node", "django", "flask", "spring", "hibernate",
	"rest", "api", "graphql", "jpa", "oop", "agile", "scrum", "kanban",
	"oracle", "postgresql", "mysql", "mongodb", "redis", "docker", "kubernetes", "aws", "azure",
	"google cloud", "gcp", "ci/cd", "jenkins", "git", "github", "gitlab", "bitbucket",
	"unit testing", "integration testing", "selenium", "appium", "jira", "trello", "slack",
	"machine learning", "deep learning", "data analysis", "data science", "artificial intelligence",
	"nlp", "computer vision", "tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy",
	"matplotlib", "seaborn", "tableau", "power bi",
	"design patterns", "mvc", "microservices", "soap", "json", "xml", "web development",
	"backend development", "frontend development", "full stack development",
	"software architecture", "software design", "problem-solving", "team collaboration",
	"communication", "data structures and algorithm", "object oriented programming",
}

type term struct {
	text    string
	pattern *regexp.Regexp // 单词词条按单词边界匹配，多词词条为 nil
}

// Vocabulary 规范化（小写、去重）后的技能词表，构建后只读
type Vocabulary struct {
	Version string
	terms   []term
	index   map[string]struct{}
}

// NewVocabulary 规范化词条：去空白、转小写、去重并保持原有顺序
func NewVocabulary(version string, terms []string) *Vocabulary {
	v := &Vocabulary{
		Version: version,
		index:   make(map[string]struct{}, len(terms)),
	}
	for _, raw := range terms {
		t := strings.ToLower(strings.TrimSpace(raw))
		if t == "" {
			continue
		}
		if _, dup := v.index[t]; dup {
			continue
		}
		v.index[t] = struct{}{}

		entry := term{text: t}
		if !strings.Contains(t, " ") {
			entry.pattern = wordPattern(t)
		}
		v.terms = append(v.terms, entry)
	}
	return v
}

// wordPattern 只在词条首尾为单词字符时加 \b，"c++"、"c#" 这类词条才能命中
func wordPattern(t string) *regexp.Regexp {
	expr := regexp.QuoteMeta(t)
	if isWordByte(t[0]) {
		expr = `\b` + expr
	}
	if isWordByte(t[len(t)-1]) {
		expr += `\b`
	}
	return regexp.MustCompile(expr)
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// DefaultVocabulary 内置词表
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary("builtin", DefaultSkillTerms)
}

// Terms 返回规范化后的词条
func (v *Vocabulary) Terms() []string {
	out := make([]string, 0, len(v.terms))
	for _, t := range v.terms {
		out = append(out, t.text)
	}
	return out
}

// Contains 大小写不敏感地判断词条是否存在
func (v *Vocabulary) Contains(s string) bool {
	if v == nil {
		return false
	}
	_, ok := v.index[strings.ToLower(s)]
	return ok
}

func (v *Vocabulary) Len() int {
	return len(v.terms)
}

type vocabularyFile struct {
	Version string   `yaml:"version"`
	Skills  []string `yaml:"skills"`
}

// LoadVocabulary 从 YAML 文件加载词表
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}
	return ParseVocabulary(data)
}

func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var f vocabularyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary file: %w", err)
	}
	if len(f.Skills) == 0 {
		return nil, ErrEmptyVocabulary
	}
	return NewVocabulary(f.Version, f.Skills), nil
}
