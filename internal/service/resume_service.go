package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"institute_backend/internal/config"
	"institute_backend/internal/model"
	"institute_backend/internal/resume"
	"institute_backend/internal/util"
	"institute_backend/pkg/logger"
	"institute_backend/pkg/monitoring"
	"institute_backend/pkg/tracing"

	"go.uber.org/zap"
)

// DocumentStore 按 key 读取已存储的简历
type DocumentStore interface {
	Open(ctx context.Context, key string, maxBytes int64) (*StoredObject, error)
}

// ResumeService 简历与岗位描述的技能匹配
type ResumeService struct {
	Store  DocumentStore
	Tagger resume.Tagger

	vocab          atomic.Pointer[resume.Vocabulary]
	extractTimeout atomic.Int64
	maxBytes       atomic.Int64
}

func NewResumeService(cfg config.ResumeConfig, vocab *resume.Vocabulary, tagger resume.Tagger, store DocumentStore) *ResumeService {
	s := &ResumeService{
		Store:  store,
		Tagger: tagger,
	}
	s.ApplyConfig(cfg)
	if vocab == nil {
		vocab = resume.DefaultVocabulary()
	}
	s.vocab.Store(vocab)
	return s
}

// ApplyConfig 更新超时与大小限制，配置热加载时调用
func (s *ResumeService) ApplyConfig(cfg config.ResumeConfig) {
	s.extractTimeout.Store(int64(cfg.ExtractTimeout))
	s.maxBytes.Store(cfg.MaxUploadBytes())
}

// MaxBytes 当前允许的简历大小上限
func (s *ResumeService) MaxBytes() int64 {
	return s.maxBytes.Load()
}

// Vocabulary 当前生效的词表
func (s *ResumeService) Vocabulary() *resume.Vocabulary {
	return s.vocab.Load()
}

// SetVocabulary 替换词表，进行中的分析继续使用旧词表
func (s *ResumeService) SetVocabulary(v *resume.Vocabulary) {
	if v == nil {
		return
	}
	s.vocab.Store(v)
	logger.L().Info("skill vocabulary updated", zap.String("version", v.Version), zap.Int("terms", v.Len()))
}

// ReloadVocabulary 从文件重新加载词表，失败时保留当前词表
func (s *ResumeService) ReloadVocabulary(path string) error {
	v, err := resume.LoadVocabulary(path)
	if err != nil {
		logger.L().Error("reload skill vocabulary failed", zap.String("path", path), zap.Error(err))
		return err
	}
	s.SetVocabulary(v)
	return nil
}

func (s *ResumeService) analyzer() *resume.Analyzer {
	return resume.NewAnalyzer(resume.NewExtractor(s.Vocabulary(), s.Tagger, logger.L()))
}

func (s *ResumeService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(s.extractTimeout.Load())
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// AnalyzeUpload 分析上传的简历文档
func (s *ResumeService) AnalyzeUpload(ctx context.Context, doc resume.Document, jobText string) (result *model.SkillComparison, err error) {
	ctx, span := tracing.Start(ctx, "resume.analyze")
	defer func() {
		monitoring.ResumeAnalyses.WithLabelValues(analysisResult(err)).Inc()
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if strings.TrimSpace(jobText) == "" || len(doc.Data) == 0 {
		return nil, util.ErrMissingInput
	}
	if int64(len(doc.Data)) > s.MaxBytes() {
		return nil, util.ErrFileTooLarge
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err = s.analyzer().Analyze(ctx, doc, jobText)
	if err != nil {
		logger.L().Warn("resume analysis failed", zap.String("document", doc.Name), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// AnalyzeStored 分析存储后端中的简历
func (s *ResumeService) AnalyzeStored(ctx context.Context, key, jobText string) (*model.SkillComparison, error) {
	if strings.TrimSpace(key) == "" || strings.TrimSpace(jobText) == "" {
		monitoring.ResumeAnalyses.WithLabelValues(analysisResult(util.ErrMissingInput)).Inc()
		return nil, util.ErrMissingInput
	}

	obj, err := s.Store.Open(ctx, key, s.MaxBytes())
	if err != nil {
		monitoring.ResumeAnalyses.WithLabelValues(analysisResult(err)).Inc()
		return nil, err
	}

	return s.AnalyzeUpload(ctx, resume.Document{
		Name:        obj.Key,
		ContentType: obj.ContentType,
		Data:        obj.Data,
	}, jobText)
}

func analysisResult(err error) string {
	var readErr *resume.DocumentReadError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &readErr):
		return "unreadable"
	case errors.Is(err, util.ErrMissingInput), errors.Is(err, util.ErrFileTooLarge), errors.Is(err, util.ErrDocumentNotFound):
		return "rejected"
	default:
		return "error"
	}
}
