package controller

import (
	"context"
	"errors"
	"io"
	"net/http"

	"institute_backend/internal/model"
	"institute_backend/internal/resume"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ResumeAnalyzer 简历分析服务
type ResumeAnalyzer interface {
	AnalyzeUpload(ctx context.Context, doc resume.Document, jobText string) (*model.SkillComparison, error)
	AnalyzeStored(ctx context.Context, key, jobText string) (*model.SkillComparison, error)
	MaxBytes() int64
}

type ResumeController struct {
	ResumeService ResumeAnalyzer
}

func NewResumeController(resumeService ResumeAnalyzer) *ResumeController {
	return &ResumeController{ResumeService: resumeService}
}

type analyzeStoredRequest struct {
	Key string `json:"key" binding:"required"`
	Job string `json:"job" binding:"required"`
}

// @Summary 简历技能匹配
// @Description 上传简历(PDF或纯文本)并与岗位描述对比，返回匹配技能、缺失技能及匹配度
// @Tags 简历
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "简历文件"
// @Param job formData string true "岗位描述"
// @Success 200 {object} util.Response{data=model.SkillComparison}
// @Failure 400 {object} util.Response
// @Failure 413 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /api/resume/analyze [post]
func (c *ResumeController) Analyze(ctx *gin.Context) {
	if limit := c.ResumeService.MaxBytes(); limit > 0 {
		// 预留表单其他字段的空间
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit+1<<20)
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			util.Error(ctx, http.StatusRequestEntityTooLarge, util.ErrFileTooLarge.Error())
			return
		}
		util.BadRequest(ctx, util.ErrMissingInput.Error())
		return
	}

	job := ctx.PostForm("job")

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		util.InternalServerError(ctx)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		util.LogInternalError(ctx, err)
		util.InternalServerError(ctx)
		return
	}

	result, err := c.ResumeService.AnalyzeUpload(ctx.Request.Context(), resume.Document{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, job)
	c.respond(ctx, result, err)
}

// @Summary 已存储简历技能匹配
// @Description 按对象存储 key 读取简历并与岗位描述对比
// @Tags 简历
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body analyzeStoredRequest true "简历key与岗位描述"
// @Success 200 {object} util.Response{data=model.SkillComparison}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /api/resume/analyze/stored [post]
func (c *ResumeController) AnalyzeStored(ctx *gin.Context) {
	var req analyzeStoredRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrMissingInput.Error())
		return
	}

	result, err := c.ResumeService.AnalyzeStored(ctx.Request.Context(), req.Key, req.Job)
	c.respond(ctx, result, err)
}

func (c *ResumeController) respond(ctx *gin.Context, result *model.SkillComparison, err error) {
	if err == nil {
		util.Success(ctx, result)
		return
	}

	var readErr *resume.DocumentReadError
	switch {
	case errors.Is(err, util.ErrMissingInput):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrFileTooLarge):
		util.Error(ctx, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, util.ErrDocumentNotFound):
		util.NotFound(ctx)
	case errors.As(err, &readErr):
		util.Error(ctx, http.StatusUnprocessableEntity, readErr.Error())
	default:
		util.LogInternalError(ctx, err)
		util.InternalServerError(ctx)
	}
}
