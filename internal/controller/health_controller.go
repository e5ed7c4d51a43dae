package controller

import (
	"net/http"

	"institute_backend/internal/resume"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB         *gorm.DB
	Vocabulary func() *resume.Vocabulary
}

func NewHealthController(db *gorm.DB, vocabulary func() *resume.Vocabulary) *HealthController {
	return &HealthController{DB: db, Vocabulary: vocabulary}
}

// @Summary 健康检查
// @Description 检查数据库连接及当前技能词表
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components := gin.H{}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			util.LogInternalError(ctx, err)
			util.InternalServerError(ctx)
			return
		}
		if err := sqlDB.PingContext(ctx.Request.Context()); err != nil {
			util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		components["database"] = "up"
	}

	if c.Vocabulary != nil {
		if v := c.Vocabulary(); v != nil {
			components["vocabulary"] = gin.H{"version": v.Version, "terms": v.Len()}
		}
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
