package app

import (
	"institute_backend/docs"
	"institute_backend/internal/config"
	"institute_backend/internal/middleware"
	"institute_backend/internal/model"
	"institute_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	router.GET("/api/health", c.health.HealthCheck)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		registerResumeRoutes(authGroup, c)
		registerReportRoutes(authGroup, c)
	}
}

func registerResumeRoutes(rg *gin.RouterGroup, c *controllers) {
	resume := rg.Group("/resume")
	{
		resume.POST("/analyze", c.resume.Analyze)
		resume.POST("/analyze/stored", c.resume.AnalyzeStored)
	}
}

func registerReportRoutes(rg *gin.RouterGroup, c *controllers) {
	reports := rg.Group("/reports")

	// 学生查看本人数据
	me := reports.Group("/me")
	me.Use(middleware.RoleMiddleware(model.Student))
	{
		me.GET("/attendance", c.report.GetMyAttendance)
		me.GET("/fees", c.report.GetMyFees)
	}

	admin := reports.Group("")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/students", c.report.GetStudentReport)
		admin.GET("/teachers", c.report.GetTeacherReport)
		admin.GET("/courses", c.report.GetCourseReport)
		admin.GET("/attendance", c.report.GetAttendanceReport)
		admin.GET("/fees", c.report.GetFeeReport)
	}
}
