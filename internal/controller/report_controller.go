package controller

import (
	"context"
	"errors"

	"institute_backend/internal/model"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ReportGenerator 报表服务
type ReportGenerator interface {
	StudentReport(ctx context.Context, scope model.ReportScope) (*model.StudentReport, error)
	TeacherReport(ctx context.Context, scope model.ReportScope) (*model.TeacherReport, error)
	CourseReport(ctx context.Context, scope model.ReportScope) (*model.CourseReport, error)
	AttendanceReport(ctx context.Context, scope model.ReportScope) (*model.AttendanceReport, error)
	FeeReport(ctx context.Context, scope model.ReportScope) (*model.FeeReport, error)
}

type ReportController struct {
	ReportService ReportGenerator
}

func NewReportController(reportService ReportGenerator) *ReportController {
	return &ReportController{ReportService: reportService}
}

// parseScope 解析 department_id / student_id 查询参数
func parseScope(ctx *gin.Context, allowStudent bool) (model.ReportScope, error) {
	var scope model.ReportScope

	dept, err := util.ParseOptionalUint(ctx.Query("department_id"))
	if err != nil {
		return scope, err
	}
	scope.DepartmentID = dept

	if allowStudent {
		student, err := util.ParseOptionalUint(ctx.Query("student_id"))
		if err != nil {
			return scope, err
		}
		scope.StudentID = student
	}
	return scope, nil
}

func respondReport[R any](ctx *gin.Context, report *R, err error) {
	if err != nil {
		util.LogInternalError(ctx, err)
		util.InternalServerError(ctx)
		return
	}
	util.Success(ctx, report)
}

func (c *ReportController) scoped(ctx *gin.Context, allowStudent bool) (model.ReportScope, bool) {
	scope, err := parseScope(ctx, allowStudent)
	if err != nil {
		if errors.Is(err, util.ErrInvalidScope) {
			util.BadRequest(ctx, err.Error())
			return scope, false
		}
		util.InternalServerError(ctx)
		return scope, false
	}
	return scope, true
}

// ownScope 学生只能查看自己的数据
func (c *ReportController) ownScope(ctx *gin.Context) (model.ReportScope, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return model.ReportScope{}, false
	}
	id := user.UserID
	return model.ReportScope{StudentID: &id}, true
}

// @Summary 学生统计报表
// @Description 学生总数、性别分布、选课状态分布
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "院系ID"
// @Success 200 {object} util.Response{data=model.StudentReport}
// @Failure 400 {object} util.Response
// @Router /api/reports/students [get]
func (c *ReportController) GetStudentReport(ctx *gin.Context) {
	scope, ok := c.scoped(ctx, false)
	if !ok {
		return
	}
	report, err := c.ReportService.StudentReport(ctx.Request.Context(), scope)
	respondReport(ctx, report, err)
}

// @Summary 教师统计报表
// @Description 教师总数、性别分布、平均教龄、课程负载
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "院系ID"
// @Success 200 {object} util.Response{data=model.TeacherReport}
// @Router /api/reports/teachers [get]
func (c *ReportController) GetTeacherReport(ctx *gin.Context) {
	scope, ok := c.scoped(ctx, false)
	if !ok {
		return
	}
	report, err := c.ReportService.TeacherReport(ctx.Request.Context(), scope)
	respondReport(ctx, report, err)
}

// @Summary 课程统计报表
// @Description 每门课程的选课人数及状态分布
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "院系ID"
// @Success 200 {object} util.Response{data=model.CourseReport}
// @Router /api/reports/courses [get]
func (c *ReportController) GetCourseReport(ctx *gin.Context) {
	scope, ok := c.scoped(ctx, false)
	if !ok {
		return
	}
	report, err := c.ReportService.CourseReport(ctx.Request.Context(), scope)
	respondReport(ctx, report, err)
}

// @Summary 考勤统计报表
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "院系ID"
// @Param student_id query int false "学生ID"
// @Success 200 {object} util.Response{data=model.AttendanceReport}
// @Router /api/reports/attendance [get]
func (c *ReportController) GetAttendanceReport(ctx *gin.Context) {
	scope, ok := c.scoped(ctx, true)
	if !ok {
		return
	}
	report, err := c.ReportService.AttendanceReport(ctx.Request.Context(), scope)
	respondReport(ctx, report, err)
}

// @Summary 费用统计报表
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "院系ID"
// @Param student_id query int false "学生ID"
// @Success 200 {object} util.Response{data=model.FeeReport}
// @Router /api/reports/fees [get]
func (c *ReportController) GetFeeReport(ctx *gin.Context) {
	scope, ok := c.scoped(ctx, true)
	if !ok {
		return
	}
	report, err := c.ReportService.FeeReport(ctx.Request.Context(), scope)
	respondReport(ctx, report, err)
}

// @Summary 我的考勤
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.AttendanceReport}
// @Router /api/reports/me/attendance [get]
func (c *ReportController) GetMyAttendance(ctx *gin.Context) {
	scope, ok := c.ownScope(ctx)
	if !ok {
		return
	}
	report, err := c.ReportService.AttendanceReport(ctx.Request.Context(), scope)
	respondReport(ctx, report, err)
}

// @Summary 我的费用
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.FeeReport}
// @Router /api/reports/me/fees [get]
func (c *ReportController) GetMyFees(ctx *gin.Context) {
	scope, ok := c.ownScope(ctx)
	if !ok {
		return
	}
	report, err := c.ReportService.FeeReport(ctx.Request.Context(), scope)
	respondReport(ctx, report, err)
}
