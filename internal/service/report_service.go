package service

import (
	"context"
	"fmt"
	"time"

	"institute_backend/internal/analytics"
	"institute_backend/internal/model"
	"institute_backend/internal/util"
	"institute_backend/pkg/logger"
	"institute_backend/pkg/monitoring"
	"institute_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// SnapshotRepository 提供已按范围过滤的只读快照
type SnapshotRepository interface {
	StudentSnapshot(ctx context.Context, scope model.ReportScope) (*model.StudentSnapshot, error)
	TeacherSnapshot(ctx context.Context, scope model.ReportScope) (*model.TeacherSnapshot, error)
	CourseSnapshot(ctx context.Context, scope model.ReportScope) (*model.CourseSnapshot, error)
	AttendanceSnapshot(ctx context.Context, scope model.ReportScope) (*model.AttendanceSnapshot, error)
	FeeSnapshot(ctx context.Context, scope model.ReportScope) (*model.FeeSnapshot, error)
}

// ReportService 每次请求重新加载快照并聚合，不做缓存
type ReportService struct {
	Repo SnapshotRepository
}

func NewReportService(repo SnapshotRepository) *ReportService {
	return &ReportService{Repo: repo}
}

func generate[S any, R any](
	ctx context.Context,
	domain string,
	scope model.ReportScope,
	load func(context.Context, model.ReportScope) (*S, error),
	aggregate func(S) R,
) (report *R, err error) {
	ctx, span := tracing.Start(ctx, "report."+domain)
	start := time.Now()
	defer func() {
		monitoring.ObserveReport(domain, start, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if scope.DepartmentID != nil {
		span.SetAttributes(attribute.Int64("report.department_id", int64(*scope.DepartmentID)))
	}
	if scope.StudentID != nil {
		span.SetAttributes(attribute.Int64("report.student_id", int64(*scope.StudentID)))
	}

	snap, err := load(ctx, scope)
	if err != nil {
		logger.L().Error("load report snapshot failed", zap.String("domain", domain), zap.Error(err))
		return nil, fmt.Errorf("load %s snapshot: %w", domain, err)
	}

	r := aggregate(*snap)
	logger.L().Debug("report generated",
		zap.String("domain", domain),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &r, nil
}

func (s *ReportService) StudentReport(ctx context.Context, scope model.ReportScope) (*model.StudentReport, error) {
	return generate(ctx, util.ReportStudents, scope, s.Repo.StudentSnapshot, analytics.AggregateStudents)
}

func (s *ReportService) TeacherReport(ctx context.Context, scope model.ReportScope) (*model.TeacherReport, error) {
	return generate(ctx, util.ReportTeachers, scope, s.Repo.TeacherSnapshot, analytics.AggregateTeachers)
}

func (s *ReportService) CourseReport(ctx context.Context, scope model.ReportScope) (*model.CourseReport, error) {
	return generate(ctx, util.ReportCourses, scope, s.Repo.CourseSnapshot, analytics.AggregateCourses)
}

func (s *ReportService) AttendanceReport(ctx context.Context, scope model.ReportScope) (*model.AttendanceReport, error) {
	return generate(ctx, util.ReportAttendance, scope, s.Repo.AttendanceSnapshot, analytics.AggregateAttendance)
}

func (s *ReportService) FeeReport(ctx context.Context, scope model.ReportScope) (*model.FeeReport, error) {
	return generate(ctx, util.ReportFees, scope, s.Repo.FeeSnapshot, analytics.AggregateFees)
}
