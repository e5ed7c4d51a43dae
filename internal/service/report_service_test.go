package service

import (
	"context"
	"errors"
	"testing"

	"institute_backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotRepo struct {
	students   model.StudentSnapshot
	teachers   model.TeacherSnapshot
	courses    model.CourseSnapshot
	attendance model.AttendanceSnapshot
	fees       model.FeeSnapshot
	err        error

	calls  int
	scopes []model.ReportScope
}

func (f *fakeSnapshotRepo) record(scope model.ReportScope) error {
	f.calls++
	f.scopes = append(f.scopes, scope)
	return f.err
}

func (f *fakeSnapshotRepo) StudentSnapshot(ctx context.Context, scope model.ReportScope) (*model.StudentSnapshot, error) {
	if err := f.record(scope); err != nil {
		return nil, err
	}
	return &f.students, nil
}

func (f *fakeSnapshotRepo) TeacherSnapshot(ctx context.Context, scope model.ReportScope) (*model.TeacherSnapshot, error) {
	if err := f.record(scope); err != nil {
		return nil, err
	}
	return &f.teachers, nil
}

func (f *fakeSnapshotRepo) CourseSnapshot(ctx context.Context, scope model.ReportScope) (*model.CourseSnapshot, error) {
	if err := f.record(scope); err != nil {
		return nil, err
	}
	return &f.courses, nil
}

func (f *fakeSnapshotRepo) AttendanceSnapshot(ctx context.Context, scope model.ReportScope) (*model.AttendanceSnapshot, error) {
	if err := f.record(scope); err != nil {
		return nil, err
	}
	return &f.attendance, nil
}

func (f *fakeSnapshotRepo) FeeSnapshot(ctx context.Context, scope model.ReportScope) (*model.FeeSnapshot, error) {
	if err := f.record(scope); err != nil {
		return nil, err
	}
	return &f.fees, nil
}

func course(id uint, code string) model.Course {
	c := model.Course{Code: code, Name: code}
	c.ID = id
	return c
}

func TestReportServiceStudentReport(t *testing.T) {
	repo := &fakeSnapshotRepo{
		students: model.StudentSnapshot{
			Students: []model.StudentProfile{
				{Name: "Ann", Gender: model.GenderFemale},
				{Name: "Bob", Gender: model.GenderMale},
			},
			Enrollments: []model.Enrollment{
				{StudentID: 1, CourseID: 1, Status: model.EnrollmentActive},
				{StudentID: 2, CourseID: 1, Status: model.EnrollmentDropped},
			},
		},
	}
	svc := NewReportService(repo)

	report, err := svc.StudentReport(context.Background(), model.ReportScope{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalStudents)
	assert.Equal(t, 1, report.ByGender["female"])
	assert.Equal(t, 2, report.TotalEnrollments)
	assert.InDelta(t, 50.0, report.ActiveEnrollment.Percentage, 1e-9)
}

func TestReportServiceRecomputesEveryCall(t *testing.T) {
	repo := &fakeSnapshotRepo{
		courses: model.CourseSnapshot{
			Courses: []model.Course{course(1, "CS101")},
		},
	}
	svc := NewReportService(repo)

	first, err := svc.CourseReport(context.Background(), model.ReportScope{})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Courses[0].StudentCount)

	repo.courses.Enrollments = append(repo.courses.Enrollments,
		model.Enrollment{StudentID: 1, CourseID: 1, Status: model.EnrollmentActive})

	second, err := svc.CourseReport(context.Background(), model.ReportScope{})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Courses[0].StudentCount)
	assert.Equal(t, 2, repo.calls)
}

func TestReportServicePassesScope(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	svc := NewReportService(repo)

	studentID := uint(7)
	_, err := svc.AttendanceReport(context.Background(), model.ReportScope{StudentID: &studentID})
	require.NoError(t, err)

	require.Len(t, repo.scopes, 1)
	require.NotNil(t, repo.scopes[0].StudentID)
	assert.Equal(t, uint(7), *repo.scopes[0].StudentID)
}

func TestReportServiceFeeReportIgnoresCachedPaid(t *testing.T) {
	repo := &fakeSnapshotRepo{
		fees: model.FeeSnapshot{
			Invoices: []model.FeeInvoice{
				{
					TotalAmount: decimal.NewFromInt(1000),
					PaidAmount:  decimal.NewFromInt(1000),
					Status:      model.InvoicePending,
					Payments:    []model.Payment{{Amount: decimal.NewFromInt(250), Method: "cash"}},
				},
			},
		},
	}
	svc := NewReportService(repo)

	report, err := svc.FeeReport(context.Background(), model.ReportScope{})
	require.NoError(t, err)
	assert.True(t, report.TotalPaid.Equal(decimal.NewFromInt(250)))
	assert.True(t, report.TotalPending.Equal(decimal.NewFromInt(750)))
}

func TestReportServiceWrapsRepositoryError(t *testing.T) {
	cause := errors.New("connection refused")
	svc := NewReportService(&fakeSnapshotRepo{err: cause})

	tests := []struct {
		name string
		call func() error
	}{
		{"students", func() error { _, err := svc.StudentReport(context.Background(), model.ReportScope{}); return err }},
		{"teachers", func() error { _, err := svc.TeacherReport(context.Background(), model.ReportScope{}); return err }},
		{"courses", func() error { _, err := svc.CourseReport(context.Background(), model.ReportScope{}); return err }},
		{"attendance", func() error { _, err := svc.AttendanceReport(context.Background(), model.ReportScope{}); return err }},
		{"fees", func() error { _, err := svc.FeeReport(context.Background(), model.ReportScope{}); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, cause)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}
