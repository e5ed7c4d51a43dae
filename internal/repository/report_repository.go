package repository

import (
	"context"

	"institute_backend/internal/model"

	"gorm.io/gorm"
)

// ReportRepository 为报表构建只读快照，每个领域一次性加载所需数据，
// 避免在课程/记录循环中逐条查询
type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func scopedStudents(db *gorm.DB, scope model.ReportScope) *gorm.DB {
	q := db.Model(&model.StudentProfile{})
	if scope.DepartmentID != nil {
		q = q.Where("department_id = ?", *scope.DepartmentID)
	}
	if scope.StudentID != nil {
		q = q.Where("id = ?", *scope.StudentID)
	}
	return q
}

func scopedCourses(db *gorm.DB, scope model.ReportScope) *gorm.DB {
	q := db.Model(&model.Course{})
	if scope.DepartmentID != nil {
		q = q.Where("department_id = ?", *scope.DepartmentID)
	}
	return q
}

func (r *ReportRepository) StudentSnapshot(ctx context.Context, scope model.ReportScope) (*model.StudentSnapshot, error) {
	db := r.DB.WithContext(ctx)
	snap := &model.StudentSnapshot{}

	if err := scopedStudents(db, scope).Find(&snap.Students).Error; err != nil {
		return nil, err
	}

	ids := scopedStudents(db, scope).Select("id")
	if err := db.Where("student_id IN (?)", ids).Find(&snap.Enrollments).Error; err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *ReportRepository) TeacherSnapshot(ctx context.Context, scope model.ReportScope) (*model.TeacherSnapshot, error) {
	db := r.DB.WithContext(ctx)
	snap := &model.TeacherSnapshot{}

	q := db.Model(&model.TeacherProfile{}).Preload("Courses").Order("name ASC")
	if scope.DepartmentID != nil {
		q = q.Where("department_id = ?", *scope.DepartmentID)
	}
	if err := q.Find(&snap.Teachers).Error; err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *ReportRepository) CourseSnapshot(ctx context.Context, scope model.ReportScope) (*model.CourseSnapshot, error) {
	db := r.DB.WithContext(ctx)
	snap := &model.CourseSnapshot{}

	if err := scopedCourses(db, scope).Order("name ASC").Find(&snap.Courses).Error; err != nil {
		return nil, err
	}

	q := db.Where("course_id IN (?)", scopedCourses(db, scope).Select("id"))
	if scope.StudentID != nil {
		q = q.Where("student_id = ?", *scope.StudentID)
	}
	if err := q.Find(&snap.Enrollments).Error; err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *ReportRepository) AttendanceSnapshot(ctx context.Context, scope model.ReportScope) (*model.AttendanceSnapshot, error) {
	db := r.DB.WithContext(ctx)
	snap := &model.AttendanceSnapshot{}

	if err := scopedCourses(db, scope).Order("name ASC").Find(&snap.Courses).Error; err != nil {
		return nil, err
	}

	q := db.Where("course_id IN (?)", scopedCourses(db, scope).Select("id"))
	if scope.StudentID != nil {
		studentID := *scope.StudentID
		// 只保留包含该学生明细的考勤记录，且只加载该学生的明细
		q = q.Where("id IN (?)", db.Model(&model.StudentAttendance{}).
			Select("attendance_record_id").
			Where("student_id = ?", studentID)).
			Preload("Entries", "student_id = ?", studentID)
	} else {
		q = q.Preload("Entries")
	}

	if err := q.Order("date ASC").Find(&snap.Records).Error; err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *ReportRepository) FeeSnapshot(ctx context.Context, scope model.ReportScope) (*model.FeeSnapshot, error) {
	db := r.DB.WithContext(ctx)
	snap := &model.FeeSnapshot{}

	q := db.Preload("Payments")
	if scope.DepartmentID != nil || scope.StudentID != nil {
		q = q.Where("student_id IN (?)", scopedStudents(db, scope).Select("id"))
	}
	if err := q.Find(&snap.Invoices).Error; err != nil {
		return nil, err
	}
	return snap, nil
}
