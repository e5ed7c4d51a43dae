package repository

import (
	"testing"

	"institute_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB 只生成 SQL，不连接数据库
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "test:test@tcp(127.0.0.1:3306)/institute?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

func uintPtr(v uint) *uint { return &v }

func TestScopedStudents(t *testing.T) {
	db := dryRunDB(t)

	tests := []struct {
		name     string
		scope    model.ReportScope
		contains []string
		excludes []string
	}{
		{
			name:     "whole institute",
			scope:    model.ReportScope{},
			contains: []string{"FROM `students`"},
			excludes: []string{"department_id", "id = "},
		},
		{
			name:     "department",
			scope:    model.ReportScope{DepartmentID: uintPtr(3)},
			contains: []string{"department_id = 3"},
		},
		{
			name:     "single student",
			scope:    model.ReportScope{DepartmentID: uintPtr(3), StudentID: uintPtr(7)},
			contains: []string{"department_id = 3", "id = 7"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				return scopedStudents(tx, tt.scope).Find(&[]model.StudentProfile{})
			})
			for _, s := range tt.contains {
				assert.Contains(t, sql, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, sql, s)
			}
		})
	}
}

func TestScopedCoursesIgnoresStudent(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		scope := model.ReportScope{DepartmentID: uintPtr(2), StudentID: uintPtr(9)}
		return scopedCourses(tx, scope).Find(&[]model.Course{})
	})
	assert.Contains(t, sql, "FROM `courses`")
	assert.Contains(t, sql, "department_id = 2")
	assert.NotContains(t, sql, "9")
}

func TestEnrollmentSubqueryByStudentScope(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		ids := scopedStudents(tx, model.ReportScope{DepartmentID: uintPtr(4)}).Select("id")
		return tx.Where("student_id IN (?)", ids).Find(&[]model.Enrollment{})
	})
	assert.Contains(t, sql, "FROM `enrollments`")
	assert.Contains(t, sql, "student_id IN (SELECT id FROM `students`")
	assert.Contains(t, sql, "department_id = 4")
}
