package analytics

import (
	"sort"

	"institute_backend/internal/model"
)

const topTeachersLimit = 5

// AggregateStudents 学生总数、性别分布及全体选课状态统计
func AggregateStudents(snap model.StudentSnapshot) model.StudentReport {
	report := model.StudentReport{
		TotalStudents:    len(snap.Students),
		ByGender:         model.GroupedCount{},
		TotalEnrollments: len(snap.Enrollments),
	}

	for _, s := range snap.Students {
		report.ByGender[string(s.Gender)]++
	}

	for _, e := range snap.Enrollments {
		addEnrollment(&report.Enrollments, e.Status)
	}

	report.ActiveEnrollment = countPercentage(report.Enrollments.Active, report.TotalEnrollments)
	return report
}

// AggregateTeachers 教师总数、性别分布、平均教龄及每位教师的课程数
func AggregateTeachers(snap model.TeacherSnapshot) model.TeacherReport {
	report := model.TeacherReport{
		TotalTeachers: len(snap.Teachers),
		ByGender:      model.GroupedCount{},
		Teachers:      make([]model.TeacherCourseLoad, 0, len(snap.Teachers)),
	}

	totalExperience := 0
	for _, t := range snap.Teachers {
		report.ByGender[string(t.Gender)]++
		totalExperience += t.Experience
		report.Teachers = append(report.Teachers, model.TeacherCourseLoad{
			TeacherID:   t.ID,
			Name:        t.Name,
			Gender:      t.Gender,
			Experience:  t.Experience,
			CourseCount: len(t.Courses),
		})
	}

	if report.TotalTeachers > 0 {
		report.AvgExperience = float64(totalExperience) / float64(report.TotalTeachers)
	}

	report.TopByCourseLoad = topByCourseLoad(report.Teachers, topTeachersLimit)
	return report
}

func topByCourseLoad(loads []model.TeacherCourseLoad, limit int) []model.TeacherCourseLoad {
	sorted := make([]model.TeacherCourseLoad, len(loads))
	copy(sorted, loads)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CourseCount != sorted[j].CourseCount {
			return sorted[i].CourseCount > sorted[j].CourseCount
		}
		return sorted[i].Name < sorted[j].Name
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
