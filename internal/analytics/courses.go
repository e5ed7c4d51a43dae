package analytics

import "institute_backend/internal/model"

// AggregateCourses 每门课程的选课人数及状态分布，单次遍历选课记录
func AggregateCourses(snap model.CourseSnapshot) model.CourseReport {
	byCourse := make(map[uint]*model.EnrollmentBreakdown, len(snap.Courses))
	for _, c := range snap.Courses {
		byCourse[c.ID] = &model.EnrollmentBreakdown{}
	}

	for _, e := range snap.Enrollments {
		b, ok := byCourse[e.CourseID]
		if !ok {
			continue
		}
		addEnrollment(b, e.Status)
	}

	report := model.CourseReport{
		TotalCourses: len(snap.Courses),
		Courses:      make([]model.CourseEnrollmentStats, 0, len(snap.Courses)),
	}
	for _, c := range snap.Courses {
		b := *byCourse[c.ID]
		report.Courses = append(report.Courses, model.CourseEnrollmentStats{
			CourseID: c.ID,
			Code:     c.Code,
			Name:     c.Name,
			// 未知状态不计入人数，保证 active+completed+dropped == StudentCount
			StudentCount: b.Total(),
			Breakdown:    b,
		})
	}
	return report
}
