package analytics

import "institute_backend/internal/model"

// AggregateAttendance 全局及按课程的考勤状态统计。
// 没有考勤明细的课程不出现在按课程列表中。
func AggregateAttendance(snap model.AttendanceSnapshot) model.AttendanceReport {
	report := model.AttendanceReport{
		TotalRecords: len(snap.Records),
	}

	byCourse := make(map[uint]*model.AttendanceBreakdown)
	for _, r := range snap.Records {
		for _, entry := range r.Entries {
			b, ok := byCourse[r.CourseID]
			if !ok {
				b = &model.AttendanceBreakdown{}
				byCourse[r.CourseID] = b
			}
			addAttendance(b, entry.Status)
			addAttendance(&report.ByStatus, entry.Status)
		}
	}

	report.TotalEntries = report.ByStatus.Total()
	report.Present = countPercentage(report.ByStatus.Present, report.TotalEntries)

	for _, c := range snap.Courses {
		b, ok := byCourse[c.ID]
		if !ok || b.Total() == 0 {
			continue
		}
		report.Courses = append(report.Courses, model.CourseAttendanceStats{
			CourseID:  c.ID,
			Code:      c.Code,
			Name:      c.Name,
			Breakdown: *b,
			Total:     b.Total(),
			Present:   countPercentage(b.Present, b.Total()),
		})
	}
	return report
}
