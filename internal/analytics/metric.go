// Package analytics 报表聚合核心：输入已授权的快照，输出不可变的统计结果。
// 所有函数均为纯函数，对空输入返回零值统计而非错误。
package analytics

import "institute_backend/internal/model"

// Percentage 计算 num/den*100，分母为 0 时返回 0
func Percentage(num, den float64) model.PercentageMetric {
	m := model.PercentageMetric{Numerator: num, Denominator: den}
	if den != 0 {
		m.Percentage = num / den * 100
	}
	return m
}

func countPercentage(num, den int) model.PercentageMetric {
	return Percentage(float64(num), float64(den))
}

func addEnrollment(b *model.EnrollmentBreakdown, status model.EnrollmentStatus) bool {
	switch status {
	case model.EnrollmentActive:
		b.Active++
	case model.EnrollmentCompleted:
		b.Completed++
	case model.EnrollmentDropped:
		b.Dropped++
	default:
		return false
	}
	return true
}

func addAttendance(b *model.AttendanceBreakdown, status model.AttendanceStatus) bool {
	switch status {
	case model.AttendancePresent:
		b.Present++
	case model.AttendanceAbsent:
		b.Absent++
	case model.AttendanceLate:
		b.Late++
	case model.AttendanceExcused:
		b.Excused++
	default:
		return false
	}
	return true
}
