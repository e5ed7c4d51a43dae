package model

import "github.com/shopspring/decimal"

// GroupedCount 分类计数，键的顺序无意义
type GroupedCount map[string]int

// PercentageMetric 分子/分母及百分比，分母为 0 时百分比为 0
type PercentageMetric struct {
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	Percentage  float64 `json:"percentage"`
}

// EnrollmentBreakdown 选课状态统计
type EnrollmentBreakdown struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Dropped   int `json:"dropped"`
}

// Total 三种状态之和
func (b EnrollmentBreakdown) Total() int {
	return b.Active + b.Completed + b.Dropped
}

// AttendanceBreakdown 考勤状态统计
type AttendanceBreakdown struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Excused int `json:"excused"`
}

// Total 四种状态之和
func (b AttendanceBreakdown) Total() int {
	return b.Present + b.Absent + b.Late + b.Excused
}

// StudentReport 学生报表
type StudentReport struct {
	TotalStudents    int                 `json:"totalStudents"`
	ByGender         GroupedCount        `json:"byGender"`
	TotalEnrollments int                 `json:"totalEnrollments"`
	Enrollments      EnrollmentBreakdown `json:"enrollments"`
	ActiveEnrollment PercentageMetric    `json:"activeEnrollment"`
}

// TeacherCourseLoad 单个教师的课程负载
type TeacherCourseLoad struct {
	TeacherID   uint   `json:"teacherId"`
	Name        string `json:"name"`
	Gender      Gender `json:"gender"`
	Experience  int    `json:"experience"`
	CourseCount int    `json:"courseCount"`
}

// TeacherReport 教师报表
type TeacherReport struct {
	TotalTeachers   int                 `json:"totalTeachers"`
	ByGender        GroupedCount        `json:"byGender"`
	AvgExperience   float64             `json:"avgExperience"`
	Teachers        []TeacherCourseLoad `json:"teachers"`
	TopByCourseLoad []TeacherCourseLoad `json:"topByCourseLoad"`
}

// CourseEnrollmentStats 单门课程的选课统计
type CourseEnrollmentStats struct {
	CourseID     uint                `json:"courseId"`
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	StudentCount int                 `json:"studentCount"`
	Breakdown    EnrollmentBreakdown `json:"breakdown"`
}

// CourseReport 课程报表
type CourseReport struct {
	TotalCourses int                     `json:"totalCourses"`
	Courses      []CourseEnrollmentStats `json:"courses"`
}

// CourseAttendanceStats 单门课程的考勤统计
type CourseAttendanceStats struct {
	CourseID  uint                `json:"courseId"`
	Code      string              `json:"code"`
	Name      string              `json:"name"`
	Breakdown AttendanceBreakdown `json:"breakdown"`
	Total     int                 `json:"total"`
	Present   PercentageMetric    `json:"present"`
}

// AttendanceReport 考勤报表
type AttendanceReport struct {
	TotalRecords int                     `json:"totalRecords"`
	TotalEntries int                     `json:"totalEntries"`
	ByStatus     AttendanceBreakdown     `json:"byStatus"`
	Present      PercentageMetric        `json:"present"`
	Courses      []CourseAttendanceStats `json:"courses"`
}

// PaymentMethodStats 按支付方式汇总
type PaymentMethodStats struct {
	Method string          `json:"method"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// FeeReport 费用报表
type FeeReport struct {
	TotalInvoices    int                  `json:"totalInvoices"`
	TotalInvoiced    decimal.Decimal      `json:"totalInvoiced"`
	TotalPaid        decimal.Decimal      `json:"totalPaid"`
	TotalPending     decimal.Decimal      `json:"totalPending"`
	PaidShare        PercentageMetric     `json:"paidShare"`
	InvoicesByStatus GroupedCount         `json:"invoicesByStatus"`
	PaymentsByMethod []PaymentMethodStats `json:"paymentsByMethod"`
}

// SkillComparison 简历与岗位技能对比结果
type SkillComparison struct {
	ResumeSkills  []string `json:"resumeSkills"`
	JobSkills     []string `json:"jobSkills"`
	MissingSkills []string `json:"missingSkills"`
	Score         float64  `json:"atsPercentage"`
}
