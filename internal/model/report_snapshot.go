package model

// ReportScope 报表可见范围，由授权层在构建快照前解析
type ReportScope struct {
	DepartmentID *uint
	StudentID    *uint
}

// StudentSnapshot 学生报表输入
type StudentSnapshot struct {
	Students    []StudentProfile
	Enrollments []Enrollment
}

// TeacherSnapshot 教师报表输入（需预加载 Courses）
type TeacherSnapshot struct {
	Teachers []TeacherProfile
}

// CourseSnapshot 课程报表输入
type CourseSnapshot struct {
	Courses     []Course
	Enrollments []Enrollment
}

// AttendanceSnapshot 考勤报表输入（需预加载 Entries）
type AttendanceSnapshot struct {
	Courses []Course
	Records []AttendanceRecord
}

// FeeSnapshot 费用报表输入（需预加载 Payments）
type FeeSnapshot struct {
	Invoices []FeeInvoice
}
