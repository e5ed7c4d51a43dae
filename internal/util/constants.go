package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	ReportStudents   = "students"
	ReportTeachers   = "teachers"
	ReportCourses    = "courses"
	ReportAttendance = "attendance"
	ReportFees       = "fees"
)

// RequestIDKey gin.Context 中请求ID的键
const RequestIDKey = "request_id"
