package model

import "time"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// swagger:model AttendanceRecord
type AttendanceRecord struct {
	BaseModel
	CourseID uint                `gorm:"index;not null" json:"courseId"`
	Date     time.Time           `gorm:"type:date;index" json:"date"`
	Entries  []StudentAttendance `gorm:"foreignKey:AttendanceRecordID" json:"entries"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// swagger:model StudentAttendance
type StudentAttendance struct {
	BaseModel
	AttendanceRecordID uint             `gorm:"index;not null" json:"attendanceRecordId"`
	StudentID          uint             `gorm:"index;not null" json:"studentId"`
	Status             AttendanceStatus `gorm:"type:enum('present','absent','late','excused');default:'present'" json:"status"`
}

func (StudentAttendance) TableName() string {
	return "student_attendances"
}
