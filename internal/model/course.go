package model

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// swagger:model Course
type Course struct {
	BaseModel
	Code         string           `gorm:"size:20;unique;not null" json:"code"`
	Name         string           `gorm:"size:200;not null" json:"name"`
	DepartmentID *uint            `gorm:"index" json:"departmentId"`
	Department   Department       `gorm:"foreignKey:DepartmentID" json:"-"`
	Credits      int              `gorm:"default:3" json:"credits"`
	Teachers     []TeacherProfile `gorm:"many2many:course_teachers;joinForeignKey:CourseID;joinReferences:TeacherID" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	StudentID uint             `gorm:"index;not null" json:"studentId"`
	CourseID  uint             `gorm:"index;not null" json:"courseId"`
	Status    EnrollmentStatus `gorm:"type:enum('active','completed','dropped');default:'active'" json:"status"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
