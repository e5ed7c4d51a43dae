package model

import "time"

// swagger:model StudentProfile
type StudentProfile struct {
	BaseModel
	StudentCode  string     `gorm:"size:20;unique;not null" json:"studentCode"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"size:100" json:"email"`
	Gender       Gender     `gorm:"type:enum('male','female','other');default:'other'" json:"gender"`
	DepartmentID *uint      `gorm:"index" json:"departmentId"`
	Department   Department `gorm:"foreignKey:DepartmentID" json:"-"`
	JoinedAt     time.Time  `json:"joinedAt"`
}

func (StudentProfile) TableName() string {
	return "students"
}

// swagger:model TeacherProfile
type TeacherProfile struct {
	BaseModel
	TeacherCode   string     `gorm:"size:20;unique;not null" json:"teacherCode"`
	Name          string     `gorm:"size:100;not null" json:"name"`
	Email         string     `gorm:"size:100" json:"email"`
	Gender        Gender     `gorm:"type:enum('male','female','other');default:'other'" json:"gender"`
	DepartmentID  *uint      `gorm:"index" json:"departmentId"`
	Department    Department `gorm:"foreignKey:DepartmentID" json:"-"`
	Qualification string     `gorm:"size:100" json:"qualification"`
	Experience    int        `gorm:"default:0" json:"experience"` // 教龄（年）
	JoinedAt      time.Time  `json:"joinedAt"`
	Courses       []Course   `gorm:"many2many:course_teachers;joinForeignKey:TeacherID;joinReferences:CourseID" json:"-"`
}

func (TeacherProfile) TableName() string {
	return "teachers"
}

// CourseIDs 返回已分配课程的ID
func (t TeacherProfile) CourseIDs() []uint {
	ids := make([]uint, 0, len(t.Courses))
	for _, c := range t.Courses {
		ids = append(ids, c.ID)
	}
	return ids
}
