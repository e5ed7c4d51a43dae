package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// swagger:model Department
type Department struct {
	BaseModel
	Name string `gorm:"size:100;unique;not null" json:"name"`
}

func (Department) TableName() string {
	return "departments"
}
