package models

type Department struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,min=1,max=200"`
	HOD  string `json:"hod" gorm:"size:100" validate:"omitempty,max=100"`

	// Relations
	Students []Student `json:"-" gorm:"foreignKey:DepartmentID"`
	Subjects []Subject `json:"-" gorm:"foreignKey:DepartmentID"`
}

func (Department) TableName() string {
	return "departments"
}

type Student struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null;size:100;index" validate:"required,min=1,max=100"`
	Age          int    `json:"age" validate:"omitempty,min=1,max=150"`
	Semester     int    `json:"semester" validate:"required,min=1,max=12"`
	DepartmentID uint   `json:"department_id" gorm:"index" validate:"required"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email"`
	RollNo       string `json:"roll_no" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`

	Department Department `json:"-" gorm:"foreignKey:DepartmentID"`
}

func (Student) TableName() string {
	return "students"
}

type Subject struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Semester     int    `json:"semester" gorm:"index" validate:"required,min=1,max=12"`
	Teacher      string `json:"teacher" gorm:"size:100" validate:"omitempty,max=100"`
	DepartmentID uint   `json:"department_id" gorm:"index" validate:"required"`

	Department Department `json:"-" gorm:"foreignKey:DepartmentID"`
}

func (Subject) TableName() string {
	return "subjects"
}
