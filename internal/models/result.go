package models

// Result is immutable once created; there is no update path, corrections are
// issued as new rows.
type Result struct {
	ID             uint `json:"id" gorm:"primaryKey"`
	StudentID      uint `json:"student_id" gorm:"not null;index" validate:"required"`
	SubjectID      uint `json:"subject_id" gorm:"not null;index" validate:"required"`
	MidtermMarks   int  `json:"midterm_marks" validate:"min=0"`
	FinalMarks     int  `json:"final_marks" validate:"min=0"`
	SessionalMarks int  `json:"sessional_marks" validate:"min=0"`
	TotalMarks     int  `json:"total_marks"`

	Student Student `json:"-" gorm:"foreignKey:StudentID"`
	Subject Subject `json:"-" gorm:"foreignKey:SubjectID"`
}

func (Result) TableName() string {
	return "results"
}
