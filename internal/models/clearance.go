package models

type Clearance struct {
	ID                  uint `json:"id" gorm:"primaryKey"`
	StudentID           uint `json:"student_id" gorm:"uniqueIndex;not null" validate:"required"`
	LibraryClearance    bool `json:"library_clearance" gorm:"not null;default:false"`
	FinanceClearance    bool `json:"finance_clearance" gorm:"not null;default:false"`
	HostelClearance     bool `json:"hostel_clearance" gorm:"not null;default:false"`
	DepartmentClearance bool `json:"department_clearance" gorm:"not null;default:false"`

	Student Student `json:"-" gorm:"foreignKey:StudentID"`
}

func (Clearance) TableName() string {
	return "clearances"
}

// IsCleared is recomputed on every read, never stored.
func (c *Clearance) IsCleared() bool {
	return c.LibraryClearance && c.FinanceClearance && c.HostelClearance && c.DepartmentClearance
}
