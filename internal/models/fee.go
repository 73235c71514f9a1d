package models

import (
	"gorm.io/datatypes"
)

type FeeStatus string

const (
	FeeUnpaid  FeeStatus = "unpaid"
	FeePartial FeeStatus = "partial"
	FeePaid    FeeStatus = "paid"
)

type Fee struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	StudentID   uint           `json:"student_id" gorm:"not null;index" validate:"required"`
	Semester    int            `json:"semester" validate:"required,min=1,max=12"`
	TotalFee    float64        `json:"total_fee" gorm:"not null" validate:"required,gt=0"`
	PaidAmount  float64        `json:"paid_amount" gorm:"not null;default:0" validate:"min=0"`
	DueAmount   float64        `json:"due_amount" gorm:"not null"`
	PaymentDate datatypes.Date `json:"payment_date"`
	Status      FeeStatus      `json:"status" gorm:"not null;default:unpaid;size:20;index"`

	Student Student `json:"-" gorm:"foreignKey:StudentID"`
}

func (Fee) TableName() string {
	return "fees"
}

// Recalculate derives due amount and status from total and paid amounts.
// Status and due are never trusted from caller input; every mutation goes
// through here.
func (f *Fee) Recalculate() {
	f.DueAmount = f.TotalFee - f.PaidAmount
	switch {
	case f.DueAmount <= 0:
		f.Status = FeePaid
	case f.PaidAmount > 0:
		f.Status = FeePartial
	default:
		f.Status = FeeUnpaid
	}
}
