package models

// ===== AUTH DTOs =====

type SignupRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6,max=72"`
	Role     UserRole `json:"role" validate:"omitempty,oneof=admin teacher student"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	Role        UserRole `json:"role"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}

// ===== FEE DTOs =====

type FeeCreateRequest struct {
	StudentID   uint    `json:"student_id" validate:"required"`
	Semester    int     `json:"semester" validate:"required,min=1,max=12"`
	TotalFee    float64 `json:"total_fee" validate:"required,gt=0"`
	PaidAmount  float64 `json:"paid_amount" validate:"min=0"`
	PaymentDate *string `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
}

// FeePaymentRequest records an additional payment against an existing fee
// record; amounts are deltas, status and due are always re-derived.
type FeePaymentRequest struct {
	PaidAmount float64 `json:"paid_amount" validate:"required,gt=0"`
}

// ===== CLEARANCE DTOs =====

type ClearanceUpsertRequest struct {
	StudentID           uint `json:"student_id" validate:"required"`
	LibraryClearance    bool `json:"library_clearance"`
	FinanceClearance    bool `json:"finance_clearance"`
	HostelClearance     bool `json:"hostel_clearance"`
	DepartmentClearance bool `json:"department_clearance"`
}

// ClearanceResponse carries the derived is_cleared flag alongside the stored
// row.
type ClearanceResponse struct {
	ID                  uint `json:"id"`
	StudentID           uint `json:"student_id"`
	LibraryClearance    bool `json:"library_clearance"`
	FinanceClearance    bool `json:"finance_clearance"`
	HostelClearance     bool `json:"hostel_clearance"`
	DepartmentClearance bool `json:"department_clearance"`
	IsCleared           bool `json:"is_cleared"`
}

func NewClearanceResponse(c *Clearance) *ClearanceResponse {
	return &ClearanceResponse{
		ID:                  c.ID,
		StudentID:           c.StudentID,
		LibraryClearance:    c.LibraryClearance,
		FinanceClearance:    c.FinanceClearance,
		HostelClearance:     c.HostelClearance,
		DepartmentClearance: c.DepartmentClearance,
		IsCleared:           c.IsCleared(),
	}
}

// ===== ANNOUNCEMENT DTOs =====

type AnnouncementCreateRequest struct {
	Title    string               `json:"title" validate:"required,min=1,max=200"`
	Content  string               `json:"content" validate:"required"`
	Priority AnnouncementPriority `json:"priority" validate:"omitempty,oneof=normal high urgent"`
}

// ===== TEACHER LISTING =====

// TeacherSummary is aggregated from subjects; teachers have no table of
// their own.
type TeacherSummary struct {
	Name         string   `json:"name"`
	Subjects     []string `json:"subjects"`
	Departments  []uint   `json:"departments"`
	SubjectCount int      `json:"subject_count"`
}
