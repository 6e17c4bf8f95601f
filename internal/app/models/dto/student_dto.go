package dto

// CreateStudentRequest represents student record creation data
type CreateStudentRequest struct {
	UserID     *int64 `json:"userId,omitempty"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone,omitempty"`
	Course     string `json:"course,omitempty"`
	Semester   *int   `json:"semester,omitempty" binding:"omitempty,min=1,max=12"`
	RollNumber string `json:"rollNumber" binding:"required"`
}

// UpdateStudentRequest represents a partial student record update
type UpdateStudentRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Course   *string `json:"course,omitempty"`
	Semester *int    `json:"semester,omitempty" binding:"omitempty,min=1,max=12"`
}
