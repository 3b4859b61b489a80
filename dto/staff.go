package dto

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,staffrole"`
}

// UpdateStaffRequest only changes the fields that are present
type UpdateStaffRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
	Role  *string `json:"role" binding:"omitempty,staffrole"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
