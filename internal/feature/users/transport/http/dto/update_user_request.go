package dto

import "user_backend/internal/feature/users/domain/entity"

// UpdateUserReq represents the request body for PUT /users/:userId.
// Username and email are immutable after creation and have no place here.
type UpdateUserReq struct {
	Password  string       `json:"password" binding:"omitempty,min=8"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Dob       *entity.Date `json:"dob"`
}
