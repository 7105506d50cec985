// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import "user_backend/internal/feature/users/domain/entity"

// CreateUserReq represents the request body for POST /users.
// It uses Gin's binding tags for validation; firstName, lastName and dob are
// pass-through fields with no constraints.
type CreateUserReq struct {
	Username  string       `json:"username" binding:"min=3"`
	Email     string       `json:"email" binding:"email"`
	Password  string       `json:"password" binding:"min=8"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Dob       *entity.Date `json:"dob"`
}
