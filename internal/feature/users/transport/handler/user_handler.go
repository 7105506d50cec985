// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/feature/users/usecase"
)

// deletedMessage is the fixed confirmation body for DELETE, returned whether
// or not the record existed.
const deletedMessage = "User has been deleted."

// UserUsecase defines the user management operations the handler depends on.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type UserUsecase interface {
	// CreateUser registers a new user and returns the persisted record.
	CreateUser(ctx context.Context, in usecase.CreateUserInput) (*entity.User, error)
	// ListUsers returns every stored user.
	ListUsers(ctx context.Context) ([]entity.User, error)
	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id string) (*entity.User, error)
	// UpdateUser overwrites the mutable fields of an existing user.
	UpdateUser(ctx context.Context, id string, in usecase.UpdateUserInput) (*entity.User, error)
	// DeleteUser removes a user by ID, succeeding even when absent.
	DeleteUser(ctx context.Context, id string) error
}

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new instance of UserHandler.
// Constructor for dependency injection; the usecase is supplied from outside.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /users.
// - Binds and validates the request JSON against CreateUserReq
// - Returns 400 with the field's fixed message on a validation failure
// - Returns 400 with "Username existed." when the username is taken
// - Returns 201 with the created user on success
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.String(http.StatusBadRequest, dto.ValidationMessage(err))
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), usecase.CreateUserInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.Dob,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	slog.Info("user created", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, user)
}

// List handles GET /users and returns every user, unfiltered.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:userId.
// Returns 400 with "User not found." when the ID is unknown.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:userId.
// - Binds and validates the request JSON against UpdateUserReq
// - Returns 400 on validation failure or when the ID is unknown
// - Returns 200 with the updated user on success
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.String(http.StatusBadRequest, dto.ValidationMessage(err))
		return
	}

	user, err := h.users.UpdateUser(c.Request.Context(), c.Param("userId"), usecase.UpdateUserInput{
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.Dob,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	slog.Info("user updated", "user_id", user.ID)
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:userId.
// There is no existence check; the fixed confirmation is returned whether or
// not a record was removed.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("userId")
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("user deleted", "user_id", id)
	c.String(http.StatusOK, deletedMessage)
}
