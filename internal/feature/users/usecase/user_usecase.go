// Package usecase implements the business logic for the users feature.
package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"user_backend/internal/feature/users/domain"
	"user_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type UserRepository interface {
	// ExistsByUsername reports whether any stored user has the exact username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns domain.ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindAll retrieves every stored user in storage-defined order.
	FindAll(ctx context.Context) ([]entity.User, error)

	// Save inserts the user when its ID is not yet stored, otherwise
	// overwrites the record with the same ID.
	Save(ctx context.Context, user *entity.User) error

	// DeleteByID removes the record. Deleting an absent ID is not an error.
	DeleteByID(ctx context.Context, id string) error
}

// CreateUserInput carries the fields accepted when creating a user.
// Shape validation happens in the transport layer before this runs.
type CreateUserInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth *entity.Date
}

// UpdateUserInput carries the fields accepted when updating a user.
// Username and email are immutable and deliberately absent.
type UpdateUserInput struct {
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth *entity.Date
}

// userUsecase implements the user management business logic.
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// CreateUser registers a new user after checking username uniqueness.
// The existence check and the insert are not atomic; two concurrent creations
// with the same username can race, and the store's unique index is the
// backstop.
func (u *userUsecase) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	taken, err := u.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	user := &entity.User{
		ID:          uuid.NewString(),
		Username:    in.Username,
		Email:       in.Email,
		Password:    in.Password,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
	}
	if err := u.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// ListUsers returns every stored user, unfiltered and unpaginated.
func (u *userUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// GetUser retrieves a single user by ID.
func (u *userUsecase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// UpdateUser overwrites the mutable fields of an existing user.
// Password, first name, last name and date of birth are replaced with the
// request values unconditionally; username and email are left untouched.
func (u *userUsecase) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Password = in.Password
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.DateOfBirth = in.DateOfBirth

	if err := u.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user by ID. There is no prior existence check, so
// deleting an unknown ID succeeds; callers report the same confirmation
// either way.
func (u *userUsecase) DeleteUser(ctx context.Context, id string) error {
	return u.users.DeleteByID(ctx, id)
}
