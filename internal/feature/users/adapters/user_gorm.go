// Package adapters provides the repository implementation for the users feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain"
	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// userGorm is the gorm-backed implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm with the given gorm.DB connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// ExistsByUsername reports whether a user with the exact username is stored.
func (r *userGorm) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByID retrieves a user by ID.
// It returns domain.ErrUserNotFound if no record matches.
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindAll retrieves every stored user. The order is whatever the storage
// returns; callers must not rely on it.
func (r *userGorm) FindAll(ctx context.Context) ([]entity.User, error) {
	users := make([]entity.User, 0)
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Save inserts the user when its ID is not yet stored, otherwise overwrites
// the existing record, zero values included.
func (r *userGorm) Save(ctx context.Context, user *entity.User) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&entity.User{}).Where("id = ?", user.ID).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		if err := db.Create(user).Error; err != nil {
			if isDuplicateKey(err) {
				return domain.ErrUsernameTaken
			}
			return err
		}
		return nil
	}

	// Select("*") forces zero values (cleared names, nil date) to persist.
	return db.Model(&entity.User{}).Where("id = ?", user.ID).
		Select("*").Omit("id", "created_at").Updates(user).Error
}

// DeleteByID removes the record with the given ID.
// Deleting an absent ID affects zero rows and returns no error.
func (r *userGorm) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{}).Error
}

// isDuplicateKey recognizes unique-index violations across drivers: gorm's
// translated error where TranslateError is enabled, MySQL error 1062 otherwise.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
