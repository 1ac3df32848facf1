package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "madrasa/internal/errors"
	"madrasa/internal/model"
	"madrasa/internal/repository"
)

// UserUpdate carries the optional fields of an account update. Nil fields
// are left untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	Role     *string
	IsActive *bool
	Password *string
}

// UserService handles admin-side account management. All methods operate
// across tenants and must only be reachable behind the admin role check.
type UserService interface {
	ListUsers(ctx context.Context, callerID uint) ([]model.User, error)
	CreateUser(ctx context.Context, username, email, password, role string) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, update UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, callerID, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers returns every account except the caller's own.
func (s *userService) ListUsers(ctx context.Context, callerID uint) ([]model.User, error) {
	return s.userRepo.ListExcept(ctx, callerID)
}

// CreateUser creates an account with an explicit role.
func (s *userService) CreateUser(ctx context.Context, username, email, password, role string) (*model.User, error) {
	taken, err := s.userRepo.UsernameTaken(ctx, username, 0)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsActive:     true,
		Language:     "ar",
		Timezone:     "Asia/Riyadh",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// UpdateUser applies a partial account update. A username change checks for
// conflicts excluding the updated record itself.
func (s *userService) UpdateUser(ctx context.Context, id uint, update UserUpdate) (*model.User, error) {
	fields := map[string]interface{}{}

	if update.Username != nil {
		taken, err := s.userRepo.UsernameTaken(ctx, *update.Username, id)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if taken {
			return nil, apperrors.ErrUsernameTaken
		}
		fields["username"] = *update.Username
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Role != nil {
		fields["role"] = *update.Role
	}
	if update.IsActive != nil {
		fields["is_active"] = *update.IsActive
	}
	if update.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["password_hash"] = string(hashedPassword)
	}

	if len(fields) > 0 {
		rows, err := s.userRepo.Update(ctx, id, fields)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		if rows == 0 {
			return nil, apperrors.ErrNotFound
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// DeleteUser removes an account. Admins cannot delete themselves; the guard
// runs before any store operation.
func (s *userService) DeleteUser(ctx context.Context, callerID, id uint) error {
	if id == callerID {
		return apperrors.ErrSelfDelete
	}

	rows, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
