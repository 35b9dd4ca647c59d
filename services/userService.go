package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"context"
	"fmt"
)

// UserService covers the Administrator-only user management surface.
type UserService struct {
	users *repositories.UserRepository
	audit *AuditService
}

func NewUserService(users *repositories.UserRepository, audit *AuditService) *UserService {
	return &UserService{users: users, audit: audit}
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UserUpdateRequest carries the admin-editable fields. Password changes
// go through the auth endpoints instead.
type UserUpdateRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (s *UserService) Update(ctx context.Context, actor string, id int64, req UserUpdateRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	previous := *user
	user.FullName = req.FullName
	user.Email = req.Email
	if req.Role != "" && req.Role != user.Role.Name {
		role, err := s.users.GetRoleByName(ctx, req.Role)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, &ValidationError{Message: fmt.Sprintf("unknown role %q", req.Role)}
		}
		user.RoleID = role.ID
		user.Role = *role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, models.AuditUpdate, "User", id, &previous, user)
	return user, nil
}

func (s *UserService) SetActive(ctx context.Context, actor string, id int64, active bool) error {
	updated, err := s.users.SetActive(ctx, id, active)
	if err != nil {
		return err
	}
	if !updated {
		return ErrUserNotFound
	}
	action := "Deactivate"
	if active {
		action = "Activate"
	}
	s.audit.Record(ctx, actor, action, "User", id, nil, nil)
	return nil
}

func (s *UserService) Delete(ctx context.Context, actor string, id int64) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	s.audit.Record(ctx, actor, models.AuditDelete, "User", id, nil, nil)
	return nil
}
