package services

import (
	"RadiologyCenter/models"
	"RadiologyCenter/repositories"
	"RadiologyCenter/utils"
	"context"
	"fmt"
	"strings"
)

// LoginResult carries what a successful login returns to the client.
type LoginResult struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type AuthService struct {
	users *repositories.UserRepository
	audit *AuditService
}

func NewAuthService(users *repositories.UserRepository, audit *AuditService) *AuthService {
	return &AuthService{users: users, audit: audit}
}

// Register creates a new, inactive user. Usernames are normalized to
// lower-case before the uniqueness check so "Admin" and "admin" collide.
func (s *AuthService) Register(ctx context.Context, actor string, req utils.RegisterRequest) (*models.User, error) {
	if err := utils.ValidateRegisterRequest(req); err != nil {
		return nil, &AuthError{Message: err.Error()}
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))

	exists, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &AuthError{Message: "username already taken"}
	}

	role, err := s.users.GetRoleByName(ctx, req.Role)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, &AuthError{Message: fmt.Sprintf("unknown role %q", req.Role)}
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashed,
		RoleID:   role.ID,
		IsActive: false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	user.Role = *role
	s.audit.Record(ctx, actor, models.AuditCreate, "User", user.ID, nil, user)
	return user, nil
}

// Login verifies credentials and the IsActive gate, then issues a
// bearer token. Every rejection uses the same message so callers cannot
// probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(user.Password, password) {
		return nil, &AuthError{Message: "invalid username or password"}
	}
	if !user.IsActive {
		return nil, &AuthError{Message: "account is not active"}
	}

	token, err := utils.GenerateAccessToken(fmt.Sprintf("%d", user.ID), user.Username, user.Role.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &LoginResult{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role.Name,
	}, nil
}

// ChangePassword re-checks the current password, validates the new one
// against the strength rules and stores a fresh hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !utils.CheckPassword(user.Password, currentPassword) {
		return &AuthError{Message: "current password is incorrect"}
	}
	if err := utils.ValidatePasswordChange(newPassword); err != nil {
		return &AuthError{Message: err.Error()}
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}
	s.audit.Record(ctx, user.Username, models.AuditUpdate, "User", userID, nil, nil)
	return nil
}

// SendResetCode emails a short-lived reset code. A request for an
// unknown email succeeds silently.
func (s *AuthService) SendResetCode(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, email, code); err != nil {
		return err
	}
	return utils.SendResetCodeEmail(email, code)
}

// ResetPassword consumes a previously emailed code and sets a new
// password for the matching account.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	stored, err := utils.GetResetCode(ctx, email)
	if err != nil {
		return err
	}
	if stored == nil || *stored != code {
		return &AuthError{Message: "invalid or expired reset code"}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return &AuthError{Message: "invalid or expired reset code"}
	}
	if err := utils.ValidatePasswordChange(newPassword); err != nil {
		return &AuthError{Message: err.Error()}
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}
	if err := utils.DeleteResetCode(ctx, email); err != nil {
		return err
	}
	s.audit.Record(ctx, user.Username, models.AuditUpdate, "User", user.ID, nil, nil)
	return nil
}
