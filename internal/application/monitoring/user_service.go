package monitoring

import (
	"context"
	"errors"

	"github.com/roadwatch/backend/internal/domain/monitoring"
	"github.com/roadwatch/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Default credentials seeded on an empty installation.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "password"
)

// UserService handles dashboard account operations
type UserService struct {
	userRepo monitoring.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo monitoring.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create registers a new user. The username must be unique and the
// password is hashed before the account is stored.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	hash, err := monitoring.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := monitoring.UserRole(req.Role)
	if req.Role == "" {
		role = monitoring.UserRoleViewer
	}

	user, err := monitoring.NewUser(req.Username, hash, req.FullName, req.Email, role)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	return ToUserResponse(user), nil
}

// GetByID retrieves a single user
func (s *UserService) GetByID(ctx context.Context, id int64) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List returns every user
func (s *UserService) List(ctx context.Context) ([]*UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToUserResponses(users), nil
}

// EnsureDefaultAdmin seeds the built-in admin account when no user with
// that name exists yet. Existing accounts are never modified.
func (s *UserService) EnsureDefaultAdmin(ctx context.Context) error {
	existing, err := s.userRepo.FindByUsername(ctx, defaultAdminUsername)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := monitoring.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin, err := monitoring.NewUser(defaultAdminUsername, hash, "System Administrator", "admin@localhost", monitoring.UserRoleAdmin)
	if err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("default admin account created", zap.Int64("user_id", admin.ID))
	return nil
}
