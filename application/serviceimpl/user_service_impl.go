package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	hasher    ports.PasswordHasher
	jwtSecret string
	jwtExpiry time.Duration
}

func NewUserService(userRepo repositories.UserRepository, hasher ports.PasswordHasher, jwtSecret string, jwtExpiry time.Duration) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		hasher:    hasher,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if len(req.Password) > ports.MaxPasswordBytes {
		logger.WarnContext(ctx, "Registration rejected - password too long", "email", req.Email)
		return nil, services.ErrPasswordTooLong
	}

	hashedPassword, err := s.hasher.Make(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	return user, nil
}

func (s *UserServiceImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to look up user by email", "error", err)
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	if user == nil {
		return nil, services.ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, err
	}

	if user == nil {
		logger.WarnContext(ctx, "Login failed - email not found", "email", req.Email)
		return "", nil, services.ErrInvalidCredentials
	}

	if !s.hasher.Check(user.Password, req.Password) {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, services.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "API token issued", "user_id", user.ID)

	return token, user, nil
}

func (s *UserServiceImpl) GenerateJWT(user *models.User) (string, error) {
	return utils.GenerateToken(utils.UserContext{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, s.jwtSecret, s.jwtExpiry)
}
