package services

import (
	"context"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type UserService interface {
	// Register hashes the password and stores a new user. Duplicate emails are accepted.
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	// FindByEmail returns (nil, nil) when nobody has that email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, userID uint) (*models.User, error)
	// Login checks credentials and issues an API token.
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GenerateJWT(user *models.User) (string, error)
}
