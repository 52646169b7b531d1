package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskboard/domain/dto"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

// UserHandler serves /api/v1/auth
type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	logger.InfoContext(ctx, "Registration attempt", "email", req.Email, "username", req.Username)

	user, err := h.userService.Register(ctx, &req)
	if errors.Is(err, services.ErrPasswordTooLong) {
		return utils.BadRequestResponse(c, err.Error())
	}
	if err != nil {
		logger.ErrorContext(ctx, "Registration failed", "email", req.Email, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if errors.Is(err, services.ErrInvalidCredentials) {
		logger.WarnContext(ctx, "Login failed", "email", req.Email)
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	}
	if err != nil {
		logger.ErrorContext(ctx, "Login error", "email", req.Email, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Login successful", "user_id", user.ID)

	return utils.SuccessResponse(c, &dto.LoginResponse{
		Token: token,
		User:  *dto.UserToUserResponse(user),
	})
}

// Me returns the caller behind the bearer token
func (h *UserHandler) Me(c *fiber.Ctx) error {
	ctx := c.UserContext()

	caller, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userService.GetUser(ctx, caller.ID)
	if errors.Is(err, services.ErrUserNotFound) {
		return utils.NotFoundResponse(c, "User not found")
	}
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load user", "user_id", caller.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
