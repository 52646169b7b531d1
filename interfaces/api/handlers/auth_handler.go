package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskboard/domain/dto"
	"taskboard/domain/ports"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

const (
	invalidCredentialsMessage = "Invalid Credentials"
	registerSuccessMessage    = "Registration Successful! Now go ahead and login"
	passwordTooLongMessage    = "Password must be at most 72 bytes long"
)

// AuthHandler serves the login/register/logout pages
type AuthHandler struct {
	userService services.UserService
	auth        ports.SessionAuthPort
}

func NewAuthHandler(userService services.UserService, auth ports.SessionAuthPort) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		auth:        auth,
	}
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return render(c, h.auth, "auth/login", "Login", nil)
}

// Login never tells the caller whether the email or the password was wrong
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		logger.WarnContext(ctx, "Invalid login form", "error", err)
		return render(c, h.auth, "auth/login", "Login", fiber.Map{"Error": invalidCredentialsMessage})
	}

	user, err := h.userService.FindByEmail(ctx, form.Email)
	if err != nil {
		return err
	}

	ok, err := h.auth.Login(c, user, form.Password)
	if err != nil {
		return err
	}
	if ok {
		return c.Redirect("/")
	}

	return render(c, h.auth, "auth/login", "Login", fiber.Map{"Error": invalidCredentialsMessage})
}

func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return render(c, h.auth, "auth/register", "Register", nil)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var form dto.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid registration form")
	}

	_, err := h.userService.Register(ctx, &dto.RegisterRequest{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if errors.Is(err, services.ErrPasswordTooLong) {
		return render(c, h.auth, "auth/register", "Register", fiber.Map{"Error": passwordTooLongMessage})
	}
	if err != nil {
		return err
	}

	return render(c, h.auth, "auth/register", "Register", fiber.Map{"Success": registerSuccessMessage})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c); err != nil {
		return err
	}
	return c.Redirect("/")
}
