package session

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/pkg/logger"
)

const userIDKey = "user_id"

// Auth is the session-backed login service. The session only carries the
// user id; everything else is read from the database when needed.
type Auth struct {
	store  *session.Store
	hasher ports.PasswordHasher
}

func NewAuth(store *session.Store, hasher ports.PasswordHasher) ports.SessionAuthPort {
	return &Auth{
		store:  store,
		hasher: hasher,
	}
}

func (a *Auth) Login(c *fiber.Ctx, user *models.User, password string) (bool, error) {
	ctx := c.UserContext()

	if user == nil {
		logger.WarnContext(ctx, "Login failed - no matching user")
		return false, nil
	}

	if !a.hasher.Check(user.Password, password) {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return false, nil
	}

	sess, err := a.store.Get(c)
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}

	// ออก session id ใหม่ทุกครั้งที่ login
	if err := sess.Regenerate(); err != nil {
		return false, fmt.Errorf("regenerate session: %w", err)
	}
	sess.Set(userIDKey, user.ID)

	if err := sess.Save(); err != nil {
		return false, fmt.Errorf("save session: %w", err)
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return true, nil
}

func (a *Auth) Logout(c *fiber.Ctx) error {
	sess, err := a.store.Get(c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	userID := sess.Get(userIDKey)
	if err := sess.Destroy(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}

	logger.InfoContext(c.UserContext(), "User logged out", "user_id", userID)
	return nil
}

func (a *Auth) Check(c *fiber.Ctx) bool {
	_, ok := a.CurrentUserID(c)
	return ok
}

func (a *Auth) CurrentUserID(c *fiber.Ctx) (uint, bool) {
	sess, err := a.store.Get(c)
	if err != nil {
		logger.WarnContext(c.UserContext(), "Failed to load session", "error", err)
		return 0, false
	}

	userID, ok := sess.Get(userIDKey).(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}
