package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type StoreConfig struct {
	CookieName string
	Expiration time.Duration
	Secure     bool
}

// NewStore สร้าง fiber session store
// storage เป็น nil ได้ (fiber จะใช้ memory storage แทน)
func NewStore(cfg StoreConfig, storage fiber.Storage) *session.Store {
	if cfg.CookieName == "" {
		cfg.CookieName = "taskboard_session"
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = 24 * time.Hour
	}

	return session.New(session.Config{
		Storage:        storage,
		Expiration:     cfg.Expiration,
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Secure,
		CookieSameSite: "Lax",
	})
}
