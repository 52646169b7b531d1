package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taskboard/domain/models"
	"taskboard/infrastructure/crypto"
)

func newTestApp(t *testing.T) (*fiber.App, *models.User) {
	t.Helper()

	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Make("hunter2")
	require.NoError(t, err)
	user := &models.User{ID: 42, Email: "ann@example.com", Password: hash}

	auth := NewAuth(NewStore(StoreConfig{CookieName: "sid", Expiration: time.Hour}, nil), hasher)

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		var target *models.User
		if c.Query("user") == "known" {
			target = user
		}
		ok, err := auth.Login(c, target, c.Query("password"))
		if err != nil {
			return err
		}
		return c.SendString(strconv.FormatBool(ok))
	})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, ok := auth.CurrentUserID(c)
		if !ok {
			return c.SendString("guest")
		}
		return c.SendString(strconv.FormatUint(uint64(id), 10))
	})
	app.Get("/logout", func(c *fiber.Ctx) error {
		return auth.Logout(c)
	})
	return app, user
}

func doRequest(t *testing.T, app *fiber.App, method, target string, cookies []*http.Cookie) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestAuthLoginAndCurrentUser(t *testing.T) {
	app, _ := newTestApp(t)

	_, body := doRequest(t, app, http.MethodGet, "/whoami", nil)
	assert.Equal(t, "guest", body)

	resp, body := doRequest(t, app, http.MethodPost, "/login?user=known&password=hunter2", nil)
	assert.Equal(t, "true", body)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	_, body = doRequest(t, app, http.MethodGet, "/whoami", cookies)
	assert.Equal(t, "42", body)

	doRequest(t, app, http.MethodGet, "/logout", cookies)
	_, body = doRequest(t, app, http.MethodGet, "/whoami", cookies)
	assert.Equal(t, "guest", body)
}

func TestAuthLoginRejects(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/login?user=known&password=nope", nil)
	assert.Equal(t, "false", body)
	assert.Empty(t, resp.Cookies())

	_, body = doRequest(t, app, http.MethodPost, "/login?user=missing&password=hunter2", nil)
	assert.Equal(t, "false", body)
}
