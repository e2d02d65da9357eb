package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"palmtec-registry/internal/adapters/http/handlers"
	"palmtec-registry/internal/adapters/http/middleware"
	"palmtec-registry/internal/adapters/persistence/models"
	"palmtec-registry/internal/adapters/persistence/repositories/mocks"
	"palmtec-registry/internal/config"
	"palmtec-registry/internal/core/services"
	"palmtec-registry/internal/pkg/jwt"
	"palmtec-registry/internal/pkg/password"
)

const testSerial = "202505AMP123456B"

func init() {
	password.Cost = bcrypt.MinCost
}

type testEnv struct {
	app     *fiber.App
	cfg     *config.Config
	users   *mocks.MockUserRepository
	serials *mocks.MockSerialRepository
	procs   *mocks.MockProcedureRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &testEnv{
		cfg: &config.Config{
			AppMode: "dev",
			JWT: config.JWTConfig{
				Secret:           "test_access_secret",
				RefreshSecret:    "test_refresh_secret",
				AccessTokenMins:  60,
				RefreshTokenDays: 7,
			},
			Cookie: config.CookieConfig{SameSite: "Lax"},
		},
		users:   mocks.NewMockUserRepository(ctrl),
		serials: mocks.NewMockSerialRepository(ctrl),
		procs:   mocks.NewMockProcedureRepository(ctrl),
	}

	authService := services.NewAuthService(env.users, env.cfg)

	env.app = fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	middleware.Setup(env.app, env.cfg)
	Register(env.app, &Handlers{
		Health:        handlers.NewHealthHandler(env.cfg, func() error { return nil }),
		Auth:          handlers.NewAuthHandler(authService, env.cfg),
		Serial:        handlers.NewSerialHandler(services.NewSerialService(env.serials, env.procs)),
		Mapping:       handlers.NewMappingHandler(services.NewMappingService(env.procs)),
		Authenticator: authService,
	})

	return env
}

// session returns an access token for a stored user and lets the guard find it
func (e *testEnv) session(t *testing.T) *http.Cookie {
	t.Helper()

	e.users.EXPECT().GetByID(gomock.Any(), uint(1)).
		Return(&models.User{ID: 1, Username: "alice", Email: "alice@example.com", Role: "employee"}, nil).
		AnyTimes()

	token, err := jwt.GenerateAccessToken(1, e.cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.AccessTokenCookie, Value: token}
}

func (e *testEnv) do(t *testing.T, method, target, body string, cookies ...*http.Cookie) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthGuard(t *testing.T) {
	t.Run("no cookie", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodGet, "/get_serial_numbers/", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Authentication required", body["error"])
	})

	t.Run("tampered token", func(t *testing.T) {
		env := newTestEnv(t)
		resp, _ := env.do(t, http.MethodPost, "/add_serial_number/", `{"serialnumber":"`+testSerial+`"}`,
			&http.Cookie{Name: middleware.AccessTokenCookie, Value: "garbage"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("refresh token is not accepted as access token", func(t *testing.T) {
		env := newTestEnv(t)
		token, err := jwt.GenerateRefreshToken(1, env.cfg.JWT.Secret, time.Hour)
		require.NoError(t, err)

		resp, _ := env.do(t, http.MethodGet, "/get_customer_mappings/", "",
			&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("deleted user", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.EXPECT().GetByID(gomock.Any(), uint(9)).Return(nil, gorm.ErrRecordNotFound)
		token, err := jwt.GenerateAccessToken(9, env.cfg.JWT.Secret, time.Hour)
		require.NoError(t, err)

		resp, body := env.do(t, http.MethodGet, "/getSerialNumber/", "",
			&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Authentication required", body["error"])
	})

	t.Run("responses are not cacheable", func(t *testing.T) {
		env := newTestEnv(t)
		resp, _ := env.do(t, http.MethodGet, "/get_serial_numbers/", "")
		assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))
	})
}

func TestHealthRoutes(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, body = env.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "dev", body["mode"])
}
