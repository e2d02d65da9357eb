package routes

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"palmtec-registry/internal/adapters/http/middleware"
	"palmtec-registry/internal/adapters/persistence/models"
	"palmtec-registry/internal/pkg/jwt"
	"palmtec-registry/internal/pkg/password"
)

const signupBody = `{"username":"alice","mailid":"alice@example.com","password":"pw","cpassword":"pw"}`

func TestSignupRoute(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(false, nil)
		env.users.EXPECT().ExistsByEmail(gomock.Any(), "alice@example.com").Return(false, nil)
		env.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = 3
			return nil
		})

		resp, body := env.do(t, http.MethodPost, "/signup/", signupBody)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "Account created successfully.", body["message"])

		user := body["user"].(map[string]interface{})
		assert.Equal(t, "alice", user["username"])
		assert.Equal(t, "alice@example.com", user["email"])
		assert.Equal(t, "employee", user["role"])
		assert.NotContains(t, user, "id")
		assert.NotContains(t, user, "password")
	})

	t.Run("empty body", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodPost, "/signup/", `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid Input", body["error"])
	})

	t.Run("missing field", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodPost, "/signup/", `{"username":"alice","password":"pw","cpassword":"pw"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Fill out all the fields", body["error"])
	})

	t.Run("password mismatch", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodPost, "/signup/",
			`{"username":"alice","mailid":"a@b.c","password":"pw","cpassword":"other"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Passwords do not match", body["error"])
	})

	t.Run("duplicate username then email", func(t *testing.T) {
		env := newTestEnv(t)
		gomock.InOrder(
			env.users.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(true, nil),
			env.users.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(false, nil),
			env.users.EXPECT().ExistsByEmail(gomock.Any(), "alice@example.com").Return(true, nil),
		)

		resp, body := env.do(t, http.MethodPost, "/signup/", signupBody)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "Username already exists", body["error"])

		resp, body = env.do(t, http.MethodPost, "/signup/", signupBody)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "Email already exists", body["error"])
	})

	t.Run("store failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(false, errors.New("db down"))

		resp, body := env.do(t, http.MethodPost, "/signup/", signupBody)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Failed to create user", body["error"])
	})
}

func TestLoginRoute(t *testing.T) {
	hash, err := password.Hash("pw")
	require.NoError(t, err)

	stored := func() *models.User {
		return &models.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: hash,
			Role: "employee", IsVerified: true, IsActive: true}
	}

	t.Run("success sets both cookies", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored(), nil)

		resp, body := env.do(t, http.MethodPost, "/login/", `{"username":"alice","password":"pw"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Login Successful", body["message"])

		user := body["user"].(map[string]interface{})
		assert.Equal(t, float64(1), user["id"])
		assert.Equal(t, true, user["is_verified"])

		access := findCookie(resp, middleware.AccessTokenCookie)
		require.NotNil(t, access)
		assert.Equal(t, 3600, access.MaxAge)
		assert.True(t, access.HttpOnly)
		assert.Equal(t, "/", access.Path)
		assert.Equal(t, http.SameSiteLaxMode, access.SameSite)

		refresh := findCookie(resp, middleware.RefreshTokenCookie)
		require.NotNil(t, refresh)
		assert.Equal(t, 604800, refresh.MaxAge)

		claims, err := jwt.ValidateAccessToken(access.Value, env.cfg.JWT.Secret)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
	})

	t.Run("unknown user and wrong password answer the same", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, gorm.ErrRecordNotFound)
		env.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored(), nil)

		r1, b1 := env.do(t, http.MethodPost, "/login/", `{"username":"ghost","password":"pw"}`)
		r2, b2 := env.do(t, http.MethodPost, "/login/", `{"username":"alice","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, r1.StatusCode)
		assert.Equal(t, http.StatusUnauthorized, r2.StatusCode)
		assert.Equal(t, b1, b2)
		assert.Equal(t, "Invalid credentials", b1["error"])
		assert.Nil(t, findCookie(r1, middleware.AccessTokenCookie))
	})

	t.Run("inactive", func(t *testing.T) {
		env := newTestEnv(t)
		u := stored()
		u.IsActive = false
		env.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(u, nil)

		resp, body := env.do(t, http.MethodPost, "/login/", `{"username":"alice","password":"pw"}`)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Account is inactive", body["error"])
	})

	t.Run("unverified", func(t *testing.T) {
		env := newTestEnv(t)
		u := stored()
		u.IsVerified = false
		env.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(u, nil)

		resp, body := env.do(t, http.MethodPost, "/login/", `{"username":"alice","password":"pw"}`)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "User is not verified", body["error"])
	})

	t.Run("missing password", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodPost, "/login/", `{"username":"alice"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Please provide username and password", body["error"])
	})
}

func TestRefreshRoute(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodPost, "/token/refresh/", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "No refresh token found", body["error"])
	})

	t.Run("expired", func(t *testing.T) {
		env := newTestEnv(t)
		token, err := jwt.GenerateRefreshToken(1, env.cfg.JWT.RefreshSecret, -time.Second)
		require.NoError(t, err)

		resp, body := env.do(t, http.MethodPost, "/token/refresh/", "",
			&http.Cookie{Name: middleware.RefreshTokenCookie, Value: token})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid or expired refresh token", body["error"])
	})

	t.Run("resets access cookie only", func(t *testing.T) {
		env := newTestEnv(t)
		token, err := jwt.GenerateRefreshToken(1, env.cfg.JWT.RefreshSecret, time.Hour)
		require.NoError(t, err)

		resp, body := env.do(t, http.MethodPost, "/token/refresh/", "",
			&http.Cookie{Name: middleware.RefreshTokenCookie, Value: token})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Token refreshed successfully", body["message"])

		access := findCookie(resp, middleware.AccessTokenCookie)
		require.NotNil(t, access)
		_, err = jwt.ValidateAccessToken(access.Value, env.cfg.JWT.Secret)
		assert.NoError(t, err)
		assert.Nil(t, findCookie(resp, middleware.RefreshTokenCookie))
	})
}

func TestLogoutRoute(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/logout/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logged out successfully", body["message"])

	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		c := findCookie(resp, name)
		require.NotNil(t, c, name)
		assert.Empty(t, c.Value)
		assert.True(t, c.Expires.Before(time.Now()), name)
	}
}

func TestIntrospectionRoutes(t *testing.T) {
	t.Run("protected greets the user", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodGet, "/protected/", "", env.session(t))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Hello alice!", body["message"])
	})

	t.Run("protected without cookie", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodGet, "/protected/", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "No access token provided", body["error"])
	})

	t.Run("protected with expired token", func(t *testing.T) {
		env := newTestEnv(t)
		token, err := jwt.GenerateAccessToken(1, env.cfg.JWT.Secret, -time.Second)
		require.NoError(t, err)

		resp, body := env.do(t, http.MethodGet, "/protected/", "",
			&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid or expired token", body["error"])
	})

	t.Run("verify-auth", func(t *testing.T) {
		env := newTestEnv(t)
		resp, body := env.do(t, http.MethodGet, "/verify-auth/", "", env.session(t))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["authenticated"])

		resp, body = env.do(t, http.MethodGet, "/verify-auth/", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Not authenticated", body["error"])
	})
}
