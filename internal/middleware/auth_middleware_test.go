package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "campushub.test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("", authMiddleware.JWTAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		role, _ := c.Get(ContextRoleKey)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "role": role})
	})
	protected.GET("/admin-only",
		authMiddleware.RolesRequired(models.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) })
	protected.GET("/staff-only",
		authMiddleware.RolesRequired(models.RoleTeacher, models.RoleAdmin, models.RoleHeadmistress),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	return router, jwtService
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router, jwtService := newTestRouter(t)

	tokenString, _, err := jwtService.Generate(1, "student")
	require.NoError(t, err)

	for _, header := range []string{"Bearer", tokenString, "Basic " + tokenString} {
		w := doRequest(router, "/whoami", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestJWTAuth_InvalidAndExpiredTokens(t *testing.T) {
	router, _ := newTestRouter(t)

	otherService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campushub.test",
	})
	forged, _, err := otherService.Generate(1, "admin")
	require.NoError(t, err)

	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    -time.Minute,
		TokenIssuer: "campushub.test",
	})
	expired, _, err := expiredService.Generate(1, "admin")
	require.NoError(t, err)

	// Both failure modes come back as the same plain 401.
	for name, token := range map[string]string{"forged": forged, "expired": expired} {
		w := doRequest(router, "/whoami", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestJWTAuth_FailureEnvelopeIsUniform(t *testing.T) {
	router, jwtService := newTestRouter(t)

	tokenString, _, err := jwtService.Generate(1, "student")
	require.NoError(t, err)

	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    -time.Minute,
		TokenIssuer: "campushub.test",
	})
	expired, _, err := expiredService.Generate(1, "student")
	require.NoError(t, err)

	forgedService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campushub.test",
	})
	forged, _, err := forgedService.Generate(1, "student")
	require.NoError(t, err)

	headers := map[string]string{
		"missing header":   "",
		"malformed header": tokenString,
		"forged token":     "Bearer " + forged,
		"expired token":    "Bearer " + expired,
	}

	for name, header := range headers {
		t.Run(name, func(t *testing.T) {
			w := doRequest(router, "/whoami", header)
			require.Equal(t, http.StatusUnauthorized, w.Code)

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
					Details string `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			// The reason for the rejection must not leak through the
			// response body.
			assert.Equal(t, string(dto.ErrorCodeUnauthorized), body.Error.Code)
			assert.Equal(t, "Authentication required", body.Error.Message)
			assert.Empty(t, body.Error.Details)
		})
	}
}

func TestJWTAuth_ValidTokenSetsIdentity(t *testing.T) {
	router, jwtService := newTestRouter(t)

	tokenString, _, err := jwtService.Generate(42, "teacher")
	require.NoError(t, err)

	w := doRequest(router, "/whoami", "Bearer "+tokenString)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":42`)
	assert.Contains(t, w.Body.String(), `"role":"teacher"`)
}

func TestRolesRequired(t *testing.T) {
	router, jwtService := newTestRouter(t)

	tests := []struct {
		role string
		path string
		want int
	}{
		{"admin", "/admin-only", http.StatusOK},
		{"teacher", "/admin-only", http.StatusForbidden},
		{"student", "/admin-only", http.StatusForbidden},
		{"teacher", "/staff-only", http.StatusOK},
		{"headmistress", "/staff-only", http.StatusOK},
		{"student", "/staff-only", http.StatusForbidden},
		{"principal", "/staff-only", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role+" "+tt.path, func(t *testing.T) {
			tokenString, _, err := jwtService.Generate(1, tt.role)
			require.NoError(t, err)

			w := doRequest(router, tt.path, "Bearer "+tokenString)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, 2)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	// Burst of 2 passes, the third request is throttled.
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}
