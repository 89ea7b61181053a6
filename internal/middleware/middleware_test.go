package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ItaloOlivier/shopcrypto/internal/logger"
	"github.com/ItaloOlivier/shopcrypto/internal/user"
	"github.com/ItaloOlivier/shopcrypto/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestIDFrom(c.Request.Context()))
	})

	t.Run("Generates ID when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)

		r.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
	})

	t.Run("Preserves existing ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Request-ID", "test-id-123")

		r.ServeHTTP(w, req)

		assert.Equal(t, "test-id-123", w.Body.String())
		assert.Equal(t, "test-id-123", w.Header().Get("X-Request-ID"))
	})
}

func issueToken(t *testing.T, role user.Role) string {
	t.Helper()
	token, err := user.GenerateJWT("u1", string(role), "miner@example.com")
	require.NoError(t, err)
	return token
}

func identityEcho(c *gin.Context) {
	id, _ := utils.GetUserIDFromContext(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func TestAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.GET("/protected", Auth(), identityEcho)

	t.Run("Missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	})

	t.Run("Invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong scheme", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Basic user:pass")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, user.RoleCustomer))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"u1"}`, w.Body.String())
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.GET("/open", OptionalAuth(), identityEcho)

	t.Run("Anonymous passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/open", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":""}`, w.Body.String())
	})

	t.Run("Bad token degrades to anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/open", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":""}`, w.Body.String())
	})

	t.Run("Valid token attaches identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/open", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, user.RoleCustomer))
		r.ServeHTTP(w, req)
		assert.JSONEq(t, `{"id":"u1"}`, w.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.GET("/admin", Auth(), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("Customer rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, user.RoleCustomer))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Admin allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, user.RoleAdmin))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestResolveRateTier(t *testing.T) {
	cases := []struct {
		path string
		tier string
	}{
		{"/api/auth/login", "strict"},
		{"/api/orders", "strict"},
		{"/api/orders/SC-1-AAAA", "strict"},
		{"/api/products", "browse"},
		{"/api/categories", "browse"},
		{"/api/me/orders", "general"},
		{"/health", "general"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			_, _, tier := resolveRateTier(tc.path)
			assert.Equal(t, tc.tier, tier)
		})
	}
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.GET("/api/auth/login", RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Burst for the strict tier is 5; the sixth immediate request must be
	// rejected for the same visitor.
	var codes []int
	for i := 0; i < int(burstStrict)+1; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/auth/login", nil)
		req.RemoteAddr = "10.1.2.3:5000"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusTooManyRequests, codes[len(codes)-1])
}

func TestRateLimitBucketsPerUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	r.POST("/api/auth/login", OptionalAuth(), RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(token string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/auth/login", nil)
		req.RemoteAddr = "10.9.8.7:5000"
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	tokenA, err := user.GenerateJWT("limit-a", "CUSTOMER", "a@example.com")
	require.NoError(t, err)
	tokenB, err := user.GenerateJWT("limit-b", "CUSTOMER", "b@example.com")
	require.NoError(t, err)

	// Exhaust the strict burst for user A.
	for i := 0; i < int(burstStrict); i++ {
		assert.Equal(t, http.StatusOK, do(tokenA))
	}
	assert.Equal(t, http.StatusTooManyRequests, do(tokenA))

	// A different user and an anonymous caller on the same IP each have
	// their own bucket.
	assert.Equal(t, http.StatusOK, do(tokenB))
	assert.Equal(t, http.StatusOK, do(""))
}

func TestGetVisitorReusesLimiter(t *testing.T) {
	a := getVisitor("test:visitor", rate.Limit(1), 1)
	b := getVisitor("test:visitor", rate.Limit(1), 1)
	assert.Same(t, a, b)
}
