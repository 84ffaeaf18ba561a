package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "homehub-backend/internal/auth/domain"
	"homehub-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthUsecase struct {
	usecase.AuthUsecase
	validate func(token string) (*authdomain.TokenClaims, error)
}

func (s *stubAuthUsecase) ValidateToken(token string) (*authdomain.TokenClaims, error) {
	return s.validate(token)
}

func protectedEngine(validate func(string) (*authdomain.TokenClaims, error), extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(&stubAuthUsecase{validate: validate})}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserID),
			"role":    c.GetString(CtxUserRole),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	r := protectedEngine(func(string) (*authdomain.TokenClaims, error) {
		t.Fatal("ValidateToken should not be called without a token")
		return nil, nil
	})

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := protectedEngine(func(string) (*authdomain.TokenClaims, error) {
		t.Fatal("ValidateToken should not be called for a malformed header")
		return nil, nil
	})

	for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer "} {
		w := doGet(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := protectedEngine(func(string) (*authdomain.TokenClaims, error) {
		return nil, usecase.ErrInvalidToken
	})

	w := doGet(r, "Bearer forged")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := protectedEngine(func(string) (*authdomain.TokenClaims, error) {
		return nil, usecase.ErrTokenExpired
	})

	w := doGet(r, "Bearer stale")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	// Revoked comes back 401, not 403: the session is gone.
	r := protectedEngine(func(string) (*authdomain.TokenClaims, error) {
		return nil, usecase.ErrTokenRevoked
	})

	w := doGet(r, "Bearer revoked")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_StorageFailure(t *testing.T) {
	r := protectedEngine(func(string) (*authdomain.TokenClaims, error) {
		return nil, assert.AnError
	})

	w := doGet(r, "Bearer anything")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthMiddleware_AttachesIdentity(t *testing.T) {
	r := protectedEngine(func(token string) (*authdomain.TokenClaims, error) {
		assert.Equal(t, "good-token", token)
		return &authdomain.TokenClaims{UserID: "u1", Email: "a@x.com", Role: authdomain.RoleAdmin}, nil
	})

	w := doGet(r, "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1","role":"admin"}`, w.Body.String())
}

func TestRequireRoles_Allowed(t *testing.T) {
	r := protectedEngine(func(string) (*authdomain.TokenClaims, error) {
		return &authdomain.TokenClaims{UserID: "u1", Role: authdomain.RoleAdmin}, nil
	}, RequireRoles(authdomain.RoleAdmin))

	w := doGet(r, "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_Forbidden(t *testing.T) {
	r := protectedEngine(func(string) (*authdomain.TokenClaims, error) {
		return &authdomain.TokenClaims{UserID: "u1", Role: authdomain.RoleUser}, nil
	}, RequireRoles(authdomain.RoleAdmin))

	w := doGet(r, "Bearer good-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoles_WithoutAuthentication(t *testing.T) {
	// The role gate must not assume an identity is in context.
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireRoles(authdomain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
