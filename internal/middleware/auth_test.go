package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"journal-server/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims *model.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(userID uuid.UUID) *model.Claims {
	return &model.Claims{
		UserID: userID,
		Email:  "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestVerifyToken_Valid(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, zap.NewNop())
	require.NoError(t, err)

	userID := uuid.New()
	tokenString := signToken(t, testSecret, validClaims(userID))

	claims, err := verifier.VerifyToken(context.Background(), tokenString)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestVerifyToken_Expired(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, zap.NewNop())
	require.NoError(t, err)

	claims := validClaims(uuid.New())
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	tokenString := signToken(t, testSecret, claims)

	_, err = verifier.VerifyToken(context.Background(), tokenString)

	assert.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, zap.NewNop())
	require.NoError(t, err)

	tokenString := signToken(t, "some-other-secret", validClaims(uuid.New()))

	_, err = verifier.VerifyToken(context.Background(), tokenString)

	assert.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestVerifyToken_MissingUserID(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, zap.NewNop())
	require.NoError(t, err)

	tokenString := signToken(t, testSecret, validClaims(uuid.Nil))

	_, err = verifier.VerifyToken(context.Background(), tokenString)

	assert.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestVerifyToken_Garbage(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, zap.NewNop())
	require.NoError(t, err)

	_, err = verifier.VerifyToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, model.ErrTokenMalformed)
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier("", nil)
	assert.Error(t, err)
}

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	verifier, err := NewJWTVerifier(testSecret, zap.NewNop())
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", Auth(verifier, zap.NewNop()), func(c *gin.Context) {
		userID := c.MustGet(model.UserContextKey).(uuid.UUID)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router
}

func TestAuth_MissingHeader(t *testing.T) {
	router := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing token")
}

func TestAuth_MalformedHeader(t *testing.T) {
	router := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Malformed token header")
}

func TestAuth_ExpiredToken(t *testing.T) {
	router := newAuthTestRouter(t)

	claims := validClaims(uuid.New())
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, claims))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestAuth_ValidTokenInjectsUser(t *testing.T) {
	router := newAuthTestRouter(t)
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims(userID)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}
