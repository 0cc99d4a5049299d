package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"journal-server/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JWTVerifier verifies bearer tokens issued by the hosted auth provider.
type JWTVerifier struct {
	jwtSecret string
	logger    *zap.Logger
}

// NewJWTVerifier creates a JWTVerifier. The logger may be nil.
func NewJWTVerifier(jwtSecret string, logger *zap.Logger) (*JWTVerifier, error) {
	if jwtSecret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JWTVerifier{
		jwtSecret: jwtSecret,
		logger:    logger.Named("JWTVerifier"),
	}, nil
}

// VerifyToken checks the token signature and validity and extracts claims.
func (v *JWTVerifier) VerifyToken(ctx context.Context, tokenString string) (*model.Claims, error) {
	log := v.logger.With(zap.String("tokenSnippet", tokenSnippet(tokenString)))
	claims := &model.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			log.Warn("Unexpected signing method", zap.Any("alg", token.Header["alg"]))
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.jwtSecret), nil
	})

	if err != nil {
		log.Warn("Failed to parse or verify token", zap.Error(err))
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrTokenExpired
		} else if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, model.ErrTokenMalformed
		} else if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, model.ErrTokenInvalid
		}
		return nil, fmt.Errorf("%w: %v", model.ErrTokenInvalid, err)
	}

	if !token.Valid {
		return nil, model.ErrTokenInvalid
	}

	if claims.UserID == uuid.Nil {
		log.Warn("Token missing user id")
		return nil, fmt.Errorf("%w: user id missing", model.ErrTokenInvalid)
	}

	return claims, nil
}

// tokenSnippet returns a log-safe prefix of the token.
func tokenSnippet(token string) string {
	if len(token) > 10 {
		return token[:10] + "..."
	}
	return token
}

// Auth returns a gin middleware that requires a valid bearer token and
// injects the user's id and email into the request context.
func Auth(verifier *JWTVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.With(zap.String("path", c.Request.URL.Path))

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Missing token"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			log.Warn("Malformed Authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Malformed token header"})
			return
		}

		claims, err := verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			msg := "Unauthorized: Invalid token"
			if errors.Is(err, model.ErrTokenExpired) {
				msg = "Unauthorized: Token expired"
			}
			log.Warn("Token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(model.UserContextKey, claims.UserID)
		c.Set(model.EmailContextKey, claims.Email)
		c.Next()
	}
}
