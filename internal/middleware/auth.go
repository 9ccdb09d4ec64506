package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/santiagopugliese/personal-finances/config"
	appErrors "github.com/santiagopugliese/personal-finances/internal/errors"
)

// JwtService verifies bearer tokens issued by the hosted auth provider.
// Tokens are signed HS256 with a shared project secret; the subject
// claim carries the user's UUID.
type JwtService struct {
	secret []byte
}

func NewJwtService(cfg config.AuthConfig) (*JwtService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt: secret no configurado")
	}
	return &JwtService{secret: []byte(cfg.JWTSecret)}, nil
}

// ValidateToken parses and verifies a token and returns the user id
// from the sub claim.
func (s *JwtService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("jwt: metodo de firma inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("jwt: token invalido")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("jwt: claim sub ausente")
	}
	if _, err := uuid.Parse(sub); err != nil {
		return "", fmt.Errorf("jwt: claim sub no es un UUID: %w", err)
	}

	return sub, nil
}

func AuthMiddleware(jwtSvc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondAbort(c, appErrors.ErrUnauthorized)
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			respondAbort(c, appErrors.ErrUnauthorized)
			return
		}

		userID, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			respondAbort(c, appErrors.ErrUnauthorized.WithError(err))
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func respondAbort(c *gin.Context, err *appErrors.AppError) {
	payload := gin.H{
		"error":   err.Code,
		"message": err.Message,
	}
	if len(err.Details) > 0 {
		payload["details"] = err.Details
	}
	c.JSON(err.StatusCode, payload)
	c.Abort()
}
