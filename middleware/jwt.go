package middleware

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtKey returns the HMAC secret used to sign and verify API tokens.
func jwtKey() []byte {
	key := os.Getenv("JWT_SECRET")
	if key == "" {
		key = os.Getenv("KEY")
	}
	return []byte(key)
}

// GenerateToken issues a signed JWT for the given user email.
// Tokens expire after 72 hours.
func GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// decodeToken validates a raw JWT string and returns the email stored
// in its subject claim.
func decodeToken(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtKey(), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", errors.New("token is missing the subject claim")
	}
	return email, nil
}

// JWT_decoder extracts and validates the JWT sent in the Authorization
// header of an HTTP request, returning the user's email.
// Remember to set it with the 'Bearer ' prefix.
func JWT_decoder(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	return decodeToken(strings.TrimPrefix(header, "Bearer "))
}

// Socketio_JWT_decoder validates the JWT supplied in a socket.io
// handshake auth map, returning the user's email.
func Socketio_JWT_decoder(authData map[string]interface{}) (string, error) {
	token, ok := authData["authorization"].(string)
	if !ok || token == "" {
		return "", errors.New("missing authorization field in handshake auth")
	}
	return decodeToken(strings.TrimPrefix(token, "Bearer "))
}
