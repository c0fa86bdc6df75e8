package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/velmart/velmart-api/models"
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID   uint        `json:"userId"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// GenerateToken signs a session token carrying the user's id, username and
// role snapshot.
func GenerateToken(user models.User, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      float64(user.ID),
		"username": user.Username,
		"role":     string(user.Role),
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken validates a session token and returns the principal it carries.
func ParseToken(tokenString, secret string) (Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Principal{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Principal{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return Principal{}, errors.New("invalid subject claim")
	}
	username, _ := claims["username"].(string)
	role, ok := claims["role"].(string)
	if !ok {
		return Principal{}, errors.New("invalid role claim")
	}

	return Principal{
		UserID:   uint(sub),
		Username: username,
		Role:     models.Role(role),
	}, nil
}
