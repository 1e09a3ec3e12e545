package utils

import (
	"os"
	"time"

	"resto_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT émet un token pour un membre du personnel.
// Le rôle est embarqué dans les claims : c'est lui qui ouvre les routes
// POS / cuisine / dashboard côté middleware.
func GenerateJWT(user models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}

	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(12 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
