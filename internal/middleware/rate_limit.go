package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"resto_back_end/internal/cache"

	"github.com/gin-gonic/gin"
)

const (
	LoginMaxAttempts = 5
	LoginCooldown    = 15 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par login.
// Sans Redis, le compteur reste à zéro et la limite est inactive.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Username string `json:"username"`
		}

		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Username == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Remettre le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		attempts, err := cache.IncrementRateLimit("login_attempts:"+input.Username, LoginCooldown)
		if err == nil && attempts > LoginMaxAttempts {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Trop de tentatives de connexion, réessayez plus tard",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
