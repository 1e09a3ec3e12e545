package handlers

import (
	"log"
	"net/http"

	"resto_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// Login authentifie un membre du personnel et retourne un JWT avec son rôle
func (e *Env) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Login et mot de passe requis"})
		return
	}

	user, found := e.Users.FindByUsername(input.Username)
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login ou mot de passe invalide"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, user.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login ou mot de passe invalide"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		log.Printf("❌ Erreur génération JWT: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
		return
	}

	log.Printf("✅ Connexion de %s (%s)", user.Username, user.Role)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}
