package handlers

import (
	"net/http"

	"resto_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetMenu retourne le menu regroupé par catégorie
func (e *Env) GetMenu(c *gin.Context) {
	grouped, categories := e.Catalog.ByCategory()

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"menu":       grouped,
	})
}

// CreateMenuItem ajoute un article au menu (admin)
func (e *Env) CreateMenuItem(c *gin.Context) {
	var input models.MenuItem
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := e.Catalog.AddItem(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, input)
}

// UpdateMenuItem modifie un article existant (admin).
// Seuls les champs fournis sont modifiés.
func (e *Env) UpdateMenuItem(c *gin.Context) {
	var input struct {
		Name     *string  `json:"name"`
		Category *string  `json:"category"`
		Price    *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := e.Catalog.UpdateItem(c.Param("id"), input.Name, input.Category, input.Price); err != nil {
		if err.Error() == "article introuvable" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, _ := e.Catalog.FindItem(c.Param("id"))
	c.JSON(http.StatusOK, item)
}
