package handlers

import (
	"log"
	"net/http"
	"strconv"

	"resto_back_end/internal/cache"
	"resto_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// orderPayload est la représentation API d'une commande (total dérivé inclus)
func orderPayload(order *models.Order) gin.H {
	return gin.H{
		"order_id":    order.OrderID,
		"customer_id": order.CustomerID,
		"status":      order.Status,
		"created_at":  order.CreatedAt,
		"items":       order.Items,
		"total":       order.GetTotal(),
	}
}

// CreateOrder ouvre une commande DRAFT pour une table
func (e *Env) CreateOrder(c *gin.Context) {
	var input struct {
		CustomerID string `json:"customer_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := models.NewOrder(input.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := e.Orders.Save(order); err != nil {
		log.Printf("❌ Sauvegarde commande échouée: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sauvegarde de la commande échouée"})
		return
	}

	log.Printf("✅ Commande %s ouverte pour la table %s", order.OrderID, order.CustomerID)
	c.JSON(http.StatusCreated, orderPayload(order))
}

// GetOrder retourne une commande avec son total
func (e *Env) GetOrder(c *gin.Context) {
	order, found := e.Orders.GetByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	c.JSON(http.StatusOK, orderPayload(order))
}

// AddOrderItem ajoute un article du menu à la commande.
// Le nom et le prix sont copiés depuis le menu au moment de l'ajout.
func (e *Env) AddOrderItem(c *gin.Context) {
	var input struct {
		ItemID   string `json:"item_id"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, found := e.Orders.GetByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	menuItem, found := e.Catalog.FindItem(input.ItemID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article " + input.ItemID + " introuvable au menu"})
		return
	}

	if !order.AddItem(menuItem.ID, menuItem.Name, menuItem.Price, input.Quantity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ajout refusé (quantité invalide ou commande finalisée)"})
		return
	}

	if err := e.Orders.Save(order); err != nil {
		log.Printf("❌ Sauvegarde commande échouée: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sauvegarde de la commande échouée"})
		return
	}

	c.JSON(http.StatusOK, orderPayload(order))
}

// RemoveOrderItem retire une ligne entière ou une partie de sa quantité
// (?quantity=n ; sans paramètre, la ligne est supprimée)
func (e *Env) RemoveOrderItem(c *gin.Context) {
	order, found := e.Orders.GetByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	quantity := 0
	if raw := c.Query("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre quantity invalide"})
			return
		}
		quantity = parsed
	}

	if !order.RemoveItem(c.Param("productId"), quantity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Article absent de la commande ou commande finalisée"})
		return
	}

	if err := e.Orders.Save(order); err != nil {
		log.Printf("❌ Sauvegarde commande échouée: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sauvegarde de la commande échouée"})
		return
	}

	c.JSON(http.StatusOK, orderPayload(order))
}

// ClearOrder vide la commande
func (e *Env) ClearOrder(c *gin.Context) {
	order, found := e.Orders.GetByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if !order.ClearOrder() {
		c.JSON(http.StatusConflict, gin.H{"error": "Commande finalisée, modification impossible"})
		return
	}

	if err := e.Orders.Save(order); err != nil {
		log.Printf("❌ Sauvegarde commande échouée: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sauvegarde de la commande échouée"})
		return
	}

	c.JSON(http.StatusOK, orderPayload(order))
}

// SubmitOrder envoie la commande en cuisine (DRAFT → PENDING)
func (e *Env) SubmitOrder(c *gin.Context) {
	order, found := e.Orders.GetByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if !order.UpdateStatus(models.StatusPending) {
		c.JSON(http.StatusConflict, gin.H{"error": "Envoi impossible (commande vide ou statut incompatible)"})
		return
	}

	if err := e.Orders.Save(order); err != nil {
		log.Printf("❌ Sauvegarde commande échouée: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sauvegarde de la commande échouée"})
		return
	}

	cache.PublishKitchenEvent("submitted:" + order.OrderID)
	log.Printf("✅ Commande %s envoyée en cuisine", order.OrderID)
	c.JSON(http.StatusOK, orderPayload(order))
}

// CancelOrder annule une commande non finalisée
func (e *Env) CancelOrder(c *gin.Context) {
	order, found := e.Orders.GetByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if !order.UpdateStatus(models.StatusCancelled) {
		c.JSON(http.StatusConflict, gin.H{"error": "Commande déjà finalisée"})
		return
	}

	if err := e.Orders.Save(order); err != nil {
		log.Printf("❌ Sauvegarde commande échouée: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sauvegarde de la commande échouée"})
		return
	}

	cache.PublishKitchenEvent("cancelled:" + order.OrderID)
	log.Printf("✅ Commande %s annulée", order.OrderID)
	c.JSON(http.StatusOK, orderPayload(order))
}
