package handlers

import (
	"log"
	"net/http"

	"resto_back_end/internal/cache"
	"resto_back_end/internal/config"
	"resto_back_end/internal/models"
	"resto_back_end/internal/receipt"
	"resto_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ListPendingOrders retourne la file des commandes en attente, dans l'ordre du fichier
func (e *Env) ListPendingOrders(c *gin.Context) {
	pending := e.Orders.QueryByStatus(models.StatusPending)

	payload := make([]gin.H, 0, len(pending))
	for _, order := range pending {
		payload = append(payload, orderPayload(order))
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(payload),
		"orders": payload,
	})
}

// StartOrder passe une commande en préparation (PENDING → PROCESSING)
func (e *Env) StartOrder(c *gin.Context) {
	order, found := e.Orders.GetByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if !order.UpdateStatus(models.StatusProcessing) {
		c.JSON(http.StatusConflict, gin.H{"error": "La commande n'est pas en attente"})
		return
	}

	if err := e.Orders.Save(order); err != nil {
		log.Printf("❌ Sauvegarde commande échouée: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sauvegarde de la commande échouée"})
		return
	}

	cache.PublishKitchenEvent("processing:" + order.OrderID)
	c.JSON(http.StatusOK, orderPayload(order))
}

// CompleteOrder termine une commande (depuis PENDING ou PROCESSING) et génère
// le reçu : fichier texte sur disque, QR de paiement, e-mail si demandé.
func (e *Env) CompleteOrder(c *gin.Context) {
	var input struct {
		TipPercent float64 `json:"tip_percent"`
		Email      string  `json:"email"`
	}
	// Body optionnel
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	order, found := e.Orders.GetByID(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if !order.UpdateStatus(models.StatusCompleted) {
		c.JSON(http.StatusConflict, gin.H{"error": "La commande ne peut pas être terminée depuis son statut actuel"})
		return
	}

	if err := e.Orders.Save(order); err != nil {
		log.Printf("❌ Sauvegarde commande échouée: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sauvegarde de la commande échouée"})
		return
	}

	rcpt, err := receipt.New(order, config.TaxRate(), input.TipPercent)
	if err != nil {
		// Ne devrait pas arriver : une commande vide ne passe jamais PENDING
		log.Printf("❌ Génération du reçu impossible: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Génération du reçu impossible"})
		return
	}

	filePath, err := rcpt.SaveToFile(config.ReceiptsDir())
	if err != nil {
		log.Printf("❌ Écriture du reçu échouée: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Écriture du reçu échouée"})
		return
	}

	qr, err := utils.GeneratePaymentQR(order.OrderID, rcpt.Total())
	if err != nil {
		log.Printf("⚠️ QR de paiement non généré: %v", err)
		qr = ""
	}

	// E-mail best effort : un échec d'envoi ne bloque pas la clôture
	if input.Email != "" && utils.EmailConfigured() {
		html := utils.GenerateReceiptHTML(order, rcpt.Subtotal(), rcpt.Tax(), rcpt.Tip(), rcpt.Total(), qr)
		if err := utils.SendReceiptEmail(input.Email, "Votre reçu "+rcpt.ReceiptID, html); err != nil {
			log.Printf("⚠️ Envoi du reçu par e-mail échoué: %v", err)
		}
	}

	cache.PublishKitchenEvent("completed:" + order.OrderID)
	log.Printf("✅ Commande %s terminée, reçu %s généré", order.OrderID, rcpt.ReceiptID)

	c.JSON(http.StatusOK, gin.H{
		"order":        orderPayload(order),
		"receipt_id":   rcpt.ReceiptID,
		"receipt":      rcpt.GenerateSimple(),
		"receipt_file": filePath,
		"payment_qr":   qr,
		"total":        rcpt.Total(),
	})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// KitchenWebSocket pousse la file des commandes en attente à chaque changement.
// Alimenté par le canal Redis ; sans Redis, le endpoint est indisponible.
func (e *Env) KitchenWebSocket(c *gin.Context) {
	pubsub := cache.SubscribeKitchen()
	if pubsub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Flux temps réel indisponible sans Redis"})
		return
	}
	defer pubsub.Close()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	sendQueue := func(event string) error {
		pending := e.Orders.QueryByStatus(models.StatusPending)
		payload := make([]gin.H, 0, len(pending))
		for _, order := range pending {
			payload = append(payload, orderPayload(order))
		}
		return conn.WriteJSON(map[string]interface{}{
			"type":   "queue",
			"event":  event,
			"count":  len(payload),
			"orders": payload,
		})
	}

	// État initial à la connexion
	if err := sendQueue("connected"); err != nil {
		return
	}

	for msg := range pubsub.Channel() {
		if err := sendQueue(msg.Payload); err != nil {
			log.Printf("⚠️ Client cuisine déconnecté: %v", err)
			return
		}
	}
}
