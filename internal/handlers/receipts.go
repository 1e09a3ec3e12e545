package handlers

import (
	"net/http"
	"strconv"

	"resto_back_end/internal/config"
	"resto_back_end/internal/receipt"

	"github.com/gin-gonic/gin"
)

// GetReceipt rend le reçu d'une commande existante.
// Paramètres : ?type=SIMPLE|DETAILED, ?tax_rate=0.08, ?tip_percent=0.15
func (e *Env) GetReceipt(c *gin.Context) {
	order, found := e.Orders.GetByID(c.Param("orderId"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	taxRate := config.TaxRate()
	if raw := c.Query("tax_rate"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre tax_rate invalide"})
			return
		}
		taxRate = parsed
	}

	tipPercent := 0.0
	if raw := c.Query("tip_percent"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre tip_percent invalide"})
			return
		}
		tipPercent = parsed
	}

	rcpt, err := receipt.New(order, taxRate, tipPercent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receiptType := c.DefaultQuery("type", receipt.TypeSimple)
	rendered, err := rcpt.Render(receiptType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receipt_id": rcpt.ReceiptID,
		"order_id":   order.OrderID,
		"type":       receiptType,
		"subtotal":   rcpt.Subtotal(),
		"tax":        rcpt.Tax(),
		"tip":        rcpt.Tip(),
		"total":      rcpt.Total(),
		"rendered":   rendered,
	})
}
