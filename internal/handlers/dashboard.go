package handlers

import (
	"net/http"

	"resto_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// Dashboard retourne les stats du manager : nombre de commandes et chiffre
// d'affaires par statut. Seules les commandes COMPLETED comptent comme revenu.
func (e *Env) Dashboard(c *gin.Context) {
	counts := map[string]int{}
	totals := map[string]float64{}

	orders := e.Orders.LoadAll()
	for _, order := range orders {
		counts[order.Status]++
		totals[order.Status] += order.GetTotal()
	}

	c.JSON(http.StatusOK, gin.H{
		"orders_total": len(orders),
		"by_status":    counts,
		"amounts":      totals,
		"revenue":      totals[models.StatusCompleted],
	})
}
