package receipt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resto_back_end/internal/models"

	"github.com/google/uuid"
)

// Types de rendu disponibles
const (
	TypeSimple   = "SIMPLE"
	TypeDetailed = "DETAILED"
)

// Receipt est une vue en lecture seule sur une commande finalisée :
// elle calcule taxe, pourboire et total mais ne modifie jamais la commande.
type Receipt struct {
	ReceiptID  string
	Order      *models.Order
	TaxRate    float64
	TipPercent float64
	IssuedAt   time.Time
}

// New construit un reçu pour une commande non vide.
// Une commande sans ligne est une erreur d'appel, pas un cas métier : on échoue fort.
func New(order *models.Order, taxRate, tipPercent float64) (*Receipt, error) {
	if order == nil || len(order.Items) == 0 {
		return nil, errors.New("impossible de créer un reçu pour une commande vide")
	}

	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return &Receipt{
		ReceiptID:  "RCP-" + suffix,
		Order:      order,
		TaxRate:    taxRate,
		TipPercent: tipPercent,
		IssuedAt:   time.Now(),
	}, nil
}

// Subtotal est le total de la commande avant taxe et pourboire
func (r *Receipt) Subtotal() float64 {
	return r.Order.GetTotal()
}

// Tax calcule la taxe
func (r *Receipt) Tax() float64 {
	return r.Subtotal() * r.TaxRate
}

// Tip calcule le pourboire
func (r *Receipt) Tip() float64 {
	return r.Subtotal() * r.TipPercent
}

// Total = sous-total + taxe + pourboire
func (r *Receipt) Total() float64 {
	return r.Subtotal() + r.Tax() + r.Tip()
}

// GenerateSimple produit le ticket compact
func (r *Receipt) GenerateSimple() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("RECEIPT #%s", r.ReceiptID))
	lines = append(lines, fmt.Sprintf("Order: #%s", r.Order.OrderID))
	lines = append(lines, fmt.Sprintf("Date: %s", r.IssuedAt.Format("2006-01-02 15:04")))
	lines = append(lines, strings.Repeat("-", 40))

	for _, item := range r.Order.Items {
		lines = append(lines, fmt.Sprintf("%s x%d = $%.2f", item.Name, item.Quantity, item.Subtotal()))
	}

	lines = append(lines, strings.Repeat("-", 40))
	lines = append(lines, fmt.Sprintf("Subtotal: $%.2f", r.Subtotal()))
	lines = append(lines, fmt.Sprintf("Tax (%.1f%%): $%.2f", r.TaxRate*100, r.Tax()))

	if r.TipPercent > 0 {
		lines = append(lines, fmt.Sprintf("Tip (%.1f%%): $%.2f", r.TipPercent*100, r.Tip()))
	}

	lines = append(lines, fmt.Sprintf("TOTAL: $%.2f", r.Total()))

	return strings.Join(lines, "\n")
}

// GenerateDetailed produit la facture tabulaire
func (r *Receipt) GenerateDetailed() string {
	var lines []string
	lines = append(lines, strings.Repeat(" ", 15)+"INVOICE / RECEIPT")
	lines = append(lines, strings.Repeat("=", 50))
	lines = append(lines, fmt.Sprintf("Receipt: #%-20s Order: #%s", r.ReceiptID, r.Order.OrderID))
	lines = append(lines, fmt.Sprintf("Customer: %s", r.Order.CustomerID))
	lines = append(lines, fmt.Sprintf("Date: %s", r.IssuedAt.Format("2006-01-02 03:04 PM")))
	lines = append(lines, strings.Repeat("=", 50))

	lines = append(lines, fmt.Sprintf("%-20s %5s %8s %10s", "Item", "Qty", "Price", "Total"))
	lines = append(lines, strings.Repeat("-", 50))

	for _, item := range r.Order.Items {
		// tronquer en runes, pas en octets : un nom accentué ne doit pas
		// produire d'UTF-8 invalide sur la facture
		name := item.Name
		if runes := []rune(name); len(runes) > 19 {
			name = string(runes[:19])
		}
		lines = append(lines, fmt.Sprintf("%-20s %5d $%7.2f $%9.2f",
			name, item.Quantity, item.Price, item.Subtotal()))
	}

	lines = append(lines, strings.Repeat("-", 50))
	lines = append(lines, fmt.Sprintf("%-35s $%10.2f", "Subtotal:", r.Subtotal()))
	lines = append(lines, fmt.Sprintf("%-35s $%10.2f", fmt.Sprintf("Tax (%.1f%%):", r.TaxRate*100), r.Tax()))

	if r.TipPercent > 0 {
		lines = append(lines, fmt.Sprintf("%-35s $%10.2f", fmt.Sprintf("Tip (%.1f%%):", r.TipPercent*100), r.Tip()))
	}

	lines = append(lines, strings.Repeat("=", 50))
	lines = append(lines, fmt.Sprintf("%-35s $%10.2f", "GRAND TOTAL:", r.Total()))

	return strings.Join(lines, "\n")
}

// Render produit le rendu demandé. Un type inconnu est une erreur d'appel.
func (r *Receipt) Render(receiptType string) (string, error) {
	switch receiptType {
	case TypeSimple:
		return r.GenerateSimple(), nil
	case TypeDetailed:
		return r.GenerateDetailed(), nil
	default:
		return "", fmt.Errorf("type de reçu invalide: %s", receiptType)
	}
}

// SaveToFile écrit le rendu détaillé sur disque et retourne le chemin du fichier
func (r *Receipt) SaveToFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("création du dossier des reçus: %w", err)
	}

	path := filepath.Join(dir, r.ReceiptID+".txt")
	if err := os.WriteFile(path, []byte(r.GenerateDetailed()+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("écriture du reçu: %w", err)
	}
	return path, nil
}
