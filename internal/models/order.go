package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Statuts possibles d'une commande
const (
	StatusDraft      = "DRAFT"
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// OrderItem représente une ligne de commande.
// Le nom et le prix sont des snapshots du menu au moment de l'ajout :
// une modification ultérieure du menu ne change pas la commande.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Subtotal calcule le sous-total de la ligne
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order représente une commande : liste de lignes + statut.
// UpdatedAt n'est pas persisté (voir store) et repart de CreatedAt au chargement.
type Order struct {
	OrderID    string      `json:"order_id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"-"`
}

// Transitions autorisées du statut. Toute paire absente de la table est refusée,
// y compris depuis les états terminaux COMPLETED et CANCELLED.
// PENDING → COMPLETED est volontairement permis (raccourci cuisine).
var allowedTransitions = map[string][]string{
	StatusDraft:      {StatusPending, StatusCancelled},
	StatusPending:    {StatusProcessing, StatusCompleted, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// NewOrder crée une commande DRAFT pour une table/un client
func NewOrder(customerID string) (*Order, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, errors.New("customer_id requis")
	}

	now := time.Now()
	return &Order{
		OrderID:    NewOrderID(),
		CustomerID: customerID,
		Items:      []OrderItem{},
		Status:     StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// NewOrderID génère un identifiant unique au format ORD-XXXXXXXX
func NewOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return "ORD-" + suffix
}

// IsTerminal indique si la commande est dans un état final (plus aucune mutation)
func (o *Order) IsTerminal() bool {
	return o.Status == StatusCompleted || o.Status == StatusCancelled
}

// AddItem ajoute une ligne à la commande.
// Si le produit est déjà présent, on incrémente sa quantité : le prix et le nom
// de la ligne existante sont conservés (premier ajout gagnant).
func (o *Order) AddItem(productID, name string, price float64, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	if o.IsTerminal() {
		return false
	}

	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			o.Items[idx].Quantity += quantity
			o.UpdatedAt = time.Now()
			return true
		}
	}

	o.Items = append(o.Items, OrderItem{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Quantity:  quantity,
	})
	o.UpdatedAt = time.Now()
	return true
}

// RemoveItem retire une ligne (quantity <= 0) ou décrémente sa quantité.
// Retirer au moins la quantité courante supprime la ligne entière :
// une ligne à quantité zéro n'existe jamais.
func (o *Order) RemoveItem(productID string, quantity int) bool {
	if o.IsTerminal() {
		return false
	}

	for idx := range o.Items {
		if o.Items[idx].ProductID != productID {
			continue
		}
		if quantity <= 0 || quantity >= o.Items[idx].Quantity {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
		} else {
			o.Items[idx].Quantity -= quantity
		}
		o.UpdatedAt = time.Now()
		return true
	}

	return false
}

// GetTotal calcule le total de la commande, toujours à partir des lignes
func (o *Order) GetTotal() float64 {
	total := 0.0
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

// UpdateStatus applique une transition de statut.
// Retourne false sans rien modifier si le statut cible est inconnu, si la
// transition n'est pas dans la table, ou si on soumet une commande vide.
func (o *Order) UpdateStatus(newStatus string) bool {
	targets, ok := allowedTransitions[o.Status]
	if !ok {
		return false
	}
	if _, known := allowedTransitions[newStatus]; !known {
		return false
	}

	if newStatus == StatusPending && len(o.Items) == 0 {
		return false
	}

	for _, target := range targets {
		if target == newStatus {
			o.Status = newStatus
			o.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// ClearOrder vide toutes les lignes de la commande
func (o *Order) ClearOrder() bool {
	if o.IsTerminal() {
		return false
	}
	o.Items = []OrderItem{}
	o.UpdatedAt = time.Now()
	return true
}
