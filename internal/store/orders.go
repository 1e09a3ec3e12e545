package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"resto_back_end/internal/models"
)

// OrderStore persiste les commandes dans un unique document JSON
// (tableau de commandes, pretty-print). Contrat : un seul écrivain à la fois ;
// chaque Save réécrit le fichier entier, le dernier écrivain gagne.
type OrderStore struct {
	path string
}

// NewOrderStore crée un store pointant sur le fichier donné
func NewOrderStore(path string) *OrderStore {
	return &OrderStore{path: path}
}

// EnsureStore crée le dossier et un document vide si absents.
// Idempotent : sans danger si le fichier existe déjà, y compris quand
// plusieurs démarrages concurrents l'appellent (best effort, O_EXCL).
func (s *OrderStore) EnsureStore() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("création du dossier de données: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("création du fichier de commandes: %w", err)
	}
	defer f.Close()

	if _, err := f.Write([]byte("[]\n")); err != nil {
		return fmt.Errorf("initialisation du fichier de commandes: %w", err)
	}
	return nil
}

// LoadAll charge toutes les commandes du document.
// Lecture tolérante : fichier absent ou JSON corrompu = aucune donnée,
// jamais d'erreur pour l'appelant. C'est un choix assumé, à l'inverse
// des écritures qui échouent bruyamment.
func (s *OrderStore) LoadAll() []*models.Order {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []*models.Order{}
	}

	var orders []*models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		log.Printf("⚠️ Fichier de commandes illisible (%v), on repart de zéro", err)
		return []*models.Order{}
	}

	for _, order := range orders {
		if order.Items == nil {
			order.Items = []models.OrderItem{}
		}
		// updated_at n'est pas persisté
		order.UpdatedAt = order.CreatedAt
	}
	return orders
}

// Save insère ou remplace une commande (upsert par order_id) puis réécrit
// le document entier. Les erreurs d'écriture remontent à l'appelant.
func (s *OrderStore) Save(order *models.Order) error {
	orders := s.LoadAll()

	replaced := false
	for idx := range orders {
		if orders[idx].OrderID == order.OrderID {
			orders[idx] = order
			replaced = true
			break
		}
	}
	if !replaced {
		orders = append(orders, order)
	}

	data, err := json.MarshalIndent(orders, "", "    ")
	if err != nil {
		return fmt.Errorf("sérialisation des commandes: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("écriture du fichier de commandes: %w", err)
	}
	return nil
}

// QueryByStatus retourne les commandes ayant le statut donné, dans l'ordre du fichier
func (s *OrderStore) QueryByStatus(status string) []*models.Order {
	matches := []*models.Order{}
	for _, order := range s.LoadAll() {
		if order.Status == status {
			matches = append(matches, order)
		}
	}
	return matches
}

// GetByID retrouve une commande par son identifiant
func (s *OrderStore) GetByID(orderID string) (*models.Order, bool) {
	for _, order := range s.LoadAll() {
		if order.OrderID == orderID {
			return order, true
		}
	}
	return nil, false
}
