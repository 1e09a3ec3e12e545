package models

import "errors"

// MenuItem représente un plat ou une boisson du menu
type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// Validate vérifie les règles métier d'un article du menu
func (m MenuItem) Validate() error {
	if m.ID == "" {
		return errors.New("id requis")
	}
	if m.Name == "" {
		return errors.New("le nom doit être une chaîne non vide")
	}
	if m.Category == "" {
		return errors.New("la catégorie doit être une chaîne non vide")
	}
	if m.Price < 0 {
		return errors.New("le prix ne peut pas être négatif")
	}
	return nil
}

// SetPrice modifie le prix (refuse un prix négatif)
func (m *MenuItem) SetPrice(price float64) error {
	if price < 0 {
		return errors.New("le prix ne peut pas être négatif")
	}
	m.Price = price
	return nil
}

// SetName modifie le nom (refuse une chaîne vide)
func (m *MenuItem) SetName(name string) error {
	if name == "" {
		return errors.New("le nom doit être une chaîne non vide")
	}
	m.Name = name
	return nil
}

// SetCategory modifie la catégorie (refuse une chaîne vide)
func (m *MenuItem) SetCategory(category string) error {
	if category == "" {
		return errors.New("la catégorie doit être une chaîne non vide")
	}
	m.Category = category
	return nil
}
