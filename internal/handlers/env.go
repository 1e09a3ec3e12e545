package handlers

import (
	"resto_back_end/internal/catalog"
	"resto_back_end/internal/store"
)

// Env regroupe les dépendances partagées des handlers.
// Pas d'état global : tout est passé explicitement depuis main.
type Env struct {
	Orders  *store.OrderStore
	Users   *store.UserStore
	Catalog *catalog.Catalog
}

func NewEnv(orders *store.OrderStore, users *store.UserStore, menu *catalog.Catalog) *Env {
	return &Env{
		Orders:  orders,
		Users:   users,
		Catalog: menu,
	}
}
