package main

import (
	"log"
	"os"

	"resto_back_end/internal/cache"
	"resto_back_end/internal/catalog"
	"resto_back_end/internal/config"
	"resto_back_end/internal/handlers"
	"resto_back_end/internal/routes"
	"resto_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	// Redis est optionnel : sans lui, cache menu, rate limit et flux cuisine
	// sont désactivés mais le service tourne
	if err := cache.InitRedis(); err != nil {
		log.Printf("⚠️ Redis indisponible (%v) — mode dégradé", err)
	}

	orders := store.NewOrderStore(config.OrdersFile())
	if err := orders.EnsureStore(); err != nil {
		log.Fatal("❌ Impossible d'initialiser le fichier de commandes :", err)
	}

	users := store.NewUserStore(config.UsersFile())
	if err := users.SeedDefaults(); err != nil {
		log.Fatal("❌ Impossible d'initialiser les comptes :", err)
	}

	menu := catalog.New(config.MenuFile())
	if err := menu.Seed(); err != nil {
		log.Fatal("❌ Impossible d'initialiser le menu :", err)
	}

	env := handlers.NewEnv(orders, users, menu)

	r := gin.Default()
	routes.RegisterRoutes(r, env)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur resto lancé sur le port", port)
	r.Run(":" + port)
}
