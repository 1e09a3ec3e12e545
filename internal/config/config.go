package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Load charge le fichier .env s'il existe
func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// DataDir retourne le dossier de données (fichiers JSON, reçus)
func DataDir() string {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	return dir
}

// OrdersFile retourne le chemin du fichier de commandes
func OrdersFile() string {
	return filepath.Join(DataDir(), "orders.json")
}

// UsersFile retourne le chemin du fichier utilisateurs
func UsersFile() string {
	return filepath.Join(DataDir(), "users.json")
}

// MenuFile retourne le chemin du fichier menu
func MenuFile() string {
	return filepath.Join(DataDir(), "menu.json")
}

// ReceiptsDir retourne le dossier où les reçus sont écrits
func ReceiptsDir() string {
	return filepath.Join(DataDir(), "receipts")
}

// TaxRate retourne le taux de taxe appliqué aux reçus (8% par défaut)
func TaxRate() float64 {
	if raw := os.Getenv("TAX_RATE"); raw != "" {
		if rate, err := strconv.ParseFloat(raw, 64); err == nil && rate >= 0 {
			return rate
		}
		log.Println("⚠️ TAX_RATE invalide, on garde la valeur par défaut")
	}
	return 0.08
}
