package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"resto_back_end/internal/models"
	"resto_back_end/internal/utils"
)

// UserStore persiste les comptes du personnel dans users.json.
// Même contrat que les commandes : lecture tolérante, écriture bruyante.
type UserStore struct {
	path string
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// LoadUsers charge tous les comptes (fichier absent ou corrompu = liste vide)
func (s *UserStore) LoadUsers() []models.User {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.User{}
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		log.Printf("⚠️ Fichier utilisateurs illisible (%v)", err)
		return []models.User{}
	}

	for _, user := range users {
		if !models.ValidRole(user.Role) {
			log.Printf("⚠️ Rôle inconnu %q pour %s — aucune route ne lui sera ouverte", user.Role, user.Username)
		}
	}
	return users
}

// SaveUsers réécrit le fichier utilisateurs entier
func (s *UserStore) SaveUsers(users []models.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("création du dossier de données: %w", err)
	}

	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return fmt.Errorf("sérialisation des utilisateurs: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("écriture du fichier utilisateurs: %w", err)
	}
	return nil
}

// FindByUsername retrouve un compte par son login
func (s *UserStore) FindByUsername(username string) (models.User, bool) {
	for _, user := range s.LoadUsers() {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

// SeedDefaults crée les comptes par défaut si le fichier est vide ou absent.
// Les mots de passe sont hashés avant d'être écrits.
func (s *UserStore) SeedDefaults() error {
	if len(s.LoadUsers()) > 0 {
		return nil
	}

	defaults := []struct {
		username, password, role string
	}{
		{"admin", "admin123", models.RoleAdmin},
		{"alice", "waiter123", models.RoleWaiter},
		{"marco", "chef123", models.RoleChef},
	}

	users := make([]models.User, 0, len(defaults))
	for _, d := range defaults {
		hash, err := utils.HashPassword(d.password)
		if err != nil {
			return fmt.Errorf("hash du mot de passe par défaut: %w", err)
		}
		users = append(users, models.User{Username: d.username, Password: hash, Role: d.role})
	}

	if err := s.SaveUsers(users); err != nil {
		return err
	}
	log.Printf("✅ %d comptes par défaut créés dans %s", len(users), s.path)
	return nil
}
