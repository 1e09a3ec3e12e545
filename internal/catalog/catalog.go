package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"resto_back_end/internal/cache"
	"resto_back_end/internal/models"
)

const menuCacheKey = "menu:all"
const menuCacheTTL = 10 * time.Minute

// Catalog gère le menu du restaurant : un fichier JSON + un cache Redis
// en lecture. Les commandes ne référencent le menu qu'au moment de l'ajout
// d'une ligne (snapshot du nom et du prix).
type Catalog struct {
	path string
}

func New(path string) *Catalog {
	return &Catalog{path: path}
}

// defaultMenu est le menu de démarrage
var defaultMenu = []models.MenuItem{
	{ID: "A1", Name: "Burger", Category: "Food", Price: 15.00},
	{ID: "A2", Name: "Pizza", Category: "Food", Price: 21.05},
	{ID: "A3", Name: "Pasta", Category: "Food", Price: 12.00},
	{ID: "A4", Name: "Koshary", Category: "Food", Price: 13.69},
	{ID: "A5", Name: "Shawrama", Category: "Food", Price: 14.15},
	{ID: "B1", Name: "Soda", Category: "Drinks", Price: 3.00},
	{ID: "B2", Name: "Coffee", Category: "Drinks", Price: 4.50},
	{ID: "B3", Name: "Chocolate Milk", Category: "Drinks", Price: 6.67},
	{ID: "D1", Name: "Cake", Category: "Dessert", Price: 7.00},
	{ID: "D2", Name: "Brownies", Category: "Dessert", Price: 10.44},
	{ID: "D3", Name: "Ice Cream", Category: "Dessert", Price: 5.50},
}

// Seed écrit le menu par défaut si le fichier n'existe pas encore
func (c *Catalog) Seed() error {
	if _, err := os.Stat(c.path); err == nil {
		return nil
	}
	if err := c.save(defaultMenu); err != nil {
		return err
	}
	log.Printf("✅ Menu par défaut créé (%d articles) dans %s", len(defaultMenu), c.path)
	return nil
}

// Items charge le menu complet.
// 1. Essayer le cache Redis ; 2. relire le fichier et remplir le cache.
// Lecture tolérante : fichier absent ou corrompu = menu vide.
func (c *Catalog) Items() []models.MenuItem {
	if data, err := cache.GetCache(menuCacheKey); err == nil {
		var items []models.MenuItem
		if json.Unmarshal([]byte(data), &items) == nil {
			return items
		}
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return []models.MenuItem{}
	}

	var items []models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("⚠️ Fichier menu illisible (%v)", err)
		return []models.MenuItem{}
	}

	if raw, err := json.Marshal(items); err == nil {
		cache.SetCache(menuCacheKey, raw, menuCacheTTL)
	}
	return items
}

// FindItem retrouve un article du menu par son identifiant
func (c *Catalog) FindItem(id string) (models.MenuItem, bool) {
	for _, item := range c.Items() {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// ByCategory regroupe le menu par catégorie, catégories triées
func (c *Catalog) ByCategory() (map[string][]models.MenuItem, []string) {
	grouped := map[string][]models.MenuItem{}
	for _, item := range c.Items() {
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return grouped, categories
}

// AddItem ajoute un article au menu après validation
func (c *Catalog) AddItem(item models.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	items := c.Items()
	for _, existing := range items {
		if existing.ID == item.ID {
			return fmt.Errorf("l'article %s existe déjà", item.ID)
		}
	}

	return c.save(append(items, item))
}

// UpdateItem modifie le nom, la catégorie ou le prix d'un article existant.
// Les commandes déjà prises gardent leur snapshot : seul le menu change.
func (c *Catalog) UpdateItem(id string, name, category *string, price *float64) error {
	items := c.Items()
	for idx := range items {
		if items[idx].ID != id {
			continue
		}
		if name != nil {
			if err := items[idx].SetName(*name); err != nil {
				return err
			}
		}
		if category != nil {
			if err := items[idx].SetCategory(*category); err != nil {
				return err
			}
		}
		if price != nil {
			if err := items[idx].SetPrice(*price); err != nil {
				return err
			}
		}
		return c.save(items)
	}
	return errors.New("article introuvable")
}

// save réécrit le fichier menu et invalide le cache
func (c *Catalog) save(items []models.MenuItem) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("création du dossier de données: %w", err)
	}

	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("sérialisation du menu: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("écriture du fichier menu: %w", err)
	}

	cache.DeleteCache(menuCacheKey)
	return nil
}
