package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initialise la connexion Redis.
// Redis est optionnel ici : sans lui le menu est relu depuis le fichier,
// le rate limiting et le flux cuisine temps réel sont désactivés.
func InitRedis() error {
	redisHost := os.Getenv("REDIS_HOST")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	if redisHost == "" {
		return fmt.Errorf("REDIS_HOST non configuré")
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     redisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Test de connexion
	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		RedisClient = nil
		return fmt.Errorf("impossible de se connecter à Redis: %v", err)
	}

	log.Println("✅ Redis connecté avec succès")
	return nil
}

// CloseRedis ferme la connexion Redis
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// Enabled indique si Redis est disponible
func Enabled() bool {
	return RedisClient != nil
}

// --- Cache générique ---

// SetCache stocke une valeur dans le cache
func SetCache(key string, value interface{}, duration time.Duration) error {
	if !Enabled() {
		return nil
	}
	return RedisClient.Set(ctx, key, value, duration).Err()
}

// GetCache récupère une valeur du cache
func GetCache(key string) (string, error) {
	if !Enabled() {
		return "", redis.Nil
	}
	return RedisClient.Get(ctx, key).Result()
}

// DeleteCache supprime une clé du cache
func DeleteCache(key string) error {
	if !Enabled() {
		return nil
	}
	return RedisClient.Del(ctx, key).Err()
}

// --- Rate Limiting ---

// IncrementRateLimit incrémente le compteur de rate limit
func IncrementRateLimit(key string, window time.Duration) (int64, error) {
	if !Enabled() {
		return 0, nil
	}
	pipe := RedisClient.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// --- Pub/Sub cuisine ---

// KitchenChannel est le canal Redis notifiant les changements de la file cuisine
const KitchenChannel = "kitchen:orders"

// PublishKitchenEvent notifie l'affichage cuisine (best effort)
func PublishKitchenEvent(event string) {
	if !Enabled() {
		return
	}
	if err := RedisClient.Publish(ctx, KitchenChannel, event).Err(); err != nil {
		log.Printf("⚠️ Publication Redis échouée: %v", err)
	}
}

// SubscribeKitchen s'abonne au canal de la file cuisine
func SubscribeKitchen() *redis.PubSub {
	if !Enabled() {
		return nil
	}
	return RedisClient.Subscribe(ctx, KitchenChannel)
}
