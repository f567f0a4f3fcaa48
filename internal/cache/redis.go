package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"pescaderia-backend/internal/models"
)

// Insight responses are cached per catalog snapshot; the TTL keeps
// recommendations fresh across price and stock churn.
const insightTTL = 15 * time.Minute

var client *redis.Client

// Init initializes the Redis connection
func Init() error {
	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// hashCatalog derives a cache key from the price and stock of every product,
// so any catalog change misses the cache.
func hashCatalog(products []*models.Product) string {
	h := sha256.New()
	for _, p := range products {
		fmt.Fprintf(h, "%s:%.2f:%.2f;", p.ID, p.PricePerKg, p.StockKg)
	}
	return "insights:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedInsights returns cached recommendations for this exact catalog
// snapshot, if present.
func GetCachedInsights(ctx context.Context, products []*models.Product) ([]models.InventoryInsight, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, hashCatalog(products)).Bytes()
	if err != nil {
		return nil, false
	}
	var out []models.InventoryInsight
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}

// CacheInsights stores recommendations keyed by the catalog snapshot.
func CacheInsights(ctx context.Context, products []*models.Product, insights []models.InventoryInsight) {
	if client == nil {
		return
	}
	data, err := json.Marshal(insights)
	if err != nil {
		return
	}
	client.Set(ctx, hashCatalog(products), data, insightTTL)
}
