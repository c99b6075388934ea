package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"maasaicraft.co.ke/shop/api/pkg/models"
)

const productTTL = 24 * time.Hour

// CacheSingleProduct stores a product in the cache keyed by its numeric id
// and adds it to its category list.
func CacheSingleProduct(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	productJSON, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %d: %w", product.ID, err)
	}

	// Use pipeline for atomic operations
	pipe := client.TxPipeline()

	productKey := fmt.Sprintf("product:%d", product.ID)
	pipe.Set(ctx, productKey, productJSON, productTTL)

	categoryKey := fmt.Sprintf("category:%s", product.Category)
	pipe.LPush(ctx, categoryKey, product.ID)
	pipe.Expire(ctx, categoryKey, productTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute Redis pipeline for product %d: %w", product.ID, err)
	}

	return nil
}

func GetProductFromCache(ctx context.Context, productID int) (*models.Product, error) {
	client := RedisClient()
	defer client.Close()

	productKey := fmt.Sprintf("product:%d", productID)
	productJSON, err := client.Get(ctx, productKey).Result()
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal([]byte(productJSON), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &product, nil
}

// RemoveProductFromCache drops a product and its category entry.
func RemoveProductFromCache(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	pipe := client.TxPipeline()

	productKey := fmt.Sprintf("product:%d", product.ID)
	pipe.Del(ctx, productKey)

	categoryKey := fmt.Sprintf("category:%s", product.Category)
	pipe.LRem(ctx, categoryKey, 0, product.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove product from Redis cache: %w", err)
	}

	return nil
}
