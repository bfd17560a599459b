package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
)

// CartRepository stores cart snapshots under cart:<customer_id> with no
// expiry; a customer's cart lives until it is cleared or checked out.
type CartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{client: client}
}

func (r *CartRepository) Load(ctx context.Context, customerID string) ([]domain.LineItem, error) {
	payload, err := r.client.Get(ctx, r.key(customerID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return items, nil
}

func (r *CartRepository) Save(ctx context.Context, customerID string, items []domain.LineItem) error {
	if len(items) == 0 {
		return r.Delete(ctx, customerID)
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := r.client.Set(ctx, r.key(customerID), payload, 0).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, customerID string) error {
	if err := r.client.Del(ctx, r.key(customerID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

func (r *CartRepository) key(customerID string) string {
	return fmt.Sprintf("cart:%s", customerID)
}
