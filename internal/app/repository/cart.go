package repository

import (
	"algofit-storefront/internal/app/ds"
	"algofit-storefront/internal/app/redis"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CartRepository keeps each user's cart as a hash of plan id to quantity.
type CartRepository struct {
	store Store
}

func NewCartRepository(store Store) *CartRepository {
	return &CartRepository{store: store}
}

// Get returns the cart of userID ordered by plan id.
func (r *CartRepository) Get(ctx context.Context, userID uint) (ds.Cart, error) {
	raw, err := r.store.HGetAll(ctx, redis.CartKey(userID))
	if err != nil {
		return ds.Cart{}, fmt.Errorf("failed to load cart: %v", err)
	}

	cart := ds.Cart{UserID: userID, Items: make([]ds.CartItem, 0, len(raw))}
	for field, value := range raw {
		planID, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			continue
		}
		quantity, err := strconv.Atoi(value)
		if err != nil || quantity < 1 {
			continue
		}
		cart.Items = append(cart.Items, ds.CartItem{PlanID: uint(planID), Quantity: quantity})
		cart.ItemCount += quantity
	}
	sort.Slice(cart.Items, func(i, j int) bool { return cart.Items[i].PlanID < cart.Items[j].PlanID })
	return cart, nil
}

// Add increases the quantity of planID in the cart.
func (r *CartRepository) Add(ctx context.Context, userID, planID uint, quantity int) (ds.Cart, error) {
	if quantity < 1 {
		return ds.Cart{}, ErrInvalidQuantity
	}
	field := strconv.FormatUint(uint64(planID), 10)
	if _, err := r.store.HIncrBy(ctx, redis.CartKey(userID), field, int64(quantity)); err != nil {
		return ds.Cart{}, fmt.Errorf("failed to add plan %d to cart: %v", planID, err)
	}
	return r.Get(ctx, userID)
}

// Remove drops planID from the cart entirely.
func (r *CartRepository) Remove(ctx context.Context, userID, planID uint) (ds.Cart, error) {
	field := strconv.FormatUint(uint64(planID), 10)
	if err := r.store.HDel(ctx, redis.CartKey(userID), field); err != nil {
		return ds.Cart{}, fmt.Errorf("failed to remove plan %d from cart: %v", planID, err)
	}
	return r.Get(ctx, userID)
}

func (r *CartRepository) Clear(ctx context.Context, userID uint) error {
	return r.store.Delete(ctx, redis.CartKey(userID))
}
