package internal

import (
	"context"

	"go.uber.org/zap"

	"github.com/DrGermanius/advfood/internal/model"
)

// ShopResolver maps a restaurant, optionally seen through a branch, to the provider shop id.
type ShopResolver struct {
	repo   IRepository
	logger *zap.SugaredLogger
}

func NewShopResolver(repo IRepository, logger *zap.SugaredLogger) *ShopResolver {
	return &ShopResolver{repo: repo, logger: logger}
}

// Resolve prefers the (branch, restaurant) mapping and falls back to the restaurant default.
// An empty result is not an error: nothing is configured.
func (r ShopResolver) Resolve(ctx context.Context, restaurant model.Restaurant, branchID *int64) (string, error) {
	if branchID != nil {
		shopID, err := r.repo.GetBranchShopID(ctx, *branchID, restaurant.ID)
		if err != nil {
			return "", err
		}
		if shopID != "" {
			r.logger.Debugw("shop id resolved from branch mapping",
				"branch_id", *branchID, "restaurant_id", restaurant.ID, "shop_id", shopID)
			return shopID, nil
		}
	}

	return restaurant.ShopID, nil
}
