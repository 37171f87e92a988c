package usecase

import (
	"context"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
)

// WishlistService mirrors CartService minus quantity: a saved-for-later set.
type WishlistService struct {
	repo WishlistRepo
}

func NewWishlistService(repo WishlistRepo) *WishlistService {
	return &WishlistService{repo: repo}
}

func (s *WishlistService) Get(ctx context.Context, userID string) (domain.Wishlist, error) {
	return s.repo.Get(ctx, userID)
}

// Add is idempotent; adding an already-present item is a no-op.
func (s *WishlistService) Add(ctx context.Context, userID, itemID string) (domain.Wishlist, error) {
	if err := s.repo.Add(ctx, userID, itemID); err != nil {
		return domain.Wishlist{}, err
	}
	return s.repo.Get(ctx, userID)
}

// Remove is idempotent.
func (s *WishlistService) Remove(ctx context.Context, userID, itemID string) (domain.Wishlist, error) {
	if err := s.repo.Remove(ctx, userID, itemID); err != nil {
		return domain.Wishlist{}, err
	}
	return s.repo.Get(ctx, userID)
}

func (s *WishlistService) Contains(ctx context.Context, userID, itemID string) (bool, error) {
	return s.repo.Contains(ctx, userID, itemID)
}
