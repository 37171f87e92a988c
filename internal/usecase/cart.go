package usecase

import (
	"context"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
)

// CartService owns cart reads and mutations. Every mutation returns the
// post-mutation cart so the client can replace its local view wholesale
// without a second read.
type CartService struct {
	repo CartRepo
}

func NewCartService(repo CartRepo) *CartService {
	return &CartService{repo: repo}
}

// Get never fails for an unknown user; the repo yields an empty cart.
func (s *CartService) Get(ctx context.Context, userID string) (domain.Cart, error) {
	return s.repo.Get(ctx, userID)
}

// Add increments the quantity for itemID by qty (not replace). qty must be
// at least 1.
func (s *CartService) Add(ctx context.Context, userID, itemID string, qty int) (domain.Cart, error) {
	if qty < 1 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}
	if err := s.repo.AddLine(ctx, userID, itemID, qty); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, userID)
}

// SetQuantity writes an absolute quantity. Zero or below removes the line.
func (s *CartService) SetQuantity(ctx context.Context, userID, itemID string, qty int) (domain.Cart, error) {
	var err error
	if qty <= 0 {
		err = s.repo.RemoveLine(ctx, userID, itemID)
	} else {
		err = s.repo.SetLine(ctx, userID, itemID, qty)
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, userID)
}

// Remove is idempotent; removing an absent item is a no-op.
func (s *CartService) Remove(ctx context.Context, userID, itemID string) (domain.Cart, error) {
	if err := s.repo.RemoveLine(ctx, userID, itemID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, userID)
}

// Clear empties the cart; idempotent. An emptied cart remains a valid
// zero-line cart.
func (s *CartService) Clear(ctx context.Context, userID string) (domain.Cart, error) {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, userID)
}
