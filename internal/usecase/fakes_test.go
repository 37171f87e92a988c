package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/entity"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

// In-memory ports mirroring the SQL adapters' atomicity: every mutation
// holds the lock for the whole increment, so they are safe under the
// concurrency tests.

type memCartRepo struct {
	mu    sync.Mutex
	carts map[string]map[string]int
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[string]map[string]int{}}
}

func (r *memCartRepo) Get(ctx context.Context, userID string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart := domain.Cart{UserID: userID, UpdatedAt: time.Now().UTC()}
	ids := make([]string, 0, len(r.carts[userID]))
	for id := range r.carts[userID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		cart.Lines = append(cart.Lines, domain.CartLine{ItemID: id, Quantity: r.carts[userID][id]})
	}
	return cart, nil
}

func (r *memCartRepo) AddLine(ctx context.Context, userID, itemID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.carts[userID] == nil {
		r.carts[userID] = map[string]int{}
	}
	r.carts[userID][itemID] += qty
	return nil
}

func (r *memCartRepo) SetLine(ctx context.Context, userID, itemID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.carts[userID] == nil {
		r.carts[userID] = map[string]int{}
	}
	r.carts[userID][itemID] = qty
	return nil
}

func (r *memCartRepo) RemoveLine(ctx context.Context, userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts[userID], itemID)
	return nil
}

func (r *memCartRepo) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[userID] = map[string]int{}
	return nil
}

type memWishlistRepo struct {
	mu    sync.Mutex
	lists map[string][]string
}

func newMemWishlistRepo() *memWishlistRepo {
	return &memWishlistRepo{lists: map[string][]string{}}
}

func (r *memWishlistRepo) Get(ctx context.Context, userID string) (domain.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.Wishlist{UserID: userID, ItemIDs: append([]string(nil), r.lists[userID]...), UpdatedAt: time.Now().UTC()}, nil
}

func (r *memWishlistRepo) Add(ctx context.Context, userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.lists[userID] {
		if id == itemID {
			return nil
		}
	}
	r.lists[userID] = append(r.lists[userID], itemID)
	return nil
}

func (r *memWishlistRepo) Remove(ctx context.Context, userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.lists[userID][:0]
	for _, id := range r.lists[userID] {
		if id != itemID {
			out = append(out, id)
		}
	}
	r.lists[userID] = out
	return nil
}

func (r *memWishlistRepo) Contains(ctx context.Context, userID, itemID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.lists[userID] {
		if id == itemID {
			return true, nil
		}
	}
	return false, nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*domain.Order{}}
}

func cloneOrder(o *domain.Order) *domain.Order {
	cp := *o
	cp.Lines = append([]domain.OrderLine(nil), o.Lines...)
	return &cp
}

func (r *memOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (r *memOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memOrderRepo) UpdateStatusIf(ctx context.Context, id string, fromStatus, toStatus domain.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.Status != fromStatus {
		return false, nil
	}
	o.Status = toStatus
	o.UpdatedAt = time.Now().UTC()
	return true, nil
}

// setStatus bypasses the CAS, simulating a concurrent writer.
func (r *memOrderRepo) setStatus(id string, st domain.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[id].Status = st
}

type memCatalog struct {
	mu    sync.Mutex
	items map[string]domain.MenuItem
}

func newMemCatalog(items ...domain.MenuItem) *memCatalog {
	c := &memCatalog{items: map[string]domain.MenuItem{}}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

func (c *memCatalog) Item(ctx context.Context, itemID string) (domain.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[itemID]
	if !ok {
		return domain.MenuItem{}, domain.ErrItemNotFound
	}
	return it, nil
}

func (c *memCatalog) List(ctx context.Context, category string, featured *bool) ([]domain.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []domain.MenuItem
	for _, it := range c.items {
		if category != "" && it.Category != category {
			continue
		}
		if featured != nil && it.Featured != *featured {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (c *memCatalog) setPrice(itemID string, cents int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it := c.items[itemID]
	it.PriceCents = cents
	c.items[itemID] = it
}

type memLock struct {
	mu   sync.Mutex
	held map[string]bool
}

func newMemLock() *memLock {
	return &memLock{held: map[string]bool{}}
}

func (l *memLock) TryLock(ctx context.Context, userID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[userID] {
		return false, nil
	}
	l.held[userID] = true
	return true, nil
}

func (l *memLock) Unlock(ctx context.Context, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, userID)
	return nil
}

func (l *memLock) heldFor(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held[userID]
}

type eventRecorder struct {
	mu      sync.Mutex
	placed  []usecase.OrderPlacedMsg
	changed []usecase.OrderStatusChangedMsg
}

func (r *eventRecorder) PublishPlaced(ctx context.Context, msg usecase.OrderPlacedMsg) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placed = append(r.placed, msg)
	return nil
}

func (r *eventRecorder) PublishStatusChanged(ctx context.Context, msg usecase.OrderStatusChangedMsg) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changed = append(r.changed, msg)
	return nil
}
