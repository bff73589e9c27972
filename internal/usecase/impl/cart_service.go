package impl

import (
	"context"
	"log/slog"
	"sync"

	"medifinder/config"
	"medifinder/internal/domain/entity"
	"medifinder/internal/domain/repository"
	"medifinder/internal/domain/service"
	"medifinder/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface. The in-memory state is
// the source of truth; the repository is a best-effort write-through mirror
// used only when persistence is enabled.
type cartService struct {
	repo     repository.CartRepository
	notifier service.Notifier
	logger   *slog.Logger
	persist  bool

	mu    sync.RWMutex
	items map[string]*entity.CartItem
	order []string
	subs  map[int]chan []*entity.CartItem
	next  int
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cfg *config.Config,
	repo repository.CartRepository,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CartUsecase {
	persist := cfg.Cart != nil && cfg.Cart.Persist

	return &cartService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		persist:  persist,
		items:    make(map[string]*entity.CartItem),
		subs:     make(map[int]chan []*entity.CartItem),
	}
}

// AddItem inserts the product with quantity 1, or bumps an existing line.
func (srv *cartService) AddItem(ctx context.Context, item *entity.CartItem) error {
	srv.mu.Lock()
	if existing, ok := srv.items[item.ProductID]; ok {
		existing.Quantity++
	} else {
		cp := *item
		cp.Quantity = 1
		srv.items[item.ProductID] = &cp
		srv.order = append(srv.order, item.ProductID)
	}
	srv.mirrorLocked(ctx)
	srv.publishLocked()
	srv.mu.Unlock()

	srv.notifier.Notify(ctx, "Produit ajouté au panier", item.Name+" a été ajouté à votre panier")

	return nil
}

// RemoveItem deletes the line item if present. Absent ids are a silent no-op.
func (srv *cartService) RemoveItem(ctx context.Context, productID string) error {
	srv.mu.Lock()
	removed, ok := srv.items[productID]
	if !ok {
		srv.mu.Unlock()

		return nil
	}
	srv.deleteLocked(productID)
	srv.mirrorLocked(ctx)
	srv.publishLocked()
	srv.mu.Unlock()

	srv.notifier.Notify(ctx, "Produit retiré du panier", removed.Name+" a été retiré de votre panier")

	return nil
}

// UpdateQuantity sets the quantity of an existing line item. Zero or less
// removes the item.
func (srv *cartService) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return srv.RemoveItem(ctx, productID)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	item, ok := srv.items[productID]
	if !ok {
		return nil
	}
	item.Quantity = quantity
	srv.mirrorLocked(ctx)
	srv.publishLocked()

	return nil
}

// Clear empties the cart unconditionally.
func (srv *cartService) Clear(ctx context.Context) error {
	srv.mu.Lock()
	srv.items = make(map[string]*entity.CartItem)
	srv.order = nil
	srv.mirrorLocked(ctx)
	srv.publishLocked()
	srv.mu.Unlock()

	srv.notifier.Notify(ctx, "Panier vidé", "Tous les produits ont été retirés de votre panier")

	return nil
}

// Items returns the line items in insertion order.
func (srv *cartService) Items() []*entity.CartItem {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.snapshotLocked()
}

// TotalItems returns the sum of all quantities.
func (srv *cartService) TotalItems() int {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	total := 0
	for _, item := range srv.items {
		total += item.Quantity
	}

	return total
}

// TotalPrice returns the cart total in euro cents.
func (srv *cartService) TotalPrice() int64 {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	var total int64
	for _, item := range srv.items {
		total += item.Subtotal()
	}

	return total
}

// Restore loads the persisted line items at startup.
func (srv *cartService) Restore(ctx context.Context) error {
	if !srv.persist {
		return nil
	}

	items, err := srv.repo.LoadItems(ctx)
	if err != nil {
		return errors.Wrap(err, "load cart items")
	}

	srv.mu.Lock()
	srv.items = make(map[string]*entity.CartItem, len(items))
	srv.order = srv.order[:0]
	for _, item := range items {
		cp := *item
		srv.items[cp.ProductID] = &cp
		srv.order = append(srv.order, cp.ProductID)
	}
	srv.publishLocked()
	srv.mu.Unlock()

	return nil
}

// Subscribe registers a snapshot channel and returns its cancel function.
func (srv *cartService) Subscribe(buffer int) (<-chan []*entity.CartItem, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan []*entity.CartItem, buffer)

	srv.mu.Lock()
	id := srv.next
	srv.next++
	srv.subs[id] = ch
	srv.mu.Unlock()

	cancel := func() {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		if sub, ok := srv.subs[id]; ok {
			delete(srv.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

func (srv *cartService) deleteLocked(productID string) {
	delete(srv.items, productID)
	for i, id := range srv.order {
		if id == productID {
			srv.order = append(srv.order[:i], srv.order[i+1:]...)

			break
		}
	}
}

func (srv *cartService) snapshotLocked() []*entity.CartItem {
	out := make([]*entity.CartItem, 0, len(srv.order))
	for _, id := range srv.order {
		cp := *srv.items[id]
		out = append(out, &cp)
	}

	return out
}

// mirrorLocked writes the cart through to durable storage. The mirror is
// best effort: a failed write is logged, never surfaced to the caller.
func (srv *cartService) mirrorLocked(ctx context.Context) {
	if !srv.persist {
		return
	}
	if err := srv.repo.SaveItems(ctx, srv.snapshotLocked()); err != nil {
		srv.logger.Warn("cart mirror write failed", "error", err)
	}
}

// publishLocked fans the item list out to subscribers without blocking.
func (srv *cartService) publishLocked() {
	snapshot := srv.snapshotLocked()
	for _, sub := range srv.subs {
		select {
		case sub <- snapshot:
		default:
		}
	}
}
