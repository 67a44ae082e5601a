package impl

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
)

// cartEngine is the cart state of one user. The mutex guards the fields only;
// it is released before every backend call so other operations can run while
// a request is in flight.
type cartEngine struct {
	userID  entity.UserID
	gateway service.CartGateway

	mu      sync.Mutex
	items   []entity.CartLine
	loaded  bool
	loading bool
	lastErr string
	// pending is the single-flight guard shared by decrease and remove.
	pending bool
	active  *entity.ActiveItem
	visible bool

	// fetchSeq numbers every fetch; appliedSeq is the newest one whose
	// response reached the cache. Older responses are dropped.
	fetchSeq   uint64
	appliedSeq uint64
}

func newCartEngine(userID entity.UserID, gateway service.CartGateway) *cartEngine {
	return &cartEngine{
		userID:  userID,
		gateway: gateway,
		items:   []entity.CartLine{},
	}
}

// fetch replaces the cache with the server cart. A failed fetch empties it.
func (e *cartEngine) fetch(ctx context.Context) error {
	e.mu.Lock()
	e.fetchSeq++
	seq := e.fetchSeq
	e.loading = true
	e.mu.Unlock()

	lines, err := e.gateway.FetchCart(ctx, e.userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	if seq == e.fetchSeq {
		e.loading = false
	}
	if seq <= e.appliedSeq {
		return err
	}
	e.appliedSeq = seq
	e.loaded = true

	if err != nil {
		e.items = []entity.CartLine{}
		e.lastErr = domainerrors.ErrCartLoadFailed.WithDetails(domainerrors.UpstreamDetails(err)).Error()

		return err
	}

	e.items = confirmedLines(lines)
	e.lastErr = ""
	if e.active != nil {
		if line, ok := e.findLocked(e.active.ProductID); ok {
			e.active.Quantity = line.Quantity
		}
	}

	return nil
}

func (e *cartEngine) isLoaded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.loaded
}

// add sends an add-or-increment of one unit, refetches, then points the
// mini-cart at the product whether or not the add succeeded. A product missing
// from the refetched cart shows quantity 1.
func (e *cartEngine) add(ctx context.Context, product *entity.Product) error {
	addErr := e.gateway.AddToCart(ctx, e.userID, product.ID, 1)
	_ = e.fetch(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	line, inCart := e.findLocked(product.ID)
	quantity := 1
	if inCart {
		quantity = line.Quantity
	}
	e.active = &entity.ActiveItem{
		ProductID:       product.ID,
		Name:            product.Name,
		Price:           product.EffectivePrice(),
		ImageURL:        product.ImageURL,
		Quantity:        quantity,
		ControlsVisible: true,
	}

	return addErr
}

// increase sends an increment of one unit and refetches either way.
func (e *cartEngine) increase(ctx context.Context, productID entity.ProductID) error {
	err := e.gateway.AddToCart(ctx, e.userID, productID, 1)
	_ = e.fetch(ctx)

	return err
}

// decrease lowers the quantity by one, optimistically. A line at quantity one
// is removed instead. Ignored while another decrease or remove is in flight.
func (e *cartEngine) decrease(ctx context.Context, productID entity.ProductID) error {
	e.mu.Lock()
	if e.pending {
		e.mu.Unlock()

		return nil
	}
	line, ok := e.findLocked(productID)
	if !ok {
		e.mu.Unlock()

		return nil
	}
	if line.Quantity <= 1 {
		e.mu.Unlock()

		return e.remove(ctx, productID)
	}

	newQuantity := line.Quantity - 1
	e.pending = true
	e.patchLocked(productID, func(l *entity.CartLine) {
		l.Quantity = newQuantity
		l.Status = entity.LinePending
	})
	e.mu.Unlock()
	defer e.releaseGuard()

	err := e.gateway.SetQuantity(ctx, e.userID, productID, newQuantity)
	_ = e.fetch(ctx)

	return err
}

// remove drops the line optimistically and clears the active item if it
// points at the product. Ignored while another decrease or remove is in flight.
func (e *cartEngine) remove(ctx context.Context, productID entity.ProductID) error {
	e.mu.Lock()
	if e.pending {
		e.mu.Unlock()

		return nil
	}
	e.pending = true
	kept := make([]entity.CartLine, 0, len(e.items))
	for _, line := range e.items {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	e.items = kept
	if e.active != nil && e.active.ProductID == productID {
		e.active = nil
	}
	e.mu.Unlock()
	defer e.releaseGuard()

	err := e.gateway.RemoveItem(ctx, e.userID, productID)
	_ = e.fetch(ctx)

	return err
}

// inFlight keeps the engine, and with it the guard, from being swept while a
// decrease or remove is pending.
func (e *cartEngine) inFlight() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pending
}

func (e *cartEngine) releaseGuard() {
	e.mu.Lock()
	e.pending = false
	e.mu.Unlock()
}

func (e *cartEngine) setVisible(visible bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.visible = visible
	if visible {
		e.active = nil
	}
}

// reset empties the cache after an order. Fetches still in flight are
// marked stale so they cannot bring the old lines back.
func (e *cartEngine) reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = []entity.CartLine{}
	e.loaded = true
	e.loading = false
	e.lastErr = ""
	e.active = nil
	e.visible = false
	e.appliedSeq = e.fetchSeq
}

func (e *cartEngine) snapshot() *entity.CartSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := &entity.CartSnapshot{
		Items:         make([]entity.CartLine, len(e.items)),
		Loading:       e.loading,
		Error:         e.lastErr,
		PendingUpdate: e.pending,
		Visible:       e.visible,
		Total:         decimal.Zero,
	}
	copy(snap.Items, e.items)
	for i := range snap.Items {
		snap.ItemCount += snap.Items[i].Quantity
		snap.Total = snap.Total.Add(snap.Items[i].Subtotal())
	}
	if e.active != nil {
		active := *e.active
		snap.ActiveItem = &active
	}

	return snap
}

func (e *cartEngine) findLocked(productID entity.ProductID) (entity.CartLine, bool) {
	for _, line := range e.items {
		if line.ProductID == productID {
			return line, true
		}
	}

	return entity.CartLine{}, false
}

func (e *cartEngine) patchLocked(productID entity.ProductID, patch func(*entity.CartLine)) {
	for i := range e.items {
		if e.items[i].ProductID == productID {
			patch(&e.items[i])

			return
		}
	}
}

// confirmedLines tags server lines as confirmed and drops non-positive quantities.
func confirmedLines(lines []entity.CartLine) []entity.CartLine {
	confirmed := make([]entity.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		line.Status = entity.LineConfirmed
		confirmed = append(confirmed, line)
	}

	return confirmed
}
