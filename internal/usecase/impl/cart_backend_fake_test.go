package impl

import (
	"context"
	"sort"
	"sync"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// fakeCartBackend is an in-memory server cart. Calls can be made to fail or
// to stop mid-flight until the test releases them.
type fakeCartBackend struct {
	mu       sync.Mutex
	lines    map[entity.ProductID]int
	products map[entity.ProductID]entity.Product
	calls    []string
	failures map[string]error
	holds    map[string]*callHold
}

type callHold struct {
	entered chan struct{}
	release chan struct{}
}

func newFakeCartBackend(products ...entity.Product) *fakeCartBackend {
	backend := &fakeCartBackend{
		lines:    make(map[entity.ProductID]int),
		products: make(map[entity.ProductID]entity.Product),
		failures: make(map[string]error),
		holds:    make(map[string]*callHold),
	}
	for _, product := range products {
		backend.products[product.ID] = product
	}

	return backend
}

func testProduct(id entity.ProductID, name, price string) entity.Product {
	return entity.Product{
		ID:         id,
		Name:       name,
		Price:      decimal.RequireFromString(price),
		StockLevel: 10,
	}
}

// seed sets server quantities directly.
func (b *fakeCartBackend) seed(quantities map[entity.ProductID]int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for productID, quantity := range quantities {
		b.lines[productID] = quantity
	}
}

// failNext makes the next call of op return err.
func (b *fakeCartBackend) failNext(op string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures[op] = err
}

// holdNext stops the next call of op until release is closed.
func (b *fakeCartBackend) holdNext(op string) *callHold {
	b.mu.Lock()
	defer b.mu.Unlock()

	hold := &callHold{entered: make(chan struct{}), release: make(chan struct{})}
	b.holds[op] = hold

	return hold
}

func (b *fakeCartBackend) callCount(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	count := 0
	for _, call := range b.calls {
		if call == op {
			count++
		}
	}

	return count
}

func (b *fakeCartBackend) serverLines() []entity.CartLine {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.linesLocked()
}

func (b *fakeCartBackend) begin(op string) (*callHold, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls = append(b.calls, op)
	hold := b.holds[op]
	delete(b.holds, op)
	err := b.failures[op]
	delete(b.failures, op)

	return hold, err
}

func (h *callHold) wait() {
	if h == nil {
		return
	}
	close(h.entered)
	<-h.release
}

func (b *fakeCartBackend) FetchCart(_ context.Context, _ entity.UserID) ([]entity.CartLine, error) {
	hold, err := b.begin("fetch")

	b.mu.Lock()
	lines := b.linesLocked()
	b.mu.Unlock()

	hold.wait()
	if err != nil {
		return nil, err
	}

	return lines, nil
}

func (b *fakeCartBackend) AddToCart(_ context.Context, _ entity.UserID, productID entity.ProductID, quantity int) error {
	hold, err := b.begin("add")
	hold.wait()
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines[productID] += quantity

	return nil
}

func (b *fakeCartBackend) SetQuantity(_ context.Context, _ entity.UserID, productID entity.ProductID, newQuantity int) error {
	hold, err := b.begin("set")
	hold.wait()
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if newQuantity <= 0 {
		b.lines[productID] = 0
	} else {
		b.lines[productID] = newQuantity
	}

	return nil
}

func (b *fakeCartBackend) RemoveItem(_ context.Context, _ entity.UserID, productID entity.ProductID) error {
	hold, err := b.begin("remove")
	hold.wait()
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.lines, productID)

	return nil
}

func (b *fakeCartBackend) linesLocked() []entity.CartLine {
	lines := make([]entity.CartLine, 0, len(b.lines))
	for productID, quantity := range b.lines {
		if quantity == 0 {
			continue
		}
		product := b.products[productID]
		lines = append(lines, entity.CartLine{
			ProductID:  productID,
			Quantity:   quantity,
			Name:       product.Name,
			Price:      product.Price,
			StockLevel: product.StockLevel,
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

	return lines
}
