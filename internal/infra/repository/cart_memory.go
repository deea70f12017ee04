package repository

import (
	"context"
	"sync"
	"time"

	"github.com/gastonlopezt/TUP-25-p3/internal/domain/model"
	repo "github.com/gastonlopezt/TUP-25-p3/internal/repository"

	"github.com/google/uuid"
)

const (
	// DefaultCartTTL は最終更新からカートを保持する時間
	DefaultCartTTL = 30 * time.Minute

	// DefaultSweepInterval は放置カートの掃除を回す間隔
	DefaultSweepInterval = time.Minute
)

type cartEntry struct {
	mu   sync.Mutex
	cart model.Cart
}

// CartMemoryRepository はプロセス内のカート登録簿。
// r.mu が登録簿（map）を守り、entry.mu が各カートの変更を直列化する。
// entry.mu は必ず r.mu（RLockで可）を持ったまま取ること。
type CartMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]*cartEntry

	ttl       time.Duration
	stopSweep chan struct{}
	wg        sync.WaitGroup
}

// NewCartMemoryRepository は登録簿を作る。ttl > 0 なら掃除goroutineも起動する。
// ttl = 0 で放置カートの破棄を無効化できる。
func NewCartMemoryRepository(ttl time.Duration, sweepInterval time.Duration) *CartMemoryRepository {
	r := &CartMemoryRepository{
		carts:     make(map[string]*cartEntry),
		ttl:       ttl,
		stopSweep: make(chan struct{}),
	}

	if ttl > 0 {
		r.wg.Add(1)
		go r.sweepLoop(sweepInterval)
	}

	return r
}

func (r *CartMemoryRepository) sweepLoop(interval time.Duration) {
	defer r.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweepIdle(time.Now())
		case <-r.stopSweep:
			return
		}
	}
}

// 最終更新からTTLを超えたカートを破棄する。破棄した件数を返す。
func (r *CartMemoryRepository) sweepIdle(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.carts {
		if now.Sub(e.cart.UpdatedAt) > r.ttl {
			delete(r.carts, id)
			removed++
		}
	}
	return removed
}

// Create は空のカートを新しいトークンで登録する。
func (r *CartMemoryRepository) Create(ctx context.Context) (model.Cart, error) {
	now := time.Now()
	cart := model.Cart{
		ID:        uuid.NewString(),
		Items:     []model.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.carts[cart.ID] = &cartEntry{cart: cart}
	r.mu.Unlock()

	return cloneCart(cart), nil
}

func (r *CartMemoryRepository) FindByID(ctx context.Context, id string) (model.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.carts[id]
	if !ok {
		return model.Cart{}, repo.ErrCartNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneCart(e.cart), nil
}

func (r *CartMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[id]; !ok {
		return repo.ErrCartNotFound
	}
	delete(r.carts, id)
	return nil
}

// Mutate は fn をカートのロック中に実行する。fn がエラーを返したらそのまま返す。
func (r *CartMemoryRepository) Mutate(ctx context.Context, id string, fn func(c *model.Cart) error) (model.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.carts[id]
	if !ok {
		return model.Cart{}, repo.ErrCartNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := fn(&e.cart); err != nil {
		return model.Cart{}, err
	}

	e.cart.UpdatedAt = time.Now()
	return cloneCart(e.cart), nil
}

// Close は掃除goroutineを止めて終了を待つ。
func (r *CartMemoryRepository) Close() error {
	close(r.stopSweep)
	r.wg.Wait()
	return nil
}

// 呼び出し側に内部のスライスを触らせないためのコピー。
func cloneCart(c model.Cart) model.Cart {
	out := c
	out.Items = make([]model.CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}
