package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gastonlopezt/TUP-25-p3/internal/domain/model"
	infraRepo "github.com/gastonlopezt/TUP-25-p3/internal/infra/repository"
	repo "github.com/gastonlopezt/TUP-25-p3/internal/repository"
	"github.com/gastonlopezt/TUP-25-p3/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// カートは本物のメモリ登録簿、商品はモックで組む。
func newCartUsecase(t *testing.T, pRepo repo.ProductRepository) *usecase.CartUsecase {
	t.Helper()

	cartRepo := infraRepo.NewCartMemoryRepository(0, time.Minute)
	t.Cleanup(func() { _ = cartRepo.Close() })

	return usecase.NewCartUsecase(cartRepo, pRepo)
}

func TestCartUsecase_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	uc := newCartUsecase(t, new(ProductRepoMock))

	created, err := uc.CreateCart(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, created.Items, 0)
	assert.Equal(t, int64(0), created.Total)

	got, err := uc.GetCart(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	assert.NoError(t, uc.DeleteCart(ctx, created.ID))

	_, err = uc.GetCart(ctx, created.ID)
	assertErrContains(t, err, "cart not found")

	err = uc.DeleteCart(ctx, created.ID)
	assertErrContains(t, err, "cart not found")
}

func TestCartUsecase_AddItem_CartNotFound(t *testing.T) {
	ctx := context.Background()
	uc := newCartUsecase(t, new(ProductRepoMock))

	_, err := uc.AddItem(ctx, "no-such-cart", 7)
	assertErrContains(t, err, "cart not found")
}

func TestCartUsecase_AddItem_ProductNotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	uc := newCartUsecase(t, pRepo)
	cart, _ := uc.CreateCart(ctx)

	_, err := uc.AddItem(ctx, cart.ID, 99)
	assertErrContains(t, err, "product not found")
}

func TestCartUsecase_AddItem_OutOfStock(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7, Name: "Widget", Price: 1000, Stock: 0}, nil)

	uc := newCartUsecase(t, pRepo)
	cart, _ := uc.CreateCart(ctx)

	_, err := uc.AddItem(ctx, cart.ID, 7)
	assertErrContains(t, err, "out of stock")

	got, _ := uc.GetCart(ctx, cart.ID)
	assert.Len(t, got.Items, 0)
}

// stock=2 の商品は2個までで、3回目は insufficient stock。カートは変わらない。
func TestCartUsecase_AddItem_UpToStockLimit(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7, Name: "Widget", Price: 1000, Stock: 2}, nil)

	uc := newCartUsecase(t, pRepo)
	cart, _ := uc.CreateCart(ctx)

	out, err := uc.AddItem(ctx, cart.ID, 7)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].Quantity)

	out, err = uc.AddItem(ctx, cart.ID, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.Items[0].Quantity)
	assert.Equal(t, int64(2000), out.Total)

	_, err = uc.AddItem(ctx, cart.ID, 7)
	assertErrContains(t, err, "insufficient stock")

	got, _ := uc.GetCart(ctx, cart.ID)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, int64(2), got.Items[0].Quantity)
}

// 追加時点の名前と価格が明細に残るか
func TestCartUsecase_AddItem_CapturesSnapshot(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Product{ID: 3, Name: "Celular C3", Price: 120000, Stock: 10}, nil)

	uc := newCartUsecase(t, pRepo)
	cart, _ := uc.CreateCart(ctx)

	out, err := uc.AddItem(ctx, cart.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, "Celular C3", out.Items[0].Name)
	assert.Equal(t, int64(120000), out.Items[0].UnitPrice)
	assert.Equal(t, int64(120000), out.Total)
}

func TestCartUsecase_RemoveItem_DownToZeroRemovesLine(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7, Name: "Widget", Price: 1000, Stock: 10}, nil)

	uc := newCartUsecase(t, pRepo)
	cart, _ := uc.CreateCart(ctx)

	_, _ = uc.AddItem(ctx, cart.ID, 7)
	_, _ = uc.AddItem(ctx, cart.ID, 7)

	out, err := uc.RemoveItem(ctx, cart.ID, 7)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].Quantity)

	out, err = uc.RemoveItem(ctx, cart.ID, 7)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 0)
	assert.Equal(t, int64(0), out.Total)

	_, err = uc.RemoveItem(ctx, cart.ID, 7)
	assertErrContains(t, err, "item not found")
}

func TestCartUsecase_RemoveItem_AbsentItem(t *testing.T) {
	ctx := context.Background()
	uc := newCartUsecase(t, new(ProductRepoMock))

	cart, _ := uc.CreateCart(ctx)

	_, err := uc.RemoveItem(ctx, cart.ID, 7)
	assertErrContains(t, err, "item not found")
}

// 同じカートへの同時追加で増分が消えないか
func TestCartUsecase_ConcurrentAddItem_NoLostUpdate(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Product{ID: 7, Name: "Widget", Price: 1000, Stock: 100}, nil)

	uc := newCartUsecase(t, pRepo)
	cart, _ := uc.CreateCart(ctx)

	const adds = 20

	var wg sync.WaitGroup
	wg.Add(adds)
	for i := 0; i < adds; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.AddItem(ctx, cart.ID, 7)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := uc.GetCart(ctx, cart.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, int64(adds), got.Items[0].Quantity)
}
