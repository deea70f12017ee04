package repository

import (
	"context"
	"errors"

	"github.com/gastonlopezt/TUP-25-p3/internal/domain/model"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, q string) ([]model.Product, error)
	ListLowStock(ctx context.Context, threshold int64) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)

	// 在庫の唯一の更新口。stock + delta が負になるなら ErrInsufficientStock で何も変えない。
	ApplyStockDelta(ctx context.Context, id int64, delta int64) (model.Product, error)
}
