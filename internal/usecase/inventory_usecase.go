package usecase

import (
	"context"
	"net/http"

	"github.com/gastonlopezt/TUP-25-p3/internal/domain/model"
	repo "github.com/gastonlopezt/TUP-25-p3/internal/repository"
)

// InventoryUsecase は在庫の増減だけを扱う。
// 書き込みは必ず ProductRepository.ApplyStockDelta を通す。
type InventoryUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewInventoryUsecase(productRepo repo.ProductRepository) *InventoryUsecase {
	return &InventoryUsecase{productRepo: productRepo}
}

// AddStock は在庫を増やす（上限なし）。更新後の商品を返す。
func (u *InventoryUsecase) AddStock(ctx context.Context, productID int64, quantity int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if quantity < 1 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, err := u.productRepo.ApplyStockDelta(ctx, productID, quantity)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}

// RemoveStock は在庫を減らす。足りなければ在庫はそのままで insufficient stock。
func (u *InventoryUsecase) RemoveStock(ctx context.Context, productID int64, quantity int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if quantity < 1 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, err := u.productRepo.ApplyStockDelta(ctx, productID, -quantity)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err == repo.ErrInsufficientStock {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "insufficient stock")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}
