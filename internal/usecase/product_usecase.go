package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gastonlopezt/TUP-25-p3/internal/domain/model"
	repo "github.com/gastonlopezt/TUP-25-p3/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 在庫僅少レポートの既定しきい値
const DefaultLowStockThreshold = 3

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// ListProducts は query が空白なら全件、指定があれば名前/説明の部分一致で返す。
// 一致なしは空配列で、エラーではない。
func (u *ProductUsecase) ListProducts(ctx context.Context, query string) ([]model.Product, error) {
	q := strings.TrimSpace(query)

	var (
		items []model.Product
		err   error
	)
	if q == "" {
		items, err = u.productRepo.List(ctx)
	} else {
		items, err = u.productRepo.Search(ctx, q)
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if items == nil {
		items = []model.Product{}
	}
	return items, nil
}

// LowStock は在庫が threshold 未満の商品を返す。
func (u *ProductUsecase) LowStock(ctx context.Context, threshold int64) ([]model.Product, error) {
	if threshold < 1 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid threshold")
	}

	items, err := u.productRepo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if items == nil {
		items = []model.Product{}
	}
	return items, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}
