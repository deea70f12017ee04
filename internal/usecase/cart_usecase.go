package usecase

import (
	"context"
	"net/http"

	"github.com/gastonlopezt/TUP-25-p3/internal/domain/model"
	repo "github.com/gastonlopezt/TUP-25-p3/internal/repository"
)

// CartUsecase はカートの作成・取得・破棄と明細の増減を扱う。
// 明細の増加は現在在庫との突き合わせだけで、在庫そのものは減らさない。
// 別カート同士が同じ「最後の1個」を積めるのは仕様どおりで、
// 実際の引き落とし（RemoveStock）の時点で初めて不足が確定する。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CartResponse はカートのAPI表現。
type CartResponse struct {
	ID    string           `json:"id"`
	Items []model.CartItem `json:"items"`
	Total int64            `json:"total"`
}

// CreateCart は空のカートを作ってトークンを払い出す。
func (u *CartUsecase) CreateCart(ctx context.Context) (CartResponse, error) {
	cart, err := u.cartRepo.Create(ctx)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return toCartResponse(cart), nil
}

func (u *CartUsecase) GetCart(ctx context.Context, cartID string) (CartResponse, error) {
	if cartID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrCartNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return toCartResponse(cart), nil
}

func (u *CartUsecase) DeleteCart(ctx context.Context, cartID string) error {
	if cartID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	err := u.cartRepo.Delete(ctx, cartID)
	if err == repo.ErrCartNotFound {
		return NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return nil
}

// AddItem は明細を1つ増やす（無ければ数量1で作る）。
// 現在在庫と突き合わせてからの反映で、全てカートのロック中に行う。
func (u *CartUsecase) AddItem(ctx context.Context, cartID string, productID int64) (CartResponse, error) {
	if cartID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	cart, err := u.cartRepo.Mutate(ctx, cartID, func(c *model.Cart) error {
		p, err := u.productRepo.FindByID(ctx, productID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if p.Stock <= 0 {
			return NewHTTPError(http.StatusBadRequest, "out of stock")
		}

		for i := range c.Items {
			if c.Items[i].ProductID == productID {
				// 既存明細は現在在庫を超えて積めない
				if c.Items[i].Quantity >= p.Stock {
					return NewHTTPError(http.StatusBadRequest, "insufficient stock")
				}
				c.Items[i].Quantity++
				return nil
			}
		}

		// 追加時点の名前と価格をスナップショットとして保存
		c.Items = append(c.Items, model.CartItem{
			ProductID: productID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  1,
		})
		return nil
	})
	if err != nil {
		return CartResponse{}, asCartError(err)
	}

	return toCartResponse(cart), nil
}

// RemoveItem は明細を1つ減らす。0になった明細はカートから消す。
func (u *CartUsecase) RemoveItem(ctx context.Context, cartID string, productID int64) (CartResponse, error) {
	if cartID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	cart, err := u.cartRepo.Mutate(ctx, cartID, func(c *model.Cart) error {
		for i := range c.Items {
			if c.Items[i].ProductID != productID {
				continue
			}

			c.Items[i].Quantity--
			if c.Items[i].Quantity == 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			return nil
		}
		return NewHTTPError(http.StatusNotFound, "item not found")
	})
	if err != nil {
		return CartResponse{}, asCartError(err)
	}

	return toCartResponse(cart), nil
}

// Mutate 経由のエラーをAPI向けに揃える。
func asCartError(err error) error {
	if err == repo.ErrCartNotFound {
		return NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if _, ok := AsHTTPError(err); ok {
		return err
	}
	return NewHTTPError(http.StatusInternalServerError, "internal error")
}

func toCartResponse(c model.Cart) CartResponse {
	items := c.Items
	if items == nil {
		items = []model.CartItem{}
	}

	var total int64 = 0
	for _, it := range items {
		total += it.UnitPrice * it.Quantity
	}

	return CartResponse{
		ID:    c.ID,
		Items: items,
		Total: total,
	}
}
