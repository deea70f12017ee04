package repository

import (
	"context"
	"errors"

	"github.com/gastonlopezt/TUP-25-p3/internal/domain/model"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found")
)

// カートの登録簿。登録簿そのものと各カートの排他は実装側が持つ。
type CartRepository interface {
	Create(ctx context.Context) (model.Cart, error)
	FindByID(ctx context.Context, id string) (model.Cart, error)
	Delete(ctx context.Context, id string) error

	// Mutate は fn をそのカートのロック中に実行する。
	// 同一カートへの変更はここで直列化される。fn がエラーを返したら変更を反映しない
	// 前提なので、fn は検証を済ませてから書き換えること。
	Mutate(ctx context.Context, id string, fn func(c *model.Cart) error) (model.Cart, error)

	Close() error
}
