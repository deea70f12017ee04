package repository

import (
	"context"
	"errors"

	"github.com/gastonlopezt/TUP-25-p3/internal/domain/model"
	repo "github.com/gastonlopezt/TUP-25-p3/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 全商品をID順で返す。
func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// 名前または説明の部分一致。大文字小文字は区別する（LIKE、ILIKEではない）。
func (r *ProductGormRepository) Search(ctx context.Context, q string) ([]model.Product, error) {
	like := "%" + q + "%"

	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR description LIKE ?", like, like).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// 在庫が threshold 未満のものだけをID順で返す。
func (r *ProductGormRepository) ListLowStock(ctx context.Context, threshold int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("stock < ?", threshold).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 在庫を条件付きの1文で増減する。読み→比較→書きをアプリ側でやらないので、
// 同一商品への同時呼び出しはDBが直列化する。調整履歴も同じトランザクションに残す。
func (r *ProductGormRepository) ApplyStockDelta(ctx context.Context, id int64, delta int64) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Product{}).
			Where("id = ? AND stock + ? >= 0", id, delta).
			Update("stock", gorm.Expr("stock + ?", delta))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// 商品が無いのか在庫不足なのかを切り分ける
			var exists int64
			if err := tx.Model(&model.Product{}).Where("id = ?", id).Count(&exists).Error; err != nil {
				return err
			}
			if exists == 0 {
				return repo.ErrNotFound
			}
			return repo.ErrInsufficientStock
		}

		adj := model.StockAdjustment{
			ProductID: id,
			Delta:     delta,
		}
		if err := tx.Create(&adj).Error; err != nil {
			return err
		}

		return tx.First(&p, id).Error
	})
	if err != nil {
		return model.Product{}, err
	}

	return p, nil
}
