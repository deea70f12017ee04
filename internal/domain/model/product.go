package model

import "time"

// 商品マスタ。在庫（Stock）の唯一の保存先で、常に stock >= 0。
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Stock       int64     `gorm:"not null" json:"stock"`
	ImageRef    string    `gorm:"type:varchar(255);column:image_ref" json:"imageRef"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
