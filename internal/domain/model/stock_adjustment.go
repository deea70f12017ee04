package model

import "time"

//在庫調整の履歴

type StockAdjustment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	Delta     int64     `gorm:"not null" json:"delta"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
