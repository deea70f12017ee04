package db

import (
	"github.com/gastonlopezt/TUP-25-p3/internal/domain/model"

	"gorm.io/gorm"
)

// Seed は商品テーブルが空のときだけ初期データを投入する（起動時に1回）。
// 投入した件数を返す。既にデータがあれば 0。
func Seed(gormDB *gorm.DB) (int, error) {
	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	products := []model.Product{
		{Name: "Celular A1", Description: "Smartphone básico", Price: 50000, Stock: 20, ImageRef: "img/celular1.png"},
		{Name: "Celular B2", Description: "Smartphone gama media", Price: 75000, Stock: 15, ImageRef: "img/celular2.png"},
		{Name: "Celular C3", Description: "Gama alta", Price: 120000, Stock: 10, ImageRef: "img/celular3.png"},
		{Name: "Auriculares X", Description: "Bluetooth", Price: 15000, Stock: 30, ImageRef: "img/auriculares1.png"},
		{Name: "Funda resistente", Description: "Funda para celular", Price: 5000, Stock: 25, ImageRef: "img/funda1.png"},
		{Name: "Cargador rápido", Description: "Cargador USB-C", Price: 7000, Stock: 20, ImageRef: "img/cargador1.png"},
		{Name: "Smartwatch Y", Description: "Reloj inteligente", Price: 45000, Stock: 12, ImageRef: "img/watch1.png"},
		{Name: "Notebook Z", Description: "Laptop liviana", Price: 220000, Stock: 5, ImageRef: "img/laptop1.png"},
		{Name: "Tablet Mini", Description: "Pantalla 8\"", Price: 90000, Stock: 8, ImageRef: "img/tablet1.png"},
		{Name: "Teclado gamer", Description: "RGB mecánico", Price: 25000, Stock: 14, ImageRef: "img/teclado1.png"},
	}

	if err := gormDB.Create(&products).Error; err != nil {
		return 0, err
	}
	return len(products), nil
}
