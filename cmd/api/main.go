package main

import (
	"log"

	"github.com/gastonlopezt/TUP-25-p3/internal/config"
	"github.com/gastonlopezt/TUP-25-p3/internal/domain/model"
	"github.com/gastonlopezt/TUP-25-p3/internal/handler"
	"github.com/gastonlopezt/TUP-25-p3/internal/infra/db"
	infraRepo "github.com/gastonlopezt/TUP-25-p3/internal/infra/repository"
	"github.com/gastonlopezt/TUP-25-p3/internal/server"
	"github.com/gastonlopezt/TUP-25-p3/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.StockAdjustment{},
	); err != nil {
		panic(err)
	}

	// 商品が空なら初期データを投入
	seeded, err := db.Seed(gormDB)
	if err != nil {
		panic(err)
	}
	if seeded > 0 {
		log.Printf("seeded %d products", seeded)
	}

	//Repository生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartMemoryRepository(cfg.CartTTL, cfg.CartSweepEvery)
	defer cartRepo.Close()

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	inventoryUC := usecase.NewInventoryUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	inventoryH := handler.NewInventoryHandler(inventoryUC)
	cartH := handler.NewCartHandler(cartUC)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, productH, inventoryH, cartH); err != nil {
		panic(err)
	}
}
