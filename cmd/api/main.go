package main

import (
	"delivery/internal/config"
	"delivery/internal/domain/model"
	"delivery/internal/handler"
	"delivery/internal/infra/db"
	infraRepo "delivery/internal/infra/repository"
	"delivery/internal/logger"
	"delivery/internal/server"
	"delivery/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envはローカル開発用（本番は環境変数を直接渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.GoEnv == "dev"); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.L()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Shop{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.Review{},
		&model.Favorite{},
	); err != nil {
		log.Fatal("auto migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenGormRepository(gormDB)
	shopRepo := infraRepo.NewShopGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	favoriteRepo := infraRepo.NewFavoriteGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, log)
	shopUC := usecase.NewShopUsecase(shopRepo, log)
	productUC := usecase.NewProductUsecase(productRepo, shopRepo, log)
	orderUC := usecase.NewOrderUsecase(txManager, log)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo, log)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, productRepo, log)

	//Handler生成
	handlers := server.Handlers{
		Auth:     handler.NewAuthHandler(authUC),
		Shop:     handler.NewShopHandler(shopUC),
		Product:  handler.NewProductHandler(productUC),
		Order:    handler.NewOrderHandler(orderUC),
		Review:   handler.NewReviewHandler(reviewUC),
		Favorite: handler.NewFavoriteHandler(favoriteUC),
	}

	//Server起動
	e := server.New(cfg, handlers)
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
