package main

import (
	"log"

	"github.com/ItaloOlivier/shopcrypto/internal/api"
	"github.com/ItaloOlivier/shopcrypto/internal/category"
	"github.com/ItaloOlivier/shopcrypto/internal/config"
	"github.com/ItaloOlivier/shopcrypto/internal/db"
	"github.com/ItaloOlivier/shopcrypto/internal/logger"
	"github.com/ItaloOlivier/shopcrypto/internal/mailer"
	"github.com/ItaloOlivier/shopcrypto/internal/metrics"
	"github.com/ItaloOlivier/shopcrypto/internal/order"
	"github.com/ItaloOlivier/shopcrypto/internal/product"
	"github.com/ItaloOlivier/shopcrypto/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	var mail mailer.Mailer = mailer.Noop{}
	if cfg.SendGridAPIKey != "" {
		mail = mailer.NewSendGrid(cfg.SendGridAPIKey, cfg.MailFrom)
	}

	reg := metrics.NewRegistry()

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, userRepo, mail, reg)

	h := api.NewHandler(userSvc, productSvc, categorySvc, orderSvc, reg)
	router := api.NewRouter(h, cfg.CORSOrigin)

	log.Printf("🚀 ShopCrypto API running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
