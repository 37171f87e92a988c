package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/pallabiBWM/lakesideindianrestaurant-new/configs"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/adapter/cache"
	httpadapter "github.com/pallabiBWM/lakesideindianrestaurant-new/internal/adapter/http"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/adapter/http/middleware"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/adapter/kafka"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/adapter/notify"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/adapter/queue"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/adapter/repo"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/logging"
	"github.com/pallabiBWM/lakesideindianrestaurant-new/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, "./logs/app.log")
	l := logging.New("bootstrap")
	l.Info("starting up")

	// init database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		return nil, nil, err
	}
	cancel()

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, nil, err
	}

	// init rabbitmq
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}
	producer, err := queue.NewRabbitProducer(ch)
	if err != nil {
		return nil, nil, err
	}

	// repositories + catalog
	cartRepo := repo.NewMySQLCartRepo(db)
	wishlistRepo := repo.NewMySQLWishlistRepo(db)
	orderRepo := repo.NewMySQLOrderRepo(db)
	menuRepo := repo.NewMySQLMenuRepo(db)
	catalog := cache.NewCachedCatalog(menuRepo, rdb, cfg.Cache.PriceTTL)
	lock := cache.NewRedisCheckoutLock(rdb, cfg.Checkout.LockTTL)

	// use cases
	pricer := usecase.NewPricer(usecase.PricingConfig{
		TaxRateBps:       cfg.Pricing.TaxRateBps,
		DeliveryFeeCents: cfg.Pricing.DeliveryFeeCents,
		Currency:         cfg.Pricing.Currency,
	})
	cartSvc := usecase.NewCartService(cartRepo)
	wishlistSvc := usecase.NewWishlistService(wishlistRepo)
	checkoutUC := usecase.NewCheckout(cartRepo, orderRepo, catalog, pricer, lock, producer)
	statusUC := usecase.NewOrderStatus(orderRepo, producer)

	// register queue consumers (order events -> notification hook)
	if err := setupQueue(ch); err != nil {
		return nil, nil, err
	}

	// register kafka listener (menu price sync from the menu system)
	setupKafkaListener(cfg, menuRepo, catalog)

	// handlers + router + middleware
	menuH := httpadapter.NewMenuHandler(catalog)
	cartH := httpadapter.NewCartHandler(cartSvc)
	wishlistH := httpadapter.NewWishlistHandler(wishlistSvc)
	checkoutH := httpadapter.NewCheckoutHandler(checkoutUC)
	orderH := httpadapter.NewOrderHandler(statusUC, orderRepo)
	tokenH := httpadapter.NewTokenHandler(cfg)
	authz := middleware.NewAuthz(cfg)
	router := httpadapter.NewRouter(menuH, cartH, wishlistH, checkoutH, orderH, tokenH, authz)

	cleanup := func() {
		_ = db.Close()
		_ = rdb.Close()
		_ = ch.Close()
		_ = conn.Close()
	}

	return &App{Router: router}, cleanup, nil
}

func setupQueue(ch *amqp091.Channel) error {
	notifier := notify.NewLogNotifier(logging.New("notify"))
	h := queue.NewOrderNotifyHandler(notifier)

	router := queue.NewRouter(ch, queue.WithPrefetch(50))
	router.Register("order.placed.q", queue.JSONHandler[usecase.OrderPlacedMsg]{HandleFunc: h.HandlePlaced})
	router.Register("order.status_changed.q", queue.JSONHandler[usecase.OrderStatusChangedMsg]{HandleFunc: h.HandleStatusChanged})

	return router.Start()
}

func setupKafkaListener(cfg configs.Config, menuRepo *repo.MySQLMenuRepo, catalog *cache.CachedCatalog) {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		panic(err)
	}

	h := kafka.NewMenuPriceChangedHandler(menuRepo, catalog)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.MenuTopic}, h.Handle)
	consumer.Logger = logging.New("kafka")

	go func() {
		if err := consumer.Start(context.Background()); err != nil {
			logging.New("kafka").Error("consumer stopped", "err", err)
		}
	}()
}
