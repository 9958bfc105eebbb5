package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loan-origination/internal/adapter/http"
	kafkaadp "loan-origination/internal/adapter/messaging/kafka"
	idemp "loan-origination/internal/adapter/middleware"
	"loan-origination/internal/adapter/repository/mysql"
	redisadp "loan-origination/internal/adapter/repository/redis"
	"loan-origination/internal/config"
	"loan-origination/internal/infrastructure/cache"
	"loan-origination/internal/infrastructure/db"
	"loan-origination/internal/usecase/antifraud"
	"loan-origination/internal/usecase/decision"
	"loan-origination/internal/usecase/scoring"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	applicants := mysql.NewApplicantRepository(gdb)
	products := mysql.NewProductRepository(gdb)
	if err := products.Seed(context.Background()); err != nil {
		log.Fatal(err)
	}

	limiter := redisadp.NewRateLimiter(rdb, time.Duration(cfg.RateWindowHours)*time.Hour)
	producer := kafkaadp.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	orch := decision.NewOrchestrator(
		applicants,
		products,
		antifraud.NewEngine(limiter),
		scoring.NewEngine(),
		producer,
	)

	h := httpadp.NewHandler()
	afh := httpadp.NewAntifraudHandler(orch)
	sch := httpadp.NewScoringHandler(orch)
	ph := httpadp.NewProductHandler(orch)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.POST("/products/select", ph.SelectProducts)
	api.POST("/antifraud/pioneer/check", afh.CheckPioneer)
	api.POST("/antifraud/repeater/check", afh.CheckRepeater)

	submit := api.Group("/scoring", idemp.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	submit.POST("/pioneer", sch.SubmitPioneer)
	submit.POST("/repeater", sch.SubmitRepeater)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
