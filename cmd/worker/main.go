package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	kafkaadp "loan-origination/internal/adapter/messaging/kafka"
	"loan-origination/internal/adapter/repository/mysql"
	"loan-origination/internal/config"
	"loan-origination/internal/infrastructure/db"
)

// The worker applies accepted-decision events to the applicant store when the
// history append is propagated asynchronously instead of in-process.
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

	applicants := mysql.NewApplicantRepository(gdb)
	consumer := kafkaadp.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, applicants)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("worker: consuming %s", cfg.KafkaTopic)
	if err := consumer.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
