package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/afterclass/courses-api/internal/config"
	"github.com/afterclass/courses-api/internal/courses"
	"github.com/afterclass/courses-api/internal/httpx"
	kafkax "github.com/afterclass/courses-api/internal/kafka"
	"github.com/afterclass/courses-api/internal/mongodb"
	"github.com/afterclass/courses-api/internal/orders"
	"github.com/afterclass/courses-api/internal/redisx"
	"github.com/afterclass/courses-api/internal/telemetry"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	telemetry.InitLogger()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Store
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDBName)

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 1024)
	prod.Start(ctx)

	// Repos & handlers
	router := httpx.NewRouter(cfg.CORSOrigin)
	ch := &httpx.CoursesHandler{
		Store: courses.NewRepo(db),
		Redis: rdb,
	}
	ch.Register(router)
	oh := &httpx.OrdersHandler{
		Store:    orders.NewRepo(db),
		Producer: prod,
		Redis:    rdb,
		Service:  cfg.ServiceName,
	}
	oh.Register(router)
	httpx.ServeStatic(router, cfg.StaticDir)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	slog.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // close inbox -> flush & close writer
	cancel()          // stop producer loop
	prod.WaitClosed() // drain
}
